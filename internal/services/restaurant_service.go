package services

import (
	"context"

	"restobook/internal/models"
	"restobook/internal/repositories"
)

type RestaurantService struct {
	userRepo       *repositories.UserRepository
	restaurantRepo *repositories.RestaurantRepository
}

func NewRestaurantService(userRepo *repositories.UserRepository, restaurantRepo *repositories.RestaurantRepository) *RestaurantService {
	return &RestaurantService{
		userRepo:       userRepo,
		restaurantRepo: restaurantRepo,
	}
}

type CreateRestaurantRequest struct {
	Name        string `json:"name" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Description string `json:"description" binding:"required"`
	Image       string `json:"image" binding:"required"`
}

// List returns the restaurants owned by the given user. Ownership filtering
// happens in the query; other users' rows are never loaded.
func (s *RestaurantService) List(ctx context.Context, userID int64) ([]models.Restaurant, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return s.restaurantRepo.ListByUserID(ctx, userID)
}

// Create stores a new restaurant owned by the given user.
func (s *RestaurantService) Create(ctx context.Context, userID int64, req CreateRestaurantRequest) (*models.Restaurant, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	restaurant := &models.Restaurant{
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		Image:       req.Image,
		UserID:      user.ID,
	}
	if err := s.restaurantRepo.Create(ctx, restaurant); err != nil {
		return nil, err
	}

	return restaurant, nil
}
