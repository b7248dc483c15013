package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"restobook/internal/models"
	"restobook/internal/repositories"
)

const dateLayout = "2006-01-02"

type ReservationService struct {
	userRepo        *repositories.UserRepository
	reservationRepo *repositories.ReservationRepository
}

func NewReservationService(userRepo *repositories.UserRepository, reservationRepo *repositories.ReservationRepository) *ReservationService {
	return &ReservationService{
		userRepo:        userRepo,
		reservationRepo: reservationRepo,
	}
}

// Guest is a json.Number so that numeric payloads bind while the coercion to
// an integer stays an explicit, reportable step.
type CreateReservationRequest struct {
	Name           string      `json:"name" binding:"required"`
	Email          string      `json:"email" binding:"required"`
	Contact        string      `json:"contact" binding:"required"`
	Date           string      `json:"date" binding:"required"`
	RestaurantName string      `json:"restaurant_name" binding:"required"`
	Guest          json.Number `json:"guest" binding:"required"`
}

// Create validates and stores a new reservation owned by the given user.
// The restaurant name is stored as-is; it is not required to match a listed
// restaurant.
func (s *ReservationService) Create(ctx context.Context, userID int64, req CreateReservationRequest) (*models.Reservation, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be a valid YYYY-MM-DD calendar date", ErrValidation)
	}

	guest, err := req.Guest.Int64()
	if err != nil {
		return nil, fmt.Errorf("%w: guest must be an integer", ErrValidation)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	reservation := &models.Reservation{
		Name:           req.Name,
		Email:          req.Email,
		Contact:        req.Contact,
		Date:           date.Format(dateLayout),
		RestaurantName: req.RestaurantName,
		Guest:          guest,
		UserID:         user.ID,
	}
	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, err
	}

	return reservation, nil
}
