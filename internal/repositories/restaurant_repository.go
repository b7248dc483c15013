package repositories

import (
	"context"
	"database/sql"
	"time"

	"restobook/internal/models"
)

type RestaurantRepository struct {
	db *sql.DB
}

func NewRestaurantRepository(db *sql.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

// Create inserts a new restaurant row and fills in the generated ID.
func (r *RestaurantRepository) Create(ctx context.Context, restaurant *models.Restaurant) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO restaurants (name, location, description, image, user_id)
		 VALUES (?, ?, ?, ?, ?)`,
		restaurant.Name, restaurant.Location, restaurant.Description, restaurant.Image, restaurant.UserID,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	restaurant.ID = id
	return nil
}

// ListByUserID returns all restaurants owned by the given user, in storage order.
func (r *RestaurantRepository) ListByUserID(ctx context.Context, userID int64) ([]models.Restaurant, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, location, description, image, user_id
		 FROM restaurants WHERE user_id = ?`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []models.Restaurant{}
	for rows.Next() {
		var restaurant models.Restaurant
		err := rows.Scan(
			&restaurant.ID,
			&restaurant.Name,
			&restaurant.Location,
			&restaurant.Description,
			&restaurant.Image,
			&restaurant.UserID,
		)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, restaurant)
	}

	return restaurants, rows.Err()
}
