package repositories

import (
	"context"
	"database/sql"
	"time"

	"restobook/internal/models"
)

type ReservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// Create inserts a new reservation row and fills in the generated ID.
func (r *ReservationRepository) Create(ctx context.Context, reservation *models.Reservation) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO reservations (name, email, contact, date, restaurant_name, guest, user_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		reservation.Name,
		reservation.Email,
		reservation.Contact,
		reservation.Date,
		reservation.RestaurantName,
		reservation.Guest,
		reservation.UserID,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	reservation.ID = id
	return nil
}

// ListByUserID returns all reservations owned by the given user, in storage order.
func (r *ReservationRepository) ListByUserID(ctx context.Context, userID int64) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, contact, date, restaurant_name, guest, user_id
		 FROM reservations WHERE user_id = ?`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := []models.Reservation{}
	for rows.Next() {
		var reservation models.Reservation
		err := rows.Scan(
			&reservation.ID,
			&reservation.Name,
			&reservation.Email,
			&reservation.Contact,
			&reservation.Date,
			&reservation.RestaurantName,
			&reservation.Guest,
			&reservation.UserID,
		)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, reservation)
	}

	return reservations, rows.Err()
}
