package models

// Reservation is a booking request owned by a single user.
//
// RestaurantName is free text and is not checked against restaurant rows:
// guests also book venues that are not listed in this directory.
type Reservation struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Contact        string `json:"contact"`
	Date           string `json:"date"` // canonical YYYY-MM-DD
	RestaurantName string `json:"restaurant_name"`
	Guest          int64  `json:"guest"`
	UserID         int64  `json:"user_id"`
}
