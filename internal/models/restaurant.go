package models

// Restaurant is a venue listing owned by a single user.
type Restaurant struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Image       string `json:"image"`
	UserID      int64  `json:"user_id"`
}
