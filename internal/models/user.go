package models

import "strings"

// User matches the users table.
// Columns: id, username (NOT NULL UNIQUE), password_hash
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

func (u *User) Prepare() {
	u.Username = strings.TrimSpace(u.Username)
}
