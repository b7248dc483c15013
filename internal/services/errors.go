package services

import "errors"

// Sentinel errors returned by the service layer. Handlers map these to HTTP
// statuses with errors.Is; anything else is a server fault.
var (
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrValidation         = errors.New("validation failed")
)
