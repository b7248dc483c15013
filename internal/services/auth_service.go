package services

import (
	"context"
	"time"

	"restobook/internal/models"
	"restobook/internal/repositories"
	"restobook/internal/utils"
)

type AuthService struct {
	userRepo *repositories.UserRepository
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(userRepo *repositories.UserRepository, secret []byte, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// Register creates a new user with a bcrypt-hashed password.
// A taken username is reported as ErrDuplicateUsername, whether it is caught
// by the pre-check or by the unique index on a lost race.
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateUsername
	}

	hashedPassword, err := utils.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}

	return user, nil
}

// Login verifies the credentials and issues a signed access token embedding
// the user's identity. Unknown usernames and wrong passwords are deliberately
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := utils.VerifyPassword(user.PasswordHash, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Username, s.tokenTTL, s.secret)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}
