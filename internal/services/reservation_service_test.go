package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"restobook/internal/models"
	"restobook/internal/repositories"
	"restobook/internal/services"
	"restobook/internal/testutil"
)

func newReservationService(t *testing.T, name string) (*services.ReservationService, *repositories.UserRepository, *repositories.ReservationRepository) {
	t.Helper()
	db := testutil.OpenDB(t, name)
	userRepo := repositories.NewUserRepository(db)
	reservationRepo := repositories.NewReservationRepository(db)
	return services.NewReservationService(userRepo, reservationRepo), userRepo, reservationRepo
}

func registerUser(t *testing.T, userRepo *repositories.UserRepository, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, PasswordHash: "hash"}
	if err := userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func validRequest() services.CreateReservationRequest {
	return services.CreateReservationRequest{
		Name:           "Alice Smith",
		Email:          "alice@example.com",
		Contact:        "555-0100",
		Date:           "2026-09-12",
		RestaurantName: "Luigi's",
		Guest:          json.Number("4"),
	}
}

func TestReservationCreate(t *testing.T) {
	svc, userRepo, reservationRepo := newReservationService(t, "reservation_ok")
	ctx := context.Background()
	alice := registerUser(t, userRepo, "alice")

	reservation, err := svc.Create(ctx, alice.ID, validRequest())
	if err != nil {
		t.Fatalf("create reservation: %v", err)
	}
	if reservation.UserID != alice.ID {
		t.Errorf("owner %d, want %d", reservation.UserID, alice.ID)
	}
	if reservation.Guest != 4 || reservation.Date != "2026-09-12" {
		t.Errorf("unexpected reservation %+v", reservation)
	}

	persisted, err := reservationRepo.ListByUserID(ctx, alice.ID)
	if err != nil {
		t.Fatalf("list reservations: %v", err)
	}
	if len(persisted) != 1 {
		t.Fatalf("expected 1 persisted reservation, got %d", len(persisted))
	}
}

func TestReservationInvalidDate(t *testing.T) {
	svc, userRepo, reservationRepo := newReservationService(t, "reservation_bad_date")
	ctx := context.Background()
	alice := registerUser(t, userRepo, "alice")

	for _, date := range []string{"2024-13-40", "12/09/2026", "not-a-date"} {
		req := validRequest()
		req.Date = date
		_, err := svc.Create(ctx, alice.ID, req)
		if !errors.Is(err, services.ErrValidation) {
			t.Errorf("date %q: expected ErrValidation, got %v", date, err)
		}
	}

	persisted, err := reservationRepo.ListByUserID(ctx, alice.ID)
	if err != nil {
		t.Fatalf("list reservations: %v", err)
	}
	if len(persisted) != 0 {
		t.Fatalf("expected no persisted rows after validation failures, got %d", len(persisted))
	}
}

func TestReservationInvalidGuest(t *testing.T) {
	svc, userRepo, reservationRepo := newReservationService(t, "reservation_bad_guest")
	ctx := context.Background()
	alice := registerUser(t, userRepo, "alice")

	req := validRequest()
	req.Guest = json.Number("abc")
	_, err := svc.Create(ctx, alice.ID, req)
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	persisted, err := reservationRepo.ListByUserID(ctx, alice.ID)
	if err != nil {
		t.Fatalf("list reservations: %v", err)
	}
	if len(persisted) != 0 {
		t.Fatalf("expected no persisted rows, got %d", len(persisted))
	}
}

func TestReservationUnknownUser(t *testing.T) {
	svc, _, _ := newReservationService(t, "reservation_unknown_user")

	_, err := svc.Create(context.Background(), 999, validRequest())
	if !errors.Is(err, services.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
