package repositories_test

import (
	"context"
	"testing"

	"restobook/internal/models"
	"restobook/internal/repositories"
	"restobook/internal/testutil"
)

func TestReservationCreateAndListByOwner(t *testing.T) {
	db := testutil.OpenDB(t, "reservation_create")
	userRepo := repositories.NewUserRepository(db)
	repo := repositories.NewReservationRepository(db)
	ctx := context.Background()

	alice := createUser(t, userRepo, "alice")
	bob := createUser(t, userRepo, "bob")

	reservation := &models.Reservation{
		Name:           "Alice Smith",
		Email:          "alice@example.com",
		Contact:        "555-0100",
		Date:           "2026-09-12",
		RestaurantName: "Luigi's",
		Guest:          4,
		UserID:         alice.ID,
	}
	if err := repo.Create(ctx, reservation); err != nil {
		t.Fatalf("create reservation: %v", err)
	}
	if reservation.ID <= 0 {
		t.Errorf("expected assigned ID, got %d", reservation.ID)
	}

	got, err := repo.ListByUserID(ctx, alice.ID)
	if err != nil {
		t.Fatalf("list reservations: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 reservation, got %d", len(got))
	}
	if got[0].RestaurantName != "Luigi's" || got[0].Guest != 4 || got[0].Date != "2026-09-12" {
		t.Errorf("unexpected reservation %+v", got[0])
	}

	others, err := repo.ListByUserID(ctx, bob.ID)
	if err != nil {
		t.Fatalf("list reservations for bob: %v", err)
	}
	if len(others) != 0 {
		t.Fatalf("expected no reservations for bob, got %d", len(others))
	}
}

func TestReservationForeignKeyEnforced(t *testing.T) {
	db := testutil.OpenDB(t, "reservation_fk")
	repo := repositories.NewReservationRepository(db)

	err := repo.Create(context.Background(), &models.Reservation{
		Name:           "Ghost",
		Email:          "ghost@example.com",
		Contact:        "555-0199",
		Date:           "2026-01-01",
		RestaurantName: "Nowhere",
		Guest:          2,
		UserID:         999,
	})
	if err == nil {
		t.Fatal("expected foreign key error for missing owner")
	}
}
