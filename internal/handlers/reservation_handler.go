package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"restobook/internal/responses"
	"restobook/internal/services"
)

type ReservationHandler struct {
	reservationService *services.ReservationService
}

func NewReservationHandler(reservationService *services.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService}
}

// Create handles POST /create_reservation
func (h *ReservationHandler) Create(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	var req services.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	_, err := h.reservationService.Create(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			responses.Fail(c, http.StatusBadRequest, err, "Invalid reservation details")
		case errors.Is(err, services.ErrUserNotFound):
			responses.Fail(c, http.StatusNotFound, err, "User not found")
		default:
			responses.Fail(c, http.StatusInternalServerError, err, "Failed to create reservation")
		}
		return
	}

	responses.Success(c, http.StatusCreated, nil, "Reservation created successfully")
}
