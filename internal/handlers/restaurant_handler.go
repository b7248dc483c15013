package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"restobook/internal/responses"
	"restobook/internal/services"
)

type RestaurantHandler struct {
	restaurantService *services.RestaurantService
}

func NewRestaurantHandler(restaurantService *services.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{restaurantService: restaurantService}
}

// userIDFromContext reads the identity stored by the Authenticate middleware.
func userIDFromContext(c *gin.Context) (int64, bool) {
	v, exists := c.Get("userId")
	if !exists {
		return 0, false
	}
	userID, ok := v.(int64)
	return userID, ok
}

// List handles GET /restaurants
func (h *RestaurantHandler) List(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	restaurants, err := h.restaurantService.List(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			responses.Fail(c, http.StatusNotFound, err, "User not found")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to retrieve restaurants")
		return
	}

	responses.Success(c, http.StatusOK, restaurants, "Restaurants retrieved successfully")
}

// Create handles POST /restaurants
func (h *RestaurantHandler) Create(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	var req services.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	restaurant, err := h.restaurantService.Create(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			responses.Fail(c, http.StatusNotFound, err, "User not found")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to create restaurant")
		return
	}

	responses.Success(c, http.StatusCreated, restaurant, "Restaurant created successfully")
}
