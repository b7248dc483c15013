package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restobook/internal/handlers"
)

func RegisterRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	restaurantHandler *handlers.RestaurantHandler,
	reservationHandler *handlers.ReservationHandler,
	authenticate gin.HandlerFunc,
) {
	root := router.Group("")

	authRoutes := NewAuthRoutes(authHandler)
	authRoutes.RegisterRoutes(root)

	restaurantRoutes := NewRestaurantRoutes(restaurantHandler, authenticate)
	restaurantRoutes.RegisterRoutes(root)

	reservationRoutes := NewReservationRoutes(reservationHandler, authenticate)
	reservationRoutes.RegisterRoutes(root)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
