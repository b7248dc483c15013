package routes

import (
	"github.com/gin-gonic/gin"

	"restobook/internal/handlers"
)

type RestaurantRoutes struct {
	handler      *handlers.RestaurantHandler
	authenticate gin.HandlerFunc
}

func NewRestaurantRoutes(handler *handlers.RestaurantHandler, authenticate gin.HandlerFunc) *RestaurantRoutes {
	return &RestaurantRoutes{handler: handler, authenticate: authenticate}
}

func (r *RestaurantRoutes) RegisterRoutes(router *gin.RouterGroup) {
	restaurants := router.Group("/restaurants")
	restaurants.Use(r.authenticate) // All restaurant routes require authentication
	{
		restaurants.GET("", r.handler.List)
		restaurants.POST("", r.handler.Create)
	}
}
