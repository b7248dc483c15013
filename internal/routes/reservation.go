package routes

import (
	"github.com/gin-gonic/gin"

	"restobook/internal/handlers"
)

type ReservationRoutes struct {
	handler      *handlers.ReservationHandler
	authenticate gin.HandlerFunc
}

func NewReservationRoutes(handler *handlers.ReservationHandler, authenticate gin.HandlerFunc) *ReservationRoutes {
	return &ReservationRoutes{handler: handler, authenticate: authenticate}
}

func (r *ReservationRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/create_reservation", r.authenticate, r.handler.Create)
}
