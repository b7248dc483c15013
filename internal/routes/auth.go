package routes

import (
	"github.com/gin-gonic/gin"

	"restobook/internal/handlers"
)

type AuthRoutes struct {
	handler *handlers.AuthHandler
}

func NewAuthRoutes(handler *handlers.AuthHandler) *AuthRoutes {
	return &AuthRoutes{handler: handler}
}

func (r *AuthRoutes) RegisterRoutes(router *gin.RouterGroup) {
	// Public routes
	router.POST("/register", r.handler.Register)
	router.POST("/login", r.handler.Login)
}
