package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"restobook/internal/responses"
	"restobook/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Please provide your username and password")
		return
	}

	_, err := h.authService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateUsername) {
			responses.Fail(c, http.StatusConflict, err, "Username already taken")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "Could not register user")
		return
	}

	responses.Success(c, http.StatusCreated, nil, "User registered successfully")
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Please provide your username and password")
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			responses.Fail(c, http.StatusUnauthorized, err, "Failed to login")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to login")
		return
	}

	res := gin.H{
		"access_token": token,
		"username":     user.Username,
		"id":           user.ID,
	}

	responses.Success(c, http.StatusOK, res, "User logged in successfully")
}
