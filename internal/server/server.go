package server

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	"restobook/internal/config"
	"restobook/internal/database"
	"restobook/internal/handlers"
	"restobook/internal/middlewares"
	"restobook/internal/repositories"
	"restobook/internal/routes"
	"restobook/internal/services"
)

// NewServer opens the database and builds a configured http.Server.
func NewServer(cfg *config.Config) (*http.Server, error) {
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	router := NewRouter(cfg, db)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server, nil
}

// NewRouter wires repositories, services, handlers and routes onto a gin
// engine. Tests call this directly with their own database.
func NewRouter(cfg *config.Config, db *sql.DB) *gin.Engine {
	// Dependency injection
	userRepo := repositories.NewUserRepository(db)
	restaurantRepo := repositories.NewRestaurantRepository(db)
	reservationRepo := repositories.NewReservationRepository(db)

	authService := services.NewAuthService(userRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	restaurantService := services.NewRestaurantService(userRepo, restaurantRepo)
	reservationService := services.NewReservationService(userRepo, reservationRepo)

	authHandler := handlers.NewAuthHandler(authService)
	restaurantHandler := handlers.NewRestaurantHandler(restaurantService)
	reservationHandler := handlers.NewReservationHandler(reservationService)

	router := gin.Default()
	router.Use(cors.Default())

	authenticate := middlewares.Authenticate(cfg.Auth.JWTSecret)
	routes.RegisterRoutes(router, authHandler, restaurantHandler, reservationHandler, authenticate)

	return router
}
