package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"communityregistration/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	registrationController *controllers.RegistrationController,
	eventController *controllers.EventController,
	healthController *controllers.HealthController,
) *http.ServeMux {
	mux := http.NewServeMux()

	// API Routes
	mux.HandleFunc("POST /register", registrationController.Register)
	mux.HandleFunc("GET /events", eventController.ListEvents)
	mux.HandleFunc("GET /events/{eventID}/registrations", eventController.ListRegistrants)

	// Health
	mux.HandleFunc("GET /health", healthController.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
