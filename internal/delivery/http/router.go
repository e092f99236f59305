package http

import (
	"database/sql"
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"symposiumadmin/internal/delivery/http/controllers"
	"symposiumadmin/internal/delivery/http/helpers"
	"symposiumadmin/internal/delivery/http/middleware"
	"symposiumadmin/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Every /api/admin route except login goes through the admin session gate.
func NewRouter(
	db *sql.DB,
	verifier domain.SessionVerifier,
	logger *slog.Logger,
	authController *controllers.AuthController,
	adminController *controllers.AdminController,
	reviewController *controllers.ReviewController,
	rosterController *controllers.RosterController,
) *http.ServeMux {
	mux := http.NewServeMux()
	admin := middleware.RequireAdmin(verifier, logger)

	// Auth
	mux.HandleFunc("POST /api/admin/login", authController.Login)
	mux.HandleFunc("POST /api/admin/logout", authController.Logout)
	mux.HandleFunc("GET /api/admin/me", admin(authController.Me))

	// Venue operations
	mux.HandleFunc("POST /api/admin/checkin", admin(adminController.CheckIn))
	mux.HandleFunc("POST /api/admin/event-status", admin(adminController.EventStatus))
	mux.HandleFunc("POST /api/admin/payment-status", admin(adminController.PaymentStatus))
	mux.HandleFunc("POST /api/admin/abstract-review", admin(reviewController.AbstractReview))

	// Roster
	mux.HandleFunc("GET /api/admin/registrations", admin(rosterController.Registrations))
	mux.HandleFunc("GET /api/admin/search", admin(rosterController.Search))
	mux.HandleFunc("GET /api/admin/stats", admin(rosterController.Stats))

	// Health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			helpers.WriteError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		helpers.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
