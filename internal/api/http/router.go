package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"stayhaven-backend/internal/metrics"
	"stayhaven-backend/internal/security"
	"stayhaven-backend/internal/service"
)

// RouterConfig bundles the handlers and middleware dependencies for the
// HTTP surface.
type RouterConfig struct {
	Users    service.UserService
	Listings service.ListingService
	Bookings service.BookingService
	Reviews  service.ReviewService
	Tokens   security.TokenManager

	CORSAllowedOrigins []string
}

// NewRouter wires up all routes. Reads on users, listings and reviews are
// public; every mutation and the whole booking surface require a bearer
// token.
func NewRouter(cfg RouterConfig) http.Handler {
	metrics.Register()

	userHandler := NewUserHandler(cfg.Users)
	listingHandler := NewListingHandler(cfg.Listings)
	bookingHandler := NewBookingHandler(cfg.Bookings)
	reviewHandler := NewReviewHandler(cfg.Reviews)

	r := mux.NewRouter()
	r.Use(LoggingMiddleware)
	r.Use(MetricsMiddleware)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public reads.
	api.HandleFunc("/users", userHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/users/{id:[0-9]+}", userHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/listings", listingHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/listings/{id:[0-9]+}", listingHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/reviews", reviewHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/reviews/listing/{listingId:[0-9]+}", reviewHandler.ListByListing).Methods(http.MethodGet)
	api.HandleFunc("/reviews/author/{authorId:[0-9]+}", reviewHandler.ListByAuthor).Methods(http.MethodGet)

	// Authenticated surface.
	auth := api.PathPrefix("").Subrouter()
	auth.Use(AuthMiddleware(cfg.Tokens))

	auth.HandleFunc("/users/{id:[0-9]+}", userHandler.Update).Methods(http.MethodPut)
	auth.HandleFunc("/users/{id:[0-9]+}", userHandler.Delete).Methods(http.MethodDelete)

	auth.HandleFunc("/listings", listingHandler.Create).Methods(http.MethodPost)
	auth.HandleFunc("/listings/{id:[0-9]+}", listingHandler.Update).Methods(http.MethodPut)
	auth.HandleFunc("/listings/{id:[0-9]+}", listingHandler.Delete).Methods(http.MethodDelete)

	auth.HandleFunc("/bookings", bookingHandler.Create).Methods(http.MethodPost)
	auth.HandleFunc("/bookings", bookingHandler.List).Methods(http.MethodGet)
	auth.HandleFunc("/bookings/customer/me", bookingHandler.ListMine).Methods(http.MethodGet)
	auth.HandleFunc("/bookings/owner/me", bookingHandler.ListForMyListings).Methods(http.MethodGet)
	auth.HandleFunc("/bookings/{id:[0-9]+}", bookingHandler.Get).Methods(http.MethodGet)
	auth.HandleFunc("/bookings/{id:[0-9]+}", bookingHandler.UpdateDates).Methods(http.MethodPut)
	auth.HandleFunc("/bookings/{id:[0-9]+}", bookingHandler.Cancel).Methods(http.MethodDelete)
	auth.HandleFunc("/bookings/{id:[0-9]+}/status", bookingHandler.UpdateStatus).Methods(http.MethodPatch)

	auth.HandleFunc("/reviews", reviewHandler.Create).Methods(http.MethodPost)
	auth.HandleFunc("/reviews/{id:[0-9]+}", reviewHandler.Delete).Methods(http.MethodDelete)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	return c.Handler(r)
}
