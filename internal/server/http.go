package server

import (
	"net/http"
	"summoner-rating/internal/middleware"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// NewHTTPHandler mounts the rating service behind CORS and request-id
// logging.
func NewHTTPHandler(ratingServer *RatingServer, logger zerolog.Logger) http.Handler {
	path, handler := NewRatingServiceHandler(ratingServer)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         3600,
	})

	mux := http.NewServeMux()
	mux.Handle(path, middleware.RequestID(logger)(c.Handler(handler)))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return mux
}
