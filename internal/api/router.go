package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func NewRouter(apiHandler *APIHandler, logger *zap.Logger, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)    // Recover from panics
	r.Use(middleware.StripSlashes) // Ensure consistent path handling
	r.Use(requestLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// Session routes
	r.Post("/sessions/new", apiHandler.NewSessionHandler)
	r.Get("/sessions", apiHandler.ListSessionsHandler)
	r.Get("/sessions/{sessionID}", apiHandler.GetSessionHandler)
	r.Get("/sessions/{sessionID}/messages", apiHandler.GetMessagesHandler)
	r.Delete("/sessions/{sessionID}", apiHandler.DeleteSessionHandler)

	// Conversation and feedback routes
	r.Post("/ask", apiHandler.AskHandler)
	r.Post("/messages/{messageID}/feedback", apiHandler.MessageFeedbackHandler)

	r.Get("/health", apiHandler.HealthHandler)

	return r
}

// requestLogger logs one line per request through the service logger.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
