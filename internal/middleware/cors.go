package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS разрешает запросы веб-клиента с перечисленных origin.
func CORS(origins []string) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Encoding", "X-Requested-With"},
		MaxAge:         300,
	}).Handler
}
