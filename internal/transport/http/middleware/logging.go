package middleware

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/you-humble/storefront/platform/logger"
)

// RequestFields attaches the request id, method and path to the request
// context so that every log line written while serving it carries them.
// It must run after chi's RequestID middleware.
func RequestFields(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		fields := []logger.Field{
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
		}
		if id := chimw.GetReqID(r.Context()); id != "" {
			fields = append(fields, logger.String("request_id", id))
		}

		ctx := logger.WithContext(r.Context(), fields...)
		next.ServeHTTP(w, r.WithContext(ctx))
	}

	return http.HandlerFunc(fn)
}
