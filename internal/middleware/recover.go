package middleware

import (
	"net/http"
	"runtime/debug"

	chimw "github.com/go-chi/chi/v5/middleware"

	"pet-care-journal/internal/platform/apperr"
	"pet-care-journal/internal/platform/httpjson"
	"pet-care-journal/internal/platform/logger"
)

// Recover reemplaza a chimw.Recoverer: loguea el panic con el logger del servicio
// y responde 500 con el mismo formato JSON que el resto de errores.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.Error("panic recovered", map[string]any{
					"request_id": chimw.GetReqID(r.Context()),
					"method":     r.Method,
					"path":       r.URL.Path,
					"panic":      rec,
					"stack":      string(debug.Stack()),
				})

				httpjson.Write(w, http.StatusInternalServerError, httpjson.ErrorResponse{
					Code:    apperr.CodeInternal,
					Message: "internal error",
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
