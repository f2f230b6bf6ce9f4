// Package httpjson: escritura/lectura JSON compartida por los handlers.
package httpjson

import (
	"encoding/json"
	"net/http"

	"pet-care-journal/internal/platform/apperr"
)

// ErrorResponse es el cuerpo de todas las respuestas de error.
type ErrorResponse struct {
	Code    apperr.Code `json:"code"`
	Message string      `json:"message"`
}

func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error traduce un error de dominio a status + {code, message}.
func Error(w http.ResponseWriter, err error) {
	Write(w, apperr.HTTPStatus(err), ErrorResponse{
		Code:    apperr.CodeOf(err),
		Message: apperr.MessageOf(err),
	})
}

// Decode lee el body JSON rechazando campos desconocidos.
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperr.Wrap(apperr.CodeInvalidRequest, "invalid json", err)
	}
	return nil
}
