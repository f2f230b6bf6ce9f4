package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Code es el código legible por máquina que viaja en cada error de dominio.
type Code string

const (
	CodeNotFound       Code = "NOT_FOUND"
	CodeForbidden      Code = "INVALID_PERMISSION"
	CodeInvalidRequest Code = "INVALID_REQUEST"
	CodeDuplicate      Code = "DUPLICATED"
	CodeUnauthorized   Code = "UNAUTHORIZED"
	CodeInternal       Code = "INTERNAL"
)

// Error es el error tipado que exponen servicios y repositorios.
// La capa HTTP lo traduce a status con HTTPStatus.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Sentinels para comparar con errors.Is (se compara sólo el Code).
var (
	ErrNotFound       = &Error{Code: CodeNotFound, Message: "not found"}
	ErrForbidden      = &Error{Code: CodeForbidden, Message: "forbidden"}
	ErrInvalidRequest = &Error{Code: CodeInvalidRequest, Message: "invalid request"}
	ErrDuplicate      = &Error{Code: CodeDuplicate, Message: "duplicated"}
	ErrUnauthorized   = &Error{Code: CodeUnauthorized, Message: "unauthorized"}
)

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

func New(code Code, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

func Wrap(code Code, msg string, err error) *Error {
	return &Error{Code: code, Message: msg, Err: err}
}

func NotFound(msg string) *Error       { return New(CodeNotFound, msg) }
func Forbidden(msg string) *Error      { return New(CodeForbidden, msg) }
func InvalidRequest(msg string) *Error { return New(CodeInvalidRequest, msg) }
func Duplicate(msg string) *Error      { return New(CodeDuplicate, msg) }
func Unauthorized(msg string) *Error   { return New(CodeUnauthorized, msg) }

// CodeOf devuelve el Code del primer *Error de la cadena, o CodeInternal.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// MessageOf devuelve el mensaje público del error.
// Los errores no tipados no filtran detalles internos.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal error"
}

func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeForbidden:
		return http.StatusForbidden
	case CodeInvalidRequest:
		return http.StatusBadRequest
	case CodeDuplicate:
		return http.StatusConflict
	case CodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
