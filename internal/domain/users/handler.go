package users

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-care-journal/internal/middleware"
	"pet-care-journal/internal/platform/httpjson"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/users", func(ur chi.Router) {
		ur.Post("/join", joinHandler(svc))
		ur.Post("/login", loginHandler(svc))
		ur.Get("/me", meHandler(svc))
	})
}

type joinRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// joinHandler registra un usuario nuevo.
// @Summary Registrar usuario
// @Tags users
// @Accept json
// @Produce json
// @Param payload body joinRequest true "username, password y email"
// @Success 201 {object} userResponse
// @Failure 400 {object} httpjson.ErrorResponse
// @Failure 409 {object} httpjson.ErrorResponse "username duplicado"
// @Router /users/join [post]
func joinHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req joinRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, err)
			return
		}

		u, err := svc.Join(r.Context(), JoinInput{
			Username: req.Username,
			Password: req.Password,
			Email:    req.Email,
		})
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		httpjson.Write(w, http.StatusCreated, toUserResponse(u))
	}
}

// loginHandler devuelve un JWT.
// @Summary Login
// @Tags users
// @Accept json
// @Produce json
// @Param payload body loginRequest true "credenciales"
// @Success 200 {object} loginResponse
// @Failure 401 {object} httpjson.ErrorResponse
// @Router /users/login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, err)
			return
		}

		token, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, loginResponse{Token: token})
	}
}

func meHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := middleware.RequireUsername(w, r)
		if !ok {
			return
		}

		u, err := svc.Me(r.Context(), username)
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, toUserResponse(u))
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
