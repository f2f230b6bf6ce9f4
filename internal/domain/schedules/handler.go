package schedules

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-care-journal/internal/middleware"
	"pet-care-journal/internal/platform/apperr"
	"pet-care-journal/internal/platform/httpjson"
	"pet-care-journal/internal/platform/pagination"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets/{petID}/schedules", func(sr chi.Router) {
		sr.Post("/", createScheduleHandler(svc))
		sr.Get("/", listSchedulesHandler(svc))

		sr.Get("/{scheduleID}", getScheduleHandler(svc))
		sr.Put("/{scheduleID}", modifyScheduleHandler(svc))
		sr.Delete("/{scheduleID}", deleteScheduleHandler(svc))
	})
}

type scheduleRequest struct {
	AssigneeID  string `json:"assignee_id"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	Place       string `json:"place"`
	DueDate     string `json:"due_date"` // RFC3339
	IsCompleted bool   `json:"is_completed"`
}

type scheduleResponse struct {
	ID          string    `json:"id"`
	PetID       string    `json:"pet_id"`
	UserID      string    `json:"user_id"`
	AssigneeID  string    `json:"assignee_id,omitempty"`
	Category    Category  `json:"category"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Place       string    `json:"place"`
	DueDate     time.Time `json:"due_date"`
	IsCompleted bool      `json:"is_completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type deleteResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

func (req scheduleRequest) toInput() (Input, error) {
	due, err := time.Parse(time.RFC3339, req.DueDate)
	if err != nil {
		return Input{}, apperr.InvalidRequest("due_date must be RFC3339")
	}
	return Input{
		AssigneeID:  req.AssigneeID,
		Category:    req.Category,
		Title:       req.Title,
		Body:        req.Body,
		Place:       req.Place,
		DueDate:     due.UTC(),
		IsCompleted: req.IsCompleted,
	}, nil
}

// createScheduleHandler agenda una tarea para la mascota.
// @Summary Crear agenda
// @Tags schedules
// @Accept json
// @Produce json
// @Param X-Debug-Username header string false "Solo en modo dev"
// @Param Authorization header string false "Bearer token en producción"
// @Param petID path string true "ID de la mascota"
// @Param payload body scheduleRequest true "due_date en RFC3339"
// @Success 201 {object} scheduleResponse
// @Failure 400 {object} httpjson.ErrorResponse
// @Failure 403 {object} httpjson.ErrorResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /pets/{petID}/schedules [post]
func createScheduleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := middleware.RequireUsername(w, r)
		if !ok {
			return
		}

		var req scheduleRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, err)
			return
		}
		in, err := req.toInput()
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		sc, err := svc.Create(r.Context(), chi.URLParam(r, "petID"), username, in)
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		httpjson.Write(w, http.StatusCreated, toScheduleResponse(sc))
	}
}

// listSchedulesHandler lista la agenda paginada.
// @Summary Listar agenda
// @Tags schedules
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param page query int false "Página (desde 0)"
// @Param size query int false "Tamaño (default 20)"
// @Param sort query string false "campo,dir (default category,desc)"
// @Success 200 {object} pagination.Page[scheduleResponse]
// @Failure 400 {object} httpjson.ErrorResponse
// @Failure 403 {object} httpjson.ErrorResponse
// @Router /pets/{petID}/schedules [get]
func listSchedulesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := middleware.RequireUsername(w, r)
		if !ok {
			return
		}

		page, err := svc.List(r.Context(), chi.URLParam(r, "petID"), username, pagination.FromQuery(r))
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, pagination.Map(page, toScheduleResponse))
	}
}

func getScheduleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := middleware.RequireUsername(w, r)
		if !ok {
			return
		}

		sc, err := svc.Get(r.Context(), chi.URLParam(r, "petID"), chi.URLParam(r, "scheduleID"), username)
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, toScheduleResponse(sc))
	}
}

func modifyScheduleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := middleware.RequireUsername(w, r)
		if !ok {
			return
		}

		var req scheduleRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, err)
			return
		}
		in, err := req.toInput()
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		sc, err := svc.Modify(r.Context(), chi.URLParam(r, "petID"), chi.URLParam(r, "scheduleID"), username, in)
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, toScheduleResponse(sc))
	}
}

func deleteScheduleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := middleware.RequireUsername(w, r)
		if !ok {
			return
		}

		res, err := svc.Delete(r.Context(), chi.URLParam(r, "petID"), chi.URLParam(r, "scheduleID"), username)
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, deleteResponse(res))
	}
}

func toScheduleResponse(sc Schedule) scheduleResponse {
	return scheduleResponse{
		ID:          sc.ID,
		PetID:       sc.PetID,
		UserID:      sc.UserID,
		AssigneeID:  sc.AssigneeID,
		Category:    sc.Category,
		Title:       sc.Title,
		Body:        sc.Body,
		Place:       sc.Place,
		DueDate:     sc.DueDate,
		IsCompleted: sc.IsCompleted,
		CreatedAt:   sc.CreatedAt,
		UpdatedAt:   sc.UpdatedAt,
	}
}
