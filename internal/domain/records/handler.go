package records

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-care-journal/internal/middleware"
	"pet-care-journal/internal/platform/httpjson"
	"pet-care-journal/internal/platform/pagination"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/records/feed", feedHandler(svc))

	r.Route("/pets/{petID}/records", func(rr chi.Router) {
		rr.Post("/", createRecordHandler(svc))
		rr.Get("/", listRecordsHandler(svc))

		rr.Get("/{recordID}", getRecordHandler(svc))
		// Sólo el autor
		rr.Put("/{recordID}", modifyRecordHandler(svc))
		rr.Delete("/{recordID}", deleteRecordHandler(svc))
	})
}

type recordRequest struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	IsPublic bool   `json:"is_public"`
}

type recordResponse struct {
	ID        string    `json:"id"`
	PetID     string    `json:"pet_id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	IsPublic  bool      `json:"is_public"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type workResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// feedHandler devuelve el feed público paginado.
// @Summary Feed de registros públicos
// @Tags records
// @Produce json
// @Param page query int false "Página (desde 0)"
// @Param size query int false "Tamaño de página (default 20)"
// @Success 200 {object} pagination.Page[recordResponse]
// @Failure 401 {object} httpjson.ErrorResponse
// @Router /records/feed [get]
func feedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.RequireUsername(w, r); !ok {
			return
		}

		page, err := svc.Feed(r.Context(), pagination.FromQuery(r))
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, pagination.Map(page, toRecordResponse))
	}
}

func listRecordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := middleware.RequireUsername(w, r)
		if !ok {
			return
		}

		page, err := svc.ListByPet(r.Context(), chi.URLParam(r, "petID"), username, pagination.FromQuery(r))
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, pagination.Map(page, toRecordResponse))
	}
}

// createRecordHandler crea un registro de diario.
// @Summary Crear registro
// @Tags records
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body recordRequest true "Contenido"
// @Success 201 {object} workResponse
// @Failure 400 {object} httpjson.ErrorResponse
// @Failure 403 {object} httpjson.ErrorResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /pets/{petID}/records [post]
func createRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := middleware.RequireUsername(w, r)
		if !ok {
			return
		}

		var req recordRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, err)
			return
		}

		res, err := svc.Create(r.Context(), chi.URLParam(r, "petID"), username, Input(req))
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		httpjson.Write(w, http.StatusCreated, workResponse(res))
	}
}

func getRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := middleware.RequireUsername(w, r)
		if !ok {
			return
		}

		rec, err := svc.Get(r.Context(), chi.URLParam(r, "petID"), chi.URLParam(r, "recordID"), username)
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, toRecordResponse(rec))
	}
}

// modifyRecordHandler reemplaza título, cuerpo y visibilidad.
// @Summary Modificar registro (sólo autor)
// @Tags records
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param recordID path string true "ID del registro"
// @Param payload body recordRequest true "Contenido"
// @Success 200 {object} workResponse
// @Failure 403 {object} httpjson.ErrorResponse "no es el autor"
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /pets/{petID}/records/{recordID} [put]
func modifyRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := middleware.RequireUsername(w, r)
		if !ok {
			return
		}

		var req recordRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, err)
			return
		}

		res, err := svc.Modify(r.Context(), chi.URLParam(r, "petID"), chi.URLParam(r, "recordID"), username, Input(req))
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, workResponse(res))
	}
}

// deleteRecordHandler hace borrado lógico.
// @Summary Borrar registro (sólo autor)
// @Tags records
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param recordID path string true "ID del registro"
// @Success 200 {object} workResponse
// @Failure 403 {object} httpjson.ErrorResponse "no es el autor"
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /pets/{petID}/records/{recordID} [delete]
func deleteRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := middleware.RequireUsername(w, r)
		if !ok {
			return
		}

		res, err := svc.Delete(r.Context(), chi.URLParam(r, "petID"), chi.URLParam(r, "recordID"), username)
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, workResponse(res))
	}
}

func toRecordResponse(rec Record) recordResponse {
	return recordResponse{
		ID:        rec.ID,
		PetID:     rec.PetID,
		UserID:    rec.UserID,
		Title:     rec.Title,
		Body:      rec.Body,
		IsPublic:  rec.IsPublic,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}
