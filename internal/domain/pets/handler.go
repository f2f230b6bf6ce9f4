package pets

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-care-journal/internal/middleware"
	"pet-care-journal/internal/platform/apperr"
	"pet-care-journal/internal/platform/httpjson"
)

const birthdayLayout = "2006-01-02"

func RegisterRoutes(r chi.Router, svc *Service) {
	// Alta dentro de un grupo (miembro del grupo)
	r.Post("/groups/{groupID}/pets", createPetHandler(svc))

	// Perfil (miembro del grupo de la mascota)
	r.Get("/pets/{petID}", getPetHandler(svc))
	r.Patch("/pets/{petID}", updatePetHandler(svc))
}

type createPetRequest struct {
	Name     string `json:"name"`
	Species  string `json:"species"`
	Breed    string `json:"breed"`
	Sex      string `json:"sex"`
	Birthday string `json:"birthday"` // YYYY-MM-DD opcional
	Notes    string `json:"notes"`
}

type PetResponse struct {
	ID       string     `json:"id"`
	GroupID  string     `json:"group_id"`
	Name     string     `json:"name"`
	Species  Species    `json:"species"`
	Breed    string     `json:"breed"`
	Sex      Sex        `json:"sex"`
	Birthday *time.Time `json:"birthday,omitempty"`
	Notes    string     `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type updatePetRequest struct {
	Name    *string `json:"name"`
	Species *string `json:"species"`
	Breed   *string `json:"breed"`
	Sex     *string `json:"sex"`
	Notes   *string `json:"notes"`
}

// createPetHandler registra una mascota en el grupo.
// @Summary Crear mascota en un grupo
// @Tags pets
// @Accept json
// @Produce json
// @Param X-Debug-Username header string false "Solo en modo dev"
// @Param Authorization header string false "Bearer token en producción"
// @Param groupID path string true "ID del grupo"
// @Param payload body createPetRequest true "Datos de la mascota"
// @Success 201 {object} PetResponse
// @Failure 400 {object} httpjson.ErrorResponse
// @Failure 401 {object} httpjson.ErrorResponse
// @Failure 403 {object} httpjson.ErrorResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /groups/{groupID}/pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := middleware.RequireUsername(w, r)
		if !ok {
			return
		}

		var req createPetRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, err)
			return
		}

		var bd *time.Time
		if strings.TrimSpace(req.Birthday) != "" {
			t, err := time.Parse(birthdayLayout, req.Birthday)
			if err != nil {
				httpjson.Error(w, apperr.InvalidRequest("birthday must be YYYY-MM-DD"))
				return
			}
			bd = &t
		}

		p, err := svc.Create(r.Context(), chi.URLParam(r, "groupID"), username, CreateInput{
			Name:     req.Name,
			Species:  req.Species,
			Breed:    req.Breed,
			Sex:      req.Sex,
			Birthday: bd,
			Notes:    req.Notes,
		})
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		httpjson.Write(w, http.StatusCreated, ToResponse(p))
	}
}

// getPetHandler devuelve el perfil.
// @Summary Perfil de mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} PetResponse
// @Failure 401 {object} httpjson.ErrorResponse
// @Failure 403 {object} httpjson.ErrorResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := middleware.RequireUsername(w, r)
		if !ok {
			return
		}

		p, err := svc.Get(r.Context(), chi.URLParam(r, "petID"), username)
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, ToResponse(p))
	}
}

// updatePetHandler aplica PATCH sobre el perfil. "birthday": null limpia la fecha.
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := middleware.RequireUsername(w, r)
		if !ok {
			return
		}

		// Decodificamos a map primero para saber si "birthday" vino (y si vino null).
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			httpjson.Error(w, apperr.InvalidRequest("invalid json"))
			return
		}

		bd := BirthdayPatch{}
		if v, exists := raw["birthday"]; exists {
			bd.Present = true
			delete(raw, "birthday")
			if string(v) != "null" {
				var s string
				if err := json.Unmarshal(v, &s); err != nil {
					httpjson.Error(w, apperr.InvalidRequest("birthday must be YYYY-MM-DD or null"))
					return
				}
				t, err := time.Parse(birthdayLayout, s)
				if err != nil {
					httpjson.Error(w, apperr.InvalidRequest("birthday must be YYYY-MM-DD or null"))
					return
				}
				bd.Value = &t
			}
		}

		var req updatePetRequest
		b, _ := json.Marshal(raw)
		if err := json.Unmarshal(b, &req); err != nil {
			httpjson.Error(w, apperr.InvalidRequest("invalid json"))
			return
		}

		updated, err := svc.UpdateProfile(r.Context(), chi.URLParam(r, "petID"), username, UpdateProfileInput{
			Name:     req.Name,
			Species:  req.Species,
			Breed:    req.Breed,
			Sex:      req.Sex,
			Birthday: bd,
			Notes:    req.Notes,
		})
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, ToResponse(updated))
	}
}

// ToResponse lo reutiliza groups para listar las mascotas del grupo.
func ToResponse(p Pet) PetResponse {
	return PetResponse{
		ID:        p.ID,
		GroupID:   p.GroupID,
		Name:      p.Name,
		Species:   p.Species,
		Breed:     p.Breed,
		Sex:       p.Sex,
		Birthday:  p.Birthday,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
