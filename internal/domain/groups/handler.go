package groups

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-care-journal/internal/domain/pets"
	"pet-care-journal/internal/middleware"
	"pet-care-journal/internal/platform/httpjson"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/groups", createGroupHandler(svc))
	r.Get("/groups", listMyGroupsHandler(svc))

	// Sólo miembros del grupo
	r.Get("/groups/{groupID}/users", listMembersHandler(svc))
	r.Get("/groups/{groupID}/pets", listPetsHandler(svc))

	// Sólo owner
	r.Post("/groups/{groupID}/users", addMemberHandler(svc))
}

type createGroupRequest struct {
	Name        string `json:"name"`
	RoleInGroup string `json:"role_in_group"`
}

type addMemberRequest struct {
	Username    string `json:"username"`
	RoleInGroup string `json:"role_in_group"`
}

type groupResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	OwnerUserID string    `json:"owner_user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type memberResponse struct {
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	RoleInGroup string    `json:"role_in_group"`
	IsOwner     bool      `json:"is_owner"`
	JoinedAt    time.Time `json:"joined_at"`
}

// createGroupHandler crea un grupo con el usuario como owner.
// @Summary Crear grupo
// @Tags groups
// @Accept json
// @Produce json
// @Param X-Debug-Username header string false "Solo en modo dev"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body createGroupRequest true "Nombre del grupo y rol del creador"
// @Success 201 {object} groupResponse
// @Failure 400 {object} httpjson.ErrorResponse
// @Failure 401 {object} httpjson.ErrorResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /groups [post]
func createGroupHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := middleware.RequireUsername(w, r)
		if !ok {
			return
		}

		var req createGroupRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, err)
			return
		}

		g, err := svc.Create(r.Context(), username, CreateInput{Name: req.Name, RoleInGroup: req.RoleInGroup})
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		httpjson.Write(w, http.StatusCreated, toGroupResponse(g))
	}
}

func listMyGroupsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := middleware.RequireUsername(w, r)
		if !ok {
			return
		}

		items, err := svc.ListMine(r.Context(), username)
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		out := make([]groupResponse, 0, len(items))
		for _, g := range items {
			out = append(out, toGroupResponse(g))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

// listMembersHandler lista los miembros del grupo.
// @Summary Miembros del grupo
// @Tags groups
// @Produce json
// @Param groupID path string true "ID del grupo"
// @Success 200 {array} memberResponse
// @Failure 401 {object} httpjson.ErrorResponse
// @Failure 403 {object} httpjson.ErrorResponse "no es miembro"
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /groups/{groupID}/users [get]
func listMembersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := middleware.RequireUsername(w, r)
		if !ok {
			return
		}

		items, err := svc.Members(r.Context(), chi.URLParam(r, "groupID"), username)
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		out := make([]memberResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toMemberResponse(m))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

// listPetsHandler lista las mascotas del grupo.
// @Summary Mascotas del grupo
// @Tags groups
// @Produce json
// @Param groupID path string true "ID del grupo"
// @Success 200 {array} pets.PetResponse
// @Failure 403 {object} httpjson.ErrorResponse "no es miembro"
// @Router /groups/{groupID}/pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := middleware.RequireUsername(w, r)
		if !ok {
			return
		}

		items, err := svc.Pets(r.Context(), chi.URLParam(r, "groupID"), username)
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		out := make([]pets.PetResponse, 0, len(items))
		for _, p := range items {
			out = append(out, pets.ToResponse(p))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

// addMemberHandler agrega un usuario existente al grupo.
// @Summary Agregar miembro
// @Tags groups
// @Accept json
// @Produce json
// @Param groupID path string true "ID del grupo"
// @Param payload body addMemberRequest true "username a agregar"
// @Success 201 {object} memberResponse
// @Failure 403 {object} httpjson.ErrorResponse "no es owner"
// @Failure 404 {object} httpjson.ErrorResponse
// @Failure 409 {object} httpjson.ErrorResponse "ya es miembro"
// @Router /groups/{groupID}/users [post]
func addMemberHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := middleware.RequireUsername(w, r)
		if !ok {
			return
		}

		var req addMemberRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, err)
			return
		}

		m, err := svc.AddMember(r.Context(), chi.URLParam(r, "groupID"), username, AddMemberInput{
			Username:    req.Username,
			RoleInGroup: req.RoleInGroup,
		})
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		httpjson.Write(w, http.StatusCreated, toMemberResponse(m))
	}
}

func toGroupResponse(g Group) groupResponse {
	return groupResponse{
		ID:          g.ID,
		Name:        g.Name,
		OwnerUserID: g.OwnerUserID,
		CreatedAt:   g.CreatedAt,
	}
}

func toMemberResponse(m Member) memberResponse {
	return memberResponse{
		UserID:      m.UserID,
		Username:    m.Username,
		Email:       m.Email,
		RoleInGroup: m.RoleInGroup,
		IsOwner:     m.IsOwner,
		JoinedAt:    m.JoinedAt,
	}
}
