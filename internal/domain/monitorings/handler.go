package monitorings

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"pet-care-journal/internal/middleware"
	"pet-care-journal/internal/platform/httpjson"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets/{petID}/monitorings", func(mr chi.Router) {
		mr.Post("/", createMonitoringHandler(svc))
		mr.Get("/", listMonitoringsHandler(svc))

		// ?start=YYYYMMDD&end=YYYYMMDD, rango mínimo 7 días
		mr.Get("/report", reportHandler(svc))
		mr.Get("/export", exportHandler(svc))

		mr.Get("/{monitoringID}", getMonitoringHandler(svc))
		mr.Put("/{monitoringID}", modifyMonitoringHandler(svc))
		mr.Delete("/{monitoringID}", deleteMonitoringHandler(svc))
	})
}

type monitoringRequest struct {
	Date       string  `json:"date"` // YYYY-MM-DD
	Weight     float64 `json:"weight"`
	Vomit      bool    `json:"vomit"`
	AmPill     bool    `json:"am_pill"`
	PmPill     bool    `json:"pm_pill"`
	Urination  int     `json:"urination"`
	Defecation int     `json:"defecation"`
	WalkCnt    int     `json:"walk_cnt"`
	Notes      string  `json:"notes"`

	CustomSymptom     *bool  `json:"custom_symptom"`
	CustomSymptomName string `json:"custom_symptom_name"`
	CustomInt         *int   `json:"custom_int"`
	CustomIntName     string `json:"custom_int_name"`
}

type monitoringResponse struct {
	ID         string  `json:"id"`
	PetID      string  `json:"pet_id"`
	Date       string  `json:"date"`
	Weight     float64 `json:"weight"`
	Vomit      bool    `json:"vomit"`
	AmPill     bool    `json:"am_pill"`
	PmPill     bool    `json:"pm_pill"`
	Urination  int     `json:"urination"`
	Defecation int     `json:"defecation"`
	WalkCnt    int     `json:"walk_cnt"`
	Notes      string  `json:"notes"`

	CustomSymptom     *bool  `json:"custom_symptom,omitempty"`
	CustomSymptomName string `json:"custom_symptom_name,omitempty"`
	CustomInt         *int   `json:"custom_int,omitempty"`
	CustomIntName     string `json:"custom_int_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type reportResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`

	Days      int     `json:"days"`
	WeightAvg float64 `json:"weight_avg"`

	VomitCount int `json:"vomit_count"`
	AmPillTrue int `json:"am_pill_true"`
	PmPillTrue int `json:"pm_pill_true"`

	UrinationAvg  float64 `json:"urination_avg"`
	DefecationAvg float64 `json:"defecation_avg"`
	WalkAvg       float64 `json:"walk_avg"`

	CustomSymptomName  string `json:"custom_symptom_name"`
	CustomSymptomCount int    `json:"custom_symptom_count"`
	CustomSymptomTrue  int    `json:"custom_symptom_true"`

	CustomIntName  string  `json:"custom_int_name"`
	CustomIntCount int     `json:"custom_int_count"`
	CustomIntAvg   float64 `json:"custom_int_avg"`
}

type deleteResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

func (req monitoringRequest) toInput() (Input, error) {
	d, err := ParseDate(req.Date)
	if err != nil {
		return Input{}, err
	}
	return Input{
		Date:              d,
		Weight:            req.Weight,
		Vomit:             req.Vomit,
		AmPill:            req.AmPill,
		PmPill:            req.PmPill,
		Urination:         req.Urination,
		Defecation:        req.Defecation,
		WalkCnt:           req.WalkCnt,
		Notes:             req.Notes,
		CustomSymptom:     req.CustomSymptom,
		CustomSymptomName: req.CustomSymptomName,
		CustomInt:         req.CustomInt,
		CustomIntName:     req.CustomIntName,
	}, nil
}

// createMonitoringHandler registra el control del día.
// @Summary Crear monitoreo
// @Description Una entrada por mascota y fecha; una fecha repetida devuelve 400.
// @Tags monitorings
// @Accept json
// @Produce json
// @Param X-Debug-Username header string false "Solo en modo dev"
// @Param Authorization header string false "Bearer token en producción"
// @Param petID path string true "ID de la mascota"
// @Param payload body monitoringRequest true "date en YYYY-MM-DD"
// @Success 201 {object} monitoringResponse
// @Failure 400 {object} httpjson.ErrorResponse "fecha inválida o repetida"
// @Failure 403 {object} httpjson.ErrorResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /pets/{petID}/monitorings [post]
func createMonitoringHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := middleware.RequireUsername(w, r)
		if !ok {
			return
		}

		var req monitoringRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, err)
			return
		}
		in, err := req.toInput()
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		m, err := svc.Create(r.Context(), chi.URLParam(r, "petID"), username, in)
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		httpjson.Write(w, http.StatusCreated, toMonitoringResponse(m))
	}
}

// listMonitoringsHandler lista el rango pedido en orden de fecha.
// @Summary Listar monitoreos por rango
// @Tags monitorings
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param start query string true "YYYYMMDD"
// @Param end query string true "YYYYMMDD (al menos 7 días después de start)"
// @Success 200 {array} monitoringResponse
// @Failure 400 {object} httpjson.ErrorResponse
// @Failure 403 {object} httpjson.ErrorResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /pets/{petID}/monitorings [get]
func listMonitoringsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := middleware.RequireUsername(w, r)
		if !ok {
			return
		}

		q := r.URL.Query()
		items, err := svc.List(r.Context(), chi.URLParam(r, "petID"), q.Get("start"), q.Get("end"), username)
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		out := lo.Map(items, func(m Monitoring, _ int) monitoringResponse {
			return toMonitoringResponse(m)
		})
		httpjson.Write(w, http.StatusOK, out)
	}
}

// reportHandler devuelve los agregados del rango.
// @Summary Reporte de monitoreos
// @Tags monitorings
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param start query string true "YYYYMMDD"
// @Param end query string true "YYYYMMDD (al menos 7 días después de start)"
// @Success 200 {object} reportResponse
// @Failure 400 {object} httpjson.ErrorResponse
// @Failure 403 {object} httpjson.ErrorResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /pets/{petID}/monitorings/report [get]
func reportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := middleware.RequireUsername(w, r)
		if !ok {
			return
		}

		q := r.URL.Query()
		rep, err := svc.Report(r.Context(), chi.URLParam(r, "petID"), q.Get("start"), q.Get("end"), username)
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, toReportResponse(rep))
	}
}

// exportHandler descarga el rango y el reporte como planilla.
// @Summary Exportar monitoreos (xlsx)
// @Tags monitorings
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param petID path string true "ID de la mascota"
// @Param start query string true "YYYYMMDD"
// @Param end query string true "YYYYMMDD"
// @Success 200 {file} file
// @Failure 400 {object} httpjson.ErrorResponse
// @Router /pets/{petID}/monitorings/export [get]
func exportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := middleware.RequireUsername(w, r)
		if !ok {
			return
		}

		petID := chi.URLParam(r, "petID")
		q := r.URL.Query()
		b, err := svc.Export(r.Context(), petID, q.Get("start"), q.Get("end"), username)
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		filename := "monitorings_" + q.Get("start") + "_" + q.Get("end") + ".xlsx"
		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(b)
	}
}

func getMonitoringHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := middleware.RequireUsername(w, r)
		if !ok {
			return
		}

		m, err := svc.Get(r.Context(), chi.URLParam(r, "petID"), chi.URLParam(r, "monitoringID"), username)
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, toMonitoringResponse(m))
	}
}

// modifyMonitoringHandler reemplaza la entrada completa.
// @Summary Modificar monitoreo
// @Tags monitorings
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param monitoringID path string true "ID del monitoreo"
// @Param payload body monitoringRequest true "date en YYYY-MM-DD"
// @Success 200 {object} monitoringResponse
// @Failure 400 {object} httpjson.ErrorResponse "no corresponde a la mascota o fecha repetida"
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /pets/{petID}/monitorings/{monitoringID} [put]
func modifyMonitoringHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := middleware.RequireUsername(w, r)
		if !ok {
			return
		}

		var req monitoringRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, err)
			return
		}
		in, err := req.toInput()
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		m, err := svc.Modify(r.Context(), chi.URLParam(r, "petID"), chi.URLParam(r, "monitoringID"), username, in)
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, toMonitoringResponse(m))
	}
}

func deleteMonitoringHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := middleware.RequireUsername(w, r)
		if !ok {
			return
		}

		res, err := svc.Delete(r.Context(), chi.URLParam(r, "petID"), chi.URLParam(r, "monitoringID"), username)
		if err != nil {
			httpjson.Error(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, deleteResponse(res))
	}
}

func toMonitoringResponse(m Monitoring) monitoringResponse {
	return monitoringResponse{
		ID:                m.ID,
		PetID:             m.PetID,
		Date:              m.Date.Format(BodyDateLayout),
		Weight:            m.Weight,
		Vomit:             m.Vomit,
		AmPill:            m.AmPill,
		PmPill:            m.PmPill,
		Urination:         m.Urination,
		Defecation:        m.Defecation,
		WalkCnt:           m.WalkCnt,
		Notes:             m.Notes,
		CustomSymptom:     m.CustomSymptom,
		CustomSymptomName: m.CustomSymptomName,
		CustomInt:         m.CustomInt,
		CustomIntName:     m.CustomIntName,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func toReportResponse(r Report) reportResponse {
	return reportResponse{
		Start:              r.Start.Format(QueryDateLayout),
		End:                r.End.Format(QueryDateLayout),
		Days:               r.Days,
		WeightAvg:          r.WeightAvg,
		VomitCount:         r.VomitCount,
		AmPillTrue:         r.AmPillTrue,
		PmPillTrue:         r.PmPillTrue,
		UrinationAvg:       r.UrinationAvg,
		DefecationAvg:      r.DefecationAvg,
		WalkAvg:            r.WalkAvg,
		CustomSymptomName:  r.CustomSymptomName,
		CustomSymptomCount: r.CustomSymptomCount,
		CustomSymptomTrue:  r.CustomSymptomTrue,
		CustomIntName:      r.CustomIntName,
		CustomIntCount:     r.CustomIntCount,
		CustomIntAvg:       r.CustomIntAvg,
	}
}
