package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"pet-care-journal/internal/middleware"
	"pet-care-journal/internal/platform/logger"
)

func TestBaseMiddlewares_PanicStillLogsAccessLine(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := logger.FromZap(zap.New(core))

	r := chi.NewRouter()
	r.Use(baseMiddlewares(log, nil)...)
	r.Get("/boom", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set(middleware.DebugUserHeader, "ana")
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())

	access := logs.FilterMessage("http request").All()
	require.Len(t, access, 1)
	ctx := access[0].ContextMap()
	assert.EqualValues(t, http.StatusInternalServerError, ctx["status"])
	assert.Equal(t, "ana", ctx["username"])
	assert.Equal(t, zapcore.ErrorLevel, access[0].Level)
}
