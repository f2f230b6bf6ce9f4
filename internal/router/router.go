package router

import (
	"database/sql"
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-care-journal/docs"
	"pet-care-journal/internal/adapters/auth/jwtauth"
	mem "pet-care-journal/internal/adapters/storage/memory"
	pg "pet-care-journal/internal/adapters/storage/postgres"
	"pet-care-journal/internal/domain/groups"
	"pet-care-journal/internal/domain/monitorings"
	"pet-care-journal/internal/domain/pets"
	"pet-care-journal/internal/domain/records"
	"pet-care-journal/internal/domain/schedules"
	"pet-care-journal/internal/domain/users"
	"pet-care-journal/internal/domain/validator"
	"pet-care-journal/internal/middleware"
	"pet-care-journal/internal/platform/logger"
	"pet-care-journal/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// devSecret firma los tokens de /users/login cuando no hay JWT_SECRET.
const devSecret = "dev-only-secret"

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: nil => zap no-op.
	Logger logger.Logger

	// Opcional: nil => emisor con secreto de desarrollo.
	Tokens *jwtauth.Service
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	tokens := opts.Tokens
	if tokens == nil {
		tokens = jwtauth.New(devSecret, "pet-care-journal", 24*time.Hour)
	}

	r := chi.NewRouter()

	r.Use(baseMiddlewares(log, opts.AuthVerifier)...)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	repos := newRepos(opts.DB)

	// Validator compartido: existencia + permisos para todos los módulos.
	v := validator.New(repos)

	// Services por módulo
	usersSvc := users.NewService(repos.Users, tokens)
	petsSvc := pets.NewService(repos.Pets, v)
	groupsSvc := groups.NewService(repos.Groups, v, repos.Users, petsSvc)
	schedulesSvc := schedules.NewService(repos.Schedules, v)
	recordsSvc := records.NewService(repos.Records, v)
	monitoringsSvc := monitorings.NewService(repos.Monitorings, v, log)

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc)
	groups.RegisterRoutes(r, groupsSvc)
	pets.RegisterRoutes(r, petsSvc)
	schedules.RegisterRoutes(r, schedulesSvc)
	records.RegisterRoutes(r, recordsSvc)
	monitorings.RegisterRoutes(r, monitoringsSvc)

	return r
}

// baseMiddlewares: RequestLogger envuelve a Recover para que los panics
// también dejen su línea de acceso con status 500.
func baseMiddlewares(log logger.Logger, verifier auth.AuthVerifier) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		chimw.RequestID,
		chimw.RealIP,
		middleware.AuthContext(verifier),
		middleware.RequestLogger(log),
		middleware.Recover(log),
	}
}

func newRepos(db *sql.DB) validator.Repos {
	if db != nil {
		return validator.Repos{
			Users:       pg.NewUsersRepo(db),
			Groups:      pg.NewGroupsRepo(db),
			Pets:        pg.NewPetsRepo(db),
			Schedules:   pg.NewSchedulesRepo(db),
			Records:     pg.NewRecordsRepo(db),
			Monitorings: pg.NewMonitoringsRepo(db),
		}
	}
	return validator.Repos{
		Users:       mem.NewUserRepo(),
		Groups:      mem.NewGroupRepo(),
		Pets:        mem.NewPetRepo(),
		Schedules:   mem.NewScheduleRepo(),
		Records:     mem.NewRecordRepo(),
		Monitorings: mem.NewMonitoringRepo(),
	}
}
