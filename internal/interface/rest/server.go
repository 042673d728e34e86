// Package rest implements the HTTP surface of the depot waybill service.
// Handlers are methods on Server, split into per-area files that all share
// the same struct. The JSON envelope ({"status": ..., "message": ...})
// matches what the dashboard frontend expects.
package rest

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"depotlog-service/internal/domain/entity"
	"depotlog-service/internal/usecase"
	"depotlog-service/pkg/logger"
)

// AuthService defines the session operations the handlers depend on.
// Interfaces live here, in the consumer package, so handler tests can
// inject doubles without a store.
type AuthService interface {
	Login(ctx context.Context, depotID, stationMasterID, password string) (*entity.Session, error)
	Logout(ctx context.Context, token string) error
	Resolve(ctx context.Context, token string) (*entity.Session, error)
}

// IngestService defines the waybill submission operation.
type IngestService interface {
	Submit(ctx context.Context, payload *usecase.WaybillPayload, session *entity.Session) (string, error)
}

// ReportService defines the reporting operations.
type ReportService interface {
	LiveBoard(ctx context.Context, session *entity.Session) (*usecase.LiveBoard, error)
	MasterLog(ctx context.Context, session *entity.Session) (*usecase.MasterLog, error)
	BusHistory(ctx context.Context, busRegNo string) ([]usecase.WaybillView, error)
	Search(ctx context.Context, query usecase.SearchQuery) (*usecase.SearchResult, error)
}

// DirectoryService defines the autocomplete and crew lookups.
type DirectoryService interface {
	SearchBuses(ctx context.Context, query string) ([]entity.Bus, error)
	SearchPlaces(ctx context.Context, query string) ([]entity.Place, error)
	CrewByID(ctx context.Context, crewID string) (*entity.CrewMember, error)
}

// Pinger checks store reachability for the health probe.
type Pinger func(ctx context.Context) error

// Server holds the handler dependencies.
type Server struct {
	auth      AuthService
	ingest    IngestService
	reports   ReportService
	directory DirectoryService
	pingStore Pinger
	log       logger.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(auth AuthService, ingest IngestService, reports ReportService, directory DirectoryService, pingStore Pinger, log logger.Logger) *Server {
	return &Server{
		auth:      auth,
		ingest:    ingest,
		reports:   reports,
		directory: directory,
		pingStore: pingStore,
		log:       log,
	}
}

// Routes assembles the router with the shared middleware stack.
func (s *Server) Routes(corsOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(s.requestLogger)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}).Handler)

	r.Post("/login", s.handleLogin)
	r.Get("/logout", s.handleLogout)
	r.Post("/api/waybill", s.handleSubmitWaybill)

	// Every reporting read requires a session; there is no public read path.
	r.Group(func(gr chi.Router) {
		gr.Use(s.requireSession)
		gr.Get("/api/live-data", s.handleLiveData)
		gr.Get("/api/master-log", s.handleMasterLog)
		gr.Get("/api/bus-history/{busNo}", s.handleBusHistory)
		gr.Get("/api/search", s.handleSearch)
		gr.Get("/api/search/bus", s.handleSearchBus)
		gr.Get("/api/search/place", s.handleSearchPlace)
		gr.Get("/api/crew/{id}", s.handleCrewLookup)
	})

	r.Get("/test_db", s.handleTestDB)
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
