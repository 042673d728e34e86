package rest_test

import (
	"context"
	"net/http"
	"net/http/httptest"

	"depotlog-service/internal/domain/entity"
	"depotlog-service/internal/interface/rest"
	"depotlog-service/internal/usecase"
	"depotlog-service/pkg/logger"
)

// Hand-written doubles for the service interfaces defined in the rest
// package. Each method is a function field; tests set only what they need.

type mockAuth struct {
	login   func(ctx context.Context, depotID, stationMasterID, password string) (*entity.Session, error)
	logout  func(ctx context.Context, token string) error
	resolve func(ctx context.Context, token string) (*entity.Session, error)
}

func (m *mockAuth) Login(ctx context.Context, depotID, stationMasterID, password string) (*entity.Session, error) {
	return m.login(ctx, depotID, stationMasterID, password)
}
func (m *mockAuth) Logout(ctx context.Context, token string) error {
	if m.logout == nil {
		return nil
	}
	return m.logout(ctx, token)
}
func (m *mockAuth) Resolve(ctx context.Context, token string) (*entity.Session, error) {
	if m.resolve == nil {
		return nil, entity.ErrUnauthorized
	}
	return m.resolve(ctx, token)
}

type mockIngest struct {
	submit func(ctx context.Context, payload *usecase.WaybillPayload, session *entity.Session) (string, error)
}

func (m *mockIngest) Submit(ctx context.Context, payload *usecase.WaybillPayload, session *entity.Session) (string, error) {
	return m.submit(ctx, payload, session)
}

type mockReports struct {
	liveBoard  func(ctx context.Context, session *entity.Session) (*usecase.LiveBoard, error)
	masterLog  func(ctx context.Context, session *entity.Session) (*usecase.MasterLog, error)
	busHistory func(ctx context.Context, busRegNo string) ([]usecase.WaybillView, error)
	search     func(ctx context.Context, query usecase.SearchQuery) (*usecase.SearchResult, error)
}

func (m *mockReports) LiveBoard(ctx context.Context, session *entity.Session) (*usecase.LiveBoard, error) {
	return m.liveBoard(ctx, session)
}
func (m *mockReports) MasterLog(ctx context.Context, session *entity.Session) (*usecase.MasterLog, error) {
	return m.masterLog(ctx, session)
}
func (m *mockReports) BusHistory(ctx context.Context, busRegNo string) ([]usecase.WaybillView, error) {
	return m.busHistory(ctx, busRegNo)
}
func (m *mockReports) Search(ctx context.Context, query usecase.SearchQuery) (*usecase.SearchResult, error) {
	return m.search(ctx, query)
}

type mockDirectory struct {
	searchBuses  func(ctx context.Context, query string) ([]entity.Bus, error)
	searchPlaces func(ctx context.Context, query string) ([]entity.Place, error)
	crewByID     func(ctx context.Context, crewID string) (*entity.CrewMember, error)
}

func (m *mockDirectory) SearchBuses(ctx context.Context, query string) ([]entity.Bus, error) {
	return m.searchBuses(ctx, query)
}
func (m *mockDirectory) SearchPlaces(ctx context.Context, query string) ([]entity.Place, error) {
	return m.searchPlaces(ctx, query)
}
func (m *mockDirectory) CrewByID(ctx context.Context, crewID string) (*entity.CrewMember, error) {
	return m.crewByID(ctx, crewID)
}

type deps struct {
	auth      *mockAuth
	ingest    *mockIngest
	reports   *mockReports
	directory *mockDirectory
	ping      rest.Pinger
}

// resolvingAuth returns an auth double whose Resolve accepts the fixed
// token "tok-1" as the given session.
func resolvingAuth(session *entity.Session) *mockAuth {
	return &mockAuth{
		resolve: func(_ context.Context, token string) (*entity.Session, error) {
			if token == "tok-1" {
				return session, nil
			}
			return nil, entity.ErrUnauthorized
		},
	}
}

func newTestServer(d deps) http.Handler {
	if d.auth == nil {
		d.auth = &mockAuth{}
	}
	if d.ingest == nil {
		d.ingest = &mockIngest{}
	}
	if d.reports == nil {
		d.reports = &mockReports{}
	}
	if d.directory == nil {
		d.directory = &mockDirectory{}
	}
	if d.ping == nil {
		d.ping = func(context.Context) error { return nil }
	}
	server := rest.NewServer(d.auth, d.ingest, d.reports, d.directory, d.ping, logger.NewNopLogger())
	return server.Routes([]string{"http://localhost:3000"})
}

func doRequest(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func withSessionCookie(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: "depot_session", Value: "tok-1"})
	return req
}
