package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"depotlog-service/internal/domain/entity"
)

func TestSearchBus_ReturnsDisplayFields(t *testing.T) {
	session := &entity.Session{DepotID: "TVM"}
	directory := &mockDirectory{
		searchBuses: func(_ context.Context, query string) ([]entity.Bus, error) {
			assert.Equal(t, "KL-15", query)
			return []entity.Bus{{BusRegNo: "KL-15-A-1102", ServiceCategory: "Super Fast"}}, nil
		},
	}
	handler := newTestServer(deps{auth: resolvingAuth(session), directory: directory})

	req := withSessionCookie(httptestRequest(http.MethodGet, "/api/search/bus?q=KL-15", ""))
	rec := doRequest(handler, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "KL-15-A-1102", body[0]["bus_reg_no"])
	assert.Equal(t, "Super Fast", body[0]["service_category"])
}

func TestSearchPlace_ReturnsDisplayFields(t *testing.T) {
	session := &entity.Session{DepotID: "TVM"}
	directory := &mockDirectory{
		searchPlaces: func(_ context.Context, query string) ([]entity.Place, error) {
			return []entity.Place{{Name: "Kollam", Code: "KLM"}}, nil
		},
	}
	handler := newTestServer(deps{auth: resolvingAuth(session), directory: directory})

	req := withSessionCookie(httptestRequest(http.MethodGet, "/api/search/place?q=Koll", ""))
	rec := doRequest(handler, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Kollam", body[0]["name"])
	assert.Equal(t, "KLM", body[0]["code"])
}

func TestCrewLookup_Found(t *testing.T) {
	session := &entity.Session{DepotID: "TVM"}
	directory := &mockDirectory{
		crewByID: func(_ context.Context, crewID string) (*entity.CrewMember, error) {
			assert.Equal(t, "C1001", crewID)
			return &entity.CrewMember{CrewID: "C1001", Name: "Rajesh Kumar", Role: entity.RoleConductor}, nil
		},
	}
	handler := newTestServer(deps{auth: resolvingAuth(session), directory: directory})

	req := withSessionCookie(httptestRequest(http.MethodGet, "/api/crew/C1001", ""))
	rec := doRequest(handler, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Rajesh Kumar")
}

func TestCrewLookup_NotFound(t *testing.T) {
	session := &entity.Session{DepotID: "TVM"}
	directory := &mockDirectory{
		crewByID: func(_ context.Context, _ string) (*entity.CrewMember, error) {
			return nil, entity.ErrNotFound
		},
	}
	handler := newTestServer(deps{auth: resolvingAuth(session), directory: directory})

	req := withSessionCookie(httptestRequest(http.MethodGet, "/api/crew/C9999", ""))
	rec := doRequest(handler, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTestDB_Healthy(t *testing.T) {
	handler := newTestServer(deps{ping: func(context.Context) error { return nil }})

	rec := doRequest(handler, httptestRequest(http.MethodGet, "/test_db", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Connected to MongoDB!")
}

func TestTestDB_Unreachable(t *testing.T) {
	handler := newTestServer(deps{ping: func(context.Context) error { return errors.New("server selection timeout") }})

	rec := doRequest(handler, httptestRequest(http.MethodGet, "/test_db", ""))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHealth(t *testing.T) {
	handler := newTestServer(deps{})

	rec := doRequest(handler, httptestRequest(http.MethodGet, "/health", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}
