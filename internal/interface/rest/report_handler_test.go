package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"depotlog-service/internal/domain/entity"
	"depotlog-service/internal/usecase"
)

func TestGatedRoutes_RequireSession(t *testing.T) {
	handler := newTestServer(deps{})

	paths := []string{
		"/api/live-data",
		"/api/master-log",
		"/api/bus-history/KL-15-A-9999",
		"/api/search",
		"/api/search/bus?q=KL",
		"/api/search/place?q=Koll",
		"/api/crew/C1001",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			rec := doRequest(handler, httptestRequest(http.MethodGet, path, ""))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "Unauthorized")
		})
	}
}

func TestLiveData_ReturnsBoardWithStats(t *testing.T) {
	session := &entity.Session{DepotID: "TVM"}
	reports := &mockReports{
		liveBoard: func(_ context.Context, got *entity.Session) (*usecase.LiveBoard, error) {
			require.NotNil(t, got)
			assert.Equal(t, "TVM", got.DepotID)
			return &usecase.LiveBoard{
				Waybills: []usecase.LiveWaybill{
					{WaybillView: usecase.WaybillView{BusRegNo: "KL-15-A-1102"}, OnTime: true},
				},
				Stats: usecase.LiveStats{ActiveFleet: 1, Punctuality: 100.0, Utilization: 76},
			}, nil
		},
	}
	handler := newTestServer(deps{auth: resolvingAuth(session), reports: reports})

	req := withSessionCookie(httptestRequest(http.MethodGet, "/api/live-data", ""))
	rec := doRequest(handler, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status string `json:"status"`
		Stats  struct {
			ActiveFleet int     `json:"active_fleet"`
			Punctuality float64 `json:"punctuality"`
			Utilization int     `json:"utilization"`
		} `json:"stats"`
		Waybills []map[string]interface{} `json:"waybills"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, 1, body.Stats.ActiveFleet)
	assert.Equal(t, 100.0, body.Stats.Punctuality)
	require.Len(t, body.Waybills, 1)
	assert.Equal(t, true, body.Waybills[0]["onTime"])
}

func TestMasterLog_ReturnsDateAndRows(t *testing.T) {
	session := &entity.Session{DepotID: "TVM"}
	reports := &mockReports{
		masterLog: func(_ context.Context, _ *entity.Session) (*usecase.MasterLog, error) {
			return &usecase.MasterLog{
				Date: "Mar 05, 2024",
				Waybills: []usecase.MasterLogEntry{
					{BusRegNo: "KL-15-A-1102", Status: usecase.StatusDelayed, StatusClass: "bg-danger"},
				},
			}, nil
		},
	}
	handler := newTestServer(deps{auth: resolvingAuth(session), reports: reports})

	req := withSessionCookie(httptestRequest(http.MethodGet, "/api/master-log", ""))
	rec := doRequest(handler, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mar 05, 2024")
	assert.Contains(t, rec.Body.String(), "Delayed")
}

func TestBusHistory_PassesRegistration(t *testing.T) {
	session := &entity.Session{DepotID: "TVM"}
	var gotReg string
	reports := &mockReports{
		busHistory: func(_ context.Context, busRegNo string) ([]usecase.WaybillView, error) {
			gotReg = busRegNo
			return []usecase.WaybillView{{BusRegNo: busRegNo, DepotID: "KLM"}}, nil
		},
	}
	handler := newTestServer(deps{auth: resolvingAuth(session), reports: reports})

	req := withSessionCookie(httptestRequest(http.MethodGet, "/api/bus-history/KL-15-A-9999", ""))
	rec := doRequest(handler, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "KL-15-A-9999", gotReg)
}

func TestSearch_PassesFilters(t *testing.T) {
	session := &entity.Session{DepotID: "TVM"}
	var gotQuery usecase.SearchQuery
	reports := &mockReports{
		search: func(_ context.Context, query usecase.SearchQuery) (*usecase.SearchResult, error) {
			gotQuery = query
			return &usecase.SearchResult{Count: 0, Waybills: []usecase.SearchEntry{}}, nil
		},
	}
	handler := newTestServer(deps{auth: resolvingAuth(session), reports: reports})

	target := "/api/search?date=2024-01-01&busNo=kl-15&depotId=TVM&movementType=Arrival"
	req := withSessionCookie(httptestRequest(http.MethodGet, target, ""))
	rec := doRequest(handler, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2024-01-01", gotQuery.Date)
	assert.Equal(t, "kl-15", gotQuery.BusRegNo)
	assert.Equal(t, "TVM", gotQuery.DepotID)
	assert.Equal(t, "Arrival", gotQuery.MovementType)

	var body struct {
		Count    int           `json:"count"`
		Waybills []interface{} `json:"waybills"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 0, body.Count)
	assert.NotNil(t, body.Waybills)
}
