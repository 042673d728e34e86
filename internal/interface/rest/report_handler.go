package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"depotlog-service/internal/usecase"
)

type liveDataResponse struct {
	Status   string                `json:"status"`
	Waybills []usecase.LiveWaybill `json:"waybills"`
	Stats    usecase.LiveStats     `json:"stats"`
}

type historyResponse struct {
	Status   string                `json:"status"`
	Waybills []usecase.WaybillView `json:"waybills"`
}

type searchResponse struct {
	Status   string                `json:"status"`
	Count    int                   `json:"count"`
	Waybills []usecase.SearchEntry `json:"waybills"`
}

type masterLogResponse struct {
	Status   string                   `json:"status"`
	Date     string                   `json:"date"`
	Waybills []usecase.MasterLogEntry `json:"waybills"`
}

// handleLiveData handles GET /api/live-data.
func (s *Server) handleLiveData(w http.ResponseWriter, r *http.Request) {
	board, err := s.reports.LiveBoard(r.Context(), sessionFrom(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, liveDataResponse{
		Status:   "success",
		Waybills: board.Waybills,
		Stats:    board.Stats,
	})
}

// handleMasterLog handles GET /api/master-log.
func (s *Server) handleMasterLog(w http.ResponseWriter, r *http.Request) {
	log, err := s.reports.MasterLog(r.Context(), sessionFrom(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, masterLogResponse{
		Status:   "success",
		Date:     log.Date,
		Waybills: log.Waybills,
	})
}

// handleBusHistory handles GET /api/bus-history/{busNo}.
func (s *Server) handleBusHistory(w http.ResponseWriter, r *http.Request) {
	waybills, err := s.reports.BusHistory(r.Context(), chi.URLParam(r, "busNo"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, historyResponse{
		Status:   "success",
		Waybills: waybills,
	})
}

// handleSearch handles GET /api/search with optional date, busNo, depotId
// and movementType filters.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := usecase.SearchQuery{
		Date:         r.URL.Query().Get("date"),
		BusRegNo:     r.URL.Query().Get("busNo"),
		DepotID:      r.URL.Query().Get("depotId"),
		MovementType: r.URL.Query().Get("movementType"),
	}
	result, err := s.reports.Search(r.Context(), query)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{
		Status:   "success",
		Count:    result.Count,
		Waybills: result.Waybills,
	})
}
