package rest

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"depotlog-service/internal/domain/entity"
)

type crewResponse struct {
	Status string             `json:"status"`
	Crew   *entity.CrewMember `json:"crew"`
}

// handleSearchBus handles GET /api/search/bus?q= for form autocomplete.
func (s *Server) handleSearchBus(w http.ResponseWriter, r *http.Request) {
	buses, err := s.directory.SearchBuses(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, buses)
}

// handleSearchPlace handles GET /api/search/place?q= for form autocomplete.
func (s *Server) handleSearchPlace(w http.ResponseWriter, r *http.Request) {
	places, err := s.directory.SearchPlaces(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, places)
}

// handleCrewLookup handles GET /api/crew/{id}, backing the crew auto-fill
// on the waybill form.
func (s *Server) handleCrewLookup(w http.ResponseWriter, r *http.Request) {
	member, err := s.directory.CrewByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Crew member not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, crewResponse{Status: "success", Crew: member})
}
