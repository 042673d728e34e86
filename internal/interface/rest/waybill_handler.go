package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"depotlog-service/internal/domain/entity"
	"depotlog-service/internal/usecase"
)

type submitResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// handleSubmitWaybill handles POST /api/waybill. A session is optional
// here: the form also runs on depot kiosks that log before signing in.
// When one is present the ingest stamps depot_id and logged_by from it.
func (s *Server) handleSubmitWaybill(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil || len(body) == 0 {
		writeError(w, http.StatusBadRequest, "No data provided")
		return
	}

	var payload usecase.WaybillPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "No data provided")
		return
	}

	session := s.sessionFromCookie(r)
	id, err := s.ingest.Submit(r.Context(), &payload, session)
	if err != nil {
		if errors.Is(err, entity.ErrBadRequest) {
			writeError(w, http.StatusBadRequest, "No data provided")
			return
		}
		writeError(w, http.StatusInternalServerError, "Server error: "+err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, submitResponse{
		Status:  "success",
		Message: "Waybill entry logged successfully",
		ID:      id,
	})
}
