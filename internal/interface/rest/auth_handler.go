package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"depotlog-service/internal/domain/entity"
)

type loginRequest struct {
	DepotID         string `json:"depotId"`
	StationMasterID string `json:"stationMasterId"`
	Password        string `json:"password"`
}

type loginResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	DepotName string `json:"depot_name"`
	Platforms []int  `json:"platforms"`
}

// handleLogin handles POST /login. Store failures stay 500; every
// credential outcome is a 401 so the store shape never leaks through the
// status code, but depot mismatch keeps its own message.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := s.auth.Login(r.Context(), req.DepotID, req.StationMasterID, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrDepotMismatch):
			writeError(w, http.StatusUnauthorized, "Station master is not assigned to the selected depot")
		case errors.Is(err, entity.ErrNotFound), errors.Is(err, entity.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
		default:
			writeError(w, http.StatusInternalServerError, "Database error: "+err.Error())
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    session.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, loginResponse{
		Status:    "success",
		Message:   "Login successful",
		DepotName: session.DepotName,
		Platforms: session.Platforms,
	})
}

// handleLogout handles GET /logout: drop the server-side session, expire
// the cookie, send the browser back to the login page.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if err := s.auth.Logout(r.Context(), cookie.Value); err != nil {
			s.log.Warn("Session delete failed", "error", err)
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/login", http.StatusFound)
}
