package usecase

import (
	"context"
	"strings"

	"depotlog-service/internal/domain/entity"
	"depotlog-service/internal/domain/repository"
	"depotlog-service/pkg/logger"
	"depotlog-service/pkg/metrics"
)

// Authenticator resolves station master logins into depot-scoped sessions.
type Authenticator struct {
	depots   repository.DepotRepository
	sessions repository.SessionRepository
	log      logger.Logger
	metrics  *metrics.Metrics
}

// NewAuthenticator creates a new authenticator
func NewAuthenticator(depots repository.DepotRepository, sessions repository.SessionRepository, log logger.Logger, m *metrics.Metrics) *Authenticator {
	return &Authenticator{
		depots:   depots,
		sessions: sessions,
		log:      log,
		metrics:  m,
	}
}

// Login authenticates a station master and opens a server-side session.
//
// The depot check is a strict tenancy rule: a correct id and password
// submitted against the wrong depot selection fails with ErrDepotMismatch,
// not ErrInvalidCredentials, so the form can tell the two apart.
// The password comparison is plain equality against the stored value,
// matching the admin seeding contract.
func (a *Authenticator) Login(ctx context.Context, depotID, stationMasterID, password string) (*entity.Session, error) {
	depot, err := a.depots.FindByStationMasterID(ctx, stationMasterID)
	if err != nil {
		a.metrics.LoginAttempts.WithLabelValues("failure").Inc()
		return nil, err
	}

	if !strings.EqualFold(depot.DepotID, depotID) {
		a.log.Warn("Login depot mismatch",
			"station_master_id", stationMasterID,
			"selected_depot", depotID,
			"bound_depot", depot.DepotID,
		)
		a.metrics.LoginAttempts.WithLabelValues("failure").Inc()
		return nil, entity.ErrDepotMismatch
	}

	if depot.Password != password {
		a.metrics.LoginAttempts.WithLabelValues("failure").Inc()
		return nil, entity.ErrInvalidCredentials
	}

	session := &entity.Session{
		DepotID:         depot.DepotID,
		StationMasterID: depot.StationMasterID,
		DepotName:       depot.DepotName,
		Platforms:       depot.PlatformList(),
	}
	if _, err := a.sessions.Create(ctx, session); err != nil {
		a.metrics.LoginAttempts.WithLabelValues("failure").Inc()
		return nil, err
	}

	a.log.Info("Login successful", "station_master_id", depot.StationMasterID, "depot_id", depot.DepotID)
	a.metrics.LoginAttempts.WithLabelValues("success").Inc()
	return session, nil
}

// Logout closes the session. Unknown tokens are ignored.
func (a *Authenticator) Logout(ctx context.Context, token string) error {
	return a.sessions.Delete(ctx, token)
}

// Resolve maps a cookie token back to its session, returning
// entity.ErrUnauthorized when it is missing or expired.
func (a *Authenticator) Resolve(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, entity.ErrUnauthorized
	}
	return a.sessions.Get(ctx, token)
}
