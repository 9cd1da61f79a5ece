package dashboard

import (
	"strconv"

	"go.uber.org/zap"

	"liyu1981.xyz/solar-dashboard-service/pkg/common"
	"liyu1981.xyz/solar-dashboard-service/pkg/models"
)

// The demo deployment accepts exactly one account. There is no hashing,
// token issuance or lockout.
const (
	DemoEmail    = "admin@solarfarm.com"
	DemoPassword = "demo123"
)

type Session struct {
	ClientID      string `json:"clientId"`
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email,omitempty"`
}

func (d *Dashboard) login(clientID, email, password string) (*Session, error) {
	logger := common.GetCoreLogger(common.LoggerCategoryAuth)

	if clientID == "" {
		return nil, ErrMissingClientID
	}
	if email != DemoEmail || password != DemoPassword {
		logger.Warn("Rejected login", zap.String("client_id", clientID), zap.String("email", email))
		return nil, ErrInvalidCredentials
	}

	if err := d.setPreference(clientID, models.PreferenceIsAuthenticated, strconv.FormatBool(true)); err != nil {
		return nil, err
	}
	if err := d.setPreference(clientID, models.PreferenceUserEmail, email); err != nil {
		return nil, err
	}

	logger.Info("Client logged in", zap.String("client_id", clientID), zap.String("email", email))
	return &Session{ClientID: clientID, Authenticated: true, Email: email}, nil
}

func (d *Dashboard) logout(clientID string) error {
	logger := common.GetCoreLogger(common.LoggerCategoryAuth)

	if clientID == "" {
		return ErrMissingClientID
	}
	if err := d.deletePreferences(clientID, models.PreferenceIsAuthenticated, models.PreferenceUserEmail); err != nil {
		return err
	}

	logger.Info("Client logged out", zap.String("client_id", clientID))
	return nil
}

func (d *Dashboard) getSession(clientID string) (*Session, error) {
	session := &Session{ClientID: clientID}
	if clientID == "" {
		return session, nil
	}

	flag, _, err := d.getPreference(clientID, models.PreferenceIsAuthenticated)
	if err != nil {
		return nil, err
	}
	session.Authenticated, _ = strconv.ParseBool(flag)
	if !session.Authenticated {
		return session, nil
	}

	if session.Email, _, err = d.getPreference(clientID, models.PreferenceUserEmail); err != nil {
		return nil, err
	}
	return session, nil
}

type IAuthImpl struct {
	dashboard *Dashboard
}

func (ia *IAuthImpl) Login(clientID, email, password string) (*Session, error) {
	return ia.dashboard.login(clientID, email, password)
}

func (ia *IAuthImpl) Logout(clientID string) error {
	return ia.dashboard.logout(clientID)
}

func (ia *IAuthImpl) GetSession(clientID string) (*Session, error) {
	return ia.dashboard.getSession(clientID)
}

func (d *Dashboard) GetIAuth() IAuth {
	return &IAuthImpl{dashboard: d}
}
