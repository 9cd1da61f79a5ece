package dashboard

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"liyu1981.xyz/solar-dashboard-service/pkg/common"
	"liyu1981.xyz/solar-dashboard-service/pkg/models"
)

// SettingsView is the settings document as the settings page and the JSON
// export see it.
type SettingsView struct {
	models.Settings
	Theme models.Theme `json:"theme"`
	// Saved is false while the client still runs on the defaults.
	Saved     bool       `json:"saved"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func (d *Dashboard) loadSettings(clientID string) (*SettingsView, error) {
	view := &SettingsView{Settings: models.DefaultSettings(), Theme: models.ThemeSystem}
	if clientID == "" {
		return view, nil
	}

	var record models.SettingsRecord
	err := d.Db.Conn.First(&record, "client_id = ?", clientID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
	case err != nil:
		return nil, err
	default:
		view.Settings = record.Settings
		view.Saved = true
		updated := record.UpdatedAt
		view.UpdatedAt = &updated
	}

	if view.Theme, err = d.theme(clientID); err != nil {
		return nil, err
	}
	return view, nil
}

func (d *Dashboard) saveSettings(clientID string, settings *models.Settings) (*SettingsView, error) {
	logger := common.GetCoreLogger(common.LoggerCategorySettings)

	if clientID == "" {
		return nil, ErrMissingClientID
	}

	record := models.SettingsRecord{ClientID: clientID, Settings: *settings}
	err := d.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "client_id"}},
		UpdateAll: true,
	}).Create(&record).Error
	if err != nil {
		return nil, err
	}

	logger.Info("Saved settings for client",
		zap.String("client_id", clientID),
		zap.Bool("auto_refresh", settings.AutoRefresh),
		zap.Int("refresh_interval", settings.RefreshInterval))

	return d.loadSettings(clientID)
}

func (d *Dashboard) resetSettings(clientID string) (*SettingsView, error) {
	logger := common.GetCoreLogger(common.LoggerCategorySettings)

	if clientID == "" {
		return nil, ErrMissingClientID
	}
	if err := d.Db.Conn.Delete(&models.SettingsRecord{}, "client_id = ?", clientID).Error; err != nil {
		return nil, err
	}

	logger.Info("Reset settings to defaults", zap.String("client_id", clientID))
	return d.loadSettings(clientID)
}

type ISettingsImpl struct {
	dashboard *Dashboard
}

func (is *ISettingsImpl) LoadSettings(clientID string) (*SettingsView, error) {
	return is.dashboard.loadSettings(clientID)
}

func (is *ISettingsImpl) SaveSettings(clientID string, settings *models.Settings) (*SettingsView, error) {
	return is.dashboard.saveSettings(clientID, settings)
}

func (is *ISettingsImpl) ResetSettings(clientID string) (*SettingsView, error) {
	return is.dashboard.resetSettings(clientID)
}

func (d *Dashboard) GetISettings() ISettings {
	return &ISettingsImpl{dashboard: d}
}
