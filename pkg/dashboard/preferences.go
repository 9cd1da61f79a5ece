package dashboard

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"liyu1981.xyz/solar-dashboard-service/pkg/common"
	"liyu1981.xyz/solar-dashboard-service/pkg/models"
)

type ThemeView struct {
	Theme models.Theme `json:"theme"`
}

func ParseTheme(s string) (models.Theme, error) {
	switch t := models.Theme(s); t {
	case models.ThemeLight, models.ThemeDark, models.ThemeSystem:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
}

// getPreference reads one stored key. found is false when the client never
// set it.
func (d *Dashboard) getPreference(clientID string, key models.PreferenceKey) (value string, found bool, err error) {
	var pref models.Preference
	err = d.Db.Conn.First(&pref, "client_id = ? AND pref_key = ?", clientID, key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return pref.Value, true, nil
}

func (d *Dashboard) setPreference(clientID string, key models.PreferenceKey, value string) error {
	pref := models.Preference{ClientID: clientID, Key: key, Value: value}
	return d.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "client_id"}, {Name: "pref_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&pref).Error
}

func (d *Dashboard) deletePreferences(clientID string, keys ...models.PreferenceKey) error {
	return d.Db.Conn.
		Where("client_id = ? AND pref_key IN ?", clientID, keys).
		Delete(&models.Preference{}).Error
}

func (d *Dashboard) theme(clientID string) (models.Theme, error) {
	value, found, err := d.getPreference(clientID, models.PreferenceTheme)
	if err != nil {
		return "", err
	}
	if !found {
		return models.ThemeSystem, nil
	}
	return models.Theme(value), nil
}

func (d *Dashboard) getTheme(clientID string) (ThemeView, error) {
	if clientID == "" {
		return ThemeView{Theme: models.ThemeSystem}, nil
	}
	t, err := d.theme(clientID)
	return ThemeView{Theme: t}, err
}

func (d *Dashboard) setTheme(clientID string, theme string) (ThemeView, error) {
	logger := common.GetCoreLogger(common.LoggerCategorySettings)

	if clientID == "" {
		return ThemeView{}, ErrMissingClientID
	}
	t, err := ParseTheme(theme)
	if err != nil {
		return ThemeView{}, err
	}
	if err := d.setPreference(clientID, models.PreferenceTheme, string(t)); err != nil {
		return ThemeView{}, err
	}

	logger.Info("Updated theme", zap.String("client_id", clientID), zap.String("theme", string(t)))
	return ThemeView{Theme: t}, nil
}

type IPreferencesImpl struct {
	dashboard *Dashboard
}

func (ip *IPreferencesImpl) GetTheme(clientID string) (ThemeView, error) {
	return ip.dashboard.getTheme(clientID)
}

func (ip *IPreferencesImpl) SetTheme(clientID string, theme string) (ThemeView, error) {
	return ip.dashboard.setTheme(clientID, theme)
}

func (d *Dashboard) GetIPreferences() IPreferences {
	return &IPreferencesImpl{dashboard: d}
}
