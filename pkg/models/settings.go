package models

import "time"

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

type PreferenceKey string

const (
	PreferenceIsAuthenticated PreferenceKey = "isAuthenticated"
	PreferenceUserEmail       PreferenceKey = "userEmail"
	PreferenceTheme           PreferenceKey = "theme"
)

// Preference mirrors one browser local-storage entry, scoped by client.
type Preference struct {
	ClientID  string        `gorm:"primaryKey"`
	Key       PreferenceKey `gorm:"primaryKey;column:pref_key;type:varchar(32)"`
	Value     string
	UpdatedAt time.Time
}

type Profile struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone"`
	Location   string `json:"location"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

type NotificationSettings struct {
	System      bool `json:"system"`
	Alerts      bool `json:"alerts"`
	Maintenance bool `json:"maintenance"`
	Reports     bool `json:"reports"`
	Email       bool `json:"email"`
	Push        bool `json:"push"`
}

// SecuritySettings are stored and displayed only. LoginAttempts is not
// enforced by the login flow.
type SecuritySettings struct {
	TwoFactor      bool `json:"twoFactor"`
	SessionTimeout int  `json:"sessionTimeout" binding:"gte=1"`
	PasswordExpiry int  `json:"passwordExpiry" binding:"gte=1"`
	LoginAttempts  int  `json:"loginAttempts" binding:"gte=1"`
}

type SystemSettings struct {
	Language   string `json:"language" binding:"required"`
	Timezone   string `json:"timezone" binding:"required"`
	DateFormat string `json:"dateFormat" binding:"required"`
	TimeFormat string `json:"timeFormat" binding:"required,oneof=12h 24h"`
	Currency   string `json:"currency" binding:"required"`
}

type Settings struct {
	Profile         Profile              `json:"profile"`
	Notifications   NotificationSettings `json:"notifications"`
	Security        SecuritySettings     `json:"security"`
	System          SystemSettings       `json:"system"`
	AutoRefresh     bool                 `json:"autoRefresh"`
	RefreshInterval int                  `json:"refreshInterval" binding:"gte=5"`
}

type SettingsRecord struct {
	ClientID  string   `gorm:"primaryKey"`
	Settings  Settings `gorm:"serializer:json"`
	UpdatedAt time.Time
}

func DefaultSettings() Settings {
	return Settings{
		Profile: Profile{
			Name:       "John Solar",
			Email:      "admin@solarfarm.com",
			Phone:      "+1 (555) 123-4567",
			Location:   "Solar Farm, CA",
			Role:       "Administrator",
			Department: "Management",
		},
		Notifications: NotificationSettings{
			System:      true,
			Alerts:      true,
			Maintenance: false,
			Reports:     true,
			Email:       true,
			Push:        false,
		},
		Security: SecuritySettings{
			TwoFactor:      true,
			SessionTimeout: 30,
			PasswordExpiry: 90,
			LoginAttempts:  5,
		},
		System: SystemSettings{
			Language:   "en",
			Timezone:   "America/Los_Angeles",
			DateFormat: "MM/DD/YYYY",
			TimeFormat: "12h",
			Currency:   "USD",
		},
		AutoRefresh:     true,
		RefreshInterval: 30,
	}
}
