// Package dashboard builds the page view models of the solar dashboard.
// Every view is computed on request from the mock source, reduced by the
// metrics aggregator and rated by the status classifier.
package dashboard

import (
	"errors"

	"liyu1981.xyz/solar-dashboard-service/pkg/classify"
	"liyu1981.xyz/solar-dashboard-service/pkg/db"
	"liyu1981.xyz/solar-dashboard-service/pkg/mockdata"
	"liyu1981.xyz/solar-dashboard-service/pkg/models"
	"liyu1981.xyz/solar-dashboard-service/pkg/observability"
)

var (
	ErrDeviceNotFound     = errors.New("device not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPeriod      = errors.New("invalid period")
	ErrInvalidTheme       = errors.New("invalid theme")
	ErrMissingClientID    = errors.New("missing client id")
)

// InvalidCredentialsMessage is shown to the user on a failed login.
const InvalidCredentialsMessage = "Invalid email or password. Please use the demo credentials."

type IOverview interface {
	GetOverview() (*OverviewView, error)
}

type IAnalytics interface {
	GetAnalytics(period Period) (*AnalyticsView, error)
}

type IDevices interface {
	ListDevices(q DeviceQuery) (*DevicesView, error)
	GetDevice(id string) (*DeviceDetail, error)
}

type IBattery interface {
	GetBatteries(q EntityQuery) (*BatteryPageView, error)
}

type IPanels interface {
	GetPanels(q EntityQuery) (*PanelsView, error)
}

type IUsers interface {
	ListUsers(q UserQuery) (*UsersView, error)
}

type ISettings interface {
	LoadSettings(clientID string) (*SettingsView, error)
	SaveSettings(clientID string, settings *models.Settings) (*SettingsView, error)
	ResetSettings(clientID string) (*SettingsView, error)
}

type IAuth interface {
	Login(clientID, email, password string) (*Session, error)
	Logout(clientID string) error
	GetSession(clientID string) (*Session, error)
}

type IPreferences interface {
	GetTheme(clientID string) (ThemeView, error)
	SetTheme(clientID string, theme string) (ThemeView, error)
}

type Dashboard struct {
	Db         db.DB
	Source     *mockdata.Source
	Thresholds *classify.Registry

	Overview    IOverview
	Analytics   IAnalytics
	Devices     IDevices
	Battery     IBattery
	Panels      IPanels
	Users       IUsers
	Settings    ISettings
	Auth        IAuth
	Preferences IPreferences
}

type ServiceOpts struct {
	Overview    IOverview
	Analytics   IAnalytics
	Devices     IDevices
	Battery     IBattery
	Panels      IPanels
	Users       IUsers
	Settings    ISettings
	Auth        IAuth
	Preferences IPreferences
}

// New wires a Dashboard with the default service implementations. A nil
// registry falls back to the built-in threshold tables.
func New(database *db.DB, source *mockdata.Source, thresholds *classify.Registry) *Dashboard {
	if thresholds == nil {
		thresholds = classify.DefaultRegistry()
	}
	d := &Dashboard{
		Db:         *database,
		Source:     source,
		Thresholds: thresholds,
	}
	return d.WithServices(ServiceOpts{
		Overview:    d.GetIOverview(),
		Analytics:   d.GetIAnalytics(),
		Devices:     d.GetIDevices(),
		Battery:     d.GetIBattery(),
		Panels:      d.GetIPanels(),
		Users:       d.GetIUsers(),
		Settings:    d.GetISettings(),
		Auth:        d.GetIAuth(),
		Preferences: d.GetIPreferences(),
	})
}

func (d *Dashboard) WithServices(opts ServiceOpts) *Dashboard {
	if opts.Overview != nil {
		d.Overview = opts.Overview
	}
	if opts.Analytics != nil {
		d.Analytics = opts.Analytics
	}
	if opts.Devices != nil {
		d.Devices = opts.Devices
	}
	if opts.Battery != nil {
		d.Battery = opts.Battery
	}
	if opts.Panels != nil {
		d.Panels = opts.Panels
	}
	if opts.Users != nil {
		d.Users = opts.Users
	}
	if opts.Settings != nil {
		d.Settings = opts.Settings
	}
	if opts.Auth != nil {
		d.Auth = opts.Auth
	}
	if opts.Preferences != nil {
		d.Preferences = opts.Preferences
	}
	return d
}

// rate classifies value against the named table and counts the outcome.
func (d *Dashboard) rate(table string, value float64) (classify.Result, error) {
	res, err := d.Thresholds.Classify(table, value)
	if err != nil {
		return classify.Result{}, err
	}
	observability.IncClassification(table, string(res.Tier))
	return res, nil
}

// Classify rates an arbitrary value against a named table. Unknown tables
// and non-finite values are reported as errors.
func (d *Dashboard) Classify(table string, value float64) (classify.Result, error) {
	return d.rate(table, value)
}
