package models

import "time"

type Status string

const (
	StatusOnline  Status = "online"
	StatusOffline Status = "offline"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
)

// AllStatuses lists every entity status tag in display order.
var AllStatuses = []Status{StatusOnline, StatusOffline, StatusWarning, StatusError}

func (s Status) Valid() bool {
	switch s {
	case StatusOnline, StatusOffline, StatusWarning, StatusError:
		return true
	}
	return false
}

type Category string

const (
	CategorySolarPanel Category = "solar_panel"
	CategoryBattery    Category = "battery"
	CategoryInverter   Category = "inverter"
	CategoryPump       Category = "pump"
	CategoryLighting   Category = "lighting"
	CategoryAppliance  Category = "appliance"
)

type AlertType string

const (
	AlertTypeSuccess AlertType = "success"
	AlertTypeInfo    AlertType = "info"
	AlertTypeWarning AlertType = "warning"
	AlertTypeError   AlertType = "error"
)

type Device struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Type       Category  `json:"type"`
	Status     Status    `json:"status"`
	PowerUsage float64   `json:"powerUsage"`
	Efficiency float64   `json:"efficiency"`
	LastSeen   time.Time `json:"lastSeen"`
	Location   string    `json:"location"`
}

// DeviceTelemetry is the extension shown on the devices page.
type DeviceTelemetry struct {
	RealTimePower float64 `json:"realTimePower"`
	Temperature   float64 `json:"temperature"`
	Humidity      float64 `json:"humidity"`
	Voltage       float64 `json:"voltage"`
	Current       float64 `json:"current"`
	Uptime        float64 `json:"uptime"`
	Alerts        int     `json:"alerts"`
}

type DeviceView struct {
	Device
	DeviceTelemetry
}

// BatteryTelemetry is the battery-only extension of a Device.
type BatteryTelemetry struct {
	RealTimeLevel   float64   `json:"realTimeLevel"`
	IsCharging      bool      `json:"isCharging"`
	Temperature     float64   `json:"temperature"`
	Voltage         float64   `json:"voltage"`
	Current         float64   `json:"current"`
	Power           float64   `json:"power"`
	Capacity        float64   `json:"capacity"`
	Cycles          int       `json:"cycles"`
	Health          float64   `json:"health"`
	Age             int       `json:"age"`
	LastMaintenance time.Time `json:"lastMaintenance"`
	NextMaintenance time.Time `json:"nextMaintenance"`
	DailyEnergy     float64   `json:"dailyEnergy"`
	MonthlyEnergy   float64   `json:"monthlyEnergy"`
	LifetimeEnergy  float64   `json:"lifetimeEnergy"`
	Alerts          int       `json:"alerts"`
	SOH             float64   `json:"soh"`
	SOC             float64   `json:"soc"`
	DOD             float64   `json:"dod"`
	ChargeRate      float64   `json:"chargeRate"`
	DischargeRate   float64   `json:"dischargeRate"`
}

type BatteryView struct {
	Device
	BatteryTelemetry
}

// PanelTelemetry is the solar-panel-only extension of a Device.
type PanelTelemetry struct {
	RealTimePower   float64   `json:"realTimePower"`
	Temperature     float64   `json:"temperature"`
	Voltage         float64   `json:"voltage"`
	Current         float64   `json:"current"`
	Irradiance      float64   `json:"irradiance"`
	TiltAngle       float64   `json:"tiltAngle"`
	Azimuth         float64   `json:"azimuth"`
	Soiling         float64   `json:"soiling"`
	Degradation     float64   `json:"degradation"`
	Uptime          float64   `json:"uptime"`
	DailyEnergy     float64   `json:"dailyEnergy"`
	MonthlyEnergy   float64   `json:"monthlyEnergy"`
	LifetimeEnergy  float64   `json:"lifetimeEnergy"`
	Alerts          int       `json:"alerts"`
	LastMaintenance time.Time `json:"lastMaintenance"`
	NextMaintenance time.Time `json:"nextMaintenance"`
}

type PanelView struct {
	Device
	PanelTelemetry
}

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	Avatar       string     `json:"avatar,omitempty"`
	LastLogin    time.Time  `json:"lastLogin"`
	Status       UserStatus `json:"status"`
	Phone        string     `json:"phone"`
	Location     string     `json:"location"`
	Department   string     `json:"department"`
	JoinDate     time.Time  `json:"joinDate"`
	Permissions  []string   `json:"permissions"`
	LoginCount   int        `json:"loginCount"`
	LastActivity time.Time  `json:"lastActivity"`
}

// DailyRecord is one row of the analytics table.
type DailyRecord struct {
	Date         string  `json:"date"`
	Production   float64 `json:"production"`
	Consumption  float64 `json:"consumption"`
	Efficiency   float64 `json:"efficiency"`
	PeakPower    float64 `json:"peakPower"`
	CostSavings  float64 `json:"costSavings"`
	CarbonOffset float64 `json:"carbonOffset"`
}

// HourlyPower is one point of the dashboard's 24h power curve.
type HourlyPower struct {
	Hour       int     `json:"hour"`
	Power      float64 `json:"power"`
	Efficiency float64 `json:"efficiency"`
}

type BatteryPerformance struct {
	Hour        int     `json:"hour"`
	Level       float64 `json:"level"`
	Power       float64 `json:"power"`
	Temperature float64 `json:"temperature"`
	Efficiency  float64 `json:"efficiency"`
	Health      float64 `json:"health"`
}

type PanelPerformance struct {
	Hour       int     `json:"hour"`
	Power      float64 `json:"power"`
	Efficiency float64 `json:"efficiency"`
	Irradiance float64 `json:"irradiance"`
}

// Reading is a single labeled measurement in a time series.
type Reading struct {
	Label     string    `json:"label"`
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

type EnergySample struct {
	Timestamp time.Time `json:"timestamp"`
	Power     float64   `json:"power"`
	Energy    float64   `json:"energy"`
	Source    string    `json:"source,omitempty"`
}

type MonthlyEnergy struct {
	Month       string  `json:"month"`
	Production  float64 `json:"production"`
	Consumption float64 `json:"consumption"`
	Savings     float64 `json:"savings"`
}

type BreakdownSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

type SolarSummary struct {
	CurrentPower  float64   `json:"currentPower"`
	DailyEnergy   float64   `json:"dailyEnergy"`
	WeeklyEnergy  float64   `json:"weeklyEnergy"`
	MonthlyEnergy float64   `json:"monthlyEnergy"`
	TotalEnergy   float64   `json:"totalEnergy"`
	Efficiency    float64   `json:"efficiency"`
	BatteryLevel  float64   `json:"batteryLevel"`
	SystemStatus  Status    `json:"systemStatus"`
	LastUpdated   time.Time `json:"lastUpdated"`
}

type DashboardStats struct {
	TotalPowerGenerated float64 `json:"totalPowerGenerated"`
	TotalEnergySaved    float64 `json:"totalEnergySaved"`
	CarbonOffset        float64 `json:"carbonOffset"`
	CostSavings         float64 `json:"costSavings"`
	SystemEfficiency    float64 `json:"systemEfficiency"`
}

type Forecast struct {
	Date            time.Time `json:"date"`
	Temperature     float64   `json:"temperature"`
	Condition       string    `json:"condition"`
	SolarIrradiance float64   `json:"solarIrradiance"`
}

type Weather struct {
	Temperature     float64    `json:"temperature"`
	Humidity        float64    `json:"humidity"`
	WindSpeed       float64    `json:"windSpeed"`
	SolarIrradiance float64    `json:"solarIrradiance"`
	Condition       string     `json:"condition"`
	Forecast        []Forecast `json:"forecast"`
}

type Alert struct {
	ID       string    `json:"id"`
	Source   string    `json:"source"`
	Type     AlertType `json:"type"`
	Title    string    `json:"title,omitempty"`
	Message  string    `json:"message"`
	Priority string    `json:"priority,omitempty"`
	Time     time.Time `json:"time"`
	Read     bool      `json:"read"`
}
