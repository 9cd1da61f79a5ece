package dashboard

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"liyu1981.xyz/solar-dashboard-service/pkg/classify"
	"liyu1981.xyz/solar-dashboard-service/pkg/common"
	"liyu1981.xyz/solar-dashboard-service/pkg/metrics"
	"liyu1981.xyz/solar-dashboard-service/pkg/models"
	"liyu1981.xyz/solar-dashboard-service/pkg/observability"
)

type OverviewView struct {
	Summary       models.SolarSummary   `json:"summary"`
	Stats         models.DashboardStats `json:"stats"`
	BatteryCharge classify.Result       `json:"batteryCharge"`
	BatteryIcon   classify.Result       `json:"batteryIcon"`

	PowerCurve   []models.HourlyPower `json:"powerCurve"`
	CurrentHour  int                  `json:"currentHour"`
	CurrentPower float64              `json:"currentPower"`
	Peak         models.HourlyPower   `json:"peak"`
	PeakLabel    string               `json:"peakLabel"`
	// GeneratedToday integrates the hourly curve, one hour per point.
	GeneratedToday    float64         `json:"generatedToday"`
	AverageEfficiency float64         `json:"averageEfficiency"`
	EfficiencyRating  classify.Result `json:"efficiencyRating"`

	Consumption  []models.Reading        `json:"consumption"`
	Energy       []EnergyPoint           `json:"energy"`
	Breakdown    []models.BreakdownSlice `json:"breakdown"`
	Conditions   models.Weather          `json:"conditions"`
	DeviceStatus metrics.StatusCounts    `json:"deviceStatus"`

	Alerts              []models.Alert `json:"alerts"`
	Notifications       []models.Alert `json:"notifications"`
	UnreadNotifications int            `json:"unreadNotifications"`
}

// EnergyPoint pairs production and consumption power for one hour of the
// last day.
type EnergyPoint struct {
	Time        string    `json:"time"`
	Timestamp   time.Time `json:"timestamp"`
	Production  float64   `json:"production"`
	Consumption float64   `json:"consumption"`
}

// energyChart zips the two series on the production timeline. A missing
// consumption sample reads as 0.
func energyChart(production, consumption []models.EnergySample) []EnergyPoint {
	points := make([]EnergyPoint, len(production))
	for i, p := range production {
		points[i] = EnergyPoint{
			Time:       p.Timestamp.Format("03:04 PM"),
			Timestamp:  p.Timestamp,
			Production: p.Power,
		}
		if i < len(consumption) {
			points[i].Consumption = consumption[i].Power
		}
	}
	return points
}

func hourLabel(hour int) string {
	return time.Date(2000, time.January, 1, hour, 0, 0, 0, time.UTC).Format("3:04 PM")
}

func (d *Dashboard) getOverview() (view *OverviewView, err error) {
	start := time.Now()
	defer func() { observability.ObserveView(common.LoggerCategoryOverview, start, err) }()

	logger := common.GetCoreLogger(common.LoggerCategoryOverview)

	src := d.Source
	curve := src.DashboardPower()
	summary := src.SolarSummary()
	hour := src.Now().Hour()

	view = &OverviewView{
		Summary:     summary,
		Stats:       src.DashboardStats(),
		PowerCurve:  curve,
		CurrentHour: hour,
		Consumption: src.ConsumptionCurve(),
		Breakdown:   src.ConsumptionBreakdown(),
		Conditions:  src.CurrentConditions(),
		Alerts:      src.DashboardAlerts(),
	}

	if hour < len(curve) {
		view.CurrentPower = curve[hour].Power
	}

	power := func(p models.HourlyPower) float64 { return p.Power }
	efficiency := func(p models.HourlyPower) float64 { return p.Efficiency }

	peak, ok, err := metrics.TopExtreme(curve, power, metrics.Max)
	if err != nil {
		return nil, fmt.Errorf("peak power: %w", err)
	}
	if ok {
		view.Peak = peak
		view.PeakLabel = hourLabel(peak.Hour)
	}

	if view.GeneratedToday, err = metrics.Sum(curve, power); err != nil {
		return nil, fmt.Errorf("generated today: %w", err)
	}

	// efficiency is only meaningful while the array produces
	producing := common.Filter(curve, func(p models.HourlyPower) bool { return p.Power > 0 })
	if view.AverageEfficiency, err = metrics.Average(producing, efficiency); err != nil {
		return nil, fmt.Errorf("average efficiency: %w", err)
	}
	if view.EfficiencyRating, err = d.rate(classify.TableEfficiency, view.AverageEfficiency); err != nil {
		return nil, err
	}

	if view.BatteryCharge, err = d.rate(classify.TableBatteryColor, summary.BatteryLevel); err != nil {
		return nil, err
	}
	if view.BatteryIcon, err = d.rate(classify.TableBatteryIcon, summary.BatteryLevel); err != nil {
		return nil, err
	}

	if view.DeviceStatus, err = metrics.CountByStatus(src.Devices(), func(dev models.Device) models.Status { return dev.Status }); err != nil {
		return nil, fmt.Errorf("device status: %w", err)
	}

	view.Energy = energyChart(src.HourlyProduction(), src.HourlyConsumption())

	view.Notifications = src.Notifications()
	view.UnreadNotifications = metrics.CountBy(view.Notifications, func(a models.Alert) bool { return !a.Read })

	logger.Debug("Built overview",
		zap.Int("hour", hour),
		zap.Float64("current_power", view.CurrentPower),
		zap.String("peak", view.PeakLabel))

	return view, nil
}

type IOverviewImpl struct {
	dashboard *Dashboard
}

func (io *IOverviewImpl) GetOverview() (*OverviewView, error) {
	return io.dashboard.getOverview()
}

func (d *Dashboard) GetIOverview() IOverview {
	return &IOverviewImpl{dashboard: d}
}
