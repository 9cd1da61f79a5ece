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

type BatteryRow struct {
	models.BatteryView
	Charge       classify.Result  `json:"charge"`
	Icon         classify.Result  `json:"icon"`
	HealthRating classify.Result  `json:"healthRating"`
	Display      classify.Display `json:"display"`
}

type BatteryPoint struct {
	models.BatteryPerformance
	LevelTier  classify.Result `json:"levelTier"`
	HealthTier classify.Result `json:"healthTier"`
}

type BatteryPageView struct {
	Batteries  []BatteryRow `json:"batteries"`
	Pagination PageInfo     `json:"pagination"`

	TotalCapacity float64 `json:"totalCapacity"`
	// TotalAvailable is the energy currently stored: capacity scaled by
	// the live charge level of each battery.
	TotalAvailable   float64              `json:"totalAvailable"`
	AvailablePercent float64              `json:"availablePercent"`
	AverageHealth    float64              `json:"averageHealth"`
	HealthRating     classify.Result      `json:"healthRating"`
	TotalCycles      int                  `json:"totalCycles"`
	StatusCounts     metrics.StatusCounts `json:"statusCounts"`
	Online           int                  `json:"online"`
	Charging         int                  `json:"charging"`
	Discharging      int                  `json:"discharging"`

	Performance []BatteryPoint `json:"performance"`
	Alerts      []models.Alert `json:"alerts"`
}

func (d *Dashboard) batteryRow(b models.BatteryView) (row BatteryRow, err error) {
	row = BatteryRow{BatteryView: b, Display: classify.StatusDisplay(b.Status)}
	if row.Charge, err = d.rate(classify.TableBatteryColor, b.RealTimeLevel); err != nil {
		return BatteryRow{}, err
	}
	if row.Icon, err = d.rate(classify.TableBatteryIcon, b.RealTimeLevel); err != nil {
		return BatteryRow{}, err
	}
	if row.HealthRating, err = d.rate(classify.TableEfficiency, b.Health); err != nil {
		return BatteryRow{}, err
	}
	return row, nil
}

func (d *Dashboard) getBatteries(q EntityQuery) (view *BatteryPageView, err error) {
	start := time.Now()
	defer func() { observability.ObserveView(common.LoggerCategoryBattery, start, err) }()

	logger := common.GetCoreLogger(common.LoggerCategoryBattery)

	batteries := d.Source.Batteries()
	rows := make([]BatteryRow, len(batteries))
	for i, b := range batteries {
		if rows[i], err = d.batteryRow(b); err != nil {
			return nil, fmt.Errorf("battery %s: %w", b.ID, err)
		}
	}

	filtered := common.Filter(rows, func(r BatteryRow) bool {
		return q.matches(r.Name, r.Location, r.Status)
	})
	page := Paginate(len(filtered), EntitiesPerPage, q.Page)

	view = &BatteryPageView{
		Batteries:    pageOf(filtered, page),
		Pagination:   page,
		Online:       metrics.CountBy(rows, func(r BatteryRow) bool { return r.Status == models.StatusOnline }),
		Charging:     metrics.CountBy(rows, func(r BatteryRow) bool { return r.IsCharging }),
		Discharging:  metrics.CountBy(rows, func(r BatteryRow) bool { return !r.IsCharging && r.RealTimeLevel > 0 }),
		Alerts:       d.Source.BatteryAlerts(),
	}

	if view.StatusCounts, err = metrics.CountByStatus(rows, func(r BatteryRow) models.Status { return r.Status }); err != nil {
		return nil, fmt.Errorf("battery status: %w", err)
	}
	if view.TotalCapacity, err = metrics.Sum(rows, func(r BatteryRow) float64 { return r.Capacity }); err != nil {
		return nil, fmt.Errorf("total capacity: %w", err)
	}
	if view.TotalAvailable, err = metrics.Sum(rows, func(r BatteryRow) float64 { return r.Capacity * r.RealTimeLevel / 100 }); err != nil {
		return nil, fmt.Errorf("total available: %w", err)
	}
	if view.AvailablePercent, err = metrics.Ratio(view.TotalAvailable, view.TotalCapacity); err != nil {
		return nil, err
	}
	if view.AverageHealth, err = metrics.Average(rows, func(r BatteryRow) float64 { return r.Health }); err != nil {
		return nil, fmt.Errorf("average health: %w", err)
	}
	if view.HealthRating, err = d.rate(classify.TableEfficiency, view.AverageHealth); err != nil {
		return nil, err
	}
	view.TotalCycles = common.Reducer(rows, func(acc int, r BatteryRow) int { return acc + r.Cycles }, 0)

	for _, p := range d.Source.BatteryPerformance() {
		point := BatteryPoint{BatteryPerformance: p}
		if point.LevelTier, err = d.rate(classify.TableBatteryIcon, p.Level); err != nil {
			return nil, fmt.Errorf("hour %d: %w", p.Hour, err)
		}
		if point.HealthTier, err = d.rate(classify.TablePanelEfficiency, p.Health); err != nil {
			return nil, fmt.Errorf("hour %d: %w", p.Hour, err)
		}
		view.Performance = append(view.Performance, point)
	}

	logger.Debug("Built battery view",
		zap.Int("batteries", len(rows)),
		zap.Float64("available_percent", view.AvailablePercent))

	return view, nil
}

type IBatteryImpl struct {
	dashboard *Dashboard
}

func (ib *IBatteryImpl) GetBatteries(q EntityQuery) (*BatteryPageView, error) {
	return ib.dashboard.getBatteries(q)
}

func (d *Dashboard) GetIBattery() IBattery {
	return &IBatteryImpl{dashboard: d}
}
