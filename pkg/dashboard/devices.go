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

// FilterAll disables a status, type or role filter.
const FilterAll = "all"

// EntityQuery filters the battery and panel pages.
type EntityQuery struct {
	Search      string
	Status      string
	ShowOffline bool
	Page        int
}

type DeviceQuery struct {
	EntityQuery
	Type string
}

func (q EntityQuery) matches(name, location string, status models.Status) bool {
	if q.Search != "" && !common.ContainsFold(name, q.Search) && !common.ContainsFold(location, q.Search) {
		return false
	}
	if q.Status != "" && q.Status != FilterAll && string(status) != q.Status {
		return false
	}
	if !q.ShowOffline && status == models.StatusOffline {
		return false
	}
	return true
}

type DeviceRow struct {
	models.DeviceView
	Rating  classify.Result  `json:"rating"`
	Display classify.Display `json:"display"`
}

// DeviceDetail keeps the telemetry alert count under "alerts" and lists
// the derived alerts under "deviceAlerts".
type DeviceDetail struct {
	DeviceRow
	DeviceAlerts []models.Alert `json:"deviceAlerts"`
}

type DevicesView struct {
	Devices    []DeviceRow `json:"devices"`
	Pagination PageInfo    `json:"pagination"`

	TotalDevices      int                  `json:"totalDevices"`
	StatusCounts      metrics.StatusCounts `json:"statusCounts"`
	metrics.StatusShare
	TotalPower        float64              `json:"totalPower"`
	AverageEfficiency float64              `json:"averageEfficiency"`
	EfficiencyRating  classify.Result      `json:"efficiencyRating"`

	Alerts []models.Alert `json:"alerts"`
}

func (d *Dashboard) deviceRow(v models.DeviceView) (DeviceRow, error) {
	rating, err := d.rate(classify.TableEfficiency, v.Efficiency)
	if err != nil {
		return DeviceRow{}, fmt.Errorf("device %s: %w", v.ID, err)
	}
	return DeviceRow{DeviceView: v, Rating: rating, Display: classify.StatusDisplay(v.Status)}, nil
}

// deviceAlerts turns a device's own status and its efficiency tier into
// alerts. Healthy devices produce none.
func deviceAlerts(row DeviceRow) []models.Alert {
	var alerts []models.Alert
	switch row.Status {
	case models.StatusError:
		alerts = append(alerts, models.Alert{
			ID: "dev-" + row.ID + "-status", Source: row.Name, Type: models.AlertTypeError,
			Message: "Device reported an error", Priority: "high", Time: row.LastSeen,
		})
	case models.StatusWarning:
		alerts = append(alerts, models.Alert{
			ID: "dev-" + row.ID + "-status", Source: row.Name, Type: models.AlertTypeWarning,
			Message: "Device reported a warning", Priority: "medium", Time: row.LastSeen,
		})
	case models.StatusOffline:
		alerts = append(alerts, models.Alert{
			ID: "dev-" + row.ID + "-status", Source: row.Name, Type: models.AlertTypeInfo,
			Message: "Device is offline", Priority: "low", Time: row.LastSeen,
		})
	}
	if row.Rating.Tier == classify.TierNeedsAttention {
		alerts = append(alerts, models.Alert{
			ID: "dev-" + row.ID + "-efficiency", Source: row.Name, Type: models.AlertTypeWarning,
			Message:  fmt.Sprintf("Efficiency dropped to %.1f%%", row.Efficiency),
			Priority: "medium", Time: row.LastSeen,
		})
	}
	return alerts
}

func (d *Dashboard) deviceRows() ([]DeviceRow, error) {
	views := d.Source.DeviceViews()
	rows := make([]DeviceRow, len(views))
	for i, v := range views {
		row, err := d.deviceRow(v)
		if err != nil {
			return nil, err
		}
		rows[i] = row
	}
	return rows, nil
}

func (d *Dashboard) listDevices(q DeviceQuery) (view *DevicesView, err error) {
	start := time.Now()
	defer func() { observability.ObserveView(common.LoggerCategoryDevices, start, err) }()

	logger := common.GetCoreLogger(common.LoggerCategoryDevices)

	rows, err := d.deviceRows()
	if err != nil {
		return nil, err
	}

	filtered := common.Filter(rows, func(r DeviceRow) bool {
		if q.Type != "" && q.Type != FilterAll && string(r.Type) != q.Type {
			return false
		}
		return q.matches(r.Name, r.Location, r.Status)
	})

	page := Paginate(len(filtered), EntitiesPerPage, q.Page)
	view = &DevicesView{
		Devices:      pageOf(filtered, page),
		Pagination:   page,
		TotalDevices: len(rows),
		Alerts:       []models.Alert{},
	}

	if view.StatusCounts, err = metrics.CountByStatus(rows, func(r DeviceRow) models.Status { return r.Status }); err != nil {
		return nil, fmt.Errorf("device status: %w", err)
	}
	view.StatusShare = view.StatusCounts.Share()

	if view.TotalPower, err = metrics.Sum(rows, func(r DeviceRow) float64 { return r.RealTimePower }); err != nil {
		return nil, fmt.Errorf("total power: %w", err)
	}
	if view.AverageEfficiency, err = metrics.Average(rows, func(r DeviceRow) float64 { return r.Efficiency }); err != nil {
		return nil, fmt.Errorf("average efficiency: %w", err)
	}
	if view.EfficiencyRating, err = d.rate(classify.TableEfficiency, view.AverageEfficiency); err != nil {
		return nil, err
	}

	for _, r := range rows {
		view.Alerts = append(view.Alerts, deviceAlerts(r)...)
	}

	logger.Debug("Listed devices",
		zap.Int("filtered", len(filtered)),
		zap.Int("page", page.Page),
		zap.Int("alerts", len(view.Alerts)))

	return view, nil
}

func (d *Dashboard) getDevice(id string) (*DeviceDetail, error) {
	logger := common.GetCoreLogger(common.LoggerCategoryDevices)

	rows, err := d.deviceRows()
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		if r.ID == id {
			alerts := deviceAlerts(r)
			if alerts == nil {
				alerts = []models.Alert{}
			}
			return &DeviceDetail{DeviceRow: r, DeviceAlerts: alerts}, nil
		}
	}

	logger.Warn("Device not found", zap.String("device_id", id))
	return nil, fmt.Errorf("%w: %s", ErrDeviceNotFound, id)
}

type IDevicesImpl struct {
	dashboard *Dashboard
}

func (id *IDevicesImpl) ListDevices(q DeviceQuery) (*DevicesView, error) {
	return id.dashboard.listDevices(q)
}

func (id *IDevicesImpl) GetDevice(deviceID string) (*DeviceDetail, error) {
	return id.dashboard.getDevice(deviceID)
}

func (d *Dashboard) GetIDevices() IDevices {
	return &IDevicesImpl{dashboard: d}
}
