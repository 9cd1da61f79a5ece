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

type PanelRow struct {
	models.PanelView
	Rating  classify.Result  `json:"rating"`
	Display classify.Display `json:"display"`
}

type PanelsView struct {
	Panels     []PanelRow `json:"panels"`
	Pagination PageInfo   `json:"pagination"`

	TotalPower          float64              `json:"totalPower"`
	AverageEfficiency   float64              `json:"averageEfficiency"`
	EfficiencyRating    classify.Result      `json:"efficiencyRating"`
	TotalDailyEnergy    float64              `json:"totalDailyEnergy"`
	TotalMonthlyEnergy  float64              `json:"totalMonthlyEnergy"`
	TotalLifetimeEnergy float64              `json:"totalLifetimeEnergy"`
	StatusCounts        metrics.StatusCounts `json:"statusCounts"`
	metrics.StatusShare

	Conditions  models.Weather            `json:"conditions"`
	Performance []models.PanelPerformance `json:"performance"`
	Alerts      []models.Alert            `json:"alerts"`
}

func (d *Dashboard) getPanels(q EntityQuery) (view *PanelsView, err error) {
	start := time.Now()
	defer func() { observability.ObserveView(common.LoggerCategoryPanels, start, err) }()

	logger := common.GetCoreLogger(common.LoggerCategoryPanels)

	panels := d.Source.Panels()
	rows := make([]PanelRow, len(panels))
	for i, p := range panels {
		rating, err := d.rate(classify.TablePanelEfficiency, p.Efficiency)
		if err != nil {
			return nil, fmt.Errorf("panel %s: %w", p.ID, err)
		}
		rows[i] = PanelRow{PanelView: p, Rating: rating, Display: classify.StatusDisplay(p.Status)}
	}

	filtered := common.Filter(rows, func(r PanelRow) bool {
		return q.matches(r.Name, r.Location, r.Status)
	})
	page := Paginate(len(filtered), EntitiesPerPage, q.Page)

	view = &PanelsView{
		Panels:       pageOf(filtered, page),
		Pagination:   page,
		Conditions:   d.Source.PanelSiteConditions(),
		Performance:  d.Source.PanelPerformance(),
		Alerts:       d.Source.PanelAlerts(),
	}

	if view.StatusCounts, err = metrics.CountByStatus(rows, func(r PanelRow) models.Status { return r.Status }); err != nil {
		return nil, fmt.Errorf("panel status: %w", err)
	}
	view.StatusShare = view.StatusCounts.Share()

	totals := []struct {
		dst  *float64
		name string
		sel  metrics.Selector[PanelRow]
	}{
		{&view.TotalPower, "total power", func(r PanelRow) float64 { return r.RealTimePower }},
		{&view.TotalDailyEnergy, "daily energy", func(r PanelRow) float64 { return r.DailyEnergy }},
		{&view.TotalMonthlyEnergy, "monthly energy", func(r PanelRow) float64 { return r.MonthlyEnergy }},
		{&view.TotalLifetimeEnergy, "lifetime energy", func(r PanelRow) float64 { return r.LifetimeEnergy }},
	}
	for _, t := range totals {
		if *t.dst, err = metrics.Sum(rows, t.sel); err != nil {
			return nil, fmt.Errorf("%s: %w", t.name, err)
		}
	}

	if view.AverageEfficiency, err = metrics.Average(rows, func(r PanelRow) float64 { return r.Efficiency }); err != nil {
		return nil, fmt.Errorf("average efficiency: %w", err)
	}
	if view.EfficiencyRating, err = d.rate(classify.TablePanelEfficiency, view.AverageEfficiency); err != nil {
		return nil, err
	}

	logger.Debug("Built panels view",
		zap.Int("panels", len(rows)),
		zap.Float64("total_power", view.TotalPower))

	return view, nil
}

type IPanelsImpl struct {
	dashboard *Dashboard
}

func (ip *IPanelsImpl) GetPanels(q EntityQuery) (*PanelsView, error) {
	return ip.dashboard.getPanels(q)
}

func (d *Dashboard) GetIPanels() IPanels {
	return &IPanelsImpl{dashboard: d}
}
