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

type Period string

const (
	Period7Days  Period = "7d"
	Period30Days Period = "30d"
	Period90Days Period = "90d"
	Period1Year  Period = "1y"

	DefaultPeriod = Period30Days

	recentRows = 10
)

var periodDays = map[Period]int{
	Period7Days:  7,
	Period30Days: 30,
	Period90Days: 90,
	Period1Year:  365,
}

// Periods lists the selectable analytics periods.
var Periods = []Period{Period7Days, Period30Days, Period90Days, Period1Year}

func ParsePeriod(s string) (Period, error) {
	if s == "" {
		return DefaultPeriod, nil
	}
	p := Period(s)
	if _, ok := periodDays[p]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}
	return p, nil
}

func (p Period) Days() int {
	return periodDays[p]
}

type DailyRow struct {
	models.DailyRecord
	Rating classify.Result `json:"rating"`
}

type Insight struct {
	Type        models.AlertType `json:"type"`
	Title       string           `json:"title"`
	Value       string           `json:"value"`
	Description string           `json:"description"`
}

type ChartSeries struct {
	Labels      []string  `json:"labels"`
	Production  []float64 `json:"production"`
	Consumption []float64 `json:"consumption"`
	Efficiency  []float64 `json:"efficiency"`
}

type AnalyticsView struct {
	Period Period `json:"period"`
	// Days is the number of daily rows actually covered, which is less
	// than the period length when the history is shorter.
	Days int `json:"days"`

	TotalProduction   float64 `json:"totalProduction"`
	TotalConsumption  float64 `json:"totalConsumption"`
	TotalSavings      float64 `json:"totalSavings"`
	TotalCarbonOffset float64 `json:"totalCarbonOffset"`
	NetEnergy         float64 `json:"netEnergy"`
	// SelfSufficiency is production as a percentage of consumption.
	SelfSufficiency float64 `json:"selfSufficiency"`

	AverageEfficiency float64           `json:"averageEfficiency"`
	EfficiencyRating  classify.Result   `json:"efficiencyRating"`
	Production        metrics.Aggregate `json:"production"`
	PeakPower         metrics.Aggregate `json:"peakPower"`

	PeakDay             models.DailyRecord `json:"peakDay"`
	LowestEfficiencyDay models.DailyRecord `json:"lowestEfficiencyDay"`

	Rows     []DailyRow             `json:"rows"`
	Recent   []DailyRow             `json:"recent"`
	Insights []Insight              `json:"insights"`
	Chart    ChartSeries            `json:"chart"`
	Monthly  []models.MonthlyEnergy `json:"monthly"`
}

func (d *Dashboard) getAnalytics(period Period) (view *AnalyticsView, err error) {
	start := time.Now()
	defer func() { observability.ObserveView(common.LoggerCategoryAnalytics, start, err) }()

	logger := common.GetCoreLogger(common.LoggerCategoryAnalytics)

	days := period.Days()
	if days == 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}

	records := d.Source.AnalyticsRecords()
	if len(records) > days {
		records = records[len(records)-days:]
	}

	view = &AnalyticsView{
		Period:  period,
		Days:    len(records),
		Monthly: d.Source.MonthlyEnergy(),
	}

	sums := []struct {
		dst *float64
		sel metrics.Selector[models.DailyRecord]
	}{
		{&view.TotalProduction, func(r models.DailyRecord) float64 { return r.Production }},
		{&view.TotalConsumption, func(r models.DailyRecord) float64 { return r.Consumption }},
		{&view.TotalSavings, func(r models.DailyRecord) float64 { return r.CostSavings }},
		{&view.TotalCarbonOffset, func(r models.DailyRecord) float64 { return r.CarbonOffset }},
	}
	for _, s := range sums {
		if *s.dst, err = metrics.Sum(records, s.sel); err != nil {
			return nil, fmt.Errorf("analytics totals: %w", err)
		}
	}
	view.NetEnergy = view.TotalProduction - view.TotalConsumption
	if view.SelfSufficiency, err = metrics.Ratio(view.TotalProduction, view.TotalConsumption); err != nil {
		return nil, err
	}

	production := func(r models.DailyRecord) float64 { return r.Production }
	efficiency := func(r models.DailyRecord) float64 { return r.Efficiency }

	if view.AverageEfficiency, err = metrics.Average(records, efficiency); err != nil {
		return nil, fmt.Errorf("average efficiency: %w", err)
	}
	if view.EfficiencyRating, err = d.rate(classify.TableEfficiency, view.AverageEfficiency); err != nil {
		return nil, err
	}
	if view.Production, err = metrics.Summarize(records, production); err != nil {
		return nil, err
	}
	if view.PeakPower, err = metrics.Summarize(records, func(r models.DailyRecord) float64 { return r.PeakPower }); err != nil {
		return nil, err
	}

	view.PeakDay, _, _ = metrics.TopExtreme(records, production, metrics.Max)
	view.LowestEfficiencyDay, _, _ = metrics.TopExtreme(records, efficiency, metrics.Min)

	view.Rows = make([]DailyRow, len(records))
	for i, r := range records {
		rating, err := d.rate(classify.TableEfficiency, r.Efficiency)
		if err != nil {
			return nil, fmt.Errorf("day %s: %w", r.Date, err)
		}
		view.Rows[i] = DailyRow{DailyRecord: r, Rating: rating}
	}
	view.Recent = view.Rows[max(0, len(view.Rows)-recentRows):]

	view.Chart = ChartSeries{
		Labels:      common.Mapper(records, func(r models.DailyRecord) string { return r.Date }),
		Production:  common.Mapper(records, production),
		Consumption: common.Mapper(records, func(r models.DailyRecord) float64 { return r.Consumption }),
		Efficiency:  common.Mapper(records, efficiency),
	}

	view.Insights = d.analyticsInsights(view)

	logger.Debug("Built analytics",
		zap.String("period", string(period)),
		zap.Int("days", view.Days),
		zap.Float64("total_production", view.TotalProduction))

	return view, nil
}

// analyticsInsights derives the highlight cards from the computed view.
func (d *Dashboard) analyticsInsights(view *AnalyticsView) []Insight {
	if view.Days == 0 {
		return []Insight{}
	}

	insights := []Insight{
		{
			Type:        models.AlertTypeSuccess,
			Title:       "Peak Performance Day",
			Value:       view.PeakDay.Date,
			Description: fmt.Sprintf("Highest production recorded at %.1f kWh", view.PeakDay.Production),
		},
	}

	low := view.LowestEfficiencyDay
	if rating, err := d.Thresholds.Classify(classify.TableEfficiency, low.Efficiency); err == nil && rating.Rank > 0 {
		insights = append(insights, Insight{
			Type:        models.AlertTypeWarning,
			Title:       "Efficiency Drop",
			Value:       low.Date,
			Description: fmt.Sprintf("Efficiency dropped to %.1f%% (%s)", low.Efficiency, rating.Label),
		})
	}

	insights = append(insights, Insight{
		Type:        models.AlertTypeInfo,
		Title:       "Cost Savings",
		Value:       fmt.Sprintf("$%.2f", view.TotalSavings),
		Description: fmt.Sprintf("Saved over the last %d days, offsetting %.1f kg of CO2", view.Days, view.TotalCarbonOffset),
	})

	return insights
}

type IAnalyticsImpl struct {
	dashboard *Dashboard
}

func (ia *IAnalyticsImpl) GetAnalytics(period Period) (*AnalyticsView, error) {
	return ia.dashboard.getAnalytics(period)
}

func (d *Dashboard) GetIAnalytics() IAnalytics {
	return &IAnalyticsImpl{dashboard: d}
}
