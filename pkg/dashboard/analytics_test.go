package dashboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/solar-dashboard-service/pkg/classify"
	"liyu1981.xyz/solar-dashboard-service/pkg/common"
	_ "liyu1981.xyz/solar-dashboard-service/pkg/testing"
)

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("")
	require.NoError(t, err)
	assert.Equal(t, Period30Days, p)

	p, err = ParsePeriod("90d")
	require.NoError(t, err)
	assert.Equal(t, 90, p.Days())

	_, err = ParsePeriod("2w")
	assert.True(t, errors.Is(err, ErrInvalidPeriod))
}

func TestGetAnalytics(t *testing.T) {
	common.SetTestLoggerNop()

	d := GetTestDashboardWithMemorySqliteDialector(t)

	view, err := d.Analytics.GetAnalytics(Period30Days)
	require.NoError(t, err)

	assert.Equal(t, 30, view.Days)
	assert.InDelta(t, 2576.4, view.TotalProduction, 0.1)
	assert.Equal(t, view.TotalProduction, view.Production.Total)
	assert.InDelta(t, view.TotalProduction-view.TotalConsumption, view.NetEnergy, 1e-9)
	assert.InDelta(t, view.TotalProduction/view.TotalConsumption*100, view.SelfSufficiency, 1e-9)

	assert.GreaterOrEqual(t, view.AverageEfficiency, 87.0)
	assert.LessOrEqual(t, view.AverageEfficiency, 93.0)
	assert.Equal(t, "Jan 7", view.PeakDay.Date)
	assert.LessOrEqual(t, view.LowestEfficiencyDay.Efficiency, 87.1)

	require.Len(t, view.Rows, 30)
	require.Len(t, view.Recent, 10)
	assert.Equal(t, "Jan 21", view.Recent[0].Date)
	assert.Equal(t, "Jan 30", view.Recent[9].Date)
	for _, row := range view.Rows {
		expected, err := classify.Classify(row.Efficiency, classify.EfficiencyTable)
		require.NoError(t, err)
		assert.Equal(t, expected, row.Rating, row.Date)
	}

	assert.Len(t, view.Chart.Labels, 30)
	assert.Len(t, view.Chart.Production, 30)
	assert.Len(t, view.Monthly, 12)

	require.Len(t, view.Insights, 3)
	assert.Equal(t, "Peak Performance Day", view.Insights[0].Title)
	assert.Equal(t, "Jan 7", view.Insights[0].Value)
	assert.Equal(t, "Efficiency Drop", view.Insights[1].Title)
	assert.Equal(t, "Cost Savings", view.Insights[2].Title)
}

func TestGetAnalytics_PeriodWindow(t *testing.T) {
	common.SetTestLoggerNop()

	d := GetTestDashboardWithMemorySqliteDialector(t)

	week, err := d.Analytics.GetAnalytics(Period7Days)
	require.NoError(t, err)
	assert.Equal(t, 7, week.Days)
	assert.Len(t, week.Recent, 7)
	assert.Equal(t, "Jan 24", week.Rows[0].Date)

	// the history only covers 30 days
	year, err := d.Analytics.GetAnalytics(Period1Year)
	require.NoError(t, err)
	assert.Equal(t, 30, year.Days)

	_, err = d.Analytics.GetAnalytics(Period("5y"))
	assert.True(t, errors.Is(err, ErrInvalidPeriod))
}
