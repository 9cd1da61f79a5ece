package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/solar-dashboard-service/pkg/classify"
	"liyu1981.xyz/solar-dashboard-service/pkg/common"
	"liyu1981.xyz/solar-dashboard-service/pkg/models"
	_ "liyu1981.xyz/solar-dashboard-service/pkg/testing"
)

func TestGetPanels(t *testing.T) {
	common.SetTestLoggerNop()

	d := GetTestDashboardWithMemorySqliteDialector(t)

	view, err := d.Panels.GetPanels(EntityQuery{})
	require.NoError(t, err)

	require.Len(t, view.Panels, 2)
	assert.Equal(t, classify.TierExcellent, view.Panels[0].Rating.Tier)
	// 89.7 sits below the strict 90 cut
	assert.Equal(t, classify.TierGood, view.Panels[1].Rating.Tier)

	assert.InDelta(t, 10.6, view.TotalPower, 1e-9)
	assert.InDelta(t, 90.9, view.AverageEfficiency, 1e-9)
	assert.Equal(t, classify.TierExcellent, view.EfficiencyRating.Tier)
	assert.Equal(t, 2, view.StatusCounts[models.StatusOnline])
	assert.Equal(t, 100.0, view.OperationalPercent)
	assert.Equal(t, 0.0, view.ErrorPercent)

	assert.Equal(t, 28.0, view.Conditions.Temperature)
	assert.Len(t, view.Performance, 24)
	assert.Len(t, view.Alerts, 3)
}

func TestGetPanels_Search(t *testing.T) {
	common.SetTestLoggerNop()

	d := GetTestDashboardWithMemorySqliteDialector(t)

	view, err := d.Panels.GetPanels(EntityQuery{Search: "south"})
	require.NoError(t, err)
	require.Len(t, view.Panels, 1)
	assert.Equal(t, "Solar Panel Array 2", view.Panels[0].Name)
	assert.InDelta(t, 10.6, view.TotalPower, 1e-9)
}
