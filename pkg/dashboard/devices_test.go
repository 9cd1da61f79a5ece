package dashboard

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"liyu1981.xyz/solar-dashboard-service/pkg/classify"
	"liyu1981.xyz/solar-dashboard-service/pkg/common"
	"liyu1981.xyz/solar-dashboard-service/pkg/models"
	_ "liyu1981.xyz/solar-dashboard-service/pkg/testing"
)

func TestListDevices(t *testing.T) {
	common.SetTestLoggerNop()

	d := GetTestDashboardWithMemorySqliteDialector(t)

	view, err := d.Devices.ListDevices(DeviceQuery{})
	require.NoError(t, err)

	assert.Equal(t, 8, view.TotalDevices)
	assert.Len(t, view.Devices, EntitiesPerPage)
	assert.Equal(t, 2, view.Pagination.TotalPages)
	assert.Equal(t, 1, view.Pagination.Page)
	assert.Equal(t, 7, view.StatusCounts[models.StatusOnline])
	assert.Equal(t, 87.5, view.OperationalPercent)
	assert.Equal(t, 12.5, view.WarningPercent)
	assert.Equal(t, 0.0, view.ErrorPercent)

	// each device adds 0.2 kW on top of its nominal usage
	assert.InDelta(t, 18.7+8*0.2, view.TotalPower, 1e-9)

	array := view.Devices[0]
	for _, r := range view.Devices {
		if r.ID == "1" {
			array = r
		}
	}
	assert.Equal(t, classify.TierExcellent, array.Rating.Tier)

	// HVAC warns twice, the water pump once
	assert.Len(t, view.Alerts, 3)

	second, err := d.Devices.ListDevices(DeviceQuery{EntityQuery: EntityQuery{Page: 2}})
	require.NoError(t, err)
	assert.Len(t, second.Devices, 2)
	assert.Equal(t, "7", second.Devices[0].ID)

	clamped, err := d.Devices.ListDevices(DeviceQuery{EntityQuery: EntityQuery{Page: 99}})
	require.NoError(t, err)
	assert.Equal(t, 2, clamped.Pagination.Page)
}

func TestListDevices_Filters(t *testing.T) {
	common.SetTestLoggerNop()

	d := GetTestDashboardWithMemorySqliteDialector(t)

	cases := []struct {
		name  string
		query DeviceQuery
		ids   []string
	}{
		{"type", DeviceQuery{Type: string(models.CategoryAppliance)}, []string{"7", "8"}},
		{"type all", DeviceQuery{Type: FilterAll, EntityQuery: EntityQuery{Search: "pump"}}, []string{"5"}},
		{"search location", DeviceQuery{EntityQuery: EntityQuery{Search: "ROOF"}}, []string{"1", "2"}},
		{"status", DeviceQuery{EntityQuery: EntityQuery{Status: string(models.StatusWarning)}}, []string{"7"}},
		{"no match", DeviceQuery{EntityQuery: EntityQuery{Search: "turbine"}}, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			view, err := d.Devices.ListDevices(tc.query)
			require.NoError(t, err)

			ids := []string{}
			for _, r := range view.Devices {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tc.ids, ids)
			assert.Equal(t, len(tc.ids), view.Pagination.TotalItems)
			// summary cards always cover the whole fleet
			assert.Equal(t, 8, view.TotalDevices)
		})
	}
}

func TestEntityQueryHidesOffline(t *testing.T) {
	q := EntityQuery{}
	assert.False(t, q.matches("Battery", "Basement", models.StatusOffline))
	assert.True(t, q.matches("Battery", "Basement", models.StatusError))

	q.ShowOffline = true
	assert.True(t, q.matches("Battery", "Basement", models.StatusOffline))

	q.Status = string(models.StatusOnline)
	assert.False(t, q.matches("Battery", "Basement", models.StatusOffline))
}

func TestDeviceAlerts(t *testing.T) {
	row := DeviceRow{
		DeviceView: models.DeviceView{Device: models.Device{ID: "x", Name: "Pump", Status: models.StatusError}},
		Rating:     classify.Result{Tier: classify.TierNeedsAttention},
	}
	alerts := deviceAlerts(row)
	require.Len(t, alerts, 2)
	assert.Equal(t, "dev-x-status", alerts[0].ID)
	assert.Equal(t, models.AlertTypeError, alerts[0].Type)
	assert.Equal(t, "dev-x-efficiency", alerts[1].ID)

	row.Status = models.StatusOnline
	row.Rating.Tier = classify.TierGood
	assert.Empty(t, deviceAlerts(row))
}

func TestGetDevice(t *testing.T) {
	common.SetTestLoggerNop()

	d := GetTestDashboardWithMemorySqliteDialector(t)

	detail, err := d.Devices.GetDevice("7")
	require.NoError(t, err)
	assert.Equal(t, "HVAC System", detail.Name)
	assert.Equal(t, classify.TierNeedsAttention, detail.Rating.Tier)
	assert.Equal(t, classify.ColorAmber, detail.Display.ColorKey)
	assert.Len(t, detail.DeviceAlerts, 2)

	healthy, err := d.Devices.GetDevice("4")
	require.NoError(t, err)
	assert.NotNil(t, healthy.DeviceAlerts)
	assert.Empty(t, healthy.DeviceAlerts)
}

func TestDeviceDetailKeepsTelemetryAlertCount(t *testing.T) {
	common.SetTestLoggerNop()

	d := GetTestDashboardWithMemorySqliteDialector(t)

	detail, err := d.Devices.GetDevice("7")
	require.NoError(t, err)

	data, err := json.Marshal(detail)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))

	assert.Equal(t, float64(detail.DeviceTelemetry.Alerts), out["alerts"])
	derived, ok := out["deviceAlerts"].([]any)
	require.True(t, ok)
	assert.Len(t, derived, 2)
}

func TestGetDevice_NotFoundWithLog(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)

	d := GetTestDashboardWithMemorySqliteDialector(t)

	_, err := d.Devices.GetDevice("99")
	assert.True(t, errors.Is(err, ErrDeviceNotFound))

	logs := ParseLogs(buf)
	found := findLog(logs, func(lobj map[string]any) bool {
		return lobj["logger"] == common.LoggerNameDashboardCore &&
			lobj["category"] == common.LoggerCategoryDevices &&
			lobj["msg"] == "Device not found" &&
			lobj["device_id"] == "99"
	})
	assert.True(t, found, "log not found")
}
