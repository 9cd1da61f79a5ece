package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"liyu1981.xyz/solar-dashboard-service/pkg/dashboard/mocks"
	_ "liyu1981.xyz/solar-dashboard-service/pkg/testing"

	"liyu1981.xyz/solar-dashboard-service/pkg/classify"
	"liyu1981.xyz/solar-dashboard-service/pkg/common"
	"liyu1981.xyz/solar-dashboard-service/pkg/dashboard"
	"liyu1981.xyz/solar-dashboard-service/pkg/db"
	"liyu1981.xyz/solar-dashboard-service/pkg/mockdata"
	"liyu1981.xyz/solar-dashboard-service/pkg/models"
)

var fixedNow = time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

func setupTestServerWithLimiter(limiter *dashboard.RateLimiterStore) *RestfulServer {
	source := mockdata.NewSource(1, func() time.Time { return fixedNow })
	d := dashboard.New(db.GetInstance(db.UseMemorySqliteDialector()), source, classify.DefaultRegistry())

	gin.SetMode(gin.TestMode)
	rs := &RestfulServer{
		Server:           gin.New(),
		Dashboard:        d,
		RateLimiterStore: limiter,
	}

	rs.Setup()

	return rs
}

func setupTestServer() *RestfulServer {
	// default we use no limiter
	return setupTestServerWithLimiter(nil)
}

func doRequest(rs *RestfulServer, method, path, clientID string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if clientID != "" {
		req.Header.Set(common.HeaderClientID, clientID)
	}
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealthCheck(t *testing.T) {
	rs := setupTestServer()

	w := doRequest(rs, "GET", "/healthz", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestGetOverview(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	w := doRequest(rs, "GET", "/api/dashboard", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	view := decode[map[string]any](t, w)
	assert.Equal(t, 12.1, view["currentPower"])
	assert.Equal(t, "12:00 PM", view["peakLabel"])
	assert.Equal(t, "good", view["efficiencyRating"].(map[string]any)["tier"])
}

func TestGetOverview_Error(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockIOverview := mocks.NewMockIOverview(ctrl)
	rs.Dashboard.Overview = mockIOverview
	mockIOverview.EXPECT().
		GetOverview().
		Return(nil, fmt.Errorf("just causing error")).
		Times(1)

	w := doRequest(rs, "GET", "/api/dashboard", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetAnalytics(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	{
		w := doRequest(rs, "GET", "/api/analytics", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		view := decode[dashboard.AnalyticsView](t, w)
		assert.Equal(t, dashboard.Period30Days, view.Period)
		assert.Len(t, view.Rows, 30)
		assert.Equal(t, "Jan 7", view.PeakDay.Date)
	}

	{
		w := doRequest(rs, "GET", "/api/analytics?period=7d", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		view := decode[dashboard.AnalyticsView](t, w)
		assert.Equal(t, 7, view.Days)
	}

	{
		w := doRequest(rs, "GET", "/api/analytics?period=2w", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestGetAnalytics_PassesPeriodToService(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockIAnalytics := mocks.NewMockIAnalytics(ctrl)
	rs.Dashboard.Analytics = mockIAnalytics
	mockIAnalytics.EXPECT().
		GetAnalytics(gomock.Eq(dashboard.Period90Days)).
		Return(&dashboard.AnalyticsView{Period: dashboard.Period90Days}, nil).
		Times(1)

	w := doRequest(rs, "GET", "/api/analytics?period=90d", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestExportAnalytics(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	cases := []struct {
		format      string
		contentType string
	}{
		{"csv", "text/csv"},
		{"xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
		{"pdf", "application/pdf"},
	}
	for _, tc := range cases {
		w := doRequest(rs, "GET", "/api/analytics/export?period=7d&format="+tc.format, "", nil)
		require.Equal(t, http.StatusOK, w.Code, tc.format)
		assert.Equal(t, tc.contentType, w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "solar-farm-analytics-7d."+tc.format)
		assert.NotEmpty(t, w.Body.Bytes())
	}

	w := doRequest(rs, "GET", "/api/analytics/export?format=docx", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListDevices(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	{
		w := doRequest(rs, "GET", "/api/devices", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		view := decode[dashboard.DevicesView](t, w)
		assert.Len(t, view.Devices, dashboard.EntitiesPerPage)
		assert.Equal(t, 8, view.TotalDevices)
		assert.Len(t, view.Alerts, 3)
	}

	{
		w := doRequest(rs, "GET", "/api/devices?type=appliance&page=1", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		view := decode[dashboard.DevicesView](t, w)
		assert.Len(t, view.Devices, 2)
	}

	{
		w := doRequest(rs, "GET", "/api/devices?search=roof&show_offline=true", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		view := decode[dashboard.DevicesView](t, w)
		assert.Len(t, view.Devices, 2)
	}
}

func TestListDevices_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	{
		w := doRequest(rs, "GET", "/api/devices?show_offline=maybe", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	{
		w := doRequest(rs, "GET", "/api/devices?page=abc", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	{
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockIDevices := mocks.NewMockIDevices(ctrl)
		rs.Dashboard.Devices = mockIDevices
		mockIDevices.EXPECT().
			ListDevices(gomock.Eq(dashboard.DeviceQuery{
				EntityQuery: dashboard.EntityQuery{Search: "pump", Status: "warning", ShowOffline: true, Page: 3},
				Type:        dashboard.FilterAll,
			})).
			Return(nil, fmt.Errorf("just causing error")).
			Times(1)

		w := doRequest(rs, "GET", "/api/devices?search=pump&status=warning&show_offline=1&page=3", "", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	}
}

func TestGetDevice(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	w := doRequest(rs, "GET", "/api/devices/7", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail := decode[dashboard.DeviceDetail](t, w)
	assert.Equal(t, "HVAC System", detail.Name)
	assert.Len(t, detail.DeviceAlerts, 2)

	w = doRequest(rs, "GET", "/api/devices/404", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPanelsAndBatteries(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	w := doRequest(rs, "GET", "/api/solar-panels?search=north", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	panels := decode[dashboard.PanelsView](t, w)
	require.Len(t, panels.Panels, 1)
	assert.Equal(t, "Solar Panel Array 1", panels.Panels[0].Name)

	w = doRequest(rs, "GET", "/api/battery", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	battery := decode[dashboard.BatteryPageView](t, w)
	require.Len(t, battery.Batteries, 1)
	assert.Equal(t, classify.TierMedium, battery.Batteries[0].Icon.Tier)
}

func TestListUsers(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	{
		w := doRequest(rs, "GET", "/api/users?role=admin&sort=loginCount&direction=desc", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		view := decode[dashboard.UsersView](t, w)
		require.Len(t, view.Users, 2)
		// 298 logins before 156
		assert.Equal(t, "Emma Manager", view.Users[0].Name)
		assert.Equal(t, "John Solar", view.Users[1].Name)
	}

	{
		w := doRequest(rs, "GET", "/api/users?sort=password", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	{
		w := doRequest(rs, "GET", "/api/users?direction=sideways", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestClassify(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	{
		w := doRequest(rs, "GET", "/api/classify?table=efficiency&value=87.5", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		res := decode[classify.Result](t, w)
		assert.Equal(t, classify.TierGood, res.Tier)
		assert.Equal(t, classify.ColorAmber, res.ColorKey)
	}

	{
		w := doRequest(rs, "GET", "/api/classify?table=battery_icon&value=80", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, classify.TierMedium, decode[classify.Result](t, w).Tier)
	}

	{
		w := doRequest(rs, "GET", "/api/classify?table=temperature&value=20", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	{
		w := doRequest(rs, "GET", "/api/classify?table=efficiency", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestSettingsFlow(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	clientID := uuid.NewString()

	w := doRequest(rs, "GET", "/api/settings", clientID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	view := decode[dashboard.SettingsView](t, w)
	assert.False(t, view.Saved)
	assert.Equal(t, models.DefaultSettings(), view.Settings)

	settings := models.DefaultSettings()
	settings.Profile.Name = "Jane Grid"
	settings.RefreshInterval = 15

	w = doRequest(rs, "PUT", "/api/settings", clientID, settings)
	require.Equal(t, http.StatusOK, w.Code)
	view = decode[dashboard.SettingsView](t, w)
	assert.True(t, view.Saved)
	assert.Equal(t, "Jane Grid", view.Profile.Name)

	w = doRequest(rs, "GET", "/api/settings/export", clientID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "solar-farm-settings.json")
	doc := decode[map[string]any](t, w)
	assert.Equal(t, 15.0, doc["refreshInterval"])
	assert.Equal(t, "system", doc["theme"])

	w = doRequest(rs, "POST", "/api/settings/reset", clientID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	view = decode[dashboard.SettingsView](t, w)
	assert.Equal(t, "John Solar", view.Profile.Name)
}

func TestSaveSettings_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	clientID := uuid.NewString()

	{
		settings := models.DefaultSettings()
		settings.Profile.Email = "not-an-email"
		w := doRequest(rs, "PUT", "/api/settings", clientID, settings)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	{
		settings := models.DefaultSettings()
		settings.System.TimeFormat = "36h"
		w := doRequest(rs, "PUT", "/api/settings", clientID, settings)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	{
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockISettings := mocks.NewMockISettings(ctrl)
		rs.Dashboard.Settings = mockISettings
		mockISettings.EXPECT().
			SaveSettings(gomock.Eq(clientID), gomock.Any()).
			Return(nil, fmt.Errorf("just causing error")).
			Times(1)

		w := doRequest(rs, "PUT", "/api/settings", clientID, models.DefaultSettings())
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	}
}

func TestAuthFlow(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	{
		w := doRequest(rs, "POST", "/api/auth/login", "", LoginRequest{Email: "admin@solarfarm.com", Password: "wrong"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"`+dashboard.InvalidCredentialsMessage+`"}`, w.Body.String())
	}

	{
		w := doRequest(rs, "POST", "/api/auth/login", "", LoginRequest{Email: "nope", Password: "demo123"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	// a client id is issued on first login
	w := doRequest(rs, "POST", "/api/auth/login", "", LoginRequest{Email: dashboard.DemoEmail, Password: dashboard.DemoPassword})
	require.Equal(t, http.StatusOK, w.Code)
	clientID := w.Header().Get(common.HeaderClientID)
	_, err := uuid.Parse(clientID)
	require.NoError(t, err)

	session := decode[dashboard.Session](t, w)
	assert.True(t, session.Authenticated)
	assert.Equal(t, clientID, session.ClientID)

	w = doRequest(rs, "GET", "/api/auth/session", clientID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[dashboard.Session](t, w).Authenticated)

	w = doRequest(rs, "POST", "/api/auth/logout", clientID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(rs, "GET", "/api/auth/session", clientID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[dashboard.Session](t, w).Authenticated)
}

func TestTheme(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	clientID := uuid.NewString()

	w := doRequest(rs, "GET", "/api/preferences/theme", clientID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"theme":"system"}`, w.Body.String())

	w = doRequest(rs, "PUT", "/api/preferences/theme", clientID, ThemeRequest{Theme: "dark"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"theme":"dark"}`, w.Body.String())

	w = doRequest(rs, "PUT", "/api/preferences/theme", clientID, ThemeRequest{Theme: "neon"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(rs, "GET", "/api/preferences/theme", clientID, nil)
	assert.JSONEq(t, `{"theme":"dark"}`, w.Body.String())
}

func TestLimiter(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServerWithLimiter(dashboard.NewRateLimiterStore(0, 0)) // no tokens at all

	clientID := uuid.NewString()

	w := doRequest(rs, "GET", "/api/dashboard", clientID, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// health and limiter endpoints are not throttled
	w = doRequest(rs, "GET", "/healthz", clientID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(rs, "POST", "/clients/"+clientID+"/limiter", "", LimiterRequest{Rate: 0.01, Burst: 2})
	require.Equal(t, http.StatusOK, w.Code)
	settings := decode[dashboard.LimiterSettings](t, w)
	assert.Equal(t, dashboard.LimiterSettings{ClientID: clientID, Rate: 0.01, Burst: 2}, settings)

	w = doRequest(rs, "GET", "/api/dashboard", clientID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doRequest(rs, "GET", "/api/dashboard", clientID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doRequest(rs, "GET", "/api/dashboard", clientID, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// other clients still have their own bucket
	w = doRequest(rs, "GET", "/api/dashboard", uuid.NewString(), nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestLimiter_NoStoreAdmitsAll(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServerWithLimiter(nil)

	clientID := uuid.NewString()
	for range 5 {
		w := doRequest(rs, "GET", "/api/dashboard", clientID, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := doRequest(rs, "POST", "/clients/"+clientID+"/limiter", "", LimiterRequest{Rate: 1, Burst: 1})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[dashboard.LimiterSettings](t, w).Unlimited)
}

func TestPostLimiter_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServerWithLimiter(dashboard.NewRateLimiterStore(2, 2))

	req := httptest.NewRequest("POST", "/clients/abc/limiter", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClientID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.RemoteAddr = "10.0.0.7:5555"
	assert.Equal(t, "10.0.0.7", ClientID(c))

	c.Request.Header.Set(common.HeaderClientID, "browser-1")
	assert.Equal(t, "browser-1", ClientID(c))
}
