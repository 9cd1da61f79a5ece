package mockdata

import (
	"time"

	"liyu1981.xyz/solar-dashboard-service/pkg/models"
)

// Notifications feeds the header bell.
func (s *Source) Notifications() []models.Alert {
	now := s.now()
	return []models.Alert{
		{ID: "n-1", Source: "system", Type: models.AlertTypeSuccess, Title: "System Optimization Complete", Message: "Solar panel efficiency has been optimized to 92.1%", Time: now.Add(-30 * time.Minute)},
		{ID: "n-2", Source: "HVAC System", Type: models.AlertTypeWarning, Title: "HVAC System Alert", Message: "HVAC system efficiency has dropped to 72.1%", Time: now.Add(-5 * time.Minute)},
		{ID: "n-3", Source: "weather", Type: models.AlertTypeInfo, Title: "Weather Update", Message: "Clear skies expected for the next 3 days", Time: now.Add(-2 * time.Hour), Read: true},
		{ID: "n-4", Source: "Battery Bank 1", Type: models.AlertTypeSuccess, Title: "Battery Charged", Message: "Battery bank has reached 78.5% capacity", Time: now.Add(-4 * time.Hour), Read: true},
	}
}

func (s *Source) DashboardAlerts() []models.Alert {
	now := s.now()
	return []models.Alert{
		{ID: "dash-1", Source: "solar", Type: models.AlertTypeSuccess, Title: "Peak Performance Achieved", Message: "Solar panels operating at 98% efficiency", Time: now.Add(-30 * time.Minute)},
		{ID: "dash-2", Source: "maintenance", Type: models.AlertTypeWarning, Title: "Maintenance Due", Message: "Panel cleaning scheduled for next week", Time: now.Add(-2 * time.Hour)},
		{ID: "dash-3", Source: "weather", Type: models.AlertTypeInfo, Title: "Weather Optimal", Message: "Clear skies expected for next 3 days", Time: now.Add(-4 * time.Hour)},
	}
}

func (s *Source) BatteryAlerts() []models.Alert {
	now := s.now()
	return []models.Alert{
		{ID: "bat-1", Source: "Battery Bank 1", Type: models.AlertTypeWarning, Message: "Temperature approaching threshold", Priority: "medium", Time: now.Add(-2 * time.Hour)},
		{ID: "bat-2", Source: "Battery Bank 2", Type: models.AlertTypeInfo, Message: "Charging cycle completed", Priority: "low", Time: now.Add(-4 * time.Hour)},
		{ID: "bat-3", Source: "Battery Bank 3", Type: models.AlertTypeError, Message: "Voltage fluctuation detected", Priority: "high", Time: now.Add(-1 * time.Hour)},
	}
}

func (s *Source) PanelAlerts() []models.Alert {
	now := s.now()
	return []models.Alert{
		{ID: "pan-1", Source: "Solar Panel Array 1", Type: models.AlertTypeWarning, Message: "Cleaning due in 3 days", Priority: "medium", Time: now.Add(-2 * time.Hour)},
		{ID: "pan-2", Source: "Solar Panel Array 3", Type: models.AlertTypeInfo, Message: "Annual inspection completed", Priority: "low", Time: now.Add(-6 * time.Hour)},
		{ID: "pan-3", Source: "Solar Panel Array 2", Type: models.AlertTypeError, Message: "Inverter connection issue detected", Priority: "high", Time: now.Add(-1 * time.Hour)},
	}
}
