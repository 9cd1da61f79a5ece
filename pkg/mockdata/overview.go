package mockdata

import (
	"fmt"
	"time"

	"liyu1981.xyz/solar-dashboard-service/pkg/models"
)

var powerCurve = []models.HourlyPower{
	{Hour: 0, Power: 0, Efficiency: 60},
	{Hour: 1, Power: 0, Efficiency: 60},
	{Hour: 2, Power: 0, Efficiency: 60},
	{Hour: 3, Power: 0, Efficiency: 60},
	{Hour: 4, Power: 0, Efficiency: 60},
	{Hour: 5, Power: 0.5, Efficiency: 65},
	{Hour: 6, Power: 2.1, Efficiency: 75},
	{Hour: 7, Power: 4.8, Efficiency: 82},
	{Hour: 8, Power: 7.2, Efficiency: 88},
	{Hour: 9, Power: 9.5, Efficiency: 92},
	{Hour: 10, Power: 11.8, Efficiency: 95},
	{Hour: 11, Power: 13.2, Efficiency: 97},
	{Hour: 12, Power: 14.5, Efficiency: 98},
	{Hour: 13, Power: 13.8, Efficiency: 96},
	{Hour: 14, Power: 12.1, Efficiency: 93},
	{Hour: 15, Power: 10.4, Efficiency: 89},
	{Hour: 16, Power: 8.7, Efficiency: 85},
	{Hour: 17, Power: 6.3, Efficiency: 78},
	{Hour: 18, Power: 3.8, Efficiency: 70},
	{Hour: 19, Power: 1.2, Efficiency: 65},
	{Hour: 20, Power: 0, Efficiency: 60},
	{Hour: 21, Power: 0, Efficiency: 60},
	{Hour: 22, Power: 0, Efficiency: 60},
	{Hour: 23, Power: 0, Efficiency: 60},
}

// DashboardPower returns the static 24 point power curve, one per hour.
func (s *Source) DashboardPower() []models.HourlyPower {
	out := make([]models.HourlyPower, len(powerCurve))
	copy(out, powerCurve)
	return out
}

func (s *Source) SolarSummary() models.SolarSummary {
	return models.SolarSummary{
		CurrentPower:  12.5,
		DailyEnergy:   89.2,
		WeeklyEnergy:  623.8,
		MonthlyEnergy: 2678.5,
		TotalEnergy:   45678.9,
		Efficiency:    87.3,
		BatteryLevel:  78.5,
		SystemStatus:  models.StatusOnline,
		LastUpdated:   s.now(),
	}
}

func (s *Source) DashboardStats() models.DashboardStats {
	return models.DashboardStats{
		TotalPowerGenerated: 45678.9,
		TotalEnergySaved:    34256.7,
		CarbonOffset:        23456.8,
		CostSavings:         12345.6,
		SystemEfficiency:    87.3,
	}
}

func (s *Source) ConsumptionBreakdown() []models.BreakdownSlice {
	return []models.BreakdownSlice{
		{Name: "Pump", Value: 35, Color: "#3b82f6"},
		{Name: "Lighting", Value: 25, Color: "#f59e0b"},
		{Name: "Appliances", Value: 30, Color: "#22c55e"},
		{Name: "Other", Value: 10, Color: "#64748b"},
	}
}

// CurrentConditions is the compact weather card of the dashboard.
func (s *Source) CurrentConditions() models.Weather {
	return models.Weather{
		Temperature: 24,
		Humidity:    65,
		WindSpeed:   12,
		Condition:   "Partly Cloudy",
	}
}

// PanelSiteConditions is the weather card of the solar panels page.
func (s *Source) PanelSiteConditions() models.Weather {
	return models.Weather{
		Temperature:     28,
		Humidity:        45,
		WindSpeed:       12,
		SolarIrradiance: 950,
		Condition:       "Sunny",
	}
}

var forecastConditions = []string{"sunny", "cloudy", "rainy", "partly_cloudy"}

// Weather returns current conditions plus a seven day forecast starting
// today.
func (s *Source) Weather() models.Weather {
	now := s.now()
	forecast := make([]models.Forecast, 7)
	for i := range forecast {
		forecast[i] = models.Forecast{
			Date:            now.Add(time.Duration(i) * day),
			Temperature:     s.float()*20 + 15,
			Condition:       forecastConditions[s.intn(len(forecastConditions))],
			SolarIrradiance: s.float()*1000 + 200,
		}
	}
	return models.Weather{
		Temperature:     24.5,
		Humidity:        65,
		WindSpeed:       12.3,
		SolarIrradiance: 850,
		Condition:       "sunny",
		Forecast:        forecast,
	}
}

func (s *Source) MonthlyEnergy() []models.MonthlyEnergy {
	out := make([]models.MonthlyEnergy, 12)
	for i := range out {
		out[i] = models.MonthlyEnergy{
			Month:       time.Month(i + 1).String()[:3],
			Production:  s.float()*3000 + 2000,
			Consumption: s.float()*2000 + 1500,
			Savings:     s.float()*1000 + 500,
		}
	}
	return out
}

// HourlyProduction covers the last 24 hours, oldest first.
func (s *Source) HourlyProduction() []models.EnergySample {
	now := s.now()
	out := make([]models.EnergySample, 24)
	for i := range out {
		out[i] = models.EnergySample{
			Timestamp: now.Add(-time.Duration(23-i) * time.Hour),
			Power:     s.float()*15 + 5,
			Energy:    s.float()*2 + 0.5,
		}
	}
	return out
}

var consumptionSources = []string{"pump", "lighting", "appliances", "other"}

func (s *Source) HourlyConsumption() []models.EnergySample {
	now := s.now()
	out := make([]models.EnergySample, 24)
	for i := range out {
		out[i] = models.EnergySample{
			Timestamp: now.Add(-time.Duration(23-i) * time.Hour),
			Power:     s.float()*8 + 2,
			Energy:    s.float()*1.5 + 0.3,
			Source:    consumptionSources[s.intn(len(consumptionSources))],
		}
	}
	return out
}

// ConsumptionCurve is the dashboard's consumption line, one reading per
// hour of the power curve.
func (s *Source) ConsumptionCurve() []models.Reading {
	start := s.now().Truncate(day)
	out := make([]models.Reading, len(powerCurve))
	for i := range out {
		out[i] = models.Reading{
			Label:     fmt.Sprintf("%02d:00", i),
			Timestamp: start.Add(time.Duration(i) * time.Hour),
			Value:     5 + daylight(i)*3 + s.float(),
		}
	}
	return out
}

func (s *Source) BatteryPerformance() []models.BatteryPerformance {
	out := make([]models.BatteryPerformance, 24)
	for h := range out {
		sun := daylight(h)
		out[h] = models.BatteryPerformance{
			Hour:        h,
			Level:       20 + sun*60 + s.float()*10,
			Power:       sun*8 + s.float()*2,
			Temperature: 22 + sun*8 + s.float()*3,
			Efficiency:  85 + sun*10 + s.float()*5,
			Health:      85 + sun*5 + s.float()*3,
		}
	}
	return out
}

func (s *Source) PanelPerformance() []models.PanelPerformance {
	out := make([]models.PanelPerformance, 24)
	for h := range out {
		sun := daylight(h)
		out[h] = models.PanelPerformance{
			Hour:       h,
			Power:      sun*15 + 5 + s.float()*3,
			Efficiency: 85 + sun*10 + s.float()*5,
			Irradiance: sun*800 + 200 + s.float()*100,
		}
	}
	return out
}
