package mockdata

import (
	"time"

	"liyu1981.xyz/solar-dashboard-service/pkg/models"
)

const day = 24 * time.Hour

// Devices returns the eight site devices. Every device was last seen now,
// except the HVAC unit which went quiet five minutes ago.
func (s *Source) Devices() []models.Device {
	now := s.now()
	return []models.Device{
		{ID: "1", Name: "Solar Panel Array 1", Type: models.CategorySolarPanel, Status: models.StatusOnline, PowerUsage: 5.2, Efficiency: 92.1, LastSeen: now, Location: "Roof - North"},
		{ID: "2", Name: "Solar Panel Array 2", Type: models.CategorySolarPanel, Status: models.StatusOnline, PowerUsage: 4.8, Efficiency: 89.7, LastSeen: now, Location: "Roof - South"},
		{ID: "3", Name: "Battery Bank 1", Type: models.CategoryBattery, Status: models.StatusOnline, PowerUsage: 0.5, Efficiency: 94.2, LastSeen: now, Location: "Basement"},
		{ID: "4", Name: "Inverter Main", Type: models.CategoryInverter, Status: models.StatusOnline, PowerUsage: 0.3, Efficiency: 96.8, LastSeen: now, Location: "Utility Room"},
		{ID: "5", Name: "Water Pump", Type: models.CategoryPump, Status: models.StatusOnline, PowerUsage: 2.1, Efficiency: 78.5, LastSeen: now, Location: "Well House"},
		{ID: "6", Name: "LED Lighting System", Type: models.CategoryLighting, Status: models.StatusOnline, PowerUsage: 1.2, Efficiency: 85.3, LastSeen: now, Location: "Main Building"},
		{ID: "7", Name: "HVAC System", Type: models.CategoryAppliance, Status: models.StatusWarning, PowerUsage: 3.8, Efficiency: 72.1, LastSeen: now.Add(-5 * time.Minute), Location: "Main Building"},
		{ID: "8", Name: "Refrigerator", Type: models.CategoryAppliance, Status: models.StatusOnline, PowerUsage: 0.8, Efficiency: 88.9, LastSeen: now, Location: "Kitchen"},
	}
}

// DevicesOfType keeps the devices of one category, in source order.
func (s *Source) DevicesOfType(category models.Category) []models.Device {
	var out []models.Device
	for _, d := range s.Devices() {
		if d.Type == category {
			out = append(out, d)
		}
	}
	return out
}

// EnrichDevice adds the devices page telemetry. i is the position of the
// device in its collection.
func EnrichDevice(d models.Device, i int) models.DeviceView {
	return models.DeviceView{
		Device: d,
		DeviceTelemetry: models.DeviceTelemetry{
			RealTimePower: d.PowerUsage + 0.2,
			Temperature:   float64(25 + i%8),
			Humidity:      float64(60 + i%15),
			Voltage:       float64(220 + i%8),
			Current:       d.PowerUsage*4.5 + 0.5,
			Uptime:        float64(500 + i*25),
			Alerts:        i % 3,
		},
	}
}

// EnrichBattery adds battery telemetry. The battery efficiency replaces
// the base device efficiency.
func EnrichBattery(d models.Device, i int, now time.Time) models.BatteryView {
	d.Efficiency = float64(88 + i%7)
	return models.BatteryView{
		Device: d,
		BatteryTelemetry: models.BatteryTelemetry{
			RealTimeLevel:   float64(75 + i%20),
			IsCharging:      i%2 == 0,
			Temperature:     float64(25 + i%6),
			Voltage:         float64(48 + i%2),
			Current:         float64(15 + i%15),
			Power:           float64(5 + i%3),
			Capacity:        float64(60 + i%12),
			Cycles:          800 + i*50,
			Health:          float64(85 + i%10),
			Age:             2 + i%2,
			LastMaintenance: now.Add(-time.Duration(i+1) * day),
			NextMaintenance: now.Add(time.Duration(i+1) * day),
			DailyEnergy:     float64(20 + i*2),
			MonthlyEnergy:   float64(500 + i*25),
			LifetimeEnergy:  float64(25000 + i*1000),
			Alerts:          i % 2,
			SOH:             float64(92 + i%6),
			SOC:             float64(70 + i%25),
			DOD:             float64(30 + i%35),
			ChargeRate:      float64(6 + i%3),
			DischargeRate:   float64(4 + i%3),
		},
	}
}

func EnrichPanel(d models.Device, i int, now time.Time) models.PanelView {
	return models.PanelView{
		Device: d,
		PanelTelemetry: models.PanelTelemetry{
			RealTimePower:   d.PowerUsage + 0.3,
			Temperature:     float64(28 + i%6),
			Voltage:         float64(230 + i%15),
			Current:         d.PowerUsage*4.5 + 0.8,
			Irradiance:      float64(850 + i*25),
			TiltAngle:       float64(35 + i%8),
			Azimuth:         float64(180 + i%8),
			Soiling:         float64(2 + i%4),
			Degradation:     0.5 + float64(i%2),
			Uptime:          float64(600 + i*30),
			DailyEnergy:     float64(35 + i*2),
			MonthlyEnergy:   float64(800 + i*50),
			LifetimeEnergy:  float64(25000 + i*1000),
			Alerts:          i % 2,
			LastMaintenance: now.Add(-time.Duration(i+1) * day),
			NextMaintenance: now.Add(time.Duration(i+1) * day),
		},
	}
}

func (s *Source) DeviceViews() []models.DeviceView {
	devices := s.Devices()
	out := make([]models.DeviceView, len(devices))
	for i, d := range devices {
		out[i] = EnrichDevice(d, i)
	}
	return out
}

func (s *Source) Batteries() []models.BatteryView {
	now := s.now()
	var out []models.BatteryView
	for i, d := range s.DevicesOfType(models.CategoryBattery) {
		out = append(out, EnrichBattery(d, i, now))
	}
	return out
}

func (s *Source) Panels() []models.PanelView {
	now := s.now()
	var out []models.PanelView
	for i, d := range s.DevicesOfType(models.CategorySolarPanel) {
		out = append(out, EnrichPanel(d, i, now))
	}
	return out
}
