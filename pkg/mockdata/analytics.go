package mockdata

import "liyu1981.xyz/solar-dashboard-service/pkg/models"

var dailyRecords = []models.DailyRecord{
	{Date: "Jan 1", Production: 85.2, Consumption: 65.8, Efficiency: 92.5, PeakPower: 18.3, CostSavings: 45.2, CarbonOffset: 95.8},
	{Date: "Jan 2", Production: 78.9, Consumption: 62.1, Efficiency: 89.7, PeakPower: 17.1, CostSavings: 42.8, CarbonOffset: 88.4},
	{Date: "Jan 3", Production: 92.4, Consumption: 68.5, Efficiency: 94.2, PeakPower: 19.8, CostSavings: 48.9, CarbonOffset: 102.6},
	{Date: "Jan 4", Production: 76.3, Consumption: 59.2, Efficiency: 87.3, PeakPower: 16.5, CostSavings: 40.1, CarbonOffset: 84.7},
	{Date: "Jan 5", Production: 88.7, Consumption: 64.9, Efficiency: 91.8, PeakPower: 18.9, CostSavings: 46.3, CarbonOffset: 96.2},
	{Date: "Jan 6", Production: 81.5, Consumption: 61.4, Efficiency: 90.1, PeakPower: 17.6, CostSavings: 43.7, CarbonOffset: 89.8},
	{Date: "Jan 7", Production: 95.1, Consumption: 70.2, Efficiency: 95.6, PeakPower: 20.3, CostSavings: 50.8, CarbonOffset: 105.4},
	{Date: "Jan 8", Production: 79.8, Consumption: 63.7, Efficiency: 88.9, PeakPower: 17.2, CostSavings: 41.5, CarbonOffset: 86.3},
	{Date: "Jan 9", Production: 86.4, Consumption: 66.3, Efficiency: 91.2, PeakPower: 18.5, CostSavings: 44.9, CarbonOffset: 93.1},
	{Date: "Jan 10", Production: 89.6, Consumption: 67.8, Efficiency: 93.1, PeakPower: 19.1, CostSavings: 47.2, CarbonOffset: 98.5},
	{Date: "Jan 11", Production: 82.3, Consumption: 62.8, Efficiency: 89.5, PeakPower: 17.8, CostSavings: 43.1, CarbonOffset: 90.2},
	{Date: "Jan 12", Production: 91.8, Consumption: 69.1, Efficiency: 94.7, PeakPower: 19.5, CostSavings: 49.1, CarbonOffset: 101.8},
	{Date: "Jan 13", Production: 77.5, Consumption: 60.5, Efficiency: 87.8, PeakPower: 16.8, CostSavings: 40.8, CarbonOffset: 85.4},
	{Date: "Jan 14", Production: 87.2, Consumption: 65.4, Efficiency: 92.1, PeakPower: 18.7, CostSavings: 45.9, CarbonOffset: 95.3},
	{Date: "Jan 15", Production: 93.7, Consumption: 71.3, Efficiency: 95.9, PeakPower: 20.1, CostSavings: 51.2, CarbonOffset: 103.7},
	{Date: "Jan 16", Production: 80.1, Consumption: 61.9, Efficiency: 88.6, PeakPower: 17.3, CostSavings: 42.3, CarbonOffset: 87.9},
	{Date: "Jan 17", Production: 85.9, Consumption: 66.7, Efficiency: 91.5, PeakPower: 18.4, CostSavings: 44.6, CarbonOffset: 92.8},
	{Date: "Jan 18", Production: 90.3, Consumption: 68.9, Efficiency: 93.8, PeakPower: 19.3, CostSavings: 47.8, CarbonOffset: 99.1},
	{Date: "Jan 19", Production: 83.6, Consumption: 63.2, Efficiency: 89.2, PeakPower: 17.9, CostSavings: 43.4, CarbonOffset: 91.5},
	{Date: "Jan 20", Production: 88.1, Consumption: 67.1, Efficiency: 92.7, PeakPower: 18.8, CostSavings: 46.1, CarbonOffset: 96.9},
	{Date: "Jan 21", Production: 94.2, Consumption: 70.8, Efficiency: 95.3, PeakPower: 20.0, CostSavings: 50.5, CarbonOffset: 104.2},
	{Date: "Jan 22", Production: 78.4, Consumption: 62.5, Efficiency: 87.1, PeakPower: 16.9, CostSavings: 41.2, CarbonOffset: 85.8},
	{Date: "Jan 23", Production: 86.8, Consumption: 66.1, Efficiency: 91.9, PeakPower: 18.6, CostSavings: 45.1, CarbonOffset: 94.7},
	{Date: "Jan 24", Production: 89.1, Consumption: 68.3, Efficiency: 93.4, PeakPower: 19.2, CostSavings: 47.5, CarbonOffset: 97.8},
	{Date: "Jan 25", Production: 82.7, Consumption: 63.8, Efficiency: 89.8, PeakPower: 17.7, CostSavings: 43.8, CarbonOffset: 90.9},
	{Date: "Jan 26", Production: 91.5, Consumption: 69.7, Efficiency: 94.5, PeakPower: 19.7, CostSavings: 49.6, CarbonOffset: 102.1},
	{Date: "Jan 27", Production: 77.8, Consumption: 60.8, Efficiency: 87.5, PeakPower: 16.7, CostSavings: 40.5, CarbonOffset: 84.9},
	{Date: "Jan 28", Production: 87.9, Consumption: 66.8, Efficiency: 92.3, PeakPower: 18.9, CostSavings: 46.2, CarbonOffset: 95.7},
	{Date: "Jan 29", Production: 93.1, Consumption: 71.1, Efficiency: 95.7, PeakPower: 20.2, CostSavings: 51.0, CarbonOffset: 103.9},
	{Date: "Jan 30", Production: 80.5, Consumption: 62.3, Efficiency: 88.4, PeakPower: 17.4, CostSavings: 42.1, CarbonOffset: 87.2},
}

// AnalyticsRecords returns the 30 daily analytics rows, oldest first.
func (s *Source) AnalyticsRecords() []models.DailyRecord {
	out := make([]models.DailyRecord, len(dailyRecords))
	copy(out, dailyRecords)
	return out
}
