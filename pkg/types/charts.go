package types

// TimeSeriesPoint is one fabricated day in a consumption or flow-rate trend.
type TimeSeriesPoint struct {
	Ts    string  `json:"ts"`
	Total float64 `json:"total"`
	Hot   float64 `json:"hot"`
	Cold  float64 `json:"cold"`
}

// BatteryHistoryPoint is one fabricated day of battery level.
type BatteryHistoryPoint struct {
	Date         string `json:"date"`
	BatteryLevel int    `json:"batteryLevel"`
}

type KpiSummary struct {
	TotalConsumption float64              `json:"totalConsumption"`
	ActiveMeters     int                  `json:"activeMeters"`
	TotalMeters      int                  `json:"totalMeters"`
	HotConsumption   float64              `json:"hotConsumption"`
	ColdConsumption  float64              `json:"coldConsumption"`
	ActiveAlerts     int                  `json:"activeAlerts"`
	AvgBatteryLevel  int                  `json:"avgBatteryLevel"`
	Period           string               `json:"period"`
	Deltas           map[string]float64   `json:"deltas"`
	Sparklines       map[string][]float64 `json:"sparklines"`
}

type HotColdBreakdown struct {
	Hot   float64 `json:"hot"`
	Cold  float64 `json:"cold"`
	Mixed float64 `json:"mixed"`
	Total float64 `json:"total"`
}

type HourlyProfilePoint struct {
	Hour  int     `json:"hour"`
	Label string  `json:"label"`
	Hot   float64 `json:"hot"`
	Cold  float64 `json:"cold"`
	Total float64 `json:"total"`
}
