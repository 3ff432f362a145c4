package types

type MeterType string

const (
	MeterTypeHot   MeterType = "HOT"
	MeterTypeCold  MeterType = "COLD"
	MeterTypeMixed MeterType = "MIXED"
)

type Meter struct {
	MeterId        string    `json:"meterId"`
	ConcentratorId string    `json:"concentratorId"`
	BuildingId     string    `json:"buildingId"`
	ZoneId         string    `json:"zoneId"`
	MeterCode      string    `json:"meterCode"`
	MeterType      MeterType `json:"meterType"`
	LocationLabel  string    `json:"locationLabel"`
	IsActive       bool      `json:"isActive"`
	BatteryLevel   int       `json:"batteryLevel"`
	LastSeenAt     string    `json:"lastSeenAt"`
	InstalledAt    string    `json:"installedAt"`

	// Pre-computed display aggregates. Zero when missing from the fixture.
	Consumption     float64 `json:"consumption,omitempty"`     // m³ in current period
	CurrentFlowRate float64 `json:"currentFlowRate,omitempty"` // m³/h instantaneous
}

type MeterReading struct {
	ReadingId         string  `json:"readingId"`
	MeterId           string  `json:"meterId"`
	TotalConsumption  float64 `json:"totalConsumption"`
	InstantaneousFlow float64 `json:"instantaneousFlow"`
	BatteryLevel      int     `json:"batteryLevel"`
	Tamper            bool    `json:"tamper"`
	Leakage           bool    `json:"leakage"`
	ReverseFlow       bool    `json:"reverseFlow"`
	BackflowEvents    int     `json:"backflowEvents"`
	MechanicalError   bool    `json:"mechanicalError"`
	ReadingTs         string  `json:"readingTs"`
}
