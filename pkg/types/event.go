package types

type EventType string

const (
	EventTamper      EventType = "TAMPER"
	EventLeakage     EventType = "LEAKAGE"
	EventReverseFlow EventType = "REVERSE_FLOW"
	EventBackflow    EventType = "BACKFLOW"
	EventMechError   EventType = "MECH_ERROR"
	EventLowBattery  EventType = "LOW_BATTERY"
)

type Severity string

const (
	SeverityInfo     Severity = "INFO"
	SeverityWarning  Severity = "WARNING"
	SeverityCritical Severity = "CRITICAL"
)

type MeterEvent struct {
	EventId    string    `json:"eventId"`
	MeterId    string    `json:"meterId"`
	BuildingId string    `json:"buildingId"`
	ZoneId     string    `json:"zoneId"`
	EventType  EventType `json:"eventType"`
	Severity   Severity  `json:"severity"`
	EventTs    string    `json:"eventTs"`
	IsResolved bool      `json:"isResolved"`
	ResolvedBy string    `json:"resolvedBy,omitempty"`
	ResolvedAt string    `json:"resolvedAt,omitempty"`
	Notes      string    `json:"notes,omitempty"`
}
