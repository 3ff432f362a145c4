// Report generation for the AquaWatch dashboard.
// Builds per-type tabular projections over the fixture entities and
// serializes them as CSV, JSON, spreadsheet-XML or print-ready HTML.
package report

import (
	"github.com/aquawatch/aquawatch_backend/pkg/types"
)

// DataSources is the input bundle for one report. The builders only read
// from it; collections may be empty and references may dangle.
type DataSources struct {
	Zones      []types.Zone
	Buildings  []types.Building
	Meters     []types.Meter
	Events     []types.MeterEvent
	RegionName string
	ReportType string // display label, e.g. "Consumption Summary"
	DateFrom   string
	DateTo     string
}

type TypeID string

const (
	TypeConsumptionSummary TypeID = "consumption-summary"
	TypeHotCold            TypeID = "hot-cold-report"
	TypeMeterStatus        TypeID = "meter-status"
	TypeAlertEventLog      TypeID = "alert-event-log"
	TypeBattery            TypeID = "battery-report"
	TypeZoneComparison     TypeID = "zone-comparison"
	TypeBuildingComparison TypeID = "building-comparison"
	TypeRawReadings        TypeID = "raw-readings-export"
)

// TypeDefinition is one entry of the report type catalogue shown to users.
type TypeDefinition struct {
	Id          TypeID `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Dataset is the single row-set every output format renders from.
// Rows are the stringified cells under Header; Records holds the typed
// record slice the JSON format marshals. Both are built in one pass, so
// record counts can never drift between formats.
type Dataset struct {
	Header  []string
	Rows    [][]string
	Records interface{}
}

// Artifact is a rendered report ready for delivery.
type Artifact struct {
	Content  []byte
	MIMEType string
	Ext      string
}
