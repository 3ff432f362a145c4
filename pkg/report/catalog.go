package report

// Catalog returns the eight report type definitions offered by the
// dashboard. Icon names refer to the frontend icon set.
func Catalog() []TypeDefinition {
	return []TypeDefinition{
		{
			Id:          TypeConsumptionSummary,
			Label:       "Consumption Summary",
			Description: "Total, hot & cold volumes over a period",
			Icon:        "BarChart2",
		},
		{
			Id:          TypeHotCold,
			Label:       "Hot / Cold Report",
			Description: "Breakdown of hot vs cold water usage",
			Icon:        "Droplets",
		},
		{
			Id:          TypeMeterStatus,
			Label:       "Meter Status Report",
			Description: "Active, offline and alerting meters",
			Icon:        "Activity",
		},
		{
			Id:          TypeAlertEventLog,
			Label:       "Alert / Event Log",
			Description: "All tamper, leakage and anomaly events",
			Icon:        "AlertTriangle",
		},
		{
			Id:          TypeBattery,
			Label:       "Battery Report",
			Description: "Battery levels and replacement forecast",
			Icon:        "BatteryLow",
		},
		{
			Id:          TypeZoneComparison,
			Label:       "Zone Comparison",
			Description: "Side-by-side consumption across zones",
			Icon:        "GitCompare",
		},
		{
			Id:          TypeBuildingComparison,
			Label:       "Building Comparison",
			Description: "Per-building usage within a zone",
			Icon:        "Building2",
		},
		{
			Id:          TypeRawReadings,
			Label:       "Raw Readings Export",
			Description: "Full meter reading records (CSV/JSON)",
			Icon:        "Database",
		},
	}
}

// LabelFor returns the display label for a type id, or the id itself
// when it is not in the catalogue.
func LabelFor(id TypeID) string {
	for _, def := range Catalog() {
		if def.Id == id {
			return def.Label
		}
	}
	return string(id)
}
