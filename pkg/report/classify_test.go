package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLabel(t *testing.T) {
	cases := []struct {
		label string
		want  TypeID
	}{
		{"Consumption Summary", TypeConsumptionSummary},
		{"Hot / Cold Report", TypeHotCold},
		{"Meter Status Report", TypeMeterStatus},
		{"Alert / Event Log", TypeAlertEventLog},
		{"Battery Report", TypeBattery},
		{"Zone Comparison", TypeZoneComparison},
		{"Building Comparison", TypeBuildingComparison},
		{"Raw Readings Export", TypeRawReadings},
		// Case-insensitive
		{"BATTERY REPORT", TypeBattery},
		// Hot/cold outranks everything else
		{"Hot Battery Report", TypeHotCold},
		// Battery outranks zone comparison
		{"Zone Battery Report", TypeBattery},
		// Unrecognized labels fall back to the summary
		{"Quarterly Totals", TypeConsumptionSummary},
		{"", TypeConsumptionSummary},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ClassifyLabel(c.label), "label %q", c.label)
	}
}

func TestResolveType(t *testing.T) {
	t.Run("accepts a catalogue id directly", func(t *testing.T) {
		assert.Equal(t, TypeZoneComparison, ResolveType("zone-comparison"))
		assert.Equal(t, TypeRawReadings, ResolveType("raw-readings-export"))
	})

	t.Run("falls back to label classification", func(t *testing.T) {
		assert.Equal(t, TypeBattery, ResolveType("Battery Report"))
	})
}

func TestLabelFor(t *testing.T) {
	assert.Equal(t, "Hot / Cold Report", LabelFor(TypeHotCold))
	assert.Equal(t, "custom-type", LabelFor(TypeID("custom-type")))
}
