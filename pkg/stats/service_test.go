package stats

import (
	"testing"

	"github.com/aquawatch/aquawatch_backend/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMeters() []types.Meter {
	return []types.Meter{
		{MeterId: "m-1", MeterType: types.MeterTypeHot, IsActive: true, BatteryLevel: 80, Consumption: 300},
		{MeterId: "m-2", MeterType: types.MeterTypeCold, IsActive: true, BatteryLevel: 60, Consumption: 120},
		{MeterId: "m-3", MeterType: types.MeterTypeCold, IsActive: false, BatteryLevel: 10, Consumption: 60},
	}
}

func testEvents() []types.MeterEvent {
	return []types.MeterEvent{
		{EventId: "ev-1", IsResolved: false},
		{EventId: "ev-2", IsResolved: false},
		{EventId: "ev-3", IsResolved: true},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(testMeters(), testEvents(), "30D")

	assert.Equal(t, 480.0, s.TotalConsumption)
	assert.Equal(t, 300.0, s.HotConsumption)
	assert.Equal(t, 180.0, s.ColdConsumption)
	assert.Equal(t, 2, s.ActiveMeters)
	assert.Equal(t, 3, s.TotalMeters)
	assert.Equal(t, 2, s.ActiveAlerts)
	assert.Equal(t, 50, s.AvgBatteryLevel)
	assert.Equal(t, "30D", s.Period)
	assert.Len(t, s.Sparklines["totalConsumption"], 7)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, nil, "TODAY")

	assert.Zero(t, s.TotalConsumption)
	assert.Zero(t, s.AvgBatteryLevel)
	assert.Zero(t, s.ActiveAlerts)
}

func TestBreakdown(t *testing.T) {
	meters := testMeters()
	meters = append(meters, types.Meter{MeterId: "m-4", MeterType: types.MeterTypeMixed, Consumption: 20})

	b := Breakdown(meters)

	assert.Equal(t, 300.0, b.Hot)
	assert.Equal(t, 180.0, b.Cold)
	assert.Equal(t, 20.0, b.Mixed)
	assert.Equal(t, 500.0, b.Total)
}

func TestHourlyProfile(t *testing.T) {
	points := HourlyProfile(testMeters())

	require.Len(t, points, 24)
	assert.Equal(t, 0, points[0].Hour)
	assert.Equal(t, "00:00", points[0].Label)
	assert.Equal(t, "23:00", points[23].Label)

	// Evening peak at 20:00 exceeds the overnight trough at 03:00
	assert.Greater(t, points[20].Total, points[3].Total)

	for _, p := range points {
		assert.InDelta(t, p.Total, p.Hot+p.Cold, 0.02)
	}
}
