package synthgen

import (
	"fmt"
	"testing"

	"github.com/aquawatch/aquawatch_backend/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMeter() types.Meter {
	return types.Meter{
		MeterId:         "m-0001",
		MeterCode:       "WM-001",
		MeterType:       types.MeterTypeHot,
		BatteryLevel:    87,
		Consumption:     300,
		CurrentFlowRate: 2.5,
	}
}

func TestGenerateBatteryHistory(t *testing.T) {
	t.Run("healthy battery stays near current level", func(t *testing.T) {
		points := GenerateBatteryHistory(80, 30)

		require.Len(t, points, 30)
		for _, p := range points {
			assert.GreaterOrEqual(t, p.BatteryLevel, 79)
			assert.LessOrEqual(t, p.BatteryLevel, 86)
		}
		assert.InDelta(t, 80, points[29].BatteryLevel, 1)
	})

	t.Run("low battery produces declining curve ending at current level", func(t *testing.T) {
		points := GenerateBatteryHistory(15, 30)

		require.Len(t, points, 30)
		// Starts well above where it ends
		assert.Greater(t, points[0].BatteryLevel, points[29].BatteryLevel+20)
		assert.InDelta(t, 15, points[29].BatteryLevel, 1)
		for _, p := range points {
			assert.GreaterOrEqual(t, p.BatteryLevel, 0)
			assert.LessOrEqual(t, p.BatteryLevel, 100)
		}
	})

	t.Run("levels are clamped to the percent range", func(t *testing.T) {
		for _, p := range GenerateBatteryHistory(0, 30) {
			assert.GreaterOrEqual(t, p.BatteryLevel, 0)
			assert.LessOrEqual(t, p.BatteryLevel, 100)
		}
		for _, p := range GenerateBatteryHistory(100, 30) {
			assert.LessOrEqual(t, p.BatteryLevel, 100)
		}
	})

	t.Run("same inputs always produce the same series", func(t *testing.T) {
		assert.Equal(t, GenerateBatteryHistory(42, 30), GenerateBatteryHistory(42, 30))
	})

	t.Run("dates end at the reference day", func(t *testing.T) {
		points := GenerateBatteryHistory(60, 7)

		require.Len(t, points, 7)
		assert.Equal(t, "2026-02-13", points[0].Date)
		assert.Equal(t, "2026-02-19", points[6].Date)
	})

	t.Run("zero or negative days yields an empty series", func(t *testing.T) {
		assert.Empty(t, GenerateBatteryHistory(50, 0))
		assert.Empty(t, GenerateBatteryHistory(50, -3))
	})
}

func TestGenerateMeterTrend(t *testing.T) {
	t.Run("distributes period consumption over the weekly pattern", func(t *testing.T) {
		points := GenerateMeterTrend(testMeter(), 30)

		require.Len(t, points, 30)
		// 300 m³ over 30 days is a base of 10; day 7 carries the 1.30 peak
		assert.Equal(t, 13.0, points[6].Total)
		assert.Equal(t, 10.0, points[0].Total)
		assert.Equal(t, "2026-01-21", points[0].Ts)
		assert.Equal(t, "2026-02-19", points[29].Ts)
	})

	t.Run("hot meter routes the value to the hot channel", func(t *testing.T) {
		points := GenerateMeterTrend(testMeter(), 7)

		for _, p := range points {
			assert.Equal(t, p.Total, p.Hot)
			assert.Zero(t, p.Cold)
		}
	})

	t.Run("cold meter routes the value to the cold channel", func(t *testing.T) {
		m := testMeter()
		m.MeterType = types.MeterTypeCold

		points := GenerateMeterTrend(m, 7)

		for _, p := range points {
			assert.Equal(t, p.Total, p.Cold)
			assert.Zero(t, p.Hot)
		}
	})

	t.Run("window longer than the pattern is capped", func(t *testing.T) {
		points := GenerateMeterTrend(testMeter(), 45)

		assert.Len(t, points, 30)
	})

	t.Run("zero days yields an empty series", func(t *testing.T) {
		assert.Empty(t, GenerateMeterTrend(testMeter(), 0))
	})

	t.Run("same inputs always produce the same series", func(t *testing.T) {
		assert.Equal(t, GenerateMeterTrend(testMeter(), 30), GenerateMeterTrend(testMeter(), 30))
	})
}

func TestGenerateFlowRateTrend(t *testing.T) {
	t.Run("scales the current flow rate by the daily pattern", func(t *testing.T) {
		points := GenerateFlowRateTrend(testMeter(), 7)

		require.Len(t, points, 7)
		// 2.5 m³/h at the 1.20 multiplier of day 6
		assert.Equal(t, 3.0, points[5].Total)
		assert.Equal(t, 2.5, points[0].Total)
	})
}

func TestGenerateRawReadings(t *testing.T) {
	t.Run("fabricates hourly readings ending at the reference instant", func(t *testing.T) {
		m := testMeter()
		m.Consumption = 720 // hourly base of exactly 1

		readings := GenerateRawReadings(m, 48)

		require.Len(t, readings, 48)
		last := readings[47]
		assert.Equal(t, "2026-02-19T23:00:00Z", last.ReadingTs)
		assert.Equal(t, 0.55, last.TotalConsumption) // 23:00 multiplier
		first := readings[0]
		assert.Equal(t, "2026-02-18T00:00:00Z", first.ReadingTs)
		assert.Equal(t, 0.3, first.TotalConsumption) // 00:00 multiplier
	})

	t.Run("reading ids are zero-padded and carry the meter id", func(t *testing.T) {
		readings := GenerateRawReadings(testMeter(), 3)

		require.Len(t, readings, 3)
		for i, r := range readings {
			assert.Equal(t, fmt.Sprintf("r-m-0001-%03d", i), r.ReadingId)
			assert.Equal(t, "m-0001", r.MeterId)
		}
	})

	t.Run("only normal operating data is fabricated", func(t *testing.T) {
		for _, r := range GenerateRawReadings(testMeter(), 5) {
			assert.False(t, r.Tamper)
			assert.False(t, r.Leakage)
			assert.False(t, r.ReverseFlow)
			assert.False(t, r.MechanicalError)
			assert.Zero(t, r.BackflowEvents)
			assert.Equal(t, 87, r.BatteryLevel)
		}
	})

	t.Run("zero count yields an empty series", func(t *testing.T) {
		assert.Empty(t, GenerateRawReadings(testMeter(), 0))
	})
}

func TestMultiplierTables(t *testing.T) {
	t.Run("daily multiplier wraps around the pattern", func(t *testing.T) {
		assert.Equal(t, DailyMultiplier(0), DailyMultiplier(30))
		assert.Equal(t, 1.3, DailyMultiplier(6))
	})

	t.Run("hourly multiplier handles any hour value", func(t *testing.T) {
		assert.Equal(t, HourlyMultiplier(20), HourlyMultiplier(44))
		assert.Equal(t, 1.3, HourlyMultiplier(20))
		assert.Equal(t, HourlyMultiplier(23), HourlyMultiplier(-1))
	})
}
