package synthgen

import (
	"fmt"
	"math"
	"time"

	"github.com/aquawatch/aquawatch_backend/pkg/types"
)

// GenerateBatteryHistory fabricates a daily battery level history ending at
// currentLevel. A low battery (< 30%) gets a steady declining curve,
// anything else stays near-flat. Same inputs always produce the same output.
func GenerateBatteryHistory(currentLevel int, days int) []types.BatteryHistoryPoint {
	if days <= 0 {
		return []types.BatteryHistoryPoint{}
	}

	declining := currentLevel < 30
	var startLevel float64
	if declining {
		startLevel = math.Min(100, float64(currentLevel)+float64(days)*1.2)
	} else {
		startLevel = math.Min(100, float64(currentLevel)+5)
	}

	denom := float64(days - 1)
	if denom < 1 {
		denom = 1
	}

	points := make([]types.BatteryHistoryPoint, 0, days)
	for i := 0; i < days; i++ {
		progress := float64(i) / denom
		// Deterministic wobble, not randomness
		noise := math.Sin(float64(i)*2.3+1) * 0.8

		var level float64
		if declining {
			level = startLevel - (startLevel-float64(currentLevel))*progress + noise
		} else {
			level = startLevel - 5*progress + noise
		}

		points = append(points, types.BatteryHistoryPoint{
			Date:         refDay.AddDate(0, 0, -(days - 1 - i)).Format("2006-01-02"),
			BatteryLevel: clampLevel(level),
		})
	}
	return points
}

// GenerateMeterTrend fabricates a daily consumption trend for one meter.
// The meter's total consumption is the period total, distributed across the
// window using the weekly pattern. Values are routed to hot/cold by type.
func GenerateMeterTrend(meter types.Meter, days int) []types.TimeSeriesPoint {
	dailyBase := meter.Consumption / math.Max(float64(days), 1)
	return patternSeries(meter, days, dailyBase, round1)
}

// GenerateFlowRateTrend fabricates a daily average flow-rate trend.
// Total carries the flow rate, hot/cold split by meter type.
func GenerateFlowRateTrend(meter types.Meter, days int) []types.TimeSeriesPoint {
	return patternSeries(meter, days, meter.CurrentFlowRate, round2)
}

func patternSeries(meter types.Meter, days int, base float64, round func(float64) float64) []types.TimeSeriesPoint {
	if days <= 0 {
		return []types.TimeSeriesPoint{}
	}
	n := days
	if n > len(dailyPattern) {
		n = len(dailyPattern)
	}

	isHot := meter.MeterType == types.MeterTypeHot
	isCold := meter.MeterType == types.MeterTypeCold

	points := make([]types.TimeSeriesPoint, 0, n)
	for i := 0; i < n; i++ {
		val := round(base * dailyPattern[i])
		p := types.TimeSeriesPoint{
			Ts:    refDay.AddDate(0, 0, -(days - 1 - i)).Format("2006-01-02"),
			Total: val,
		}
		if isHot {
			p.Hot = val
		}
		if isCold {
			p.Cold = val
		}
		points = append(points, p)
	}
	return points
}

// GenerateRawReadings fabricates hourly readings for the last count hours,
// ending at the reference instant. The diurnal table is indexed by the UTC
// hour of each reading. Only normal operating data is fabricated: anomaly
// flags are always false and backflow counts are always zero.
func GenerateRawReadings(meter types.Meter, count int) []types.MeterReading {
	if count <= 0 {
		return []types.MeterReading{}
	}

	hourlyBase := meter.Consumption / 30 / 24
	flowBase := meter.CurrentFlowRate

	readings := make([]types.MeterReading, 0, count)
	for idx := 0; idx < count; idx++ {
		ts := refInstant.Add(-time.Duration(count-1-idx) * time.Hour)
		mult := hourlyMult[ts.UTC().Hour()]

		readings = append(readings, types.MeterReading{
			ReadingId:         fmt.Sprintf("r-%s-%03d", meter.MeterId, idx),
			MeterId:           meter.MeterId,
			TotalConsumption:  round2(hourlyBase * mult),
			InstantaneousFlow: round2(flowBase * mult),
			BatteryLevel:      meter.BatteryLevel,
			BackflowEvents:    0,
			ReadingTs:         ts.Format(time.RFC3339),
		})
	}
	return readings
}

func clampLevel(level float64) int {
	return int(math.Max(0, math.Min(100, math.Round(level))))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
