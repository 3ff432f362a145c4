// KPI aggregation over the fixture entities. The deltas and sparklines have
// no historical store behind them; they are fabricated deterministically
// from the same multiplier tables the chart generators use.
package stats

import (
	"fmt"
	"math"

	"github.com/aquawatch/aquawatch_backend/pkg/synthgen"
	"github.com/aquawatch/aquawatch_backend/pkg/types"
)

// Summarize computes the KPI card values for one entity snapshot.
// Period is a display tag (TODAY, 7D, 30D) carried through untouched.
func Summarize(meters []types.Meter, events []types.MeterEvent, period string) types.KpiSummary {
	var total, hot, cold float64
	var active, batterySum int
	for _, m := range meters {
		total += m.Consumption
		switch m.MeterType {
		case types.MeterTypeHot:
			hot += m.Consumption
		case types.MeterTypeCold:
			cold += m.Consumption
		}
		if m.IsActive {
			active++
		}
		batterySum += m.BatteryLevel
	}

	alerts := 0
	for _, e := range events {
		if !e.IsResolved {
			alerts++
		}
	}

	avgBattery := 0
	if len(meters) > 0 {
		avgBattery = int(math.Round(float64(batterySum) / float64(len(meters))))
	}

	return types.KpiSummary{
		TotalConsumption: round1(total),
		ActiveMeters:     active,
		TotalMeters:      len(meters),
		HotConsumption:   round1(hot),
		ColdConsumption:  round1(cold),
		ActiveAlerts:     alerts,
		AvgBatteryLevel:  avgBattery,
		Period:           period,
		Deltas: map[string]float64{
			"totalConsumption": patternDelta(),
			"activeMeters":     0,
			"activeAlerts":     float64(alerts - alerts/2),
		},
		Sparklines: map[string][]float64{
			"totalConsumption": consumptionSparkline(total, 7),
		},
	}
}

// Breakdown splits total consumption by meter type.
func Breakdown(meters []types.Meter) types.HotColdBreakdown {
	var b types.HotColdBreakdown
	for _, m := range meters {
		switch m.MeterType {
		case types.MeterTypeHot:
			b.Hot += m.Consumption
		case types.MeterTypeCold:
			b.Cold += m.Consumption
		case types.MeterTypeMixed:
			b.Mixed += m.Consumption
		}
		b.Total += m.Consumption
	}
	b.Hot = round1(b.Hot)
	b.Cold = round1(b.Cold)
	b.Mixed = round1(b.Mixed)
	b.Total = round1(b.Total)
	return b
}

// HourlyProfile fabricates a 24-hour usage profile for a set of meters by
// spreading their period consumption over the diurnal multiplier table.
func HourlyProfile(meters []types.Meter) []types.HourlyProfilePoint {
	points := make([]types.HourlyProfilePoint, 0, 24)
	for hour := 0; hour < 24; hour++ {
		mult := synthgen.HourlyMultiplier(hour)
		p := types.HourlyProfilePoint{
			Hour:  hour,
			Label: fmt.Sprintf("%02d:00", hour),
		}
		for _, m := range meters {
			hourly := m.Consumption / 30 / 24 * mult
			p.Total += hourly
			switch m.MeterType {
			case types.MeterTypeHot:
				p.Hot += hourly
			case types.MeterTypeCold:
				p.Cold += hourly
			}
		}
		p.Total = round2(p.Total)
		p.Hot = round2(p.Hot)
		p.Cold = round2(p.Cold)
		points = append(points, p)
	}
	return points
}

// Day-over-day percentage change of the last two pattern entries.
func patternDelta() float64 {
	last := synthgen.DailyMultiplier(29)
	prev := synthgen.DailyMultiplier(28)
	return round1((last - prev) / prev * 100)
}

func consumptionSparkline(total float64, days int) []float64 {
	base := total / 30
	line := make([]float64, 0, days)
	for i := 0; i < days; i++ {
		line = append(line, round1(base*synthgen.DailyMultiplier(30-days+i)))
	}
	return line
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
