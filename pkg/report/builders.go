package report

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/aquawatch/aquawatch_backend/pkg/types"
)

// BuildDataset resolves the report type from the bundle's label and builds
// the matching row-set. Never fails: unknown labels fall back to the
// consumption summary and empty collections yield a header-only dataset.
func BuildDataset(d DataSources) Dataset {
	return BuildDatasetByType(ResolveType(d.ReportType), d)
}

func BuildDatasetByType(id TypeID, d DataSources) Dataset {
	switch id {
	case TypeHotCold:
		return buildHotCold(d)
	case TypeMeterStatus:
		return buildMeterStatus(d)
	case TypeAlertEventLog:
		return buildAlertEventLog(d)
	case TypeBattery:
		return buildBattery(d)
	case TypeZoneComparison:
		return buildZoneComparison(d)
	case TypeBuildingComparison:
		return buildBuildingComparison(d)
	case TypeRawReadings:
		return buildRawReadings(d)
	default:
		return buildConsumptionSummary(d)
	}
}

type record interface{ cells() []string }

func assemble[T record](header []string, recs []T) Dataset {
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, r.cells())
	}
	return Dataset{Header: header, Rows: rows, Records: recs}
}

// ─── Consumption summary (default) ──────────────────────────────────────────

type consumptionRecord struct {
	MeterCode     string          `json:"meterCode"`
	MeterType     types.MeterType `json:"meterType"`
	ConsumptionM3 float64         `json:"consumption_m3"`
	FlowRateM3H   float64         `json:"flowRate_m3h"`
	BatteryLevel  int             `json:"batteryLevel"`
	Status        string          `json:"status"`
	LocationLabel string          `json:"locationLabel"`
	BuildingName  string          `json:"buildingName"`
	ZoneName      string          `json:"zoneName"`
	LastSeenAt    string          `json:"lastSeenAt"`
}

func (r consumptionRecord) cells() []string {
	return []string{
		r.ZoneName, r.BuildingName, r.MeterCode, string(r.MeterType),
		num(r.ConsumptionM3), fmt.Sprintf("%.3f", r.FlowRateM3H),
		r.Status, r.LastSeenAt,
	}
}

func buildConsumptionSummary(d DataSources) Dataset {
	zones := zoneNames(d.Zones)
	bldgs := buildingNames(d.Buildings)

	recs := make([]consumptionRecord, 0, len(d.Meters))
	for _, m := range d.Meters {
		recs = append(recs, consumptionRecord{
			MeterCode:     m.MeterCode,
			MeterType:     m.MeterType,
			ConsumptionM3: m.Consumption,
			FlowRateM3H:   m.CurrentFlowRate,
			BatteryLevel:  m.BatteryLevel,
			Status:        statusLabel(m.IsActive),
			LocationLabel: m.LocationLabel,
			BuildingName:  nameOr(bldgs, m.BuildingId),
			ZoneName:      nameOr(zones, m.ZoneId),
			LastSeenAt:    m.LastSeenAt,
		})
	}
	return assemble([]string{
		"Zone", "Building", "Meter Code", "Type",
		"Consumption (m³)", "Flow Rate (m³/h)", "Status", "Last Seen",
	}, recs)
}

// ─── Hot / cold report ──────────────────────────────────────────────────────

type hotColdRecord struct {
	ZoneName     string  `json:"zoneName"`
	BuildingName string  `json:"buildingName"`
	HotMeters    int     `json:"hotMeters"`
	ColdMeters   int     `json:"coldMeters"`
	HotM3        float64 `json:"hot_m3"`
	ColdM3       float64 `json:"cold_m3"`
	TotalM3      float64 `json:"total_m3"`
}

func (r hotColdRecord) cells() []string {
	return []string{
		r.ZoneName, r.BuildingName,
		strconv.Itoa(r.HotMeters), strconv.Itoa(r.ColdMeters),
		num(r.HotM3), num(r.ColdM3), num(r.TotalM3),
	}
}

func buildHotCold(d DataSources) Dataset {
	zones := zoneNames(d.Zones)
	byBuilding := aggregateMeters(d.Meters, func(m types.Meter) string { return m.BuildingId })

	recs := make([]hotColdRecord, 0, len(d.Buildings))
	for _, b := range d.Buildings {
		agg := byBuilding[b.BuildingId]
		recs = append(recs, hotColdRecord{
			ZoneName:     nameOr(zones, b.ZoneId),
			BuildingName: b.BuildingName,
			HotMeters:    agg.hotMeters,
			ColdMeters:   agg.coldMeters,
			HotM3:        agg.hotM3,
			ColdM3:       agg.coldM3,
			TotalM3:      agg.hotM3 + agg.coldM3,
		})
	}
	return assemble([]string{
		"Zone", "Building", "Hot Meters", "Cold Meters",
		"Hot m³", "Cold m³", "Total m³",
	}, recs)
}

// ─── Meter status report ────────────────────────────────────────────────────

type meterStatusRecord struct {
	MeterCode     string          `json:"meterCode"`
	MeterType     types.MeterType `json:"meterType"`
	ZoneName      string          `json:"zoneName"`
	BuildingName  string          `json:"buildingName"`
	LocationLabel string          `json:"locationLabel"`
	Status        string          `json:"status"`
	BatteryLevel  int             `json:"batteryLevel"`
	LastSeenAt    string          `json:"lastSeenAt"`
	InstalledAt   string          `json:"installedAt"`
	OpenAlerts    int             `json:"openAlerts"`
}

func (r meterStatusRecord) cells() []string {
	return []string{
		r.MeterCode, string(r.MeterType), r.ZoneName, r.BuildingName,
		r.LocationLabel, r.Status, strconv.Itoa(r.BatteryLevel),
		r.LastSeenAt, r.InstalledAt, strconv.Itoa(r.OpenAlerts),
	}
}

func buildMeterStatus(d DataSources) Dataset {
	zones := zoneNames(d.Zones)
	bldgs := buildingNames(d.Buildings)
	alerts := openAlertCounts(d.Events, func(e types.MeterEvent) string { return e.MeterId })

	recs := make([]meterStatusRecord, 0, len(d.Meters))
	for _, m := range d.Meters {
		recs = append(recs, meterStatusRecord{
			MeterCode:     m.MeterCode,
			MeterType:     m.MeterType,
			ZoneName:      nameOr(zones, m.ZoneId),
			BuildingName:  nameOr(bldgs, m.BuildingId),
			LocationLabel: m.LocationLabel,
			Status:        statusLabel(m.IsActive),
			BatteryLevel:  m.BatteryLevel,
			LastSeenAt:    m.LastSeenAt,
			InstalledAt:   m.InstalledAt,
			OpenAlerts:    alerts[m.MeterId],
		})
	}
	return assemble([]string{
		"Meter Code", "Type", "Zone", "Building", "Location",
		"Status", "Battery %", "Last Seen", "Installed", "Open Alerts",
	}, recs)
}

// ─── Alert / event log ──────────────────────────────────────────────────────

type alertRecord struct {
	EventId      string          `json:"eventId"`
	ZoneName     string          `json:"zoneName"`
	BuildingName string          `json:"buildingName"`
	MeterId      string          `json:"meterId"`
	EventType    types.EventType `json:"eventType"`
	Severity     types.Severity  `json:"severity"`
	EventTs      string          `json:"eventTs"`
	IsResolved   bool            `json:"isResolved"`
	ResolvedBy   string          `json:"resolvedBy,omitempty"`
	ResolvedAt   string          `json:"resolvedAt,omitempty"`
	Notes        string          `json:"notes,omitempty"`
}

func (r alertRecord) cells() []string {
	resolved := "No"
	if r.IsResolved {
		resolved = "Yes"
	}
	return []string{
		r.EventId, r.ZoneName, r.BuildingName, r.MeterId,
		string(r.EventType), string(r.Severity), r.EventTs,
		resolved, r.ResolvedBy, r.Notes,
	}
}

func buildAlertEventLog(d DataSources) Dataset {
	zones := zoneNames(d.Zones)
	bldgs := buildingNames(d.Buildings)

	recs := make([]alertRecord, 0, len(d.Events))
	for _, e := range d.Events {
		recs = append(recs, alertRecord{
			EventId:      e.EventId,
			ZoneName:     nameOr(zones, e.ZoneId),
			BuildingName: nameOr(bldgs, e.BuildingId),
			MeterId:      e.MeterId,
			EventType:    e.EventType,
			Severity:     e.Severity,
			EventTs:      e.EventTs,
			IsResolved:   e.IsResolved,
			ResolvedBy:   e.ResolvedBy,
			ResolvedAt:   e.ResolvedAt,
			Notes:        e.Notes,
		})
	}
	return assemble([]string{
		"Event ID", "Zone", "Building", "Meter", "Event Type",
		"Severity", "Timestamp", "Resolved", "Resolved By", "Notes",
	}, recs)
}

// ─── Battery report ─────────────────────────────────────────────────────────

type batteryRecord struct {
	MeterCode     string          `json:"meterCode"`
	MeterType     types.MeterType `json:"meterType"`
	ZoneName      string          `json:"zoneName"`
	BuildingName  string          `json:"buildingName"`
	LocationLabel string          `json:"locationLabel"`
	BatteryLevel  int             `json:"batteryLevel"`
	RiskLevel     string          `json:"riskLevel"`
	Status        string          `json:"status"`
}

func (r batteryRecord) cells() []string {
	return []string{
		r.MeterCode, string(r.MeterType), r.ZoneName, r.BuildingName,
		r.LocationLabel, strconv.Itoa(r.BatteryLevel),
		riskAdvice(r.BatteryLevel), r.Status,
	}
}

// BatteryRisk classifies a battery level at the documented thresholds.
func BatteryRisk(level int) string {
	switch {
	case level < 20:
		return "CRITICAL"
	case level < 50:
		return "LOW"
	default:
		return "OK"
	}
}

func riskAdvice(level int) string {
	switch BatteryRisk(level) {
	case "CRITICAL":
		return "CRITICAL — Replace immediately"
	case "LOW":
		return "LOW — Schedule replacement"
	default:
		return "OK"
	}
}

func buildBattery(d DataSources) Dataset {
	zones := zoneNames(d.Zones)
	bldgs := buildingNames(d.Buildings)

	sorted := make([]types.Meter, len(d.Meters))
	copy(sorted, d.Meters)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].BatteryLevel < sorted[j].BatteryLevel
	})

	recs := make([]batteryRecord, 0, len(sorted))
	for _, m := range sorted {
		recs = append(recs, batteryRecord{
			MeterCode:     m.MeterCode,
			MeterType:     m.MeterType,
			ZoneName:      nameOr(zones, m.ZoneId),
			BuildingName:  nameOr(bldgs, m.BuildingId),
			LocationLabel: m.LocationLabel,
			BatteryLevel:  m.BatteryLevel,
			RiskLevel:     BatteryRisk(m.BatteryLevel),
			Status:        statusLabel(m.IsActive),
		})
	}
	return assemble([]string{
		"Meter Code", "Type", "Zone", "Building", "Location",
		"Battery %", "Risk Level", "Status",
	}, recs)
}

// ─── Zone comparison ────────────────────────────────────────────────────────

type zoneComparisonRecord struct {
	ZoneId        string  `json:"zoneId"`
	ZoneName      string  `json:"zoneName"`
	Buildings     int     `json:"buildings"`
	HotM3         float64 `json:"hot_m3"`
	ColdM3        float64 `json:"cold_m3"`
	TotalM3       float64 `json:"total_m3"`
	ActiveMeters  int     `json:"activeMeters"`
	OfflineMeters int     `json:"offlineMeters"`
	OpenAlerts    int     `json:"openAlerts"`
}

func (r zoneComparisonRecord) cells() []string {
	return []string{
		r.ZoneName, strconv.Itoa(r.Buildings),
		strconv.Itoa(r.ActiveMeters), strconv.Itoa(r.OfflineMeters),
		num(r.HotM3), num(r.ColdM3), num(r.TotalM3),
		strconv.Itoa(r.OpenAlerts),
	}
}

func buildZoneComparison(d DataSources) Dataset {
	byZone := aggregateMeters(d.Meters, func(m types.Meter) string { return m.ZoneId })
	alerts := openAlertCounts(d.Events, func(e types.MeterEvent) string { return e.ZoneId })

	recs := make([]zoneComparisonRecord, 0, len(d.Zones))
	for _, z := range d.Zones {
		agg := byZone[z.ZoneId]
		recs = append(recs, zoneComparisonRecord{
			ZoneId:        z.ZoneId,
			ZoneName:      z.ZoneName,
			Buildings:     z.BuildingCount,
			HotM3:         agg.hotM3,
			ColdM3:        agg.coldM3,
			TotalM3:       agg.hotM3 + agg.coldM3,
			ActiveMeters:  agg.active,
			OfflineMeters: agg.offline,
			OpenAlerts:    alerts[z.ZoneId],
		})
	}
	return assemble([]string{
		"Zone", "Buildings", "Active Meters", "Offline Meters",
		"Hot m³", "Cold m³", "Total m³", "Active Alerts",
	}, recs)
}

// ─── Building comparison ────────────────────────────────────────────────────

type buildingComparisonRecord struct {
	ZoneName     string  `json:"zoneName"`
	BuildingName string  `json:"buildingName"`
	BuildingCode string  `json:"buildingCode"`
	FloorCount   int     `json:"floorCount"`
	TotalMeters  int     `json:"totalMeters"`
	Active       int     `json:"activeMeters"`
	Offline      int     `json:"offlineMeters"`
	HotM3        float64 `json:"hot_m3"`
	ColdM3       float64 `json:"cold_m3"`
	TotalM3      float64 `json:"total_m3"`
	OpenAlerts   int     `json:"openAlerts"`
}

func (r buildingComparisonRecord) cells() []string {
	return []string{
		r.ZoneName, r.BuildingName, r.BuildingCode,
		strconv.Itoa(r.FloorCount), strconv.Itoa(r.TotalMeters),
		strconv.Itoa(r.Active), strconv.Itoa(r.Offline),
		num(r.HotM3), num(r.ColdM3), num(r.TotalM3),
		strconv.Itoa(r.OpenAlerts),
	}
}

func buildBuildingComparison(d DataSources) Dataset {
	zones := zoneNames(d.Zones)
	byBuilding := aggregateMeters(d.Meters, func(m types.Meter) string { return m.BuildingId })
	alerts := openAlertCounts(d.Events, func(e types.MeterEvent) string { return e.BuildingId })

	recs := make([]buildingComparisonRecord, 0, len(d.Buildings))
	for _, b := range d.Buildings {
		agg := byBuilding[b.BuildingId]
		recs = append(recs, buildingComparisonRecord{
			ZoneName:     nameOr(zones, b.ZoneId),
			BuildingName: b.BuildingName,
			BuildingCode: b.BuildingCode,
			FloorCount:   b.FloorCount,
			TotalMeters:  agg.total,
			Active:       agg.active,
			Offline:      agg.offline,
			HotM3:        agg.hotM3,
			ColdM3:       agg.coldM3,
			TotalM3:      agg.hotM3 + agg.coldM3,
			OpenAlerts:   alerts[b.BuildingId],
		})
	}
	return assemble([]string{
		"Zone", "Building", "Code", "Floors", "Total Meters", "Active",
		"Offline", "Hot m³", "Cold m³", "Total m³", "Open Alerts",
	}, recs)
}

// ─── Raw readings export ────────────────────────────────────────────────────

// The export carries the current per-meter snapshot, not fabricated hourly
// readings. Kept that way so the export matches what the meter list shows.
type rawReadingRecord struct {
	MeterCode     string          `json:"meterCode"`
	MeterType     types.MeterType `json:"meterType"`
	ZoneName      string          `json:"zoneName"`
	BuildingName  string          `json:"buildingName"`
	LocationLabel string          `json:"locationLabel"`
	ConsumptionM3 float64         `json:"consumption_m3"`
	FlowRateM3H   float64         `json:"flowRate_m3h"`
	BatteryLevel  int             `json:"batteryLevel"`
	Status        string          `json:"status"`
	LastSeenAt    string          `json:"lastSeenAt"`
}

func (r rawReadingRecord) cells() []string {
	return []string{
		r.MeterCode, string(r.MeterType), r.ZoneName, r.BuildingName,
		r.LocationLabel, num(r.ConsumptionM3),
		fmt.Sprintf("%.3f", r.FlowRateM3H), strconv.Itoa(r.BatteryLevel),
		r.Status, r.LastSeenAt,
	}
}

func buildRawReadings(d DataSources) Dataset {
	zones := zoneNames(d.Zones)
	bldgs := buildingNames(d.Buildings)

	recs := make([]rawReadingRecord, 0, len(d.Meters))
	for _, m := range d.Meters {
		recs = append(recs, rawReadingRecord{
			MeterCode:     m.MeterCode,
			MeterType:     m.MeterType,
			ZoneName:      nameOr(zones, m.ZoneId),
			BuildingName:  nameOr(bldgs, m.BuildingId),
			LocationLabel: m.LocationLabel,
			ConsumptionM3: m.Consumption,
			FlowRateM3H:   m.CurrentFlowRate,
			BatteryLevel:  m.BatteryLevel,
			Status:        statusLabel(m.IsActive),
			LastSeenAt:    m.LastSeenAt,
		})
	}
	return assemble([]string{
		"Meter Code", "Type", "Zone", "Building", "Location",
		"Consumption (m³)", "Flow Rate (m³/h)", "Battery %",
		"Status", "Last Seen",
	}, recs)
}

// ─── Shared lookup and aggregation helpers ──────────────────────────────────

func zoneNames(zones []types.Zone) map[string]string {
	names := make(map[string]string, len(zones))
	for _, z := range zones {
		names[z.ZoneId] = z.ZoneName
	}
	return names
}

func buildingNames(buildings []types.Building) map[string]string {
	names := make(map[string]string, len(buildings))
	for _, b := range buildings {
		names[b.BuildingId] = b.BuildingName
	}
	return names
}

// nameOr degrades a dangling reference to its raw id.
func nameOr(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return id
}

type meterAgg struct {
	total      int
	hotMeters  int
	coldMeters int
	active     int
	offline    int
	hotM3      float64
	coldM3     float64
}

func aggregateMeters(meters []types.Meter, key func(types.Meter) string) map[string]meterAgg {
	aggs := make(map[string]meterAgg)
	for _, m := range meters {
		agg := aggs[key(m)]
		agg.total++
		if m.IsActive {
			agg.active++
		} else {
			agg.offline++
		}
		switch m.MeterType {
		case types.MeterTypeHot:
			agg.hotMeters++
			agg.hotM3 += m.Consumption
		case types.MeterTypeCold:
			agg.coldMeters++
			agg.coldM3 += m.Consumption
		}
		aggs[key(m)] = agg
	}
	return aggs
}

func openAlertCounts(events []types.MeterEvent, key func(types.MeterEvent) string) map[string]int {
	counts := make(map[string]int)
	for _, e := range events {
		if !e.IsResolved {
			counts[key(e)]++
		}
	}
	return counts
}

func statusLabel(active bool) string {
	if active {
		return "Active"
	}
	return "Offline"
}

// num renders a float the way the dashboard shows it: no trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
