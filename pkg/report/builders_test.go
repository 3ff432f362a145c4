package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/aquawatch/aquawatch_backend/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSources() DataSources {
	return DataSources{
		Zones: []types.Zone{
			{ZoneId: "z-1", RegionId: "r-north", ZoneName: "Riverside", BuildingCount: 1, IsActive: true},
		},
		Buildings: []types.Building{
			{BuildingId: "b-1", ZoneId: "z-1", BuildingName: "Tower A", BuildingCode: "TA", FloorCount: 8},
		},
		Meters: []types.Meter{
			{
				MeterId: "m-1", BuildingId: "b-1", ZoneId: "z-1",
				MeterCode: "WM-001", MeterType: types.MeterTypeHot,
				LocationLabel: "Basement", IsActive: true, BatteryLevel: 87,
				LastSeenAt: "2026-02-19T10:00:00Z", InstalledAt: "2023-05-01",
				Consumption: 300, CurrentFlowRate: 2.5,
			},
			{
				MeterId: "m-2", BuildingId: "b-1", ZoneId: "z-1",
				MeterCode: "WM-002", MeterType: types.MeterTypeCold,
				LocationLabel: "Floor 3", IsActive: false, BatteryLevel: 12,
				LastSeenAt: "2026-02-17T08:00:00Z", InstalledAt: "2023-05-01",
				Consumption: 120.5, CurrentFlowRate: 0.8,
			},
		},
		Events: []types.MeterEvent{
			{
				EventId: "ev-1", MeterId: "m-2", BuildingId: "b-1", ZoneId: "z-1",
				EventType: types.EventLeakage, Severity: types.SeverityCritical,
				EventTs: "2026-02-18T04:12:00Z", IsResolved: false,
			},
		},
		RegionName: "North Region",
		ReportType: "Consumption Summary",
		DateFrom:   "2026-01-20",
		DateTo:     "2026-02-19",
	}
}

func TestBuildConsumptionSummary(t *testing.T) {
	ds := BuildDataset(testSources())

	assert.Equal(t, []string{
		"Zone", "Building", "Meter Code", "Type",
		"Consumption (m³)", "Flow Rate (m³/h)", "Status", "Last Seen",
	}, ds.Header)
	require.Len(t, ds.Rows, 2)
	assert.Equal(t, []string{
		"Riverside", "Tower A", "WM-001", "HOT",
		"300", "2.500", "Active", "2026-02-19T10:00:00Z",
	}, ds.Rows[0])
	assert.Equal(t, "Offline", ds.Rows[1][6])
}

func TestBuildBattery(t *testing.T) {
	t.Run("rows are sorted by battery level ascending", func(t *testing.T) {
		d := testSources()
		d.ReportType = "Battery Report"

		ds := BuildDataset(d)

		require.Len(t, ds.Rows, 2)
		assert.Equal(t, "WM-002", ds.Rows[0][0])
		assert.Equal(t, "12", ds.Rows[0][5])
		assert.Equal(t, "WM-001", ds.Rows[1][0])
	})

	t.Run("risk column carries the replacement advice", func(t *testing.T) {
		d := testSources()
		ds := BuildDatasetByType(TypeBattery, d)

		assert.Equal(t, "CRITICAL — Replace immediately", ds.Rows[0][6])
		assert.Equal(t, "OK", ds.Rows[1][6])
	})
}

func TestBatteryRisk(t *testing.T) {
	assert.Equal(t, "CRITICAL", BatteryRisk(0))
	assert.Equal(t, "CRITICAL", BatteryRisk(19))
	assert.Equal(t, "LOW", BatteryRisk(20))
	assert.Equal(t, "LOW", BatteryRisk(49))
	assert.Equal(t, "OK", BatteryRisk(50))
	assert.Equal(t, "OK", BatteryRisk(100))
}

func TestBuildHotCold(t *testing.T) {
	d := testSources()
	ds := BuildDatasetByType(TypeHotCold, d)

	require.Len(t, ds.Rows, 1)
	assert.Equal(t, []string{"Riverside", "Tower A", "1", "1", "300", "120.5", "420.5"}, ds.Rows[0])
}

func TestBuildZoneComparison(t *testing.T) {
	d := testSources()
	ds := BuildDatasetByType(TypeZoneComparison, d)

	require.Len(t, ds.Rows, 1)
	assert.Equal(t, []string{"Riverside", "1", "1", "1", "300", "120.5", "420.5", "1"}, ds.Rows[0])
}

func TestBuildBuildingComparison(t *testing.T) {
	d := testSources()
	ds := BuildDatasetByType(TypeBuildingComparison, d)

	require.Len(t, ds.Rows, 1)
	assert.Equal(t, []string{
		"Riverside", "Tower A", "TA", "8", "2", "1", "1",
		"300", "120.5", "420.5", "1",
	}, ds.Rows[0])
}

func TestBuildAlertEventLog(t *testing.T) {
	d := testSources()
	ds := BuildDatasetByType(TypeAlertEventLog, d)

	require.Len(t, ds.Rows, 1)
	assert.Equal(t, "ev-1", ds.Rows[0][0])
	assert.Equal(t, "No", ds.Rows[0][7])
}

func TestDanglingReferencesDegradeToRawIds(t *testing.T) {
	d := testSources()
	d.Meters[0].ZoneId = "z-missing"
	d.Meters[0].BuildingId = "b-missing"

	ds := BuildDataset(d)

	assert.Equal(t, "z-missing", ds.Rows[0][0])
	assert.Equal(t, "b-missing", ds.Rows[0][1])
}

func TestRowAndRecordCountsMatchAcrossTypes(t *testing.T) {
	d := testSources()
	for _, def := range Catalog() {
		t.Run(string(def.Id), func(t *testing.T) {
			ds := BuildDatasetByType(def.Id, d)

			raw, err := EncodeJSON(d, ds, fixedNow())
			require.NoError(t, err)

			var envelope struct {
				Report struct {
					RecordCount int `json:"recordCount"`
				} `json:"report"`
				Data []json.RawMessage `json:"data"`
			}
			require.NoError(t, json.Unmarshal(raw, &envelope))

			csvLines := strings.Split(EncodeCSV(ds), "\n")
			assert.Len(t, envelope.Data, len(csvLines)-1)
			assert.Equal(t, len(envelope.Data), envelope.Report.RecordCount)
		})
	}
}

func TestEmptyDatasets(t *testing.T) {
	d := DataSources{RegionName: "North Region", ReportType: "Consumption Summary"}

	t.Run("csv is exactly the header row", func(t *testing.T) {
		ds := BuildDataset(d)

		out := EncodeCSV(ds)
		assert.Equal(t, encodeRow(ds.Header), out)
		assert.NotContains(t, out, "\n")
	})

	t.Run("json data is an empty array", func(t *testing.T) {
		ds := BuildDataset(d)

		raw, err := EncodeJSON(d, ds, fixedNow())
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"data": []`)
		assert.Contains(t, string(raw), `"recordCount": 0`)
	})

	t.Run("spreadsheet has only the header row", func(t *testing.T) {
		ds := BuildDataset(d)

		out := EncodeXLS(d.ReportType, ds)
		assert.Equal(t, 1, strings.Count(out, "<Row>"))
	})
}
