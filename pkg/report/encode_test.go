package report

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2026, time.February, 19, 12, 30, 0, 0, time.UTC)
}

func TestEncodeCSV(t *testing.T) {
	t.Run("quotes cells containing commas quotes or newlines", func(t *testing.T) {
		ds := Dataset{
			Header: []string{"Name", "Note"},
			Rows: [][]string{
				{"plain", `has, comma`},
				{`has "quotes"`, "has\nnewline"},
			},
		}

		out := EncodeCSV(ds)

		// A standard CSV parser must recover the original cells
		records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, []string{"plain", "has, comma"}, records[1])
		assert.Equal(t, []string{`has "quotes"`, "has\nnewline"}, records[2])
	})

	t.Run("header comes first", func(t *testing.T) {
		d := testSources()
		out := EncodeCSV(BuildDataset(d))

		assert.True(t, strings.HasPrefix(out, "Zone,Building,Meter Code,Type,"))
	})
}

func TestEncodeJSON(t *testing.T) {
	d := testSources()
	ds := BuildDataset(d)

	raw, err := EncodeJSON(d, ds, fixedNow())

	require.NoError(t, err)
	out := string(raw)
	assert.Contains(t, out, `"type": "Consumption Summary"`)
	assert.Contains(t, out, `"region": "North Region"`)
	assert.Contains(t, out, `"generatedAt": "2026-02-19T12:30:00Z"`)
	assert.Contains(t, out, `"recordCount": 2`)
	assert.Contains(t, out, `"meterCode": "WM-001"`)
	assert.Contains(t, out, `"consumption_m3": 300`)
}

func TestEncodeXLS(t *testing.T) {
	t.Run("produces a spreadsheet-xml workbook", func(t *testing.T) {
		ds := BuildDataset(testSources())

		out := EncodeXLS("Consumption Summary", ds)

		assert.Contains(t, out, "urn:schemas-microsoft-com:office:spreadsheet")
		assert.Contains(t, out, `<Worksheet ss:Name="Consumption Summary">`)
		assert.Equal(t, 3, strings.Count(out, "<Row>"))
		assert.Contains(t, out, `<Data ss:Type="String">WM-001</Data>`)
	})

	t.Run("escapes markup in cell values", func(t *testing.T) {
		ds := Dataset{Header: []string{"Note"}, Rows: [][]string{{`<b>&"bold"</b>`}}}

		out := EncodeXLS("X", ds)

		assert.Contains(t, out, "&lt;b&gt;&amp;&quot;bold&quot;&lt;/b&gt;")
		assert.NotContains(t, out, `<b>`)
	})

	t.Run("sheet name is capped for excel", func(t *testing.T) {
		long := strings.Repeat("A", 40)

		out := EncodeXLS(long, Dataset{})

		assert.Contains(t, out, `ss:Name="`+strings.Repeat("A", 30)+`"`)
		assert.NotContains(t, out, strings.Repeat("A", 31))
	})
}

func TestEncodePrintHTML(t *testing.T) {
	d := testSources()
	ds := BuildDataset(d)

	out := EncodePrintHTML(d, ds, fixedNow())

	assert.Contains(t, out, "<h1>Consumption Summary</h1>")
	assert.Contains(t, out, "Generated: 2026-02-19 12:30:00")
	// Meta boxes reflect the source collections
	assert.Contains(t, out, `<div class="label">Total Meters</div><div class="value">2</div>`)
	assert.Contains(t, out, `<div class="label">Active</div><div class="value">1</div>`)
	assert.Contains(t, out, `<div class="label">Open Alerts</div><div class="value">1</div>`)
	assert.Contains(t, out, "window.print()")
	assert.Contains(t, out, "Confidential")
}
