package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aquawatch/aquawatch_backend/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	d := testSources()

	t.Run("csv artifact", func(t *testing.T) {
		a, err := Render(d, types.FormatCSV)

		require.NoError(t, err)
		assert.Equal(t, "text/csv;charset=utf-8;", a.MIMEType)
		assert.Equal(t, "csv", a.Ext)
		assert.Contains(t, string(a.Content), "WM-001")
	})

	t.Run("json artifact", func(t *testing.T) {
		a, err := Render(d, types.FormatJSON)

		require.NoError(t, err)
		assert.Equal(t, "application/json", a.MIMEType)
		assert.Equal(t, "json", a.Ext)
	})

	t.Run("spreadsheet artifact ships as legacy xls", func(t *testing.T) {
		a, err := Render(d, types.FormatXLSX)

		require.NoError(t, err)
		assert.Equal(t, "application/vnd.ms-excel", a.MIMEType)
		assert.Equal(t, "xls", a.Ext)
	})

	t.Run("pdf artifact is print-ready html", func(t *testing.T) {
		a, err := Render(d, types.FormatPDF)

		require.NoError(t, err)
		assert.Equal(t, "text/html;charset=utf-8;", a.MIMEType)
		assert.Equal(t, "html", a.Ext)
	})

	t.Run("unknown format returns an error", func(t *testing.T) {
		_, err := Render(d, types.ReportFormat("docx"))

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	a := Artifact{Content: []byte("hello"), MIMEType: "text/csv;charset=utf-8;", Ext: "csv"}

	path, err := Save(a, filepath.Join(dir, "reports"), "test_2026-02-19_RPT-1")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "reports", "test_2026-02-19_RPT-1.csv"), path)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "hot-cold-report", Slug("Hot / Cold Report"))
	assert.Equal(t, "alert-event-log", Slug("Alert / Event Log"))
	assert.Equal(t, "consumption-summary", Slug("Consumption Summary"))
	assert.Equal(t, "", Slug("///"))
}

func TestBuildFilename(t *testing.T) {
	name := BuildFilename("Battery Report", fixedNow(), "RPT-A1B2C3D4")

	assert.Equal(t, "battery-report_2026-02-19_RPT-A1B2C3D4", name)
}
