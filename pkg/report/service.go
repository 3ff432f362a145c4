package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aquawatch/aquawatch_backend/pkg/types"
)

var ErrUnknownFormat = fmt.Errorf("unknown report format")

// Swapped out by tests that need a fixed generation timestamp.
var now = time.Now

// Render builds the dataset for the bundle's report type and serializes it
// in the requested format. Pure except for reading the clock; delivery is
// a separate step so callers learn about filesystem failures explicitly.
func Render(d DataSources, format types.ReportFormat) (Artifact, error) {
	ds := BuildDataset(d)

	switch format {
	case types.FormatCSV:
		return Artifact{
			Content:  []byte(EncodeCSV(ds)),
			MIMEType: "text/csv;charset=utf-8;",
			Ext:      "csv",
		}, nil
	case types.FormatJSON:
		content, err := EncodeJSON(d, ds, now())
		if err != nil {
			return Artifact{}, fmt.Errorf("encode json report: %w", err)
		}
		return Artifact{
			Content:  content,
			MIMEType: "application/json",
			Ext:      "json",
		}, nil
	case types.FormatXLSX:
		return Artifact{
			Content: []byte(EncodeXLS(d.ReportType, ds)),
			// Legacy spreadsheet-XML, not a real .xlsx archive
			MIMEType: "application/vnd.ms-excel",
			Ext:      "xls",
		}, nil
	case types.FormatPDF:
		return Artifact{
			Content:  []byte(EncodePrintHTML(d, ds, now())),
			MIMEType: "text/html;charset=utf-8;",
			Ext:      "html",
		}, nil
	default:
		return Artifact{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Save writes the artifact under dir and returns the full path. This is the
// delivery boundary: unlike a fire-and-forget browser download, the caller
// always learns whether the artifact landed.
func Save(a Artifact, dir string, basename string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	path := filepath.Join(dir, basename+"."+a.Ext)
	if err := os.WriteFile(path, a.Content, 0644); err != nil {
		return "", fmt.Errorf("write report artifact: %w", err)
	}
	return path, nil
}

// Slug lowercases a label and collapses non-alphanumeric runs to dashes.
func Slug(label string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(label) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
		} else if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// BuildFilename follows the <slug>_<yyyy-mm-dd>_<jobId> convention used by
// the job queue, without the extension.
func BuildFilename(label string, date time.Time, jobID string) string {
	return fmt.Sprintf("%s_%s_%s", Slug(label), date.Format("2006-01-02"), jobID)
}
