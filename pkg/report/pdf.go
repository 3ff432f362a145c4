package report

import (
	"fmt"
	"html"
	"strings"
	"time"
)

const printStyles = `    @media print { @page { margin: 18mm; } }
    body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif; font-size: 11px; color: #1a202c; margin: 0; padding: 20px; }
    .header { display: flex; justify-content: space-between; align-items: flex-start; margin-bottom: 20px; padding-bottom: 12px; border-bottom: 2px solid #1E88E5; }
    .header h1 { font-size: 18px; font-weight: 700; color: #1E88E5; margin: 0 0 4px; }
    .header .meta { font-size: 11px; color: #718096; }
    .meta-grid { display: grid; grid-template-columns: repeat(4,1fr); gap: 10px; margin-bottom: 20px; }
    .meta-box  { background: #f7fafc; border: 1px solid #e2e8f0; border-radius: 6px; padding: 8px 12px; }
    .meta-box .label { font-size: 9px; text-transform: uppercase; letter-spacing: .06em; color: #718096; font-weight: 600; }
    .meta-box .value { font-size: 13px; font-weight: 700; color: #2d3748; margin-top: 2px; }
    table { width: 100%; border-collapse: collapse; font-size: 10px; }
    th { background: #1E88E5; color: #fff; padding: 6px 8px; text-align: left; font-weight: 600; }
    td { padding: 5px 8px; border-bottom: 1px solid #e2e8f0; }
    tr:nth-child(even) td { background: #f7fafc; }
    .footer { margin-top: 16px; font-size: 9px; color: #a0aec0; text-align: center; }`

// EncodePrintHTML renders the dataset as a self-contained print-styled HTML
// document. There is no real PDF writer: the page calls window.print() on
// load and the print dialog output is the artifact.
func EncodePrintHTML(d DataSources, ds Dataset, generatedAt time.Time) string {
	activeMeters := 0
	for _, m := range d.Meters {
		if m.IsActive {
			activeMeters++
		}
	}
	openAlerts := 0
	for _, e := range d.Events {
		if !e.IsResolved {
			openAlerts++
		}
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("  <meta charset=\"UTF-8\" />\n")
	fmt.Fprintf(&b, "  <title>%s — %s</title>\n",
		html.EscapeString(d.ReportType), html.EscapeString(d.RegionName))
	b.WriteString("  <style>\n" + printStyles + "\n  </style>\n</head>\n<body>\n")

	b.WriteString("  <div class=\"header\">\n    <div>\n")
	fmt.Fprintf(&b, "      <h1>%s</h1>\n", html.EscapeString(d.ReportType))
	fmt.Fprintf(&b, "      <div class=\"meta\">%s · %s to %s</div>\n",
		html.EscapeString(d.RegionName), html.EscapeString(d.DateFrom), html.EscapeString(d.DateTo))
	b.WriteString("    </div>\n")
	fmt.Fprintf(&b, "    <div class=\"meta\" style=\"text-align:right;\">Generated: %s<br/>AquaWatch Dashboard</div>\n",
		generatedAt.UTC().Format("2006-01-02 15:04:05"))
	b.WriteString("  </div>\n")

	b.WriteString("  <div class=\"meta-grid\">\n")
	writeMetaBox(&b, "Total Meters", fmt.Sprintf("%d", len(d.Meters)))
	writeMetaBox(&b, "Active", fmt.Sprintf("%d", activeMeters))
	writeMetaBox(&b, "Open Alerts", fmt.Sprintf("%d", openAlerts))
	writeMetaBox(&b, "Zones", fmt.Sprintf("%d", len(d.Zones)))
	b.WriteString("  </div>\n")

	b.WriteString("  <table>\n    <thead><tr>")
	for _, h := range ds.Header {
		fmt.Fprintf(&b, "<th>%s</th>", html.EscapeString(h))
	}
	b.WriteString("</tr></thead>\n    <tbody>\n")
	for _, row := range ds.Rows {
		b.WriteString("      <tr>")
		for _, c := range row {
			fmt.Fprintf(&b, "<td>%s</td>", html.EscapeString(c))
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("    </tbody>\n  </table>\n")

	fmt.Fprintf(&b, "  <div class=\"footer\">AquaWatch Dashboard — %s — %s — Confidential</div>\n",
		html.EscapeString(d.ReportType), html.EscapeString(d.RegionName))
	b.WriteString("  <script>window.onload = () => { window.print() }</script>\n")
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func writeMetaBox(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "    <div class=\"meta-box\"><div class=\"label\">%s</div><div class=\"value\">%s</div></div>\n",
		label, value)
}
