package report

import (
	"fmt"
	"strings"
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EncodeXLS renders the dataset as a legacy spreadsheet-XML workbook.
// Excel opens this natively, which is why the artifact ships as .xls
// rather than a real .xlsx archive. All cells are typed as String.
func EncodeXLS(label string, ds Dataset) string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\"?>\n")
	b.WriteString("<Workbook xmlns=\"urn:schemas-microsoft-com:office:spreadsheet\"\n")
	b.WriteString("          xmlns:ss=\"urn:schemas-microsoft-com:office:spreadsheet\">\n")
	fmt.Fprintf(&b, "  <Worksheet ss:Name=\"%s\">\n", xmlEscaper.Replace(sheetName(label)))
	b.WriteString("    <Table>\n")
	writeXlsRow(&b, ds.Header)
	for _, row := range ds.Rows {
		writeXlsRow(&b, row)
	}
	b.WriteString("    </Table>\n")
	b.WriteString("  </Worksheet>\n")
	b.WriteString("</Workbook>\n")
	return b.String()
}

func writeXlsRow(b *strings.Builder, cells []string) {
	b.WriteString("      <Row>")
	for _, c := range cells {
		fmt.Fprintf(b, "<Cell><Data ss:Type=\"String\">%s</Data></Cell>", xmlEscaper.Replace(c))
	}
	b.WriteString("</Row>\n")
}

// Worksheet names are capped at 31 characters by Excel.
func sheetName(label string) string {
	runes := []rune(label)
	if len(runes) > 30 {
		runes = runes[:30]
	}
	return string(runes)
}
