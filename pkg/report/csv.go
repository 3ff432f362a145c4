package report

import "strings"

// esc applies standard CSV quoting: a cell is wrapped in double quotes,
// with inner quotes doubled, when it contains a comma, quote or newline.
func esc(val string) string {
	if strings.ContainsAny(val, ",\"\n") {
		return `"` + strings.ReplaceAll(val, `"`, `""`) + `"`
	}
	return val
}

func encodeRow(cells []string) string {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = esc(c)
	}
	return strings.Join(escaped, ",")
}

// EncodeCSV renders the dataset as newline-joined CSV, header first.
// An empty dataset yields exactly the header row.
func EncodeCSV(ds Dataset) string {
	lines := make([]string, 0, len(ds.Rows)+1)
	lines = append(lines, encodeRow(ds.Header))
	for _, row := range ds.Rows {
		lines = append(lines, encodeRow(row))
	}
	return strings.Join(lines, "\n")
}
