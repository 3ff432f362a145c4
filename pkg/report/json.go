package report

import (
	"encoding/json"
	"time"
)

type jsonMeta struct {
	Type        string `json:"type"`
	Region      string `json:"region"`
	DateFrom    string `json:"dateFrom"`
	DateTo      string `json:"dateTo"`
	GeneratedAt string `json:"generatedAt"`
	RecordCount int    `json:"recordCount"`
}

type jsonEnvelope struct {
	Report jsonMeta    `json:"report"`
	Data   interface{} `json:"data"`
}

// EncodeJSON wraps the dataset's typed records in the report envelope.
// The record count always matches the CSV data row count because both
// come from the same dataset.
func EncodeJSON(d DataSources, ds Dataset, generatedAt time.Time) ([]byte, error) {
	return json.MarshalIndent(jsonEnvelope{
		Report: jsonMeta{
			Type:        d.ReportType,
			Region:      d.RegionName,
			DateFrom:    d.DateFrom,
			DateTo:      d.DateTo,
			GeneratedAt: generatedAt.UTC().Format(time.RFC3339),
			RecordCount: len(ds.Rows),
		},
		Data: ds.Records,
	}, "", "  ")
}
