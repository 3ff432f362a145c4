package types

type ReportFormat string

const (
	FormatPDF  ReportFormat = "PDF"
	FormatXLSX ReportFormat = "XLSX"
	FormatCSV  ReportFormat = "CSV"
	FormatJSON ReportFormat = "JSON"
)

type ReportStatus string

const (
	ReportPending    ReportStatus = "PENDING"
	ReportProcessing ReportStatus = "PROCESSING"
	ReportReady      ReportStatus = "READY"
	ReportFailed     ReportStatus = "FAILED"
)

type ReportFrequency string

const (
	FrequencyDaily   ReportFrequency = "DAILY"
	FrequencyWeekly  ReportFrequency = "WEEKLY"
	FrequencyMonthly ReportFrequency = "MONTHLY"
)

type ReportJob struct {
	JobId        string       `json:"jobId"`
	ReportType   string       `json:"reportType"`
	Format       ReportFormat `json:"format"`
	Status       ReportStatus `json:"status"`
	RequestedAt  string       `json:"requestedAt"`
	CompletedAt  string       `json:"completedAt,omitempty"`
	ArtifactPath string       `json:"artifactPath,omitempty"`
	ErrorMessage string       `json:"errorMessage,omitempty"`
}

type ScheduledReport struct {
	ScheduleId      string          `json:"scheduleId"`
	Name            string          `json:"name"`
	ReportType      string          `json:"reportType"`
	Format          ReportFormat    `json:"format"`
	Frequency       ReportFrequency `json:"frequency"`
	NextRunAt       string          `json:"nextRunAt"`
	IsActive        bool            `json:"isActive"`
	EmailRecipients []string        `json:"emailRecipients"`
}
