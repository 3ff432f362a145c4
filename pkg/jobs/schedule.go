package jobs

import (
	"fmt"
	"strings"
	"time"

	"github.com/aquawatch/aquawatch_backend/pkg/appdb"
	"github.com/aquawatch/aquawatch_backend/pkg/types"
)

var ErrScheduleNotFound = fmt.Errorf("scheduled report not found")

// NextRunAfter returns the next run instant for a frequency, from a given
// reference time.
func NextRunAfter(freq types.ReportFrequency, from time.Time) time.Time {
	switch freq {
	case types.FrequencyDaily:
		return from.AddDate(0, 0, 1)
	case types.FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case types.FrequencyMonthly:
		return from.AddDate(0, 1, 0)
	default:
		return from.AddDate(0, 0, 1)
	}
}

// CreateSchedule persists a new scheduled report with its first run
// computed from now.
func (q *Queue) CreateSchedule(name, reportType string, format types.ReportFormat, freq types.ReportFrequency, recipients []string) (types.ScheduledReport, error) {
	row := &appdb.DbScheduledReport{
		ScheduleId:      ScheduleIDSource(),
		Name:            name,
		ReportType:      reportType,
		Format:          string(format),
		Frequency:       string(freq),
		NextRunAt:       NextRunAfter(freq, q.Now()).UTC().Format(time.RFC3339),
		IsActive:        true,
		EmailRecipients: strings.Join(recipients, ","),
	}
	if err := appdb.InsertScheduledReport(row); err != nil {
		return types.ScheduledReport{}, fmt.Errorf("persist schedule: %w", err)
	}
	return row.ToScheduledReport(), nil
}

func (q *Queue) ListSchedules() ([]types.ScheduledReport, error) {
	rows, err := appdb.ListScheduledReports()
	if err != nil {
		return nil, err
	}
	schedules := make([]types.ScheduledReport, 0, len(rows))
	for _, r := range rows {
		schedules = append(schedules, r.ToScheduledReport())
	}
	return schedules, nil
}

// SetScheduleActive toggles a schedule on or off.
func (q *Queue) SetScheduleActive(scheduleId string, active bool) error {
	rows, err := appdb.ListScheduledReports()
	if err != nil {
		return err
	}
	for _, r := range rows {
		if r.ScheduleId == scheduleId {
			r.IsActive = active
			return appdb.UpdateScheduledReport(&r)
		}
	}
	return fmt.Errorf("%w: %s", ErrScheduleNotFound, scheduleId)
}

func (q *Queue) DeleteSchedule(scheduleId string) error {
	return appdb.DeleteScheduledReport(scheduleId)
}
