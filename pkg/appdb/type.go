package appdb

import (
	"strings"

	"github.com/aquawatch/aquawatch_backend/pkg/types"
)

type DbUser struct {
	UserId            string `db:"user_id"`
	Email             string `db:"email"`
	Username          string `db:"username"`
	FullName          string `db:"full_name"`
	Role              string `db:"role"`
	IsActive          bool   `db:"is_active"`
	MustResetPassword bool   `db:"must_reset_password"`
	CreatedAt         string `db:"created_at"`
	LastLoginAt       string `db:"last_login_at"`
	// Comma-joined region ids
	RegionAccess string `db:"region_access"`
}

type DbReportJob struct {
	JobId        string `db:"job_id"`
	ReportType   string `db:"report_type"`
	Format       string `db:"format"`
	Status       string `db:"status"`
	RequestedAt  string `db:"requested_at"`
	CompletedAt  string `db:"completed_at"`
	ArtifactPath string `db:"artifact_path"`
	ErrorMessage string `db:"error_message"`
}

type DbScheduledReport struct {
	ScheduleId string `db:"schedule_id"`
	Name       string `db:"name"`
	ReportType string `db:"report_type"`
	Format     string `db:"format"`
	Frequency  string `db:"frequency"`
	NextRunAt  string `db:"next_run_at"`
	IsActive   bool   `db:"is_active"`
	// Comma-joined addresses
	EmailRecipients string `db:"email_recipients"`
}

func (u DbUser) ToUser() types.User {
	var access []string
	if u.RegionAccess != "" {
		access = strings.Split(u.RegionAccess, ",")
	}
	return types.User{
		UserId:            u.UserId,
		Email:             u.Email,
		Username:          u.Username,
		FullName:          u.FullName,
		Role:              types.UserRole(u.Role),
		IsActive:          u.IsActive,
		MustResetPassword: u.MustResetPassword,
		CreatedAt:         u.CreatedAt,
		LastLoginAt:       u.LastLoginAt,
		RegionAccess:      access,
	}
}

func FromUser(u types.User) DbUser {
	return DbUser{
		UserId:            u.UserId,
		Email:             u.Email,
		Username:          u.Username,
		FullName:          u.FullName,
		Role:              string(u.Role),
		IsActive:          u.IsActive,
		MustResetPassword: u.MustResetPassword,
		CreatedAt:         u.CreatedAt,
		LastLoginAt:       u.LastLoginAt,
		RegionAccess:      strings.Join(u.RegionAccess, ","),
	}
}

func (j DbReportJob) ToReportJob() types.ReportJob {
	return types.ReportJob{
		JobId:        j.JobId,
		ReportType:   j.ReportType,
		Format:       types.ReportFormat(j.Format),
		Status:       types.ReportStatus(j.Status),
		RequestedAt:  j.RequestedAt,
		CompletedAt:  j.CompletedAt,
		ArtifactPath: j.ArtifactPath,
		ErrorMessage: j.ErrorMessage,
	}
}

func (s DbScheduledReport) ToScheduledReport() types.ScheduledReport {
	var recipients []string
	if s.EmailRecipients != "" {
		recipients = strings.Split(s.EmailRecipients, ",")
	}
	return types.ScheduledReport{
		ScheduleId:      s.ScheduleId,
		Name:            s.Name,
		ReportType:      s.ReportType,
		Format:          types.ReportFormat(s.Format),
		Frequency:       types.ReportFrequency(s.Frequency),
		NextRunAt:       s.NextRunAt,
		IsActive:        s.IsActive,
		EmailRecipients: recipients,
	}
}
