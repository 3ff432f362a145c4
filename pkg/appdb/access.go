package appdb

import "database/sql"

// ─── Users ──────────────────────────────────────────────────────────────────

func InsertUser(u *DbUser) error {
	db := GetDB()

	_, err := db.Exec(
		"INSERT INTO users "+
			"(user_id, email, username, full_name, role, is_active, must_reset_password, created_at, last_login_at, region_access) "+
			"VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		u.UserId,
		u.Email,
		u.Username,
		u.FullName,
		u.Role,
		u.IsActive,
		u.MustResetPassword,
		u.CreatedAt,
		u.LastLoginAt,
		u.RegionAccess,
	)
	return err
}

func UpdateUser(u *DbUser) error {
	db := GetDB()

	_, err := db.Exec(
		"UPDATE users SET email = ?, username = ?, full_name = ?, role = ?, "+
			"is_active = ?, must_reset_password = ?, last_login_at = ?, region_access = ? "+
			"WHERE user_id = ?",
		u.Email,
		u.Username,
		u.FullName,
		u.Role,
		u.IsActive,
		u.MustResetPassword,
		u.LastLoginAt,
		u.RegionAccess,
		u.UserId,
	)
	return err
}

func GetUserByEmail(email string) (*DbUser, error) {
	db := GetDB()

	row := db.QueryRow(
		"SELECT user_id, email, username, full_name, role, is_active, must_reset_password, created_at, last_login_at, region_access "+
			"FROM users WHERE email = ?", email)
	return scanUser(row)
}

func GetUserById(userId string) (*DbUser, error) {
	db := GetDB()

	row := db.QueryRow(
		"SELECT user_id, email, username, full_name, role, is_active, must_reset_password, created_at, last_login_at, region_access "+
			"FROM users WHERE user_id = ?", userId)
	return scanUser(row)
}

func ListUsers() ([]DbUser, error) {
	db := GetDB()

	rows, err := db.Query(
		"SELECT user_id, email, username, full_name, role, is_active, must_reset_password, created_at, last_login_at, region_access " +
			"FROM users ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []DbUser
	for rows.Next() {
		var u DbUser
		if err := rows.Scan(
			&u.UserId, &u.Email, &u.Username, &u.FullName, &u.Role,
			&u.IsActive, &u.MustResetPassword, &u.CreatedAt, &u.LastLoginAt,
			&u.RegionAccess,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func scanUser(row *sql.Row) (*DbUser, error) {
	var u DbUser
	err := row.Scan(
		&u.UserId, &u.Email, &u.Username, &u.FullName, &u.Role,
		&u.IsActive, &u.MustResetPassword, &u.CreatedAt, &u.LastLoginAt,
		&u.RegionAccess,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ─── Report jobs ────────────────────────────────────────────────────────────

func InsertReportJob(j *DbReportJob) error {
	db := GetDB()

	_, err := db.Exec(
		"INSERT INTO report_jobs "+
			"(job_id, report_type, format, status, requested_at, completed_at, artifact_path, error_message) "+
			"VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		j.JobId,
		j.ReportType,
		j.Format,
		j.Status,
		j.RequestedAt,
		j.CompletedAt,
		j.ArtifactPath,
		j.ErrorMessage,
	)
	return err
}

func UpdateReportJobStatus(jobId, status, completedAt, artifactPath, errorMessage string) error {
	db := GetDB()

	_, err := db.Exec(
		"UPDATE report_jobs SET status = ?, completed_at = ?, artifact_path = ?, error_message = ? "+
			"WHERE job_id = ?",
		status, completedAt, artifactPath, errorMessage, jobId)
	return err
}

func GetReportJob(jobId string) (*DbReportJob, error) {
	db := GetDB()

	var j DbReportJob
	err := db.QueryRow(
		"SELECT job_id, report_type, format, status, requested_at, completed_at, artifact_path, error_message "+
			"FROM report_jobs WHERE job_id = ?", jobId).Scan(
		&j.JobId, &j.ReportType, &j.Format, &j.Status,
		&j.RequestedAt, &j.CompletedAt, &j.ArtifactPath, &j.ErrorMessage,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func ListReportJobs() ([]DbReportJob, error) {
	db := GetDB()

	rows, err := db.Query(
		"SELECT job_id, report_type, format, status, requested_at, completed_at, artifact_path, error_message " +
			"FROM report_jobs ORDER BY requested_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []DbReportJob
	for rows.Next() {
		var j DbReportJob
		if err := rows.Scan(
			&j.JobId, &j.ReportType, &j.Format, &j.Status,
			&j.RequestedAt, &j.CompletedAt, &j.ArtifactPath, &j.ErrorMessage,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func DeleteReportJob(jobId string) error {
	db := GetDB()

	_, err := db.Exec("DELETE FROM report_jobs WHERE job_id = ?", jobId)
	return err
}

// ─── Scheduled reports ──────────────────────────────────────────────────────

func InsertScheduledReport(s *DbScheduledReport) error {
	db := GetDB()

	_, err := db.Exec(
		"INSERT INTO scheduled_reports "+
			"(schedule_id, name, report_type, format, frequency, next_run_at, is_active, email_recipients) "+
			"VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		s.ScheduleId,
		s.Name,
		s.ReportType,
		s.Format,
		s.Frequency,
		s.NextRunAt,
		s.IsActive,
		s.EmailRecipients,
	)
	return err
}

func UpdateScheduledReport(s *DbScheduledReport) error {
	db := GetDB()

	_, err := db.Exec(
		"UPDATE scheduled_reports SET name = ?, report_type = ?, format = ?, "+
			"frequency = ?, next_run_at = ?, is_active = ?, email_recipients = ? "+
			"WHERE schedule_id = ?",
		s.Name, s.ReportType, s.Format, s.Frequency,
		s.NextRunAt, s.IsActive, s.EmailRecipients, s.ScheduleId)
	return err
}

func ListScheduledReports() ([]DbScheduledReport, error) {
	db := GetDB()

	rows, err := db.Query(
		"SELECT schedule_id, name, report_type, format, frequency, next_run_at, is_active, email_recipients " +
			"FROM scheduled_reports ORDER BY next_run_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []DbScheduledReport
	for rows.Next() {
		var s DbScheduledReport
		if err := rows.Scan(
			&s.ScheduleId, &s.Name, &s.ReportType, &s.Format,
			&s.Frequency, &s.NextRunAt, &s.IsActive, &s.EmailRecipients,
		); err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

func DeleteScheduledReport(scheduleId string) error {
	db := GetDB()

	_, err := db.Exec("DELETE FROM scheduled_reports WHERE schedule_id = ?", scheduleId)
	return err
}
