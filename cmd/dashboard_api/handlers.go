package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/aquawatch/aquawatch_backend/pkg/config"
	"github.com/aquawatch/aquawatch_backend/pkg/fixtures"
	"github.com/aquawatch/aquawatch_backend/pkg/jobs"
	"github.com/aquawatch/aquawatch_backend/pkg/report"
	"github.com/aquawatch/aquawatch_backend/pkg/stats"
	"github.com/aquawatch/aquawatch_backend/pkg/synthgen"
	"github.com/aquawatch/aquawatch_backend/pkg/types"
	"github.com/aquawatch/aquawatch_backend/pkg/users"
	"github.com/gorilla/mux"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// loadBundle fetches a fresh fixture snapshot through the latency-simulating
// loader, as if the dashboard had called a remote API.
func loadBundle(w http.ResponseWriter) (*fixtures.Bundle, bool) {
	bundle, err := dataLoader.Load()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	return bundle, true
}

func statusHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "AquaWatch Dashboard API",
		"status":  "running",
	})
}

// ─── Entities ───────────────────────────────────────────────────────────────

func listRegions(w http.ResponseWriter, _ *http.Request) {
	bundle, ok := loadBundle(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, bundle.Regions)
}

func listZones(w http.ResponseWriter, r *http.Request) {
	bundle, ok := loadBundle(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, bundle.FilterRegion(mux.Vars(r)["regionId"]).Zones)
}

func listBuildings(w http.ResponseWriter, r *http.Request) {
	bundle, ok := loadBundle(w)
	if !ok {
		return
	}
	zoneId := mux.Vars(r)["zoneId"]
	buildings := make([]types.Building, 0)
	for _, b := range bundle.Buildings {
		if b.ZoneId == zoneId {
			buildings = append(buildings, b)
		}
	}
	writeJSON(w, http.StatusOK, buildings)
}

func listBuildingMeters(w http.ResponseWriter, r *http.Request) {
	bundle, ok := loadBundle(w)
	if !ok {
		return
	}
	buildingId := mux.Vars(r)["buildingId"]
	meters := make([]types.Meter, 0)
	for _, m := range bundle.Meters {
		if m.BuildingId == buildingId {
			meters = append(meters, m)
		}
	}
	writeJSON(w, http.StatusOK, meters)
}

func listMeters(w http.ResponseWriter, r *http.Request) {
	bundle, ok := loadBundle(w)
	if !ok {
		return
	}
	if regionId := r.URL.Query().Get("region"); regionId != "" {
		writeJSON(w, http.StatusOK, bundle.FilterRegion(regionId).Meters)
		return
	}
	writeJSON(w, http.StatusOK, bundle.Meters)
}

func getMeter(w http.ResponseWriter, r *http.Request) {
	bundle, ok := loadBundle(w)
	if !ok {
		return
	}
	if m, found := findMeter(bundle, mux.Vars(r)["meterId"]); found {
		writeJSON(w, http.StatusOK, m)
		return
	}
	writeError(w, http.StatusNotFound, "meter not found")
}

func listEvents(w http.ResponseWriter, r *http.Request) {
	bundle, ok := loadBundle(w)
	if !ok {
		return
	}
	events := bundle.Events
	if regionId := r.URL.Query().Get("region"); regionId != "" {
		events = bundle.FilterRegion(regionId).Events
	}
	if r.URL.Query().Get("open") == "true" {
		open := make([]types.MeterEvent, 0, len(events))
		for _, e := range events {
			if !e.IsResolved {
				open = append(open, e)
			}
		}
		events = open
	}
	writeJSON(w, http.StatusOK, events)
}

// ─── KPI ────────────────────────────────────────────────────────────────────

func regionSummary(w http.ResponseWriter, r *http.Request) {
	bundle, ok := loadBundle(w)
	if !ok {
		return
	}
	scoped := bundle.FilterRegion(mux.Vars(r)["regionId"])
	period := r.URL.Query().Get("period")
	if period == "" {
		period = "30D"
	}
	writeJSON(w, http.StatusOK, stats.Summarize(scoped.Meters, scoped.Events, period))
}

func regionBreakdown(w http.ResponseWriter, r *http.Request) {
	bundle, ok := loadBundle(w)
	if !ok {
		return
	}
	scoped := bundle.FilterRegion(mux.Vars(r)["regionId"])
	writeJSON(w, http.StatusOK, stats.Breakdown(scoped.Meters))
}

func regionHourlyProfile(w http.ResponseWriter, r *http.Request) {
	bundle, ok := loadBundle(w)
	if !ok {
		return
	}
	scoped := bundle.FilterRegion(mux.Vars(r)["regionId"])
	writeJSON(w, http.StatusOK, stats.HourlyProfile(scoped.Meters))
}

// ─── Synthetic chart series ─────────────────────────────────────────────────

func meterBatteryHistory(w http.ResponseWriter, r *http.Request) {
	withMeter(w, r, func(m types.Meter) {
		days := intQuery(r, "days", synthgen.DefaultTrendDays)
		writeJSON(w, http.StatusOK, synthgen.GenerateBatteryHistory(m.BatteryLevel, days))
	})
}

func meterTrend(w http.ResponseWriter, r *http.Request) {
	withMeter(w, r, func(m types.Meter) {
		days := intQuery(r, "days", synthgen.DefaultTrendDays)
		writeJSON(w, http.StatusOK, synthgen.GenerateMeterTrend(m, days))
	})
}

func meterFlowTrend(w http.ResponseWriter, r *http.Request) {
	withMeter(w, r, func(m types.Meter) {
		days := intQuery(r, "days", synthgen.DefaultTrendDays)
		writeJSON(w, http.StatusOK, synthgen.GenerateFlowRateTrend(m, days))
	})
}

func meterReadings(w http.ResponseWriter, r *http.Request) {
	withMeter(w, r, func(m types.Meter) {
		count := intQuery(r, "count", synthgen.DefaultReadingCount)
		writeJSON(w, http.StatusOK, synthgen.GenerateRawReadings(m, count))
	})
}

func withMeter(w http.ResponseWriter, r *http.Request, fn func(types.Meter)) {
	bundle, ok := loadBundle(w)
	if !ok {
		return
	}
	m, found := findMeter(bundle, mux.Vars(r)["meterId"])
	if !found {
		writeError(w, http.StatusNotFound, "meter not found")
		return
	}
	fn(m)
}

func findMeter(bundle *fixtures.Bundle, meterId string) (types.Meter, bool) {
	for _, m := range bundle.Meters {
		if m.MeterId == meterId {
			return m, true
		}
	}
	return types.Meter{}, false
}

func intQuery(r *http.Request, name string, fallback int) int {
	if raw := r.URL.Query().Get(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}

// ─── Reports ────────────────────────────────────────────────────────────────

func listReportTypes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, report.Catalog())
}

type submitJobRequest struct {
	ReportType string             `json:"reportType"`
	Format     types.ReportFormat `json:"format"`
	RegionId   string             `json:"regionId"`
	DateFrom   string             `json:"dateFrom"`
	DateTo     string             `json:"dateTo"`
}

func submitReportJob(w http.ResponseWriter, r *http.Request) {
	var req submitJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ReportType == "" || req.Format == "" {
		writeError(w, http.StatusBadRequest, "reportType and format are required")
		return
	}

	bundle, ok := loadBundle(w)
	if !ok {
		return
	}
	regionId := req.RegionId
	if regionId == "" {
		regionId = config.ActiveDashboardAPIConfig.RegionId
	}
	scoped := bundle.FilterRegion(regionId)

	regionName := regionId
	if reg, found := bundle.Region(regionId); found {
		regionName = reg.RegionName
	}

	// Accept a catalogue id or a display label; persist the label so the
	// queue shows the human-readable name.
	typeId := report.ResolveType(req.ReportType)
	sources := report.DataSources{
		Zones:      scoped.Zones,
		Buildings:  scoped.Buildings,
		Meters:     scoped.Meters,
		Events:     scoped.Events,
		RegionName: regionName,
		ReportType: report.LabelFor(typeId),
		DateFrom:   req.DateFrom,
		DateTo:     req.DateTo,
	}

	job, err := jobQueue.Submit(sources, req.Format)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusAccepted, job)
}

func listReportJobs(w http.ResponseWriter, _ *http.Request) {
	list, err := jobQueue.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func getReportJob(w http.ResponseWriter, r *http.Request) {
	job, err := jobQueue.Get(mux.Vars(r)["jobId"])
	if errors.Is(err, jobs.ErrJobNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func retryReportJob(w http.ResponseWriter, r *http.Request) {
	err := jobQueue.Retry(mux.Vars(r)["jobId"])
	if errors.Is(err, jobs.ErrJobNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func cancelReportJob(w http.ResponseWriter, r *http.Request) {
	if err := jobQueue.Cancel(mux.Vars(r)["jobId"]); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func downloadReportJob(w http.ResponseWriter, r *http.Request) {
	job, err := jobQueue.Get(mux.Vars(r)["jobId"])
	if errors.Is(err, jobs.ErrJobNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if job.Status != types.ReportReady || job.ArtifactPath == "" {
		writeError(w, http.StatusConflict, "report is not ready")
		return
	}
	http.ServeFile(w, r, job.ArtifactPath)
}

// ─── Schedules ──────────────────────────────────────────────────────────────

type scheduleRequest struct {
	Name            string                `json:"name"`
	ReportType      string                `json:"reportType"`
	Format          types.ReportFormat    `json:"format"`
	Frequency       types.ReportFrequency `json:"frequency"`
	EmailRecipients []string              `json:"emailRecipients"`
	IsActive        *bool                 `json:"isActive,omitempty"`
}

func listSchedules(w http.ResponseWriter, _ *http.Request) {
	list, err := jobQueue.ListSchedules()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func createSchedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.ReportType == "" {
		writeError(w, http.StatusBadRequest, "name and reportType are required")
		return
	}
	schedule, err := jobQueue.CreateSchedule(req.Name, req.ReportType, req.Format, req.Frequency, req.EmailRecipients)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, schedule)
}

func updateSchedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.IsActive == nil {
		writeError(w, http.StatusBadRequest, "isActive is required")
		return
	}
	err := jobQueue.SetScheduleActive(mux.Vars(r)["scheduleId"], *req.IsActive)
	if errors.Is(err, jobs.ErrScheduleNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func deleteSchedule(w http.ResponseWriter, r *http.Request) {
	if err := jobQueue.DeleteSchedule(mux.Vars(r)["scheduleId"]); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ─── Auth & users ───────────────────────────────────────────────────────────

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	user, token, err := userService.Login(req.Email, req.Password)
	if errors.Is(err, users.ErrInvalidCredentials) || errors.Is(err, users.ErrUserInactive) {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"token": token, "user": user})
}

func logout(w http.ResponseWriter, r *http.Request) {
	userService.Logout(bearerToken(r))
	w.WriteHeader(http.StatusNoContent)
}

func currentUser(w http.ResponseWriter, r *http.Request) {
	user, err := userService.BySession(bearerToken(r))
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func bearerToken(r *http.Request) string {
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}

func listUsers(w http.ResponseWriter, _ *http.Request) {
	list, err := userService.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func createUser(w http.ResponseWriter, r *http.Request) {
	var u types.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if u.Email == "" || u.Role == "" {
		writeError(w, http.StatusBadRequest, "email and role are required")
		return
	}
	created, err := userService.Create(u)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func updateUser(w http.ResponseWriter, r *http.Request) {
	var u types.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	u.UserId = mux.Vars(r)["userId"]
	err := userService.Update(u)
	if errors.Is(err, users.ErrUserNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func deactivateUser(w http.ResponseWriter, r *http.Request) {
	err := userService.SetActive(mux.Vars(r)["userId"], false)
	if errors.Is(err, users.ErrUserNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func resetUserPassword(w http.ResponseWriter, r *http.Request) {
	err := userService.RequirePasswordReset(mux.Vars(r)["userId"])
	if errors.Is(err, users.ErrUserNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
