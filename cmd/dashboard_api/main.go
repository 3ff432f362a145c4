// Dashboard API serves the AquaWatch frontend: fixture-backed entity data,
// synthetic chart series, KPI aggregates, report generation and user
// management, plus a websocket feed of fabricated live readings.
package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/aquawatch/aquawatch_backend/pkg/appdb"
	"github.com/aquawatch/aquawatch_backend/pkg/config"
	"github.com/aquawatch/aquawatch_backend/pkg/fixtures"
	"github.com/aquawatch/aquawatch_backend/pkg/jobs"
	"github.com/aquawatch/aquawatch_backend/pkg/livefeed"
	"github.com/aquawatch/aquawatch_backend/pkg/pathing"
	"github.com/aquawatch/aquawatch_backend/pkg/users"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

var (
	dataLoader  *fixtures.Loader
	jobQueue    *jobs.Queue
	userService *users.Service
	feedHub     *livefeed.Hub
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in development
	},
}

func main() {
	// Load config
	if err := config.LoadDashboardAPIConfig(); err != nil {
		log.Fatalf("Failed to load dashboard API config: %v", err)
	}
	cfg := config.ActiveDashboardAPIConfig

	// Initialize database
	appdb.InitializeDatabase()

	dataLoader = fixtures.NewLoader(time.Duration(cfg.MockLatencyMs) * time.Millisecond)
	jobQueue = jobs.NewQueue(pathing.GetReportOutputDir(), time.Duration(cfg.JobProcessingMs)*time.Millisecond)
	userService = users.NewService()
	feedHub = livefeed.NewHub()

	// Seed users and start the live feed from a latency-free load
	startup := fixtures.NewLoader(0)
	bundle, err := startup.Load()
	if err != nil {
		log.Fatalf("Failed to load fixture dataset: %v", err)
	}
	if err := userService.SeedFromFixtures(bundle.Users); err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	stopFeed := feedHub.StartFeed(bundle.Meters, time.Duration(cfg.LiveFeedIntervalSec)*time.Second)
	defer stopFeed()

	listener := fmt.Sprintf("%s:%d", cfg.ListenAddress, cfg.ListenPort)
	log.Printf("Dashboard API listening on %s", listener)
	log.Fatal(http.ListenAndServe(listener, newRouter()))
}

func newRouter() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", statusHandler).Methods("GET")

	// Entities
	r.HandleFunc("/regions", listRegions).Methods("GET")
	r.HandleFunc("/regions/{regionId}/zones", listZones).Methods("GET")
	r.HandleFunc("/regions/{regionId}/summary", regionSummary).Methods("GET")
	r.HandleFunc("/regions/{regionId}/breakdown", regionBreakdown).Methods("GET")
	r.HandleFunc("/regions/{regionId}/hourly-profile", regionHourlyProfile).Methods("GET")
	r.HandleFunc("/zones/{zoneId}/buildings", listBuildings).Methods("GET")
	r.HandleFunc("/buildings/{buildingId}/meters", listBuildingMeters).Methods("GET")
	r.HandleFunc("/meters", listMeters).Methods("GET")
	r.HandleFunc("/meters/{meterId}", getMeter).Methods("GET")
	r.HandleFunc("/events", listEvents).Methods("GET")

	// Synthetic chart series
	r.HandleFunc("/meters/{meterId}/battery-history", meterBatteryHistory).Methods("GET")
	r.HandleFunc("/meters/{meterId}/trend", meterTrend).Methods("GET")
	r.HandleFunc("/meters/{meterId}/flow-trend", meterFlowTrend).Methods("GET")
	r.HandleFunc("/meters/{meterId}/readings", meterReadings).Methods("GET")

	// Reports
	r.HandleFunc("/reports/types", listReportTypes).Methods("GET")
	r.HandleFunc("/reports/jobs", submitReportJob).Methods("POST")
	r.HandleFunc("/reports/jobs", listReportJobs).Methods("GET")
	r.HandleFunc("/reports/jobs/{jobId}", getReportJob).Methods("GET")
	r.HandleFunc("/reports/jobs/{jobId}", cancelReportJob).Methods("DELETE")
	r.HandleFunc("/reports/jobs/{jobId}/retry", retryReportJob).Methods("POST")
	r.HandleFunc("/reports/jobs/{jobId}/download", downloadReportJob).Methods("GET")
	r.HandleFunc("/reports/schedules", listSchedules).Methods("GET")
	r.HandleFunc("/reports/schedules", createSchedule).Methods("POST")
	r.HandleFunc("/reports/schedules/{scheduleId}", updateSchedule).Methods("PATCH")
	r.HandleFunc("/reports/schedules/{scheduleId}", deleteSchedule).Methods("DELETE")

	// Auth & users
	r.HandleFunc("/login", login).Methods("POST")
	r.HandleFunc("/logout", logout).Methods("POST")
	r.HandleFunc("/me", currentUser).Methods("GET")
	r.HandleFunc("/users", listUsers).Methods("GET")
	r.HandleFunc("/users", createUser).Methods("POST")
	r.HandleFunc("/users/{userId}", updateUser).Methods("PUT")
	r.HandleFunc("/users/{userId}/deactivate", deactivateUser).Methods("POST")
	r.HandleFunc("/users/{userId}/reset-password", resetUserPassword).Methods("POST")

	// Live feed
	r.HandleFunc("/ws", wsHandler).Methods("GET")

	return r
}

func wsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	feedHub.Add(conn)

	// Keep connection alive until the client goes away
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			feedHub.Remove(conn)
			break
		}
	}
}
