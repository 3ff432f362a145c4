package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/aquawatch/aquawatch_backend/pkg/pathing"
)

var (
	ActiveDashboardAPIConfig *DashboardAPIConfig
	ActiveReportToolConfig   *ReportToolConfig
)

func LoadDashboardAPIConfig() error {
	configPath := filepath.Join(pathing.GetConfigDir(), "dashboard_api.toml")

	// Create default if not exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := &DashboardAPIConfig{
			ListenAddress:       "0.0.0.0",
			ListenPort:          9044,
			MockLatencyMs:       500,
			JobProcessingMs:     1500,
			RegionId:            "r-north",
			LiveFeedIntervalSec: 5,
		}
		// Create file
		cfgFile, err := os.Create(configPath)
		if err != nil {
			return err
		}
		defer cfgFile.Close()
		toml.NewEncoder(cfgFile).Encode(cfg)
		ActiveDashboardAPIConfig = cfg
		return nil
	}

	// Load existing config
	var config DashboardAPIConfig
	_, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return err
	}
	ActiveDashboardAPIConfig = &config
	return nil
}

func LoadReportToolConfig() error {
	configPath := filepath.Join(pathing.GetConfigDir(), "report_tool.toml")

	// Create default if not exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := &ReportToolConfig{
			OutputDir:  pathing.GetReportOutputDir(),
			RegionId:   "r-north",
			DateFormat: "2006-01-02",
		}
		// Create file
		cfgFile, err := os.Create(configPath)
		if err != nil {
			return err
		}
		defer cfgFile.Close()
		toml.NewEncoder(cfgFile).Encode(cfg)
		ActiveReportToolConfig = cfg
		return nil
	}

	// Load existing config
	var config ReportToolConfig
	_, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return err
	}
	ActiveReportToolConfig = &config
	return nil
}
