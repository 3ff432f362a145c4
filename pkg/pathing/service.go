package pathing

import (
	"log"
	"os"
	"path/filepath"
)

// Ensure directories exist on startup
func init() {
	// Directories that must exist:
	dirs := []string{
		GetDataDir(),
		GetReportOutputDir(),
	}

	// Create all directories
	for _, dir := range dirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			err := os.MkdirAll(dir, 0755)
			if err != nil {
				log.Fatal(err)
			}
		}
	}
}

func GetAppDbPath() string {
	// Join path
	return filepath.Join(GetDataDir(), "aquawatch.db")
}

// GetReportOutputDir is where generated report artifacts are written.
func GetReportOutputDir() string {
	return filepath.Join(GetDataDir(), "reports")
}

func GetDataDir() string {
	if dir := os.Getenv("AQUAWATCH_DATA_DIR"); dir != "" {
		return dir
	}
	return "/var/lib/aquawatch"
}

func GetConfigDir() string {
	if dir := os.Getenv("AQUAWATCH_CONFIG_DIR"); dir != "" {
		return dir
	}
	return "/etc/aquawatch"
}
