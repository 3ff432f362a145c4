package config

type DashboardAPIConfig struct {
	ListenAddress string `toml:"listen_address"`
	ListenPort    int    `toml:"listen_port"`
	// Fake network latency applied by the fixture loader
	MockLatencyMs int `toml:"mock_latency_ms"`
	// Fake processing time for report jobs
	JobProcessingMs int    `toml:"job_processing_ms"`
	RegionId        string `toml:"region_id"`
	// Seconds between live feed broadcasts
	LiveFeedIntervalSec int `toml:"live_feed_interval_sec"`
}

type ReportToolConfig struct {
	OutputDir  string `toml:"output_dir"`
	RegionId   string `toml:"region_id"`
	DateFormat string `toml:"date_format"`
}
