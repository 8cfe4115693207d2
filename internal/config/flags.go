package config

import (
	"flag"
	"time"
)

// ParseFlags parses the client's command-line flags.
//
// Flags:
//
//	-a notes API base URL (e.g. http://localhost:1337)
//	-d local SQLite database path
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g. "30s")
//	-toast-duration how long a toast stays visible (e.g. "5s")
//	-path start page path, "/" or "/index" enable the login status check
//	-download-dir directory for downloaded attachments
//	-log-file JSON log file path
func ParseFlags() *StructuredConfig {
	var address string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var toastDuration time.Duration
	var startPath string
	var downloadDir string
	var logFile string

	flag.StringVar(&address, "a", "", "Notes API base URL")
	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&toastDuration, "toast-duration", 0, "Toast duration (e.g., 5s)")
	flag.StringVar(&startPath, "path", "", "Start page path")
	flag.StringVar(&downloadDir, "download-dir", "", "Attachment download directory")
	flag.StringVar(&logFile, "log-file", "", "Log file path")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			StartPath:   startPath,
			DownloadDir: downloadDir,
			LogFile:     logFile,
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Toast: Toast{
			Duration: toastDuration,
		},
		JSONFilePath: jsonConfigPath,
	}
}
