package config

import (
	"fmt"
	"time"
)

// ClientApp holds client runtime settings.
type ClientApp struct {
	// StartPath is the page path that decides whether the login status is
	// checked on startup.
	StartPath string
	// DownloadDir is the directory attachments are saved into.
	DownloadDir string
	// LogFile is the JSON log file path.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the notes API base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// InstanceCookie is the name of the instance-binding cookie.
	InstanceCookie string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientToast holds toast timing used by the controller.
type ClientToast struct {
	Duration      time.Duration
	TickInterval  time.Duration
	ExitAnimation time.Duration
	VisitFollowUp time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains runtime settings.
	App ClientApp
	// Adapter contains the API address and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Toast contains notification timing.
	Toast ClientToast
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			StartPath:   cfg.App.StartPath,
			DownloadDir: cfg.App.DownloadDir,
			LogFile:     cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			InstanceCookie: cfg.Adapter.InstanceCookie,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Toast: ClientToast{
			Duration:      cfg.Toast.Duration,
			TickInterval:  cfg.Toast.TickInterval,
			ExitAnimation: cfg.Toast.ExitAnimation,
			VisitFollowUp: cfg.Toast.VisitFollowUp,
		},
	}
}
