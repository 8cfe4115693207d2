package config

import "time"

const (
	DefaultHTTPAddress    = "http://localhost:1337"
	DefaultRequestTimeout = 30 * time.Second
	DefaultInstanceCookie = "INSTANCE"
	DefaultDSN            = "notes-client.db"
	DefaultStartPath      = "/"
	DefaultDownloadDir    = "."

	DefaultToastDuration      = 5000 * time.Millisecond
	DefaultToastTickInterval  = 50 * time.Millisecond
	DefaultToastExitAnimation = 300 * time.Millisecond
	DefaultVisitFollowUp      = 2000 * time.Millisecond
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			StartPath:   DefaultStartPath,
			DownloadDir: DefaultDownloadDir,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			InstanceCookie: DefaultInstanceCookie,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Toast: Toast{
			Duration:      DefaultToastDuration,
			TickInterval:  DefaultToastTickInterval,
			ExitAnimation: DefaultToastExitAnimation,
			VisitFollowUp: DefaultVisitFollowUp,
		},
	}
}
