package config

import "time"

// Default values applied to every field left zero by all sources.
const (
	DefaultSessionDuration      = 24 * time.Hour
	DefaultBcryptCost           = 10
	DefaultCookieName           = "mediafinder.sid"
	DefaultVersion              = "dev"
	DefaultLogLevel             = "debug"
	DefaultDSN                  = "./database.sqlite"
	DefaultHTTPAddress          = ":5000"
	DefaultRequestTimeout       = 30 * time.Second
	DefaultOpenverseURL         = "https://api.openverse.org/v1"
	DefaultYouTubeURL           = "https://www.googleapis.com/youtube/v3"
	DefaultPexelsURL            = "https://api.pexels.com/v1"
	DefaultFreesoundURL         = "https://freesound.org/apiv2"
	DefaultAdapterTimeout       = 15 * time.Second
	DefaultCacheTTL             = 10 * time.Minute
	DefaultSessionSweepInterval = 10 * time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionDuration: DefaultSessionDuration,
			BcryptCost:      DefaultBcryptCost,
			CookieName:      DefaultCookieName,
			Version:         DefaultVersion,
			LogLevel:        DefaultLogLevel,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			AllowedOrigins: []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		},
		Adapter: Adapter{
			OpenverseURL:   DefaultOpenverseURL,
			YouTubeURL:     DefaultYouTubeURL,
			PexelsURL:      DefaultPexelsURL,
			FreesoundURL:   DefaultFreesoundURL,
			RequestTimeout: DefaultAdapterTimeout,
			CacheTTL:       DefaultCacheTTL,
		},
		Workers: Workers{
			SessionSweepInterval: DefaultSessionSweepInterval,
		},
	}
}
