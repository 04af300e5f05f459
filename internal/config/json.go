package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the shape of the JSON
// config file. Durations may be given as strings ("24h") or nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		SessionDuration Duration `json:"session_duration"`
		BcryptCost      int      `json:"bcrypt_cost"`
		CookieName      string   `json:"cookie_name"`
		CookieSecure    bool     `json:"cookie_secure"`
		Version         string   `json:"version"`
		LogLevel        string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			URL string `json:"url"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	Adapter struct {
		OpenverseURL    string   `json:"openverse_url"`
		YouTubeURL      string   `json:"youtube_url"`
		PexelsURL       string   `json:"pexels_url"`
		FreesoundURL    string   `json:"freesound_url"`
		YouTubeAPIKey   string   `json:"youtube_api_key"`
		PexelsAPIKey    string   `json:"pexels_api_key"`
		FreesoundAPIKey string   `json:"freesound_api_key"`
		RequestTimeout  Duration `json:"request_timeout"`
		CacheTTL        Duration `json:"cache_ttl"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SessionSweepInterval Duration `json:"session_sweep_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			SessionDuration: time.Duration(jsonCfg.App.SessionDuration),
			BcryptCost:      jsonCfg.App.BcryptCost,
			CookieName:      jsonCfg.App.CookieName,
			CookieSecure:    jsonCfg.App.CookieSecure,
			Version:         jsonCfg.App.Version,
			LogLevel:        jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Redis: Redis{
				URL: jsonCfg.Storage.Redis.URL,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
		},
		Adapter: Adapter{
			OpenverseURL:    jsonCfg.Adapter.OpenverseURL,
			YouTubeURL:      jsonCfg.Adapter.YouTubeURL,
			PexelsURL:       jsonCfg.Adapter.PexelsURL,
			FreesoundURL:    jsonCfg.Adapter.FreesoundURL,
			YouTubeAPIKey:   jsonCfg.Adapter.YouTubeAPIKey,
			PexelsAPIKey:    jsonCfg.Adapter.PexelsAPIKey,
			FreesoundAPIKey: jsonCfg.Adapter.FreesoundAPIKey,
			RequestTimeout:  time.Duration(jsonCfg.Adapter.RequestTimeout),
			CacheTTL:        time.Duration(jsonCfg.Adapter.CacheTTL),
		},
		Workers: Workers{
			SessionSweepInterval: time.Duration(jsonCfg.Workers.SessionSweepInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
