package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	OwnerNumber   string `env:"OWNER_NUMBER,required"`
	SessionDBPath string `env:"SESSION_DB_PATH" envDefault:"session.db"`
	MetricsAddr   string `env:"METRICS_ADDR" envDefault:":9090"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`

	EnableTelemetry bool `env:"ENABLE_TELEMETRY" envDefault:"true"`

	RemovalThreshold int           `env:"REMOVAL_THRESHOLD" envDefault:"3"`
	DeleteAttempts   int           `env:"DELETE_ATTEMPTS" envDefault:"3"`
	DeleteBackoff    time.Duration `env:"DELETE_BACKOFF" envDefault:"500ms"`
	RemovalDelay     time.Duration `env:"REMOVAL_DELAY" envDefault:"800ms"`
	NotAdminTTL      time.Duration `env:"NOT_ADMIN_TTL" envDefault:"5m"`

	DuplicateWindow    time.Duration `env:"DUPLICATE_WINDOW" envDefault:"60s"`
	DuplicateThreshold int           `env:"DUPLICATE_THRESHOLD" envDefault:"2"`
	SweepInterval      time.Duration `env:"SWEEP_INTERVAL" envDefault:"30s"`

	EnableLinkFilter      bool `env:"ENABLE_LINK_FILTER" envDefault:"true"`
	EnablePhoneFilter     bool `env:"ENABLE_PHONE_FILTER" envDefault:"true"`
	EnableAPKFilter       bool `env:"ENABLE_APK_FILTER" envDefault:"true"`
	EnableArchiveFilter   bool `env:"ENABLE_ARCHIVE_FILTER" envDefault:"true"`
	EnableAudioFilter     bool `env:"ENABLE_AUDIO_FILTER" envDefault:"true"`
	EnableBusinessFilter  bool `env:"ENABLE_BUSINESS_FILTER" envDefault:"true"`
	EnableKeywordFilter   bool `env:"ENABLE_KEYWORD_FILTER" envDefault:"true"`
	EnableButtonsFilter   bool `env:"ENABLE_BUTTONS_FILTER" envDefault:"true"`
	EnableContactFilter   bool `env:"ENABLE_CONTACT_FILTER" envDefault:"true"`
	EnableDuplicateFilter bool `env:"ENABLE_DUPLICATE_FILTER" envDefault:"true"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
