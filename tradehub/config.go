package tradehub

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/pockettcg/tradehub/tradehub/database"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(&cfg)
	return &cfg, nil
}

// applyEnvOverrides lets deploy environments inject secrets without
// touching the config file.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.DB.Password = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Server.JWTSecret = v
	}
	if v := os.Getenv("SPACES_KEY"); v != "" {
		cfg.Spaces.Key = v
	}
	if v := os.Getenv("SPACES_SECRET"); v != "" {
		cfg.Spaces.Secret = v
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		cfg.Archive.URI = v
	}
}

type Config struct {
	Log      LogConfig         `toml:"log"`
	Server   ServerConfig      `toml:"server"`
	DB       database.DBConfig `toml:"db"`
	Presence PresenceConfig    `toml:"presence"`
	Sweeper  SweeperConfig     `toml:"sweeper"`
	Spaces   SpacesConfig      `toml:"spaces"`
	Archive  ArchiveConfig     `toml:"archive"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	AddSource bool       `toml:"add_source"`
}

type ServerConfig struct {
	Host      string `toml:"host"`
	Port      int    `toml:"port"`
	JWTSecret string `toml:"jwt_secret"`
}

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type PresenceConfig struct {
	// OnlineTimeoutSeconds is how long a trader counts as online after
	// their last heartbeat. Zero means the built-in default.
	OnlineTimeoutSeconds int `toml:"online_timeout_seconds"`
}

type SweeperConfig struct {
	ExpiryIntervalMinutes int `toml:"expiry_interval_minutes"`
	PurgeIntervalHours    int `toml:"purge_interval_hours"`
	MessageRetentionDays  int `toml:"message_retention_days"`
}

type SpacesConfig struct {
	Enabled bool   `toml:"enabled"`
	Key     string `toml:"key"`
	Secret  string `toml:"secret"`
	Region  string `toml:"region"`
	Bucket  string `toml:"bucket"`
	Root    string `toml:"root"`
}

type ArchiveConfig struct {
	Enabled    bool   `toml:"enabled"`
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}
