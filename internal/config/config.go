package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration for TeamSync.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Session   SessionConfig   `mapstructure:"session"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Bootstrap BootstrapConfig `mapstructure:"bootstrap"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	BasePath        string        `mapstructure:"base_path"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type TelemetryConfig struct {
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	OTLPInsecure bool   `mapstructure:"otlp_insecure"`
	ServiceName  string `mapstructure:"service_name"`
	LogLevel     string `mapstructure:"log_level"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type SessionConfig struct {
	CookieName string        `mapstructure:"cookie_name"`
	TTL        time.Duration `mapstructure:"ttl"`
	Secure     bool          `mapstructure:"secure"`
}

type CORSConfig struct {
	FrontendOrigin string `mapstructure:"frontend_origin"`
}

// BootstrapConfig carries the seed-time constants: the administrative
// identity and its workspace. Supplied through configuration so tests and
// deployments can vary them.
type BootstrapConfig struct {
	AdminEmail           string        `mapstructure:"admin_email"`
	AdminName            string        `mapstructure:"admin_name"`
	AdminPassword        string        `mapstructure:"admin_password"`
	WorkspaceName        string        `mapstructure:"workspace_name"`
	WorkspaceDescription string        `mapstructure:"workspace_description"`
	Timeout              time.Duration `mapstructure:"timeout"`
}

// Load reads config from the optional YAML file at path, then overlays
// environment variables with the TEAMSYNC_ prefix (e.g. TEAMSYNC_SERVER_PORT).
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("TEAMSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.base_path", "/api/v1")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)

	v.SetDefault("telemetry.otlp_endpoint", "")
	v.SetDefault("telemetry.otlp_insecure", true)
	v.SetDefault("telemetry.service_name", "teamsync-backend")
	v.SetDefault("telemetry.log_level", "info")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "teamsync")
	v.SetDefault("database.db", "teamsync")
	v.SetDefault("database.ssl_mode", "disable")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)

	v.SetDefault("session.cookie_name", "session")
	v.SetDefault("session.ttl", 24*time.Hour)
	v.SetDefault("session.secure", false)

	v.SetDefault("cors.frontend_origin", "http://localhost:3000")

	v.SetDefault("bootstrap.admin_email", "admin@teamsync.local")
	v.SetDefault("bootstrap.admin_name", "System Admin")
	v.SetDefault("bootstrap.admin_password", "")
	v.SetDefault("bootstrap.workspace_name", "TeamSync Main Workspace")
	v.SetDefault("bootstrap.workspace_description", "Auto-created for the system admin")
	v.SetDefault("bootstrap.timeout", 2*time.Minute)
}
