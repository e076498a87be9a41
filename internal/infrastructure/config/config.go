package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Auth        AuthConfig     `mapstructure:"auth"`
	Profile     ProfileConfig  `mapstructure:"profile"`
	Assets      AssetsConfig   `mapstructure:"assets"`
	Redis       RedisConfig    `mapstructure:"redis"`
	Kafka       KafkaConfig    `mapstructure:"kafka"`
	Metrics     MetricsConfig  `mapstructure:"metrics"`
	Session     SessionConfig  `mapstructure:"session"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	SeedDemoData    bool          `mapstructure:"seedDemoData"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level string `mapstructure:"level"`
}

// AuthConfig contains identity token settings
type AuthConfig struct {
	TokenSecret   string        `mapstructure:"tokenSecret"`
	Issuer        string        `mapstructure:"issuer"`
	CookieName    string        `mapstructure:"cookieName"`
	DevLogin      bool          `mapstructure:"devLogin"`
	DevTokenTTL   time.Duration `mapstructure:"devTokenTTL"` // minutes
	SecureCookies bool          `mapstructure:"secureCookies"`
}

// ProfileConfig contains profile loading settings
type ProfileConfig struct {
	LoadTimeout time.Duration `mapstructure:"loadTimeout"` // seconds, 0 disables
	FanOutLimit int           `mapstructure:"fanOutLimit"`
	TimeZone    string        `mapstructure:"timeZone"`
}

// AssetsConfig contains team logo settings
type AssetsConfig struct {
	LogoURLTemplate string        `mapstructure:"logoURLTemplate"`
	StaticDir       string        `mapstructure:"staticDir"`
	ProbeTimeout    time.Duration `mapstructure:"probeTimeout"` // seconds
	FoundTTL        time.Duration `mapstructure:"foundTTL"`     // minutes
	MissingTTL      time.Duration `mapstructure:"missingTTL"`   // minutes
}

// RedisConfig contains the shared logo cache settings. An empty address
// selects the in-process cache.
type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"keyPrefix"`
}

// KafkaConfig contains funds event publishing settings. No brokers
// disables publishing.
type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

// MetricsConfig contains Prometheus settings
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Path      string `mapstructure:"path"`
	Namespace string `mapstructure:"namespace"`
}

// SessionConfig contains browser session settings
type SessionConfig struct {
	CookieName      string        `mapstructure:"cookieName"`
	IdleTTL         time.Duration `mapstructure:"idleTTL"`         // minutes
	JanitorInterval time.Duration `mapstructure:"janitorInterval"` // seconds
}
