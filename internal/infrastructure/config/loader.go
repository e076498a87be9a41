package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// A missing .env file is normal outside local development
	_ = loadDotEnvFile()

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return decode(v, env)
}

// LoadFromFile loads configuration from an explicit file path
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	return decode(v, getEnvironment())
}

func decode(v *viper.Viper, env string) (*Config, error) {
	v.SetEnvPrefix("WP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	config.Environment = env

	processDurations(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks values the service cannot start without
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Auth.TokenSecret == "" {
		return errors.New("auth.tokenSecret is required (WP_AUTH_TOKEN_SECRET)")
	}
	if c.Assets.LogoURLTemplate == "" || !strings.Contains(c.Assets.LogoURLTemplate, "%s") {
		return fmt.Errorf("assets.logoURLTemplate must contain %%s, got %q", c.Assets.LogoURLTemplate)
	}
	if c.Profile.LoadTimeout < 0 {
		return errors.New("profile.loadTimeout must be non-negative")
	}
	if c.Profile.TimeZone != "" {
		if _, err := time.LoadLocation(c.Profile.TimeZone); err != nil {
			return fmt.Errorf("invalid profile.timeZone: %w", err)
		}
	}
	if len(c.Kafka.Brokers) > 0 && c.Kafka.Topic == "" {
		return errors.New("kafka.topic is required when brokers are configured")
	}
	return nil
}

// IsProduction reports whether the production environment is selected
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

// loadDotEnvFile loads the first .env file found in the search paths
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return errors.New("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds
	v.SetDefault("database.seedDemoData", false)

	v.SetDefault("logger.level", "info")

	v.SetDefault("auth.cookieName", "auth_token")
	v.SetDefault("auth.devLogin", false)
	v.SetDefault("auth.devTokenTTL", 60) // minutes

	v.SetDefault("profile.loadTimeout", 10) // seconds
	v.SetDefault("profile.fanOutLimit", 8)
	v.SetDefault("profile.timeZone", "UTC")

	v.SetDefault("assets.logoURLTemplate", "http://localhost:8080/static/logos/%s.png")
	v.SetDefault("assets.probeTimeout", 2) // seconds
	v.SetDefault("assets.foundTTL", 60)    // minutes
	v.SetDefault("assets.missingTTL", 5)   // minutes

	v.SetDefault("redis.keyPrefix", "wager-profile:logo:")

	v.SetDefault("kafka.topic", "wallet.funds-added")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("metrics.namespace", "wager_profile")

	v.SetDefault("session.cookieName", "profile_session")
	v.SetDefault("session.idleTTL", 30)         // minutes
	v.SetDefault("session.janitorInterval", 60) // seconds
}

// getEnvironment determines the environment from WP_ENV
func getEnvironment() string {
	env := os.Getenv("WP_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides makes environment variables win over file values
func processEnvOverrides(v *viper.Viper) {
	overrides := map[string]string{
		"WP_DB_DRIVER":           "database.driver",
		"WP_DB_HOST":             "database.host",
		"WP_DB_PORT":             "database.port",
		"WP_DB_USERNAME":         "database.username",
		"WP_DB_PASSWORD":         "database.password",
		"WP_DB_NAME":             "database.database",
		"WP_DB_SSL_MODE":         "database.sslMode",
		"WP_SERVER_HOST":         "server.host",
		"WP_SERVER_PORT":         "server.port",
		"WP_LOGGER_LEVEL":        "logger.level",
		"WP_AUTH_TOKEN_SECRET":   "auth.tokenSecret",
		"WP_AUTH_ISSUER":         "auth.issuer",
		"WP_ASSETS_LOGO_URL":     "assets.logoURLTemplate",
		"WP_REDIS_ADDR":          "redis.addr",
		"WP_REDIS_PASSWORD":      "redis.password",
		"WP_KAFKA_TOPIC":         "kafka.topic",
		"WP_PROFILE_TIME_ZONE":   "profile.timeZone",
		"WP_SESSION_COOKIE_NAME": "session.cookieName",
	}
	for env, key := range overrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}

	if brokers := os.Getenv("WP_KAFKA_BROKERS"); brokers != "" {
		v.Set("kafka.brokers", strings.Split(brokers, ","))
	}
	if maxOpenConns := getEnvInt("WP_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if loadTimeout := getEnvInt("WP_PROFILE_LOAD_TIMEOUT_SECONDS", -1); loadTimeout >= 0 {
		v.Set("profile.loadTimeout", loadTimeout)
	}
}

// getEnvInt reads an integer environment variable with a default
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts raw numeric durations to their units
func processDurations(config *Config) {
	config.Server.ReadTimeout *= time.Second
	config.Server.WriteTimeout *= time.Second
	config.Server.IdleTimeout *= time.Second
	config.Server.ReadHeaderTimeout *= time.Second
	config.Server.ShutdownTimeout *= time.Second

	config.Database.ConnMaxLifetime *= time.Minute
	config.Database.ConnMaxIdleTime *= time.Minute
	config.Database.QueryTimeout *= time.Second
	config.Database.RetryDelay *= time.Second

	config.Auth.DevTokenTTL *= time.Minute

	config.Profile.LoadTimeout *= time.Second

	config.Assets.ProbeTimeout *= time.Second
	config.Assets.FoundTTL *= time.Minute
	config.Assets.MissingTTL *= time.Minute

	config.Session.IdleTTL *= time.Minute
	config.Session.JanitorInterval *= time.Second
}
