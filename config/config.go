package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// MongoDB. DatabaseURL "memory" runs against the in-process vendor store.
	DatabaseURL  string `mapstructure:"MONGODB_URI"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// CacheBackend selects the store behind the location and lookup caches: "memory" or "redis".
	CacheBackend string `mapstructure:"CACHE_BACKEND"`

	// Overpass (OpenStreetMap) client.
	OverpassURLs        string        `mapstructure:"OVERPASS_URLS"`
	OverpassMinInterval time.Duration `mapstructure:"OVERPASS_MIN_INTERVAL"`
	OverpassTimeout     time.Duration `mapstructure:"OVERPASS_TIMEOUT"`

	// Cron spec for location cache prewarming; empty disables it.
	PrewarmSchedule string `mapstructure:"PREWARM_SCHEDULE"`

	TaxonomyFile string `mapstructure:"TAXONOMY_FILE"`

	GoogleClientID string `mapstructure:"GOOGLE_CLIENT_ID"`
	BaseURL        string `mapstructure:"BASE_URL"`
}

var AppConfig Config

// envAliases maps a config key to additional environment variables that may carry it.
var envAliases = map[string][]string{
	"MONGODB_URI":      {"MONGODB_URI", "MONGO_URI", "DATABASE_URL"},
	"GOOGLE_CLIENT_ID": {"GOOGLE_CLIENT_ID", "VITE_GOOGLE_CLIENT_ID"},
	"BASE_URL":         {"BASE_URL", "API_URL"},
}

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()
	for key, envs := range envAliases {
		if err := viper.BindEnv(append([]string{key}, envs...)...); err != nil {
			log.Fatalf("Failed to bind env for %s: %v", key, err)
		}
	}

	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	v.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "eventhub")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CACHE_DB", 0)
	v.SetDefault("REDIS_QUEUE_DB", 1)
	v.SetDefault("CACHE_BACKEND", "memory")
	v.SetDefault("OVERPASS_URLS", "")
	v.SetDefault("OVERPASS_MIN_INTERVAL", 1500*time.Millisecond)
	v.SetDefault("OVERPASS_TIMEOUT", 12*time.Second)
	v.SetDefault("PREWARM_SCHEDULE", "")
	v.SetDefault("TAXONOMY_FILE", "")
}

// OverpassMirrors splits the comma separated OVERPASS_URLS value.
func (c Config) OverpassMirrors() []string {
	var urls []string
	for _, u := range strings.Split(c.OverpassURLs, ",") {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// UsesMemoryStore reports whether vendors are served from the in-process store.
func (c Config) UsesMemoryStore() bool {
	return strings.EqualFold(c.DatabaseURL, "memory")
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
