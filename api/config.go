package api

import (
	"sync"
	"time"

	"github.com/spf13/viper"

	"github.com/Truecroo/championship-scoring/logging"
)

type Config struct {
	StorageConfig
	ServerConfig
	RateLimitConfig
}

type StorageConfig struct {
	DatabaseDSN string
}

type ServerConfig struct {
	Port           int
	GinMode        string
	AllowedOrigins []string
	SessionTTL     time.Duration
}

// RateLimitConfig holds per-client request budgets. The vote budget is
// deliberately tight and the spectator-read budget sized for clients
// polling every 15 seconds with some margin.
type RateLimitConfig struct {
	GeneralRequests int
	GeneralWindow   time.Duration
	AuthRequests    int
	AuthWindow      time.Duration
	VoteRequests    int
	VoteWindow      time.Duration
	ReadRequests    int
	ReadWindow      time.Duration
}

var settingsOnce sync.Once

func ReadConfig() *Config {

	var conf = &Config{
		StorageConfig: StorageConfig{
			DatabaseDSN: getString("storage.dsn"),
		},
		ServerConfig: ServerConfig{
			Port:           getIntOrDefault("server.port", 5001),
			GinMode:        getStringOrDefault("server.ginMode", "debug"),
			AllowedOrigins: viper.GetStringSlice("server.allowedOrigins"),
			SessionTTL:     time.Duration(getIntOrDefault("server.sessionTTLHours", 24)) * time.Hour,
		},
		RateLimitConfig: RateLimitConfig{
			GeneralRequests: getIntOrDefault("limits.general.requests", 500),
			GeneralWindow:   time.Duration(getIntOrDefault("limits.general.windowMinutes", 15)) * time.Minute,
			AuthRequests:    getIntOrDefault("limits.auth.requests", 10),
			AuthWindow:      time.Duration(getIntOrDefault("limits.auth.windowMinutes", 15)) * time.Minute,
			VoteRequests:    getIntOrDefault("limits.vote.requests", 20),
			VoteWindow:      time.Duration(getIntOrDefault("limits.vote.windowMinutes", 5)) * time.Minute,
			ReadRequests:    getIntOrDefault("limits.spectatorRead.requests", 30),
			ReadWindow:      time.Duration(getIntOrDefault("limits.spectatorRead.windowMinutes", 1)) * time.Minute,
		},
	}

	settingsOnce.Do(func() {
		logging.Log.Print("Reading settings!")
	})

	return conf
}

func getString(name string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Fatalf("required environment variable '%s' is missing", name)
	return ""
}

func getIntOrDefault(name string, def int) int {
	if viper.IsSet(name) {
		v := viper.GetInt(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getStringOrDefault(name string, def string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}
