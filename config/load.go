package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

func Load() App {
	cfg := App{
		Port:        getenv("APP_PORT", "8080"),
		StoreDriver: strings.ToLower(getenv("STORE_DRIVER", DriverPostgres)),
		Env:         getenv("APP_ENV", "dev"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		DBMaxConns:  int32(getint("DB_MAX_CONNS", 10)),
	}
	if p := os.Getenv("PORT"); p != "" {
		cfg.Port = p
	}
	if cfg.StoreDriver == DriverPostgres {
		cfg.DatabaseURL = must("DATABASE_URL")
	} else {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	cfg.AutoMigrate = getbool("AUTO_MIGRATE", cfg.Env == "dev")
	return cfg
}

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info.
func (a App) SlogLevel() slog.Level {
	switch strings.ToLower(a.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid int env, using default", "key", k, "value", v)
		return def
	}
	return n
}

func getbool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env, using default", "key", k, "value", v)
		return def
	}
	return b
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		slog.Error("required env missing", "key", k)
		panic("missing env " + k)
	}
	return v
}
