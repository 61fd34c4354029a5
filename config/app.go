package config

type App struct {
	Port        string `env:"APP_PORT" default:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`
	StoreDriver string `env:"STORE_DRIVER" default:"postgres"`
	Env         string `env:"APP_ENV" default:"dev"`
	LogLevel    string `env:"LOG_LEVEL" default:"info"`
	DBMaxConns  int32  `env:"DB_MAX_CONNS" default:"10"`
	AutoMigrate bool   `env:"AUTO_MIGRATE"`
}

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)
