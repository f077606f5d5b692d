package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTP
	Logger   Logger
	Postgres Postgres
	Redis    Redis
	Auth     Auth
	Journal  Journal
}

type HTTP struct {
	Port              int           `env:"HTTP_PORT" envDefault:"8080"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Postgres struct {
	DSN             string        `env:"POSTGRES_DSN"`
	MaxConn         int32         `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	MinConn         int32         `env:"POSTGRES_MIN_CONNS" envDefault:"1"`
	MaxConnIdleTime time.Duration `env:"POSTGRES_MAX_CONN_IDLE_TIME" envDefault:"5m"`
	ConnectTimeout  time.Duration `env:"POSTGRES_CONNECT_TIMEOUT" envDefault:"5s"`
}

// Redis is optional. With an empty address get-or-create runs without the distributed lock.
type Redis struct {
	Addr     string        `env:"REDIS_ADDR" envDefault:""`
	Password string        `env:"REDIS_PASSWORD" envDefault:""`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	LockTTL  time.Duration `env:"REDIS_LOCK_TTL" envDefault:"5s"`
}

type Auth struct {
	ServiceURL    string        `env:"AUTH_SERVICE_URL"`
	Timeout       time.Duration `env:"AUTH_TIMEOUT" envDefault:"2s"`
	RetryAttempts int           `env:"AUTH_RETRY_ATTEMPTS" envDefault:"2"`
}

type Journal struct {
	Timezone      string `env:"JOURNAL_TIMEZONE" envDefault:"Europe/Kyiv"`
	PhoneRegion   string `env:"JOURNAL_PHONE_REGION" envDefault:"UA"`
	MaxCandidates uint64 `env:"JOURNAL_MAX_CANDIDATES" envDefault:"50"`
	PageSize      uint64 `env:"JOURNAL_PAGE_SIZE" envDefault:"50"`
	MaxPageSize   uint64 `env:"JOURNAL_MAX_PAGE_SIZE" envDefault:"500"`
}

// Location returns the time zone used for audit headers.
func (j Journal) Location() (*time.Location, error) {
	return time.LoadLocation(j.Timezone)
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
