package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	SourceCSV   = "csv"
	SourceMySQL = "mysql"
)

type Config struct {
	Env        string `env:"ENV" env-default:"local" env-description:"local, dev or prod"`
	LogLevel   string `env:"LOG_LEVEL" env-default:"info" env-description:"logging level, debug, info, etc."`
	HttpServer HttpServer
	Dataset    Dataset
	Database   Database
	Limiter    Limiter
	Cache      Cache
	Export     Export
	Forecast   Forecast
}

type HttpServer struct {
	Port           string        `env:"HTTP_PORT" env-default:"8080"`
	Timeout        time.Duration `env:"HTTP_TIMEOUT" env-default:"10s"`
	IdleTimeout    time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	SwaggerEnabled bool          `env:"HTTP_SWAGGER_ENABLED" env-default:"false"`
	MetricsEnabled bool          `env:"HTTP_METRICS_ENABLED" env-default:"true"`
}

type Dataset struct {
	Source         string `env:"DATASET_SOURCE" env-default:"csv" env-description:"csv or mysql"`
	Path           string `env:"DATASET_PATH" env-default:"covid_19_clean_complete.csv"`
	Watch          bool   `env:"DATASET_WATCH" env-default:"false" env-description:"reload the csv when it changes"`
	DefaultCountry string `env:"DATASET_DEFAULT_COUNTRY" env-default:"US"`
}

type Database struct {
	Net                string        `env:"DB_NET" env-default:"tcp"`
	Server             string        `env:"DB_SERVER"`
	DBName             string        `env:"DB_NAME"`
	User               string        `env:"DB_USER"`
	Password           string        `env:"DB_PASSWORD"`
	Timeout            time.Duration `env:"DB_TIMEOUT" env-default:"2s"`
	MaxIdleConnections int           `env:"DB_MAX_IDLE_CONNECTIONS" env-default:"4"`
	MaxOpenConnections int           `env:"DB_MAX_OPEN_CONNECTIONS" env-default:"8"`
	ImportBatchSize    int           `env:"DB_IMPORT_BATCH_SIZE" env-default:"500"`
}

type Limiter struct {
	RPS   int           `env:"LIMITER_RPS" env-default:"20"`
	Burst int           `env:"LIMITER_BURST" env-default:"40"`
	TTL   time.Duration `env:"LIMITER_TTL" env-default:"10m"`
}

type Cache struct {
	Type  string        `env:"REDIS_TYPE" env-default:"" env-description:"empty disables the chart cache, else one of redis/redisCluster"`
	TTL   time.Duration `env:"CACHE_TTL" env-default:"1h"`
	Redis struct {
		Address  string `env:"REDIS_ADDR" env-default:"" env-description:"redis host:port single instance"`
		Password string `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize int    `env:"REDIS_POOL_SIZE" env-default:"20" env-description:"max tcp connections pool size"`
	}
	RedisCluster struct {
		Addresses []string `env:"REDIS_CLUSTER_ADDRS" env-default:"" env-description:"redis cluster nodes: 172.27.29.90:7000,172.27.29.91:7001"`
		Password  string   `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize  int      `env:"REDIS_POOL_SIZE" env-default:"20" env-description:"max tcp connections pool size"`
	}
}

type Export struct {
	Enabled     bool   `env:"EXPORT_ENABLED" env-default:"false" env-description:"run the asynq export worker, needs redis"`
	Dir         string `env:"EXPORT_DIR" env-default:"exports"`
	Concurrency int    `env:"EXPORT_CONCURRENCY" env-default:"2"`
}

type Forecast struct {
	Window  int `env:"FORECAST_WINDOW" env-default:"30" env-description:"days used for the trend fit"`
	Horizon int `env:"FORECAST_HORIZON" env-default:"14" env-description:"default days to extrapolate"`
	MaxDays int `env:"FORECAST_MAX_HORIZON" env-default:"90"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read .env: %w", err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("cannot read config from environment: %s", err)
	}
	return cfg
}

func (c *Config) validate() error {
	switch c.Dataset.Source {
	case SourceCSV:
		if c.Dataset.Path == "" {
			return errors.New("DATASET_PATH is required for the csv source")
		}
	case SourceMySQL:
		if c.Database.Server == "" || c.Database.DBName == "" || c.Database.User == "" {
			return errors.New("DB_SERVER, DB_NAME and DB_USER are required for the mysql source")
		}
	default:
		return fmt.Errorf("unknown DATASET_SOURCE %q", c.Dataset.Source)
	}
	if c.Export.Enabled && c.Cache.Type == "" {
		return errors.New("EXPORT_ENABLED requires REDIS_TYPE")
	}
	return nil
}
