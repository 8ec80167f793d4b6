package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"  validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Auth      AuthConfig      `yaml:"auth"      validate:"required"`
	RabbitMQ  RabbitMQConfig  `yaml:"rabbitmq"`
	Cache     CacheConfig     `yaml:"cache"     validate:"required"`
	Pricing   PricingConfig   `yaml:"pricing"   validate:"required"`
	Cancel    CancelConfig    `yaml:"cancellation" validate:"required"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"    validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"         validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"     validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"     validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"careservices" validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"      validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"           validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"            validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"           validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// SchedulerConfig drives the rating reconciliation loop.
type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"30s" validate:"required,gt=0"`
	Batch    int           `yaml:"batch"    env:"SCHEDULER_BATCH"    env-default:"50"  validate:"min=1"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" validate:"required,min=16"`
}

// RabbitMQConfig is optional; an empty URL disables lifecycle events.
type RabbitMQConfig struct {
	URL      string `yaml:"url"      env:"RABBITMQ_URL"      env-default:""`
	Exchange string `yaml:"exchange" env:"RABBITMQ_EXCHANGE" env-default:"care.bookings"`
}

type CacheConfig struct {
	Size int           `yaml:"size" env:"CATALOG_CACHE_SIZE" env-default:"1024" validate:"min=1"`
	TTL  time.Duration `yaml:"ttl"  env:"CATALOG_CACHE_TTL"  env-default:"5m"   validate:"gt=0"`
}

type PricingConfig struct {
	CallOutFee           string `yaml:"call_out_fee"           env:"PRICING_CALL_OUT_FEE"           env-default:"0"   validate:"required,numeric"`
	EmergencyPremiumRate string `yaml:"emergency_premium_rate" env:"PRICING_EMERGENCY_PREMIUM_RATE" env-default:"0.5" validate:"required,numeric"`
}

// CancelConfig sets the fee charged when a confirmed booking is cancelled
// less than LateWindow before it starts.
type CancelConfig struct {
	LateWindow  time.Duration `yaml:"late_window"   env:"CANCEL_LATE_WINDOW"   env-default:"24h" validate:"gte=0"`
	LateFeeRate string        `yaml:"late_fee_rate" env:"CANCEL_LATE_FEE_RATE" env-default:"0.2" validate:"required,numeric"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
