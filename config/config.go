package config

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv     string
	LogLevel   string
	Server     Server
	Database   Database
	Redis      Redis
	JWTSecret  string
	Subscriber Subscriber
}

type Server struct {
	Port string
}

type Database struct {
	Driver   string // "postgres" or "sqlite"
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	Path     string // sqlite file path
}

type Redis struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
	TLS      bool
}

type Subscriber struct {
	Enabled bool
}

// DSN builds the postgres connection string.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Server),
		validation.Field(&c.Database),
	)
}

func (s Server) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Port, validation.Required),
	)
}

func (d Database) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Driver, validation.Required, validation.In("postgres", "sqlite")),
		validation.Field(&d.Host, validation.When(d.Driver == "postgres", validation.Required)),
		validation.Field(&d.Name, validation.When(d.Driver == "postgres", validation.Required)),
		validation.Field(&d.Path, validation.When(d.Driver == "sqlite", validation.Required)),
	)
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_PATH", "examcore.db")
	viper.SetDefault("REDIS_PREFIX", "examcore:")
	viper.SetDefault("SUBSCRIBER_ENABLED", true)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.AppEnv = viper.GetString("APP_ENV")
	config.LogLevel = viper.GetString("LOG_LEVEL")
	config.Server.Port = viper.GetString("SERVER_PORT")

	config.Database.Driver = viper.GetString("DATABASE_DRIVER")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")
	config.Database.Path = viper.GetString("DATABASE_PATH")

	config.Redis.Addr = viper.GetString("REDIS_ADDR")
	config.Redis.Password = viper.GetString("REDIS_PASSWORD")
	config.Redis.DB = viper.GetInt("REDIS_DB")
	config.Redis.Prefix = viper.GetString("REDIS_PREFIX")
	config.Redis.TLS = viper.GetBool("REDIS_TLS")

	config.JWTSecret = viper.GetString("JWT_SECRET")
	config.Subscriber.Enabled = viper.GetBool("SUBSCRIBER_ENABLED")

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log.Info().
		Str("env", config.AppEnv).
		Str("port", config.Server.Port).
		Str("dbDriver", config.Database.Driver).
		Str("dbHost", config.Database.Host).
		Bool("redis", config.Redis.Addr != "").
		Msg("Config loaded")
	return &config, nil
}
