package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig         `mapstructure:"server"`
	Database   DatabaseConfig       `mapstructure:"database"`
	Redis      RedisConfig          `mapstructure:"redis"`
	JWT        JWTConfig            `mapstructure:"jwt"`
	Card       CardConfig           `mapstructure:"card"`
	Validator  ValidatorConfig      `mapstructure:"validator"`
	Fares      FaresConfig          `mapstructure:"fares"`
	Engine     EngineConfig         `mapstructure:"engine"`
	Operators  []OperatorConfig     `mapstructure:"operators"`
	Validators []ValidatorKeyConfig `mapstructure:"validators"`
	Log        LogConfig            `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test

	AuditQueue int `mapstructure:"audit_queue"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// CardConfig controls how ticket blobs are protected and written.
type CardConfig struct {
	MasterKey       string        `mapstructure:"master_key"`       // 32-byte hex key, per-card keys are derived from it
	WriteCredential string        `mapstructure:"write_credential"` // password presented to the card on write
	LockTTL         time.Duration `mapstructure:"lock_ttl"`
	Transport       string        `mapstructure:"transport"`   // redis, memory
	MemoryPath      string        `mapstructure:"memory_path"` // card file for the memory transport
}

type ValidatorConfig struct {
	Location string `mapstructure:"location"`
}

// TierConfig is one fare tier as written in the config file.
type TierConfig struct {
	Name            string `mapstructure:"name"`
	DurationMinutes int    `mapstructure:"duration_minutes"`
	Cost            string `mapstructure:"cost"` // decimal string, e.g. "1.50"
	Next            string `mapstructure:"next"`
}

type FaresConfig struct {
	Base  string       `mapstructure:"base"`
	Tiers []TierConfig `mapstructure:"tiers"`
}

type EngineConfig struct {
	RecordUpgradeValidation bool `mapstructure:"record_upgrade_validation"`
}

// OperatorConfig is a back-office account allowed to issue cards and add credit.
type OperatorConfig struct {
	Username     string `mapstructure:"username"`
	PasswordHash string `mapstructure:"password_hash"` // argon2id encoded hash
}

// ValidatorKeyConfig is the shared secret a validator device signs taps with.
type ValidatorKeyConfig struct {
	ID     string `mapstructure:"id"`
	Secret string `mapstructure:"secret"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// DefaultTiers is the fare chain used when the config file does not define one.
func DefaultTiers() []TierConfig {
	return []TierConfig{
		{Name: "BIT", DurationMinutes: 60, Cost: "1.50", Next: "BIG"},
		{Name: "BIG", DurationMinutes: 1440, Cost: "4.50", Next: "BTW"},
		{Name: "BTW", DurationMinutes: 10080, Cost: "12.00"},
	}
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: FVL_ (Fare VaLidator).
// Nested keys use underscore: FVL_DATABASE_HOST, FVL_CARD_MASTER_KEY, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.audit_queue", 256)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "fare_validator")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "8h")
	v.SetDefault("jwt.issuer", "fare-validator")
	v.SetDefault("card.master_key", "")
	v.SetDefault("card.write_credential", "")
	v.SetDefault("card.lock_ttl", "10s")
	v.SetDefault("card.transport", "redis")
	v.SetDefault("card.memory_path", "cards.json")
	v.SetDefault("validator.location", "UNKNOWN")
	v.SetDefault("fares.base", "BIT")
	v.SetDefault("engine.record_upgrade_validation", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: FVL_DATABASE_HOST -> database.host
	v.SetEnvPrefix("FVL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if len(cfg.Fares.Tiers) == 0 {
		cfg.Fares.Tiers = DefaultTiers()
	}

	return &cfg, nil
}
