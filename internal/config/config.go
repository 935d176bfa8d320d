package config

import "time"

type Config struct {
	Service      *ServiceConfig
	Redis        *RedisConfig
	Postgres     *PostgresConfig
	Verification *VerificationConfig
	Feed         *FeedConfig
	SignUp       *SignUpConfig
	Logger       *LoggerConfig
	Tracer       *TracerConfig
	SecretToken  string
}

type ServiceConfig struct {
	Name string
	Env  string
	Add  string

	// PublicURL is where the verification provider reaches the callback.
	PublicURL string
}

type RedisConfig struct {
	URL          string
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int
	MinIdleConns int
	PingTimeout  time.Duration
}

type PostgresConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	PingTimeout     time.Duration
}

// VerificationConfig points at the identity/gender verification provider.
// With an empty APIKey the provider is not called and every flow gets
// SessionURL.
type VerificationConfig struct {
	BaseURL        string
	APIKey         string
	WorkflowID     string
	SessionURL     string
	CallbackSecret string
	RequestTimeout time.Duration
}

type FeedConfig struct {
	// Source is "direct" or "notify".
	Source        string
	NotifyChannel string
	MinReconnect  time.Duration
	MaxReconnect  time.Duration
}

type SignUpConfig struct {
	VerificationTimeout time.Duration
	RedirectTo          string
	RedirectAfter       time.Duration
	FlowRetention       time.Duration
}

type LoggerConfig struct {
	Level  string
	Format string
}

type TracerConfig struct {
	Enabled bool
	Address string
}
