package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Redis       RedisConfig     `mapstructure:"redis"`
	Logger      LoggerConfig    `mapstructure:"logger"`
	Wallet      WalletConfig    `mapstructure:"wallet"`
	Retry       RetryConfig     `mapstructure:"retry"`
	Scheduler   SchedulerConfig `mapstructure:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	ConnectAttempts int           `mapstructure:"connectAttempts"`
	ConnectDelay    time.Duration `mapstructure:"connectDelay"` // seconds
	LogLevel        string        `mapstructure:"logLevel"`
}

// RedisConfig contains cache connection settings
type RedisConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	Addr        string        `mapstructure:"addr"`
	Username    string        `mapstructure:"username"`
	Password    string        `mapstructure:"password"`
	DB          int           `mapstructure:"db"`
	MaxRetries  int           `mapstructure:"maxRetries"`
	DialTimeout time.Duration `mapstructure:"dialTimeout"` // seconds
	Timeout     time.Duration `mapstructure:"timeout"`     // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// WalletConfig contains wallet policy settings
type WalletConfig struct {
	MinDepositCents int64         `mapstructure:"minDepositCents"`
	HistoryLimit    int           `mapstructure:"historyLimit"`
	SnapshotTTL     time.Duration `mapstructure:"snapshotTTL"` // seconds
}

// RetryConfig tunes the transient-conflict retry wrapper
type RetryConfig struct {
	MaxAttempts  int           `mapstructure:"maxAttempts"`
	BaseBackoff  time.Duration `mapstructure:"baseBackoffMs"` // milliseconds
	MaxBackoff   time.Duration `mapstructure:"maxBackoffMs"`  // milliseconds
	JitterFactor float64       `mapstructure:"jitterFactor"`
}

// SchedulerConfig tunes the expiry reconciliation job
type SchedulerConfig struct {
	Enabled           bool          `mapstructure:"enabled"`
	ReconcileInterval time.Duration `mapstructure:"reconcileInterval"` // seconds
}
