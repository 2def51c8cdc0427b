package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
	Seed     SeedConfig
	Query    QueryConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int // in seconds
	WriteTimeout    int // in seconds
	ShutdownTimeout int // in seconds
	CORSOrigins     []string
}

// DatabaseConfig contains record store connection configuration.
// Driver selects the backend: "mongodb" or "postgres".
type DatabaseConfig struct {
	Driver     string
	URI        string
	Host       string
	Port       int
	Username   string
	Password   string
	Database   string
	Collection string
	SSLMode    string
	MaxConns   int
	IdleConns  int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// Enabled reports whether a Redis host is configured
func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

// NSQConfig contains NSQ producer configuration
type NSQConfig struct {
	Address string
	Topic   string
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	LogsEnabled bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}

// SeedConfig controls how the transactions dataset is seeded
type SeedConfig struct {
	SourceURL    string
	FetchTimeout int // in seconds
	LockTTL      int // in seconds
}

// QueryConfig bounds read queries
type QueryConfig struct {
	Timeout    int // per sub-query, in seconds
	MaxPerPage int // 0 means no cap
}
