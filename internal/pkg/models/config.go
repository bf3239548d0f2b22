package models

// Config represents application configuration
type Config struct {
	App          AppConfig
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	NATS         NATSConfig
	JWT          JWTConfig
	Tracking     TrackingConfig
	Connectivity ConnectivityConfig
	Assets       AssetsConfig
	NewRelic     NewRelicConfig
	Logger       LoggerConfig
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
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains session token configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// TrackingConfig contains ride-recording configuration
type TrackingConfig struct {
	SampleTimeoutMs  int  // geolocation acquisition timeout
	SampleMaxAgeMs   int  // maximum accepted fix age; 0 rejects cached fixes
	HighAccuracy     bool // request high-accuracy fixes
	TickerIntervalMs int  // live duration refresh interval
	TilePrecision    uint // geohash precision for the tile precache manifest
}

// ConnectivityConfig contains online/offline probe configuration
type ConnectivityConfig struct {
	ProbeIntervalMs int
	ProbeTimeoutMs  int
}

// AssetsConfig contains blob storage configuration
type AssetsConfig struct {
	Root    string // on-disk bucket root
	BaseURL string // public URL prefix assets are served under
}

// NewRelicConfig contains New Relic configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
