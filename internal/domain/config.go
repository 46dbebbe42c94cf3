package domain

// Config holds the complete process configuration. It is loaded and
// validated once at startup and treated as immutable afterwards; every
// evaluation receives it as an explicit parameter.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Cache   CacheConfig   `yaml:"cache"`
	Logging LoggingConfig `yaml:"logging"`
	Tracing TracingConfig `yaml:"tracing"`

	// Scoring configuration
	RiskWeights    RuleWeights    `yaml:"risk_weights"`
	RiskThresholds RiskThresholds `yaml:"risk_thresholds"`

	// Lexical configuration
	SuspiciousKeywords []string `yaml:"suspicious_keywords"`
	RiskyTLDs          []string `yaml:"risky_tlds"`

	// KeywordCap limits how many keyword matches contribute score.
	// Matches beyond the cap still appear in the bundle.
	KeywordCap int `yaml:"keyword_cap"`

	// Collector settings
	Timeouts    Timeouts `yaml:"timeouts"`
	DNSResolver string   `yaml:"dns_resolver"`

	// CustomRules are optional CEL expressions evaluated against the
	// bundle. A true outcome appends an advisory annotation; they never
	// add score.
	CustomRules []CustomRule `yaml:"custom_rules"`
}

// RiskThresholds are the ascending classification bounds. Each value is the
// inclusive lower bound of its band.
type RiskThresholds struct {
	Low      int `json:"low" yaml:"low"`
	Medium   int `json:"medium" yaml:"medium"`
	High     int `json:"high" yaml:"high"`
	Critical int `json:"critical" yaml:"critical"`
}

// Timeouts holds per-collector timeouts in seconds.
type Timeouts struct {
	DNS   int `yaml:"dns"`
	WHOIS int `yaml:"whois"`
	SSL   int `yaml:"ssl"`
}

// CustomRule is a config-defined advisory annotation.
type CustomRule struct {
	ID         string `yaml:"id"`
	Expression string `yaml:"expression"`
	Message    string `yaml:"message"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string          `yaml:"host"`
	Port         int             `yaml:"port"`
	ReadTimeout  int             `yaml:"read_timeout"`  // seconds
	WriteTimeout int             `yaml:"write_timeout"` // seconds
	RateLimit    RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig throttles API clients per remote address.
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled"`
	RPS     float64 `yaml:"rps"`
	Burst   int     `yaml:"burst"`
}

// CacheConfig holds result-cache settings. The cache is ephemeral; nothing
// outlives its TTL or the process (or the Redis expiry, for the redis type).
type CacheConfig struct {
	Type          string `yaml:"type"` // "memory" or "redis"
	MaxSize       int    `yaml:"max_size"`
	TTLSeconds    int    `yaml:"ttl_seconds"`
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// TracingConfig holds OpenTelemetry settings.
type TracingConfig struct {
	Enabled     bool   `yaml:"enabled"`
	ServiceName string `yaml:"service_name"`
}

// DefaultConfig returns the reference configuration used when no settings
// file is provided.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  30,
			WriteTimeout: 30,
			RateLimit: RateLimitConfig{
				Enabled: true,
				RPS:     10,
				Burst:   20,
			},
		},
		Cache: CacheConfig{
			Type:       "memory",
			MaxSize:    10000,
			TTLSeconds: 300,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Tracing: TracingConfig{
			Enabled:     false,
			ServiceName: "webrisk",
		},
		RiskWeights: RuleWeights{
			DomainAgeVeryNew:    25,
			DomainAgeNew:        15,
			DomainAgeRecent:     10,
			NoMXRecords:         15,
			NoSPFRecords:        10,
			SSLInvalid:          20,
			SSLSelfSigned:       15,
			RiskyTLD:            20,
			SuspiciousKeyword:   15,
			PunycodeDetected:    25,
			WHOISLookupFailed:   10,
			DNSResolutionFailed: 10,
			SSLCheckFailed:      10,
		},
		RiskThresholds: RiskThresholds{
			Low:      0,
			Medium:   40,
			High:     70,
			Critical: 90,
		},
		SuspiciousKeywords: []string{
			"login", "secure", "verify", "account", "update",
			"banking", "confirm", "signin", "wallet", "support",
		},
		RiskyTLDs: []string{
			".tk", ".ml", ".ga", ".cf", ".gq", ".top", ".xyz", ".work",
		},
		KeywordCap: 2,
		Timeouts: Timeouts{
			DNS:   5,
			WHOIS: 10,
			SSL:   10,
		},
		DNSResolver: "1.1.1.1:53",
	}
}
