// internal/common/config/config.go
package config

import "time"

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig          `mapstructure:"app"`
	Server        ServerConfig       `mapstructure:"server"`
	Data          DataConfig         `mapstructure:"data"`
	Registry      RegistryConfig     `mapstructure:"registry"`
	Application   ApplicationConfig  `mapstructure:"application"`
	Knowledge     KnowledgeConfig    `mapstructure:"knowledge"`
	Database      DatabaseConfig     `mapstructure:"database"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Logging       LoggingConfig      `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Address        string `mapstructure:"address"`
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
}

// DataConfig holds the record store directories. Both services receive these
// explicitly; nothing in the repo reads a hardcoded path.
type DataConfig struct {
	ApplicationsDir string `mapstructure:"applications_dir"`
	OffersDir       string `mapstructure:"offers_dir"`
}

type RegistryConfig struct {
	Path string `mapstructure:"path"`
}

// ApplicationConfig holds the open-jobs catalog and the demo ATS simulation.
type ApplicationConfig struct {
	Jobs       []JobPosting     `mapstructure:"jobs"`
	Simulation SimulationConfig `mapstructure:"simulation"`
}

// JobPosting is one entry of the static open-positions catalog.
type JobPosting struct {
	ID    string `mapstructure:"id"`
	Title string `mapstructure:"title"`
}

// SimulationConfig gates the randomized status updater. It imitates a
// downstream ATS for demos and must stay disabled in real deployments.
type SimulationConfig struct {
	Enabled  bool `mapstructure:"enabled"`
	Interval int  `mapstructure:"interval"` // milliseconds
}

// KnowledgeConfig holds settings for the FAQ retrieval adapter.
type KnowledgeConfig struct {
	Index       string `mapstructure:"index"`
	DefaultTopK int    `mapstructure:"default_top_k"`
	CacheTTL    int    `mapstructure:"cache_ttl"` // milliseconds
}

type DatabaseConfig struct {
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	Redis         RedisConfig         `mapstructure:"redis"`
}

type ElasticsearchConfig struct {
	Addresses []string `mapstructure:"addresses"`
	Username  string   `mapstructure:"username"`
	Password  string   `mapstructure:"password"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// NotificationConfig holds settings for the outbound candidate emails.
// When email is disabled the simulated mailer logs instead of sending.
type NotificationConfig struct {
	Email struct {
		Enabled   bool   `mapstructure:"enabled"`
		FromEmail string `mapstructure:"from_email"`
	} `mapstructure:"email"`
	AWS struct {
		Region string `mapstructure:"region"`
	} `mapstructure:"aws"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// JobTitle resolves a job id against the catalog; empty string when unknown.
func (a ApplicationConfig) JobTitle(jobID string) string {
	for _, j := range a.Jobs {
		if j.ID == jobID {
			return j.Title
		}
	}
	return ""
}

// GetDuration converts milliseconds from config to time.Duration.
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}
