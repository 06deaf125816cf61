package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Word list sources.
const (
	SourceFile     = "file"
	SourceSQLite   = "sqlite"
	SourcePostgres = "postgres"
	SourceBigQuery = "bigquery"
)

// Config holds the full application configuration.
type Config struct {
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
	Solver   SolverConfig   `yaml:"solver" mapstructure:"solver"`
	WordList WordListConfig `yaml:"wordlist" mapstructure:"wordlist"`
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// SolverConfig configures the clue solver.
type SolverConfig struct {
	Workers     int `yaml:"workers" mapstructure:"workers"`
	MaxRun      int `yaml:"max_run" mapstructure:"max_run"`
	TimeoutSecs int `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// WordListConfig selects where the synonym list is loaded from.
type WordListConfig struct {
	Source      string         `yaml:"source" mapstructure:"source"`
	Path        string         `yaml:"path" mapstructure:"path"`
	DatabaseURL string         `yaml:"database_url" mapstructure:"database_url"`
	BigQuery    BigQueryConfig `yaml:"bigquery" mapstructure:"bigquery"`
}

// BigQueryConfig locates the synonyms table in BigQuery.
type BigQueryConfig struct {
	Project string `yaml:"project" mapstructure:"project"`
	Dataset string `yaml:"dataset" mapstructure:"dataset"`
	Table   string `yaml:"table" mapstructure:"table"`
}

// ServerConfig configures the local HTTP function server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// OutputConfig configures how results are listed.
type OutputConfig struct {
	Limit int `yaml:"limit" mapstructure:"limit"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("CRYPTICS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("solver.workers", 4)
	v.SetDefault("solver.max_run", 3)
	v.SetDefault("solver.timeout_secs", 60)
	v.SetDefault("wordlist.source", SourceFile)
	v.SetDefault("wordlist.path", "words.txt")
	v.SetDefault("wordlist.database_url", "")
	v.SetDefault("wordlist.bigquery.project", "")
	v.SetDefault("wordlist.bigquery.dataset", "cryptics")
	v.SetDefault("wordlist.bigquery.table", "synonyms")
	v.SetDefault("server.port", 8080)
	v.SetDefault("output.limit", 15)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks that the selected word list source is fully configured.
func (c *Config) Validate() error {
	wl := c.WordList
	switch wl.Source {
	case SourceFile, SourceSQLite:
		if wl.Path == "" {
			return eris.Errorf("config: wordlist.path is required for source %q", wl.Source)
		}
	case SourcePostgres:
		if wl.DatabaseURL == "" {
			return eris.New("config: wordlist.database_url is required for source \"postgres\"")
		}
	case SourceBigQuery:
		if wl.BigQuery.Project == "" || wl.BigQuery.Dataset == "" || wl.BigQuery.Table == "" {
			return eris.New("config: wordlist.bigquery.project, dataset and table are required for source \"bigquery\"")
		}
	default:
		return eris.Errorf("config: unknown wordlist.source %q", wl.Source)
	}
	if c.Solver.TimeoutSecs <= 0 {
		return eris.New("config: solver.timeout_secs must be positive")
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
