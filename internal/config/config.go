package config

import (
	"fmt"
	"runtime"

	"github.com/kbukum/textpipe/internal/logger"
)

const (
	// DefaultMaxSequenceLength bounds each document's token count after
	// the Partition stage when no override is configured.
	DefaultMaxSequenceLength = 128
	// MinWorkers is the floor used when NumWorkers resolves to zero or
	// less after autodetection.
	MinWorkers = 4
)

// Config is textpipe's application configuration. It embeds the same
// name/environment/debug fields a long-running service config carries so
// the logging and validation conventions line up, even though textpipe is
// a one-shot batch job rather than a long-running service.
type Config struct {
	Name        string        `yaml:"name" mapstructure:"name"`
	Environment string        `yaml:"environment" mapstructure:"environment"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`

	// InputPath is the CSV file ingested into the document batch.
	InputPath string `yaml:"input_path" mapstructure:"input_path"`
	// NumWorkers is the worker pool size for the parallel and
	// partitioned execution modes. Zero means autodetect.
	NumWorkers int `yaml:"num_workers" mapstructure:"num_workers"`
	// MaxSequenceLength bounds the Partition stage's truncation length.
	MaxSequenceLength int `yaml:"max_sequence_length" mapstructure:"max_sequence_length"`
	// EnableDebug toggles verbose per-stage diagnostic logging; it never
	// changes the processed output.
	EnableDebug bool `yaml:"enable_debug" mapstructure:"enable_debug"`
	// VocabFile and MergesFile optionally point at an external
	// vocabulary; when empty, a built-in minimal vocabulary is used.
	VocabFile  string `yaml:"vocab_file" mapstructure:"vocab_file"`
	MergesFile string `yaml:"merges_file" mapstructure:"merges_file"`
	// CollectStageStats enables the (added) per-stage timing report.
	CollectStageStats bool `yaml:"collect_stage_stats" mapstructure:"collect_stage_stats"`
}

// ApplyDefaults applies default values to the configuration. A
// substituted num_workers or max_sequence_length is logged as a
// ConfigDefault warning; the name, environment and logging defaults are
// applied without a log line.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "textpipe"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	if c.Logging.ServiceName == "" {
		c.Logging.ServiceName = c.Name
	}
	c.Logging.ApplyDefaults()

	if c.NumWorkers <= 0 {
		detected := runtime.NumCPU()
		if detected <= 0 {
			detected = MinWorkers
		}
		logger.Warn("config: num_workers defaulted", logger.Fields("from", c.NumWorkers, "to", detected))
		c.NumWorkers = detected
	}
	if c.MaxSequenceLength <= 0 {
		logger.Warn("config: max_sequence_length defaulted", logger.Fields("from", c.MaxSequenceLength, "to", DefaultMaxSequenceLength))
		c.MaxSequenceLength = DefaultMaxSequenceLength
	}
}

// Validate validates the configuration fields that ApplyDefaults cannot
// safely repair.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("config.input_path is required")
	}
	validEnvs := []string{"development", "staging", "production"}
	found := false
	for _, v := range validEnvs {
		if c.Environment == v {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("config.environment must be one of %v (got: %s)", validEnvs, c.Environment)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}
