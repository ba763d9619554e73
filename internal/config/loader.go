package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the environment variable prefix textpipe binds config keys
// under, e.g. TEXTPIPE_NUM_WORKERS maps to num_workers.
const EnvPrefix = "TEXTPIPE"

// Load composes a Config from an optional YAML file, environment
// variables, and CLI flags, in that order of increasing precedence,
// mirroring gokit's config.LoadConfig layering.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			v.SetConfigFile(configFile)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("config: reading %s: %w", configFile, err)
			}
		}
	}

	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	// Unmarshal only sees keys Viper already knows, so bind each
	// top-level key to its prefixed environment variable explicitly.
	for _, key := range []string{"name", "environment", "debug", "input_path", "num_workers", "max_sequence_length", "enable_debug", "vocab_file", "merges_file", "collect_stage_stats"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("config: binding env for %s: %w", key, err)
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("config: binding flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}
