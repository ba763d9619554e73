package config

import "testing"

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.Name != "textpipe" {
		t.Errorf("expected default name, got %q", cfg.Name)
	}
	if cfg.Environment != "development" {
		t.Errorf("expected default environment, got %q", cfg.Environment)
	}
	if cfg.NumWorkers <= 0 {
		t.Errorf("expected NumWorkers to be defaulted to a positive value, got %d", cfg.NumWorkers)
	}
	if cfg.MaxSequenceLength != DefaultMaxSequenceLength {
		t.Errorf("expected default max sequence length %d, got %d", DefaultMaxSequenceLength, cfg.MaxSequenceLength)
	}
}

func TestApplyDefaults_PreservesExplicitValues(t *testing.T) {
	cfg := &Config{NumWorkers: 8, MaxSequenceLength: 64}
	cfg.ApplyDefaults()

	if cfg.NumWorkers != 8 {
		t.Errorf("expected explicit NumWorkers to survive, got %d", cfg.NumWorkers)
	}
	if cfg.MaxSequenceLength != 64 {
		t.Errorf("expected explicit MaxSequenceLength to survive, got %d", cfg.MaxSequenceLength)
	}
}

func TestValidate_RequiresInputPath(t *testing.T) {
	cfg := &Config{Environment: "development"}
	cfg.Logging.ApplyDefaults()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing input_path")
	}
}

func TestValidate_RejectsUnknownEnvironment(t *testing.T) {
	cfg := &Config{InputPath: "docs.csv", Environment: "qa"}
	cfg.Logging.ApplyDefaults()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown environment")
	}
}

func TestValidate_Success(t *testing.T) {
	cfg := &Config{InputPath: "docs.csv"}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
