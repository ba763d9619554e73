// Command textpipe ingests a CSV of documents, runs the full comparison
// of all three execution strategies, and prints a report.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/kbukum/textpipe/internal/config"
	"github.com/kbukum/textpipe/internal/ingest"
	"github.com/kbukum/textpipe/internal/logger"
	"github.com/kbukum/textpipe/internal/pipeline"
	"github.com/kbukum/textpipe/internal/version"
	"github.com/kbukum/textpipe/internal/vocab"
)

// documentColumn is the fixed CSV header this build reads documents
// from; column-by-name selection is internal/ingest's concern, but the
// CLI surface exposed here takes no column flag.
const documentColumn = "text"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("textpipe", pflag.ContinueOnError)
	inputPath := flags.String("input", "", "path to the input CSV file")
	configPath := flags.String("config", "", "optional path to a YAML config file")
	workers := flags.Int("workers", 0, "worker pool size (0 = autodetect hardware concurrency)")
	maxSeqLen := flags.Int("max-seq-len", 0, "max sequence length after Partition (0 = default)")
	vocabFile := flags.String("vocab", "", "optional external vocabulary file")
	mergesFile := flags.String("merges", "", "optional external merges file")
	debug := flags.Bool("debug", false, "enable verbose debug logging")
	stats := flags.Bool("stats", false, "collect and report per-stage timing")
	showVersion := flags.Bool("version", false, "print build version information and exit")

	if err := flags.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if *showVersion {
		fmt.Println(version.GetFullVersion())
		return 0
	}

	cfg, err := config.Load(*configPath, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	applyFlagOverrides(cfg, flags, *inputPath, *workers, *maxSeqLen, *vocabFile, *mergesFile, *debug, *stats)
	cfg.ApplyDefaults()

	if *debug {
		cfg.Logging.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger.Init(&cfg.Logging)
	log := logger.GetGlobalLogger().WithComponent("textpipe")

	docs, err := ingest.ReadDocuments(cfg.InputPath, documentColumn, ingest.DefaultDelimiter)
	if err != nil {
		log.WithError(err).Error("failed to read input documents")
		return 1
	}
	if len(docs) == 0 {
		log.Error("input file produced zero documents")
		return 1
	}

	v, err := vocab.Load(cfg.VocabFile, cfg.MergesFile)
	if err != nil {
		log.WithError(err).Error("failed to load vocabulary")
		return 1
	}

	manager, err := pipeline.NewManager(pipeline.Config{
		NumWorkers:        cfg.NumWorkers,
		MaxSequenceLength: cfg.MaxSequenceLength,
		EnableDebug:       cfg.EnableDebug,
		CollectStageStats: cfg.CollectStageStats,
	}, v, log)
	if err != nil {
		log.WithError(err).Error("failed to build pipeline template")
		return 1
	}

	result := manager.RunFullComparison(docs)
	printReport(log, len(docs), result)

	if !result.AllSucceeded {
		return 1
	}
	return 0
}

func applyFlagOverrides(cfg *config.Config, flags *pflag.FlagSet, input string, workers, maxSeqLen int, vocabFile, mergesFile string, debug, stats bool) {
	if flags.Changed("input") {
		cfg.InputPath = input
	}
	if flags.Changed("workers") {
		cfg.NumWorkers = workers
	}
	if flags.Changed("max-seq-len") {
		cfg.MaxSequenceLength = maxSeqLen
	}
	if flags.Changed("vocab") {
		cfg.VocabFile = vocabFile
	}
	if flags.Changed("merges") {
		cfg.MergesFile = mergesFile
	}
	if flags.Changed("debug") {
		cfg.EnableDebug = debug
		cfg.Debug = debug
	}
	if flags.Changed("stats") {
		cfg.CollectStageStats = stats
	}
}
