package pipeline

import (
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/textpipe/internal/apperr"
	"github.com/kbukum/textpipe/internal/logger"
	"github.com/kbukum/textpipe/internal/partition"
	"github.com/kbukum/textpipe/internal/scheduler"
	"github.com/kbukum/textpipe/internal/vocab"
)

// Config carries the recognized pipeline options.
type Config struct {
	NumWorkers        int
	MaxSequenceLength int
	EnableDebug       bool
	CollectStageStats bool
}

// Manager owns the fixed stage-dependency template and drives all three
// execution modes against it. A Manager is built once per pipeline
// configuration; each run mode clones a fresh, independent scheduler or
// chunk set from the shared template.
type Manager struct {
	cfg   Config
	vocab *vocab.Vocabulary
	log   *logger.Logger

	template    *scheduler.Graph
	chainLength int
	stats       *stageStatsCollector
}

// NewManager builds the fixed stage template against v and cfg. When
// cfg.CollectStageStats is set, every Run* call also populates its
// ExecutionRecord.StageTimings with per-stage wall-clock time and net
// character-length delta. When cfg.EnableDebug is set, the process-wide
// log level is raised to debug so a consumer that sets this field
// directly (bypassing the CLI's own --debug flag handling) still gets
// verbose diagnostic output; it never affects processed documents.
func NewManager(cfg Config, v *vocab.Vocabulary, log *logger.Logger) (*Manager, error) {
	if cfg.EnableDebug {
		logger.SetLevel("debug")
	}

	var stats *stageStatsCollector
	if cfg.CollectStageStats {
		stats = newStageStatsCollector()
	}
	template, err := BuildTemplate(v, cfg.MaxSequenceLength, stats)
	if err != nil {
		return nil, err
	}
	return &Manager{
		cfg:         cfg,
		vocab:       v,
		log:         log,
		template:    template,
		chainLength: len(chainSpec),
		stats:       stats,
	}, nil
}

// newChain builds the fixed chain with Embed numbering documents
// starting at embedOffset within the overall batch.
func (m *Manager) newChain(embedOffset int) []scheduler.Body {
	return Chain(m.vocab, m.cfg.MaxSequenceLength, embedOffset, m.stats)
}

// resetStats clears any accumulated per-stage timing before a new run,
// so one Run* call's readings never mix with another's.
func (m *Manager) resetStats() {
	if m.stats != nil {
		m.stats.reset()
	}
}

// stageTimings snapshots the current per-stage timings, or nil if stage
// stats collection is disabled.
func (m *Manager) stageTimings() []StageTiming {
	if m.stats == nil {
		return nil
	}
	return m.stats.snapshot()
}

// runLogger tags a run with a fresh correlation id so the scheduler's
// or partitioned executor's per-stage/per-chunk log lines can be
// grouped back to the run that produced them, even though no result
// value carries the id itself.
func (m *Manager) runLogger(mode Mode) *logger.Logger {
	if m.log == nil {
		return nil
	}
	return m.log.WithFields(logger.Fields(logger.FieldRunID, uuid.NewString(), logger.FieldMode, string(mode)))
}

// validateBatch rejects an empty batch or a batch of entirely empty
// documents.
func validateBatch(batch []string) error {
	if len(batch) == 0 {
		return apperr.InputInvalid("batch is empty")
	}
	for _, d := range batch {
		if d != "" {
			return nil
		}
	}
	return apperr.InputInvalid("batch consists entirely of empty documents")
}

// RunParallel executes the fixed chain through the dependency-graph
// scheduler with cfg.NumWorkers workers operating on a single shared
// batch.
func (m *Manager) RunParallel(batch []string) ExecutionRecord {
	if err := validateBatch(batch); err != nil {
		return failedRecord(ModeScheduler, err)
	}
	m.resetStats()

	s := scheduler.New(m.template, m.runLogger(ModeScheduler))
	start := time.Now()
	ok, err := s.Run(batch, m.cfg.NumWorkers)
	elapsed := time.Since(start)

	if err != nil {
		return failedRecord(ModeScheduler, err)
	}
	stats := s.StageStats()
	return ExecutionRecord{
		Mode:               ModeScheduler,
		ProcessedDocuments: s.ProcessedData(),
		ElapsedSeconds:     elapsed.Seconds(),
		StagesCompleted:    int(stats.CompletedCount),
		Success:            ok,
		StageTimings:       m.stageTimings(),
	}
}

// RunSequential executes the chain against batch. When forceSingle is
// true, stage bodies are called directly in fixed chain order on the
// calling goroutine, bypassing the scheduler entirely; otherwise the
// scheduler runs with exactly one worker.
func (m *Manager) RunSequential(batch []string, forceSingle bool) ExecutionRecord {
	if err := validateBatch(batch); err != nil {
		return failedRecord(ModeSequential, err)
	}
	m.resetStats()

	start := time.Now()

	if forceSingle {
		working := append([]string(nil), batch...)
		for _, body := range m.newChain(0) {
			if err := body(working); err != nil {
				return failedRecord(ModeSequential, apperr.StageFailure("sequential-chain", err))
			}
		}
		return ExecutionRecord{
			Mode:               ModeSequential,
			ProcessedDocuments: working,
			ElapsedSeconds:     time.Since(start).Seconds(),
			StagesCompleted:    m.chainLength,
			Success:            true,
			StageTimings:       m.stageTimings(),
		}
	}

	s := scheduler.New(m.template, m.runLogger(ModeSequential))
	ok, err := s.Run(batch, 1)
	elapsed := time.Since(start)
	if err != nil {
		return failedRecord(ModeSequential, err)
	}
	stats := s.StageStats()
	return ExecutionRecord{
		Mode:               ModeSequential,
		ProcessedDocuments: s.ProcessedData(),
		ElapsedSeconds:     elapsed.Seconds(),
		StagesCompleted:    int(stats.CompletedCount),
		Success:            ok,
		StageTimings:       m.stageTimings(),
	}
}

// RunPartitioned executes the chain against batch using the
// data-parallel partitioned executor (internal/partition).
func (m *Manager) RunPartitioned(batch []string) ExecutionRecord {
	if err := validateBatch(batch); err != nil {
		return failedRecord(ModePartitioned, err)
	}
	m.resetStats()

	start := time.Now()
	out, stats, err := partition.Run(batch, m.cfg.NumWorkers, m.newChain, StageIDs(), m.runLogger(ModePartitioned))
	elapsed := time.Since(start)
	if err != nil {
		return failedRecord(ModePartitioned, err)
	}
	return ExecutionRecord{
		Mode:               ModePartitioned,
		ProcessedDocuments: out,
		ElapsedSeconds:     elapsed.Seconds(),
		StagesCompleted:    m.chainLength,
		Success:            stats.Success,
		StageTimings:       m.stageTimings(),
	}
}
