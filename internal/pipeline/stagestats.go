package pipeline

import (
	"sync"
	"time"

	"github.com/kbukum/textpipe/internal/scheduler"
)

// StageTiming is one stage's aggregated wall-clock time and net
// character-length delta across every invocation (one per partitioned
// chunk, or a single call in scheduler/sequential mode) during one
// Manager.Run* call.
type StageTiming struct {
	StageID     string
	Elapsed     time.Duration
	LengthDelta int64
}

// stageStatsCollector aggregates StageTiming entries across however many
// goroutines concurrently execute the chain. A Manager holds one
// collector for its lifetime and resets it at the start of each Run*
// call, so readings never mix across separate runs.
type stageStatsCollector struct {
	mu    sync.Mutex
	byID  map[string]*StageTiming
	order []string
}

func newStageStatsCollector() *stageStatsCollector {
	return &stageStatsCollector{byID: make(map[string]*StageTiming)}
}

func (c *stageStatsCollector) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byID = make(map[string]*StageTiming)
	c.order = nil
}

func (c *stageStatsCollector) record(id string, elapsed time.Duration, delta int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	t, ok := c.byID[id]
	if !ok {
		t = &StageTiming{StageID: id}
		c.byID[id] = t
		c.order = append(c.order, id)
	}
	t.Elapsed += elapsed
	t.LengthDelta += delta
}

func (c *stageStatsCollector) snapshot() []StageTiming {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]StageTiming, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.byID[id])
	}
	return out
}

func batchLength(batch []string) int64 {
	var n int64
	for _, d := range batch {
		n += int64(len(d))
	}
	return n
}

// instrument wraps body so every call records its own elapsed time and
// net character-length delta against collector. A nil collector means
// stats collection is disabled, in which case body is returned
// unwrapped so the uninstrumented path costs nothing extra.
func instrument(id string, body scheduler.Body, collector *stageStatsCollector) scheduler.Body {
	if collector == nil {
		return body
	}
	return func(batch []string) error {
		before := batchLength(batch)
		start := time.Now()
		err := body(batch)
		collector.record(id, time.Since(start), batchLength(batch)-before)
		return err
	}
}
