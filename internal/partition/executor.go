package partition

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/kbukum/textpipe/internal/apperr"
	"github.com/kbukum/textpipe/internal/logger"
	"github.com/kbukum/textpipe/internal/scheduler"
)

// stageLabel returns stageIDs[idx] when present, or a positional
// fallback when the caller didn't supply stage identifiers.
func stageLabel(stageIDs []string, idx int) string {
	if idx >= 0 && idx < len(stageIDs) {
		return stageIDs[idx]
	}
	return fmt.Sprintf("partitioned-stage-%d", idx)
}

// Stats is a read-only snapshot of partitioned-execution progress.
type Stats struct {
	TotalChunks     int
	CompletedChunks int64
	Success         bool
}

// chunkResult carries one chunk's outcome back to the merge step.
type chunkResult struct {
	start int
	end   int
	data  []string
	err   error
}

// Run splits batch into chunks sized per ComputeChunkSize, executes the
// chain newChain(start) returns sequentially against each chunk in its
// own goroutine (bypassing the scheduler's dependency graph entirely),
// and merges the results back into original order.
// newChain receives the chunk's starting index in the original batch,
// so a stage like Embed that numbers documents by position can produce
// the same result it would have for a whole-batch run. A chunk failure
// is recorded but does not stop sibling chunks from running to
// completion; overall success requires every chunk to succeed.
// stageIDs, when non-nil, names each position in the chain newChain
// returns, so a stage failure is reported under the same stage
// identifier the scheduler would have used for it; a nil or
// short slice falls back to a positional label.
func Run(batch []string, workerCount int, newChain func(start int) []scheduler.Body, stageIDs []string, log *logger.Logger) ([]string, Stats, error) {
	n := len(batch)
	if n == 0 {
		return nil, Stats{Success: true}, nil
	}

	size := ComputeChunkSize(n, workerCount)
	ranges := bounds(n, size)

	var (
		mu        sync.Mutex
		completed atomic.Int64
		wg        sync.WaitGroup
	)
	results := make([]chunkResult, len(ranges))

	for i, r := range ranges {
		wg.Add(1)
		go func(idx int, start, end int) {
			defer wg.Done()

			sub := make([]string, end-start)
			copy(sub, batch[start:end])

			var err error
			var failedStage int
			for stageIdx, stage := range newChain(start) {
				if err = stage(sub); err != nil {
					failedStage = stageIdx
					break
				}
			}
			if err != nil {
				err = apperr.StageFailure(stageLabel(stageIDs, failedStage), err)
			}

			mu.Lock()
			results[idx] = chunkResult{start: start, end: end, data: sub, err: err}
			mu.Unlock()
			completed.Add(1)

			if log != nil {
				fields := logger.Fields("chunk_index", idx, "chunk_size", end-start)
				if err != nil {
					log.WithError(err).Error("partition: chunk failed", fields)
				} else {
					log.Debug("partition: chunk completed", fields)
				}
			}
		}(i, r[0], r[1])
	}
	wg.Wait()

	merged := make([]string, n)
	var firstErr error
	for _, res := range results {
		if res.err != nil && firstErr == nil {
			firstErr = res.err
		}
		copy(merged[res.start:res.end], res.data)
	}

	stats := Stats{
		TotalChunks:     len(ranges),
		CompletedChunks: completed.Load(),
		Success:         firstErr == nil,
	}

	if firstErr != nil {
		return merged, stats, firstErr
	}
	return merged, stats, nil
}
