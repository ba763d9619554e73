package scheduler

import (
	"container/heap"
	"sync"
	"sync/atomic"

	"github.com/kbukum/textpipe/internal/apperr"
	"github.com/kbukum/textpipe/internal/logger"
)

// Stats is a read-only snapshot of scheduler progress.
type Stats struct {
	TotalStages    int
	CompletedCount int64
	Success        bool
}

// Scheduler executes a Graph's stages against a shared document batch
// using a fixed-size worker pool coordinated by a single mutex and
// condition variable.
type Scheduler struct {
	mu   sync.Mutex
	cond *sync.Cond

	graph *Graph
	batch []string
	queue readyQueue
	seq   int64

	completedCount atomic.Int64
	shutdownReq    bool
	failed         bool
	failErr        error

	log *logger.Logger
}

// New builds a Scheduler bound to a fresh, independent clone of template
// so the template itself can be reused by a later run unmodified.
func New(template *Graph, log *logger.Logger) *Scheduler {
	s := &Scheduler{graph: template.clone(), log: log}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Run validates the graph, populates the shared batch, launches
// workerCount worker goroutines, and blocks until every stage has
// completed or the run has failed. It returns whether every stage
// completed successfully.
func (s *Scheduler) Run(batch []string, workerCount int) (bool, error) {
	if err := s.graph.Validate(); err != nil {
		return false, err
	}
	if workerCount <= 0 {
		workerCount = 1
	}

	s.batch = append([]string(nil), batch...)
	s.queue = nil
	s.seq = 0
	s.completedCount.Store(0)
	s.shutdownReq = false
	s.failed = false
	s.failErr = nil

	s.mu.Lock()
	for idx, st := range s.graph.arena {
		if st.remaining == 0 {
			heap.Push(&s.queue, s.enqueue(idx, st.Priority))
		}
	}
	s.mu.Unlock()

	var wg sync.WaitGroup
	for w := 0; w < workerCount; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			s.workerLoop(id)
		}(w)
	}
	wg.Wait()

	success := int(s.completedCount.Load()) == len(s.graph.arena) && !s.failed
	return success, s.failErr
}

// enqueue must be called with s.mu held.
func (s *Scheduler) enqueue(idx, priority int) readyEntry {
	e := readyEntry{idx: idx, priority: priority, seq: s.seq}
	s.seq++
	return e
}

// Shutdown requests that all workers stop picking up new stages once
// they finish whatever they are currently executing, and wakes anyone
// waiting on the condition variable.
func (s *Scheduler) Shutdown() {
	s.mu.Lock()
	s.shutdownReq = true
	s.cond.Broadcast()
	s.mu.Unlock()
}

func (s *Scheduler) allDone() bool {
	return int(s.completedCount.Load()) == len(s.graph.arena)
}

// workerLoop is the per-worker goroutine body: wait for a ready stage,
// run it, mark successors ready, repeat until the graph is done or
// shutdown is requested.
func (s *Scheduler) workerLoop(id int) {
	for {
		s.mu.Lock()
		for len(s.queue) == 0 && !s.allDone() && !s.shutdownReq {
			s.cond.Wait()
		}
		if s.shutdownReq || s.allDone() {
			s.mu.Unlock()
			return
		}

		entry := heap.Pop(&s.queue).(readyEntry)
		stage := s.graph.arena[entry.idx]
		s.mu.Unlock()

		if s.log != nil {
			s.log.Debug("scheduler: stage dispatched", logger.Fields(logger.FieldStage, stage.ID, logger.FieldWorker, id))
		}

		err := stage.Body(s.batch)

		s.mu.Lock()
		stage.completed = true
		s.completedCount.Add(1)

		if err != nil {
			s.failed = true
			s.failErr = apperr.StageFailure(stage.ID, err)
			s.shutdownReq = true
		} else {
			for _, succIdx := range stage.successors {
				succ := s.graph.arena[succIdx]
				succ.remaining--
				if succ.remaining == 0 {
					heap.Push(&s.queue, s.enqueue(succIdx, succ.Priority))
				}
			}
		}
		s.cond.Broadcast()
		s.mu.Unlock()
	}
}

// ProcessedData returns a copy of the current shared document batch.
func (s *Scheduler) ProcessedData() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.batch))
	copy(out, s.batch)
	return out
}

// StageStats returns a read-only progress snapshot.
func (s *Scheduler) StageStats() Stats {
	return Stats{
		TotalStages:    len(s.graph.arena),
		CompletedCount: s.completedCount.Load(),
		Success:        s.allDone() && !s.failed,
	}
}

// DependencyGraphText renders the scheduler's graph for diagnostics.
func (s *Scheduler) DependencyGraphText() string {
	return s.graph.Text()
}
