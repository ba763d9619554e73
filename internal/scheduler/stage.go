package scheduler

// Kind tags a stage with its text-processing role. It is informational
// only — the scheduler dispatches purely on the dependency graph and
// priority, never on Kind.
type Kind string

const (
	KindCleaning         Kind = "cleaning"
	KindNormalization    Kind = "normalization"
	KindWordTokenization Kind = "word-tokenization"
	KindBPE              Kind = "bpe"
	KindPartition        Kind = "partition"
	KindSpecialTokens    Kind = "special-tokens"
	KindIndices          Kind = "indices"
	KindEmbeddings       Kind = "embeddings"
)

// Body is the mutable transform a stage applies to the shared document
// batch. It must not call back into the scheduler and must treat the
// batch as exclusively owned for the duration of the call.
type Body func(batch []string) error

// Stage is the unit of scheduling: a named, prioritized transform with a
// set of predecessor ids it must wait on.
type Stage struct {
	ID       string
	Kind     Kind
	Priority int
	Body     Body

	predecessors map[string]struct{}
	successors   []int // arena indices, appended by Graph.AddEdge
	remaining    int   // guarded by the owning Scheduler's mutex during a run
	completed    bool
}

func newStage(id string, kind Kind, priority int, body Body) *Stage {
	return &Stage{
		ID:           id,
		Kind:         kind,
		Priority:     priority,
		Body:         body,
		predecessors: make(map[string]struct{}),
	}
}

// clone returns a fresh copy of the stage with per-run state reset
// (remaining recomputed from predecessor count, completed cleared) but
// the same immutable Body closure, so a Graph template can be replayed by
// multiple independent runs without interference.
func (s *Stage) clone() *Stage {
	preds := make(map[string]struct{}, len(s.predecessors))
	for k := range s.predecessors {
		preds[k] = struct{}{}
	}
	succs := make([]int, len(s.successors))
	copy(succs, s.successors)
	return &Stage{
		ID:           s.ID,
		Kind:         s.Kind,
		Priority:     s.Priority,
		Body:         s.Body,
		predecessors: preds,
		successors:   succs,
		remaining:    len(preds),
	}
}
