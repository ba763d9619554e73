package pipeline

import (
	"github.com/kbukum/textpipe/internal/scheduler"
	"github.com/kbukum/textpipe/internal/stages"
	"github.com/kbukum/textpipe/internal/vocab"
)

// stageSpec names one link in the fixed chain.
type stageSpec struct {
	id       string
	kind     scheduler.Kind
	priority int
}

var chainSpec = []stageSpec{
	{"clean", scheduler.KindCleaning, 10},
	{"normalize", scheduler.KindNormalization, 20},
	{"word-tokenize", scheduler.KindWordTokenization, 30},
	{"bpe-tokenize", scheduler.KindBPE, 40},
	{"partition", scheduler.KindPartition, 50},
	{"add-special-tokens", scheduler.KindSpecialTokens, 60},
	{"index-lookup", scheduler.KindIndices, 70},
	{"embed", scheduler.KindEmbeddings, 80},
}

// StageIDs returns the fixed chain's stage identifiers in execution
// order, so a caller driving the bodies outside the scheduler (the
// partitioned executor) can still report a failure against the stage
// that produced it.
func StageIDs() []string {
	ids := make([]string, len(chainSpec))
	for i, spec := range chainSpec {
		ids[i] = spec.id
	}
	return ids
}

// Chain returns the fixed Clean -> ... -> Embed bodies in execution
// order, for use outside the scheduler (strictly sequential mode, and
// the partitioned executor's per-chunk work). embedOffset is the
// position of this chain's first document within the overall batch: 0
// for a whole-batch run, or a chunk's starting index when the chain is
// built per-chunk by the partitioned executor, so Embed's placeholder
// numbering reflects each document's original, global position rather
// than its position within a chunk. stats may be nil; when non-nil, each
// body is wrapped to record its own elapsed time and length delta.
func Chain(v *vocab.Vocabulary, maxSequenceLength, embedOffset int, stats *stageStatsCollector) []scheduler.Body {
	bodies := []scheduler.Body{
		stages.Clean(),
		stages.Normalize(),
		stages.WordTokenize(),
		stages.BpeTokenize(v),
		stages.Partition(maxSequenceLength),
		stages.AddSpecialTokens(),
		stages.IndexLookup(v),
		stages.Embed(embedOffset),
	}
	for i, spec := range chainSpec {
		bodies[i] = instrument(spec.id, bodies[i], stats)
	}
	return bodies
}

// BuildTemplate constructs a fresh scheduler.Graph implementing the
// fixed Clean(10) -> Normalize(20) -> WordTokenize(30) -> BpeTokenize(40)
// -> Partition(50) -> AddSpecialTokens(60) -> IndexLookup(70) -> Embed(80)
// chain, ready to be cloned by a new scheduler.Scheduler per run.
func BuildTemplate(v *vocab.Vocabulary, maxSequenceLength int, stats *stageStatsCollector) (*scheduler.Graph, error) {
	bodies := Chain(v, maxSequenceLength, 0, stats)
	g := scheduler.NewGraph()

	for i, spec := range chainSpec {
		if err := g.AddStage(spec.id, spec.kind, spec.priority, bodies[i]); err != nil {
			return nil, err
		}
	}
	for i := 1; i < len(chainSpec); i++ {
		if err := g.AddEdge(chainSpec[i-1].id, chainSpec[i].id); err != nil {
			return nil, err
		}
	}
	return g, nil
}
