package stages

import (
	"strings"
	"testing"

	"github.com/kbukum/textpipe/internal/vocab"
)

func emptyVocab() *vocab.Vocabulary {
	return vocab.New(nil)
}

func TestClean_ReplacesTagsAndKeepsCasing(t *testing.T) {
	batch := []string{"<b>Hello</b> WORLD"}
	if err := Clean()(batch); err != nil {
		t.Fatal(err)
	}
	if batch[0] != "Hello WORLD" {
		t.Fatalf("expected %q, got %q", "Hello WORLD", batch[0])
	}
}

func TestClean_DecodesEntitiesAndDropsDisallowed(t *testing.T) {
	batch := []string{"Tom &amp; Jerry! &lt;3&gt; @home"}
	if err := Clean()(batch); err != nil {
		t.Fatal(err)
	}
	if batch[0] != "Tom Jerry 3 home" {
		t.Fatalf("got %q", batch[0])
	}
}

func TestClean_KeepsLatin1AccentsButDropsOtherScripts(t *testing.T) {
	batch := []string{"café crème Привет Γειά"}
	if err := Clean()(batch); err != nil {
		t.Fatal(err)
	}
	if batch[0] != "café crème" {
		t.Fatalf("got %q", batch[0])
	}
}

func TestWordTokenize_KeepsLatin1AccentsButDropsOtherScripts(t *testing.T) {
	batch := []string{"café Привет"}
	if err := WordTokenize()(batch); err != nil {
		t.Fatal(err)
	}
	if batch[0] != "café" {
		t.Fatalf("got %q", batch[0])
	}
}

// Scenario A: "<b>Hello</b> WORLD" through the full chain with an empty
// vocabulary must end at EMBEDDED_DOCUMENT_1, with the documented
// intermediate forms along the way.
func TestScenarioA_FullChainWithEmptyVocabulary(t *testing.T) {
	v := emptyVocab()
	batch := []string{"<b>Hello</b> WORLD"}

	mustRun(t, Clean(), batch)
	if batch[0] != "Hello WORLD" {
		t.Fatalf("after Clean: got %q", batch[0])
	}

	mustRun(t, Normalize(), batch)
	if batch[0] != "hello world" {
		t.Fatalf("after Normalize: got %q", batch[0])
	}

	mustRun(t, WordTokenize(), batch)
	if batch[0] != "hello world" {
		t.Fatalf("after WordTokenize: got %q", batch[0])
	}

	mustRun(t, BpeTokenize(v), batch)
	if batch[0] != "[CLS] hello world [SEP]" {
		t.Fatalf("after BpeTokenize: got %q", batch[0])
	}

	mustRun(t, Partition(16), batch)
	if batch[0] != "[CLS] hello world [SEP]" {
		t.Fatalf("after Partition: got %q", batch[0])
	}

	mustRun(t, AddSpecialTokens(), batch)
	if batch[0] != "[CLS] hello world [SEP] [EOF]" {
		t.Fatalf("after AddSpecialTokens: got %q", batch[0])
	}

	mustRun(t, IndexLookup(v), batch)
	if batch[0] != "101 0 0 102 103" {
		t.Fatalf("after IndexLookup: got %q", batch[0])
	}

	mustRun(t, Embed(0), batch)
	if batch[0] != "EMBEDDED_DOCUMENT_1" {
		t.Fatalf("after Embed: got %q", batch[0])
	}
}

// Scenario B: a 200-word document with max_sequence_length=5 must be
// truncated to exactly 5 tokens after Partition, and still succeed
// through the rest of the chain.
func TestScenarioB_TruncationToMaxSequenceLength(t *testing.T) {
	v := emptyVocab()
	words := make([]string, 200)
	for i := range words {
		words[i] = "w"
	}
	batch := []string{strings.Join(words, " ")}

	mustRun(t, Clean(), batch)
	mustRun(t, Normalize(), batch)
	mustRun(t, WordTokenize(), batch)
	mustRun(t, BpeTokenize(v), batch)

	mustRun(t, Partition(5), batch)
	if got := len(strings.Fields(batch[0])); got != 5 {
		t.Fatalf("expected exactly 5 tokens after Partition, got %d (%q)", got, batch[0])
	}

	mustRun(t, AddSpecialTokens(), batch)
	mustRun(t, IndexLookup(v), batch)
	mustRun(t, Embed(0), batch)

	if batch[0] != "EMBEDDED_DOCUMENT_1" {
		t.Fatalf("expected EMBEDDED_DOCUMENT_1, got %q", batch[0])
	}
}

// Scenario C: batch order must survive the full chain.
func TestScenarioC_OrderPreservedAcrossChain(t *testing.T) {
	v := emptyVocab()
	batch := []string{"alpha", "beta", "gamma"}

	for _, stage := range []func([]string) error{
		Clean(), Normalize(), WordTokenize(), BpeTokenize(v),
		Partition(16), AddSpecialTokens(), IndexLookup(v), Embed(0),
	} {
		mustRun(t, stage, batch)
	}

	want := []string{"EMBEDDED_DOCUMENT_1", "EMBEDDED_DOCUMENT_2", "EMBEDDED_DOCUMENT_3"}
	for i := range want {
		if batch[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, batch)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	batch := []string{"Already Lower and MIXED"}
	mustRun(t, Normalize(), batch)
	once := batch[0]
	mustRun(t, Normalize(), batch)
	if batch[0] != once {
		t.Fatalf("Normalize is not idempotent: %q vs %q", once, batch[0])
	}
}

func TestAddSpecialTokens_Idempotent(t *testing.T) {
	batch := []string{"hello world"}
	mustRun(t, AddSpecialTokens(), batch)
	once := batch[0]
	mustRun(t, AddSpecialTokens(), batch)
	if batch[0] != once {
		t.Fatalf("AddSpecialTokens is not idempotent: %q vs %q", once, batch[0])
	}
	if once != "[CLS] hello world [SEP] [EOF]" {
		t.Fatalf("unexpected markers: %q", once)
	}
}

func TestAddSpecialTokens_DoesNotDuplicateExistingMarkers(t *testing.T) {
	batch := []string{"[CLS] hello [SEP] [EOF]"}
	mustRun(t, AddSpecialTokens(), batch)
	if batch[0] != "[CLS] hello [SEP] [EOF]" {
		t.Fatalf("expected markers unchanged, got %q", batch[0])
	}
}

func TestPartition_IdempotentWhenUnderLimit(t *testing.T) {
	batch := []string{"one two three"}
	mustRun(t, Partition(10), batch)
	once := batch[0]
	mustRun(t, Partition(10), batch)
	if batch[0] != once {
		t.Fatalf("Partition is not idempotent under the limit: %q vs %q", once, batch[0])
	}
}

// Empty document boundary: an empty string survives Clean, Normalize
// and WordTokenize unchanged, then acquires special tokens once it
// reaches BpeTokenize.
func TestEmptyDocument_SurvivesThenAcquiresSpecialTokens(t *testing.T) {
	v := emptyVocab()
	batch := []string{"", "non-empty text"}

	mustRun(t, Clean(), batch)
	mustRun(t, Normalize(), batch)
	mustRun(t, WordTokenize(), batch)
	if batch[0] != "" {
		t.Fatalf("expected empty document to remain empty, got %q", batch[0])
	}

	mustRun(t, BpeTokenize(v), batch)
	if batch[0] != "[CLS] [SEP]" {
		t.Fatalf("expected empty document to acquire special tokens, got %q", batch[0])
	}

	mustRun(t, Partition(16), batch)
	mustRun(t, AddSpecialTokens(), batch)
	if batch[0] != "[CLS] [SEP] [EOF]" {
		t.Fatalf("got %q", batch[0])
	}

	mustRun(t, IndexLookup(v), batch)
	mustRun(t, Embed(0), batch)
	if batch[0] != "EMBEDDED_DOCUMENT_1" {
		t.Fatalf("got %q", batch[0])
	}
}

func TestBpeTokenize_GreedyLongestPrefixAgainstVocabulary(t *testing.T) {
	v := vocab.New([]string{"un", "do", "ing", "undo"})
	batch := []string{"undoing"}
	if err := BpeTokenize(v)(batch); err != nil {
		t.Fatal(err)
	}
	if batch[0] != "[CLS] undo ing [SEP]" {
		t.Fatalf("got %q", batch[0])
	}
}

func mustRun(t *testing.T, stage func([]string) error, batch []string) {
	t.Helper()
	if err := stage(batch); err != nil {
		t.Fatalf("stage failed: %v", err)
	}
}
