package pipeline

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kbukum/textpipe/internal/apperr"
	"github.com/kbukum/textpipe/internal/vocab"
)

func testManager(t *testing.T, workers, maxSeqLen int) *Manager {
	t.Helper()
	v := vocab.New(nil)
	m, err := NewManager(Config{NumWorkers: workers, MaxSequenceLength: maxSeqLen}, v, nil)
	require.NoError(t, err)
	return m
}

func TestRunParallel_ProducesEmbeddedPlaceholdersInOrder(t *testing.T) {
	m := testManager(t, 4, 16)
	rec := m.RunParallel([]string{"alpha", "beta", "gamma"})
	require.True(t, rec.Success)
	require.Equal(t, []string{"EMBEDDED_DOCUMENT_1", "EMBEDDED_DOCUMENT_2", "EMBEDDED_DOCUMENT_3"}, rec.ProcessedDocuments)
	require.Equal(t, 8, rec.StagesCompleted)
}

func TestRunSequential_ForceSingleBypassesScheduler(t *testing.T) {
	m := testManager(t, 4, 16)
	rec := m.RunSequential([]string{"doc"}, true)
	require.True(t, rec.Success)
	require.Equal(t, "EMBEDDED_DOCUMENT_1", rec.ProcessedDocuments[0])
}

func TestRunPartitioned_MatchesSequentialOutput(t *testing.T) {
	m := testManager(t, 4, 16)
	batch := make([]string, 250)
	for i := range batch {
		batch[i] = fmt.Sprintf("document %d has some words", i)
	}

	seq := m.RunSequential(batch, true)
	part := m.RunPartitioned(batch)
	require.True(t, seq.Success)
	require.True(t, part.Success)
	require.Equal(t, seq.ProcessedDocuments, part.ProcessedDocuments)
}

func TestRunParallel_RejectsEmptyBatch(t *testing.T) {
	m := testManager(t, 4, 16)
	rec := m.RunParallel(nil)
	require.False(t, rec.Success)
	require.NotEmpty(t, rec.ErrorMessage)
}

func TestRunParallel_RejectsAllEmptyDocuments(t *testing.T) {
	m := testManager(t, 4, 16)
	rec := m.RunParallel([]string{"", "", ""})
	require.False(t, rec.Success)
	require.Contains(t, rec.ErrorMessage, string(apperr.ErrCodeInputInvalid))
}

func TestRunFullComparison_AllModesAgreeAndReportBest(t *testing.T) {
	m := testManager(t, 4, 16)
	batch := []string{"one", "two", "three", "four"}

	cr := m.RunFullComparison(batch)
	require.True(t, cr.AllSucceeded)
	require.Equal(t, cr.Scheduler.ProcessedDocuments, cr.Sequential.ProcessedDocuments)
	require.Equal(t, cr.Sequential.ProcessedDocuments, cr.Partitioned.ProcessedDocuments)
	require.NotEmpty(t, cr.BestMode)
}

func TestRunParallel_CollectStageStatsPopulatesOneEntryPerStage(t *testing.T) {
	v := vocab.New(nil)
	m, err := NewManager(Config{NumWorkers: 4, MaxSequenceLength: 16, CollectStageStats: true}, v, nil)
	require.NoError(t, err)

	rec := m.RunParallel([]string{"alpha", "beta"})
	require.True(t, rec.Success)
	require.Len(t, rec.StageTimings, 8)
	for _, st := range rec.StageTimings {
		require.NotEmpty(t, st.StageID)
	}
}

func TestRunSequential_CollectStageStatsDisabledByDefault(t *testing.T) {
	m := testManager(t, 4, 16)
	rec := m.RunSequential([]string{"doc"}, true)
	require.True(t, rec.Success)
	require.Nil(t, rec.StageTimings)
}

func TestRunPartitioned_CollectStageStatsAggregatesAcrossChunks(t *testing.T) {
	v := vocab.New(nil)
	m, err := NewManager(Config{NumWorkers: 4, MaxSequenceLength: 16, CollectStageStats: true}, v, nil)
	require.NoError(t, err)

	batch := make([]string, 250)
	for i := range batch {
		batch[i] = fmt.Sprintf("document %d has some words", i)
	}
	rec := m.RunPartitioned(batch)
	require.True(t, rec.Success)
	require.Len(t, rec.StageTimings, 8)
}
