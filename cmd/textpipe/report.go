package main

import (
	"fmt"

	"github.com/kbukum/textpipe/internal/logger"
	"github.com/kbukum/textpipe/internal/pipeline"
)

func printReport(log *logger.Logger, documentCount int, cr pipeline.ComparisonRecord) {
	records := map[pipeline.Mode]pipeline.ExecutionRecord{
		pipeline.ModeScheduler:   cr.Scheduler,
		pipeline.ModeSequential:  cr.Sequential,
		pipeline.ModePartitioned: cr.Partitioned,
	}

	for mode, rec := range records {
		fields := logger.Fields(
			logger.FieldMode, string(mode),
			"success", rec.Success,
			"elapsed_seconds", rec.ElapsedSeconds,
			"stages_completed", rec.StagesCompleted,
		)
		if !rec.Success {
			log.Error(fmt.Sprintf("mode %s failed: %s", mode, rec.ErrorMessage), fields)
			continue
		}
		fields["speedup"] = cr.Speedup[mode]
		fields["efficiency"] = cr.Efficiency[mode]
		fields["throughput_docs_per_sec"] = cr.Throughput[mode]
		log.Info(fmt.Sprintf("mode %s completed", mode), fields)

		for _, st := range rec.StageTimings {
			log.Debug(fmt.Sprintf("mode %s stage %s", mode, st.StageID), logger.Fields(
				logger.FieldMode, string(mode),
				"stage_id", st.StageID,
				"elapsed_seconds", st.Elapsed.Seconds(),
				"length_delta", st.LengthDelta,
			))
		}
	}

	if cr.AllSucceeded {
		log.Info("comparison complete", logger.Fields(
			"documents", documentCount,
			"best_mode", string(cr.BestMode),
		))
	} else {
		log.Error("comparison did not succeed for every mode", logger.Fields("documents", documentCount))
	}
}
