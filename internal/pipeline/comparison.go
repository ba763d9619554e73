package pipeline

// RunFullComparison runs all three execution modes against independent
// copies of batch, records each elapsed time, and derives speedup,
// efficiency, throughput and a best-strategy pick. All three
// ExecutionRecords are returned, rather than just two, so a caller can
// always see every strategy's individual outcome.
func (m *Manager) RunFullComparison(batch []string) ComparisonRecord {
	schedulerRec := m.RunParallel(batch)
	sequentialRec := m.RunSequential(batch, true)
	partitionedRec := m.RunPartitioned(batch)

	cr := ComparisonRecord{
		Scheduler:   schedulerRec,
		Sequential:  sequentialRec,
		Partitioned: partitionedRec,
		Speedup:     make(map[Mode]float64, 3),
		Efficiency:  make(map[Mode]float64, 3),
		Throughput:  make(map[Mode]float64, 3),
	}

	cr.AllSucceeded = schedulerRec.Success && sequentialRec.Success && partitionedRec.Success
	n := float64(len(batch))
	workers := float64(m.cfg.NumWorkers)
	if workers <= 0 {
		workers = 1
	}

	records := map[Mode]ExecutionRecord{
		ModeScheduler:   schedulerRec,
		ModeSequential:  sequentialRec,
		ModePartitioned: partitionedRec,
	}

	var best Mode
	bestElapsed := -1.0
	for mode, rec := range records {
		if !rec.Success || rec.ElapsedSeconds <= 0 {
			continue
		}
		cr.Speedup[mode] = sequentialRec.ElapsedSeconds / rec.ElapsedSeconds
		cr.Efficiency[mode] = cr.Speedup[mode] / workers
		cr.Throughput[mode] = n / rec.ElapsedSeconds

		if cr.AllSucceeded && (bestElapsed < 0 || rec.ElapsedSeconds < bestElapsed) {
			bestElapsed = rec.ElapsedSeconds
			best = mode
		}
	}
	if cr.AllSucceeded {
		cr.BestMode = best
	}

	return cr
}
