package provider

import (
	"sync"
	"time"
)

// RunStats is a snapshot of the collector for one provider.
type RunStats struct {
	Provider        string           `json:"provider"`
	TotalRuns       int64            `json:"total_runs"`
	SuccessfulRuns  int64            `json:"successful_runs"`
	FailedRuns      int64            `json:"failed_runs"`
	SuccessRate     float64          `json:"success_rate"`
	AverageRunMs    float64          `json:"average_run_ms"`
	FailuresByStage map[string]int64 `json:"failures_by_stage,omitempty"`
	LastUsed        int64            `json:"last_used,omitempty"`
}

// OverallStats aggregates every provider's numbers for the stats endpoint.
type OverallStats struct {
	TotalRuns      int64               `json:"total_runs"`
	SuccessfulRuns int64               `json:"successful_runs"`
	FailedRuns     int64               `json:"failed_runs"`
	SuccessRate    float64             `json:"success_rate"`
	ProviderStats  map[string]RunStats `json:"provider_stats"`
}

// StatsCollector keeps in-memory run statistics per provider. It backs the
// stats API only; Prometheus metrics are recorded separately by the
// pipeline.
type StatsCollector struct {
	mu    sync.RWMutex
	stats map[string]*RunStats
}

// NewStatsCollector creates an empty collector.
func NewStatsCollector() *StatsCollector {
	return &StatsCollector{
		stats: make(map[string]*RunStats),
	}
}

// RecordSuccess records one completed run.
func (c *StatsCollector) RecordSuccess(provider string, elapsed time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.getOrCreate(provider)
	s.TotalRuns++
	s.SuccessfulRuns++
	s.LastUsed = time.Now().Unix()

	// Weighted average favoring recent runs.
	elapsedMs := float64(elapsed.Milliseconds())
	if s.AverageRunMs == 0 {
		s.AverageRunMs = elapsedMs
	} else {
		s.AverageRunMs = s.AverageRunMs*0.8 + elapsedMs*0.2
	}
	s.SuccessRate = float64(s.SuccessfulRuns) / float64(s.TotalRuns)
}

// RecordFailure records one aborted run and the stage that failed.
func (c *StatsCollector) RecordFailure(provider, stage string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.getOrCreate(provider)
	s.TotalRuns++
	s.FailedRuns++
	s.LastUsed = time.Now().Unix()
	if stage == "" {
		stage = "unknown"
	}
	s.FailuresByStage[stage]++
	s.SuccessRate = float64(s.SuccessfulRuns) / float64(s.TotalRuns)
}

// ProviderStats returns a copy of one provider's stats. getOrCreate may
// insert an empty record, so this takes the write lock.
func (c *StatsCollector) ProviderStats(provider string) RunStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyStats(c.getOrCreate(provider))
}

// Overall returns a copy of everything.
func (c *StatsCollector) Overall() OverallStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := OverallStats{ProviderStats: make(map[string]RunStats, len(c.stats))}
	for name, s := range c.stats {
		out.TotalRuns += s.TotalRuns
		out.SuccessfulRuns += s.SuccessfulRuns
		out.FailedRuns += s.FailedRuns
		out.ProviderStats[name] = copyStats(s)
	}
	if out.TotalRuns > 0 {
		out.SuccessRate = float64(out.SuccessfulRuns) / float64(out.TotalRuns)
	}
	return out
}

// Reset drops all recorded statistics.
func (c *StatsCollector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats = make(map[string]*RunStats)
}

func (c *StatsCollector) getOrCreate(provider string) *RunStats {
	s, ok := c.stats[provider]
	if !ok {
		s = &RunStats{
			Provider:        provider,
			FailuresByStage: make(map[string]int64),
		}
		c.stats[provider] = s
	}
	return s
}

func copyStats(s *RunStats) RunStats {
	out := *s
	out.FailuresByStage = make(map[string]int64, len(s.FailuresByStage))
	for k, v := range s.FailuresByStage {
		out.FailuresByStage[k] = v
	}
	return out
}
