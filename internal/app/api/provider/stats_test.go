package provider

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatsCollectorRecordsRuns(t *testing.T) {
	collector := NewStatsCollector()

	collector.RecordSuccess("gemini", 2*time.Second)
	collector.RecordSuccess("gemini", 4*time.Second)
	collector.RecordFailure("gemini", "transcribe")
	collector.RecordFailure("openai", "upload")

	gemini := collector.ProviderStats("gemini")
	assert.Equal(t, int64(3), gemini.TotalRuns)
	assert.Equal(t, int64(2), gemini.SuccessfulRuns)
	assert.Equal(t, int64(1), gemini.FailedRuns)
	assert.InDelta(t, 2.0/3.0, gemini.SuccessRate, 0.001)
	assert.Equal(t, int64(1), gemini.FailuresByStage["transcribe"])
	assert.Greater(t, gemini.AverageRunMs, 0.0)

	overall := collector.Overall()
	assert.Equal(t, int64(4), overall.TotalRuns)
	assert.Equal(t, int64(2), overall.FailedRuns)
	assert.Len(t, overall.ProviderStats, 2)
}

func TestStatsCollectorUnknownStage(t *testing.T) {
	collector := NewStatsCollector()

	collector.RecordFailure("gemini", "")

	assert.Equal(t, int64(1), collector.ProviderStats("gemini").FailuresByStage["unknown"])
}

func TestStatsCollectorSnapshotIsACopy(t *testing.T) {
	collector := NewStatsCollector()
	collector.RecordFailure("gemini", "upload")

	snapshot := collector.ProviderStats("gemini")
	snapshot.FailuresByStage["upload"] = 99

	assert.Equal(t, int64(1), collector.ProviderStats("gemini").FailuresByStage["upload"])
}

func TestStatsCollectorReset(t *testing.T) {
	collector := NewStatsCollector()
	collector.RecordSuccess("gemini", time.Second)

	collector.Reset()

	assert.Zero(t, collector.Overall().TotalRuns)
}
