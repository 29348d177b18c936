package batch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daymade/medscribe/internal/app/api"
	"github.com/daymade/medscribe/internal/app/intake"
	"github.com/daymade/medscribe/internal/app/pipeline"
)

// dirProcessor transcribes to a fixed string and fails any file whose name
// contains "bad".
type dirProcessor struct{}

func (dirProcessor) Name() string { return "fake" }

func (dirProcessor) UploadAudio(ctx context.Context, upload api.AudioUpload) (*api.FileHandle, error) {
	return api.LocalFileHandle("fake", upload.Path, upload.MIMEType), nil
}

func (dirProcessor) Transcribe(ctx context.Context, handle *api.FileHandle) (string, error) {
	if strings.Contains(handle.URI, "bad") {
		return "", assert.AnError
	}
	return "patient reports mild headache", nil
}

func (dirProcessor) FormatConversation(ctx context.Context, transcript string) (string, error) {
	return "**Doctor:** how long?\n**Patient:** two days", nil
}

func (dirProcessor) SummarizeReport(ctx context.Context, transcript string) (string, error) {
	return "## Chief Complaint\nHeadache", nil
}

func writeInput(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("mp3 bytes"), 0o644))
}

func newBatchProcessor() *Processor {
	stager := intake.NewStager(intake.DefaultConfig(), nil)
	runner := pipeline.NewRunner(nil, nil, nil)
	return NewProcessor(stager, runner, dirProcessor{}, nil)
}

func TestRunProcessesDirectory(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()
	writeInput(t, inputDir, "visit_one.mp3")
	writeInput(t, inputDir, "visit_two.mp3")

	summary, err := newBatchProcessor().Run(context.Background(), Config{
		InputDir:  inputDir,
		OutputDir: outputDir,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 0, summary.Failed)
	require.Len(t, summary.Results, 2)

	// Each input gets its own directory with all three artifacts.
	entries, err := os.ReadDir(filepath.Join(outputDir, "visit_one"))
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	require.Len(t, names, 3)
	assert.Contains(t, names[0]+names[1]+names[2], "transcript_")
	assert.Contains(t, names[0]+names[1]+names[2], "conversation_")
	assert.Contains(t, names[0]+names[1]+names[2], "report_")

	for _, r := range summary.Results {
		assert.Equal(t, StatusOK, r.Status)
		assert.Equal(t, len("patient reports mild headache"), r.TranscriptChars)
	}

	// The run summary workbook lands next to the outputs.
	require.NotEmpty(t, summary.SummaryPath)
	_, err = os.Stat(summary.SummaryPath)
	assert.NoError(t, err)
}

func TestRunContinuesPastFailures(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()
	writeInput(t, inputDir, "bad_visit.mp3")
	writeInput(t, inputDir, "good_visit.mp3")

	summary, err := newBatchProcessor().Run(context.Background(), Config{
		InputDir:  inputDir,
		OutputDir: outputDir,
		Parallel:  2,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)

	byName := map[string]FileResult{}
	for _, r := range summary.Results {
		byName[r.Filename] = r
	}
	assert.Equal(t, StatusFailed, byName["bad_visit.mp3"].Status)
	assert.NotEmpty(t, byName["bad_visit.mp3"].Error)
	assert.Equal(t, StatusOK, byName["good_visit.mp3"].Status)

	// The failed file produced no artifact directory.
	_, err = os.Stat(filepath.Join(outputDir, "bad_visit"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunHonorsLimit(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()
	writeInput(t, inputDir, "a.mp3")
	writeInput(t, inputDir, "b.mp3")
	writeInput(t, inputDir, "c.mp3")

	summary, err := newBatchProcessor().Run(context.Background(), Config{
		InputDir:  inputDir,
		OutputDir: outputDir,
		Limit:     2,
	})

	require.NoError(t, err)
	assert.Len(t, summary.Results, 2)
}

func TestRunRejectsEmptyDirectory(t *testing.T) {
	_, err := newBatchProcessor().Run(context.Background(), Config{
		InputDir:  t.TempDir(),
		OutputDir: t.TempDir(),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no .mp3 files")
}

func TestWriteSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.xlsx")
	summary := &Summary{
		Results: []FileResult{
			{Filename: "a.mp3", Status: StatusOK, TranscriptChars: 42},
			{Filename: "b.mp3", Status: StatusFailed, Error: "boom"},
		},
		Succeeded: 1,
		Failed:    1,
	}

	require.NoError(t, WriteSummary(summary, path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
