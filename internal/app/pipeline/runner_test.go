package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daymade/medscribe/internal/app/api"
	"github.com/daymade/medscribe/internal/app/api/provider"
	apperrors "github.com/daymade/medscribe/internal/app/errors"
	"github.com/daymade/medscribe/internal/app/intake"
	"github.com/daymade/medscribe/internal/app/session"
)

// scriptedProcessor records call order and fails on demand per step.
type scriptedProcessor struct {
	calls []string

	uploadErr     error
	transcribeErr error
	formatErr     error
	summarizeErr  error

	transcript   string
	conversation string
	report       string
}

var _ api.ConsultationProcessor = (*scriptedProcessor)(nil)

func newScriptedProcessor() *scriptedProcessor {
	return &scriptedProcessor{
		transcript:   "Doctor: how are you feeling today? Patient: dizzy since Tuesday.",
		conversation: "**Doctor:** How are you feeling today?\n\n**Patient:** Dizzy since Tuesday.",
		report:       "## Chief Complaint\nDizziness.\n\n## Assessment\nLikely benign positional vertigo.",
	}
}

func (s *scriptedProcessor) Name() string { return "scripted" }

func (s *scriptedProcessor) UploadAudio(ctx context.Context, upload api.AudioUpload) (*api.FileHandle, error) {
	s.calls = append(s.calls, "upload")
	if s.uploadErr != nil {
		return nil, s.uploadErr
	}
	return api.LocalFileHandle("scripted", upload.Path, upload.MIMEType), nil
}

func (s *scriptedProcessor) Transcribe(ctx context.Context, handle *api.FileHandle) (string, error) {
	s.calls = append(s.calls, "transcribe")
	return s.transcript, s.transcribeErr
}

func (s *scriptedProcessor) FormatConversation(ctx context.Context, transcript string) (string, error) {
	s.calls = append(s.calls, "format:"+nonEmptyMark(transcript))
	return s.conversation, s.formatErr
}

func (s *scriptedProcessor) SummarizeReport(ctx context.Context, transcript string) (string, error) {
	s.calls = append(s.calls, "summarize:"+nonEmptyMark(transcript))
	return s.report, s.summarizeErr
}

func nonEmptyMark(transcript string) string {
	if transcript == "" {
		return "empty"
	}
	return "ok"
}

func stagedFixture() *intake.StagedFile {
	return &intake.StagedFile{
		Path:         "/tmp/consult.mp3",
		OriginalName: "consult.mp3",
		SizeBytes:    5 << 20,
		MIMEType:     "audio/mpeg",
	}
}

func newTestRunner() *Runner {
	return NewRunner(NewMetrics(prometheus.NewRegistry()), provider.NewStatsCollector(), nil)
}

func TestRunHappyPath(t *testing.T) {
	processor := newScriptedProcessor()
	store := session.NewStore()

	result, err := newTestRunner().Run(context.Background(), ProcessRequest{
		Processor: processor,
		Staged:    stagedFixture(),
		Store:     store,
	})
	require.NoError(t, err)

	// Step 1 before steps 2 and 3, never with empty transcript input.
	assert.Equal(t, []string{"upload", "transcribe", "format:ok", "summarize:ok"}, processor.calls)

	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, "consult.mp3", result.SourceFilename)
	assert.Len(t, result.Artifacts, 3)

	transcript, ok := store.Get(session.ArtifactTranscript)
	require.True(t, ok)
	assert.NotEmpty(t, transcript.Content)

	conversation, ok := store.Get(session.ArtifactConversation)
	require.True(t, ok)
	assert.Contains(t, conversation.Content, "**Doctor:**")

	report, ok := store.Get(session.ArtifactReport)
	require.True(t, ok)
	assert.Contains(t, report.Content, "## Chief Complaint")

	run, ok := store.Run()
	require.True(t, ok)
	assert.Equal(t, result.RunID, run.RunID)
}

func TestRunTranscribeFailureLeavesStoreEmpty(t *testing.T) {
	processor := newScriptedProcessor()
	processor.transcribeErr = errors.New("deadline exceeded")
	store := session.NewStore()

	// Seed artifacts from a previous successful run.
	prev := newScriptedProcessor()
	_, err := newTestRunner().Run(context.Background(), ProcessRequest{
		Processor: prev, Staged: stagedFixture(), Store: store,
	})
	require.NoError(t, err)
	require.Len(t, store.List(), 3)

	_, err = newTestRunner().Run(context.Background(), ProcessRequest{
		Processor: processor, Staged: stagedFixture(), Store: store,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindTranscription))

	// Step 1 failed: no stale artifact survives, nothing new appears.
	assert.Empty(t, store.List())
	_, ok := store.Run()
	assert.False(t, ok)

	// Steps 2 and 3 were never attempted.
	assert.Equal(t, []string{"upload", "transcribe"}, processor.calls)
}

func TestRunEmptyTranscriptAbortsBeforeSteps2And3(t *testing.T) {
	processor := newScriptedProcessor()
	processor.transcript = ""
	store := session.NewStore()

	_, err := newTestRunner().Run(context.Background(), ProcessRequest{
		Processor: processor, Staged: stagedFixture(), Store: store,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrEmptyTranscript)
	assert.True(t, apperrors.IsKind(err, apperrors.KindTranscription))
	assert.Equal(t, []string{"upload", "transcribe"}, processor.calls)
	assert.Empty(t, store.List())
}

func TestRunFormatFailureKeepsFreshTranscriptOnly(t *testing.T) {
	processor := newScriptedProcessor()
	processor.formatErr = errors.New("rate limited")
	store := session.NewStore()

	_, err := newTestRunner().Run(context.Background(), ProcessRequest{
		Processor: processor, Staged: stagedFixture(), Store: store,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindFormatting))

	// The transcript from this run stays visible; the rest is absent and
	// summarize was never attempted.
	artifacts := store.List()
	require.Len(t, artifacts, 1)
	assert.Equal(t, session.ArtifactTranscript, artifacts[0].Type)
	assert.Equal(t, []string{"upload", "transcribe", "format:ok"}, processor.calls)
}

func TestRunSummarizeFailureKeepsTranscriptAndConversation(t *testing.T) {
	processor := newScriptedProcessor()
	processor.summarizeErr = errors.New("server error")
	store := session.NewStore()

	_, err := newTestRunner().Run(context.Background(), ProcessRequest{
		Processor: processor, Staged: stagedFixture(), Store: store,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindSummarization))

	artifacts := store.List()
	require.Len(t, artifacts, 2)
	assert.Equal(t, session.ArtifactTranscript, artifacts[0].Type)
	assert.Equal(t, session.ArtifactConversation, artifacts[1].Type)
}

func TestRunUploadFailure(t *testing.T) {
	processor := newScriptedProcessor()
	processor.uploadErr = errors.New("connection refused")
	store := session.NewStore()

	_, err := newTestRunner().Run(context.Background(), ProcessRequest{
		Processor: processor, Staged: stagedFixture(), Store: store,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindUpload))
	assert.Equal(t, []string{"upload"}, processor.calls)
	assert.Empty(t, store.List())
}

func TestRerunOverwritesAllArtifacts(t *testing.T) {
	store := session.NewStore()
	runner := newTestRunner()

	first := newScriptedProcessor()
	firstResult, err := runner.Run(context.Background(), ProcessRequest{
		Processor: first, Staged: stagedFixture(), Store: store,
	})
	require.NoError(t, err)

	second := newScriptedProcessor()
	second.transcript = "a completely different consultation"
	second.conversation = "**Nurse:** different"
	second.report = "## Plan\ndifferent"
	secondResult, err := runner.Run(context.Background(), ProcessRequest{
		Processor: second, Staged: stagedFixture(), Store: store,
	})
	require.NoError(t, err)

	assert.NotEqual(t, firstResult.RunID, secondResult.RunID)

	transcript, _ := store.Get(session.ArtifactTranscript)
	assert.Equal(t, "a completely different consultation", transcript.Content)
	conversation, _ := store.Get(session.ArtifactConversation)
	assert.Equal(t, "**Nurse:** different", conversation.Content)
	report, _ := store.Get(session.ArtifactReport)
	assert.Equal(t, "## Plan\ndifferent", report.Content)

	run, ok := store.Run()
	require.True(t, ok)
	assert.Equal(t, secondResult.RunID, run.RunID)
}

func TestRunRecordsStats(t *testing.T) {
	stats := provider.NewStatsCollector()
	runner := NewRunner(NewMetrics(prometheus.NewRegistry()), stats, nil)

	okProcessor := newScriptedProcessor()
	_, err := runner.Run(context.Background(), ProcessRequest{
		Processor: okProcessor, Staged: stagedFixture(), Store: session.NewStore(),
	})
	require.NoError(t, err)

	badProcessor := newScriptedProcessor()
	badProcessor.transcribeErr = errors.New("boom")
	_, err = runner.Run(context.Background(), ProcessRequest{
		Processor: badProcessor, Staged: stagedFixture(), Store: session.NewStore(),
	})
	require.Error(t, err)

	snapshot := stats.ProviderStats("scripted")
	assert.Equal(t, int64(2), snapshot.TotalRuns)
	assert.Equal(t, int64(1), snapshot.SuccessfulRuns)
	assert.Equal(t, int64(1), snapshot.FailuresByStage[StageTranscribe])
}

func TestRunValidatesRequest(t *testing.T) {
	runner := newTestRunner()

	_, err := runner.Run(context.Background(), ProcessRequest{})
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidInput))

	_, err = runner.Run(context.Background(), ProcessRequest{Processor: newScriptedProcessor()})
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidInput))
}
