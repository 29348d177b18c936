package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daymade/medscribe/internal/app/api/provider"
	apperrors "github.com/daymade/medscribe/internal/app/errors"
	"github.com/daymade/medscribe/internal/app/intake"
	"github.com/daymade/medscribe/internal/app/pipeline"
	"github.com/daymade/medscribe/internal/app/session"
	"github.com/daymade/medscribe/internal/app/testutil"
)

func newService(t *testing.T, mock *testutil.MockConsultationProcessor) (*DefaultConsultationService, *session.Manager) {
	t.Helper()

	registry := provider.NewRegistry()
	require.NoError(t, registry.Register(mock))

	sessions := session.NewManager(session.DefaultMaxIdle)
	svc := NewConsultationService(
		intake.NewStager(intake.DefaultConfig(), nil),
		registry,
		pipeline.NewRunner(nil, nil, nil),
		sessions,
		NewMockArchiveService(),
		nil,
	)
	return svc, sessions
}

func upload(name string) ConsultationUpload {
	return ConsultationUpload{
		Reader:   bytes.NewReader([]byte("fake mp3 bytes")),
		Filename: name,
	}
}

func TestProcessRunsFullChain(t *testing.T) {
	mock := testutil.NewMockProcessor()
	svc, sessions := newService(t, mock)

	resp, err := svc.Process(context.Background(), "session-a", upload("consult.mp3"))

	require.NoError(t, err)
	assert.Equal(t, "mock", resp.Provider)
	assert.Equal(t, "consult.mp3", resp.SourceFilename)
	assert.Equal(t, []string{"upload", "transcribe", "format", "summarize"}, mock.Stages())
	require.Len(t, resp.Artifacts, 3)

	// The artifacts landed in this session's store with the mock content.
	store := sessions.GetOrCreate("session-a")
	report, ok := store.Get(session.ArtifactReport)
	require.True(t, ok)
	assert.Contains(t, report.Content, "## Chief Complaint")
	conversation, ok := store.Get(session.ArtifactConversation)
	require.True(t, ok)
	assert.True(t, strings.Contains(conversation.Content, "**Doctor:**"))

	// Archiving recorded the object key for previews.
	assert.NotEmpty(t, store.AudioObjectKey())
}

func TestProcessStepFailureKeepsEarlierArtifacts(t *testing.T) {
	mock := testutil.NewMockProcessor().WithError("summarize", assert.AnError)
	svc, sessions := newService(t, mock)

	_, err := svc.Process(context.Background(), "session-b", upload("consult.mp3"))

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindSummarization))

	store := sessions.GetOrCreate("session-b")
	_, ok := store.Get(session.ArtifactTranscript)
	assert.True(t, ok)
	_, ok = store.Get(session.ArtifactConversation)
	assert.True(t, ok)
	_, ok = store.Get(session.ArtifactReport)
	assert.False(t, ok)
}

func TestProcessRejectsUnknownProvider(t *testing.T) {
	svc, _ := newService(t, testutil.NewMockProcessor())

	up := upload("consult.mp3")
	up.Provider = "nonexistent"
	_, err := svc.Process(context.Background(), "session-c", up)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrProviderNotFound)
}

func TestProcessRejectsWrongExtension(t *testing.T) {
	mock := testutil.NewMockProcessor()
	svc, _ := newService(t, mock)

	_, err := svc.Process(context.Background(), "session-d", upload("consult.wav"))

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedFormat)
	assert.Empty(t, mock.Stages())
}
