// Package testutil provides shared test doubles and fixtures for the
// processing chain.
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/daymade/medscribe/internal/app/api"
)

// StageCall records one call into the mock for assertion.
type StageCall struct {
	Stage     string
	Input     string
	Timestamp time.Time
}

// MockConsultationProcessor is a configurable in-memory implementation of
// the api.ConsultationProcessor interface. Each stage can be given a canned
// response, an error, or an artificial latency.
type MockConsultationProcessor struct {
	mu sync.RWMutex

	ProviderName string

	TranscriptResponse   string
	ConversationResponse string
	ReportResponse       string

	UploadErr     error
	TranscribeErr error
	FormatErr     error
	SummarizeErr  error

	Latency time.Duration

	CallHistory []StageCall
}

var _ api.ConsultationProcessor = (*MockConsultationProcessor)(nil)

// NewMockProcessor creates a mock with plausible consultation content.
func NewMockProcessor() *MockConsultationProcessor {
	return &MockConsultationProcessor{
		ProviderName:         "mock",
		TranscriptResponse:   SampleTranscript,
		ConversationResponse: SampleConversation,
		ReportResponse:       SampleReport,
	}
}

// WithTranscript overrides the transcription result.
func (m *MockConsultationProcessor) WithTranscript(s string) *MockConsultationProcessor {
	m.TranscriptResponse = s
	return m
}

// WithError injects an error into one stage: "upload", "transcribe",
// "format", or "summarize".
func (m *MockConsultationProcessor) WithError(stage string, err error) *MockConsultationProcessor {
	switch stage {
	case "upload":
		m.UploadErr = err
	case "transcribe":
		m.TranscribeErr = err
	case "format":
		m.FormatErr = err
	case "summarize":
		m.SummarizeErr = err
	}
	return m
}

// WithLatency makes every stage sleep before answering.
func (m *MockConsultationProcessor) WithLatency(d time.Duration) *MockConsultationProcessor {
	m.Latency = d
	return m
}

func (m *MockConsultationProcessor) Name() string {
	return m.ProviderName
}

func (m *MockConsultationProcessor) UploadAudio(ctx context.Context, upload api.AudioUpload) (*api.FileHandle, error) {
	if err := m.stage(ctx, "upload", upload.OriginalName, m.UploadErr); err != nil {
		return nil, err
	}
	return api.LocalFileHandle(m.ProviderName, upload.Path, upload.MIMEType), nil
}

func (m *MockConsultationProcessor) Transcribe(ctx context.Context, handle *api.FileHandle) (string, error) {
	if err := m.stage(ctx, "transcribe", handle.URI, m.TranscribeErr); err != nil {
		return "", err
	}
	return m.TranscriptResponse, nil
}

func (m *MockConsultationProcessor) FormatConversation(ctx context.Context, transcript string) (string, error) {
	if err := m.stage(ctx, "format", transcript, m.FormatErr); err != nil {
		return "", err
	}
	return m.ConversationResponse, nil
}

func (m *MockConsultationProcessor) SummarizeReport(ctx context.Context, transcript string) (string, error) {
	if err := m.stage(ctx, "summarize", transcript, m.SummarizeErr); err != nil {
		return "", err
	}
	return m.ReportResponse, nil
}

// Calls returns a copy of the call history.
func (m *MockConsultationProcessor) Calls() []StageCall {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]StageCall, len(m.CallHistory))
	copy(out, m.CallHistory)
	return out
}

// Stages returns just the stage names, in call order.
func (m *MockConsultationProcessor) Stages() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.CallHistory))
	for _, c := range m.CallHistory {
		out = append(out, c.Stage)
	}
	return out
}

func (m *MockConsultationProcessor) stage(ctx context.Context, stage, input string, err error) error {
	m.mu.Lock()
	m.CallHistory = append(m.CallHistory, StageCall{
		Stage:     stage,
		Input:     input,
		Timestamp: time.Now(),
	})
	latency := m.Latency
	m.mu.Unlock()

	if latency > 0 {
		select {
		case <-time.After(latency):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}
