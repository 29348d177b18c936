package api

import (
	"context"
	"time"
)

// FileHandle is the provider's opaque reference to an uploaded audio file.
// Providers without a file store return a passthrough handle whose URI is
// the staged local path. A handle is valid for one processing run only.
type FileHandle struct {
	ID        string
	URI       string
	MIMEType  string
	Provider  string
	ExpiresAt time.Time
}

// LocalFileHandle builds a passthrough handle for providers that consume the
// staged file directly.
func LocalFileHandle(provider, path, mimeType string) *FileHandle {
	return &FileHandle{
		URI:      path,
		MIMEType: mimeType,
		Provider: provider,
	}
}

// AudioUpload describes one staged audio file to transfer to a provider.
type AudioUpload struct {
	Path         string
	OriginalName string
	MIMEType     string
	SizeBytes    int64
}

// ConsultationProcessor is the contract every external AI provider fulfils:
// one upload plus the three text-producing steps of the processing chain.
// Each call is a single blocking attempt, retries are the caller's business
// and none are performed here.
type ConsultationProcessor interface {
	// Name identifies the provider in errors, logs, and stats.
	Name() string

	// UploadAudio transfers the staged file and returns an opaque handle.
	UploadAudio(ctx context.Context, upload AudioUpload) (*FileHandle, error)

	// Transcribe turns uploaded audio into a raw transcript.
	Transcribe(ctx context.Context, handle *FileHandle) (string, error)

	// FormatConversation rewrites a transcript into speaker-labeled form.
	FormatConversation(ctx context.Context, transcript string) (string, error)

	// SummarizeReport produces the structured medical report.
	SummarizeReport(ctx context.Context, transcript string) (string, error)
}
