package services

import (
	"context"
	"io"
	"time"

	"github.com/daymade/medscribe/internal/api/v1/dto"
	"github.com/daymade/medscribe/internal/app/api/provider"
)

// ConsultationUpload is one incoming audio file plus its options.
type ConsultationUpload struct {
	Reader   io.Reader
	Filename string
	Provider string
}

// ConsultationService runs the processing chain for a session.
type ConsultationService interface {
	Process(ctx context.Context, sessionID string, upload ConsultationUpload) (*dto.RunResponse, error)
}

// ArtifactService reads and resets the session's stored artifacts.
type ArtifactService interface {
	List(sessionID string) []dto.ArtifactMeta
	Get(sessionID, artifactType string) (*dto.ArtifactContent, error)
	Download(sessionID, artifactType string, now time.Time) (*dto.ArtifactDownload, error)
	AudioPreview(ctx context.Context, sessionID string) (*dto.AudioPreview, error)
	ResetSession(sessionID string)
}

// ProviderService exposes the registered providers.
type ProviderService interface {
	List() dto.ProvidersResponse
}

// StatsService exposes the in-memory run statistics.
type StatsService interface {
	Overall() provider.OverallStats
}

// ArchiveService keeps an optional object-storage copy of uploads and
// hands out short-lived preview URLs.
type ArchiveService interface {
	ArchiveAudio(ctx context.Context, localPath, originalName string) (key string, err error)
	PresignedPreviewURL(ctx context.Context, key string) (*dto.AudioPreview, error)
}
