package services

import (
	"context"
	"time"

	"github.com/daymade/medscribe/internal/api/v1/dto"
	apperrors "github.com/daymade/medscribe/internal/app/errors"
	"github.com/daymade/medscribe/internal/app/session"
)

// DefaultArtifactService reads artifacts out of the session manager.
type DefaultArtifactService struct {
	sessions *session.Manager
	archive  ArchiveService
}

var _ ArtifactService = (*DefaultArtifactService)(nil)

// NewArtifactService creates the service. archive may be nil.
func NewArtifactService(sessions *session.Manager, archive ArchiveService) *DefaultArtifactService {
	return &DefaultArtifactService{sessions: sessions, archive: archive}
}

// List returns metadata for the session's present artifacts.
func (s *DefaultArtifactService) List(sessionID string) []dto.ArtifactMeta {
	store := s.sessions.GetOrCreate(sessionID)

	artifacts := store.List()
	out := make([]dto.ArtifactMeta, 0, len(artifacts))
	for _, a := range artifacts {
		out = append(out, artifactMeta(a))
	}
	return out
}

// Get returns one artifact with its full content.
func (s *DefaultArtifactService) Get(sessionID, artifactType string) (*dto.ArtifactContent, error) {
	parsed, err := session.ParseArtifactType(artifactType)
	if err != nil {
		return nil, err
	}

	store := s.sessions.GetOrCreate(sessionID)
	artifact, ok := store.Get(parsed)
	if !ok {
		return nil, apperrors.Wrapf(apperrors.ErrArtifactNotFound, "%s", artifactType)
	}

	return &dto.ArtifactContent{
		ArtifactMeta: artifactMeta(artifact),
		Content:      artifact.Content,
	}, nil
}

// Download returns the artifact as an attachment payload. The filename is
// computed from the download moment so repeated downloads get distinct
// names.
func (s *DefaultArtifactService) Download(sessionID, artifactType string, now time.Time) (*dto.ArtifactDownload, error) {
	artifact, err := s.Get(sessionID, artifactType)
	if err != nil {
		return nil, err
	}

	parsed := session.ArtifactType(artifact.Type)
	contentType := "text/markdown; charset=utf-8"
	if parsed == session.ArtifactTranscript {
		contentType = "text/plain; charset=utf-8"
	}

	return &dto.ArtifactDownload{
		Filename:    parsed.DownloadFilename(now),
		ContentType: contentType,
		Content:     artifact.Content,
	}, nil
}

// AudioPreview hands out a presigned URL for the session's archived
// upload, when archiving is on and something was uploaded.
func (s *DefaultArtifactService) AudioPreview(ctx context.Context, sessionID string) (*dto.AudioPreview, error) {
	if s.archive == nil {
		return nil, apperrors.NotFound("audio preview", "archiving disabled")
	}

	store := s.sessions.GetOrCreate(sessionID)
	key := store.AudioObjectKey()
	if key == "" {
		return nil, apperrors.NotFound("audio preview", "no upload archived for this session")
	}

	return s.archive.PresignedPreviewURL(ctx, key)
}

// ResetSession drops the session's store entirely.
func (s *DefaultArtifactService) ResetSession(sessionID string) {
	s.sessions.Reset(sessionID)
}
