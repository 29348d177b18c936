package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/daymade/medscribe/internal/api/v1/dto"
	"github.com/daymade/medscribe/internal/app/api/provider"
	"github.com/daymade/medscribe/internal/app/intake"
	"github.com/daymade/medscribe/internal/app/pipeline"
	"github.com/daymade/medscribe/internal/app/session"
)

// DefaultConsultationService wires intake, provider selection, and the
// chain runner together for one request.
type DefaultConsultationService struct {
	stager   *intake.Stager
	registry *provider.Registry
	runner   *pipeline.Runner
	sessions *session.Manager
	archive  ArchiveService
	logger   *zap.Logger
}

var _ ConsultationService = (*DefaultConsultationService)(nil)

// NewConsultationService creates the service. archive may be nil when
// archiving is not configured.
func NewConsultationService(
	stager *intake.Stager,
	registry *provider.Registry,
	runner *pipeline.Runner,
	sessions *session.Manager,
	archive ArchiveService,
	logger *zap.Logger,
) *DefaultConsultationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultConsultationService{
		stager:   stager,
		registry: registry,
		runner:   runner,
		sessions: sessions,
		archive:  archive,
		logger:   logger,
	}
}

// Process stages the upload and runs the chain synchronously. The staged
// copy is removed on every exit path; the session store keeps whatever
// artifacts the run managed to produce.
func (s *DefaultConsultationService) Process(ctx context.Context, sessionID string, upload ConsultationUpload) (*dto.RunResponse, error) {
	store := s.sessions.GetOrCreate(sessionID)

	staged, err := s.stager.Stage(upload.Reader, upload.Filename)
	if err != nil {
		return nil, err
	}
	defer staged.Cleanup()

	processor, err := s.registry.Resolve(upload.Provider)
	if err != nil {
		return nil, err
	}

	// Archiving is best effort: a dead object store must not block the
	// consultation from being processed.
	if s.archive != nil {
		if key, archiveErr := s.archive.ArchiveAudio(ctx, staged.Path, staged.OriginalName); archiveErr != nil {
			s.logger.Warn("audio archive failed",
				zap.String("file", staged.OriginalName), zap.Error(archiveErr))
		} else {
			store.SetAudioObjectKey(key)
		}
	}

	result, err := s.runner.Run(ctx, pipeline.ProcessRequest{
		Processor: processor,
		Staged:    staged,
		Store:     store,
	})
	if err != nil {
		return nil, err
	}

	return runResponse(result), nil
}

func runResponse(result *pipeline.Result) *dto.RunResponse {
	resp := &dto.RunResponse{
		RunID:          result.RunID,
		Provider:       result.Provider,
		SourceFilename: result.SourceFilename,
		AudioSeconds:   result.AudioDuration.Seconds(),
		StartedAt:      result.StartedAt,
		CompletedAt:    result.CompletedAt,
		Artifacts:      make([]dto.ArtifactMeta, 0, len(result.Artifacts)),
	}
	for _, a := range result.Artifacts {
		resp.Artifacts = append(resp.Artifacts, artifactMeta(a))
	}
	return resp
}

func artifactMeta(a session.Artifact) dto.ArtifactMeta {
	return dto.ArtifactMeta{
		Type:           string(a.Type),
		SizeChars:      len(a.Content),
		GeneratedAt:    a.GeneratedAt,
		SourceFilename: a.SourceFilename,
	}
}
