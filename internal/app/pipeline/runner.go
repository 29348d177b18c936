package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/daymade/medscribe/internal/app/api"
	"github.com/daymade/medscribe/internal/app/api/provider"
	apperrors "github.com/daymade/medscribe/internal/app/errors"
	"github.com/daymade/medscribe/internal/app/intake"
	"github.com/daymade/medscribe/internal/app/session"
)

// ProcessRequest is one staged file to run through the chain into one
// session store.
type ProcessRequest struct {
	Processor api.ConsultationProcessor
	Staged    *intake.StagedFile
	Store     *session.Store
}

// Result summarizes a completed run.
type Result struct {
	RunID          string
	Provider       string
	SourceFilename string
	AudioDuration  time.Duration
	Artifacts      []session.Artifact
	StartedAt      time.Time
	CompletedAt    time.Time
}

// Runner executes the three-step chain strictly in order: upload, then
// transcribe, then format, then summarize. Each step is one blocking
// attempt; a failure aborts the rest of the run but keeps the artifacts
// the run already produced.
type Runner struct {
	metrics *Metrics
	stats   *provider.StatsCollector
	logger  *zap.Logger
	now     func() time.Time
}

// NewRunner builds a runner. metrics and stats may be nil in tests.
func NewRunner(metrics *Metrics, stats *provider.StatsCollector, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		metrics: metrics,
		stats:   stats,
		logger:  logger,
		now:     time.Now,
	}
}

// Run executes one processing run. The store is invalidated up front so a
// failed run never leaves artifacts from a previous run behind.
func (r *Runner) Run(ctx context.Context, req ProcessRequest) (*Result, error) {
	if req.Processor == nil {
		return nil, apperrors.RequiredField("processor")
	}
	if req.Staged == nil {
		return nil, apperrors.RequiredField("staged file")
	}
	if req.Store == nil {
		return nil, apperrors.RequiredField("session store")
	}

	providerName := req.Processor.Name()
	runID := uuid.New().String()
	startedAt := r.now()
	logger := r.logger.With(
		zap.String("run_id", runID),
		zap.String("provider", providerName),
		zap.String("file", req.Staged.OriginalName),
	)

	req.Store.Invalidate()

	handle, err := r.upload(ctx, req, logger)
	if err != nil {
		return nil, r.fail(providerName, StageUpload, apperrors.UploadFailed(providerName, err))
	}

	transcript, err := r.timedStep(ctx, StageTranscribe, logger, func(ctx context.Context) (string, error) {
		return req.Processor.Transcribe(ctx, handle)
	})
	if err != nil {
		return nil, r.fail(providerName, StageTranscribe, apperrors.TranscriptionFailed(providerName, err))
	}
	if transcript == "" {
		return nil, r.fail(providerName, StageTranscribe,
			apperrors.Wrap(apperrors.ErrEmptyTranscript, req.Staged.OriginalName))
	}
	r.putArtifact(req, session.ArtifactTranscript, transcript)

	conversation, err := r.timedStep(ctx, StageFormat, logger, func(ctx context.Context) (string, error) {
		return req.Processor.FormatConversation(ctx, transcript)
	})
	if err != nil {
		return nil, r.fail(providerName, StageFormat, apperrors.FormattingFailed(providerName, err))
	}
	r.putArtifact(req, session.ArtifactConversation, conversation)

	report, err := r.timedStep(ctx, StageSummarize, logger, func(ctx context.Context) (string, error) {
		return req.Processor.SummarizeReport(ctx, transcript)
	})
	if err != nil {
		return nil, r.fail(providerName, StageSummarize, apperrors.SummarizationFailed(providerName, err))
	}
	r.putArtifact(req, session.ArtifactReport, report)

	completedAt := r.now()
	req.Store.SetRun(session.RunInfo{
		RunID:          runID,
		SourceFilename: req.Staged.OriginalName,
		Provider:       providerName,
		AudioDuration:  req.Staged.Duration,
		StartedAt:      startedAt,
		CompletedAt:    completedAt,
	})

	if r.stats != nil {
		r.stats.RecordSuccess(providerName, completedAt.Sub(startedAt))
	}
	if r.metrics != nil {
		r.metrics.RunsTotal.WithLabelValues("success").Inc()
	}
	logger.Info("processing run completed",
		zap.Duration("elapsed", completedAt.Sub(startedAt)))

	return &Result{
		RunID:          runID,
		Provider:       providerName,
		SourceFilename: req.Staged.OriginalName,
		AudioDuration:  req.Staged.Duration,
		Artifacts:      req.Store.List(),
		StartedAt:      startedAt,
		CompletedAt:    completedAt,
	}, nil
}

func (r *Runner) upload(ctx context.Context, req ProcessRequest, logger *zap.Logger) (*api.FileHandle, error) {
	start := r.now()
	logger.Info("uploading audio", zap.Int64("bytes", req.Staged.SizeBytes))

	handle, err := req.Processor.UploadAudio(ctx, api.AudioUpload{
		Path:         req.Staged.Path,
		OriginalName: req.Staged.OriginalName,
		MIMEType:     req.Staged.MIMEType,
		SizeBytes:    req.Staged.SizeBytes,
	})
	if err != nil {
		return nil, err
	}

	if r.metrics != nil {
		r.metrics.StageDuration.WithLabelValues(StageUpload).Observe(r.now().Sub(start).Seconds())
		r.metrics.UploadBytes.Observe(float64(req.Staged.SizeBytes))
	}
	return handle, nil
}

func (r *Runner) timedStep(ctx context.Context, stage string, logger *zap.Logger,
	step func(ctx context.Context) (string, error)) (string, error) {

	start := r.now()
	logger.Info("stage started", zap.String("stage", stage))

	out, err := step(ctx)
	elapsed := r.now().Sub(start)

	if r.metrics != nil {
		r.metrics.StageDuration.WithLabelValues(stage).Observe(elapsed.Seconds())
	}
	if err != nil {
		logger.Warn("stage failed", zap.String("stage", stage),
			zap.Duration("elapsed", elapsed), zap.Error(err))
		return "", err
	}

	logger.Info("stage completed", zap.String("stage", stage),
		zap.Duration("elapsed", elapsed), zap.Int("chars", len(out)))
	return out, nil
}

func (r *Runner) fail(providerName, stage string, err error) error {
	if r.stats != nil {
		r.stats.RecordFailure(providerName, stage)
	}
	if r.metrics != nil {
		r.metrics.StageFailures.WithLabelValues(stage).Inc()
		r.metrics.RunsTotal.WithLabelValues("failure").Inc()
	}
	return err
}

func (r *Runner) putArtifact(req ProcessRequest, artifactType session.ArtifactType, content string) {
	req.Store.Put(session.Artifact{
		Type:           artifactType,
		Content:        content,
		GeneratedAt:    r.now(),
		SourceFilename: req.Staged.OriginalName,
	})
}
