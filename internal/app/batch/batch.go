// Package batch runs the processing chain over a directory of MP3 files,
// writing the generated artifacts to disk instead of a session store.
package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/daymade/medscribe/internal/app/api"
	apperrors "github.com/daymade/medscribe/internal/app/errors"
	"github.com/daymade/medscribe/internal/app/intake"
	"github.com/daymade/medscribe/internal/app/pipeline"
	"github.com/daymade/medscribe/internal/app/session"
	"github.com/daymade/medscribe/internal/app/util/files"
)

// Config controls one batch run.
type Config struct {
	InputDir  string
	OutputDir string
	// Limit caps how many files are processed; 0 means all.
	Limit int
	// Parallel is the number of files in flight at once; 0 means 1.
	Parallel int
	Progress ProgressConfig
	// SummaryPath overrides the default xlsx location. Empty writes
	// batch_summary_{timestamp}.xlsx into OutputDir.
	SummaryPath string
}

// FileResult is the outcome for one input file.
type FileResult struct {
	Filename        string
	Status          string
	Error           string
	AudioDuration   time.Duration
	TranscriptChars int
	CompletedAt     time.Time
}

const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Summary aggregates a whole batch run.
type Summary struct {
	Results     []FileResult
	Succeeded   int
	Failed      int
	StartedAt   time.Time
	CompletedAt time.Time
	SummaryPath string
}

// Processor drives the per-file chain for directory runs.
type Processor struct {
	stager    *intake.Stager
	runner    *pipeline.Runner
	processor api.ConsultationProcessor
	logger    *zap.Logger
	now       func() time.Time
}

func NewProcessor(stager *intake.Stager, runner *pipeline.Runner,
	processor api.ConsultationProcessor, logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{
		stager:    stager,
		runner:    runner,
		processor: processor,
		logger:    logger,
		now:       time.Now,
	}
}

// Run processes every MP3 under cfg.InputDir. A failing file is recorded in
// the summary and does not stop the rest of the batch. The returned error
// covers setup problems only (bad directories, no input files).
func (p *Processor) Run(ctx context.Context, cfg Config) (*Summary, error) {
	if p.processor == nil {
		return nil, apperrors.RequiredField("processor")
	}

	inputDir, err := files.GetAbsolutePath(cfg.InputDir)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to resolve input directory")
	}
	fileInfos, err := files.GetAllMP3Files(inputDir)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list input directory")
	}
	if len(fileInfos) == 0 {
		return nil, apperrors.InvalidField("input directory", fmt.Sprintf("no .mp3 files in %s", inputDir))
	}
	if cfg.Limit > 0 && len(fileInfos) > cfg.Limit {
		fileInfos = fileInfos[:cfg.Limit]
	}

	outputDir, err := files.GetAbsolutePath(cfg.OutputDir)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to resolve output directory")
	}
	if err := files.CheckAndCreateDirectory(outputDir); err != nil {
		return nil, apperrors.Wrap(err, "failed to create output directory")
	}

	parallel := cfg.Parallel
	if parallel <= 0 {
		parallel = 1
	}

	manager := NewProgressManager(cfg.Progress)
	defer manager.Shutdown()
	bar := manager.CreateBar(len(fileInfos),
		fmt.Sprintf("Processing (%s)", p.processor.Name()))

	summary := &Summary{StartedAt: p.now()}
	results := make([]FileResult, len(fileInfos))

	var wg sync.WaitGroup
	sem := make(chan struct{}, parallel)
	for i, info := range fileInfos {
		wg.Add(1)
		go func(i int, info files.FileInfo) {
			defer wg.Done()
			defer bar.Increment()

			sem <- struct{}{}
			results[i] = p.processFile(ctx, info, outputDir)
			<-sem
		}(i, info)
	}
	wg.Wait()
	manager.Wait()

	summary.Results = results
	summary.CompletedAt = p.now()
	for _, r := range results {
		if r.Status == StatusOK {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
	}

	summaryPath := cfg.SummaryPath
	if summaryPath == "" {
		summaryPath = filepath.Join(outputDir,
			fmt.Sprintf("batch_summary_%s.xlsx", summary.CompletedAt.Format("20060102_150405")))
	}
	if err := WriteSummary(summary, summaryPath); err != nil {
		p.logger.Warn("failed to write batch summary", zap.Error(err))
	} else {
		summary.SummaryPath = summaryPath
	}

	return summary, nil
}

func (p *Processor) processFile(ctx context.Context, info files.FileInfo, outputDir string) FileResult {
	result := FileResult{Filename: info.Name}

	staged, err := p.stager.StageFromPath(info.FullPath)
	if err != nil {
		return p.failed(result, err)
	}
	defer staged.Cleanup()
	result.AudioDuration = staged.Duration

	// Each file gets a throwaway store so runs never see each other's
	// artifacts.
	store := session.NewStore()
	runResult, err := p.runner.Run(ctx, pipeline.ProcessRequest{
		Processor: p.processor,
		Staged:    staged,
		Store:     store,
	})
	if err != nil {
		return p.failed(result, err)
	}

	fileDir := filepath.Join(outputDir, baseName(info.Name))
	if err := files.CheckAndCreateDirectory(fileDir); err != nil {
		return p.failed(result, err)
	}
	for _, artifact := range runResult.Artifacts {
		name := artifact.Type.DownloadFilename(runResult.CompletedAt)
		if err := files.WriteToFile(artifact.Content, filepath.Join(fileDir, name)); err != nil {
			return p.failed(result, err)
		}
		if artifact.Type == session.ArtifactTranscript {
			result.TranscriptChars = len(artifact.Content)
		}
	}

	result.Status = StatusOK
	result.CompletedAt = runResult.CompletedAt
	p.logger.Info("batch file completed",
		zap.String("file", info.Name),
		zap.Int("transcript_chars", result.TranscriptChars))
	return result
}

func (p *Processor) failed(result FileResult, err error) FileResult {
	result.Status = StatusFailed
	result.Error = err.Error()
	result.CompletedAt = p.now()
	p.logger.Warn("batch file failed",
		zap.String("file", result.Filename),
		zap.Error(err))
	return result
}

func baseName(filename string) string {
	return files.SanitizeFilename(strings.TrimSuffix(filename, filepath.Ext(filename)))
}
