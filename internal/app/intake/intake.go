package intake

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/daymade/medscribe/internal/app/audio"
	apperrors "github.com/daymade/medscribe/internal/app/errors"
	"github.com/daymade/medscribe/internal/app/util/files"
)

const DefaultMaxUploadBytes = 200 << 20 // matches the upload control's limit

// Config controls what the stager accepts.
type Config struct {
	MaxUploadBytes    int64
	AllowedExtensions []string
}

// DefaultConfig accepts MP3 only, up to DefaultMaxUploadBytes.
func DefaultConfig() Config {
	return Config{
		MaxUploadBytes:    DefaultMaxUploadBytes,
		AllowedExtensions: []string{".mp3"},
	}
}

// StagedFile is one uploaded audio file parked in transient local storage.
type StagedFile struct {
	Path         string
	OriginalName string
	SizeBytes    int64
	Duration     time.Duration
	MIMEType     string

	dir string
}

// Cleanup removes the staged copy. Safe to call more than once, and a no-op
// for files referenced in place (StageFromPath).
func (s *StagedFile) Cleanup() error {
	if s.dir == "" {
		return nil
	}
	dir := s.dir
	s.dir = ""
	return os.RemoveAll(dir)
}

// Stager validates and stages incoming audio files.
type Stager struct {
	cfg    Config
	logger *zap.Logger
}

func NewStager(cfg Config, logger *zap.Logger) *Stager {
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if len(cfg.AllowedExtensions) == 0 {
		cfg.AllowedExtensions = []string{".mp3"}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Stager{cfg: cfg, logger: logger}
}

// Stage copies one uploaded file into a scoped temp directory. The caller
// must Cleanup the result on every exit path.
func (st *Stager) Stage(r io.Reader, originalName string) (*StagedFile, error) {
	if err := st.validateName(originalName); err != nil {
		return nil, err
	}

	dir, err := os.MkdirTemp("", "medscribe-intake-")
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create staging directory")
	}

	staged := &StagedFile{
		OriginalName: originalName,
		MIMEType:     "audio/mpeg",
		dir:          dir,
	}
	staged.Path = filepath.Join(dir, stagedName(originalName))

	out, err := os.Create(staged.Path)
	if err != nil {
		staged.Cleanup()
		return nil, apperrors.Wrap(err, "failed to create staged file")
	}

	written, err := io.Copy(out, io.LimitReader(r, st.cfg.MaxUploadBytes+1))
	closeErr := out.Close()
	if err != nil {
		staged.Cleanup()
		return nil, apperrors.Wrap(err, "failed to write staged file")
	}
	if closeErr != nil {
		staged.Cleanup()
		return nil, apperrors.Wrap(closeErr, "failed to write staged file")
	}
	if written > st.cfg.MaxUploadBytes {
		staged.Cleanup()
		return nil, apperrors.Wrapf(apperrors.ErrFileTooLarge,
			"%s is larger than the %d byte limit", originalName, st.cfg.MaxUploadBytes)
	}
	staged.SizeBytes = written

	st.probeDuration(staged)
	st.logger.Info("staged audio file",
		zap.String("file", originalName),
		zap.Int64("bytes", staged.SizeBytes),
		zap.Duration("duration", staged.Duration))

	return staged, nil
}

// StageFromPath validates an on-disk file and references it in place, for
// CLI runs where the input already lives on the local filesystem. Cleanup
// never deletes the caller's file.
func (st *Stager) StageFromPath(path string) (*StagedFile, error) {
	if err := st.validateName(path); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrapf(apperrors.ErrFileNotFound, "%s", path)
		}
		return nil, apperrors.Wrap(err, "failed to stat input file")
	}
	if info.IsDir() {
		return nil, apperrors.InvalidField("input", fmt.Sprintf("%s is a directory", path))
	}
	if info.Size() > st.cfg.MaxUploadBytes {
		return nil, apperrors.Wrapf(apperrors.ErrFileTooLarge,
			"%s is larger than the %d byte limit", filepath.Base(path), st.cfg.MaxUploadBytes)
	}

	staged := &StagedFile{
		Path:         path,
		OriginalName: filepath.Base(path),
		SizeBytes:    info.Size(),
		MIMEType:     "audio/mpeg",
	}
	st.probeDuration(staged)

	return staged, nil
}

func (st *Stager) validateName(name string) error {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return apperrors.Wrapf(apperrors.ErrUnsupportedFormat,
			"%s has no extension (accepted: %s)", filepath.Base(name), strings.Join(st.cfg.AllowedExtensions, ", "))
	}
	if !lo.Contains(st.cfg.AllowedExtensions, ext) {
		return apperrors.Wrapf(apperrors.ErrUnsupportedFormat,
			"%s is not accepted (accepted: %s)", ext, strings.Join(st.cfg.AllowedExtensions, ", "))
	}
	return nil
}

func (st *Stager) probeDuration(staged *StagedFile) {
	duration, err := audio.GetAudioDuration(staged.Path)
	if err != nil {
		// Duration is display metadata only, the chain does not need it.
		st.logger.Debug("duration probe failed",
			zap.String("file", staged.OriginalName),
			zap.Error(err))
		return
	}
	staged.Duration = duration
}

func stagedName(originalName string) string {
	return fmt.Sprintf("%s_%s", uuid.New().String()[:8], files.SanitizeFilename(originalName))
}
