package services

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/daymade/medscribe/internal/api/v1/dto"
	apperrors "github.com/daymade/medscribe/internal/app/errors"
	"github.com/daymade/medscribe/internal/app/util/files"
	"github.com/daymade/medscribe/internal/config"
)

// Object keys follow audio_uploads/{timestamp}_{filename}; preview URLs
// expire after 15 minutes.
const (
	archivePrefix        = "audio_uploads"
	previewURLExpiry     = 15 * time.Minute
	archiveAudioMIMEType = "audio/mpeg"
)

// MinioArchiveService stores upload copies in an S3-compatible bucket.
type MinioArchiveService struct {
	client *minio.Client
	bucket string
	now    func() time.Time
}

var _ ArchiveService = (*MinioArchiveService)(nil)

// NewMinioArchiveService connects to the configured object store and
// ensures the bucket exists.
func NewMinioArchiveService(ctx context.Context, cfg config.ArchiveConfig) (*MinioArchiveService, error) {
	if !cfg.Enabled() {
		return nil, apperrors.New("archive endpoint and bucket must be configured")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create archive client")
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to check archive bucket")
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, apperrors.Wrap(err, "failed to create archive bucket")
		}
	}

	return &MinioArchiveService{
		client: client,
		bucket: cfg.Bucket,
		now:    time.Now,
	}, nil
}

// ArchiveAudio copies the staged file into the bucket and returns its key.
func (s *MinioArchiveService) ArchiveAudio(ctx context.Context, localPath, originalName string) (string, error) {
	key := archiveKey(s.now(), originalName)

	_, err := s.client.FPutObject(ctx, s.bucket, key, localPath, minio.PutObjectOptions{
		ContentType: archiveAudioMIMEType,
		UserMetadata: map[string]string{
			"original-name": originalName,
		},
	})
	if err != nil {
		return "", apperrors.Wrapf(err, "failed to archive %s", originalName)
	}
	return key, nil
}

// PresignedPreviewURL returns a 15-minute GET URL for an archived object.
func (s *MinioArchiveService) PresignedPreviewURL(ctx context.Context, key string) (*dto.AudioPreview, error) {
	presigned, err := s.client.PresignedGetObject(ctx, s.bucket, key, previewURLExpiry, url.Values{})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to presign preview URL")
	}
	return &dto.AudioPreview{
		URL:       presigned.String(),
		ExpiresAt: s.now().Add(previewURLExpiry),
	}, nil
}

func archiveKey(now time.Time, originalName string) string {
	return fmt.Sprintf("%s/%s_%s", archivePrefix,
		now.Format("20060102_150405"), files.SanitizeFilename(originalName))
}

// MockArchiveService fakes the object store for development and tests.
type MockArchiveService struct {
	now func() time.Time
}

var _ ArchiveService = (*MockArchiveService)(nil)

func NewMockArchiveService() *MockArchiveService {
	return &MockArchiveService{now: time.Now}
}

func (s *MockArchiveService) ArchiveAudio(ctx context.Context, localPath, originalName string) (string, error) {
	return archiveKey(s.now(), originalName), nil
}

func (s *MockArchiveService) PresignedPreviewURL(ctx context.Context, key string) (*dto.AudioPreview, error) {
	return &dto.AudioPreview{
		URL:       fmt.Sprintf("https://mock-archive.invalid/presigned/%s", key),
		ExpiresAt: s.now().Add(previewURLExpiry),
	}, nil
}
