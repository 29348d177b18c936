package dto

import (
	"time"
)

// CreateConsultationForm is the non-file part of the upload form. The file
// itself is read separately from the multipart body.
type CreateConsultationForm struct {
	Provider string `form:"provider" binding:"omitempty,max=64,printascii"`
}

// RunResponse is the summary returned after a processing run completes.
type RunResponse struct {
	RunID          string         `json:"run_id"`
	Provider       string         `json:"provider"`
	SourceFilename string         `json:"source_filename"`
	AudioSeconds   float64        `json:"audio_seconds,omitempty"`
	StartedAt      time.Time      `json:"started_at"`
	CompletedAt    time.Time      `json:"completed_at"`
	Artifacts      []ArtifactMeta `json:"artifacts"`
}

// ArtifactMeta describes one stored artifact without its content.
type ArtifactMeta struct {
	Type           string    `json:"type"`
	SizeChars      int       `json:"size_chars"`
	GeneratedAt    time.Time `json:"generated_at"`
	SourceFilename string    `json:"source_filename"`
}

// ArtifactContent is one artifact with its full text.
type ArtifactContent struct {
	ArtifactMeta
	Content string `json:"content"`
}

// ArtifactDownload carries what the download handler needs to stream an
// attachment. The filename is stamped at download time, not generation
// time.
type ArtifactDownload struct {
	Filename    string
	ContentType string
	Content     string
}

// AudioPreview is a short-lived presigned URL for the archived upload.
type AudioPreview struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}
