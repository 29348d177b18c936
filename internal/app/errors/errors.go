package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies an error by the processing stage or concern it belongs to.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidInput
	KindAuthentication
	KindUpload
	KindTranscription
	KindFormatting
	KindSummarization
	KindNotFound
)

// String returns the canonical name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindAuthentication:
		return "authentication"
	case KindUpload:
		return "upload"
	case KindTranscription:
		return "transcription"
	case KindFormatting:
		return "formatting"
	case KindSummarization:
		return "summarization"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Stage returns the pipeline stage a kind corresponds to, or "" for kinds
// that are not tied to a chain step.
func (k Kind) Stage() string {
	switch k {
	case KindUpload:
		return "upload"
	case KindTranscription:
		return "transcribe"
	case KindFormatting:
		return "format"
	case KindSummarization:
		return "summarize"
	default:
		return ""
	}
}

// Common error values
var (
	// Configuration errors
	ErrMissingAPIKey = NewKind(KindAuthentication, "API key is required")
	ErrInvalidAPIKey = NewKind(KindAuthentication, "invalid API key format")
	ErrMissingConfig = New("configuration is required")
	ErrInvalidConfig = New("invalid configuration")

	// Provider errors
	ErrProviderNotFound = NewKind(KindNotFound, "provider not found")
	ErrEmptyTranscript  = NewKind(KindTranscription, "provider returned empty transcript")

	// File errors
	ErrFileNotFound      = NewKind(KindInvalidInput, "file not found")
	ErrUnsupportedFormat = NewKind(KindInvalidInput, "unsupported audio format")
	ErrFileTooLarge      = NewKind(KindInvalidInput, "file exceeds size limit")

	// Artifact errors
	ErrArtifactNotFound = NewKind(KindNotFound, "artifact not found")
)

// Error represents a standardized error
type Error struct {
	kind     Kind
	provider string
	message  string
	cause    error
}

// New creates a new internal error
func New(message string) *Error {
	return &Error{message: message}
}

// Newf creates a new formatted internal error
func Newf(format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...)}
}

// NewKind creates a new error of the given kind
func NewKind(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message}
}

// NewKindf creates a new formatted error of the given kind
func NewKindf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{kind: kind, message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		kind:    KindOf(err),
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{
		kind:    KindOf(err),
		message: fmt.Sprintf(format, args...),
		cause:   err,
	}
}

// WrapKind wraps an error, stamping it with the given kind
func WrapKind(kind Kind, err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		kind:    kind,
		message: message,
		cause:   err,
	}
}

// WithProvider returns a copy of the error annotated with the provider name
func (e *Error) WithProvider(provider string) *Error {
	clone := *e
	clone.provider = provider
	return &clone
}

// Kind returns the error's kind
func (e *Error) Kind() Kind {
	return e.kind
}

// Provider returns the provider the error originated from, if any
func (e *Error) Provider() string {
	return e.provider
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := e.message
	if e.provider != "" {
		msg = fmt.Sprintf("%s: %s", e.provider, msg)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.kind == t.kind && e.message == t.message
}

// KindOf extracts the kind from any error; non-Error values map to KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.kind
	}
	return KindInternal
}

// IsKind reports whether the error carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Helper functions for common patterns

// RequiredField returns an error for missing required fields
func RequiredField(field string) error {
	return NewKindf(KindInvalidInput, "%s is required", field)
}

// InvalidField returns an error for invalid field values
func InvalidField(field string, reason string) error {
	return NewKindf(KindInvalidInput, "%s is invalid: %s", field, reason)
}

// NotFound returns an error for items that were not found
func NotFound(itemType string, identifier string) error {
	return NewKindf(KindNotFound, "%s not found: %s", itemType, identifier)
}

// MissingCredential returns an authentication error naming the missing
// environment variable.
func MissingCredential(envVar string) error {
	return NewKindf(KindAuthentication, "%s is not set", envVar)
}

// UploadFailed wraps a provider upload failure.
func UploadFailed(provider string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{kind: KindUpload, provider: provider, message: "audio upload failed", cause: err}
}

// TranscriptionFailed wraps a step 1 failure.
func TranscriptionFailed(provider string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{kind: KindTranscription, provider: provider, message: "transcription failed", cause: err}
}

// FormattingFailed wraps a step 2 failure.
func FormattingFailed(provider string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{kind: KindFormatting, provider: provider, message: "conversation formatting failed", cause: err}
}

// SummarizationFailed wraps a step 3 failure.
func SummarizationFailed(provider string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{kind: KindSummarization, provider: provider, message: "report summarization failed", cause: err}
}
