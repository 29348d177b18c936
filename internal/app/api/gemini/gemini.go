package gemini

import (
	"context"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/daymade/medscribe/internal/app/api"
	apperrors "github.com/daymade/medscribe/internal/app/errors"
	"github.com/daymade/medscribe/internal/config"
)

const ProviderName = "gemini"

// Bounds for waiting on the Files API to finish ingesting an upload. The
// file must be ACTIVE before it can be referenced in a generation request.
const (
	activePollInterval = 2 * time.Second
	activePollAttempts = 30
)

// Processor delegates all three chain steps to the Gemini API. Audio goes
// through the Files API first; text steps send the transcript inline.
type Processor struct {
	client  *genai.Client
	model   string
	prompts config.PromptsConfig
}

var _ api.ConsultationProcessor = (*Processor)(nil)

// New constructs a Gemini processor. The API key is required; its absence
// is an authentication error naming the environment variable.
func New(ctx context.Context, apiKey, model string, prompts config.PromptsConfig) (*Processor, error) {
	if apiKey == "" {
		return nil, apperrors.MissingCredential(config.EnvGeminiAPIKey)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create gemini client")
	}

	return &Processor{
		client:  client,
		model:   model,
		prompts: prompts,
	}, nil
}

func (p *Processor) Name() string {
	return ProviderName
}

// UploadAudio pushes the staged file to the Files API and waits until the
// handle is ACTIVE. A handle that ends up FAILED is an upload failure even
// though the transfer itself succeeded.
func (p *Processor) UploadAudio(ctx context.Context, upload api.AudioUpload) (*api.FileHandle, error) {
	file, err := p.client.Files.UploadFromPath(ctx, upload.Path, &genai.UploadFileConfig{
		MIMEType:    upload.MIMEType,
		DisplayName: upload.OriginalName,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "files api upload failed")
	}

	file, err = p.waitUntilActive(ctx, file)
	if err != nil {
		return nil, err
	}

	return &api.FileHandle{
		ID:        file.Name,
		URI:       file.URI,
		MIMEType:  file.MIMEType,
		Provider:  ProviderName,
		ExpiresAt: file.ExpirationTime,
	}, nil
}

func (p *Processor) waitUntilActive(ctx context.Context, file *genai.File) (*genai.File, error) {
	for attempt := 0; attempt < activePollAttempts; attempt++ {
		switch file.State {
		case genai.FileStateActive:
			return file, nil
		case genai.FileStateFailed:
			return nil, apperrors.Newf("files api rejected %s during processing", file.Name)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(activePollInterval):
		}

		var err error
		file, err = p.client.Files.Get(ctx, file.Name, nil)
		if err != nil {
			return nil, apperrors.Wrap(err, "files api state check failed")
		}
	}
	return nil, apperrors.Newf("file %s not active after %s",
		file.Name, time.Duration(activePollAttempts)*activePollInterval)
}

// Transcribe runs step 1 against the uploaded audio handle.
func (p *Processor) Transcribe(ctx context.Context, handle *api.FileHandle) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromURI(handle.URI, handle.MIMEType),
		genai.NewPartFromText("Transcribe this consultation recording."),
	}
	return p.generate(ctx, p.prompts.Transcription.SystemInstruction(), parts)
}

// FormatConversation runs step 2 over the transcript text.
func (p *Processor) FormatConversation(ctx context.Context, transcript string) (string, error) {
	parts := []*genai.Part{genai.NewPartFromText(transcript)}
	return p.generate(ctx, p.prompts.Conversation.SystemInstruction(), parts)
}

// SummarizeReport runs step 3 over the transcript text.
func (p *Processor) SummarizeReport(ctx context.Context, transcript string) (string, error) {
	parts := []*genai.Part{genai.NewPartFromText(transcript)}
	return p.generate(ctx, p.prompts.Report.SystemInstruction(), parts)
}

func (p *Processor) generate(ctx context.Context, systemInstruction string, parts []*genai.Part) (string, error) {
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	})
	if err != nil {
		return "", apperrors.Wrapf(err, "generate content failed for model %s", p.model)
	}

	return strings.TrimSpace(resp.Text()), nil
}
