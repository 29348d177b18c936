package openai

import (
	"context"
	"strings"

	openaisdk "github.com/sashabaranov/go-openai"

	"github.com/daymade/medscribe/internal/app/api"
	apperrors "github.com/daymade/medscribe/internal/app/errors"
	"github.com/daymade/medscribe/internal/config"
)

const ProviderName = "openai"

// Processor delegates the chain to the OpenAI API: whisper-1 for the
// transcription step, chat completions for the two text steps. OpenAI has
// no separate audio file store, so UploadAudio is a local passthrough.
type Processor struct {
	client    *openaisdk.Client
	chatModel string
	prompts   config.PromptsConfig
}

var _ api.ConsultationProcessor = (*Processor)(nil)

// New constructs an OpenAI processor. The API key is required; its absence
// is an authentication error naming the environment variable.
func New(apiKey, chatModel string, prompts config.PromptsConfig) (*Processor, error) {
	if apiKey == "" {
		return nil, apperrors.MissingCredential(config.EnvOpenAIAPIKey)
	}

	return &Processor{
		client:    openaisdk.NewClient(apiKey),
		chatModel: chatModel,
		prompts:   prompts,
	}, nil
}

func (p *Processor) Name() string {
	return ProviderName
}

// UploadAudio returns a passthrough handle. The transcription endpoint
// streams the file from disk itself, so there is nothing to transfer here.
func (p *Processor) UploadAudio(ctx context.Context, upload api.AudioUpload) (*api.FileHandle, error) {
	return api.LocalFileHandle(ProviderName, upload.Path, upload.MIMEType), nil
}

// Transcribe runs whisper-1 over the staged file the handle points at.
func (p *Processor) Transcribe(ctx context.Context, handle *api.FileHandle) (string, error) {
	req := openaisdk.AudioRequest{
		Model:    openaisdk.Whisper1,
		FilePath: handle.URI,
		Prompt:   p.prompts.Transcription.SystemInstruction(),
	}

	resp, err := p.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", apperrors.Wrap(err, "createTranscription failed")
	}
	return strings.TrimSpace(resp.Text), nil
}

// FormatConversation runs step 2 as a chat completion.
func (p *Processor) FormatConversation(ctx context.Context, transcript string) (string, error) {
	return p.chat(ctx, p.prompts.Conversation.SystemInstruction(), transcript)
}

// SummarizeReport runs step 3 as a chat completion.
func (p *Processor) SummarizeReport(ctx context.Context, transcript string) (string, error) {
	return p.chat(ctx, p.prompts.Report.SystemInstruction(), transcript)
}

func (p *Processor) chat(ctx context.Context, systemInstruction, userContent string) (string, error) {
	req := openaisdk.ChatCompletionRequest{
		Model: p.chatModel,
		Messages: []openaisdk.ChatCompletionMessage{
			{
				Role:    openaisdk.ChatMessageRoleSystem,
				Content: systemInstruction,
			},
			{
				Role:    openaisdk.ChatMessageRoleUser,
				Content: userContent,
			},
		},
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", apperrors.Wrapf(err, "createChatCompletion failed for model %s", p.chatModel)
	}
	if len(resp.Choices) == 0 {
		return "", apperrors.Newf("model %s returned no choices", p.chatModel)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
