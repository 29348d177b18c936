package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daymade/medscribe/internal/app/api"
	apperrors "github.com/daymade/medscribe/internal/app/errors"
)

type fakeProcessor struct {
	name string
}

var _ api.ConsultationProcessor = (*fakeProcessor)(nil)

func (f *fakeProcessor) Name() string { return f.name }

func (f *fakeProcessor) UploadAudio(ctx context.Context, upload api.AudioUpload) (*api.FileHandle, error) {
	return api.LocalFileHandle(f.name, upload.Path, upload.MIMEType), nil
}

func (f *fakeProcessor) Transcribe(ctx context.Context, handle *api.FileHandle) (string, error) {
	return "fake transcript", nil
}

func (f *fakeProcessor) FormatConversation(ctx context.Context, transcript string) (string, error) {
	return "**Doctor:** " + transcript, nil
}

func (f *fakeProcessor) SummarizeReport(ctx context.Context, transcript string) (string, error) {
	return "## Assessment\n" + transcript, nil
}

func TestRegistryFirstRegisteredBecomesDefault(t *testing.T) {
	registry := NewRegistry()

	require.NoError(t, registry.Register(&fakeProcessor{name: "gemini"}))
	require.NoError(t, registry.Register(&fakeProcessor{name: "openai"}))

	def, err := registry.Default()
	require.NoError(t, err)
	assert.Equal(t, "gemini", def.Name())
	assert.Equal(t, "gemini", registry.DefaultName())
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()

	require.NoError(t, registry.Register(&fakeProcessor{name: "gemini"}))
	err := registry.Register(&fakeProcessor{name: "gemini"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegistryGetUnknownProvider(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Get("nope")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrProviderNotFound)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestRegistrySetDefault(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(&fakeProcessor{name: "gemini"}))
	require.NoError(t, registry.Register(&fakeProcessor{name: "openai"}))

	require.NoError(t, registry.SetDefault("openai"))

	def, err := registry.Default()
	require.NoError(t, err)
	assert.Equal(t, "openai", def.Name())

	assert.Error(t, registry.SetDefault("nope"))
}

func TestRegistryResolve(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(&fakeProcessor{name: "gemini"}))

	byName, err := registry.Resolve("gemini")
	require.NoError(t, err)
	assert.Equal(t, "gemini", byName.Name())

	byDefault, err := registry.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "gemini", byDefault.Name())

	_, err = registry.Resolve("openai")
	assert.Error(t, err)
}

func TestRegistryListSorted(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(&fakeProcessor{name: "openai"}))
	require.NoError(t, registry.Register(&fakeProcessor{name: "gemini"}))

	assert.Equal(t, []string{"gemini", "openai"}, registry.List())
}

func TestCreatorRegistry(t *testing.T) {
	RegisterProvider("fake-for-test", func(cfg Config) (api.ConsultationProcessor, error) {
		if cfg.APIKey == "" {
			return nil, apperrors.MissingCredential("FAKE_API_KEY")
		}
		return &fakeProcessor{name: "fake-for-test"}, nil
	})

	creator, err := GetCreator("fake-for-test")
	require.NoError(t, err)

	_, err = creator(Config{})
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthentication))

	p, err := creator(Config{APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, "fake-for-test", p.Name())

	assert.Contains(t, RegisteredTypes(), "fake-for-test")

	_, err = GetCreator("never-registered")
	assert.Error(t, err)
}
