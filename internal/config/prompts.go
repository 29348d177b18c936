package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// PromptSpec describes one chain step's instructions for the model.
type PromptSpec struct {
	Description  string   `yaml:"description"`
	Instructions []string `yaml:"instructions"`
}

// SystemInstruction renders the description and instructions into a single
// system prompt.
func (p PromptSpec) SystemInstruction() string {
	var b strings.Builder
	b.WriteString(p.Description)
	for _, inst := range p.Instructions {
		b.WriteString("\n- ")
		b.WriteString(inst)
	}
	return b.String()
}

// ReportPromptSpec adds the report template sections to a prompt spec.
type ReportPromptSpec struct {
	PromptSpec `yaml:",inline"`
	Sections   []string `yaml:"sections"`
}

// SystemInstruction renders the report prompt including the section list.
func (p ReportPromptSpec) SystemInstruction() string {
	var b strings.Builder
	b.WriteString(p.PromptSpec.SystemInstruction())
	b.WriteString("\nUse exactly these section headers, in this order:")
	for _, section := range p.Sections {
		b.WriteString("\n")
		b.WriteString(section)
	}
	return b.String()
}

// ModelsSpec names the provider models used by the chain.
type ModelsSpec struct {
	Gemini string `yaml:"gemini"`
	OpenAI string `yaml:"openai"`
}

// PromptsConfig is the full prompt configuration for the three chain steps.
type PromptsConfig struct {
	Models        ModelsSpec       `yaml:"models"`
	Transcription PromptSpec       `yaml:"transcription"`
	Conversation  PromptSpec       `yaml:"conversation"`
	Report        ReportPromptSpec `yaml:"report"`
}

// Model names. The pro model exists for long consultations where flash
// truncates; it is selected via prompts.yaml, not a flag.
const (
	GeminiFlashModel = "gemini-2.0-flash-exp"
	GeminiProModel   = "gemini-2.5-pro-preview-05-06"
	OpenAIChatModel  = "gpt-4o-mini"
)

// DefaultPrompts returns the compiled-in prompt configuration.
func DefaultPrompts() PromptsConfig {
	return PromptsConfig{
		Models: ModelsSpec{
			Gemini: GeminiFlashModel,
			OpenAI: OpenAIChatModel,
		},
		Transcription: PromptSpec{
			Description: "You are an expert transcriptionist who converts audio to accurate text.",
			Instructions: []string{
				"Transcribe the audio exactly as spoken.",
				"Include speaker names if mentioned.",
				"Output only the transcription.",
			},
		},
		Conversation: PromptSpec{
			Description: "You are an expert at formatting transcripts into readable conversations.",
			Instructions: []string{
				"Format the transcript as a clean conversation.",
				"Use **Speaker:** format for speaker names.",
				"Add line breaks between speakers.",
				"Keep medical terms exact.",
				"Output only the formatted conversation.",
			},
		},
		Report: ReportPromptSpec{
			PromptSpec: PromptSpec{
				Description: "You are an expert medical scribe who writes structured clinical reports.",
				Instructions: []string{
					"Summarize the consultation transcript into a clinical report.",
					"Keep medical terms exact.",
					"Write \"Not discussed.\" under any section the transcript does not cover.",
					"Output only the report.",
				},
			},
			Sections: []string{
				"## Chief Complaint",
				"## History of Present Illness",
				"## Examination Findings",
				"## Assessment",
				"## Plan",
			},
		},
	}
}

// LoadPrompts reads the prompt configuration from a YAML file. A missing
// file is created with the defaults so operators have something to edit.
// Environment variables in the file are expanded before parsing.
func LoadPrompts(configPath string) (PromptsConfig, error) {
	configPath = os.ExpandEnv(configPath)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := createDefaultPrompts(configPath); err != nil {
			return PromptsConfig{}, fmt.Errorf("failed to create default prompts config: %w", err)
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return PromptsConfig{}, fmt.Errorf("failed to read prompts config: %w", err)
	}

	cfg := DefaultPrompts()
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return PromptsConfig{}, fmt.Errorf("failed to parse prompts config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return PromptsConfig{}, fmt.Errorf("invalid prompts config: %w", err)
	}
	return cfg, nil
}

// Validate checks that no step lost its model, instructions, or sections.
func (c PromptsConfig) Validate() error {
	if c.Models.Gemini == "" {
		return fmt.Errorf("models.gemini must not be empty")
	}
	if c.Models.OpenAI == "" {
		return fmt.Errorf("models.openai must not be empty")
	}
	for name, spec := range map[string]PromptSpec{
		"transcription": c.Transcription,
		"conversation":  c.Conversation,
		"report":        c.Report.PromptSpec,
	} {
		if spec.Description == "" {
			return fmt.Errorf("%s.description must not be empty", name)
		}
		if len(spec.Instructions) == 0 {
			return fmt.Errorf("%s.instructions must not be empty", name)
		}
	}
	if len(c.Report.Sections) == 0 {
		return fmt.Errorf("report.sections must not be empty")
	}
	return nil
}

func createDefaultPrompts(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(DefaultPrompts())
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0o644)
}
