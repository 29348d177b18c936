package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleTranscript is a plausible raw transcription of a short visit.
const SampleTranscript = `Good morning, what brings you in today? I've had a sore throat and ` +
	`a mild fever since Tuesday. Any cough or shortness of breath? A dry cough, no trouble ` +
	`breathing. Let me take a look. Your throat is red with some swelling, temperature is ` +
	`38.1. Looks like a viral pharyngitis. I'd recommend rest, fluids, and paracetamol for ` +
	`the fever. Come back if it's not better in five days.`

// SampleConversation is the speaker-formatted version of SampleTranscript.
const SampleConversation = `**Doctor:** Good morning, what brings you in today?

**Patient:** I've had a sore throat and a mild fever since Tuesday.

**Doctor:** Any cough or shortness of breath?

**Patient:** A dry cough, no trouble breathing.

**Doctor:** Let me take a look. Your throat is red with some swelling, temperature is 38.1. Looks like a viral pharyngitis. I'd recommend rest, fluids, and paracetamol for the fever. Come back if it's not better in five days.`

// SampleReport is a structured report generated from SampleTranscript.
const SampleReport = `## Chief Complaint
Sore throat and mild fever for three days.

## History of Present Illness
Symptoms began Tuesday with sore throat and low-grade fever. Dry cough present. No dyspnea.

## Examination Findings
Pharyngeal erythema with mild swelling. Temperature 38.1 °C.

## Assessment
Viral pharyngitis.

## Plan
Rest, fluids, paracetamol as needed for fever. Return visit if no improvement within five days.`

// WriteTestMP3 drops a fake MP3 file into dir and returns its path. The
// content is not valid audio; the chain never decodes it locally.
func WriteTestMP3(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("ID3\x03\x00fake audio payload"), 0o644); err != nil {
		t.Fatalf("failed to write test mp3: %v", err)
	}
	return path
}
