package files

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExtensionValidation(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		extension   string
		shouldMatch bool
	}{
		{"mp3_lowercase", "audio.mp3", "mp3", true},
		{"mp3_uppercase", "audio.MP3", "mp3", true},
		{"mp3_mixed_case", "audio.Mp3", "mp3", true},
		{"wav_file", "audio.wav", "wav", true},

		{"no_extension", "audiofile", "mp3", false},
		{"multiple_dots", "audio.test.mp3", "mp3", true},
		{"dot_in_name", "audio.v2.final.mp3", "mp3", true},
		{"wrong_extension", "audio.txt", "mp3", false},
		{"hidden_file", ".audio.mp3", "mp3", true},

		{"space_in_extension", "audio.mp3 ", "mp3", false},
		{"similar_extension", "audio.mp3x", "mp3", false},
		{"partial_match", "audio.amp3", "mp3", false},
	}

	tempDir := t.TempDir()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filePath := filepath.Join(tempDir, tt.filename)
			if err := os.WriteFile(filePath, []byte("test"), 0o644); err != nil {
				t.Fatalf("write test file: %v", err)
			}
			defer os.Remove(filePath)

			found := false
			matches, err := GetAllFiles(tempDir, tt.extension)
			if err != nil {
				t.Fatalf("GetAllFiles() error = %v", err)
			}
			for _, f := range matches {
				if f.Name == tt.filename {
					found = true
					break
				}
			}

			if found != tt.shouldMatch {
				t.Errorf("extension matching for %s with %s: got %v, want %v",
					tt.filename, tt.extension, found, tt.shouldMatch)
			}
		})
	}
}

func TestWriteAndReadRoundTrip(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"normal_text", "Hello, World!", "Hello, World!"},
		{"text_with_newlines", "Line 1\nLine 2\nLine 3", "Line 1\nLine 2\nLine 3"},
		{"surrounding_whitespace", "  \n\tContent\n\t  ", "Content"},
		{"unicode_content", "Patient: Müller 世界", "Patient: Müller 世界"},
		{"empty_content", "", ""},
		{"only_whitespace", "   \n\t\r\n   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filePath := filepath.Join(tempDir, tt.name+".txt")

			if err := WriteToFile(tt.content, filePath); err != nil {
				t.Fatalf("WriteToFile() error = %v", err)
			}

			got, err := ReadOutputFile(filePath)
			if err != nil {
				t.Fatalf("ReadOutputFile() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("content mismatch:\ngot:  %q\nwant: %q", got, tt.want)
			}
		})
	}
}

func TestWriteToFileCreatesParentDirectories(t *testing.T) {
	tempDir := t.TempDir()
	nested := filepath.Join(tempDir, "out", "artifacts", "report.md")

	if err := WriteToFile("## Assessment", nested); err != nil {
		t.Fatalf("WriteToFile() error = %v", err)
	}

	got, err := ReadOutputFile(nested)
	if err != nil {
		t.Fatalf("ReadOutputFile() error = %v", err)
	}
	if got != "## Assessment" {
		t.Errorf("unexpected content %q", got)
	}
}
