package files

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGetProjectRoot(t *testing.T) {
	got, err := GetProjectRoot()
	if err != nil {
		t.Fatalf("GetProjectRoot() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(got, "go.mod")); err != nil {
		t.Errorf("GetProjectRoot() = %v, does not contain go.mod", got)
	}
}

func TestGetAllMP3FilesOrdering(t *testing.T) {
	tempDir := t.TempDir()

	names := []string{"third.mp3", "first.mp3", "second.mp3"}
	base := time.Now().Add(-time.Hour)
	order := map[string]time.Duration{
		"first.mp3":  0,
		"second.mp3": time.Minute,
		"third.mp3":  2 * time.Minute,
	}

	for _, name := range names {
		path := filepath.Join(tempDir, name)
		if err := os.WriteFile(path, []byte("audio"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		mt := base.Add(order[name])
		if err := os.Chtimes(path, mt, mt); err != nil {
			t.Fatalf("chtimes %s: %v", name, err)
		}
	}
	if err := os.WriteFile(filepath.Join(tempDir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write notes.txt: %v", err)
	}

	got, err := GetAllMP3Files(tempDir)
	if err != nil {
		t.Fatalf("GetAllMP3Files() error = %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("expected 3 mp3 files, got %d", len(got))
	}
	wantOrder := []string{"first.mp3", "second.mp3", "third.mp3"}
	for i, want := range wantOrder {
		if got[i].Name != want {
			t.Errorf("position %d: got %s, want %s", i, got[i].Name, want)
		}
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "consult.mp3", "consult.mp3"},
		{"spaces", "morning visit.mp3", "morning_visit.mp3"},
		{"path_components", "../../etc/passwd", "passwd"},
		{"windows_separators", `C:\records\visit.mp3`, "C__records_visit.mp3"},
		{"shell_noise", `a*b?c"d.mp3`, "a_b_c_d.mp3"},
		{"empty", "", "audio"},
		{"dot", ".", "audio"},
		{"dotdot", "..", "audio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFilename(tt.input); got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
