package files

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"
)

// FileInfo describes one file discovered in an input directory.
type FileInfo struct {
	FullPath string
	Name     string
	ModTime  time.Time
	Size     int64
}

func GetProjectRoot() (string, error) {
	_, filename, _, _ := runtime.Caller(0)
	return findGoModRoot(filename)
}

// GetAbsolutePath resolves a path to absolute form.
func GetAbsolutePath(path string) (string, error) {
	return filepath.Abs(path)
}

// CheckAndCreateDirectory creates the directory if it does not exist.
func CheckAndCreateDirectory(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, os.ModePerm)
	}
	return nil
}

// GetAllFiles lists files in inputDir whose extension matches (without the
// dot, case-insensitive), ordered by modification time.
func GetAllFiles(inputDir string, extension string) ([]FileInfo, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	want := "." + strings.ToLower(extension)
	var fileInfos []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.ToLower(filepath.Ext(entry.Name())) != want {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		fileInfos = append(fileInfos, FileInfo{
			FullPath: filepath.Join(inputDir, entry.Name()),
			Name:     entry.Name(),
			ModTime:  info.ModTime(),
			Size:     info.Size(),
		})
	}

	sort.Slice(fileInfos, func(i, j int) bool {
		return fileInfos[i].ModTime.Before(fileInfos[j].ModTime)
	})

	return fileInfos, nil
}

// GetAllMP3Files lists *.mp3 files in inputDir ordered by modification time.
func GetAllMP3Files(inputDir string) ([]FileInfo, error) {
	return GetAllFiles(inputDir, "mp3")
}

// ReadOutputFile reads the specified output file and returns its trimmed
// text content.
func ReadOutputFile(filePath string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(content)), nil
}

// WriteToFile writes text content, creating parent directories as needed.
func WriteToFile(content string, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(filePath, []byte(content), 0o644)
}

// SanitizeFilename strips path components and characters that are unsafe in
// object keys or download filenames.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		" ", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
	)
	sanitized := replacer.Replace(name)
	if sanitized == "" || sanitized == "." || sanitized == ".." {
		return "audio"
	}
	return sanitized
}

func findGoModRoot(path string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			return path, nil
		}
		newPath := filepath.Dir(path)
		if newPath == path {
			return "", fmt.Errorf("go.mod not found")
		}
		path = newPath
	}
}
