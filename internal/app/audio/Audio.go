package audio

import (
	"encoding/json"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// FFProbeOutput mirrors the subset of ffprobe's JSON output we consume.
type FFProbeOutput struct {
	Format struct {
		FormatName string `json:"format_name"`
		Duration   string `json:"duration"`
	} `json:"format"`
}

// GetAudioDuration probes the file with ffprobe and returns its duration.
func GetAudioDuration(filePath string) (time.Duration, error) {
	cmd := exec.Command("ffprobe", "-v", "error", "-show_entries", "format=duration", "-of", "default=noprint_wrappers=1:nokey=1", filePath)
	output, err := cmd.Output()
	if err != nil {
		return 0, err
	}
	return parseDurationOutput(output)
}

func parseDurationOutput(output []byte) (time.Duration, error) {
	durationFloat, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
	if err != nil {
		return 0, err
	}
	return time.Duration(durationFloat * float64(time.Second)), nil
}

// IsMP3File reports whether ffprobe identifies the file as an MP3 container.
func IsMP3File(filePath string) (bool, error) {
	cmd := exec.Command("ffprobe", "-v", "quiet", "-print_format", "json", "-show_format", filePath)
	output, err := cmd.Output()
	if err != nil {
		return false, err
	}

	var probeOutput FFProbeOutput
	if err := json.Unmarshal(output, &probeOutput); err != nil {
		return false, err
	}

	return containsFormat(probeOutput.Format.FormatName, "mp3"), nil
}

func containsFormat(formatName, want string) bool {
	for _, name := range strings.Split(formatName, ",") {
		if strings.TrimSpace(name) == want {
			return true
		}
	}
	return false
}
