// Package ingestion reads and adapts external inputs (text files, exported
// profile skills) into the shapes the engine consumes.
package ingestion

import (
	"fmt"
	"os"
	"strings"
)

// maxTextBytes bounds input documents; job postings and resumes are small,
// so anything larger is almost certainly the wrong file.
const maxTextBytes = 2 << 20

// ReadTextFile reads a plain-text document and normalizes its line endings.
func ReadTextFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat input file %s: %w", path, err)
	}
	if info.Size() > maxTextBytes {
		return "", fmt.Errorf("input file %s is %d bytes, exceeds the %d byte limit", path, info.Size(), maxTextBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file %s: %w", path, err)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text, nil
}
