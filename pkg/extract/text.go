package extract

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// maxTextBytes bounds how much of a plain-text file is read for
// classification.
const maxTextBytes = 10 * 1024 * 1024 // 10MB

// ExtractText reads a plain-text file, bounded to maxTextBytes.
func ExtractText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open text file: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	if _, err := io.Copy(&sb, io.LimitReader(f, maxTextBytes)); err != nil {
		return "", fmt.Errorf("failed to read text file: %w", err)
	}
	return sb.String(), nil
}
