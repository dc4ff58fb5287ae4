//go:build cgo

package ocr

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// ExtractLabel runs OCR over photo bytes and returns the first
// recognized line, truncated to display length. An empty string with a
// nil error means the photo contained no legible text.
func ExtractLabel(photo []byte) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetImageFromBytes(photo); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return firstLine(text), nil
}
