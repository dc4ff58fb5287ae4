// Package ocr extracts a short text label from a captured photo so a
// page title can be echoed onto the display in the device font.
//
// The Tesseract backend needs CGO; builds without it get a stub that
// reports ErrUnavailable, and callers treat a missing label as cosmetic.
package ocr

import (
	"errors"
	"strings"
)

// ErrUnavailable reports that no OCR backend was compiled in.
var ErrUnavailable = errors.New("ocr: built without cgo, label extraction unavailable")

// maxLabelLen caps extracted labels; anything longer will not fit the
// display next to a template anyway.
const maxLabelLen = 24

// firstLine reduces raw OCR output to a display-sized label: the first
// non-empty line, trimmed and truncated.
func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) > maxLabelLen {
			line = line[:maxLabelLen]
		}
		return line
	}
	return ""
}
