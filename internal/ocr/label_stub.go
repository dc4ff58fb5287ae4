//go:build !cgo

package ocr

// ExtractLabel is unavailable without CGO.
func ExtractLabel(photo []byte) (string, error) {
	return "", ErrUnavailable
}
