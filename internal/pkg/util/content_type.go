package util

import (
	"io"
	"net/http"
)

// GetSafeContentType sniffs the real MIME type from the first bytes of
// the stream and rewinds the reader before returning.
func GetSafeContentType(reader io.ReadSeeker) (string, error) {
	buf := make([]byte, 512)
	n, err := reader.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}
