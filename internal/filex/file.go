// Package filex contains filesystem helpers used by the CLI client.
package filex

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
)

// UploadFile is a local file read into memory and ready to be attached to a
// submission: base name, sniffed content type, and raw bytes.
type UploadFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// ReadUploadFile loads path into memory and sniffs its content type from the
// first bytes.
func ReadUploadFile(path string) (*UploadFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return &UploadFile{
		Name:        filepath.Base(path),
		ContentType: http.DetectContentType(data),
		Data:        data,
	}, nil
}
