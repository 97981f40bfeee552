package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadUploadFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "photo.png")
	// minimal PNG signature so content sniffing has something to chew on
	data := []byte("\x89PNG\r\n\x1a\n rest of file")
	require.NoError(t, os.WriteFile(path, data, 0o660))

	f, err := ReadUploadFile(path)
	require.NoError(t, err)
	require.Equal(t, "photo.png", f.Name)
	require.Equal(t, data, f.Data)
	require.Equal(t, "image/png", f.ContentType)
}

func TestReadUploadFile_Missing(t *testing.T) {
	_, err := ReadUploadFile(filepath.Join(t.TempDir(), "nope.jpg"))
	require.Error(t, err)
}
