package format

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildZip returns an in-memory ZIP archive with the given file names.
func buildZip(t *testing.T, names ...string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte("<x/>"))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestDetectByExtension(t *testing.T) {
	assert.Equal(t, ENBX, Detect("lesson.enbx"))
	assert.Equal(t, ENBX, Detect("LESSON.ENBX"))
	assert.Equal(t, Unknown, Detect("lesson.pptx"))
	assert.Equal(t, Unknown, Detect("lesson"))
}

func TestDetectPackageDir(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, Unknown, Detect(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "Board.xml"), []byte("<Board/>"), 0o644))
	assert.Equal(t, PackageDir, Detect(dir))
}

func TestDetectFromMagic(t *testing.T) {
	assert.Equal(t, ENBX, DetectFromMagic([]byte{0x50, 0x4B, 0x03, 0x04, 0x00}))
	assert.Equal(t, Unknown, DetectFromMagic([]byte("%PDF-1.7")))
	assert.Equal(t, Unknown, DetectFromMagic([]byte{0x50, 0x4B}))
}

func TestDetectFromReader(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  Format
	}{
		{"board and document", []string{"Board.xml", "Document.xml"}, ENBX},
		{"board and content types", []string{"Board.xml", "[Content_Types].xml"}, ENBX},
		{"board alone", []string{"Board.xml"}, Unknown},
		{"unrelated zip", []string{"word/document.xml"}, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := buildZip(t, tt.files...)
			got, err := DetectFromReader(bytes.NewReader(data), int64(len(data)))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFromReaderNotZip(t *testing.T) {
	data := []byte("this is not an archive")
	got, err := DetectFromReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	assert.Equal(t, Unknown, got)
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "ENBX", ENBX.String())
	assert.Equal(t, "PackageDir", PackageDir.String())
	assert.Equal(t, "Unknown", Unknown.String())
	assert.Equal(t, ".enbx", ENBX.Extension())
}
