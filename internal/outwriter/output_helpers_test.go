package outwriter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readFile loads a written output file for assertions.
func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestWriteWithFileToDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	err := writeWithFile(path, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, "hello")
		return err
	}, "Wrote test")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", readFile(t, path))
}

func TestWriteWithFileBadPath(t *testing.T) {
	err := writeWithFile("/nonexistent/directory/out.txt", func(io.Writer) error {
		return nil
	}, "Wrote test")
	require.Error(t, err)
}

func TestWriteWithFilePropagatesWriterError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	wantErr := fmt.Errorf("boom")
	err := writeWithFile(path, func(io.Writer) error {
		return wantErr
	}, "Wrote test")
	assert.ErrorIs(t, err, wantErr)
}

func TestWriteJSONIndents(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, map[string]int{"score": 7}))
	assert.Equal(t, "{\n  \"score\": 7\n}\n", buf.String())
}

func TestWriteCSVWithHeader(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, []string{"a", "b"}, func(w *csv.Writer) error {
		return w.Write([]string{"1", "2"})
	})
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", buf.String())
}

func TestCreateFormatters(t *testing.T) {
	fmtFloat, intFmt := createFormatters(2)
	assert.Equal(t, "3.14", fmtFloat(3.14159))
	assert.Equal(t, "7", fmt.Sprintf(intFmt, 7))

	fmtFloat, _ = createFormatters(1)
	assert.Equal(t, "7.6", fmtFloat(7.6))
}
