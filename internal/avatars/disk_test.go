package avatars

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadRequest(t *testing.T, contentType string) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="img"; filename="pic.png"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("not-really-a-png"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	file, fileHeader, err := req.FormFile("img")
	require.NoError(t, err)
	t.Cleanup(func() { file.Close() })
	return file, fileHeader
}

func TestDiskStoreSave(t *testing.T) {
	dir := t.TempDir()
	s, err := NewDiskStore(dir)
	require.NoError(t, err)

	file, header := uploadRequest(t, "image/png")

	url, err := s.Save(context.Background(), "img", file, header)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/images/img-"), "got %q", url)
	assert.True(t, strings.HasSuffix(url, ".png"), "got %q", url)

	stored, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "/images/")))
	require.NoError(t, err)
	assert.Equal(t, "not-really-a-png", string(stored))
}

func TestDiskStoreRejectsNonImages(t *testing.T) {
	dir := t.TempDir()
	s, err := NewDiskStore(dir)
	require.NoError(t, err)

	file, header := uploadRequest(t, "text/plain")

	_, err = s.Save(context.Background(), "img", file, header)
	assert.ErrorIs(t, err, ErrNotImage)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
