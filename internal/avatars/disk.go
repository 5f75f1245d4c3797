package avatars

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// DiskStore writes avatars under dir and serves them from /images/.
// Filenames are <field>-<unix millis><ext>, so repeated uploads never
// overwrite each other.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

func (s *DiskStore) Save(_ context.Context, fieldName string, file multipart.File, header *multipart.FileHeader) (string, error) {
	if err := checkImageType(header); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s-%d%s", fieldName, time.Now().UnixMilli(), filepath.Ext(header.Filename))

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create avatar file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("write avatar file: %w", err)
	}

	return "/images/" + name, nil
}
