// Package avatars stores uploaded profile pictures and reports the
// public URL to save on the user record. Two backends exist: local disk
// (default) and Cloudinary.
package avatars

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
)

var ErrNotImage = errors.New("only images are allowed")

type Store interface {
	// Save persists the uploaded file and returns its public URL. The
	// field name seeds the stored filename.
	Save(ctx context.Context, fieldName string, file multipart.File, header *multipart.FileHeader) (string, error)
}

func checkImageType(header *multipart.FileHeader) error {
	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		return ErrNotImage
	}
	return nil
}
