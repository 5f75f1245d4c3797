package avatars

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// CloudinaryStore uploads avatars to a Cloudinary folder and returns
// the delivery URL.
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStore(cld *cloudinary.Cloudinary) *CloudinaryStore {
	return &CloudinaryStore{cld: cld}
}

func (s *CloudinaryStore) Save(ctx context.Context, fieldName string, file multipart.File, header *multipart.FileHeader) (string, error) {
	if err := checkImageType(header); err != nil {
		return "", err
	}

	resp, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         "avatars",
		PublicID:       fmt.Sprintf("%s-%s", fieldName, uuid.New().String()),
		Overwrite:      api.Bool(false),
		Transformation: "w_300,h_300,c_fill,q_auto",
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	return resp.SecureURL, nil
}
