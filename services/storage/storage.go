package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// CloudinaryMirror implements ImageMirror with Cloudinary uploads.
type CloudinaryMirror struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryMirror initializes a Cloudinary client from API credentials.
func NewCloudinaryMirror(cloudName, apiKey, apiSecret, folder string) (*CloudinaryMirror, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryMirror{cld: cld, folder: folder}, nil
}

func (m *CloudinaryMirror) Put(ctx context.Context, name string, data []byte) (MirroredImage, error) {
	// Uploads with the same filename must not overwrite each other.
	publicID := strings.TrimSuffix(path.Base(name), path.Ext(name)) + "-" + uuid.NewString()[:8]
	res, err := m.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder:   m.folder,
		PublicID: publicID,
	})
	if err != nil {
		return MirroredImage{}, fmt.Errorf("storage: upload %s: %w", name, err)
	}
	if res.Error.Message != "" {
		return MirroredImage{}, fmt.Errorf("storage: upload %s: %s", name, res.Error.Message)
	}
	return MirroredImage{ID: res.PublicID, URL: res.SecureURL}, nil
}

func (m *CloudinaryMirror) Remove(ctx context.Context, id string) error {
	res, err := m.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: id})
	if err != nil {
		return fmt.Errorf("storage: destroy %s: %w", id, err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("storage: destroy %s: %s", id, res.Error.Message)
	}
	return nil
}
