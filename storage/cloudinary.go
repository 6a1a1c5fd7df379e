package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryUploader stores post images in Cloudinary under a
// {timestamp}_{filename} key and returns the secure delivery URL.
type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryFromEnv builds an uploader from CLOUDINARY_URL.
func NewCloudinaryFromEnv() (*CloudinaryUploader, error) {
	url := os.Getenv("CLOUDINARY_URL")
	if url == "" {
		return nil, fmt.Errorf("CLOUDINARY_URL is required")
	}
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("cloudinary config: %w", err)
	}
	return &CloudinaryUploader{cld: cld, folder: "devdeakin/posts"}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	res, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   u.folder,
		PublicID: fmt.Sprintf("%d_%s", time.Now().Unix(), sanitizeFilename(filename)),
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	return res.SecureURL, nil
}

// sanitizeFilename strips path separators and the extension so the public ID
// stays a flat key.
func sanitizeFilename(name string) string {
	name = name[strings.LastIndexByte(name, '/')+1:]
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		name = name[:i]
	}
	return name
}
