package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/chandravishaal/AI-Stack-Journal-Backend/config"
)

// uploadFolder is the Cloudinary folder holding all blog images.
const uploadFolder = "blog_images"

// ImageUploader forwards image files to Cloudinary and returns the hosted
// URL. When credentials are missing the service still starts and uploads
// fail on first use.
type ImageUploader struct {
	cld *cloudinary.Cloudinary
}

// NewImageUploader builds the Cloudinary client from config.
func NewImageUploader(cfg *config.Config) *ImageUploader {
	u := &ImageUploader{}
	if cfg.CloudinaryName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return u
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		log.Printf("failed to initialize Cloudinary client: %v", err)
		return u
	}
	u.cld = cld
	return u
}

// UploadImage sends the file to Cloudinary and returns its secure URL.
func (u *ImageUploader) UploadImage(ctx context.Context, file io.Reader) (string, error) {
	if u.cld == nil {
		return "", errors.New("cloudinary credentials are not configured")
	}

	result, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: uploadFolder})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload failed: %s", result.Error.Message)
	}
	if result.SecureURL == "" {
		return "", errors.New("cloudinary response did not include a URL")
	}
	return result.SecureURL, nil
}
