package services

import (
	"context"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"syana-server/config"
	"syana-server/types"
)

const maxUploadSize = 10 << 20 // 10 MB

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".heic": true,
}

// UploadService pushes order attachments and profile images to Cloudinary.
type UploadService struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewUploadService(cfg config.CloudinaryConfig) (*UploadService, error) {
	if cfg.URL == "" {
		return nil, types.Internal("ERR_CLOUDINARY_NOT_CONFIGURED")
	}
	cld, err := cloudinary.NewFromURL(cfg.URL)
	if err != nil {
		log.Printf("❌ Failed to initialize Cloudinary: %v", err)
		return nil, types.Internal("ERR_CLOUDINARY_INIT")
	}
	return &UploadService{cld: cld, folder: cfg.Folder}, nil
}

// UploadImage validates and uploads one image, returning its secure URL.
// Files land under <folder>/<ownerID>.
func (s *UploadService) UploadImage(ctx context.Context, header *multipart.FileHeader, ownerID string) (string, error) {
	if !validImageFile(header) {
		return "", types.Validation("ERR_INVALID_IMAGE")
	}

	file, err := header.Open()
	if err != nil {
		return "", types.Internal("ERR_UPLOAD_FAILED")
	}
	defer file.Close()

	overwrite := true
	unique := true
	up, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         s.folder + "/" + ownerID,
		PublicID:       strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename)),
		Overwrite:      &overwrite,
		UniqueFilename: &unique,
		ResourceType:   "image",
	})
	if err != nil {
		log.Printf("❌ Upload failed for %s: %v", header.Filename, err)
		return "", types.Internal("ERR_UPLOAD_FAILED")
	}

	log.Printf("✅ Uploaded %s -> %s", header.Filename, up.SecureURL)
	return up.SecureURL, nil
}

func validImageFile(header *multipart.FileHeader) bool {
	if header == nil || header.Size == 0 || header.Size > maxUploadSize {
		return false
	}
	return allowedImageExts[strings.ToLower(filepath.Ext(header.Filename))]
}
