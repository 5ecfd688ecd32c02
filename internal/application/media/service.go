// Package media handles image uploads for products, categories and
// profiles.
package media

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/config"
)

// ObjectStorage is the port media uploads go through. Upload returns
// the public URL of the stored object.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// UploadedImage describes one stored image.
type UploadedImage struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// UploadService validates and stores image files.
type UploadService struct {
	storage ObjectStorage
	cfg     config.UploadConfig
	logger  *zap.Logger
}

func NewUploadService(storage ObjectStorage, cfg config.UploadConfig, logger *zap.Logger) *UploadService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UploadService{storage: storage, cfg: cfg, logger: logger}
}

// File is one incoming upload.
type File struct {
	Name string
	Data []byte
}

// UploadImages validates the batch and stores every file. Content type
// is sniffed from the bytes, never trusted from the request.
func (s *UploadService) UploadImages(ctx context.Context, folder string, files []File) ([]UploadedImage, error) {
	if len(files) == 0 {
		return nil, shared.NewValidationError("At least one file is required")
	}
	if len(files) > s.cfg.MaxFiles {
		return nil, shared.NewValidationError(
			fmt.Sprintf("Cannot upload more than %d files at once", s.cfg.MaxFiles))
	}

	out := make([]UploadedImage, 0, len(files))
	for _, f := range files {
		img, err := s.uploadOne(ctx, folder, f)
		if err != nil {
			return nil, err
		}
		out = append(out, *img)
	}
	return out, nil
}

func (s *UploadService) uploadOne(ctx context.Context, folder string, f File) (*UploadedImage, error) {
	if int64(len(f.Data)) > s.cfg.MaxFileSize {
		return nil, shared.NewValidationError(
			fmt.Sprintf("File %s exceeds the %dMB size limit", f.Name, s.cfg.MaxFileSize>>20))
	}
	if len(f.Data) == 0 {
		return nil, shared.NewValidationError("File " + f.Name + " is empty")
	}

	contentType := http.DetectContentType(f.Data)
	if !s.typeAllowed(contentType) {
		return nil, shared.NewValidationError(
			"File type " + contentType + " is not allowed")
	}

	key := buildKey(folder, f.Name)
	url, err := s.storage.Upload(ctx, key, f.Data, contentType)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Image uploaded",
		zap.String("key", key),
		zap.String("content_type", contentType),
		zap.Int("size", len(f.Data)),
	)

	return &UploadedImage{
		Key:         key,
		URL:         url,
		ContentType: contentType,
		Size:        int64(len(f.Data)),
	}, nil
}

// DeleteImage removes a stored image by key.
func (s *UploadService) DeleteImage(ctx context.Context, key string) error {
	if key == "" {
		return shared.NewValidationError("Image key is required")
	}
	exists, err := s.storage.Exists(ctx, key)
	if err != nil {
		return err
	}
	if !exists {
		return shared.NewNotFoundError("Image")
	}
	return s.storage.Delete(ctx, key)
}

func (s *UploadService) typeAllowed(contentType string) bool {
	for _, allowed := range s.cfg.AllowedTypes {
		if contentType == allowed {
			return true
		}
	}
	return false
}

// buildKey produces a collision-free object key keeping the original
// extension.
func buildKey(folder, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	folder = strings.Trim(folder, "/")
	if folder == "" {
		folder = "uploads"
	}
	return fmt.Sprintf("%s/%s/%s%s",
		folder, time.Now().UTC().Format("2006/01"), uuid.New().String(), ext)
}
