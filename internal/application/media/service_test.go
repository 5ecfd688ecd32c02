package media

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/config"
)

// jpegHeader is enough for http.DetectContentType to sniff image/jpeg.
var jpegHeader = []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 0x4a, 0x46, 0x49, 0x46, 0x00, 0x01}

type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, data, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStorage) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockObjectStorage) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func testConfig() config.UploadConfig {
	return config.UploadConfig{
		MaxFileSize:  5 << 20,
		MaxFiles:     10,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/webp"},
	}
}

func TestUploadImages(t *testing.T) {
	storage := new(MockObjectStorage)
	storage.On("Upload", mock.Anything, mock.Anything, mock.Anything, "image/jpeg").
		Return("https://cdn.test/products/x.jpg", nil)

	svc := NewUploadService(storage, testConfig(), nil)

	images, err := svc.UploadImages(context.Background(), "products", []File{
		{Name: "desk.jpg", Data: jpegHeader},
	})
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "image/jpeg", images[0].ContentType)
	assert.True(t, strings.HasPrefix(images[0].Key, "products/"))
	assert.True(t, strings.HasSuffix(images[0].Key, ".jpg"))
	storage.AssertExpectations(t)
}

func TestUploadImagesRejectsBadType(t *testing.T) {
	storage := new(MockObjectStorage)
	svc := NewUploadService(storage, testConfig(), nil)

	_, err := svc.UploadImages(context.Background(), "products", []File{
		{Name: "notes.txt", Data: []byte("plain text, not an image")},
	})
	assert.True(t, shared.IsKind(err, shared.KindValidation))
	storage.AssertNotCalled(t, "Upload")
}

func TestUploadImagesRejectsOversize(t *testing.T) {
	storage := new(MockObjectStorage)
	cfg := testConfig()
	cfg.MaxFileSize = 8
	svc := NewUploadService(storage, cfg, nil)

	_, err := svc.UploadImages(context.Background(), "products", []File{
		{Name: "desk.jpg", Data: jpegHeader},
	})
	assert.True(t, shared.IsKind(err, shared.KindValidation))
}

func TestUploadImagesRejectsTooManyFiles(t *testing.T) {
	storage := new(MockObjectStorage)
	cfg := testConfig()
	cfg.MaxFiles = 2
	svc := NewUploadService(storage, cfg, nil)

	files := []File{
		{Name: "a.jpg", Data: jpegHeader},
		{Name: "b.jpg", Data: jpegHeader},
		{Name: "c.jpg", Data: jpegHeader},
	}
	_, err := svc.UploadImages(context.Background(), "products", files)
	assert.True(t, shared.IsKind(err, shared.KindValidation))
}

func TestDeleteImage(t *testing.T) {
	storage := new(MockObjectStorage)
	storage.On("Exists", mock.Anything, "products/x.jpg").Return(true, nil)
	storage.On("Delete", mock.Anything, "products/x.jpg").Return(nil)
	svc := NewUploadService(storage, testConfig(), nil)

	require.NoError(t, svc.DeleteImage(context.Background(), "products/x.jpg"))
	storage.AssertExpectations(t)
}

func TestDeleteImageMissing(t *testing.T) {
	storage := new(MockObjectStorage)
	storage.On("Exists", mock.Anything, "products/gone.jpg").Return(false, nil)
	svc := NewUploadService(storage, testConfig(), nil)

	err := svc.DeleteImage(context.Background(), "products/gone.jpg")
	assert.True(t, shared.IsKind(err, shared.KindNotFound))
}
