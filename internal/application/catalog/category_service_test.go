package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

func newCategoryService(categoryRepo *MockCategoryRepository, productRepo *MockProductRepository) *CategoryService {
	return NewCategoryService(categoryRepo, productRepo, zap.NewNop())
}

func TestCategoryService_Create(t *testing.T) {
	t.Run("creates when the name is free", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		svc := newCategoryService(categoryRepo, new(MockProductRepository))

		categoryRepo.On("FindByName", mock.Anything, "Kitchen").
			Return(nil, shared.NewNotFoundError("Category"))
		categoryRepo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Category")).Return(nil)

		resp, err := svc.Create(context.Background(), CreateCategoryRequest{Name: "Kitchen"})
		require.NoError(t, err)
		assert.Equal(t, "Kitchen", resp.Name)
		assert.Equal(t, "active", resp.Status)
	})

	t.Run("duplicate name is a conflict", func(t *testing.T) {
		existing, err := catalog.NewCategory("Kitchen", "")
		require.NoError(t, err)

		categoryRepo := new(MockCategoryRepository)
		svc := newCategoryService(categoryRepo, new(MockProductRepository))
		categoryRepo.On("FindByName", mock.Anything, "Kitchen").Return(existing, nil)

		_, err = svc.Create(context.Background(), CreateCategoryRequest{Name: "Kitchen"})
		assert.True(t, shared.IsKind(err, shared.KindConflict))
		categoryRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestCategoryService_Update(t *testing.T) {
	category, err := catalog.NewCategory("Kitchen", "")
	require.NoError(t, err)

	t.Run("rename checks uniqueness", func(t *testing.T) {
		other, err := catalog.NewCategory("Dining", "")
		require.NoError(t, err)

		categoryRepo := new(MockCategoryRepository)
		svc := newCategoryService(categoryRepo, new(MockProductRepository))
		categoryRepo.On("FindByID", mock.Anything, category.ID).Return(category, nil)
		categoryRepo.On("FindByName", mock.Anything, "Dining").Return(other, nil)

		name := "Dining"
		_, err = svc.Update(context.Background(), category.ID, UpdateCategoryRequest{Name: &name})
		assert.True(t, shared.IsKind(err, shared.KindConflict))
	})

	t.Run("keeping the same name skips the uniqueness check", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		svc := newCategoryService(categoryRepo, new(MockProductRepository))
		categoryRepo.On("FindByID", mock.Anything, category.ID).Return(category, nil)
		categoryRepo.On("Save", mock.Anything, category).Return(nil)

		name := "Kitchen"
		description := "Pots, pans and mugs"
		resp, err := svc.Update(context.Background(), category.ID, UpdateCategoryRequest{
			Name: &name, Description: &description,
		})
		require.NoError(t, err)
		assert.Equal(t, "Pots, pans and mugs", resp.Description)
		categoryRepo.AssertNotCalled(t, "FindByName", mock.Anything, mock.Anything)
	})
}

func TestCategoryService_Delete(t *testing.T) {
	category, err := catalog.NewCategory("Kitchen", "")
	require.NoError(t, err)

	t.Run("empty category is deleted", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		productRepo := new(MockProductRepository)
		svc := newCategoryService(categoryRepo, productRepo)

		categoryRepo.On("FindByID", mock.Anything, category.ID).Return(category, nil)
		productRepo.On("CountByCategory", mock.Anything, category.ID).Return(int64(0), nil)
		categoryRepo.On("Delete", mock.Anything, category.ID).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), category.ID))
	})

	t.Run("category holding products is not deletable", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		productRepo := new(MockProductRepository)
		svc := newCategoryService(categoryRepo, productRepo)

		categoryRepo.On("FindByID", mock.Anything, category.ID).Return(category, nil)
		productRepo.On("CountByCategory", mock.Anything, category.ID).Return(int64(3), nil)

		err := svc.Delete(context.Background(), category.ID)
		assert.True(t, shared.IsKind(err, shared.KindConflict))
		categoryRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
