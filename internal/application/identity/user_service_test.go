package identity

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
)

func newUserService(userRepo *MockUserRepository, wishlistRepo *MockWishlistRepository, productRepo *MockProductRepository) *UserService {
	return NewUserService(userRepo, wishlistRepo, productRepo, zap.NewNop())
}

func testProduct(t *testing.T, title string) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(title, "A product used by the test suite",
		decimal.NewFromInt(25), []string{"https://img.example.com/p.jpg"})
	require.NoError(t, err)
	return p
}

func TestUserService_UpdateProfile(t *testing.T) {
	user, err := identity.NewUser("Jane", "jane@example.com", "secret123")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	svc := newUserService(userRepo, new(MockWishlistRepository), new(MockProductRepository))

	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	userRepo.On("Save", mock.Anything, user).Return(nil)

	resp, err := svc.UpdateProfile(context.Background(), user.ID.String(), UpdateProfileRequest{
		Name:  "Jane Doe",
		Phone: "+8801712345678",
		Address: &AddressInput{
			Street: "12 Lake Road", City: "Dhaka", Country: "Bangladesh",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", resp.Name)
	require.NotNil(t, resp.Address)
	assert.Equal(t, "Dhaka", resp.Address.City)
}

func TestUserService_UpdateProfile_InvalidID(t *testing.T) {
	svc := newUserService(new(MockUserRepository), new(MockWishlistRepository), new(MockProductRepository))

	_, err := svc.UpdateProfile(context.Background(), "not-a-uuid", UpdateProfileRequest{Name: "X Y"})
	assert.True(t, shared.IsKind(err, shared.KindInvalidID))
}

func TestUserService_ListUsers(t *testing.T) {
	userA, err := identity.NewUser("Alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	svc := newUserService(userRepo, new(MockWishlistRepository), new(MockProductRepository))

	userRepo.On("FindAll", mock.Anything, identity.UserFilter{
		Search: "ali", Role: identity.RoleCustomer, Page: 2, Limit: 20,
	}).Return([]*identity.User{userA}, int64(21), nil)

	users, total, err := svc.ListUsers(context.Background(), ListUsersQuery{
		Search: "ali", Role: "customer", Page: 2, Limit: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(21), total)
	require.Len(t, users, 1)
	assert.Equal(t, "alice@example.com", users[0].Email)
}

func TestUserService_UpdateRole(t *testing.T) {
	t.Run("manager promotes a customer to editor", func(t *testing.T) {
		user, err := identity.NewUser("Jane", "jane@example.com", "secret123")
		require.NoError(t, err)

		userRepo := new(MockUserRepository)
		svc := newUserService(userRepo, new(MockWishlistRepository), new(MockProductRepository))
		userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		userRepo.On("Save", mock.Anything, user).Return(nil)

		resp, err := svc.UpdateRole(context.Background(), user.ID.String(),
			UpdateRoleRequest{Role: "editor"}, identity.RoleManager)
		require.NoError(t, err)
		assert.Equal(t, "editor", resp.Role)
	})

	t.Run("manager cannot mint another manager", func(t *testing.T) {
		user, err := identity.NewUser("Jane", "jane2@example.com", "secret123")
		require.NoError(t, err)

		userRepo := new(MockUserRepository)
		svc := newUserService(userRepo, new(MockWishlistRepository), new(MockProductRepository))
		userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

		_, err = svc.UpdateRole(context.Background(), user.ID.String(),
			UpdateRoleRequest{Role: "manager"}, identity.RoleManager)
		assert.True(t, shared.IsKind(err, shared.KindForbidden))
		userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestUserService_Wishlist(t *testing.T) {
	userID := uuid.New()

	t.Run("add verifies the product exists", func(t *testing.T) {
		product := testProduct(t, "Ceramic Mug")

		wishlistRepo := new(MockWishlistRepository)
		productRepo := new(MockProductRepository)
		svc := newUserService(new(MockUserRepository), wishlistRepo, productRepo)

		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		wishlistRepo.On("Add", mock.Anything, mock.MatchedBy(func(item *identity.WishlistItem) bool {
			return item.UserID == userID && item.ProductID == product.ID
		})).Return(nil)

		err := svc.AddToWishlist(context.Background(), userID.String(), product.ID)
		assert.NoError(t, err)
		wishlistRepo.AssertExpectations(t)
	})

	t.Run("add rejects unknown products", func(t *testing.T) {
		wishlistRepo := new(MockWishlistRepository)
		productRepo := new(MockProductRepository)
		svc := newUserService(new(MockUserRepository), wishlistRepo, productRepo)

		missing := uuid.New()
		productRepo.On("FindByID", mock.Anything, missing).
			Return(nil, shared.NewNotFoundError("Product"))

		err := svc.AddToWishlist(context.Background(), userID.String(), missing)
		assert.True(t, shared.IsKind(err, shared.KindNotFound))
		wishlistRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("list preserves wishlist order and skips deleted products", func(t *testing.T) {
		mug := testProduct(t, "Ceramic Mug")
		lamp := testProduct(t, "Desk Lamp")
		deletedID := uuid.New()

		wishlistRepo := new(MockWishlistRepository)
		productRepo := new(MockProductRepository)
		svc := newUserService(new(MockUserRepository), wishlistRepo, productRepo)

		ids := []uuid.UUID{lamp.ID, deletedID, mug.ID}
		wishlistRepo.On("ProductIDs", mock.Anything, userID).Return(ids, nil)
		productRepo.On("FindByIDs", mock.Anything, ids).
			Return([]*catalog.Product{mug, lamp}, nil)

		items, err := svc.Wishlist(context.Background(), userID.String())
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Desk Lamp", items[0].Title)
		assert.Equal(t, "Ceramic Mug", items[1].Title)
	})

	t.Run("empty wishlist returns an empty slice", func(t *testing.T) {
		wishlistRepo := new(MockWishlistRepository)
		productRepo := new(MockProductRepository)
		svc := newUserService(new(MockUserRepository), wishlistRepo, productRepo)

		wishlistRepo.On("ProductIDs", mock.Anything, userID).Return([]uuid.UUID{}, nil)

		items, err := svc.Wishlist(context.Background(), userID.String())
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
		productRepo.AssertNotCalled(t, "FindByIDs", mock.Anything, mock.Anything)
	})
}
