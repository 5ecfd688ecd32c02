package identity

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appcatalog "github.com/storefront/backend/internal/application/catalog"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
)

// UserService covers profile management, admin user administration and
// wishlists.
type UserService struct {
	userRepo     identity.UserRepository
	wishlistRepo identity.WishlistRepository
	productRepo  catalog.ProductRepository
	logger       *zap.Logger
}

func NewUserService(
	userRepo identity.UserRepository,
	wishlistRepo identity.WishlistRepository,
	productRepo catalog.ProductRepository,
	logger *zap.Logger,
) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{
		userRepo:     userRepo,
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*UserResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*UserResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var address *identity.Address
	if req.Address != nil {
		address = &identity.Address{
			Street:  req.Address.Street,
			City:    req.Address.City,
			State:   req.Address.State,
			ZipCode: req.Address.ZipCode,
			Country: req.Address.Country,
		}
	}
	if err := user.UpdateProfile(req.Name, req.Phone, req.Image, address); err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ListUsers pages through accounts for the admin panel.
func (s *UserService) ListUsers(ctx context.Context, query ListUsersQuery) ([]*UserResponse, int64, error) {
	users, total, err := s.userRepo.FindAll(ctx, identity.UserFilter{
		Search: query.Search,
		Role:   identity.Role(query.Role),
		Page:   query.Page,
		Limit:  query.Limit,
	})
	if err != nil {
		return nil, 0, err
	}
	responses := make([]*UserResponse, len(users))
	for i, u := range users {
		responses[i] = toUserResponse(u)
	}
	return responses, total, nil
}

func (s *UserService) GetUser(ctx context.Context, userID string) (*UserResponse, error) {
	return s.GetProfile(ctx, userID)
}

// UpdateRole reassigns a user's role on behalf of an acting staff
// member. The domain enforces who may grant what.
func (s *UserService) UpdateRole(ctx context.Context, userID string, req UpdateRoleRequest, actor identity.Role) (*UserResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	target, err := identity.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}
	if err := user.AssignRole(target, actor); err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("User role changed",
		zap.String("user_id", user.ID.String()),
		zap.String("role", target.String()),
	)
	return toUserResponse(user), nil
}

func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	id, err := shared.ParseID(userID)
	if err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}

// AddToWishlist records a product on the user's wishlist. The product
// must exist; duplicates surface as conflicts.
func (s *UserService) AddToWishlist(ctx context.Context, userID string, productID uuid.UUID) error {
	id, err := shared.ParseID(userID)
	if err != nil {
		return err
	}
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return err
	}
	return s.wishlistRepo.Add(ctx, identity.NewWishlistItem(id, productID))
}

func (s *UserService) RemoveFromWishlist(ctx context.Context, userID string, productID uuid.UUID) error {
	id, err := shared.ParseID(userID)
	if err != nil {
		return err
	}
	return s.wishlistRepo.Remove(ctx, id, productID)
}

// Wishlist returns the wishlisted products, most recently added first.
// Products that have since been deleted are skipped.
func (s *UserService) Wishlist(ctx context.Context, userID string) ([]*appcatalog.ProductResponse, error) {
	id, err := shared.ParseID(userID)
	if err != nil {
		return nil, err
	}
	productIDs, err := s.wishlistRepo.ProductIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(productIDs) == 0 {
		return []*appcatalog.ProductResponse{}, nil
	}

	products, err := s.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	responses := make([]*appcatalog.ProductResponse, 0, len(productIDs))
	for _, pid := range productIDs {
		if p, ok := byID[pid]; ok {
			responses = append(responses, appcatalog.NewProductResponse(p))
		}
	}
	return responses, nil
}

func (s *UserService) findUser(ctx context.Context, userID string) (*identity.User, error) {
	id, err := shared.ParseID(userID)
	if err != nil {
		return nil, err
	}
	return s.userRepo.FindByID(ctx, id)
}
