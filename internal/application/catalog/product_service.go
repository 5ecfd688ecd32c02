package catalog

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// ProductService handles catalog business operations.
type ProductService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	logger       *zap.Logger
}

func NewProductService(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	logger *zap.Logger,
) *ProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// List returns the storefront view: only active products, with any
// requested status filter ignored.
func (s *ProductService) List(ctx context.Context, query ListProductsQuery) ([]*ProductResponse, int64, error) {
	active := catalog.ProductStatusActive
	query.Status = nil
	filter := s.buildFilter(query)
	filter.Status = &active
	return s.findAll(ctx, filter)
}

// AdminList returns all products regardless of status, honoring an
// explicit status filter when one is supplied.
func (s *ProductService) AdminList(ctx context.Context, query ListProductsQuery) ([]*ProductResponse, int64, error) {
	filter := s.buildFilter(query)
	if query.Status != nil {
		status := catalog.ProductStatus(*query.Status)
		if !status.Valid() {
			return nil, 0, shared.NewValidationError("Invalid product status: " + *query.Status)
		}
		filter.Status = &status
	}
	return s.findAll(ctx, filter)
}

func (s *ProductService) buildFilter(query ListProductsQuery) catalog.ProductFilter {
	return catalog.ProductFilter{
		Search:     query.Search,
		CategoryID: query.Category,
		Featured:   query.Featured,
		MinPrice:   query.MinPrice,
		MaxPrice:   query.MaxPrice,
		Sort:       catalog.ParseSortOrder(query.Sort),
		Page:       query.Page,
		Limit:      query.Limit,
	}
}

func (s *ProductService) findAll(ctx context.Context, filter catalog.ProductFilter) ([]*ProductResponse, int64, error) {
	products, total, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*ProductResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out, total, nil
}

// Get returns one product for the storefront. Drafts and archived
// products are indistinguishable from missing ones.
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !product.IsPurchasable() {
		return nil, shared.NewNotFoundError("Product")
	}
	return toProductResponse(product), nil
}

// AdminGet returns one product regardless of status.
func (s *ProductService) AdminGet(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Create creates a new product. Titles are unique.
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	if _, err := s.productRepo.FindByTitle(ctx, req.Title); err == nil {
		return nil, shared.ErrAlreadyExists
	} else if !shared.IsKind(err, shared.KindNotFound) {
		return nil, err
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
	}

	product, err := catalog.NewProduct(req.Title, req.Description, req.Price, req.Images)
	if err != nil {
		return nil, err
	}
	product.SetCategory(req.CategoryID)
	product.Tags = req.Tags

	if err := product.SetPricing(req.Price, req.ComparePrice); err != nil {
		return nil, err
	}
	if req.Status != nil {
		if err := product.SetStatus(catalog.ProductStatus(*req.Status)); err != nil {
			return nil, err
		}
	}
	if req.Featured != nil {
		product.SetFeatured(*req.Featured)
	}
	if req.Inventory != nil {
		if err := product.SetInventory(toInventory(*req.Inventory, product.Inventory)); err != nil {
			return nil, err
		}
	}
	if req.SEO != nil {
		product.SEO = catalog.SEO{
			Title:       req.SEO.Title,
			Description: req.SEO.Description,
			Keywords:    req.SEO.Keywords,
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("title", product.Title),
	)
	return toProductResponse(product), nil
}

// Update applies a partial update to a product.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && *req.Title != product.Title {
		if _, err := s.productRepo.FindByTitle(ctx, *req.Title); err == nil {
			return nil, shared.ErrAlreadyExists
		} else if !shared.IsKind(err, shared.KindNotFound) {
			return nil, err
		}
		product.Title = *req.Title
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil || req.ComparePrice != nil {
		price := product.Price
		if req.Price != nil {
			price = *req.Price
		}
		compare := product.ComparePrice
		if req.ComparePrice != nil {
			compare = req.ComparePrice
		}
		if err := product.SetPricing(price, compare); err != nil {
			return nil, err
		}
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		product.SetCategory(req.CategoryID)
	}
	if req.Images != nil {
		product.Images = req.Images
	}
	if req.Tags != nil {
		product.Tags = req.Tags
	}
	if req.Status != nil {
		if err := product.SetStatus(catalog.ProductStatus(*req.Status)); err != nil {
			return nil, err
		}
	}
	if req.Featured != nil {
		product.SetFeatured(*req.Featured)
	}
	if req.Inventory != nil {
		if err := product.SetInventory(toInventory(*req.Inventory, product.Inventory)); err != nil {
			return nil, err
		}
	}
	if req.SEO != nil {
		product.SEO = catalog.SEO{
			Title:       req.SEO.Title,
			Description: req.SEO.Description,
			Keywords:    req.SEO.Keywords,
		}
	}
	product.Touch()

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete removes a product permanently.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Product deleted", zap.String("product_id", id.String()))
	return nil
}

func toInventory(input InventoryInput, current catalog.Inventory) catalog.Inventory {
	inv := catalog.Inventory{
		Quantity:       input.Quantity,
		TrackQuantity:  current.TrackQuantity,
		AllowBackorder: current.AllowBackorder,
	}
	if input.TrackQuantity != nil {
		inv.TrackQuantity = *input.TrackQuantity
	}
	if input.AllowBackorder != nil {
		inv.AllowBackorder = *input.AllowBackorder
	}
	return inv
}
