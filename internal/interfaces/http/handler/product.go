package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	appcatalog "github.com/storefront/backend/internal/application/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// ProductHandler serves the public storefront catalog and the admin
// product CRUD.
type ProductHandler struct {
	productService *appcatalog.ProductService
	authMW         gin.HandlerFunc
}

func NewProductHandler(productService *appcatalog.ProductService, authMW gin.HandlerFunc) *ProductHandler {
	return &ProductHandler{productService: productService, authMW: authMW}
}

func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.GET("", h.List)
		products.GET("/:id", h.Get)
	}

	admin := rg.Group("/admin/products", h.authMW, middleware.RequireAdmin())
	{
		admin.GET("", h.AdminList)
		admin.GET("/:id", h.AdminGet)
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", middleware.RequireManager(), h.Delete)
	}
}

// productListQuery carries the catalog listing query parameters.
type productListQuery struct {
	dto.PageQuery
	Search   string   `form:"search"`
	Category string   `form:"category"`
	Status   string   `form:"status"`
	Featured *bool    `form:"featured"`
	MinPrice *float64 `form:"minPrice"`
	MaxPrice *float64 `form:"maxPrice"`
	Sort     string   `form:"sort"`
}

func (q productListQuery) toListQuery(defaultLimit int) (appcatalog.ListProductsQuery, error) {
	page, limit := q.Normalize(defaultLimit)
	query := appcatalog.ListProductsQuery{
		Search: q.Search,
		Sort:   q.Sort,
		Page:   page,
		Limit:  limit,
	}
	if q.Category != "" {
		id, err := uuid.Parse(q.Category)
		if err != nil {
			return query, shared.ErrInvalidID
		}
		query.Category = &id
	}
	if q.Status != "" {
		status := q.Status
		query.Status = &status
	}
	query.Featured = q.Featured
	if q.MinPrice != nil {
		min := decimal.NewFromFloat(*q.MinPrice)
		query.MinPrice = &min
	}
	if q.MaxPrice != nil {
		max := decimal.NewFromFloat(*q.MaxPrice)
		query.MaxPrice = &max
	}
	return query, nil
}

func (h *ProductHandler) List(c *gin.Context) {
	var q productListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, shared.NewValidationError("Invalid query parameters"))
		return
	}
	query, err := q.toListQuery(dto.PublicPageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	items, total, err := h.productService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, items, query.Page, query.Limit, total)
}

func (h *ProductHandler) AdminList(c *gin.Context) {
	var q productListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, shared.NewValidationError("Invalid query parameters"))
		return
	}
	query, err := q.toListQuery(dto.AdminPageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	items, total, err := h.productService.AdminList(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, items, query.Page, query.Limit, total)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, err := shared.ParseID(pathID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	product, err := h.productService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, product)
}

func (h *ProductHandler) AdminGet(c *gin.Context) {
	id, err := shared.ParseID(pathID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	product, err := h.productService.AdminGet(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req appcatalog.CreateProductRequest
	if !bindJSON(c, &req) {
		return
	}
	product, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := shared.ParseID(pathID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	var req appcatalog.UpdateProductRequest
	if !bindJSON(c, &req) {
		return
	}
	product, err := h.productService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := shared.ParseID(pathID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Product deleted successfully")
}
