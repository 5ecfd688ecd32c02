package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/storefront/backend/internal/application/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// CategoryHandler serves the public category tree and the admin CRUD.
type CategoryHandler struct {
	categoryService *appcatalog.CategoryService
	authMW          gin.HandlerFunc
}

func NewCategoryHandler(categoryService *appcatalog.CategoryService, authMW gin.HandlerFunc) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, authMW: authMW}
}

func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/categories")
	{
		categories.GET("", h.List)
		categories.GET("/:id", h.Get)
	}

	admin := rg.Group("/admin/categories", h.authMW, middleware.RequireAdmin())
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", middleware.RequireManager(), h.Delete)
	}
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, categories)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := shared.ParseID(pathID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	category, err := h.categoryService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, category)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req appcatalog.CreateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	category, err := h.categoryService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := shared.ParseID(pathID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	var req appcatalog.UpdateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	category, err := h.categoryService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := shared.ParseID(pathID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.categoryService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Category deleted successfully")
}
