package handler

import (
	"github.com/gin-gonic/gin"

	appidentity "github.com/storefront/backend/internal/application/identity"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// UserHandler serves profile self-service, wishlists and the admin
// user administration.
type UserHandler struct {
	userService *appidentity.UserService
	authMW      gin.HandlerFunc
}

func NewUserHandler(userService *appidentity.UserService, authMW gin.HandlerFunc) *UserHandler {
	return &UserHandler{userService: userService, authMW: authMW}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	profile := rg.Group("/profile", h.authMW)
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
	}

	wishlist := rg.Group("/wishlist", h.authMW)
	{
		wishlist.GET("", h.Wishlist)
		wishlist.POST("", h.AddToWishlist)
		wishlist.DELETE("/:id", h.RemoveFromWishlist)
	}

	admin := rg.Group("/admin/users", h.authMW, middleware.RequireManager())
	{
		admin.GET("", h.List)
		admin.GET("/:id", h.Get)
		admin.PATCH("/:id/role", h.UpdateRole)
		admin.DELETE("/:id", middleware.RequireSuperAdmin(), h.Delete)
	}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.userService.GetProfile(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, user)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req appidentity.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.userService.UpdateProfile(c.Request.Context(), middleware.GetUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, user)
}

func (h *UserHandler) Wishlist(c *gin.Context) {
	items, err := h.userService.Wishlist(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, items)
}

func (h *UserHandler) AddToWishlist(c *gin.Context) {
	var req appidentity.AddWishlistRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.userService.AddToWishlist(c.Request.Context(), middleware.GetUserID(c), req.ProductID); err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, nil)
}

func (h *UserHandler) RemoveFromWishlist(c *gin.Context) {
	productID, err := shared.ParseID(pathID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.userService.RemoveFromWishlist(c.Request.Context(), middleware.GetUserID(c), productID); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Removed from wishlist")
}

type userListQuery struct {
	dto.PageQuery
	Search string `form:"search"`
	Role   string `form:"role"`
}

func (h *UserHandler) List(c *gin.Context) {
	var q userListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, shared.NewValidationError("Invalid query parameters"))
		return
	}
	page, limit := q.Normalize(dto.AdminPageSize)
	users, total, err := h.userService.ListUsers(c.Request.Context(), appidentity.ListUsersQuery{
		Search: q.Search, Role: q.Role, Page: page, Limit: limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, users, page, limit, total)
}

func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), pathID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, user)
}

func (h *UserHandler) UpdateRole(c *gin.Context) {
	var req appidentity.UpdateRoleRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.userService.UpdateRole(c.Request.Context(), pathID(c), req, middleware.GetRole(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Request.Context(), pathID(c)); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "User deleted successfully")
}
