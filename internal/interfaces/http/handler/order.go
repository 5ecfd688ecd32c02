package handler

import (
	"github.com/gin-gonic/gin"

	apporder "github.com/storefront/backend/internal/application/order"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// OrderHandler serves customer checkout and the admin order pipeline.
type OrderHandler struct {
	orderService *apporder.Service
	authMW       gin.HandlerFunc
}

func NewOrderHandler(orderService *apporder.Service, authMW gin.HandlerFunc) *OrderHandler {
	return &OrderHandler{orderService: orderService, authMW: authMW}
}

func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders", h.authMW)
	{
		orders.POST("", h.Place)
		orders.GET("", h.ListMine)
		orders.GET("/:id", h.Get)
		orders.POST("/:id/cancel", h.CancelMine)
	}

	admin := rg.Group("/admin/orders", h.authMW, middleware.RequireManager())
	{
		admin.GET("", h.AdminList)
		admin.PATCH("/:id/status", h.UpdateStatus)
	}
}

type orderListQuery struct {
	dto.PageQuery
	Status string `form:"status"`
}

func (h *OrderHandler) Place(c *gin.Context) {
	var req apporder.PlaceOrderRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.orderService.PlaceOrder(c.Request.Context(), middleware.GetUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, resp)
}

func (h *OrderHandler) ListMine(c *gin.Context) {
	var q orderListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, shared.NewValidationError("Invalid query parameters"))
		return
	}
	page, limit := q.Normalize(dto.PublicPageSize)
	orders, total, err := h.orderService.ListMyOrders(c.Request.Context(), middleware.GetUserID(c),
		apporder.ListOrdersQuery{Status: q.Status, Page: page, Limit: limit})
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, orders, page, limit, total)
}

func (h *OrderHandler) Get(c *gin.Context) {
	resp, err := h.orderService.Get(c.Request.Context(), pathID(c),
		middleware.GetUserID(c), middleware.GetRole(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, resp)
}

func (h *OrderHandler) CancelMine(c *gin.Context) {
	resp, err := h.orderService.CancelMyOrder(c.Request.Context(), pathID(c), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, resp)
}

func (h *OrderHandler) AdminList(c *gin.Context) {
	var q orderListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, shared.NewValidationError("Invalid query parameters"))
		return
	}
	page, limit := q.Normalize(dto.AdminPageSize)
	orders, total, err := h.orderService.AdminList(c.Request.Context(),
		apporder.ListOrdersQuery{Status: q.Status, Page: page, Limit: limit})
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, orders, page, limit, total)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req apporder.UpdateStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.orderService.UpdateStatus(c.Request.Context(), pathID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, resp)
}
