package handler

import (
	"github.com/gin-gonic/gin"

	appidentity "github.com/storefront/backend/internal/application/identity"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// AuthHandler exposes registration, login and the password lifecycle.
type AuthHandler struct {
	authService *appidentity.AuthService
	authMW      gin.HandlerFunc
}

func NewAuthHandler(authService *appidentity.AuthService, authMW gin.HandlerFunc) *AuthHandler {
	return &AuthHandler{authService: authService, authMW: authMW}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/forgot-password", h.ForgotPassword)
		auth.POST("/reset-password", h.ResetPassword)

		auth.POST("/logout", h.authMW, h.Logout)
		auth.POST("/change-password", h.authMW, h.ChangePassword)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req appidentity.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req appidentity.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, resp)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req appidentity.RefreshRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.authService.Refresh(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, resp)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if err := h.authService.Logout(c.Request.Context(), claims); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Logged out successfully")
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req appidentity.ForgotPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.authService.ForgotPassword(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	// The response does not reveal whether the address exists.
	respondMessage(c, "If the email exists, a reset link has been sent")
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req appidentity.ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.authService.ResetPassword(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Password has been reset")
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req appidentity.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.authService.ChangePassword(c.Request.Context(), middleware.GetUserID(c), req); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Password changed successfully")
}
