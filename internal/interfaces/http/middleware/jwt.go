package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/interfaces/http/dto"
)

// Context keys set by the auth middleware.
const (
	ClaimsKey     = "auth_claims"
	UserIDKey     = "auth_user_id"
	RoleKey       = "auth_role"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// AuthConfig holds JWT middleware configuration.
type AuthConfig struct {
	JWTService *auth.JWTService
	// Blacklist is optional; when set, revoked tokens are rejected.
	Blacklist auth.TokenBlacklist
	Logger    *zap.Logger
}

// Authenticate validates the bearer token and stores its claims in the
// request context. Every failure is a plain 401; authorization checks
// only run after authentication has passed.
func Authenticate(cfg AuthConfig) gin.HandlerFunc {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		header := c.GetHeader(AuthHeaderKey)
		if header == "" || !strings.HasPrefix(header, BearerPrefix) {
			unauthorized(c)
			return
		}
		tokenString := strings.TrimPrefix(header, BearerPrefix)
		if tokenString == "" {
			unauthorized(c)
			return
		}

		claims, err := cfg.JWTService.ValidateAccessToken(tokenString)
		if err != nil {
			logger.Debug("Token validation failed", zap.Error(err))
			unauthorized(c)
			return
		}

		if cfg.Blacklist != nil {
			revoked, err := cfg.Blacklist.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				logger.Error("Token blacklist check failed", zap.Error(err))
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					dto.NewErrorResponse("Internal server error"))
				return
			}
			if revoked {
				unauthorized(c)
				return
			}
		}

		c.Set(ClaimsKey, claims)
		c.Set(UserIDKey, claims.UserID)
		c.Set(RoleKey, claims.UserRole())
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
}

// GetClaims returns the validated claims, or nil outside an
// authenticated route.
func GetClaims(c *gin.Context) *auth.Claims {
	if v, ok := c.Get(ClaimsKey); ok {
		if claims, ok := v.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}

// GetUserID returns the authenticated user's ID, or "".
func GetUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

// GetRole returns the authenticated user's role. Unauthenticated
// requests report an empty role, which never passes a rank check.
func GetRole(c *gin.Context) identity.Role {
	if v, ok := c.Get(RoleKey); ok {
		if role, ok := v.(identity.Role); ok {
			return role
		}
	}
	return identity.Role("")
}
