package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/storefront/backend/internal/infrastructure/i18n"
)

// LocaleKey is the context key holding the matched locale.
const LocaleKey = "locale"

// Locale matches the Accept-Language header against the supported
// locales and stores the winner in the request context.
func Locale(bundle *i18n.Bundle) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := bundle.Match(c.GetHeader("Accept-Language"))
		c.Set(LocaleKey, locale)
		c.Writer.Header().Set("Content-Language", locale)
		c.Next()
	}
}

// GetLocale returns the locale matched for this request, or "".
func GetLocale(c *gin.Context) string {
	return c.GetString(LocaleKey)
}
