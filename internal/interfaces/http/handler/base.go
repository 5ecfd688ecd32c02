package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/interfaces/http/dto"
)

// statusFor maps domain error kinds to HTTP status codes.
func statusFor(kind shared.ErrorKind) int {
	switch kind {
	case shared.KindValidation, shared.KindInvalidState:
		return http.StatusUnprocessableEntity
	case shared.KindInvalidID:
		return http.StatusBadRequest
	case shared.KindUnauthorized:
		return http.StatusUnauthorized
	case shared.KindForbidden:
		return http.StatusForbidden
	case shared.KindNotFound:
		return http.StatusNotFound
	case shared.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError renders a domain error. Unexpected errors are logged
// with the request context and replaced by a fixed message so internal
// detail never reaches the client.
func respondError(c *gin.Context, err error) {
	kind := shared.KindOf(err)
	status := statusFor(kind)
	if status == http.StatusInternalServerError {
		logger.GetGinLogger(c).Error("Unhandled error",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		c.JSON(status, dto.NewErrorResponse("Internal server error"))
		return
	}
	c.JSON(status, dto.NewErrorResponse(err.Error()))
}

// bindJSON binds and validates a JSON body, rendering the 422 field
// map on failure. The caller stops when it returns false.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusUnprocessableEntity,
			dto.NewValidationErrorResponse(dto.TranslateBindingError(err)))
		return false
	}
	return true
}

// pathID reads the :id path parameter as a raw string; services parse
// and reject malformed IDs with a 400.
func pathID(c *gin.Context) string {
	return c.Param("id")
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.NewMessageResponse(message))
}

func respondList(c *gin.Context, data interface{}, page, limit int, total int64) {
	c.JSON(http.StatusOK, dto.NewListResponse(data, page, limit, total))
}
