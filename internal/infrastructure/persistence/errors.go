package persistence

import (
	"errors"

	"gorm.io/gorm"

	"github.com/storefront/backend/internal/domain/shared"
)

// translateError maps gorm errors onto typed domain errors so callers
// never branch on driver error strings. resource names the aggregate
// for not-found messages.
func translateError(err error, resource string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return shared.NewNotFoundError(resource)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return shared.ErrAlreadyExists
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return shared.NewNotFoundError(resource)
	default:
		return err
	}
}
