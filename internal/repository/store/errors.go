package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/imageshare/imageshare-server/internal/model"
)

// wrapError translates backend errors into the model taxonomy. Errors that
// already carry a model kind pass through unchanged so state-machine
// results are not re-wrapped as store failures.
func wrapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, model.ErrValidation),
		errors.Is(err, model.ErrInvalidArgument),
		errors.Is(err, model.ErrAlreadyActive),
		errors.Is(err, model.ErrNotActive),
		errors.Is(err, model.ErrNotFound),
		errors.Is(err, model.ErrStore),
		errors.Is(err, model.ErrAuth):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return model.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", model.ErrValidation, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", model.ErrValidation, err)
	default:
		return fmt.Errorf("%w: %v", model.ErrStore, err)
	}
}
