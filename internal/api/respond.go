package api

import (
	"errors"

	apperrors "github.com/ajharbinger/lead-intent-api/internal/errors"
)

// asAppError unwraps err into an AppError when one is in the chain
func asAppError(err error, target **apperrors.AppError) bool {
	return errors.As(err, target)
}
