package application

import (
	"errors"
	"strconv"

	"github.com/wms-platform/services/restock-service/internal/domain"
	apperrors "github.com/wms-platform/services/restock-service/pkg/errors"
)

// mapDomainError converts domain sentinel errors to the platform AppError
// taxonomy. Repository failures should be wrapped with
// apperrors.ErrPersistence before reaching this function.
func mapDomainError(err error) *apperrors.AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := apperrors.AsAppError(err); ok {
		return appErr
	}

	switch {
	case errors.Is(err, domain.ErrRestockOrderNotFound):
		return apperrors.ErrNotFound("restock order").Wrap(err)
	case errors.Is(err, domain.ErrInternalOrderNotFound):
		return apperrors.ErrNotFound("internal order").Wrap(err)
	case errors.Is(err, domain.ErrSKUNotFound):
		return apperrors.ErrNotFound("sku").Wrap(err)
	case errors.Is(err, domain.ErrPositionNotFound):
		return apperrors.ErrNotFound("position").Wrap(err)
	case errors.Is(err, domain.ErrSKUItemNotFound):
		return apperrors.ErrNotFound("sku item").Wrap(err)
	case errors.Is(err, domain.ErrSupplierNotFound):
		return apperrors.ErrDependencyViolation("supplier does not exist").Wrap(err)
	case errors.Is(err, domain.ErrWrongOrderState),
		errors.Is(err, domain.ErrEarlyDeliveryDate):
		return apperrors.ErrInvalidState(err.Error()).Wrap(err)
	case errors.Is(err, domain.ErrPositionTaken),
		errors.Is(err, domain.ErrPositionAlreadyExists),
		errors.Is(err, domain.ErrUnknownState),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrFutureDate),
		errors.Is(err, domain.ErrNoProducts),
		errors.Is(err, domain.ErrInvalidProductLine),
		errors.Is(err, domain.ErrInvalidRFID),
		errors.Is(err, domain.ErrInvalidSKUReference),
		errors.Is(err, domain.ErrInvalidSKU),
		errors.Is(err, domain.ErrInvalidSKUItem),
		errors.Is(err, domain.ErrInvalidPositionID),
		errors.Is(err, domain.ErrMissingCompletedItems):
		return apperrors.ErrValidation(err.Error()).Wrap(err)
	default:
		return apperrors.ErrInternal("").Wrap(err)
	}
}

func itoa(id int) string {
	return strconv.Itoa(id)
}
