package apperr

import "github.com/tuanvumaihuynh/inventory-hub/pkg/zerror"

const (
	ValidationErrorCode  = "VALIDATION_FAILED"
	ProductNotFoundCode  = "PRODUCT_NOT_FOUND"
	PersistenceErrorCode = "PERSISTENCE_FAILED"
)

var (
	ValidationErr      = zerror.NewValidationFailed(ValidationErrorCode, "validation error")
	ProductNotFoundErr = zerror.NewNotFound(ProductNotFoundCode, "product not found")
	PersistenceErr     = zerror.NewInternalServerError(PersistenceErrorCode, "failed to persist catalog")
)
