package apierr

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"

	govalidator "github.com/go-playground/validator/v10"

	"github.com/tuanvumaihuynh/inventory-hub/internal/apperr"
	"github.com/tuanvumaihuynh/inventory-hub/internal/http/gen"
	"github.com/tuanvumaihuynh/inventory-hub/pkg/validator"
	"github.com/tuanvumaihuynh/inventory-hub/pkg/zerror"
)

// ErrorResponse is the error response for the API.
type ErrorResponse struct {
	gen.ErrorResponse

	// StatusCode is the status code for the error response.
	StatusCode int `json:"-"`
}

func New(err error) ErrorResponse {
	return errorToErrorResponse(err)
}

var InternalServerErr = ErrorResponse{
	ErrorResponse: gen.ErrorResponse{
		Code:    "INTERNAL_SERVER_ERROR",
		Message: "an unknown error occurred",
	},
	StatusCode: http.StatusInternalServerError,
}

var RouteNotFoundErr = ErrorResponse{
	ErrorResponse: gen.ErrorResponse{
		Code:    "ROUTE_NOT_FOUND",
		Message: "route not found",
	},
	StatusCode: http.StatusNotFound,
}

func errorToErrorResponse(err error) ErrorResponse {
	var zErr zerror.ZError
	if errors.As(err, &zErr) {
		return ErrorResponse{
			ErrorResponse: gen.ErrorResponse{
				Code:    zErr.Code(),
				Message: zErr.Msg(),
				Details: fieldErrors(err),
			},
			StatusCode: ZErrorStatusToHTTPStatus(zErr.Status()),
		}
	}

	if details := fieldErrors(err); details != nil {
		return ErrorResponse{
			ErrorResponse: gen.ErrorResponse{
				Code:    apperr.ValidationErrorCode,
				Message: "validation error",
				Details: details,
			},
			StatusCode: http.StatusBadRequest,
		}
	}

	if isOpenAPICodegenErr(err) {
		return ErrorResponse{
			ErrorResponse: gen.ErrorResponse{
				Code:    apperr.ValidationErrorCode,
				Message: err.Error(),
			},
			StatusCode: http.StatusBadRequest,
		}
	}

	return InternalServerErr
}

// fieldErrors lists the offending fields of a validator failure or of a JSON
// value that did not fit its field.
func fieldErrors(err error) *[]gen.FieldError {
	var validationErrs govalidator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]gen.FieldError, len(validationErrs))
		for i, fe := range validationErrs {
			details[i] = gen.FieldError{
				Field:   fe.Field(),
				Message: validator.ValidationErrorMessage(fe),
			}
		}
		return &details
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		msg := "has an invalid type"
		if typeErr.Type != nil && typeErr.Type.Kind() == reflect.Float64 {
			msg = "must be a number"
		}
		return &[]gen.FieldError{{Field: typeErr.Field, Message: msg}}
	}

	return nil
}

func ZErrorStatusToHTTPStatus(status zerror.Status) int {
	switch status {
	case zerror.StatusNotFound:
		return http.StatusNotFound
	case zerror.StatusBadRequest, zerror.StatusValidationFailed:
		return http.StatusBadRequest
	case zerror.StatusServiceUnavailable:
		return http.StatusServiceUnavailable
	case zerror.StatusUnknown, zerror.StatusInternalServerError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func isOpenAPICodegenErr(err error) bool {
	var (
		e1 *gen.UnescapedCookieParamError
		e2 *gen.UnmarshalingParamError
		e3 *gen.RequiredParamError
		e4 *gen.RequiredHeaderError
		e5 *gen.InvalidParamFormatError
		e6 *gen.TooManyValuesForParamError
	)

	return errors.As(err, &e1) ||
		errors.As(err, &e2) ||
		errors.As(err, &e3) ||
		errors.As(err, &e4) ||
		errors.As(err, &e5) ||
		errors.As(err, &e6)
}
