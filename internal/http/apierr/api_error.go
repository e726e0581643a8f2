package apierr

import (
	"errors"
	"fmt"
	"net/http"

	govalidator "github.com/go-playground/validator/v10"

	"github.com/tuanvumaihuynh/food-catalog/pkg/validator"
	"github.com/tuanvumaihuynh/food-catalog/pkg/zerror"
)

// ErrorResponse is the error response for the API.
type ErrorResponse struct {
	Error string `json:"error"`

	// StatusCode is the status code for the error response.
	StatusCode int `json:"-"`
}

func New(err error) ErrorResponse {
	return errorToErrorResponse(err)
}

var (
	InternalServerErr = ErrorResponse{
		Error:      "an unknown error occurred",
		StatusCode: http.StatusInternalServerError,
	}

	NotFoundErr = ErrorResponse{
		Error:      "Not found",
		StatusCode: http.StatusNotFound,
	}

	MethodNotAllowedErr = ErrorResponse{
		Error:      "Method not allowed",
		StatusCode: http.StatusMethodNotAllowed,
	}
)

func errorToErrorResponse(err error) ErrorResponse {
	var zErr zerror.ZError
	if errors.As(err, &zErr) {
		if zErr.Status() == zerror.StatusValidationFailed {
			if res, ok := validationErrorResponse(err); ok {
				return res
			}
		}
		return ErrorResponse{
			Error:      zErr.Msg(),
			StatusCode: ZErrorStatusToHTTPStatus(zErr.Status()),
		}
	}

	if res, ok := validationErrorResponse(err); ok {
		return res
	}

	var paramErr *ParamError
	if errors.As(err, &paramErr) {
		return ErrorResponse{
			Error:      paramErr.Error(),
			StatusCode: http.StatusBadRequest,
		}
	}

	return InternalServerErr
}

// validationErrorResponse reports the first failed field of a validator error.
func validationErrorResponse(err error) (ErrorResponse, bool) {
	var validationErrs govalidator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return ErrorResponse{}, false
	}

	fe := validationErrs[0]
	return ErrorResponse{
		Error:      fmt.Sprintf("%s %s", fe.Field(), validator.ValidationErrorMessage(fe)),
		StatusCode: http.StatusBadRequest,
	}, true
}

func ZErrorStatusToHTTPStatus(status zerror.Status) int {
	switch status {
	case zerror.StatusNotFound:
		return http.StatusNotFound
	case zerror.StatusTooManyRequests:
		return http.StatusTooManyRequests
	case zerror.StatusBadRequest:
		return http.StatusBadRequest
	case zerror.StatusValidationFailed:
		return http.StatusBadRequest
	case zerror.StatusUnknown, zerror.StatusInternalServerError:
		return http.StatusInternalServerError
	case zerror.StatusTimeout:
		return http.StatusGatewayTimeout
	case zerror.StatusServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
