package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	approvaldomain "github.com/solvolt/heliora/internal/approval/domain"
	distributordomain "github.com/solvolt/heliora/internal/distributor/domain"
	financingdomain "github.com/solvolt/heliora/internal/financing/domain"
	priceprofiledomain "github.com/solvolt/heliora/internal/priceprofile/domain"
	pricingdomain "github.com/solvolt/heliora/internal/pricing/domain"
	solardomain "github.com/solvolt/heliora/internal/solar/domain"
	tariffdomain "github.com/solvolt/heliora/internal/tariff/domain"
	"gorm.io/gorm"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrInternal        = errors.New("internal_error")
	ErrNotFound        = errors.New("not_found")
	ErrInvalidRequest  = errors.New("invalid_request")
	ErrTooManyRequests = errors.New("too_many_requests")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	if err == nil {
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}

	if vErr := asValidationErrors(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	if isValidationError(err) {
		code := validationErrorCode(err)
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{
					Field:   validationErrorField(code),
					Code:    code,
					Message: validationErrorMessage(code),
				},
			},
		}
	}

	switch {
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case errors.Is(err, ErrTooManyRequests):
		return http.StatusTooManyRequests, errorPayload{
			Type:    "too_many_requests",
			Message: "too many requests",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

// classifyErrorForLog feeds the request logger so 4xx noise stays out of the
// error stream.
func classifyErrorForLog(err error) (string, string) {
	status, payload := mapError(err)
	if status >= http.StatusInternalServerError {
		return "internal_error", payload.Type
	}
	if len(payload.Errors) > 0 {
		return payload.Type, payload.Errors[0].Code
	}
	return payload.Type, payload.Type
}

func asValidationErrors(err error) *ValidationErrors {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return true
	case isPricingValidationError(err),
		isDistributorValidationError(err),
		isTariffValidationError(err),
		isSolarValidationError(err),
		isApprovalValidationError(err),
		isFinancingValidationError(err):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, distributordomain.ErrNotFound),
		errors.Is(err, priceprofiledomain.ErrNotFound),
		errors.Is(err, tariffdomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func isPricingValidationError(err error) bool {
	switch err {
	case pricingdomain.ErrInvalidProduct,
		pricingdomain.ErrInvalidDistributor,
		pricingdomain.ErrInvalidQuantity,
		pricingdomain.ErrEmptyBatch:
		return true
	default:
		return false
	}
}

func isDistributorValidationError(err error) bool {
	switch err {
	case distributordomain.ErrInvalidCode,
		distributordomain.ErrInvalidTier:
		return true
	default:
		return false
	}
}

func isTariffValidationError(err error) bool {
	switch err {
	case tariffdomain.ErrInvalidState,
		tariffdomain.ErrInvalidFlag,
		tariffdomain.ErrInvalidConsumption,
		tariffdomain.ErrInvalidSystemCost:
		return true
	default:
		return false
	}
}

func isSolarValidationError(err error) bool {
	switch err {
	case solardomain.ErrInvalidIrradiance,
		solardomain.ErrInvalidSystemSize,
		solardomain.ErrInvalidLossFactor,
		solardomain.ErrInvalidConsumption,
		solardomain.ErrInvalidPanelWatts:
		return true
	default:
		return false
	}
}

func isApprovalValidationError(err error) bool {
	switch err {
	case approvaldomain.ErrInvalidCompany,
		approvaldomain.ErrInvalidOrderTotal,
		approvaldomain.ErrInvalidRuleType:
		return true
	default:
		return false
	}
}

func isFinancingValidationError(err error) bool {
	switch err {
	case financingdomain.ErrInvalidAmount,
		financingdomain.ErrInvalidRate,
		financingdomain.ErrInvalidTerm:
		return true
	default:
		return false
	}
}

func validationErrorCode(err error) string {
	if errors.Is(err, ErrInvalidRequest) {
		return "invalid_request"
	}
	return err.Error()
}

func validationErrorField(code string) string {
	if code == "invalid_request" {
		return "request"
	}
	if strings.HasPrefix(code, "invalid_") {
		return strings.TrimPrefix(code, "invalid_")
	}
	return ""
}

func validationErrorMessage(code string) string {
	switch code {
	case "invalid_request":
		return "invalid request"
	case "empty_batch":
		return "items must not be empty"
	default:
		return "invalid value"
	}
}
