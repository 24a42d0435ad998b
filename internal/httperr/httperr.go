package httperr

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type HTTPError struct {
	Success bool              `json:"success"`
	Code    string            `json:"error_code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Write sends a failure body and aborts the handler chain.
func Write(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func ForbiddenStatus(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// StatusFor maps a taxonomy kind to its HTTP status.
func StatusFor(k Kind) int {
	switch k {
	case KindValidation, KindClosed, KindUnavailable, KindInvalidState:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err as a structured failure and aborts the chain.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	if !errors.As(err, &be) {
		be = BusinessError{Kind: KindInternal, Code: "internal_error", Message: "Internal server error.", cause: err}
	}

	status := StatusFor(be.Kind)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
		slog.ErrorContext(c.Request.Context(), "request failed",
			"path", c.FullPath(),
			"code", be.Code,
			"error", fmt.Sprintf("%+v", err),
		)
	}

	c.AbortWithStatusJSON(status, HTTPError{
		Code:    be.Code,
		Message: be.Message,
		Errors:  be.Fields,
	})
}

// BindError turns a gin binding failure into a validation error with a
// per-field map when the validator produced one.
func BindError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Validation("invalid_request", "Invalid request body.", nil)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := lowerFirst(fe.Field())
		switch fe.Tag() {
		case "required":
			fields[name] = name + " is required"
		case "oneof":
			fields[name] = name + " must be one of: " + fe.Param()
		case "clock":
			fields[name] = name + " must be HH:MM"
		case "isodate":
			fields[name] = name + " must be YYYY-MM-DD"
		case "weekday":
			fields[name] = name + " must be a lowercase weekday name"
		default:
			fields[name] = name + " is invalid (" + fe.Tag() + ")"
		}
	}
	return Validation("invalid_request", "Missing or invalid fields.", fields)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
