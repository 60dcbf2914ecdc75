package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FieldError describes a single failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorMessage writes a JSON error body with the given status.
func ErrorMessage(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"message": message})
}

// NotFound writes a 404 with the given message.
func NotFound(ctx *gin.Context, message string) {
	ErrorMessage(ctx, http.StatusNotFound, message)
}

// ServerError logs the cause and writes an opaque 500.
func ServerError(ctx *gin.Context, err error) {
	if Sugar != nil {
		Sugar.Errorw("request failed", "method", ctx.Request.Method, "path", ctx.Request.URL.Path, "error", err)
	}
	ErrorMessage(ctx, http.StatusInternalServerError, "Server error")
}

// ValidationError writes a 400 carrying field-level errors when the bind
// failure came from the validator, or a plain message otherwise.
func ValidationError(ctx *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{
				Field:   fe.Field(),
				Message: validationMessage(fe),
			})
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid data", "errors": fields})
		return
	}
	ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid data", "errors": []FieldError{}})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return "is invalid"
	}
}
