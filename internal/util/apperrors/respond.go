package apperrors

import (
	"errors"
	"net/http"

	"vazifa/internal/util/logger"

	"github.com/gin-gonic/gin"
)

// Conflicts are surfaced as 400, matching the API envelope convention.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindConflict, KindRequiresInvite:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes the failure envelope for err. Unexpected errors are logged
// server-side and surfaced as an opaque message.
func Respond(ctx *gin.Context, err error) {
	status := HTTPStatus(err)

	if status == http.StatusInternalServerError {
		logger.GetLogger().Error("unexpected error",
			"error", err,
			"path", ctx.FullPath(),
			"method", ctx.Request.Method,
		)
		ctx.JSON(status, gin.H{"message": "internal server error"})
		return
	}

	body := gin.H{"message": err.Error()}

	var appErr *Error
	if errors.As(err, &appErr) {
		if len(appErr.Fields) > 0 {
			body["errors"] = appErr.Fields
		}
		for key, value := range appErr.Details {
			body[key] = value
		}
	}

	ctx.JSON(status, body)
}
