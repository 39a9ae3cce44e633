package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "verifyme.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error renders err in the `{error: true, message}` envelope with the
// status carried by the AppError, or mapped from the domain sentinel.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{
			"error":   true,
			"message": appErr.Message,
		})
		return
	}

	status := http.StatusInternalServerError
	message := "internal server error"
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		status, message = http.StatusNotFound, "resource not found"
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		status, message = http.StatusConflict, "resource already exists"
	case errors.Is(err, domainerrors.ErrInvalidInput), errors.Is(err, domainerrors.ErrBadRequest), errors.Is(err, domainerrors.ErrUnsupportedType):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		status, message = http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domainerrors.ErrEmailNotVerified):
		status, message = http.StatusUnauthorized, "email not verified"
	case errors.Is(err, domainerrors.ErrUnauthorized), errors.Is(err, domainerrors.ErrTokenExpired):
		status, message = http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, domainerrors.ErrForbidden):
		status, message = http.StatusForbidden, "forbidden"
	case errors.Is(err, domainerrors.ErrVerifiedImmutable):
		status, message = http.StatusConflict, "channel status is terminal and cannot change"
	}

	c.JSON(status, gin.H{
		"error":   true,
		"message": message,
	})
}

// ErrorWithStatus sends an error response with an explicit status
func ErrorWithStatus(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"error":   true,
		"message": message,
	})
}
