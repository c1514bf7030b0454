package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Message string      `json:"message"`
	Error   *AppError   `json:"error,omitempty"`
	Details interface{} `json:"errors,omitempty"`
}

// HandleError - основная логика обработки ошибок для Gin.
// Все, что не является *AppError, сворачивается в generic 500 без деталей.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	// Серверные ошибки логируем вместе с причиной, клиенту причину не отдаем
	if appErr.HTTPCode >= 500 {
		slog.Error("server error", "error", appErr.Error(), "cause", appErr.Unwrap())
		c.JSON(appErr.HTTPCode, ErrorResponse{Message: "Internal server error"})
		return
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{
		Message: appErr.Message,
		Error:   appErr,
		Details: appErr.Details,
	})
}

// AsAppError - пытается преобразовать error в *AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
