package ginx

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Response 统一响应结构
// 前端约定：success=true 时携带 data，success=false 时携带 error/message
type Response struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Message   string      `json:"message,omitempty"`
	Details   []Detail    `json:"details,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// Detail 错误详情
type Detail struct {
	Path string `json:"path" example:"limit"`
	Info string `json:"info" example:"limit must be at least 1"`
}

// Success 成功响应（200）
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UnixMilli(),
	})
}

// Error 错误响应
func Error(c *gin.Context, httpCode int, errType string, message string) {
	c.JSON(httpCode, Response{
		Success:   false,
		Error:     errType,
		Message:   message,
		Timestamp: time.Now().UnixMilli(),
	})
}

// BadRequest 400 错误
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, "BadRequest", message)
}

// BadRequestWithValidation 400 错误（带验证详情）
func BadRequestWithValidation(c *gin.Context, err error) {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		details := make([]Detail, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			details = append(details, Detail{
				Path: fieldErr.Field(),
				Info: getValidationErrorMessage(fieldErr),
			})
		}
		c.JSON(http.StatusBadRequest, Response{
			Success:   false,
			Error:     "ValidationError",
			Message:   "Validation failed",
			Details:   details,
			Timestamp: time.Now().UnixMilli(),
		})
		return
	}

	BadRequest(c, err.Error())
}

// InternalError 500 错误
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, "InternalError", message)
}

// ConfigError 500 错误（配置缺失）
func ConfigError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, "ConfigurationError", message)
}

// MethodNotAllowed 405 错误
func MethodNotAllowed(c *gin.Context) {
	Error(c, http.StatusMethodNotAllowed, "MethodNotAllowed", "Method not allowed")
}

// NotFound 404 错误
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, "NotFound", message)
}

// getValidationErrorMessage 根据验证错误类型返回友好的错误消息
func getValidationErrorMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fieldErr.Field() + " is required"
	case "min":
		return fieldErr.Field() + " must be at least " + fieldErr.Param()
	case "max":
		return fieldErr.Field() + " must be at most " + fieldErr.Param()
	default:
		return fieldErr.Field() + " is invalid"
	}
}
