package errorx

import "errors"

// 定义业务错误
var (
	ErrMissingConfig      = errors.New("required configuration is missing")
	ErrUpstreamFetch      = errors.New("upstream fetch failed")
	ErrWarehouseDisabled  = errors.New("warehouse data source is not configured")
	ErrLLMUnavailable     = errors.New("llm provider unavailable")
	ErrLLMResponseInvalid = errors.New("llm response could not be parsed")
)

// BusinessError 业务错误结构
type BusinessError struct {
	Code    int
	Message string
	Details []ErrorDetail
}

// ErrorDetail 错误详情
type ErrorDetail struct {
	Path string
	Info string
}

// Error 实现 error 接口
func (e *BusinessError) Error() string {
	return e.Message
}

// NewBusinessError 创建业务错误
func NewBusinessError(code int, message string) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
	}
}
