package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// 错误码
const (
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeMissingToken = "MISSING_TOKEN"
	ErrCodeInvalidToken = "INVALID_TOKEN"
	ErrCodeNetwork      = "NETWORK_ERROR"
	ErrCodeServer       = "SERVER_ERROR"
)

// ApiError 远程服务调用失败
// StatusCode 为0表示请求未得到响应
type ApiError struct {
	StatusCode int
	Message    string
	ErrorCode  string
}

// Error 实现error接口
func (e *ApiError) Error() string {
	return e.Message
}

// IsUnauthorized 是否为授权失败
func (e *ApiError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// NewApiError 创建API错误
func NewApiError(message string, statusCode int, errorCode string) *ApiError {
	return &ApiError{
		StatusCode: statusCode,
		Message:    message,
		ErrorCode:  errorCode,
	}
}

// CreateUnauthorizedError 创建未授权错误
func CreateUnauthorizedError(message, errorCode string) *ApiError {
	if message == "" {
		message = "未授权访问"
	}
	if errorCode == "" {
		errorCode = ErrCodeUnauthorized
	}
	return NewApiError(message, http.StatusUnauthorized, errorCode)
}

// CreateNetworkError 创建网络错误
func CreateNetworkError(err error) *ApiError {
	return NewApiError(err.Error(), 0, ErrCodeNetwork)
}

// CreateServerError 创建服务端错误，detail为空时使用状态码描述
func CreateServerError(statusCode int, detail, errorCode string) *ApiError {
	if detail == "" {
		detail = http.StatusText(statusCode)
	}
	if errorCode == "" {
		errorCode = ErrCodeServer
		if statusCode == http.StatusUnauthorized {
			errorCode = ErrCodeUnauthorized
		}
	}
	return NewApiError(detail, statusCode, errorCode)
}

// AsApiError 将任意错误归类为ApiError，非远程错误视为网络错误
func AsApiError(err error) *ApiError {
	if err == nil {
		return nil
	}
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return CreateNetworkError(err)
}

// IsUnauthorized 判断错误是否为授权失败
func IsUnauthorized(err error) bool {
	var apiErr *ApiError
	return errors.As(err, &apiErr) && apiErr.IsUnauthorized()
}

// ErrorDetail 取出展示给用户的错误描述
func ErrorDetail(err error) string {
	if err == nil {
		return ""
	}
	return AsApiError(err).Message
}

// AppError 应用错误类型
type AppError struct {
	Message    string
	StatusCode int
	Err        error
}

// Error 实现error接口
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap 返回底层错误
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError 创建新的应用错误
func NewAppError(message string, statusCode int, err error) *AppError {
	return &AppError{
		Message:    message,
		StatusCode: statusCode,
		Err:        err,
	}
}
