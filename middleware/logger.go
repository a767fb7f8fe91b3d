package middleware

import (
	"github.com/BerniceZTT/product_console/utils"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// RequestIDHeader 请求ID头
const RequestIDHeader = "X-Request-ID"

// Logger 日志中间件，为每个请求分配请求ID并记录请求信息
func Logger() resty.RequestMiddleware {
	return func(c *resty.Client, r *resty.Request) error {
		requestID := uuid.NewString()
		r.SetHeader(RequestIDHeader, requestID)

		// 记录请求头
		headers := make(map[string]string)
		for k, v := range r.Header {
			if len(v) > 0 {
				headers[k] = v[0]
			}
		}
		if r.Token != "" {
			headers["Authorization"] = "Bearer " + r.Token
		}

		utils.LogApiRequest(requestID, r.Method, r.URL, headers)
		return nil
	}
}

// LogResponse 记录响应状态和耗时
func LogResponse() resty.ResponseMiddleware {
	return func(c *resty.Client, resp *resty.Response) error {
		utils.LogApiResponse(
			resp.Request.Header.Get(RequestIDHeader),
			resp.Request.Method,
			resp.Request.URL,
			resp.StatusCode(),
			resp.Time(),
		)
		return nil
	}
}

// LogFailure 记录请求失败（包括网络错误和中间件返回的错误）
func LogFailure() resty.ErrorHook {
	return func(r *resty.Request, err error) {
		utils.Logger.Error().
			Err(err).
			Str("requestId", r.Header.Get(RequestIDHeader)).
			Str("method", r.Method).
			Str("url", r.URL).
			Msg("API请求失败")
	}
}
