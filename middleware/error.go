package middleware

import (
	"encoding/json"

	"github.com/BerniceZTT/product_console/models"
	"github.com/BerniceZTT/product_console/utils"

	"github.com/go-resty/resty/v2"
)

// ErrorHandler 错误处理中间件，将非2xx响应转换为 ApiError
func ErrorHandler() resty.ResponseMiddleware {
	return func(c *resty.Client, resp *resty.Response) error {
		if !resp.IsError() {
			return nil
		}

		detail, code := parseErrorBody(resp.Body())
		return utils.CreateServerError(resp.StatusCode(), detail, code)
	}
}

// parseErrorBody 从响应体中提取错误信息，依次尝试 detail、error 字段
func parseErrorBody(body []byte) (detail, code string) {
	var eb models.ErrorBody
	if len(body) == 0 || json.Unmarshal(body, &eb) != nil {
		return "", ""
	}
	if eb.Detail != "" {
		return eb.Detail, eb.Code
	}
	return eb.Error, eb.Code
}
