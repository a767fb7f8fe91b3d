package middleware

import (
	"context"
	"time"

	"github.com/BerniceZTT/product_console/utils"

	"github.com/go-resty/resty/v2"
)

// TokenSource 读取当前会话令牌，没有令牌时返回空字符串
type TokenSource func(ctx context.Context) (string, error)

// Auth 认证中间件，为请求附加 Bearer 令牌
// 已过期的JWT在本地直接按401处理，不再发出请求
func Auth(tokens TokenSource) resty.RequestMiddleware {
	return func(c *resty.Client, r *resty.Request) error {
		if tokens == nil {
			return nil
		}

		token, err := tokens(r.Context())
		if err != nil {
			utils.Logger.Error().Err(err).Msg("读取会话令牌失败")
			return utils.NewAppError("读取会话令牌失败", 0, err)
		}

		// 没有令牌时交给远程服务判断
		if token == "" {
			utils.Logger.Debug().Str("url", r.URL).Msg("会话中没有令牌")
			return nil
		}

		user, err := utils.InspectToken(token, time.Now())
		if err != nil {
			utils.Logger.Warn().Err(err).Str("url", r.URL).Msg("会话令牌已失效")
			return err
		}
		if user != nil {
			utils.Logger.Debug().
				Str("username", user.Username).
				Str("role", user.Role).
				Msg("附加会话令牌")
		}

		r.SetAuthToken(token)
		return nil
	}
}
