package utils

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// LoginUser 会话令牌中的用户信息
type LoginUser struct {
	ID        string
	Role      string
	Username  string
	ExpiresAt time.Time
}

// InspectToken 在本地检查会话令牌
// 令牌为空或JWT已过期时返回401错误；非JWT格式的令牌原样放行，返回nil
// 签名由远程服务校验，这里不验证
func InspectToken(tokenString string, now time.Time) (*LoginUser, error) {
	if tokenString == "" {
		return nil, CreateUnauthorizedError("未登录，请先登录", ErrCodeMissingToken)
	}

	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(tokenString, claims); err != nil {
		Logger.Debug().Err(err).Msg("会话令牌不是JWT格式，跳过本地检查")
		return nil, nil
	}

	user := &LoginUser{}
	user.ID, _ = claims["id"].(string)
	user.Role, _ = claims["role"].(string)
	user.Username, _ = claims["username"].(string)
	if user.Username == "" {
		// 检查是否有 "name" 字段作为备选
		user.Username, _ = claims["name"].(string)
	}

	if exp, ok := claims["exp"].(float64); ok {
		user.ExpiresAt = time.Unix(int64(exp), 0)
		if !now.Before(user.ExpiresAt) {
			return user, CreateUnauthorizedError(
				fmt.Sprintf("登录已过期 (%s)，请重新登录", user.ExpiresAt.Format(time.RFC3339)),
				ErrCodeInvalidToken,
			)
		}
	}

	return user, nil
}
