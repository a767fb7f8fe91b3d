package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestInspectToken_Missing(t *testing.T) {
	user, err := InspectToken("", time.Now())

	assert.Nil(t, user)
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, ErrCodeMissingToken, AsApiError(err).ErrorCode)
}

func TestInspectToken_Valid(t *testing.T) {
	now := time.Now()
	token := signToken(t, jwt.MapClaims{
		"id":       "u-1",
		"username": "maria",
		"role":     "INVENTORY_MANAGER",
		"exp":      now.Add(time.Hour).Unix(),
	})

	user, err := InspectToken(token, now)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "maria", user.Username)
	assert.Equal(t, "INVENTORY_MANAGER", user.Role)
}

func TestInspectToken_Expired(t *testing.T) {
	now := time.Now()
	token := signToken(t, jwt.MapClaims{
		"name": "maria",
		"exp":  now.Add(-time.Minute).Unix(),
	})

	user, err := InspectToken(token, now)

	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, ErrCodeInvalidToken, AsApiError(err).ErrorCode)
	require.NotNil(t, user)
	assert.Equal(t, "maria", user.Username)
}

func TestInspectToken_OpaqueTokenPassesThrough(t *testing.T) {
	user, err := InspectToken("not-a-jwt", time.Now())

	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestAsApiError(t *testing.T) {
	assert.Nil(t, AsApiError(nil))

	apiErr := CreateServerError(http.StatusConflict, "cannot delete: referenced elsewhere", "")
	wrapped := fmt.Errorf("delete product: %w", apiErr)
	assert.Same(t, apiErr, AsApiError(wrapped))
	assert.False(t, IsUnauthorized(wrapped))

	netErr := AsApiError(errors.New("connection refused"))
	assert.Equal(t, 0, netErr.StatusCode)
	assert.Equal(t, ErrCodeNetwork, netErr.ErrorCode)
	assert.Equal(t, "connection refused", netErr.Message)
}

func TestCreateServerError(t *testing.T) {
	err := CreateServerError(http.StatusUnauthorized, "", "")
	assert.Equal(t, "Unauthorized", err.Message)
	assert.Equal(t, ErrCodeUnauthorized, err.ErrorCode)
	assert.True(t, IsUnauthorized(err))

	err = CreateServerError(http.StatusInternalServerError, "boom", "")
	assert.Equal(t, "boom", err.Error())
	assert.Equal(t, ErrCodeServer, err.ErrorCode)
}

func TestAppError_Unwrap(t *testing.T) {
	base := errors.New("disk full")
	err := NewAppError("导出失败", 0, base)

	assert.ErrorIs(t, err, base)
	assert.Equal(t, "导出失败: disk full", err.Error())
}

func TestNumberText(t *testing.T) {
	assert.Equal(t, "10", NumberText(10))
	assert.Equal(t, "12.5", NumberText(12.5))
	assert.Equal(t, "0.1", NumberText(0.1))
	// 极大极小值也按十进制展开
	assert.Equal(t, "1000000000000000000000", NumberText(1e21))
	assert.Equal(t, "0.0000001", NumberText(1e-7))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "R$ 0,00", FormatPrice(0))
	assert.Equal(t, "R$ 12,50", FormatPrice(12.5))
	assert.Equal(t, "R$ 1.234,56", FormatPrice(1234.56))
	assert.Equal(t, "R$ 1.000.000,00", FormatPrice(1000000))
	assert.Equal(t, "-R$ 3,10", FormatPrice(-3.1))
	assert.Equal(t, "R$ 1.234.567,89", FormatPrice(1234567.891))
	assert.Equal(t, "R$ 0,00", FormatPrice(-0.001))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd...", Truncate("abcdefghij", 7))
}

func TestErrorDetail(t *testing.T) {
	assert.Equal(t, "", ErrorDetail(nil))
	assert.Equal(t, "not found", ErrorDetail(CreateServerError(404, "not found", "")))
	assert.Equal(t, "dial tcp: refused", ErrorDetail(errors.New("dial tcp: refused")))
}
