package jwtmw

import (
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// TestMain はテスト実行前にGinをテストモードに設定します。
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func jwtSubject(userID uint) string {
	return strconv.FormatUint(uint64(userID), 10)
}

// createToken はテスト用に任意のクレームで署名済みJWTトークンを生成します。
func createToken(secret string, claims jwt.MapClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, _ := token.SignedString([]byte(secret))
	return signed
}

// validClaims は指定されたユーザーIDと有効期限の標準的なクレームを返します。
func validClaims(userID uint, expiration time.Duration) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":   jwtSubject(userID),
		"exp":   time.Now().Add(expiration).Unix(),
		"iat":   time.Now().Unix(),
		"iss":   "account-api",
		"email": "test@example.com",
	}
}
