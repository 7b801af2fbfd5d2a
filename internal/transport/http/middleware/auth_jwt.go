package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-shop-api/internal/core/auth"
)

const (
	KeyClaims = "claims"
	KeyUserID = "userId"
)

// AuthJWT 鉴权闸门。注意状态码不对称：缺 token 401，token 非法/过期 403，
// 老客户端依赖这个区别，不能并成一个
func AuthJWT(v auth.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}
		claims, err := v.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Invalid token"})
			return
		}
		// 解码结果挂到上下文，handler 不再二次解码
		c.Set(KeyClaims, claims)
		c.Set(KeyUserID, claims.UserID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	ah := c.GetHeader("Authorization")
	if !strings.HasPrefix(ah, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(ah, "Bearer ")
}

// CurrentUserID 供 handler 读取闸门解出的身份
func CurrentUserID(c *gin.Context) (string, bool) {
	uid := c.GetString(KeyUserID)
	if uid == "" {
		return "", false
	}
	return uid, true
}
