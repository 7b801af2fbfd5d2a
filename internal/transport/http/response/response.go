// Package response 统一出参形态。对外契约要和老版本逐字节兼容：
// 认证类接口返回 {"message": ...}，购物车/商品类返回 {"status","data"} 信封
package response

import (
	"errors"

	"github.com/gin-gonic/gin"

	"go-shop-api/internal/errs"
)

// Message 纯消息体
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// Data 成功信封：{"status":"success","data":{...}}
func Data(c *gin.Context, status int, data gin.H) {
	c.JSON(status, gin.H{"status": "success", "data": data})
}

// 哨兵错误 → 默认 HTTP 状态码
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrInvalidInput), errors.Is(err, errs.ErrInsufficientStock):
		return 400
	case errors.Is(err, errs.ErrUnauthorized):
		return 401
	case errors.Is(err, errs.ErrNotFound):
		return 404
	case errors.Is(err, errs.ErrAlreadyExists):
		return 409
	default:
		return 500
	}
}

// FromError 按哨兵错误映射状态码；msgs 覆盖对外文案（不透出内部细节）
func FromError(c *gin.Context, err error, msgs map[int]string) {
	status := statusOf(err)
	msg, ok := msgs[status]
	if !ok {
		if status == 500 {
			msg = "Internal server error"
		} else {
			msg = err.Error()
		}
	}
	if status == 500 {
		// 留给 accesslog / recovery 打堆栈
		_ = c.Error(err)
	}
	Message(c, status, msg)
}
