// Package errs 全局哨兵错误：service 层返回，handler 层统一映射为 HTTP 状态码
package errs

import "errors"

var (
	// ErrInvalidInput 入参缺失/非法
	ErrInvalidInput = errors.New("invalid input")

	// ErrAlreadyExists 唯一约束冲突（邮箱已注册）
	ErrAlreadyExists = errors.New("already exists")

	// ErrUnauthorized 认证失败（凭证错误/令牌缺失）
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound 实体不存在
	ErrNotFound = errors.New("not found")

	// ErrInsufficientStock 库存不足
	ErrInsufficientStock = errors.New("insufficient stock")
)
