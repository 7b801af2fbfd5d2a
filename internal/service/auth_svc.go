package service

import (
	"context"
	"fmt"
	"strings"

	"go-shop-api/internal/core/auth"
	"go-shop-api/internal/domain"
	"go-shop-api/internal/errs"
	"go-shop-api/pkg/utils"
)

// AuthService 注册/登录/个人信息
type AuthService struct {
	users domain.UserRepository
	jwter *auth.JWTer
}

func NewAuthService(users domain.UserRepository, jwter *auth.JWTer) *AuthService {
	return &AuthService{users: users, jwter: jwter}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return fmt.Errorf("register: %w", errs.ErrInvalidInput)
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return fmt.Errorf("register %s: %w", email, errs.ErrAlreadyExists)
	} else if err != errs.ErrNotFound {
		return err
	}

	u := &domain.User{
		ID:           utils.NewID(),
		Name:         name,
		Email:        email,
		PasswordHash: utils.HashPassword(password),
	}
	// 并发重复注册：先查后插有窗口，唯一索引冲突由 repo 映射回 ErrAlreadyExists
	return s.users.Create(ctx, u)
}

// Login 成功返回签名令牌。未知邮箱与密码错误给同一个错误，防账号枚举
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return "", fmt.Errorf("login: %w", errs.ErrInvalidInput)
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err == errs.ErrNotFound {
		return "", errs.ErrUnauthorized
	}
	if err != nil {
		return "", err
	}
	if !utils.CheckPassword(password, u.PasswordHash) {
		return "", errs.ErrUnauthorized
	}

	token, err := s.jwter.Issue(u.ID, u.Email)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

func (s *AuthService) Profile(ctx context.Context, userID string) (domain.Profile, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return domain.Profile{}, err
	}
	return u.Profile(), nil
}
