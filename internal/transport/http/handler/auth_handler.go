package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-shop-api/internal/service"
	mdw "go-shop-api/internal/transport/http/middleware"
	resp "go-shop-api/internal/transport/http/response"
)

type AuthHandler struct {
	svc *service.AuthService
	log *zap.Logger
}

func NewAuthHandler(svc *service.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: log}
}

type registerIn struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var in registerIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.svc.Register(c.Request.Context(), in.Name, in.Email, in.Password); err != nil {
		resp.FromError(c, err, map[int]string{
			400: "Name, email and password are required",
			409: "Email Id exists",
		})
		return
	}
	resp.Message(c, http.StatusOK, "User registered successfully")
}

type loginIn struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login POST /auth/login。注册过的邮箱密码错、没注册过的邮箱，
// 文案必须完全一致（防枚举）
func (h *AuthHandler) Login(c *gin.Context) {
	var in loginIn
	_ = c.ShouldBindJSON(&in)

	if in.Email == "" || in.Password == "" {
		// 老接口这里给的是 403 而不是 400，保持不变
		resp.Message(c, http.StatusForbidden, "Email and password are required")
		return
	}

	token, err := h.svc.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		resp.FromError(c, err, map[int]string{
			401: "Invalid credentials",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": token})
}

// Profile GET /auth/profile。只回投影字段，密码哈希不出边界
func (h *AuthHandler) Profile(c *gin.Context) {
	uid, ok := mdw.CurrentUserID(c)
	if !ok {
		resp.Message(c, http.StatusUnauthorized, "No token provided")
		return
	}
	p, err := h.svc.Profile(c.Request.Context(), uid)
	if err != nil {
		resp.FromError(c, err, map[int]string{
			404: "User not found",
		})
		return
	}
	c.JSON(http.StatusOK, p)
}
