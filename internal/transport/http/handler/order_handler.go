package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-shop-api/internal/errs"
	"go-shop-api/internal/service"
	mdw "go-shop-api/internal/transport/http/middleware"
	resp "go-shop-api/internal/transport/http/response"
)

type OrderHandler struct {
	svc *service.OrderService
	log *zap.Logger
}

func NewOrderHandler(svc *service.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{svc: svc, log: log}
}

// Checkout POST /order/checkout，把购物车转成订单
func (h *OrderHandler) Checkout(c *gin.Context) {
	uid, ok := mdw.CurrentUserID(c)
	if !ok {
		resp.Message(c, http.StatusUnauthorized, "Please login to checkout")
		return
	}
	order, err := h.svc.Checkout(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, errs.ErrInsufficientStock) {
			resp.Message(c, http.StatusBadRequest, "Not enough stock available")
			return
		}
		resp.FromError(c, err, map[int]string{
			400: "Cart is empty",
			404: "Product not found",
		})
		return
	}
	resp.Data(c, http.StatusCreated, gin.H{"order": order})
}

// List GET /order/list，按创建时间倒序
func (h *OrderHandler) List(c *gin.Context) {
	uid, ok := mdw.CurrentUserID(c)
	if !ok {
		resp.Message(c, http.StatusUnauthorized, "Please login to view orders")
		return
	}
	orders, err := h.svc.List(c.Request.Context(), uid)
	if err != nil {
		resp.FromError(c, err, nil)
		return
	}
	resp.Data(c, http.StatusOK, gin.H{"orders": orders})
}
