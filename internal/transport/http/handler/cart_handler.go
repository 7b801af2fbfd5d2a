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

type CartHandler struct {
	svc *service.CartService
	log *zap.Logger
}

func NewCartHandler(svc *service.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{svc: svc, log: log}
}

type addToCartIn struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Add POST /cart/add
func (h *CartHandler) Add(c *gin.Context) {
	uid, ok := mdw.CurrentUserID(c)
	if !ok {
		resp.Message(c, http.StatusUnauthorized, "Please login to add items to cart")
		return
	}
	var in addToCartIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	cart, err := h.svc.Add(c.Request.Context(), uid, in.ProductID, in.Quantity)
	if err != nil {
		if errors.Is(err, errs.ErrInsufficientStock) {
			resp.Message(c, http.StatusBadRequest, "Not enough stock available")
			return
		}
		resp.FromError(c, err, map[int]string{
			400: "Quantity must be at least 1",
			404: "Product not found",
		})
		return
	}
	resp.Data(c, http.StatusOK, gin.H{"cart": cart})
}

// Get GET /cart/get
func (h *CartHandler) Get(c *gin.Context) {
	uid, ok := mdw.CurrentUserID(c)
	if !ok {
		resp.Message(c, http.StatusUnauthorized, "Please login to view cart")
		return
	}
	cart, err := h.svc.Get(c.Request.Context(), uid)
	if err != nil {
		resp.FromError(c, err, nil)
		return
	}
	resp.Data(c, http.StatusOK, gin.H{"cart": cart})
}

// Remove DELETE /cart/:productId（删不存在的商品也算成功）
func (h *CartHandler) Remove(c *gin.Context) {
	uid, ok := mdw.CurrentUserID(c)
	if !ok {
		resp.Message(c, http.StatusUnauthorized, "Please login to modify cart")
		return
	}
	cart, err := h.svc.Remove(c.Request.Context(), uid, c.Param("productId"))
	if err != nil {
		resp.FromError(c, err, map[int]string{
			404: "Cart not found",
		})
		return
	}
	resp.Data(c, http.StatusOK, gin.H{"cart": cart})
}
