package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-shop-api/internal/service"
	resp "go-shop-api/internal/transport/http/response"
)

type ProductHandler struct {
	svc *service.ProductService
	log *zap.Logger
}

func NewProductHandler(svc *service.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{svc: svc, log: log}
}

// List GET /product/list?page=&searchQuery=
func (h *ProductHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	search := strings.TrimSpace(c.Query("searchQuery"))

	out, err := h.svc.List(c.Request.Context(), page, search)
	if err != nil {
		h.log.Error("list products", zap.Error(err))
		resp.Message(c, http.StatusInternalServerError, "Error connecting to database")
		return
	}
	c.JSON(http.StatusOK, out)
}

// Info GET /product/info/:id
func (h *ProductHandler) Info(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		resp.Message(c, http.StatusBadRequest, "Product ID is required")
		return
	}
	p, err := h.svc.Info(c.Request.Context(), id)
	if err != nil {
		resp.FromError(c, err, map[int]string{
			400: "Product ID is required",
			404: "Product not found",
		})
		return
	}
	resp.Data(c, http.StatusOK, gin.H{"product": p})
}

// Seed POST /product/insert，写入演示目录
func (h *ProductHandler) Seed(c *gin.Context) {
	if err := h.svc.Seed(c.Request.Context()); err != nil {
		h.log.Error("seed products", zap.Error(err))
		resp.Message(c, http.StatusInternalServerError, "Error inserting products")
		return
	}
	resp.Message(c, http.StatusCreated, "Products inserted successfully")
}
