package service

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-shop-api/internal/core/cache"
	"go-shop-api/internal/domain"
	"go-shop-api/internal/errs"
)

const ProductsPerPage = 20

// ProductPage 列表响应
type ProductPage struct {
	CurrentPage int              `json:"currentPage"`
	TotalPages  int              `json:"totalPages"`
	TotalItems  int64            `json:"totalItems"`
	Products    []domain.Product `json:"products"`
}

// ProductService 目录读路径；详情走 redis 旁挂缓存（可关）
type ProductService struct {
	products domain.ProductRepository
	cache    *cache.Cache
	cacheTTL time.Duration
}

func NewProductService(products domain.ProductRepository, c *cache.Cache, ttl time.Duration) *ProductService {
	return &ProductService{products: products, cache: c, cacheTTL: ttl}
}

func (s *ProductService) List(ctx context.Context, page int, searchQuery string) (*ProductPage, error) {
	if page < 1 {
		page = 1
	}
	products, total, err := s.products.List(ctx, domain.ProductQuery{
		Page:        page,
		PerPage:     ProductsPerPage,
		SearchQuery: searchQuery,
	})
	if err != nil {
		return nil, err
	}
	totalPages := int((total + ProductsPerPage - 1) / ProductsPerPage)
	return &ProductPage{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
		Products:    products,
	}, nil
}

func (s *ProductService) Info(ctx context.Context, id string) (*domain.Product, error) {
	pid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("product id %q: %w", id, errs.ErrInvalidInput)
	}
	if s.cache == nil {
		return s.products.FindByID(ctx, pid)
	}
	return cache.GetOrLoadJSON(s.cache, ctx, productCacheKey(id), s.cacheTTL,
		func(ctx context.Context) (*domain.Product, error) {
			return s.products.FindByID(ctx, pid)
		})
}

// Seed 写入演示目录
func (s *ProductService) Seed(ctx context.Context) error {
	return s.products.InsertMany(ctx, seedProducts())
}

func productCacheKey(id string) string { return "product:" + id }

func seedProducts() []domain.Product {
	return []domain.Product{
		{Name: "Laptop Pro X", Description: "High-performance laptop for professionals, 16GB RAM, 512GB SSD.", Price: 1200.00, Stock: 50, Category: "Electronics"},
		{Name: "Mechanical Keyboard RGB", Description: "Gaming mechanical keyboard with customizable RGB lighting.", Price: 85.50, Stock: 120, Category: "Peripherals"},
		{Name: "Wireless Mouse Ergo", Description: "Ergonomic wireless mouse with long battery life.", Price: 25.00, Stock: 200, Category: "Peripherals"},
		{Name: "4K Ultra HD Monitor", Description: "27-inch 4K monitor with vibrant colors and fast refresh rate.", Price: 450.00, Stock: 30, Category: "Electronics"},
		{Name: "Noise-Cancelling Headphones", Description: "Over-ear headphones with superior noise cancellation.", Price: 199.99, Stock: 80, Category: "Audio"},
		{Name: "Smartphone Flagship 2025", Description: "Latest flagship smartphone with advanced camera and processor.", Price: 999.00, Stock: 70, Category: "Electronics"},
		{Name: "Portable SSD 1TB", Description: "Ultra-fast external solid state drive for data backup.", Price: 130.00, Stock: 150, Category: "Storage"},
		{Name: "Webcam HD 1080p", Description: "Full HD webcam for video conferencing and streaming.", Price: 49.95, Stock: 90, Category: "Peripherals"},
		{Name: "Smart Home Hub", Description: "Central hub for connecting and controlling smart home devices.", Price: 75.00, Stock: 60, Category: "Smart Home"},
		{Name: "Fitness Tracker Watch", Description: "Track your steps, heart rate, and sleep with this smart watch.", Price: 60.00, Stock: 110, Category: "Wearables"},
		{Name: "Gaming Chair Pro", Description: "Ergonomic gaming chair with lumbar support and recline function.", Price: 250.00, Stock: 40, Category: "Furniture"},
		{Name: "Bluetooth Speaker Mini", Description: "Compact portable Bluetooth speaker with powerful sound.", Price: 35.00, Stock: 180, Category: "Audio"},
	}
}
