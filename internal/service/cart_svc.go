package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-shop-api/internal/domain"
	"go-shop-api/internal/errs"
)

// CartService 购物车合并逻辑：同商品累加数量，新商品追加
type CartService struct {
	carts    domain.CartRepository
	products domain.ProductRepository
}

func NewCartService(carts domain.CartRepository, products domain.ProductRepository) *CartService {
	return &CartService{carts: carts, products: products}
}

// Add 校验商品与库存后把 (productId, qty) 合并进用户购物车。
// 读-改-写无锁：同一用户并发加购可能丢更新，见 DESIGN.md
func (s *CartService) Add(ctx context.Context, userID, productID string, qty int) (*domain.Cart, error) {
	if qty < 1 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", errs.ErrInvalidInput)
	}
	pid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, fmt.Errorf("product %q: %w", productID, errs.ErrNotFound)
	}

	p, err := s.products.FindByID(ctx, pid)
	if err != nil {
		return nil, err
	}
	if p.Stock < qty {
		return nil, errs.ErrInsufficientStock
	}

	cart, err := s.carts.FindByUser(ctx, userID)
	if err == errs.ErrNotFound {
		cart = &domain.Cart{UserID: userID}
	} else if err != nil {
		return nil, err
	}

	cart.Merge(pid, qty)
	if err := s.carts.Upsert(ctx, cart); err != nil {
		return nil, err
	}
	return s.enrich(ctx, cart)
}

// Get 无购物车时返回空车而不是错误
func (s *CartService) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := s.carts.FindByUser(ctx, userID)
	if err == errs.ErrNotFound {
		return &domain.Cart{UserID: userID, Items: []domain.CartItem{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, cart)
}

// Remove 删除指定商品的全部条目；商品不在车里也算成功（幂等）
func (s *CartService) Remove(ctx context.Context, userID, productID string) (*domain.Cart, error) {
	cart, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if pid, perr := primitive.ObjectIDFromHex(productID); perr == nil {
		cart.RemoveProduct(pid)
	}
	if err := s.carts.Upsert(ctx, cart); err != nil {
		return nil, err
	}
	return s.enrich(ctx, cart)
}

// enrich 把条目的商品引用解析成完整商品文档再返回
func (s *CartService) enrich(ctx context.Context, cart *domain.Cart) (*domain.Cart, error) {
	if len(cart.Items) == 0 {
		return cart, nil
	}
	ids := make([]primitive.ObjectID, 0, len(cart.Items))
	for _, it := range cart.Items {
		ids = append(ids, it.ProductID)
	}
	products, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]*domain.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}
	for i := range cart.Items {
		cart.Items[i].Product = byID[cart.Items[i].ProductID]
	}
	return cart, nil
}
