package service

import (
	"context"
	"fmt"

	"go-shop-api/internal/core/cache"
	"go-shop-api/internal/domain"
	"go-shop-api/internal/errs"
)

// OrderService 结算：购物车 → 订单（关系库事务），随后扣库存、清车
type OrderService struct {
	orders   domain.OrderRepository
	carts    domain.CartRepository
	products domain.ProductRepository
	cache    *cache.Cache
}

func NewOrderService(orders domain.OrderRepository, carts domain.CartRepository, products domain.ProductRepository, c *cache.Cache) *OrderService {
	return &OrderService{orders: orders, carts: carts, products: products, cache: c}
}

// Checkout 把当前购物车转成订单，记录下单时成交价。
// 两个库之间没有分布式事务：SQL 订单落库成功后才动文档库，扣减失败会
// 留下已下单但未扣减的库存，不回滚订单
func (s *OrderService) Checkout(ctx context.Context, userID string) (*domain.Order, error) {
	cart, err := s.carts.FindByUser(ctx, userID)
	if err == errs.ErrNotFound {
		return nil, fmt.Errorf("cart is empty: %w", errs.ErrInvalidInput)
	}
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, fmt.Errorf("cart is empty: %w", errs.ErrInvalidInput)
	}

	order := &domain.Order{UserID: userID}
	for _, it := range cart.Items {
		p, err := s.products.FindByID(ctx, it.ProductID)
		if err != nil {
			return nil, err
		}
		if p.Stock < it.Quantity {
			return nil, errs.ErrInsufficientStock
		}
		order.Items = append(order.Items, domain.OrderItem{
			ProductID:       it.ProductID.Hex(),
			Quantity:        it.Quantity,
			PriceAtPurchase: p.Price,
		})
		order.TotalPrice += p.Price * float64(it.Quantity)
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(cart.Items))
	for _, it := range cart.Items {
		if err := s.products.DecrementStock(ctx, it.ProductID, it.Quantity); err != nil {
			return nil, err
		}
		keys = append(keys, productCacheKey(it.ProductID.Hex()))
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, keys...)
	}

	if err := s.carts.Clear(ctx, userID); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) List(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}
