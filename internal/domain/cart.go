package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem 购物车条目；Product 仅在响应里回填，不落库
type CartItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	Product   *Product           `bson:"-" json:"product,omitempty"`
}

// Cart 每用户一份（userId 唯一），首次加购时才创建
type Cart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"userId"`
	Items     []CartItem         `bson:"items" json:"items"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Merge 合并一条加购请求：已有则累加数量，否则追加
func (c *Cart) Merge(productID primitive.ObjectID, qty int) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += qty
			return
		}
	}
	c.Items = append(c.Items, CartItem{ProductID: productID, Quantity: qty})
}

// RemoveProduct 过滤掉指定商品的全部条目；不存在则为幂等 no-op
func (c *Cart) RemoveProduct(productID primitive.ObjectID) {
	kept := c.Items[:0]
	for _, it := range c.Items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	c.Items = kept
}

type CartRepository interface {
	// FindByUser 无购物车时返回 errs.ErrNotFound
	FindByUser(ctx context.Context, userID string) (*Cart, error)
	// Upsert 按 userId 整体覆盖写（读-改-写，无锁，见设计说明）
	Upsert(ctx context.Context, cart *Cart) error
	Clear(ctx context.Context, userID string) error
}
