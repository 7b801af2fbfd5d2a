package domain

import (
	"context"
	"time"
)

// Order 订单头（关系库 orders 表）
type Order struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	UserID     string      `gorm:"column:user_id;type:varchar(24);index;not null" json:"userId"`
	TotalPrice float64     `gorm:"column:total_price;type:decimal(10,2)" json:"totalPrice"`
	CreatedAt  time.Time   `gorm:"column:created_at" json:"createdAt"`
	Items      []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

func (Order) TableName() string { return "orders" }

// OrderItem 订单行，记录下单时的成交价
type OrderItem struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	OrderID         uint    `gorm:"column:order_id;index;not null" json:"orderId"`
	ProductID       string  `gorm:"column:product_id;type:varchar(24);not null" json:"productId"`
	Quantity        int     `gorm:"not null" json:"quantity"`
	PriceAtPurchase float64 `gorm:"column:price_at_purchase;type:decimal(10,2)" json:"priceAtPurchase"`
}

func (OrderItem) TableName() string { return "order_items" }

type OrderRepository interface {
	// Create 订单头+订单行在同一事务内落库
	Create(ctx context.Context, o *Order) error
	ListByUser(ctx context.Context, userID string) ([]Order, error)
}
