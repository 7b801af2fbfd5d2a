package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product 商品文档（文档库 products 集合）
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Stock       int                `bson:"stock" json:"stock"`
	Category    string             `bson:"category" json:"category"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ProductQuery 列表查询条件
type ProductQuery struct {
	Page        int    // 从 1 开始
	PerPage     int
	SearchQuery string // 按名称大小写不敏感模糊搜
}

type ProductRepository interface {
	InsertMany(ctx context.Context, products []Product) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Product, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Product, error)
	List(ctx context.Context, q ProductQuery) ([]Product, int64, error)
	// DecrementStock 原子扣减；库存不足时返回 errs.ErrInsufficientStock
	DecrementStock(ctx context.Context, id primitive.ObjectID, qty int) error
}
