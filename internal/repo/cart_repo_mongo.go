package repo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"go-shop-api/internal/domain"
	"go-shop-api/internal/errs"
)

type CartRepo struct{ col *mongo.Collection }

func NewCartRepo(db *mongo.Database) *CartRepo {
	return &CartRepo{col: db.Collection("carts")}
}

var _ domain.CartRepository = (*CartRepo)(nil)

func (r *CartRepo) FindByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	var c domain.Cart
	err := r.col.FindOne(ctx, bson.M{"userId": userID}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Upsert 按 userId 整体覆盖。同一用户并发加购是读-改-写竞态，后写覆盖先写
func (r *CartRepo) Upsert(ctx context.Context, cart *domain.Cart) error {
	now := time.Now()
	if cart.ID.IsZero() {
		cart.ID = primitive.NewObjectID()
		cart.CreatedAt = now
	}
	cart.UpdatedAt = now
	if cart.Items == nil {
		cart.Items = []domain.CartItem{}
	}

	_, err := r.col.ReplaceOne(ctx,
		bson.M{"userId": cart.UserID},
		cart,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *CartRepo) Clear(ctx context.Context, userID string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{"$set": bson.M{"items": []domain.CartItem{}, "updatedAt": time.Now()}},
	)
	return err
}
