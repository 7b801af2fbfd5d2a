package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"go-shop-api/internal/core/database"
	"go-shop-api/internal/domain"
	"go-shop-api/internal/errs"
	"go-shop-api/pkg/utils"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewGorm(database.Opts{
		Driver:   "sqlite",
		DSN:      ":memory:",
		LogLevel: "silent",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Order{}, &domain.OrderItem{}))
	return db
}

func TestUserRepoCreateAndFind(t *testing.T) {
	r := NewUserRepo(openTestDB(t))
	ctx := context.Background()

	u := &domain.User{
		ID:           utils.NewID(),
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: "hash",
	}
	require.NoError(t, r.Create(ctx, u))

	got, err := r.FindByEmail(ctx, "test@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Equal(t, "Test User", got.Name)

	got, err = r.FindByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, got.Email)
}

func TestUserRepoDuplicateEmail(t *testing.T) {
	r := NewUserRepo(openTestDB(t))
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &domain.User{
		ID: utils.NewID(), Name: "A", Email: "dup@example.com", PasswordHash: "h",
	}))
	err := r.Create(ctx, &domain.User{
		ID: utils.NewID(), Name: "B", Email: "dup@example.com", PasswordHash: "h",
	})
	require.ErrorIs(t, err, errs.ErrAlreadyExists)
}

func TestUserRepoNotFound(t *testing.T) {
	r := NewUserRepo(openTestDB(t))
	ctx := context.Background()

	_, err := r.FindByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, errs.ErrNotFound)

	_, err = r.FindByID(ctx, utils.NewID())
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestOrderRepoCreateCascadesItems(t *testing.T) {
	db := openTestDB(t)
	r := NewOrderRepo(db)
	ctx := context.Background()
	uid := utils.NewID()

	o := &domain.Order{
		UserID:     uid,
		TotalPrice: 2475.00,
		Items: []domain.OrderItem{
			{ProductID: utils.NewID(), Quantity: 2, PriceAtPurchase: 1200.00},
			{ProductID: utils.NewID(), Quantity: 3, PriceAtPurchase: 25.00},
		},
	}
	require.NoError(t, r.Create(ctx, o))
	require.NotZero(t, o.ID)

	var count int64
	require.NoError(t, db.Model(&domain.OrderItem{}).Where("order_id = ?", o.ID).Count(&count).Error)
	require.EqualValues(t, 2, count)

	orders, err := r.ListByUser(ctx, uid)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Items, 2)
	require.InDelta(t, 2475.00, orders[0].TotalPrice, 0.001)
}

func TestOrderRepoListScopedToUser(t *testing.T) {
	r := NewOrderRepo(openTestDB(t))
	ctx := context.Background()
	u1, u2 := utils.NewID(), utils.NewID()

	require.NoError(t, r.Create(ctx, &domain.Order{UserID: u1, TotalPrice: 10}))
	require.NoError(t, r.Create(ctx, &domain.Order{UserID: u2, TotalPrice: 20}))

	orders, err := r.ListByUser(ctx, u1)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.InDelta(t, 10.0, orders[0].TotalPrice, 0.001)
}
