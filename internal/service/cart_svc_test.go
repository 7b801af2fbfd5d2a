package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-shop-api/internal/domain"
	"go-shop-api/internal/errs"
)

func testProduct(stock int) domain.Product {
	return domain.Product{
		ID:       primitive.NewObjectID(),
		Name:     "Laptop Pro X",
		Price:    1200.00,
		Stock:    stock,
		Category: "Electronics",
	}
}

func TestAddCreatesCartThenIncrements(t *testing.T) {
	p := testProduct(50)
	carts := newFakeCarts()
	svc := NewCartService(carts, newFakeProducts(p))

	cart, err := svc.Add(context.Background(), "u1", p.ID.Hex(), 3)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, p.ID, cart.Items[0].ProductID)
	require.Equal(t, 3, cart.Items[0].Quantity)

	// 同一商品再次加购：数量累加，不产生第二条
	cart, err = svc.Add(context.Background(), "u1", p.ID.Hex(), 2)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, 5, cart.Items[0].Quantity)
}

func TestAddDistinctProductsAppend(t *testing.T) {
	p1, p2 := testProduct(10), testProduct(10)
	svc := NewCartService(newFakeCarts(), newFakeProducts(p1, p2))

	_, err := svc.Add(context.Background(), "u1", p1.ID.Hex(), 1)
	require.NoError(t, err)
	cart, err := svc.Add(context.Background(), "u1", p2.ID.Hex(), 2)
	require.NoError(t, err)

	require.Len(t, cart.Items, 2)
	require.Equal(t, p1.ID, cart.Items[0].ProductID)
	require.Equal(t, p2.ID, cart.Items[1].ProductID)
}

func TestAddInsufficientStock(t *testing.T) {
	p := testProduct(2)
	carts := newFakeCarts()
	svc := NewCartService(carts, newFakeProducts(p))

	_, err := svc.Add(context.Background(), "u1", p.ID.Hex(), 3)
	require.ErrorIs(t, err, errs.ErrInsufficientStock)

	// 校验失败时购物车不应被创建
	_, err = carts.FindByUser(context.Background(), "u1")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestAddUnknownProduct(t *testing.T) {
	svc := NewCartService(newFakeCarts(), newFakeProducts())

	_, err := svc.Add(context.Background(), "u1", primitive.NewObjectID().Hex(), 1)
	require.ErrorIs(t, err, errs.ErrNotFound)

	_, err = svc.Add(context.Background(), "u1", "not-an-object-id", 1)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestAddRejectsNonPositiveQuantity(t *testing.T) {
	p := testProduct(50)
	svc := NewCartService(newFakeCarts(), newFakeProducts(p))

	for _, qty := range []int{0, -1} {
		_, err := svc.Add(context.Background(), "u1", p.ID.Hex(), qty)
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	}
}

func TestAddEnrichesItems(t *testing.T) {
	p := testProduct(50)
	svc := NewCartService(newFakeCarts(), newFakeProducts(p))

	cart, err := svc.Add(context.Background(), "u1", p.ID.Hex(), 1)
	require.NoError(t, err)
	require.NotNil(t, cart.Items[0].Product)
	require.Equal(t, "Laptop Pro X", cart.Items[0].Product.Name)
}

func TestGetWithoutCartReturnsEmpty(t *testing.T) {
	svc := NewCartService(newFakeCarts(), newFakeProducts())

	cart, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, "u1", cart.UserID)
	require.Empty(t, cart.Items)
}

func TestRemoveProduct(t *testing.T) {
	p1, p2 := testProduct(10), testProduct(10)
	svc := NewCartService(newFakeCarts(), newFakeProducts(p1, p2))

	_, err := svc.Add(context.Background(), "u1", p1.ID.Hex(), 1)
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), "u1", p2.ID.Hex(), 2)
	require.NoError(t, err)

	cart, err := svc.Remove(context.Background(), "u1", p1.ID.Hex())
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, p2.ID, cart.Items[0].ProductID)
}

func TestRemoveAbsentProductIsNoop(t *testing.T) {
	p := testProduct(10)
	svc := NewCartService(newFakeCarts(), newFakeProducts(p))

	_, err := svc.Add(context.Background(), "u1", p.ID.Hex(), 2)
	require.NoError(t, err)

	cart, err := svc.Remove(context.Background(), "u1", primitive.NewObjectID().Hex())
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, 2, cart.Items[0].Quantity)
}

func TestRemoveWithoutCart(t *testing.T) {
	svc := NewCartService(newFakeCarts(), newFakeProducts())
	_, err := svc.Remove(context.Background(), "u1", primitive.NewObjectID().Hex())
	require.ErrorIs(t, err, errs.ErrNotFound)
}
