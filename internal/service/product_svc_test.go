package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"go-shop-api/internal/domain"
	"go-shop-api/internal/errs"
)

func TestListPagination(t *testing.T) {
	products := newFakeProducts()
	now := time.Now()
	var batch []domain.Product
	for i := 0; i < 45; i++ {
		batch = append(batch, domain.Product{
			Name:      "p",
			Price:     1,
			Stock:     1,
			Category:  "c",
			CreatedAt: now.Add(time.Duration(i) * time.Second),
		})
	}
	require.NoError(t, products.InsertMany(context.Background(), batch))

	svc := NewProductService(products, nil, 0)

	page, err := svc.List(context.Background(), 1, "")
	require.NoError(t, err)
	require.Equal(t, 1, page.CurrentPage)
	require.Equal(t, 3, page.TotalPages)
	require.Equal(t, int64(45), page.TotalItems)
	require.Len(t, page.Products, ProductsPerPage)

	page, err = svc.List(context.Background(), 3, "")
	require.NoError(t, err)
	require.Len(t, page.Products, 5)

	// page 0 和负数都归一到第 1 页
	page, err = svc.List(context.Background(), 0, "")
	require.NoError(t, err)
	require.Equal(t, 1, page.CurrentPage)
}

func TestInfoInvalidID(t *testing.T) {
	svc := NewProductService(newFakeProducts(), nil, 0)
	_, err := svc.Info(context.Background(), "zzz")
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestInfoUnknownID(t *testing.T) {
	svc := NewProductService(newFakeProducts(), nil, 0)
	_, err := svc.Info(context.Background(), testProduct(1).ID.Hex())
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestInfoFound(t *testing.T) {
	p := testProduct(5)
	svc := NewProductService(newFakeProducts(p), nil, 0)

	got, err := svc.Info(context.Background(), p.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, p.ID, got.ID)
	require.Equal(t, p.Name, got.Name)
}

func TestSeedInsertsCatalog(t *testing.T) {
	products := newFakeProducts()
	svc := NewProductService(products, nil, 0)

	require.NoError(t, svc.Seed(context.Background()))

	page, err := svc.List(context.Background(), 1, "")
	require.NoError(t, err)
	require.Equal(t, int64(12), page.TotalItems)
}
