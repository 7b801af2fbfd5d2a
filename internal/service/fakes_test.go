package service

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-shop-api/internal/domain"
	"go-shop-api/internal/errs"
)

type fakeUsers struct {
	byEmail map[string]*domain.User
}

var _ domain.UserRepository = (*fakeUsers)(nil)

func newFakeUsers() *fakeUsers { return &fakeUsers{byEmail: map[string]*domain.User{}} }

func (f *fakeUsers) Create(_ context.Context, u *domain.User) error {
	if _, exists := f.byEmail[u.Email]; exists {
		return errs.ErrAlreadyExists
	}
	cpy := *u
	f.byEmail[u.Email] = &cpy
	return nil
}

func (f *fakeUsers) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			c := *u
			return &c, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := f.byEmail[email]; ok {
		c := *u
		return &c, nil
	}
	return nil, errs.ErrNotFound
}

type fakeProducts struct {
	byID map[primitive.ObjectID]*domain.Product

	listErr error
}

var _ domain.ProductRepository = (*fakeProducts)(nil)

func newFakeProducts(ps ...domain.Product) *fakeProducts {
	f := &fakeProducts{byID: map[primitive.ObjectID]*domain.Product{}}
	for i := range ps {
		p := ps[i]
		f.byID[p.ID] = &p
	}
	return f
}

func (f *fakeProducts) InsertMany(_ context.Context, products []domain.Product) error {
	for i := range products {
		p := products[i]
		if p.ID.IsZero() {
			p.ID = primitive.NewObjectID()
		}
		f.byID[p.ID] = &p
	}
	return nil
}

func (f *fakeProducts) FindByID(_ context.Context, id primitive.ObjectID) (*domain.Product, error) {
	if p, ok := f.byID[id]; ok {
		c := *p
		return &c, nil
	}
	return nil, errs.ErrNotFound
}

func (f *fakeProducts) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]domain.Product, error) {
	var out []domain.Product
	for _, id := range ids {
		if p, ok := f.byID[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProducts) List(_ context.Context, q domain.ProductQuery) ([]domain.Product, int64, error) {
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	var all []domain.Product
	for _, p := range f.byID {
		all = append(all, *p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	total := int64(len(all))
	start := (q.Page - 1) * q.PerPage
	if start >= len(all) {
		return []domain.Product{}, total, nil
	}
	end := start + q.PerPage
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (f *fakeProducts) DecrementStock(_ context.Context, id primitive.ObjectID, qty int) error {
	p, ok := f.byID[id]
	if !ok {
		return errs.ErrNotFound
	}
	if p.Stock < qty {
		return errs.ErrInsufficientStock
	}
	p.Stock -= qty
	return nil
}

type fakeCarts struct {
	byUser map[string]*domain.Cart
}

var _ domain.CartRepository = (*fakeCarts)(nil)

func newFakeCarts() *fakeCarts { return &fakeCarts{byUser: map[string]*domain.Cart{}} }

func (f *fakeCarts) FindByUser(_ context.Context, userID string) (*domain.Cart, error) {
	c, ok := f.byUser[userID]
	if !ok {
		return nil, errs.ErrNotFound
	}
	cpy := *c
	cpy.Items = append([]domain.CartItem(nil), c.Items...)
	return &cpy, nil
}

func (f *fakeCarts) Upsert(_ context.Context, cart *domain.Cart) error {
	if cart.ID.IsZero() {
		cart.ID = primitive.NewObjectID()
		cart.CreatedAt = time.Now()
	}
	cart.UpdatedAt = time.Now()
	cpy := *cart
	cpy.Items = append([]domain.CartItem(nil), cart.Items...)
	f.byUser[cart.UserID] = &cpy
	return nil
}

func (f *fakeCarts) Clear(_ context.Context, userID string) error {
	if c, ok := f.byUser[userID]; ok {
		c.Items = []domain.CartItem{}
	}
	return nil
}

type fakeOrders struct {
	created []*domain.Order
}

var _ domain.OrderRepository = (*fakeOrders)(nil)

func (f *fakeOrders) Create(_ context.Context, o *domain.Order) error {
	o.ID = uint(len(f.created) + 1)
	f.created = append(f.created, o)
	return nil
}

func (f *fakeOrders) ListByUser(_ context.Context, userID string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range f.created {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}
