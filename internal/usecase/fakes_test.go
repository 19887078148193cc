package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"storefront/internal/data/entity"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var errStorage = errors.New("connection refused")

// 20 bytes, leaving 52 for the password
const testPepper = "pepper-of-20-bytes.."

// memStore backs every fake repository so line items can see orders and products.
type memStore struct {
	mu       sync.Mutex
	users    []*entity.User
	products []*entity.Product
	orders   []*entity.Order
	items    []*entity.OrderProduct
	failWith error
	clock    time.Time
}

func newMemStore() *memStore {
	return &memStore{clock: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (s *memStore) tick() time.Time {
	s.clock = s.clock.Add(time.Minute)
	return s.clock
}

type fakeUserRepo struct{ s *memStore }

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failWith; err != nil {
		return err
	}
	user.ID = int64(len(r.s.users) + 1)
	cp := *user
	r.s.users = append(r.s.users, &cp)
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failWith; err != nil {
		return nil, err
	}
	for _, u := range r.s.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByFirstName(_ context.Context, firstName string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failWith; err != nil {
		return nil, err
	}
	for _, u := range r.s.users {
		if u.FirstName == firstName {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failWith; err != nil {
		return nil, err
	}
	out := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, &entity.User{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName})
	}
	return out, nil
}

func (r *fakeUserRepo) FindRecentPurchases(_ context.Context, userID int64, limit int) ([]*entity.RecentPurchase, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failWith; err != nil {
		return nil, err
	}

	type row struct {
		purchase *entity.RecentPurchase
		itemID   int64
	}
	var rows []row
	for _, item := range r.s.items {
		order := r.s.order(item.OrderID)
		if order == nil || order.UserID != userID || order.Status != entity.OrderStatusComplete {
			continue
		}
		product := r.s.product(item.ProductID)
		rows = append(rows, row{
			itemID: item.ID,
			purchase: &entity.RecentPurchase{
				ProductID: product.ID,
				Name:      product.Name,
				Price:     product.Price,
				Quantity:  item.Quantity,
				OrderID:   order.ID,
				Status:    order.Status,
				OrderDate: order.CreatedAt,
			},
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].purchase.OrderDate.Equal(rows[j].purchase.OrderDate) {
			return rows[i].purchase.OrderDate.After(rows[j].purchase.OrderDate)
		}
		return rows[i].itemID > rows[j].itemID
	})

	out := []*entity.RecentPurchase{}
	for i := 0; i < len(rows) && i < limit; i++ {
		out = append(out, rows[i].purchase)
	}
	return out, nil
}

type fakeProductRepo struct{ s *memStore }

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failWith; err != nil {
		return err
	}
	product.ID = int64(len(r.s.products) + 1)
	cp := *product
	r.s.products = append(r.s.products, &cp)
	return nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id int64) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failWith; err != nil {
		return nil, err
	}
	if p := r.s.product(id); p != nil {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) FindAll(_ context.Context) ([]*entity.Product, error) {
	return r.filter(func(*entity.Product) bool { return true })
}

func (r *fakeProductRepo) FindByCategory(_ context.Context, category string) ([]*entity.Product, error) {
	return r.filter(func(p *entity.Product) bool {
		return p.Category != nil && *p.Category == category
	})
}

func (r *fakeProductRepo) filter(keep func(*entity.Product) bool) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failWith; err != nil {
		return nil, err
	}
	out := []*entity.Product{}
	for _, p := range r.s.products {
		if keep(p) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) FindTopSellers(_ context.Context, limit int) ([]*entity.ProductSales, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failWith; err != nil {
		return nil, err
	}

	totals := map[int64]int64{}
	for _, item := range r.s.items {
		totals[item.ProductID] += int64(item.Quantity)
	}
	sales := make([]*entity.ProductSales, 0, len(r.s.products))
	for _, p := range r.s.products {
		sales = append(sales, &entity.ProductSales{Product: *p, TotalQuantity: totals[p.ID]})
	}
	sort.SliceStable(sales, func(i, j int) bool {
		if sales[i].TotalQuantity != sales[j].TotalQuantity {
			return sales[i].TotalQuantity > sales[j].TotalQuantity
		}
		return sales[i].ID < sales[j].ID
	})
	if len(sales) > limit {
		sales = sales[:limit]
	}
	return sales, nil
}

type fakeOrderRepo struct{ s *memStore }

func (r *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failWith; err != nil {
		return err
	}
	if r.s.userByID(order.UserID) == nil {
		return errors.New(`create order: ERROR: insert or update on table "orders" violates foreign key constraint "orders_user_id_fkey" (SQLSTATE 23503)`)
	}
	order.ID = int64(len(r.s.orders) + 1)
	order.CreatedAt = r.s.tick()
	cp := *order
	r.s.orders = append(r.s.orders, &cp)
	return nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id int64) (*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failWith; err != nil {
		return nil, err
	}
	if o := r.s.order(id); o != nil {
		cp := *o
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeOrderRepo) FindCurrentByUserID(_ context.Context, userID int64) (*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failWith; err != nil {
		return nil, err
	}
	var current *entity.Order
	for _, o := range r.s.orders {
		if o.UserID != userID || o.Status != entity.OrderStatusActive {
			continue
		}
		if current == nil || o.CreatedAt.After(current.CreatedAt) ||
			(o.CreatedAt.Equal(current.CreatedAt) && o.ID > current.ID) {
			current = o
		}
	}
	if current == nil {
		return nil, nil
	}
	cp := *current
	return &cp, nil
}

func (r *fakeOrderRepo) FindByUserIDAndStatus(_ context.Context, userID int64, status entity.OrderStatus) ([]*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failWith; err != nil {
		return nil, err
	}
	out := []*entity.Order{}
	for _, o := range r.s.orders {
		if o.UserID == userID && o.Status == status {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeOrderProductRepo struct{ s *memStore }

func (r *fakeOrderProductRepo) Create(_ context.Context, item *entity.OrderProduct) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failWith; err != nil {
		return err
	}
	if r.s.order(item.OrderID) == nil || r.s.product(item.ProductID) == nil {
		return errors.New(`add product: ERROR: insert or update on table "order_products" violates foreign key constraint (SQLSTATE 23503)`)
	}
	item.ID = int64(len(r.s.items) + 1)
	cp := *item
	r.s.items = append(r.s.items, &cp)
	return nil
}

func (r *fakeOrderProductRepo) FindLinesByOrderID(_ context.Context, orderID int64) ([]*entity.OrderLine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failWith; err != nil {
		return nil, err
	}
	out := []*entity.OrderLine{}
	for _, item := range r.s.items {
		if item.OrderID != orderID {
			continue
		}
		p := r.s.product(item.ProductID)
		out = append(out, &entity.OrderLine{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  item.Quantity,
		})
	}
	return out, nil
}

func (s *memStore) userByID(id int64) *entity.User {
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (s *memStore) order(id int64) *entity.Order {
	for _, o := range s.orders {
		if o.ID == id {
			return o
		}
	}
	return nil
}

func (s *memStore) product(id int64) *entity.Product {
	for _, p := range s.products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// plainHasher keeps tests fast; digests are reversible on purpose.
type plainHasher struct{ pepper string }

func (h plainHasher) MaxPasswordLength() int { return 72 - len(h.pepper) }

func (h plainHasher) Hash(password string) (string, error) {
	if len(password+h.pepper) > 72 {
		return "", bcrypt.ErrPasswordTooLong
	}
	return "digest:" + password, nil
}

func (plainHasher) Verify(password, digest string) bool {
	return strings.TrimPrefix(digest, "digest:") == password && strings.HasPrefix(digest, "digest:")
}

type fakeTokens struct {
	issued []int64
	err    error
}

func (f *fakeTokens) Issue(userID int64) (string, time.Time, error) {
	if f.err != nil {
		return "", time.Time{}, f.err
	}
	f.issued = append(f.issued, userID)
	return fmt.Sprintf("token-%d", userID), time.Now().Add(2 * time.Hour), nil
}

type fixture struct {
	store  *memStore
	tokens *fakeTokens
	svc    *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := newMemStore()
	tokens := &fakeTokens{}
	log := zap.NewNop()
	return &fixture{
		store:  store,
		tokens: tokens,
		svc: &Service{
			User:    NewUserService(&fakeUserRepo{store}, plainHasher{pepper: testPepper}, tokens, log),
			Product: NewProductService(&fakeProductRepo{store}, log),
			Order:   NewOrderService(&fakeOrderRepo{store}, &fakeOrderProductRepo{store}, log),
		},
	}
}
