package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/ordersvc/pkg/cache"
	"github.com/ghuser/ordersvc/pkg/domainerr"
	"github.com/ghuser/ordersvc/services/order/domain/models"
	domainsvcs "github.com/ghuser/ordersvc/services/order/domain/services"
)

var fixedNow = time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC)

// memStore backs both the order and item fakes, like the two tables do.
type memStore struct {
	mu       sync.Mutex
	orders   map[int64]*models.Order
	nextID   int64
	nextItem int64
	saves    int
	saveErr  error
}

func newMemStore() *memStore {
	return &memStore{orders: map[int64]*models.Order{}}
}

func cloneOrder(o *models.Order) *models.Order {
	cp := *o
	if o.Customer != nil {
		c := *o.Customer
		cp.Customer = &c
	}
	cp.Items = make([]*models.Item, 0, len(o.Items))
	for _, it := range o.Items {
		i := *it
		cp.Items = append(cp.Items, &i)
	}
	return &cp
}

func (m *memStore) GetByID(_ context.Context, id int64) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, domainerr.NotFound(id)
	}
	return cloneOrder(o), nil
}

func (m *memStore) FindAll(context.Context) ([]*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*models.Order, 0, len(m.orders))
	for _, o := range m.orders {
		out = append(out, cloneOrder(o))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) Save(_ context.Context, o *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	if o.ID == 0 {
		m.nextID++
		o.AssignID(m.nextID)
	} else if _, ok := m.orders[o.ID]; !ok {
		return domainerr.NotFound(o.ID)
	}
	for _, it := range o.Items {
		if it.ID == 0 {
			m.nextItem++
			it.ID = m.nextItem
		}
	}
	m.orders[o.ID] = cloneOrder(o)
	return nil
}

func (m *memStore) Exists(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.orders[id]
	return ok, nil
}

func (m *memStore) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.orders, id)
	return nil
}

// memItems reads items out of the orders held by memStore.
type memItems struct{ store *memStore }

func (m memItems) GetByID(_ context.Context, id int64) (*models.Item, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	for _, o := range m.store.orders {
		for _, it := range o.Items {
			if it.ID == id {
				cp := *it
				return &cp, nil
			}
		}
	}
	return nil, domainerr.NotFound(id)
}

func (m memItems) FindAll(ctx context.Context) ([]*models.Item, error) {
	orders, _ := m.store.FindAll(ctx)
	var out []*models.Item
	for _, o := range orders {
		out = append(out, o.Items...)
	}
	return out, nil
}

func (m memItems) UpdateName(_ context.Context, id int64, name string) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	for _, o := range m.store.orders {
		for _, it := range o.Items {
			if it.ID == id {
				it.Name = name
				return nil
			}
		}
	}
	return domainerr.NotFound(id)
}

type memCustomers map[int64]*models.Customer

func (m memCustomers) GetByID(_ context.Context, id int64) (*models.Customer, error) {
	c, ok := m[id]
	if !ok {
		return nil, domainerr.NotFound(id)
	}
	cp := *c
	return &cp, nil
}

type fakeGateway struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (g *fakeGateway) Send(_ context.Context, recipient, _, _ string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return g.err
	}
	g.sent = append(g.sent, recipient)
	return nil
}

type memReadModel struct {
	mu       sync.Mutex
	entries  map[int64]*cache.CachedOrder
	setCount int
	deletes  []int64
	getErr   error
	// afterSet runs once the entry is stored, standing in for a writer that
	// races the cache write.
	afterSet func(id int64)
}

func newMemReadModel() *memReadModel {
	return &memReadModel{entries: map[int64]*cache.CachedOrder{}}
}

func (m *memReadModel) Get(_ context.Context, id int64) (*cache.CachedOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	c, ok := m.entries[id]
	if !ok {
		return nil, cache.ErrMiss
	}
	return c, nil
}

func (m *memReadModel) Set(_ context.Context, o *cache.CachedOrder) error {
	m.mu.Lock()
	m.entries[o.ID] = o
	m.setCount++
	hook := m.afterSet
	m.mu.Unlock()
	if hook != nil {
		hook(o.ID)
	}
	return nil
}

func (m *memReadModel) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, id)
	m.deletes = append(m.deletes, id)
	return nil
}

func (m *memReadModel) DeleteByCustomer(_ context.Context, customerID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, c := range m.entries {
		if c.Customer.ID == customerID {
			delete(m.entries, id)
		}
	}
	return nil
}

func (m *memReadModel) cached(id int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[id]
	return ok
}

var errBoom = errors.New("boom")

func ana() *models.Customer {
	return &models.Customer{ID: 1, Name: "Ana", Email: "ana@example.com", VIP: true}
}

func lines(qtyStock ...int) []*models.Item {
	var items []*models.Item
	for i := 0; i+1 < len(qtyStock); i += 2 {
		items = append(items, models.NewItem("Caneta", decimal.RequireFromString("10.00"), qtyStock[i], qtyStock[i+1]))
	}
	return items
}

type harness struct {
	store   *memStore
	gateway *fakeGateway
	cache   *memReadModel
	orders  *OrderService
	items   *ItemService
}

func newHarness(opts ...Option) *harness {
	h := &harness{store: newMemStore(), gateway: &fakeGateway{}, cache: newMemReadModel()}
	processor := domainsvcs.NewOrderProcessor(h.gateway, domainsvcs.WithClock(func() time.Time { return fixedNow }))
	opts = append([]Option{WithReadModel(h.cache)}, opts...)
	h.orders = NewOrderService(h.store, memCustomers{1: ana()}, processor, opts...)
	h.items = NewItemService(memItems{h.store}, h.store, h.orders)
	return h
}
