package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/ordersvc/pkg/database"
	"github.com/ghuser/ordersvc/pkg/domainerr"
	"github.com/ghuser/ordersvc/pkg/events"
	orderdomain "github.com/ghuser/ordersvc/services/order/domain"
	domainevents "github.com/ghuser/ordersvc/services/order/domain/events"
	"github.com/ghuser/ordersvc/services/order/domain/models"
	"github.com/ghuser/ordersvc/services/order/infrastructure/persistence/postgres/db"
)

// OrderRepository implements repositories.OrderRepository against PostgreSQL.
type OrderRepository struct {
	db  *database.Database
	bus *events.EventBus
	now func() time.Time
}

// NewOrderRepository returns an OrderRepository. When bus is nil no
// OrderPlacedEvent is written.
func NewOrderRepository(database *database.Database, bus *events.EventBus) *OrderRepository {
	return &OrderRepository{db: database, bus: bus, now: time.Now}
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	q := db.New(r.db.DB())
	row, err := q.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domainerr.NotFound(id)
		}
		return nil, fmt.Errorf("query order: %w", err)
	}

	itemRows, err := q.ListItemsByOrderID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}

	order := rowToOrder(orderRow(row))
	order.Items = rowsToItems(itemRows)
	return order, nil
}

// FindAll loads every order with its customer and items in two queries.
func (r *OrderRepository) FindAll(ctx context.Context) ([]*models.Order, error) {
	q := db.New(r.db.DB())
	rows, err := q.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	itemRows, err := q.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}

	byOrder := make(map[int64][]*models.Item, len(rows))
	for _, row := range itemRows {
		byOrder[row.OrderID] = append(byOrder[row.OrderID], rowToItem(row))
	}

	orders := make([]*models.Order, len(rows))
	for i, row := range rows {
		o := rowToOrder(orderRow(row))
		o.Items = byOrder[o.ID]
		if o.Items == nil {
			o.Items = []*models.Item{}
		}
		orders[i] = o
	}
	return orders, nil
}

// Save writes the order and replaces its item rows in one transaction:
// owned items are updated in place, new items are inserted, and rows no
// longer present are deleted. Assigned IDs are written back to order.
// An OrderPlacedEvent is published to the outbox in the same transaction.
func (r *OrderRepository) Save(ctx context.Context, order *models.Order) error {
	if order == nil {
		return orderdomain.ErrNilOrder
	}
	if order.Customer == nil {
		return orderdomain.ErrNoCustomer
	}

	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)

		if err := r.saveOrderRow(ctx, q, order); err != nil {
			return err
		}
		if err := r.replaceItems(ctx, q, order); err != nil {
			return err
		}

		if r.bus != nil {
			if err := r.publishPlaced(ctx, tx, order); err != nil {
				return fmt.Errorf("publish order placed: %w", err)
			}
		}
		return nil
	})
}

func (r *OrderRepository) saveOrderRow(ctx context.Context, q *db.Queries, order *models.Order) error {
	if order.ID == 0 {
		id, err := q.InsertOrder(ctx, db.InsertOrderParams{
			Total:             order.Total,
			TotalWithDiscount: order.TotalWithDiscount,
			InStock:           order.InStock,
			DeliveryDate:      toNullDate(order.DeliveryDate),
			CustomerID:        order.Customer.ID,
		})
		if err != nil {
			return mapOrderWriteError("insert order", order, err)
		}
		order.AssignID(id)
		return nil
	}

	n, err := q.UpdateOrder(ctx, db.UpdateOrderParams{
		ID:                order.ID,
		Total:             order.Total,
		TotalWithDiscount: order.TotalWithDiscount,
		InStock:           order.InStock,
		DeliveryDate:      toNullDate(order.DeliveryDate),
		CustomerID:        order.Customer.ID,
	})
	if err != nil {
		return mapOrderWriteError("update order", order, err)
	}
	if n == 0 {
		return domainerr.NotFound(order.ID)
	}
	order.AssignID(order.ID)
	return nil
}

// replaceItems makes the item rows of order match order.Items exactly.
// An item whose ID belongs to another order is inserted as a new row.
func (r *OrderRepository) replaceItems(ctx context.Context, q *db.Queries, order *models.Order) error {
	existing, err := q.ListItemsByOrderID(ctx, order.ID)
	if err != nil {
		return fmt.Errorf("query order items: %w", err)
	}
	owned := make(map[int64]bool, len(existing))
	for _, row := range existing {
		owned[row.ID] = true
	}

	kept := make(map[int64]bool, len(order.Items))
	for _, it := range order.Items {
		if it == nil {
			continue
		}
		qty, stock, err := itemCounts(it)
		if err != nil {
			return err
		}
		if it.ID > 0 && owned[it.ID] {
			if _, err := q.UpdateItem(ctx, db.UpdateItemParams{
				ID:       it.ID,
				OrderID:  order.ID,
				Name:     it.Name,
				Price:    it.Price,
				Quantity: qty,
				Stock:    stock,
			}); err != nil {
				return fmt.Errorf("update item %d: %w", it.ID, err)
			}
		} else {
			id, err := q.InsertItem(ctx, db.InsertItemParams{
				Name:     it.Name,
				Price:    it.Price,
				Quantity: qty,
				Stock:    stock,
				OrderID:  order.ID,
			})
			if err != nil {
				return fmt.Errorf("insert item: %w", err)
			}
			it.ID = id
		}
		it.OrderID = order.ID
		kept[it.ID] = true
	}

	for _, row := range existing {
		if kept[row.ID] {
			continue
		}
		if err := q.DeleteItem(ctx, row.ID); err != nil {
			return fmt.Errorf("delete item %d: %w", row.ID, err)
		}
	}
	return nil
}

// errCountOutOfRange rejects quantities and stock that do not fit INTEGER.
var errCountOutOfRange = errors.New("value out of INTEGER range")

func itemCounts(it *models.Item) (qty, stock int32, err error) {
	if it.Quantity < math.MinInt32 || it.Quantity > math.MaxInt32 {
		return 0, 0, fmt.Errorf("item %q quantity %d: %w", it.Name, it.Quantity, errCountOutOfRange)
	}
	if it.Stock < math.MinInt32 || it.Stock > math.MaxInt32 {
		return 0, 0, fmt.Errorf("item %q stock %d: %w", it.Name, it.Stock, errCountOutOfRange)
	}
	return int32(it.Quantity), int32(it.Stock), nil
}

func (r *OrderRepository) Exists(ctx context.Context, id int64) (bool, error) {
	exists, err := db.New(r.db.DB()).OrderExists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("check order exists: %w", err)
	}
	return exists, nil
}

// Delete removes the order row; items are removed by ON DELETE CASCADE.
func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	if err := db.New(r.db.DB()).DeleteOrder(ctx, id); err != nil {
		if database.IsForeignKeyViolation(err) {
			return domainerr.Database(orderdomain.MsgOrderInUse, err)
		}
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func (r *OrderRepository) publishPlaced(ctx context.Context, tx *sql.Tx, order *models.Order) error {
	event := domainevents.NewOrderPlacedEvent(order, r.now())
	msg, err := events.NewMessage(event.EventID.String(), event.Version, event)
	if err != nil {
		return err
	}
	return r.bus.PublishInTx(ctx, tx, domainevents.TopicOrderPlaced, msg)
}

// mapOrderWriteError turns a missing customer reference into a not-found error.
func mapOrderWriteError(op string, order *models.Order, err error) error {
	if database.IsForeignKeyViolation(err) {
		return fmt.Errorf("%s: %w", op, domainerr.NotFound(order.Customer.ID))
	}
	return fmt.Errorf("%s: %w", op, err)
}

// orderRow is the shape shared by GetOrderByIDRow and ListOrdersRow.
type orderRow struct {
	ID                int64
	Total             decimal.Decimal
	TotalWithDiscount decimal.Decimal
	InStock           bool
	DeliveryDate      sql.NullTime
	CustomerID        int64
	CustomerName      string
	CustomerEmail     string
	CustomerVip       bool
}

func rowToOrder(row orderRow) *models.Order {
	o := &models.Order{
		ID:                row.ID,
		Total:             row.Total,
		TotalWithDiscount: row.TotalWithDiscount,
		InStock:           row.InStock,
		Customer: &models.Customer{
			ID:    row.CustomerID,
			Name:  row.CustomerName,
			Email: row.CustomerEmail,
			VIP:   row.CustomerVip,
		},
	}
	if row.DeliveryDate.Valid {
		d := models.Date(row.DeliveryDate.Time)
		o.DeliveryDate = &d
	}
	return o
}

func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: models.Date(*t), Valid: true}
}
