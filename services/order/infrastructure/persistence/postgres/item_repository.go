package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ghuser/ordersvc/pkg/database"
	"github.com/ghuser/ordersvc/pkg/domainerr"
	"github.com/ghuser/ordersvc/services/order/domain/models"
	"github.com/ghuser/ordersvc/services/order/infrastructure/persistence/postgres/db"
)

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
// Item rows are inserted and deleted only by OrderRepository.Save.
type ItemRepository struct {
	db *database.Database
}

func NewItemRepository(database *database.Database) *ItemRepository {
	return &ItemRepository{db: database}
}

func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	row, err := db.New(r.db.DB()).GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domainerr.NotFound(id)
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return rowToItem(row), nil
}

func (r *ItemRepository) FindAll(ctx context.Context) ([]*models.Item, error) {
	rows, err := db.New(r.db.DB()).ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	return rowsToItems(rows), nil
}

// UpdateName renames one item without touching its order.
func (r *ItemRepository) UpdateName(ctx context.Context, id int64, name string) error {
	n, err := db.New(r.db.DB()).UpdateItemName(ctx, db.UpdateItemNameParams{ID: id, Name: name})
	if err != nil {
		return fmt.Errorf("update item name: %w", err)
	}
	if n == 0 {
		return domainerr.NotFound(id)
	}
	return nil
}

func rowToItem(row db.Item) *models.Item {
	return &models.Item{
		ID:       row.ID,
		Name:     row.Name,
		Price:    row.Price,
		Quantity: int(row.Quantity),
		Stock:    int(row.Stock),
		OrderID:  row.OrderID,
	}
}

func rowsToItems(rows []db.Item) []*models.Item {
	items := make([]*models.Item, len(rows))
	for i, row := range rows {
		items[i] = rowToItem(row)
	}
	return items
}
