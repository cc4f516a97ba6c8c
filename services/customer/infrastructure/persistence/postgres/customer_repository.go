package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ghuser/ordersvc/pkg/database"
	"github.com/ghuser/ordersvc/pkg/domainerr"
	customerdomain "github.com/ghuser/ordersvc/services/customer/domain"
	"github.com/ghuser/ordersvc/services/customer/domain/models"
	"github.com/ghuser/ordersvc/services/customer/infrastructure/persistence/postgres/db"
)

// CustomerRepository implements repositories.CustomerRepository against PostgreSQL.
type CustomerRepository struct {
	db *database.Database
}

func NewCustomerRepository(database *database.Database) *CustomerRepository {
	return &CustomerRepository{db: database}
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	row, err := db.New(r.db.DB()).GetCustomerByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domainerr.NotFound(id)
		}
		return nil, fmt.Errorf("query customer: %w", err)
	}
	return rowToCustomer(row), nil
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]*models.Customer, error) {
	rows, err := db.New(r.db.DB()).ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	customers := make([]*models.Customer, len(rows))
	for i, row := range rows {
		customers[i] = rowToCustomer(row)
	}
	return customers, nil
}

// Save inserts when customer.ID is 0, otherwise updates. Updating a missing
// row returns a not-found error; a duplicate email returns ErrEmailTaken.
func (r *CustomerRepository) Save(ctx context.Context, customer *models.Customer) error {
	if customer == nil {
		return customerdomain.ErrNilCustomer
	}
	q := db.New(r.db.DB())

	if customer.ID == 0 {
		id, err := q.InsertCustomer(ctx, db.InsertCustomerParams{
			Name:  customer.Name,
			Email: customer.Email,
			Vip:   customer.VIP,
		})
		if err != nil {
			return mapWriteError("insert customer", err)
		}
		customer.ID = id
		return nil
	}

	n, err := q.UpdateCustomer(ctx, db.UpdateCustomerParams{
		ID:    customer.ID,
		Name:  customer.Name,
		Email: customer.Email,
		Vip:   customer.VIP,
	})
	if err != nil {
		return mapWriteError("update customer", err)
	}
	if n == 0 {
		return domainerr.NotFound(customer.ID)
	}
	return nil
}

func (r *CustomerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	exists, err := db.New(r.db.DB()).CustomerExists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("check customer exists: %w", err)
	}
	return exists, nil
}

// Delete returns a database-kind error when orders still reference the customer.
func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	if err := db.New(r.db.DB()).DeleteCustomer(ctx, id); err != nil {
		if database.IsForeignKeyViolation(err) {
			return domainerr.Database(customerdomain.MsgCustomerInUse, err)
		}
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

func mapWriteError(op string, err error) error {
	if database.IsUniqueViolation(err) {
		return fmt.Errorf("%w: %w", customerdomain.ErrEmailTaken, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func rowToCustomer(row db.Customer) *models.Customer {
	return &models.Customer{
		ID:    row.ID,
		Name:  row.Name,
		Email: row.Email,
		VIP:   row.Vip,
	}
}
