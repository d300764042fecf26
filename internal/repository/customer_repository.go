package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/model"
)

// CustomerRepositoryInterface defines methods used by services.
type CustomerRepositoryInterface interface {
	GetByIDs(ctx context.Context, ids []int) ([]model.Customer, error)
	List(ctx context.Context, serviceType model.ServiceType) ([]model.Customer, error)
	Create(ctx context.Context, c *model.Customer) error
	Delete(ctx context.Context, id int) (bool, error)
	DeleteMany(ctx context.Context, ids []int) (int64, error)
}

// CustomerRepository is the Postgres implementation.
type CustomerRepository struct {
	DB *sql.DB
}

const customerColumns = "id, name, phone, notes, service_type, service_date, created_at, updated_at"

// GetByIDs fetches the customers matching the given IDs, in a stable order.
// Unresolved IDs are simply absent from the result.
func (r *CustomerRepository) GetByIDs(ctx context.Context, ids []int) ([]model.Customer, error) {
	query := `
        SELECT ` + customerColumns + `
        FROM customers
        WHERE id = ANY($1)
        ORDER BY id
    `
	rows, err := r.DB.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCustomers(rows)
}

// List fetches all customers, newest first, optionally filtered by service type.
func (r *CustomerRepository) List(ctx context.Context, serviceType model.ServiceType) ([]model.Customer, error) {
	query := `
        SELECT ` + customerColumns + `
        FROM customers
    `
	args := []any{}
	if serviceType != "" {
		query += " WHERE service_type = $1"
		args = append(args, string(serviceType))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCustomers(rows)
}

// Create inserts a new customer and fills in the generated ID and timestamps.
func (r *CustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	query := `
        INSERT INTO customers (name, phone, notes, service_type, service_date, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	return r.DB.QueryRowContext(ctx, query,
		c.Name, c.Phone, c.Notes, string(c.ServiceType), c.ServiceDate, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
}

// Delete removes one customer. Returns false when no row matched.
func (r *CustomerRepository) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DeleteMany removes all customers in the ID list and reports how many went.
func (r *CustomerRepository) DeleteMany(ctx context.Context, ids []int) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM customers WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanCustomers(rows *sql.Rows) ([]model.Customer, error) {
	customers := []model.Customer{}
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Notes, &c.ServiceType, &c.ServiceDate, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}
