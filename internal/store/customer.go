package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type CustomerStore struct {
	db *sqlx.DB
}

func (cs *CustomerStore) List(ctx context.Context) ([]Customer, error) {
	query := `SELECT id_customer, full_name, number_identification, address, phone, email
		FROM customers ORDER BY id_customer DESC`

	customers := []Customer{}
	if err := cs.db.SelectContext(ctx, &customers, query); err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, nil
}

// GetByID returns zero or one rows; callers check the result size
// instead of a distinct not-found signal, matching the HTTP surface
// the UI consumes.
func (cs *CustomerStore) GetByID(ctx context.Context, id int64) ([]Customer, error) {
	query := `SELECT id_customer, full_name, number_identification, address, phone, email
		FROM customers WHERE id_customer = $1`

	customers := []Customer{}
	if err := cs.db.SelectContext(ctx, &customers, query, id); err != nil {
		return nil, fmt.Errorf("failed to get customer %d: %w", id, err)
	}

	return customers, nil
}

// Create inserts a new row and fills in the generated id_customer.
// Required fields are checked before any query is attempted.
func (cs *CustomerStore) Create(ctx context.Context, customer *Customer) error {
	if customer.FullName == "" || customer.NumberIdentification == 0 {
		return ErrMissingFields
	}

	query := `INSERT INTO customers (
		full_name,
		number_identification,
		address,
		phone,
		email
	) VALUES (
		:full_name,
		:number_identification,
		:address,
		:phone,
		:email
	) RETURNING id_customer`

	rows, err := cs.db.NamedQueryContext(ctx, query, customer)
	if err != nil {
		return fmt.Errorf("failed to insert customer: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&customer.IDCustomer); err != nil {
			return fmt.Errorf("failed to scan generated id: %w", err)
		}
	}

	return rows.Err()
}

// Update replaces the full record keyed by id_customer. Zero matched
// rows report ErrNotFound and nothing is written.
func (cs *CustomerStore) Update(ctx context.Context, customer *Customer) error {
	if customer.FullName == "" || customer.NumberIdentification == 0 {
		return ErrMissingFields
	}

	query := `UPDATE customers SET
		full_name = $1,
		number_identification = $2,
		address = $3,
		phone = $4,
		email = $5
	WHERE id_customer = $6`

	result, err := cs.db.ExecContext(ctx, query,
		customer.FullName,
		customer.NumberIdentification,
		customer.Address,
		customer.Phone,
		customer.Email,
		customer.IDCustomer,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer %d: %w", customer.IDCustomer, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes the customer's invoices and then the customer inside a
// single transaction. Children go first: committing the parent delete
// before the invoice delete could leave invoices referencing a customer
// that no longer exists. When the customer row does not exist the whole
// unit rolls back, including the (empty) invoice delete.
func (cs *CustomerStore) Delete(ctx context.Context, id int64) (int64, error) {
	tx, err := cs.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	invoicesResult, err := tx.ExecContext(ctx, `DELETE FROM invoices WHERE id_customer = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete invoices for customer %d: %w", id, err)
	}
	invoicesDeleted, err := invoicesResult.RowsAffected()
	if err != nil {
		return 0, err
	}

	customerResult, err := tx.ExecContext(ctx, `DELETE FROM customers WHERE id_customer = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete customer %d: %w", id, err)
	}
	customersDeleted, err := customerResult.RowsAffected()
	if err != nil {
		return 0, err
	}
	if customersDeleted == 0 {
		return 0, ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit customer delete: %w", err)
	}

	return invoicesDeleted, nil
}

// BulkInsert issues one multi-row insert for the whole batch. Ids are
// caller-supplied at load time; the database assigns nothing here.
func (cs *CustomerStore) BulkInsert(ctx context.Context, customers []Customer) (int64, error) {
	if len(customers) == 0 {
		return 0, nil
	}

	query := `INSERT INTO customers (
		id_customer,
		full_name,
		number_identification,
		address,
		phone,
		email
	) VALUES (
		:id_customer,
		:full_name,
		:number_identification,
		:address,
		:phone,
		:email
	)`

	result, err := cs.db.NamedExecContext(ctx, query, customers)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk insert customers: %w", err)
	}

	return result.RowsAffected()
}
