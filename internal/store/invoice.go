package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type InvoiceStore struct {
	db *sqlx.DB
}

func (is *InvoiceStore) List(ctx context.Context) ([]Invoice, error) {
	query := `SELECT invoice_number, billing_invoice, invoiced_amount, paid_amount, platform_type, id_transaction, id_customer
		FROM invoices ORDER BY invoice_number`

	invoices := []Invoice{}
	if err := is.db.SelectContext(ctx, &invoices, query); err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	return invoices, nil
}

func (is *InvoiceStore) ListByCustomer(ctx context.Context, idCustomer int64) ([]Invoice, error) {
	query := `SELECT invoice_number, billing_invoice, invoiced_amount, paid_amount, platform_type, id_transaction, id_customer
		FROM invoices WHERE id_customer = $1 ORDER BY invoice_number`

	invoices := []Invoice{}
	if err := is.db.SelectContext(ctx, &invoices, query, idCustomer); err != nil {
		return nil, fmt.Errorf("failed to list invoices for customer %d: %w", idCustomer, err)
	}

	return invoices, nil
}

// BulkInsert is all-or-nothing: a single multi-row insert, so one row
// violating a foreign key fails the whole batch with nothing applied.
func (is *InvoiceStore) BulkInsert(ctx context.Context, invoices []Invoice) (int64, error) {
	if len(invoices) == 0 {
		return 0, nil
	}

	query := `INSERT INTO invoices (
		invoice_number,
		billing_invoice,
		invoiced_amount,
		paid_amount,
		platform_type,
		id_transaction,
		id_customer
	) VALUES (
		:invoice_number,
		:billing_invoice,
		:invoiced_amount,
		:paid_amount,
		:platform_type,
		:id_transaction,
		:id_customer
	)`

	result, err := is.db.NamedExecContext(ctx, query, invoices)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk insert invoices: %w", err)
	}

	return result.RowsAffected()
}
