package store

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Storage is the only component issuing queries; everything else goes
// through these interfaces so tests can substitute in-memory fakes.
type Storage struct {
	Customer interface {
		List(ctx context.Context) ([]Customer, error)
		GetByID(ctx context.Context, id int64) ([]Customer, error)
		Create(ctx context.Context, customer *Customer) error
		Update(ctx context.Context, customer *Customer) error
		// Delete removes the customer and every invoice referencing it in
		// one transaction, returning how many invoices went with it.
		Delete(ctx context.Context, id int64) (int64, error)
		BulkInsert(ctx context.Context, customers []Customer) (int64, error)
	}

	Transaction interface {
		List(ctx context.Context) ([]Transaction, error)
		GetByID(ctx context.Context, id int64) ([]Transaction, error)
		BulkInsert(ctx context.Context, transactions []Transaction) (int64, error)
	}

	Invoice interface {
		List(ctx context.Context) ([]Invoice, error)
		ListByCustomer(ctx context.Context, idCustomer int64) ([]Invoice, error)
		BulkInsert(ctx context.Context, invoices []Invoice) (int64, error)
	}
}

func NewStorage(db *sqlx.DB) *Storage {
	return &Storage{
		Customer:    &CustomerStore{db: db},
		Transaction: &TransactionStore{db: db},
		Invoice:     &InvoiceStore{db: db},
	}
}
