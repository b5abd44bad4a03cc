package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type TransactionStore struct {
	db *sqlx.DB
}

func (ts *TransactionStore) List(ctx context.Context) ([]Transaction, error) {
	query := `SELECT id_transaction, datetime_transaction, transaction_amount, status_transaction, transaction_type
		FROM transactions ORDER BY id_transaction DESC`

	transactions := []Transaction{}
	if err := ts.db.SelectContext(ctx, &transactions, query); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, nil
}

func (ts *TransactionStore) GetByID(ctx context.Context, id int64) ([]Transaction, error) {
	query := `SELECT id_transaction, datetime_transaction, transaction_amount, status_transaction, transaction_type
		FROM transactions WHERE id_transaction = $1`

	transactions := []Transaction{}
	if err := ts.db.SelectContext(ctx, &transactions, query, id); err != nil {
		return nil, fmt.Errorf("failed to get transaction %d: %w", id, err)
	}

	return transactions, nil
}

func (ts *TransactionStore) BulkInsert(ctx context.Context, transactions []Transaction) (int64, error) {
	if len(transactions) == 0 {
		return 0, nil
	}

	query := `INSERT INTO transactions (
		id_transaction,
		datetime_transaction,
		transaction_amount,
		status_transaction,
		transaction_type
	) VALUES (
		:id_transaction,
		:datetime_transaction,
		:transaction_amount,
		:status_transaction,
		:transaction_type
	)`

	result, err := ts.db.NamedExecContext(ctx, query, transactions)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk insert transactions: %w", err)
	}

	return result.RowsAffected()
}
