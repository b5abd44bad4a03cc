package seed

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dcastellanos/financial-management/internal/logger"
	"github.com/dcastellanos/financial-management/internal/store"
)

// Source file names, one per phase. The numeric prefixes mirror the
// order the phases must run in: invoices reference customers and
// transactions, so both must be fully loaded first.
const (
	CustomersFile    = "01_customers.csv"
	TransactionsFile = "02_transactions.csv"
	InvoicesFile     = "03_invoices.csv"
)

// Summary reports how many rows each phase actually inserted.
type Summary struct {
	Customers    int64
	Transactions int64
	Invoices     int64
}

// Pipeline seeds the store from three delimited files. It is
// all-or-nothing per phase and aborts the remaining phases on the first
// failure; phases already committed are not rolled back.
type Pipeline struct {
	storage *store.Storage
	dataDir string
	latin1  bool
	log     *logger.Logger
}

func New(storage *store.Storage, dataDir string, latin1 bool, log *logger.Logger) *Pipeline {
	return &Pipeline{
		storage: storage,
		dataDir: dataDir,
		latin1:  latin1,
		log:     log,
	}
}

func (p *Pipeline) Run(ctx context.Context) (Summary, error) {
	var summary Summary
	var err error

	p.log.Info().Str("dataDir", p.dataDir).Msg("starting bulk load")

	if summary.Customers, err = p.loadCustomers(ctx); err != nil {
		return summary, fmt.Errorf("customers phase: %w", err)
	}
	if summary.Transactions, err = p.loadTransactions(ctx); err != nil {
		return summary, fmt.Errorf("transactions phase: %w", err)
	}
	if summary.Invoices, err = p.loadInvoices(ctx); err != nil {
		return summary, fmt.Errorf("invoices phase: %w", err)
	}

	p.log.Info().
		Int64("customers", summary.Customers).
		Int64("transactions", summary.Transactions).
		Int64("invoices", summary.Invoices).
		Msg("bulk load completed")

	return summary, nil
}

func (p *Pipeline) loadCustomers(ctx context.Context) (int64, error) {
	records, err := readRecords(filepath.Join(p.dataDir, CustomersFile), p.latin1)
	if err != nil {
		return 0, err
	}

	customers, err := parseCustomerRecords(CustomersFile, records)
	if err != nil {
		return 0, err
	}

	inserted, err := p.storage.Customer.BulkInsert(ctx, customers)
	if err != nil {
		return 0, err
	}

	p.log.Info().Int64("rows", inserted).Msg("customers loaded")
	return inserted, nil
}

func (p *Pipeline) loadTransactions(ctx context.Context) (int64, error) {
	records, err := readRecords(filepath.Join(p.dataDir, TransactionsFile), p.latin1)
	if err != nil {
		return 0, err
	}

	transactions, err := parseTransactionRecords(TransactionsFile, records)
	if err != nil {
		return 0, err
	}

	inserted, err := p.storage.Transaction.BulkInsert(ctx, transactions)
	if err != nil {
		return 0, err
	}

	p.log.Info().Int64("rows", inserted).Msg("transactions loaded")
	return inserted, nil
}

func (p *Pipeline) loadInvoices(ctx context.Context) (int64, error) {
	records, err := readRecords(filepath.Join(p.dataDir, InvoicesFile), p.latin1)
	if err != nil {
		return 0, err
	}

	invoices, err := parseInvoiceRecords(InvoicesFile, records)
	if err != nil {
		return 0, err
	}

	inserted, err := p.storage.Invoice.BulkInsert(ctx, invoices)
	if err != nil {
		return 0, err
	}

	p.log.Info().Int64("rows", inserted).Msg("invoices loaded")
	return inserted, nil
}
