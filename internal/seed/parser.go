package seed

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dcastellanos/financial-management/internal/store"
)

// ParseError points at the exact record that failed so a bad source
// file can be fixed instead of silently skipped.
type ParseError struct {
	File string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: line %d: %v", e.File, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var transactionTimeFormats = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
}

func parseDateTime(value string) (time.Time, error) {
	for _, layout := range transactionTimeFormats {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q", value)
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// parseCustomerRecords turns raw records (header first) into customer
// rows. A single malformed record fails the whole batch; partial
// buffers are never handed to the store.
func parseCustomerRecords(file string, records [][]string) ([]store.Customer, error) {
	idx, err := columnIndex(records[0], []string{
		"id_customer", "full_name", "number_identification", "address", "phone", "email",
	})
	if err != nil {
		return nil, &ParseError{File: file, Line: 1, Err: err}
	}

	customers := make([]store.Customer, 0, len(records)-1)
	for i, rec := range records[1:] {
		line := i + 2

		id, err := strconv.ParseInt(rec[idx["id_customer"]], 10, 64)
		if err != nil {
			return nil, &ParseError{File: file, Line: line, Err: fmt.Errorf("invalid id_customer %q", rec[idx["id_customer"]])}
		}
		fullName := strings.TrimSpace(rec[idx["full_name"]])
		if fullName == "" {
			return nil, &ParseError{File: file, Line: line, Err: fmt.Errorf("empty full_name")}
		}
		numberIdentification, err := strconv.ParseInt(rec[idx["number_identification"]], 10, 64)
		if err != nil {
			return nil, &ParseError{File: file, Line: line, Err: fmt.Errorf("invalid number_identification %q", rec[idx["number_identification"]])}
		}

		var phone *int64
		if raw := rec[idx["phone"]]; raw != "" {
			p, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return nil, &ParseError{File: file, Line: line, Err: fmt.Errorf("invalid phone %q", raw)}
			}
			phone = &p
		}

		customers = append(customers, store.Customer{
			IDCustomer:           id,
			FullName:             fullName,
			NumberIdentification: numberIdentification,
			Address:              optionalString(rec[idx["address"]]),
			Phone:                phone,
			Email:                optionalString(rec[idx["email"]]),
		})
	}

	return customers, nil
}

func parseTransactionRecords(file string, records [][]string) ([]store.Transaction, error) {
	idx, err := columnIndex(records[0], []string{
		"id_transaction", "datetime_transaction", "transaction_amount", "status_transaction", "transaction_type",
	})
	if err != nil {
		return nil, &ParseError{File: file, Line: 1, Err: err}
	}

	transactions := make([]store.Transaction, 0, len(records)-1)
	for i, rec := range records[1:] {
		line := i + 2

		id, err := strconv.ParseInt(rec[idx["id_transaction"]], 10, 64)
		if err != nil {
			return nil, &ParseError{File: file, Line: line, Err: fmt.Errorf("invalid id_transaction %q", rec[idx["id_transaction"]])}
		}
		datetime, err := parseDateTime(rec[idx["datetime_transaction"]])
		if err != nil {
			return nil, &ParseError{File: file, Line: line, Err: err}
		}
		amount, err := strconv.ParseFloat(rec[idx["transaction_amount"]], 64)
		if err != nil {
			return nil, &ParseError{File: file, Line: line, Err: fmt.Errorf("invalid transaction_amount %q", rec[idx["transaction_amount"]])}
		}

		transactions = append(transactions, store.Transaction{
			IDTransaction:       id,
			DatetimeTransaction: datetime,
			TransactionAmount:   amount,
			StatusTransaction:   rec[idx["status_transaction"]],
			TransactionType:     rec[idx["transaction_type"]],
		})
	}

	return transactions, nil
}

func parseInvoiceRecords(file string, records [][]string) ([]store.Invoice, error) {
	idx, err := columnIndex(records[0], []string{
		"invoice_number", "billing_invoice", "invoiced_amount", "paid_amount", "platform_type", "id_transaction", "id_customer",
	})
	if err != nil {
		return nil, &ParseError{File: file, Line: 1, Err: err}
	}

	invoices := make([]store.Invoice, 0, len(records)-1)
	for i, rec := range records[1:] {
		line := i + 2

		number := rec[idx["invoice_number"]]
		if number == "" {
			return nil, &ParseError{File: file, Line: line, Err: fmt.Errorf("empty invoice_number")}
		}
		invoicedAmount, err := strconv.ParseFloat(rec[idx["invoiced_amount"]], 64)
		if err != nil {
			return nil, &ParseError{File: file, Line: line, Err: fmt.Errorf("invalid invoiced_amount %q", rec[idx["invoiced_amount"]])}
		}
		paidAmount, err := strconv.ParseFloat(rec[idx["paid_amount"]], 64)
		if err != nil {
			return nil, &ParseError{File: file, Line: line, Err: fmt.Errorf("invalid paid_amount %q", rec[idx["paid_amount"]])}
		}
		idTransaction, err := strconv.ParseInt(rec[idx["id_transaction"]], 10, 64)
		if err != nil {
			return nil, &ParseError{File: file, Line: line, Err: fmt.Errorf("invalid id_transaction %q", rec[idx["id_transaction"]])}
		}
		idCustomer, err := strconv.ParseInt(rec[idx["id_customer"]], 10, 64)
		if err != nil {
			return nil, &ParseError{File: file, Line: line, Err: fmt.Errorf("invalid id_customer %q", rec[idx["id_customer"]])}
		}

		invoices = append(invoices, store.Invoice{
			InvoiceNumber:  number,
			BillingInvoice: rec[idx["billing_invoice"]],
			InvoicedAmount: invoicedAmount,
			PaidAmount:     paidAmount,
			PlatformType:   rec[idx["platform_type"]],
			IDTransaction:  idTransaction,
			IDCustomer:     idCustomer,
		})
	}

	return invoices, nil
}
