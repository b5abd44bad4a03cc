package store

import (
	"time"
)

// Customer represents the 'customers' table. Address, phone and email
// are optional and stay NULL when absent.
type Customer struct {
	IDCustomer           int64   `db:"id_customer" json:"id_customer"`
	FullName             string  `db:"full_name" json:"full_name"`
	NumberIdentification int64   `db:"number_identification" json:"number_identification"`
	Address              *string `db:"address" json:"address"`
	Phone                *int64  `db:"phone" json:"phone"`
	Email                *string `db:"email" json:"email"`
}

// Transaction represents the 'transactions' table. Rows are written only
// by the bulk load and are immutable afterwards; invoices reference them.
type Transaction struct {
	IDTransaction       int64     `db:"id_transaction" json:"id_transaction"`
	DatetimeTransaction time.Time `db:"datetime_transaction" json:"datetime_transaction"`
	TransactionAmount   float64   `db:"transaction_amount" json:"transaction_amount"`
	StatusTransaction   string    `db:"status_transaction" json:"status_transaction"`
	TransactionType     string    `db:"transaction_type" json:"transaction_type"`
}

// Invoice represents the 'invoices' table. Both foreign keys must
// resolve to existing rows at insert time.
type Invoice struct {
	InvoiceNumber  string  `db:"invoice_number" json:"invoice_number"`
	BillingInvoice string  `db:"billing_invoice" json:"billing_invoice"`
	InvoicedAmount float64 `db:"invoiced_amount" json:"invoiced_amount"`
	PaidAmount     float64 `db:"paid_amount" json:"paid_amount"`
	PlatformType   string  `db:"platform_type" json:"platform_type"`
	IDTransaction  int64   `db:"id_transaction" json:"id_transaction"`
	IDCustomer     int64   `db:"id_customer" json:"id_customer"`
}
