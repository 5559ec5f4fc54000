package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// Customer : Customer Model
//
// Every customer gets one invoice and one opening transaction at
// creation time. The invoice number is resolved through the invoices
// table on reads, it is not stored on the customer row.
type Customer struct {
	bun.BaseModel `bun:"table:customers,alias:customer"`

	ID            int64           `json:"id" bun:",pk,autoincrement"`
	Name          string          `json:"name" bun:",notnull"`
	Phone         string          `json:"phone" bun:",notnull"`
	Email         string          `json:"email" bun:",nullzero"`
	Address       string          `json:"address" bun:",nullzero"`
	Balance       decimal.Decimal `json:"balance" bun:",type:decimal(13,2)"`
	Status        string          `json:"status" bun:",notnull"`
	InvoiceNumber int64           `json:"invoice_number" bun:",scanonly"`
	CreatedAt     time.Time       `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
}
