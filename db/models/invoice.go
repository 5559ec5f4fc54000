package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// LineItem is one line of an invoice. Items ride the invoice row as a
// serialized JSON column, they have no table of their own.
type LineItem struct {
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// Invoice : Invoice Model
//
// Invoices created through the customer cascade carry only a number and
// a customer id. Explicitly created invoices carry the customer name,
// line items and amounts. Invoices are never updated or deleted.
type Invoice struct {
	bun.BaseModel `bun:"table:invoices,alias:invoice"`

	ID            int64           `json:"id" bun:",pk,autoincrement"`
	InvoiceNumber int64           `json:"invoice_number" bun:",notnull"`
	CustomerID    int64           `json:"customer_id,omitempty" bun:",nullzero"`
	CustomerName  string          `json:"customer_name,omitempty" bun:",nullzero"`
	DueDate       bun.NullTime    `json:"due_date"`
	Subtotal      decimal.Decimal `json:"subtotal" bun:",type:decimal(13,2)"`
	Discount      decimal.Decimal `json:"discount" bun:",type:decimal(13,2)"`
	Total         decimal.Decimal `json:"total" bun:",type:decimal(13,2)"`
	Status        string          `json:"status" bun:",nullzero,default:'draft'"`
	Items         []LineItem      `json:"items" bun:"items,nullzero,type:jsonb"`
	CreatedAt     time.Time       `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
}
