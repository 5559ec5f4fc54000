package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// Transaction : Ledger Transaction Model
//
// InvoiceNumber links a transaction to an invoice by its human-facing
// number, not its row id. At most one transaction may reference a given
// number; the check happens at write time (see service.CreateTransaction),
// there is no uniqueness constraint. Transactions are never updated.
type Transaction struct {
	bun.BaseModel `bun:"table:transactions,alias:tx"`

	ID            int64           `json:"id" bun:",pk,autoincrement"`
	Type          string          `json:"type" bun:",notnull"`
	Name          string          `json:"name" bun:",notnull"`
	InvoiceNumber int64           `json:"invoice_number,omitempty" bun:",nullzero"`
	Amount        decimal.Decimal `json:"amount" bun:",type:decimal(13,2)"`
	Method        string          `json:"method" bun:",nullzero"`
	Note          string          `json:"note" bun:",nullzero"`
	CreatedAt     time.Time       `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
}
