package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// Supplier : Supplier Model
//
// Amount is exposed as "balance" in reads to match the customer shape.
type Supplier struct {
	bun.BaseModel `bun:"table:suppliers,alias:supplier"`

	ID        int64           `json:"id" bun:",pk,autoincrement"`
	Name      string          `json:"name" bun:",notnull"`
	Phone     string          `json:"phone" bun:",notnull"`
	Email     string          `json:"email" bun:",nullzero"`
	Amount    decimal.Decimal `json:"balance" bun:",type:decimal(13,2)"`
	Status    string          `json:"status" bun:",notnull"`
	CreatedAt time.Time       `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
}
