package service

import (
	"context"
	"database/sql"

	"github.com/bahikhata/bahikhata.go/common"
	"github.com/bahikhata/bahikhata.go/db/models"
	"github.com/uptrace/bun"
)

// NextInvoiceNumber returns the number the next invoice will be assigned:
// one past the highest stored number, starting at 1001 on an empty store.
// The number is advisory and not reserved; only the customer-creation
// cascade allocates it inside a transaction.
func (svc *LedgerService) NextInvoiceNumber(ctx context.Context) (int64, error) {
	return nextInvoiceNumber(ctx, svc.DB)
}

func nextInvoiceNumber(ctx context.Context, db bun.IDB) (int64, error) {
	var max sql.NullInt64
	err := db.NewSelect().
		Model((*models.Invoice)(nil)).
		ColumnExpr("max(invoice_number)").
		Scan(ctx, &max)
	if err != nil {
		return 0, err
	}
	if !max.Valid || max.Int64 < common.InvoiceNumberFloor {
		return common.InvoiceNumberFloor + 1, nil
	}
	return max.Int64 + 1, nil
}
