package migrations

import (
	"context"

	"github.com/bahikhata/bahikhata.go/db/models"
	"github.com/uptrace/bun"
)

/* Since this init will reflect the latest model fields when run on a fresh db
make sure that when you add/remove columns in subsequent migrations IfNotExists/IfExists is used
otherwise it's going to result in errors.
*/
func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {

		if _, err := db.NewCreateTable().Model((*models.Customer)(nil)).Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*models.Supplier)(nil)).Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*models.Invoice)(nil)).Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*models.Transaction)(nil)).Exec(ctx); err != nil {
			return err
		}

		// not unique: the one-transaction-per-invoice-number rule is
		// enforced at write time
		if _, err := db.NewCreateIndex().
			Model((*models.Transaction)(nil)).
			Index("transactions_invoice_number_idx").
			Column("invoice_number").
			Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateIndex().
			Model((*models.Invoice)(nil)).
			Index("invoices_invoice_number_idx").
			Column("invoice_number").
			Exec(ctx); err != nil {
			return err
		}

		return nil
	}, nil)
}
