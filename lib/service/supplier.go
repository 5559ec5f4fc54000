package service

import (
	"context"
	"time"

	"github.com/bahikhata/bahikhata.go/common"
	"github.com/bahikhata/bahikhata.go/db/models"
)

// CreateSupplier inserts a supplier and returns the persisted row.
// Status defaults to "active" but is otherwise stored as given.
func (svc *LedgerService) CreateSupplier(ctx context.Context, supplier *models.Supplier) (*models.Supplier, error) {
	if supplier.Status == "" {
		supplier.Status = common.SupplierStatusActive
	}
	supplier.CreatedAt = time.Now()

	_, err := svc.DB.NewInsert().Model(supplier).Exec(ctx)
	if err != nil {
		return nil, err
	}
	return supplier, nil
}

func (svc *LedgerService) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	suppliers := []models.Supplier{}
	err := svc.DB.NewSelect().
		Model(&suppliers).
		OrderExpr("supplier.id DESC").
		Scan(ctx)
	return suppliers, err
}

func (svc *LedgerService) DeleteSupplier(ctx context.Context, id int64) error {
	res, err := svc.DB.NewDelete().
		Model((*models.Supplier)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
