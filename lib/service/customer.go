package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bahikhata/bahikhata.go/common"
	"github.com/bahikhata/bahikhata.go/db/models"
	"github.com/uptrace/bun"
)

// CreateCustomer inserts the customer together with its opening invoice
// and transaction. The three writes run in one store transaction so a
// failed step leaves no partial rows; each step failure is reported with
// the step that failed. On success the allocated invoice number is set
// on the returned customer.
func (svc *LedgerService) CreateCustomer(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	customer.CreatedAt = time.Now()

	err := svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(customer).Exec(ctx); err != nil {
			return fmt.Errorf("customer insert failed: %w", err)
		}

		invoiceNumber, err := nextInvoiceNumber(ctx, tx)
		if err != nil {
			return fmt.Errorf("invoice number fetch failed: %w", err)
		}

		invoice := &models.Invoice{
			InvoiceNumber: invoiceNumber,
			CustomerID:    customer.ID,
			CreatedAt:     customer.CreatedAt,
		}
		if _, err := tx.NewInsert().Model(invoice).Exec(ctx); err != nil {
			return fmt.Errorf("invoice insert failed: %w", err)
		}

		transactionType := common.TransactionTypeGot
		if customer.Status != common.CustomerStatusReceivable {
			transactionType = common.TransactionTypeGave
		}
		transaction := &models.Transaction{
			Type:          transactionType,
			Name:          customer.Name,
			InvoiceNumber: invoiceNumber,
			Amount:        customer.Balance,
			Method:        common.PaymentMethodCash,
			Note:          "Auto transaction on customer creation",
			CreatedAt:     customer.CreatedAt,
		}
		if _, err := tx.NewInsert().Model(transaction).Exec(ctx); err != nil {
			return fmt.Errorf("transaction insert failed: %w", err)
		}

		customer.InvoiceNumber = invoiceNumber
		return nil
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}

// ListCustomers returns all customers newest first, each with the number
// of the invoice that was auto-created with it.
func (svc *LedgerService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	customers := []models.Customer{}
	err := svc.DB.NewSelect().
		Model(&customers).
		ColumnExpr("customer.*").
		ColumnExpr("(SELECT min(invoice_number) FROM invoices WHERE customer_id = customer.id) AS invoice_number").
		OrderExpr("customer.id DESC").
		Scan(ctx)
	return customers, err
}

// DeleteCustomer removes only the customer row. The auto-created invoice
// and transaction are left in place.
func (svc *LedgerService) DeleteCustomer(ctx context.Context, id int64) error {
	res, err := svc.DB.NewDelete().
		Model((*models.Customer)(nil)).
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
