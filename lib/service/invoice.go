package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bahikhata/bahikhata.go/common"
	"github.com/bahikhata/bahikhata.go/db/models"
)

// PartialCreateError reports that the invoice row was written but the
// linked transaction was not. Callers must be able to tell this state
// apart from a total failure; no compensation is performed.
type PartialCreateError struct {
	Err error
}

func (e *PartialCreateError) Error() string {
	return "invoice saved but transaction creation failed: " + e.Err.Error()
}

func (e *PartialCreateError) Unwrap() error {
	return e.Err
}

// CreateInvoice inserts the invoice and then one linked transaction
// carrying the invoice total. A number that already has a linked
// transaction is rejected up front, before either row is written. The
// two writes are deliberately separate round-trips: when the second
// fails the invoice stays and the error is a *PartialCreateError.
func (svc *LedgerService) CreateInvoice(ctx context.Context, invoice *models.Invoice, method, note string) error {
	if invoice.CreatedAt.IsZero() {
		invoice.CreatedAt = time.Now()
	}
	if invoice.Status == "" {
		invoice.Status = common.InvoiceStatusDraft
	}
	if method == "" {
		method = common.PaymentMethodCash
	}

	taken, err := invoiceNumberTaken(ctx, svc.DB, invoice.InvoiceNumber)
	if err != nil {
		return err
	}
	if taken {
		return ErrInvoiceNumberTaken
	}

	if _, err := svc.DB.NewInsert().Model(invoice).Exec(ctx); err != nil {
		return err
	}

	transaction := &models.Transaction{
		Type:          common.TransactionTypeCustomer,
		Name:          invoice.CustomerName,
		InvoiceNumber: invoice.InvoiceNumber,
		Amount:        invoice.Total,
		Method:        method,
		Note:          note,
		CreatedAt:     time.Now(),
	}
	if _, err := svc.DB.NewInsert().Model(transaction).Exec(ctx); err != nil {
		return &PartialCreateError{Err: err}
	}
	return nil
}

func (svc *LedgerService) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	invoices := []models.Invoice{}
	err := svc.DB.NewSelect().
		Model(&invoices).
		OrderExpr("invoice.id DESC").
		Scan(ctx)
	return invoices, err
}

func (svc *LedgerService) FindInvoice(ctx context.Context, id int64) (*models.Invoice, error) {
	var invoice models.Invoice
	err := svc.DB.NewSelect().
		Model(&invoice).
		Where("invoice.id = ?", id).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}
