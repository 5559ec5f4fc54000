package service

import (
	"context"
	"strings"

	"github.com/bahikhata/bahikhata.go/common"
	"github.com/bahikhata/bahikhata.go/db/models"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// TransactionPage is one page of a filtered transaction listing. Total
// counts every matching row, not just the returned page.
type TransactionPage struct {
	Data    []models.Transaction `json:"data"`
	Total   int                  `json:"total"`
	Page    int                  `json:"page"`
	PerPage int                  `json:"per_page"`
}

// Summary are the received/given aggregates over all transactions.
type Summary struct {
	Gave decimal.Decimal `json:"gave"`
	Got  decimal.Decimal `json:"got"`
	Net  decimal.Decimal `json:"net"`
}

// invoiceNumberTaken reports whether a transaction already references
// the given invoice number. Every write path that links a transaction
// to a number runs this check first; there is no uniqueness constraint
// backing it.
func invoiceNumberTaken(ctx context.Context, db bun.IDB, number int64) (bool, error) {
	return db.NewSelect().
		Model((*models.Transaction)(nil)).
		Where("invoice_number = ?", number).
		Exists(ctx)
}

// CreateTransaction inserts a ledger transaction. When the transaction
// references an invoice number the number must not already be taken by
// another transaction.
func (svc *LedgerService) CreateTransaction(ctx context.Context, transaction *models.Transaction) error {
	if transaction.InvoiceNumber != 0 {
		taken, err := invoiceNumberTaken(ctx, svc.DB, transaction.InvoiceNumber)
		if err != nil {
			return err
		}
		if taken {
			return ErrInvoiceNumberTaken
		}
	}

	_, err := svc.DB.NewInsert().Model(transaction).Exec(ctx)
	return err
}

// ListTransactions returns the page of transactions matching the query,
// newest first. A query matches rows whose name or invoice number (as
// text) contains it, case-insensitively.
func (svc *LedgerService) ListTransactions(ctx context.Context, query string, page, perPage int) (*TransactionPage, error) {
	transactions := []models.Transaction{}

	q := svc.DB.NewSelect().Model(&transactions)
	if query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				WhereOr("lower(tx.name) LIKE ?", pattern).
				WhereOr("CAST(tx.invoice_number AS TEXT) LIKE ?", pattern)
		})
	}

	total, err := q.
		OrderExpr("tx.created_at DESC, tx.id DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		ScanAndCount(ctx)
	if err != nil {
		return nil, err
	}

	return &TransactionPage{
		Data:    transactions,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

// DeleteTransaction removes a transaction. Deleting an id that does not
// exist is not an error.
func (svc *LedgerService) DeleteTransaction(ctx context.Context, id int64) error {
	_, err := svc.DB.NewDelete().
		Model((*models.Transaction)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	return err
}

// TransactionSummary sums the got and gave amounts over all transactions.
// Both sums are zero, not null, on an empty ledger.
func (svc *LedgerService) TransactionSummary(ctx context.Context) (*Summary, error) {
	var rows []struct {
		Type  string          `bun:"type"`
		Total decimal.Decimal `bun:"total"`
	}

	err := svc.DB.NewSelect().
		Model((*models.Transaction)(nil)).
		Column("type").
		ColumnExpr("sum(amount) AS total").
		Where("type IN (?, ?)", common.TransactionTypeGot, common.TransactionTypeGave).
		Group("type").
		Scan(ctx, &rows)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	for _, row := range rows {
		switch row.Type {
		case common.TransactionTypeGot:
			summary.Got = row.Total
		case common.TransactionTypeGave:
			summary.Gave = row.Total
		}
	}
	summary.Net = summary.Got.Sub(summary.Gave)
	return summary, nil
}
