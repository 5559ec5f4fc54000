package service

import (
	"context"

	"github.com/bahikhata/bahikhata.go/common"
	"github.com/bahikhata/bahikhata.go/db/models"
	"github.com/shopspring/decimal"
)

// DashboardStats are the aggregates backing the dashboard view:
// receivable/payable totals over the parties and the transaction summary.
type DashboardStats struct {
	Receivable decimal.Decimal `json:"receivable"`
	Payable    decimal.Decimal `json:"payable"`
	Got        decimal.Decimal `json:"got"`
	Gave       decimal.Decimal `json:"gave"`
	Net        decimal.Decimal `json:"net"`
}

func (svc *LedgerService) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var customerRows []struct {
		Status string          `bun:"status"`
		Total  decimal.Decimal `bun:"total"`
	}
	err := svc.DB.NewSelect().
		Model((*models.Customer)(nil)).
		Column("status").
		ColumnExpr("sum(balance) AS total").
		Group("status").
		Scan(ctx, &customerRows)
	if err != nil {
		return nil, err
	}
	for _, row := range customerRows {
		switch row.Status {
		case common.CustomerStatusReceivable:
			stats.Receivable = row.Total
		case common.CustomerStatusPayable:
			stats.Payable = row.Total
		}
	}

	// supplier amounts count towards the payable side
	var supplierTotal decimal.NullDecimal
	err = svc.DB.NewSelect().
		Model((*models.Supplier)(nil)).
		ColumnExpr("sum(amount)").
		Scan(ctx, &supplierTotal)
	if err != nil {
		return nil, err
	}
	if supplierTotal.Valid {
		stats.Payable = stats.Payable.Add(supplierTotal.Decimal)
	}

	summary, err := svc.TransactionSummary(ctx)
	if err != nil {
		return nil, err
	}
	stats.Got = summary.Got
	stats.Gave = summary.Gave
	stats.Net = summary.Net

	return stats, nil
}
