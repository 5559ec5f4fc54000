package service

import (
	"errors"

	"github.com/uptrace/bun"
	"github.com/ziflex/lecho/v3"
)

// LedgerService bundles the configuration, the store connection and the
// logger. It is stateless apart from the connection pool: every method
// reads and writes the store directly, there is no in-process caching.
type LedgerService struct {
	Config *Config
	DB     *bun.DB
	Logger *lecho.Logger
}

var (
	ErrNotFound = errors.New("record not found")
	// A non-null invoice number may be referenced by at most one transaction.
	ErrInvoiceNumberTaken = errors.New("invoice number already exists in transactions")
)
