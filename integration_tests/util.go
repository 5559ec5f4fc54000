package integration_tests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sync/atomic"

	"github.com/bahikhata/bahikhata.go/db"
	"github.com/bahikhata/bahikhata.go/db/migrations"
	"github.com/bahikhata/bahikhata.go/lib"
	"github.com/bahikhata/bahikhata.go/lib/logging"
	"github.com/bahikhata/bahikhata.go/lib/responses"
	"github.com/bahikhata/bahikhata.go/lib/service"
	"github.com/bahikhata/bahikhata.go/lib/transport"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun/migrate"
)

var testDBCounter int64

// LedgerTestServiceInit spins up a service over a private in-memory
// sqlite database, migrated to the current schema.
func LedgerTestServiceInit() (*service.LedgerService, error) {
	n := atomic.AddInt64(&testDBCounter, 1)
	c := &service.Config{
		DatabaseUri:             fmt.Sprintf("sqlite://file:ledgertest%d?mode=memory&cache=shared", n),
		DatabaseMaxConns:        1,
		DatabaseMaxIdleConns:    1,
		DatabaseConnMaxLifetime: 60,
		DefaultPageSize:         10,
	}

	dbConn, err := db.Open(c)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx := context.Background()
	migrator := migrate.NewMigrator(dbConn, migrations.Migrations)
	err = migrator.Init(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to init migrations: %w", err)
	}
	_, err = migrator.Migrate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	svc := &service.LedgerService{
		Config: c,
		DB:     dbConn,
		Logger: logging.Logger(c.LogFilePath),
	}
	return svc, nil
}

// NewTestEcho wires the full route table onto a bare echo instance.
func NewTestEcho(svc *service.LedgerService) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = responses.HTTPErrorHandler
	e.Validator = &lib.CustomValidator{Validator: validator.New()}
	transport.RegisterEndpoints(svc, e)
	return e
}

func doRequest(e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
