package integration_tests

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"testing"

	"github.com/bahikhata/bahikhata.go/common"
	"github.com/bahikhata/bahikhata.go/db/models"
	"github.com/bahikhata/bahikhata.go/lib/service"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type CustomerTestSuite struct {
	suite.Suite
	service *service.LedgerService
	echo    *echo.Echo
}

func (suite *CustomerTestSuite) SetupTest() {
	svc, err := LedgerTestServiceInit()
	if err != nil {
		log.Fatalf("Error initializing test service: %v", err)
	}
	suite.service = svc
	suite.echo = NewTestEcho(svc)
}

func (suite *CustomerTestSuite) TearDownTest() {
	suite.service.DB.Close()
}

func (suite *CustomerTestSuite) TestCreateCustomerCascade() {
	rec := doRequest(suite.echo, http.MethodPost, "/api/customers", map[string]interface{}{
		"name":    "Asha",
		"phone":   "9999999999",
		"email":   "a@x.com",
		"address": "X",
		"balance": 500,
		"status":  "receivable",
	})
	assert.Equal(suite.T(), http.StatusCreated, rec.Code)

	var created struct {
		Message       string `json:"message"`
		ID            int64  `json:"id"`
		InvoiceNumber int64  `json:"invoice_number"`
	}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(suite.T(), "customer created", created.Message)
	assert.Equal(suite.T(), int64(1001), created.InvoiceNumber)

	ctx := context.Background()

	var invoice models.Invoice
	err := suite.service.DB.NewSelect().Model(&invoice).Where("invoice_number = ?", 1001).Scan(ctx)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), created.ID, invoice.CustomerID)

	var transaction models.Transaction
	err = suite.service.DB.NewSelect().Model(&transaction).Where("invoice_number = ?", 1001).Scan(ctx)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), common.TransactionTypeGot, transaction.Type)
	assert.Equal(suite.T(), "Asha", transaction.Name)
	assert.Equal(suite.T(), common.PaymentMethodCash, transaction.Method)
	assert.True(suite.T(), transaction.Amount.Equal(decimal.NewFromInt(500)),
		"expected amount 500, got %s", transaction.Amount)
}

func (suite *CustomerTestSuite) TestPayableCustomerGetsGaveTransaction() {
	rec := doRequest(suite.echo, http.MethodPost, "/api/customers", map[string]interface{}{
		"name":    "Vendor Traders",
		"phone":   "8888888888",
		"balance": 250,
		"status":  "payable",
	})
	assert.Equal(suite.T(), http.StatusCreated, rec.Code)

	var transaction models.Transaction
	err := suite.service.DB.NewSelect().Model(&transaction).Where("invoice_number = ?", 1001).Scan(context.Background())
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), common.TransactionTypeGave, transaction.Type)
}

func (suite *CustomerTestSuite) TestSequentialInvoiceNumbers() {
	for i := 0; i < 3; i++ {
		rec := doRequest(suite.echo, http.MethodPost, "/api/customers", map[string]interface{}{
			"name":   fmt.Sprintf("Customer %d", i),
			"phone":  "7777777777",
			"status": "receivable",
		})
		assert.Equal(suite.T(), http.StatusCreated, rec.Code)
	}

	count, err := suite.service.DB.NewSelect().
		Model((*models.Invoice)(nil)).
		Where("invoice_number IN (1001, 1002, 1003)").
		Count(context.Background())
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, count)
}

func (suite *CustomerTestSuite) TestListCustomersNewestFirstWithInvoiceNumber() {
	for _, name := range []string{"First", "Second"} {
		rec := doRequest(suite.echo, http.MethodPost, "/api/customers", map[string]interface{}{
			"name":   name,
			"phone":  "6666666666",
			"status": "receivable",
		})
		assert.Equal(suite.T(), http.StatusCreated, rec.Code)
	}

	rec := doRequest(suite.echo, http.MethodGet, "/api/customers", nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	var customers []models.Customer
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&customers))
	assert.Len(suite.T(), customers, 2)
	assert.Equal(suite.T(), "Second", customers[0].Name)
	assert.Equal(suite.T(), int64(1002), customers[0].InvoiceNumber)
	assert.Equal(suite.T(), "First", customers[1].Name)
	assert.Equal(suite.T(), int64(1001), customers[1].InvoiceNumber)
}

func (suite *CustomerTestSuite) TestDeleteCustomerLeavesLedgerRows() {
	rec := doRequest(suite.echo, http.MethodPost, "/api/customers", map[string]interface{}{
		"name":    "Orphan Maker",
		"phone":   "5555555555",
		"balance": 100,
		"status":  "receivable",
	})
	assert.Equal(suite.T(), http.StatusCreated, rec.Code)
	var created struct {
		ID int64 `json:"id"`
	}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&created))

	rec = doRequest(suite.echo, http.MethodDelete, fmt.Sprintf("/api/customers/%d", created.ID), nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	// no cascade: the invoice and transaction rows stay behind
	ctx := context.Background()
	invoiceCount, err := suite.service.DB.NewSelect().Model((*models.Invoice)(nil)).Count(ctx)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, invoiceCount)
	transactionCount, err := suite.service.DB.NewSelect().Model((*models.Transaction)(nil)).Count(ctx)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, transactionCount)

	// second delete of the same id is a 404
	rec = doRequest(suite.echo, http.MethodDelete, fmt.Sprintf("/api/customers/%d", created.ID), nil)
	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
}

func (suite *CustomerTestSuite) TestCreateCustomerValidation() {
	// missing status
	rec := doRequest(suite.echo, http.MethodPost, "/api/customers", map[string]interface{}{
		"name":  "No Status",
		"phone": "4444444444",
	})
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)

	// status outside the enum
	rec = doRequest(suite.echo, http.MethodPost, "/api/customers", map[string]interface{}{
		"name":   "Bad Status",
		"phone":  "4444444444",
		"status": "pending",
	})
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
}

func TestCustomerTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerTestSuite))
}
