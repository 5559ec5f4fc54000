package integration_tests

import (
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

type SupplierTestSuite struct {
	suite.Suite
	service *service.LedgerService
	echo    *echo.Echo
}

func (suite *SupplierTestSuite) SetupTest() {
	svc, err := LedgerTestServiceInit()
	if err != nil {
		log.Fatalf("Error initializing test service: %v", err)
	}
	suite.service = svc
	suite.echo = NewTestEcho(svc)
}

func (suite *SupplierTestSuite) TearDownTest() {
	suite.service.DB.Close()
}

func (suite *SupplierTestSuite) TestCreateSupplierReturnsPersistedRow() {
	rec := doRequest(suite.echo, http.MethodPost, "/api/suppliers", map[string]interface{}{
		"name":  "Mehta Distributors",
		"phone": "9898989898",
	})
	assert.Equal(suite.T(), http.StatusCreated, rec.Code)

	var supplier models.Supplier
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&supplier))
	assert.NotZero(suite.T(), supplier.ID)
	assert.Equal(suite.T(), "Mehta Distributors", supplier.Name)
	assert.Equal(suite.T(), common.SupplierStatusActive, supplier.Status)
	assert.True(suite.T(), supplier.Amount.IsZero())
	assert.False(suite.T(), supplier.CreatedAt.IsZero())
}

func (suite *SupplierTestSuite) TestSupplierStatusNotValidated() {
	rec := doRequest(suite.echo, http.MethodPost, "/api/suppliers", map[string]interface{}{
		"name":   "Free Spirit Supplies",
		"phone":  "9797979797",
		"amount": 75,
		"status": "on-holiday",
	})
	assert.Equal(suite.T(), http.StatusCreated, rec.Code)

	var supplier models.Supplier
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&supplier))
	assert.Equal(suite.T(), "on-holiday", supplier.Status)
	assert.True(suite.T(), supplier.Amount.Equal(decimal.NewFromInt(75)))
}

func (suite *SupplierTestSuite) TestListSuppliersNewestFirst() {
	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		rec := doRequest(suite.echo, http.MethodPost, "/api/suppliers", map[string]interface{}{
			"name":  name,
			"phone": "9696969696",
		})
		assert.Equal(suite.T(), http.StatusCreated, rec.Code)
	}

	rec := doRequest(suite.echo, http.MethodGet, "/api/suppliers", nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	var suppliers []models.Supplier
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&suppliers))
	assert.Len(suite.T(), suppliers, 3)
	assert.Equal(suite.T(), "Gamma", suppliers[0].Name)
	assert.Equal(suite.T(), "Alpha", suppliers[2].Name)
}

func (suite *SupplierTestSuite) TestDeleteSupplier() {
	rec := doRequest(suite.echo, http.MethodPost, "/api/suppliers", map[string]interface{}{
		"name":  "Short Lived",
		"phone": "9595959595",
	})
	assert.Equal(suite.T(), http.StatusCreated, rec.Code)
	var supplier models.Supplier
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&supplier))

	rec = doRequest(suite.echo, http.MethodDelete, fmt.Sprintf("/api/suppliers/%d", supplier.ID), nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	rec = doRequest(suite.echo, http.MethodDelete, fmt.Sprintf("/api/suppliers/%d", supplier.ID), nil)
	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
}

func TestSupplierTestSuite(t *testing.T) {
	suite.Run(t, new(SupplierTestSuite))
}
