package integration_tests

import (
	"encoding/json"
	"log"
	"net/http"
	"testing"

	"github.com/bahikhata/bahikhata.go/lib/service"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type DashboardTestSuite struct {
	suite.Suite
	service *service.LedgerService
	echo    *echo.Echo
}

func (suite *DashboardTestSuite) SetupTest() {
	svc, err := LedgerTestServiceInit()
	if err != nil {
		log.Fatalf("Error initializing test service: %v", err)
	}
	suite.service = svc
	suite.echo = NewTestEcho(svc)
}

func (suite *DashboardTestSuite) TearDownTest() {
	suite.service.DB.Close()
}

func (suite *DashboardTestSuite) TestEmptyLedger() {
	rec := doRequest(suite.echo, http.MethodGet, "/api/dashboard", nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	var stats service.DashboardStats
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&stats))
	assert.True(suite.T(), stats.Receivable.IsZero())
	assert.True(suite.T(), stats.Payable.IsZero())
	assert.True(suite.T(), stats.Net.IsZero())
}

func (suite *DashboardTestSuite) TestAggregates() {
	rec := doRequest(suite.echo, http.MethodPost, "/api/customers", map[string]interface{}{
		"name":    "Asha",
		"phone":   "9999999999",
		"balance": 500,
		"status":  "receivable",
	})
	assert.Equal(suite.T(), http.StatusCreated, rec.Code)

	rec = doRequest(suite.echo, http.MethodPost, "/api/customers", map[string]interface{}{
		"name":    "Bob",
		"phone":   "8888888888",
		"balance": 200,
		"status":  "payable",
	})
	assert.Equal(suite.T(), http.StatusCreated, rec.Code)

	rec = doRequest(suite.echo, http.MethodPost, "/api/suppliers", map[string]interface{}{
		"name":   "Mehta Distributors",
		"phone":  "7777777777",
		"amount": 100,
	})
	assert.Equal(suite.T(), http.StatusCreated, rec.Code)

	rec = doRequest(suite.echo, http.MethodGet, "/api/dashboard", nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	var stats service.DashboardStats
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&stats))
	assert.True(suite.T(), stats.Receivable.Equal(decimal.NewFromInt(500)), "receivable = %s", stats.Receivable)
	assert.True(suite.T(), stats.Payable.Equal(decimal.NewFromInt(300)), "payable = %s", stats.Payable)
	// the customer cascade wrote one got/500 and one gave/200 transaction
	assert.True(suite.T(), stats.Got.Equal(decimal.NewFromInt(500)), "got = %s", stats.Got)
	assert.True(suite.T(), stats.Gave.Equal(decimal.NewFromInt(200)), "gave = %s", stats.Gave)
	assert.True(suite.T(), stats.Net.Equal(decimal.NewFromInt(300)), "net = %s", stats.Net)
}

func TestDashboardTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardTestSuite))
}
