package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/bahikhata/bahikhata.go/db/models"
	"github.com/bahikhata/bahikhata.go/lib/responses"
	"github.com/bahikhata/bahikhata.go/lib/service"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// TransactionController : Transaction controller struct
type TransactionController struct {
	svc *service.LedgerService
}

func NewTransactionController(svc *service.LedgerService) *TransactionController {
	return &TransactionController{svc: svc}
}

type CreateTransactionRequestBody struct {
	Type          string          `json:"type" validate:"required,oneof=got gave"`
	Name          string          `json:"name" validate:"required"`
	InvoiceNumber int64           `json:"invoice_number"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	Note          string          `json:"note"`
	Date          string          `json:"date" validate:"required"`
}

type CreateTransactionResponseBody struct {
	ID int64 `json:"id"`
}

// Create validates and inserts one ledger transaction. A date without a
// time component is stored at midnight.
func (controller *TransactionController) Create(c echo.Context) error {
	var body CreateTransactionRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load create transaction request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return err
	}
	// zero amounts are treated as missing
	if body.Amount.IsZero() {
		return c.JSON(http.StatusBadRequest, &responses.ErrorResponse{
			Error:          "amount is required",
			HttpStatusCode: http.StatusBadRequest,
		})
	}

	date, err := parseDate(body.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, &responses.ErrorResponse{
			Error:          fmt.Sprintf("invalid date: %v", err),
			HttpStatusCode: http.StatusBadRequest,
		})
	}

	transaction := &models.Transaction{
		Type:          body.Type,
		Name:          body.Name,
		InvoiceNumber: body.InvoiceNumber,
		Amount:        body.Amount,
		Method:        body.Method,
		Note:          body.Note,
		CreatedAt:     date,
	}
	if err := controller.svc.CreateTransaction(c.Request().Context(), transaction); err != nil {
		if err == service.ErrInvoiceNumberTaken {
			return c.JSON(http.StatusConflict, responses.InvoiceNumberTakenError)
		}
		c.Logger().Errorf("Failed to create transaction: %v", err)
		return err
	}

	return c.JSON(http.StatusCreated, &CreateTransactionResponseBody{ID: transaction.ID})
}

// List returns a page of transactions, newest first, optionally
// filtered by a substring of the party name or the invoice number.
func (controller *TransactionController) List(c echo.Context) error {
	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
		}
		page = parsed
	}
	perPage := controller.svc.Config.DefaultPageSize
	if raw := c.QueryParam("per_page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
		}
		perPage = parsed
	}

	result, err := controller.svc.ListTransactions(c.Request().Context(), c.QueryParam("q"), page, perPage)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// Delete removes a transaction. Deleting an unknown id succeeds
// silently, the response is 204 either way.
func (controller *TransactionController) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	if err := controller.svc.DeleteTransaction(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (controller *TransactionController) Summary(c echo.Context) error {
	summary, err := controller.svc.TransactionSummary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

// parseDate accepts a plain date, normalized to midnight UTC, or a full
// RFC3339 timestamp.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("expected YYYY-MM-DD or RFC3339, got %q", value)
}
