package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/bahikhata/bahikhata.go/db/models"
	"github.com/bahikhata/bahikhata.go/lib/pdfexport"
	"github.com/bahikhata/bahikhata.go/lib/responses"
	"github.com/bahikhata/bahikhata.go/lib/service"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// InvoiceController : Invoice controller struct
type InvoiceController struct {
	svc *service.LedgerService
}

func NewInvoiceController(svc *service.LedgerService) *InvoiceController {
	return &InvoiceController{svc: svc}
}

type CreateInvoiceRequestBody struct {
	InvoiceNumber int64             `json:"invoice_number" validate:"required"`
	CustomerName  string            `json:"customer_name" validate:"required"`
	CreatedAt     string            `json:"created_at"`
	DueDate       string            `json:"due_date"`
	Subtotal      decimal.Decimal   `json:"subtotal"`
	Discount      decimal.Decimal   `json:"discount"`
	Total         decimal.Decimal   `json:"total"`
	Status        string            `json:"status" validate:"omitempty,oneof=draft sent paid overdue"`
	Items         []models.LineItem `json:"items"`
	Method        string            `json:"method"`
	Note          string            `json:"note"`
}

type CreateInvoiceResponseBody struct {
	Message string `json:"message"`
}

type NextNumberResponseBody struct {
	Next int64 `json:"next"`
}

// NextNumber returns the number the next invoice will get. The number
// is not reserved.
func (controller *InvoiceController) NextNumber(c echo.Context) error {
	next, err := controller.svc.NextInvoiceNumber(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("Failed to fetch next invoice number: %v", err)
		return err
	}
	return c.JSON(http.StatusOK, &NextNumberResponseBody{Next: next})
}

func (controller *InvoiceController) List(c echo.Context) error {
	invoices, err := controller.svc.ListInvoices(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoices)
}

// Create stores the invoice with its line items and a linked
// transaction. When the invoice was written but the transaction was
// not, the response names that state so the caller can remediate.
func (controller *InvoiceController) Create(c echo.Context) error {
	var body CreateInvoiceRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load create invoice request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return err
	}

	invoice := &models.Invoice{
		InvoiceNumber: body.InvoiceNumber,
		CustomerName:  body.CustomerName,
		Subtotal:      body.Subtotal,
		Discount:      body.Discount,
		Total:         body.Total,
		Status:        body.Status,
		Items:         body.Items,
	}
	if body.CreatedAt != "" {
		createdAt, err := parseDate(body.CreatedAt)
		if err != nil {
			return c.JSON(http.StatusBadRequest, &responses.ErrorResponse{
				Error:          fmt.Sprintf("invalid created_at date: %v", err),
				HttpStatusCode: http.StatusBadRequest,
			})
		}
		invoice.CreatedAt = createdAt
	}
	if body.DueDate != "" {
		dueDate, err := parseDate(body.DueDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, &responses.ErrorResponse{
				Error:          fmt.Sprintf("invalid due_date date: %v", err),
				HttpStatusCode: http.StatusBadRequest,
			})
		}
		invoice.DueDate = bun.NullTime{Time: dueDate}
	}

	err := controller.svc.CreateInvoice(c.Request().Context(), invoice, body.Method, body.Note)
	if err != nil {
		if err == service.ErrInvoiceNumberTaken {
			return c.JSON(http.StatusConflict, responses.InvoiceNumberTakenError)
		}
		c.Logger().Errorf("Failed to create invoice: %v", err)
		var partial *service.PartialCreateError
		if errors.As(err, &partial) {
			return c.JSON(http.StatusInternalServerError, &responses.ErrorResponse{
				Error:          "invoice saved but transaction creation failed",
				Details:        partial.Err.Error(),
				HttpStatusCode: http.StatusInternalServerError,
			})
		}
		return err
	}

	return c.JSON(http.StatusCreated, &CreateInvoiceResponseBody{Message: "invoice created"})
}

// PDF renders one stored invoice as a downloadable PDF report.
func (controller *InvoiceController) PDF(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	invoice, err := controller.svc.FindInvoice(c.Request().Context(), id)
	if err != nil {
		if err == service.ErrNotFound {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		return err
	}

	document, err := pdfexport.Render(invoice)
	if err != nil {
		c.Logger().Errorf("Failed to render invoice %d as pdf: %v", invoice.ID, err)
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=invoice-%d.pdf", invoice.InvoiceNumber))
	return c.Blob(http.StatusOK, "application/pdf", document)
}
