package controllers

import (
	"net/http"
	"strconv"

	"github.com/bahikhata/bahikhata.go/db/models"
	"github.com/bahikhata/bahikhata.go/lib/responses"
	"github.com/bahikhata/bahikhata.go/lib/service"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CustomerController : Customer controller struct
type CustomerController struct {
	svc *service.LedgerService
}

func NewCustomerController(svc *service.LedgerService) *CustomerController {
	return &CustomerController{svc: svc}
}

type CreateCustomerRequestBody struct {
	Name    string          `json:"name" validate:"required"`
	Phone   string          `json:"phone" validate:"required"`
	Email   string          `json:"email" validate:"omitempty,email"`
	Address string          `json:"address"`
	Balance decimal.Decimal `json:"balance"`
	Status  string          `json:"status" validate:"required,oneof=receivable payable"`
}

type CreateCustomerResponseBody struct {
	Message       string `json:"message"`
	ID            int64  `json:"id"`
	InvoiceNumber int64  `json:"invoice_number"`
}

func (controller *CustomerController) List(c echo.Context) error {
	customers, err := controller.svc.ListCustomers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// Create inserts the customer and its opening invoice and transaction.
// A failed step is reported with the step that failed.
func (controller *CustomerController) Create(c echo.Context) error {
	var body CreateCustomerRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load create customer request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return err
	}

	customer := &models.Customer{
		Name:    body.Name,
		Phone:   body.Phone,
		Email:   body.Email,
		Address: body.Address,
		Balance: body.Balance,
		Status:  body.Status,
	}
	customer, err := controller.svc.CreateCustomer(c.Request().Context(), customer)
	if err != nil {
		c.Logger().Errorf("Failed to create customer: %v", err)
		return c.JSON(http.StatusInternalServerError, &responses.ErrorResponse{
			Error:          err.Error(),
			HttpStatusCode: http.StatusInternalServerError,
		})
	}

	return c.JSON(http.StatusCreated, &CreateCustomerResponseBody{
		Message:       "customer created",
		ID:            customer.ID,
		InvoiceNumber: customer.InvoiceNumber,
	})
}

// Delete removes only the customer row, related invoices and
// transactions stay.
func (controller *CustomerController) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	if err := controller.svc.DeleteCustomer(c.Request().Context(), id); err != nil {
		if err == service.ErrNotFound {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
