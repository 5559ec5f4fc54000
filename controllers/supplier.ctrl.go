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

// SupplierController : Supplier controller struct
type SupplierController struct {
	svc *service.LedgerService
}

func NewSupplierController(svc *service.LedgerService) *SupplierController {
	return &SupplierController{svc: svc}
}

// Status is stored as given, there is no server-side enum check.
type CreateSupplierRequestBody struct {
	Name   string          `json:"name" validate:"required"`
	Phone  string          `json:"phone" validate:"required"`
	Email  string          `json:"email" validate:"omitempty,email"`
	Amount decimal.Decimal `json:"amount"`
	Status string          `json:"status"`
}

func (controller *SupplierController) List(c echo.Context) error {
	suppliers, err := controller.svc.ListSuppliers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, suppliers)
}

// Create inserts a supplier and returns the full persisted row.
func (controller *SupplierController) Create(c echo.Context) error {
	var body CreateSupplierRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load create supplier request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return err
	}

	supplier := &models.Supplier{
		Name:   body.Name,
		Phone:  body.Phone,
		Email:  body.Email,
		Amount: body.Amount,
		Status: body.Status,
	}
	supplier, err := controller.svc.CreateSupplier(c.Request().Context(), supplier)
	if err != nil {
		c.Logger().Errorf("Failed to create supplier: %v", err)
		return err
	}

	return c.JSON(http.StatusCreated, supplier)
}

func (controller *SupplierController) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	if err := controller.svc.DeleteSupplier(c.Request().Context(), id); err != nil {
		if err == service.ErrNotFound {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
