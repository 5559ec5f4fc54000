package controllers

import (
	"net/http"

	"github.com/bahikhata/bahikhata.go/lib/service"
	"github.com/labstack/echo/v4"
)

// DashboardController : Dashboard controller struct
type DashboardController struct {
	svc *service.LedgerService
}

func NewDashboardController(svc *service.LedgerService) *DashboardController {
	return &DashboardController{svc: svc}
}

func (controller *DashboardController) Stats(c echo.Context) error {
	stats, err := controller.svc.DashboardStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
