package transport

import (
	"github.com/bahikhata/bahikhata.go/controllers"
	"github.com/bahikhata/bahikhata.go/lib/service"
	"github.com/labstack/echo/v4"
)

func RegisterEndpoints(svc *service.LedgerService, e *echo.Echo) {
	customerCtrl := controllers.NewCustomerController(svc)
	supplierCtrl := controllers.NewSupplierController(svc)
	invoiceCtrl := controllers.NewInvoiceController(svc)
	transactionCtrl := controllers.NewTransactionController(svc)
	dashboardCtrl := controllers.NewDashboardController(svc)

	e.GET("/healthz", controllers.NewHealthController().Check)

	api := e.Group("/api")

	api.GET("/customers", customerCtrl.List)
	api.POST("/customers", customerCtrl.Create)
	api.DELETE("/customers/:id", customerCtrl.Delete)

	api.GET("/suppliers", supplierCtrl.List)
	api.POST("/suppliers", supplierCtrl.Create)
	api.DELETE("/suppliers/:id", supplierCtrl.Delete)

	api.GET("/invoices", invoiceCtrl.List)
	api.GET("/invoices/next-number", invoiceCtrl.NextNumber)
	api.POST("/invoices", invoiceCtrl.Create)
	api.GET("/invoices/:id/pdf", invoiceCtrl.PDF)

	api.GET("/transactions", transactionCtrl.List)
	api.GET("/transactions/summary", transactionCtrl.Summary)
	api.POST("/transactions", transactionCtrl.Create)
	api.DELETE("/transactions/:id", transactionCtrl.Delete)

	api.GET("/dashboard", dashboardCtrl.Stats)
}
