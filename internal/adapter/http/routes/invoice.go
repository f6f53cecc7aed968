package routes

import (
	"gst_invoice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInvoice = "/invoice"
)

func addInvoiceRoutes(rg gin.IRouter, invoiceHandler *handlers.InvoiceHandler) {
	invoices := rg.Group(PathInvoice)
	{
		invoices.GET("/:orderId", invoiceHandler.GetInvoice)
	}
}
