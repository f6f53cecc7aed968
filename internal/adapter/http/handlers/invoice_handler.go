package handlers

import (
	"errors"
	"log"
	"net/http"

	"gst_invoice/internal/adapter/http/dto/request"
	"gst_invoice/internal/adapter/http/middleware"
	"gst_invoice/internal/usecase"
	"gst_invoice/pkg"

	"github.com/gin-gonic/gin"
)

const (
	pdfContentType      = "application/pdf"
	invoiceErrorMessage = "Error generating invoice - check server logs"
)

// InvoiceOutcomeRecorder counts generated and failed invoices.
type InvoiceOutcomeRecorder interface {
	InvoiceGenerated()
	InvoiceFailed()
}

type noopRecorder struct{}

func (noopRecorder) InvoiceGenerated() {}
func (noopRecorder) InvoiceFailed()    {}

// InvoiceHandler serves generated invoice PDFs.
type InvoiceHandler struct {
	usecase  usecase.IInvoiceUseCase
	recorder InvoiceOutcomeRecorder
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase, recorder InvoiceOutcomeRecorder) *InvoiceHandler {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &InvoiceHandler{usecase: uc, recorder: recorder}
}

// GetInvoice generates the GST invoice of an order and returns it as a PDF
// attachment.
//
// @Summary      Generate GST invoice
// @Description  Fetches the order, computes GST per line item, renders and stores the PDF, and returns it as an attachment.
// @Tags         invoices
// @Produce      application/pdf
// @Produce      plain
// @Param        orderId  path      string  true  "Commerce platform order id"
// @Success      200      {file}    file
// @Failure      400      {string}  string
// @Failure      500      {string}  string
// @Router       /invoice/{orderId} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	var req request.InvoiceRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid order id")
		return
	}
	orderID := req.ResolveOrderID()
	requestID := middleware.GetRequestID(c)
	log.Printf("[invoice][handler] generate start request_id=%s order_id=%s", requestID, orderID)

	res, err := h.usecase.GenerateInvoice(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[invoice][handler] generate failed request_id=%s order_id=%s err=%v", requestID, orderID, err)
		h.recorder.InvoiceFailed()
		appErr := mapInvoiceError(err)
		c.String(appErr.HTTPStatus, appErr.Message)
		return
	}
	h.recorder.InvoiceGenerated()

	filename := res.Invoice.Filename()
	log.Printf("[invoice][handler] generate success request_id=%s order_id=%s filename=%s bytes=%d", requestID, orderID, filename, len(res.PDF))

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, pdfContentType, res.PDF)
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid order id", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", invoiceErrorMessage, err, http.StatusInternalServerError)
	}
}
