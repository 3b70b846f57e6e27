package handler

import (
	"context"

	invoiceapp "github.com/Khanjii4421/adnansoftware-sub000/internal/application/invoice"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/infrastructure/statement"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvoiceHandler handles invoice and statement matching API endpoints
type InvoiceHandler struct {
	BaseHandler
	invoiceService  *invoiceapp.Service
	matchService    *invoiceapp.MatchService
	statementReader *statement.Reader
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoiceService *invoiceapp.Service, matchService *invoiceapp.MatchService, statementReader *statement.Reader) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService:  invoiceService,
		matchService:    matchService,
		statementReader: statementReader,
	}
}

// Generate handles POST /api/v1/invoices/generate
func (h *InvoiceHandler) Generate(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	var req invoiceapp.GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.invoiceService.Generate(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List handles GET /api/v1/invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	var filter invoiceapp.InvoiceListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	invoices, total, err := h.invoiceService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page, pageSize := filter.Page, filter.PageSize
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = len(invoices)
	}
	h.SuccessWithMeta(c, invoices, total, page, pageSize)
}

// Get handles GET /api/v1/invoices/:id
func (h *InvoiceHandler) Get(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	invoiceID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	resp, err := h.invoiceService.GetByID(c.Request.Context(), tenantID, invoiceID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// MarkPaid handles POST /api/v1/invoices/:id/pay
func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	h.togglePaid(c, h.invoiceService.MarkPaid)
}

// MarkUnpaid handles POST /api/v1/invoices/:id/unpay
func (h *InvoiceHandler) MarkUnpaid(c *gin.Context) {
	h.togglePaid(c, h.invoiceService.MarkUnpaid)
}

// Delete handles DELETE /api/v1/invoices/:id. Deleting an unpaid invoice
// releases its orders back to the eligible pool.
func (h *InvoiceHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	invoiceID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.invoiceService.Delete(c.Request.Context(), tenantID, invoiceID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Match handles POST /api/v1/invoices/match with pre-parsed statement rows
func (h *InvoiceHandler) Match(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	var req invoiceapp.MatchStatementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.matchService.MatchStatement(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// MatchUpload handles POST /api/v1/invoices/match/upload with a multipart
// CSV or XLSX statement file
func (h *InvoiceHandler) MatchUpload(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	sellerID, err := uuid.Parse(c.PostForm("seller_id"))
	if err != nil {
		h.BadRequest(c, "Invalid seller ID")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "Statement file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "Could not read statement file")
		return
	}
	defer file.Close()

	rows, skipped, err := h.statementReader.Read(fileHeader.Filename, file)
	if err != nil {
		h.BindError(c, err)
		return
	}

	req := invoiceapp.MatchStatementRequest{
		SellerID: sellerID,
		Rows:     make([]invoiceapp.StatementRowInput, 0, len(rows)),
	}
	for _, row := range rows {
		req.Rows = append(req.Rows, invoiceapp.StatementRowInput{
			SellerReference: row.SellerReference,
			InvoiceNumber:   row.InvoiceNumber,
			Profit:          row.Profit,
		})
	}

	result, err := h.matchService.MatchStatement(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{
		"result":       result,
		"skipped_rows": skipped,
	})
}

func (h *InvoiceHandler) togglePaid(c *gin.Context, toggle func(ctx context.Context, tenantID, invoiceID uuid.UUID) (*invoiceapp.InvoiceResponse, error)) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	invoiceID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	resp, err := toggle(c.Request.Context(), tenantID, invoiceID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
