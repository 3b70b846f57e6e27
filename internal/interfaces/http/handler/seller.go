package handler

import (
	partnerapp "github.com/Khanjii4421/adnansoftware-sub000/internal/application/partner"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/shared"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// SellerHandler handles seller API endpoints
type SellerHandler struct {
	BaseHandler
	sellerService *partnerapp.Service
}

// NewSellerHandler creates a new SellerHandler
func NewSellerHandler(sellerService *partnerapp.Service) *SellerHandler {
	return &SellerHandler{sellerService: sellerService}
}

// Create handles POST /api/v1/sellers
func (h *SellerHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	var req partnerapp.CreateSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.sellerService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List handles GET /api/v1/sellers
func (h *SellerHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.Normalize()

	filter := shared.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Search:   req.Search,
	}

	sellers, total, err := h.sellerService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, sellers, total, req.Page, req.PageSize)
}

// Get handles GET /api/v1/sellers/:id
func (h *SellerHandler) Get(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	sellerID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid seller ID")
		return
	}

	resp, err := h.sellerService.GetByID(c.Request.Context(), tenantID, sellerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update handles PUT /api/v1/sellers/:id
func (h *SellerHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	sellerID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid seller ID")
		return
	}

	var req partnerapp.UpdateSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.sellerService.Update(c.Request.Context(), tenantID, sellerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Deactivate handles POST /api/v1/sellers/:id/deactivate
func (h *SellerHandler) Deactivate(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	sellerID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid seller ID")
		return
	}

	resp, err := h.sellerService.Deactivate(c.Request.Context(), tenantID, sellerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete handles DELETE /api/v1/sellers/:id. Sellers with orders cannot be
// deleted, only deactivated.
func (h *SellerHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	sellerID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid seller ID")
		return
	}

	if err := h.sellerService.Delete(c.Request.Context(), tenantID, sellerID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// LastReference handles GET /api/v1/sellers/:id/last-reference
func (h *SellerHandler) LastReference(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid tenant")
		return
	}

	sellerID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid seller ID")
		return
	}

	ref, err := h.sellerService.LastReference(c.Request.Context(), tenantID, sellerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"last_reference": ref})
}
