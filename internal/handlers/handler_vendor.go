package handlers

import (
	"net/http"

	"github.com/SscSPs/bizdesk/internal/core/domain"
	portssvc "github.com/SscSPs/bizdesk/internal/core/ports/services"
	"github.com/SscSPs/bizdesk/internal/dto"
	"github.com/SscSPs/bizdesk/internal/middleware"
	"github.com/gin-gonic/gin"
)

type vendorHandler struct {
	vendorService portssvc.VendorSvcFacade
}

func registerVendorRoutes(rg *gin.RouterGroup, vendorService portssvc.VendorSvcFacade) {
	h := &vendorHandler{vendorService: vendorService}

	vendors := rg.Group("/vendors", middleware.ReadWrite("vendors"))
	{
		vendors.GET("", h.listVendors)
		vendors.POST("", h.createVendor)
		vendors.PATCH("/:id", h.updateVendor)
		vendors.DELETE("/:id", h.deleteVendor)
		vendors.POST("/bulk-delete", h.bulkDeleteVendors)
		vendors.POST("/bulk-status", h.bulkUpdateVendorStatus)
	}
}

// listVendors godoc
// @Summary List vendors
// @Description Returns every vendor ordered by name
// @Tags vendors
// @Produce  json
// @Success 200 {object} dto.ListVendorsResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to list vendors"
// @Security BearerAuth
// @Router /api/v1/vendors [get]
func (h *vendorHandler) listVendors(c *gin.Context) {
	vendors, err := h.vendorService.ListVendors(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list vendors")
		return
	}
	c.JSON(http.StatusOK, dto.ToListVendorsResponse(vendors))
}

// createVendor godoc
// @Summary Create a vendor
// @Tags vendors
// @Accept  json
// @Produce  json
// @Param   vendor body dto.CreateVendorRequest true "Vendor details"
// @Success 201 {object} dto.MutationResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to create vendor"
// @Security BearerAuth
// @Router /api/v1/vendors [post]
func (h *vendorHandler) createVendor(c *gin.Context) {
	var req dto.CreateVendorRequest
	if !bindJSON(c, &req) {
		return
	}
	vendor, err := h.vendorService.CreateVendor(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create vendor")
		return
	}
	mutated(c, http.StatusCreated, dto.ToVendorResponse(vendor))
}

// updateVendor godoc
// @Summary Update a vendor
// @Tags vendors
// @Accept  json
// @Produce  json
// @Param   id path string true "Vendor ID"
// @Param   vendor body dto.UpdateVendorRequest true "Fields to change"
// @Success 200 {object} dto.MutationResponse
// @Failure 404 {object} dto.ErrorResponse "Vendor not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update vendor"
// @Security BearerAuth
// @Router /api/v1/vendors/{id} [patch]
func (h *vendorHandler) updateVendor(c *gin.Context) {
	var req dto.UpdateVendorRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.vendorService.UpdateVendor(c.Request.Context(), c.Param("id"), req); err != nil {
		respondError(c, err, "Failed to update vendor")
		return
	}
	mutated(c, http.StatusOK, nil)
}

// deleteVendor godoc
// @Summary Delete a vendor
// @Tags vendors
// @Produce  json
// @Param   id path string true "Vendor ID"
// @Success 200 {object} dto.MutationResponse
// @Failure 404 {object} dto.ErrorResponse "Vendor not found"
// @Security BearerAuth
// @Router /api/v1/vendors/{id} [delete]
func (h *vendorHandler) deleteVendor(c *gin.Context) {
	if err := h.vendorService.DeleteVendor(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete vendor")
		return
	}
	mutated(c, http.StatusOK, nil)
}

// bulkDeleteVendors godoc
// @Summary Delete several vendors
// @Tags vendors
// @Accept  json
// @Produce  json
// @Param   ids body dto.BulkIDsRequest true "Vendor IDs"
// @Success 200 {object} dto.BulkResponse
// @Security BearerAuth
// @Router /api/v1/vendors/bulk-delete [post]
func (h *vendorHandler) bulkDeleteVendors(c *gin.Context) {
	var req dto.BulkIDsRequest
	if !bindJSON(c, &req) {
		return
	}
	n, err := h.vendorService.BulkDeleteVendors(c.Request.Context(), req.IDs)
	if err != nil {
		respondError(c, err, "Failed to delete vendors")
		return
	}
	bulkDone(c, n)
}

// bulkUpdateVendorStatus godoc
// @Summary Set the status of several vendors
// @Tags vendors
// @Accept  json
// @Produce  json
// @Param   request body dto.BulkStatusRequest true "Vendor IDs and the new status"
// @Success 200 {object} dto.BulkResponse
// @Security BearerAuth
// @Router /api/v1/vendors/bulk-status [post]
func (h *vendorHandler) bulkUpdateVendorStatus(c *gin.Context) {
	var req dto.BulkStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	n, err := h.vendorService.BulkUpdateVendorStatus(c.Request.Context(), req.IDs, domain.VendorStatus(req.Status))
	if err != nil {
		respondError(c, err, "Failed to update vendors")
		return
	}
	bulkDone(c, n)
}
