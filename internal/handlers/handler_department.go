package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/bizdesk/internal/core/ports/services"
	"github.com/SscSPs/bizdesk/internal/dto"
	"github.com/SscSPs/bizdesk/internal/middleware"
	"github.com/gin-gonic/gin"
)

type departmentHandler struct {
	departmentService portssvc.DepartmentSvcFacade
}

func registerDepartmentRoutes(rg *gin.RouterGroup, departmentService portssvc.DepartmentSvcFacade) {
	h := &departmentHandler{departmentService: departmentService}

	departments := rg.Group("/departments", middleware.ReadWrite("departments"))
	{
		departments.GET("", h.listDepartments)
		departments.POST("", h.createDepartment)
		departments.PATCH("/:id", h.updateDepartment)
		departments.DELETE("/:id", h.deleteDepartment)
	}
}

// listDepartments godoc
// @Summary List departments
// @Tags departments
// @Produce  json
// @Success 200 {object} dto.ListDepartmentsResponse
// @Security BearerAuth
// @Router /api/v1/departments [get]
func (h *departmentHandler) listDepartments(c *gin.Context) {
	departments, err := h.departmentService.ListDepartments(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list departments")
		return
	}
	c.JSON(http.StatusOK, dto.ListDepartmentsResponse{Departments: departments})
}

// createDepartment godoc
// @Summary Create a department
// @Description The code is stored upper-cased
// @Tags departments
// @Accept  json
// @Produce  json
// @Param   department body dto.CreateDepartmentRequest true "Department"
// @Success 201 {object} dto.MutationResponse
// @Failure 409 {object} dto.ErrorResponse "Department code already exists"
// @Security BearerAuth
// @Router /api/v1/departments [post]
func (h *departmentHandler) createDepartment(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if !bindJSON(c, &req) {
		return
	}
	department, err := h.departmentService.CreateDepartment(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create department")
		return
	}
	mutated(c, http.StatusCreated, department)
}

// updateDepartment godoc
// @Summary Update a department
// @Tags departments
// @Accept  json
// @Produce  json
// @Param   id path string true "Department ID"
// @Param   department body dto.UpdateDepartmentRequest true "Fields to change"
// @Success 200 {object} dto.MutationResponse
// @Security BearerAuth
// @Router /api/v1/departments/{id} [patch]
func (h *departmentHandler) updateDepartment(c *gin.Context) {
	var req dto.UpdateDepartmentRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.departmentService.UpdateDepartment(c.Request.Context(), c.Param("id"), req); err != nil {
		respondError(c, err, "Failed to update department")
		return
	}
	mutated(c, http.StatusOK, nil)
}

// deleteDepartment godoc
// @Summary Delete a department
// @Description Employees of the department are left without one
// @Tags departments
// @Produce  json
// @Param   id path string true "Department ID"
// @Success 200 {object} dto.MutationResponse
// @Security BearerAuth
// @Router /api/v1/departments/{id} [delete]
func (h *departmentHandler) deleteDepartment(c *gin.Context) {
	if err := h.departmentService.DeleteDepartment(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete department")
		return
	}
	mutated(c, http.StatusOK, nil)
}
