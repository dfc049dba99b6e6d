package handlers

import (
	"net/http"

	"github.com/SscSPs/bizdesk/internal/core/domain"
	portssvc "github.com/SscSPs/bizdesk/internal/core/ports/services"
	"github.com/SscSPs/bizdesk/internal/dto"
	"github.com/SscSPs/bizdesk/internal/middleware"
	"github.com/gin-gonic/gin"
)

type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
}

func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade) {
	h := &employeeHandler{employeeService: employeeService}

	employees := rg.Group("/employees", middleware.ReadWrite("employees"))
	{
		employees.GET("", h.listEmployees)
		employees.POST("", h.createEmployee)
		employees.PATCH("/:id", h.updateEmployee)
		employees.DELETE("/:id", h.deleteEmployee)
		employees.POST("/bulk-status", h.bulkUpdateEmployeeStatus)
	}
}

// listEmployees godoc
// @Summary List employees
// @Description Returns every employee ordered by last and first name
// @Tags employees
// @Produce  json
// @Success 200 {object} dto.ListEmployeesResponse
// @Security BearerAuth
// @Router /api/v1/employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	employees, err := h.employeeService.ListEmployees(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list employees")
		return
	}
	c.JSON(http.StatusOK, dto.ListEmployeesResponse{Employees: employees})
}

// createEmployee godoc
// @Summary Create an employee
// @Description Employment type, status, currency and payment frequency take defaults when omitted
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   employee body dto.CreateEmployeeRequest true "Employee"
// @Success 201 {object} dto.MutationResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 422 {object} dto.ErrorResponse "Department does not exist"
// @Security BearerAuth
// @Router /api/v1/employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if !bindJSON(c, &req) {
		return
	}
	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create employee")
		return
	}
	mutated(c, http.StatusCreated, employee)
}

// updateEmployee godoc
// @Summary Update an employee
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   id path string true "Employee ID"
// @Param   employee body dto.UpdateEmployeeRequest true "Fields to change"
// @Success 200 {object} dto.MutationResponse
// @Security BearerAuth
// @Router /api/v1/employees/{id} [patch]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	var req dto.UpdateEmployeeRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.employeeService.UpdateEmployee(c.Request.Context(), c.Param("id"), req); err != nil {
		respondError(c, err, "Failed to update employee")
		return
	}
	mutated(c, http.StatusOK, nil)
}

// deleteEmployee godoc
// @Summary Delete an employee
// @Tags employees
// @Produce  json
// @Param   id path string true "Employee ID"
// @Success 200 {object} dto.MutationResponse
// @Security BearerAuth
// @Router /api/v1/employees/{id} [delete]
func (h *employeeHandler) deleteEmployee(c *gin.Context) {
	if err := h.employeeService.DeleteEmployee(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete employee")
		return
	}
	mutated(c, http.StatusOK, nil)
}

// bulkUpdateEmployeeStatus godoc
// @Summary Set the employment status of several employees
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   request body dto.BulkStatusRequest true "Employee IDs and the new status"
// @Success 200 {object} dto.BulkResponse
// @Security BearerAuth
// @Router /api/v1/employees/bulk-status [post]
func (h *employeeHandler) bulkUpdateEmployeeStatus(c *gin.Context) {
	var req dto.BulkStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	n, err := h.employeeService.BulkUpdateEmployeeStatus(c.Request.Context(), req.IDs, domain.EmploymentStatus(req.Status))
	if err != nil {
		respondError(c, err, "Failed to update employees")
		return
	}
	bulkDone(c, n)
}
