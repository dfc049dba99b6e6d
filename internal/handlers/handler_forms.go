package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/SscSPs/bizdesk/internal/apperrors"
	"github.com/SscSPs/bizdesk/internal/core/domain"
	portssvc "github.com/SscSPs/bizdesk/internal/core/ports/services"
	"github.com/SscSPs/bizdesk/internal/dto"
	"github.com/SscSPs/bizdesk/internal/forms"
	"github.com/SscSPs/bizdesk/internal/middleware"
	"github.com/SscSPs/bizdesk/internal/notify"
	"github.com/gin-gonic/gin"
)

// formHandler accepts raw dialog input, shapes it with the forms package and saves
// the resulting draft through the entity services.
type formHandler struct {
	services *portssvc.ServiceContainer
}

func registerFormRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &formHandler{services: services}

	f := rg.Group("/forms")
	{
		f.POST("/accounts", middleware.RequirePermission("accounts:write"), h.submitAccount)
		f.POST("/vendors", middleware.RequirePermission("vendors:write"), h.submitVendor)
		f.POST("/employees", middleware.RequirePermission("employees:write"), h.submitEmployee)
		f.POST("/employees/departments", middleware.RequirePermission("departments:write"), h.createInlineDepartment)
	}
}

// findByID returns the item whose id matches, or ErrNotFound.
func findByID[T any](items []T, id string, idOf func(T) string) (*T, error) {
	for i := range items {
		if idOf(items[i]) == id {
			return &items[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", apperrors.ErrNotFound, id)
}

// saved answers a submitted form: 201 with the record when created, 200 when edited.
func saved(c *gin.Context, created any) {
	if created == nil {
		mutated(c, http.StatusOK, nil)
		return
	}
	mutated(c, http.StatusCreated, created)
}

// submitAccount godoc
// @Summary Submit the account dialog
// @Description Shapes raw fields into a draft and creates the account, or updates the one named by id
// @Tags forms
// @Accept  json
// @Produce  json
// @Param   form body dto.FormSubmission true "Dialog fields"
// @Success 200 {object} dto.MutationResponse
// @Success 201 {object} dto.MutationResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid fields"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /api/v1/forms/accounts [post]
func (h *formHandler) submitAccount(c *gin.Context) {
	var req dto.FormSubmission
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	dialog := forms.AccountDialog{}
	if req.ID != nil {
		accounts, err := h.services.Account.ListAccounts(ctx)
		if err != nil {
			respondError(c, err, "Failed to load account")
			return
		}
		if dialog.Existing, err = findByID(accounts, *req.ID, func(a domain.Account) string { return a.AccountID }); err != nil {
			respondError(c, err, "Failed to load account")
			return
		}
	}

	var created any
	err := dialog.Submit(ctx, forms.Fields(req.Fields), func(ctx context.Context, d forms.AccountDraft) error {
		if d.Editing() {
			return h.services.Account.UpdateAccount(ctx, d.ID, *d.Update, userID)
		}
		account, err := h.services.Account.CreateAccount(ctx, *d.Create, userID)
		if err != nil {
			return err
		}
		created = dto.ToAccountResponse(account)
		return nil
	})
	if err != nil {
		respondError(c, err, "Failed to save account")
		return
	}
	saved(c, created)
}

// submitVendor godoc
// @Summary Submit the vendor dialog
// @Tags forms
// @Accept  json
// @Produce  json
// @Param   form body dto.FormSubmission true "Dialog fields"
// @Success 200 {object} dto.MutationResponse
// @Success 201 {object} dto.MutationResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid fields"
// @Security BearerAuth
// @Router /api/v1/forms/vendors [post]
func (h *formHandler) submitVendor(c *gin.Context) {
	var req dto.FormSubmission
	if !bindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()

	dialog := forms.VendorDialog{}
	if req.ID != nil {
		vendors, err := h.services.Vendor.ListVendors(ctx)
		if err != nil {
			respondError(c, err, "Failed to load vendor")
			return
		}
		if dialog.Existing, err = findByID(vendors, *req.ID, func(v domain.Vendor) string { return v.VendorID }); err != nil {
			respondError(c, err, "Failed to load vendor")
			return
		}
	}

	var created any
	err := dialog.Submit(ctx, forms.Fields(req.Fields), func(ctx context.Context, d forms.VendorDraft) error {
		if d.Editing() {
			return h.services.Vendor.UpdateVendor(ctx, d.ID, *d.Update)
		}
		vendor, err := h.services.Vendor.CreateVendor(ctx, *d.Create)
		if err != nil {
			return err
		}
		created = dto.ToVendorResponse(vendor)
		return nil
	})
	if err != nil {
		respondError(c, err, "Failed to save vendor")
		return
	}
	saved(c, created)
}

// employeeDialog opens the employee dialog against the current departments.
func (h *formHandler) employeeDialog(ctx context.Context, employeeID *string) (*forms.EmployeeDialog, error) {
	departments, err := h.services.Department.ListDepartments(ctx)
	if err != nil {
		return nil, err
	}
	var existing *domain.Employee
	if employeeID != nil {
		employees, err := h.services.Employee.ListEmployees(ctx)
		if err != nil {
			return nil, err
		}
		if existing, err = findByID(employees, *employeeID, func(e domain.Employee) string { return e.EmployeeID }); err != nil {
			return nil, err
		}
	}
	return forms.NewEmployeeDialog(existing, departments, h.services.Department.CreateDepartment, notify.ContextNotifier{}), nil
}

// submitEmployee godoc
// @Summary Submit the employee dialog
// @Description Shapes raw fields (dates as YYYY-MM-DD) into a draft and saves it
// @Tags forms
// @Accept  json
// @Produce  json
// @Param   form body dto.FormSubmission true "Dialog fields"
// @Success 200 {object} dto.MutationResponse
// @Success 201 {object} dto.MutationResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid fields"
// @Failure 422 {object} dto.ErrorResponse "Unknown department"
// @Security BearerAuth
// @Router /api/v1/forms/employees [post]
func (h *formHandler) submitEmployee(c *gin.Context) {
	var req dto.FormSubmission
	if !bindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()

	dialog, err := h.employeeDialog(ctx, req.ID)
	if err != nil {
		respondError(c, err, "Failed to open employee form")
		return
	}

	var created any
	err = dialog.Submit(ctx, forms.Fields(req.Fields), func(ctx context.Context, d forms.EmployeeDraft) error {
		if d.Editing() {
			return h.services.Employee.UpdateEmployee(ctx, d.ID, *d.Update)
		}
		employee, err := h.services.Employee.CreateEmployee(ctx, *d.Create)
		if err != nil {
			return err
		}
		created = employee
		return nil
	})
	if err != nil {
		respondError(c, err, "Failed to save employee")
		return
	}
	saved(c, created)
}

// createInlineDepartment godoc
// @Summary Create a department from the employee dialog
// @Description Name and code are both required; the code is upper-cased. Returns the id to select.
// @Tags forms
// @Accept  json
// @Produce  json
// @Param   department body dto.InlineDepartmentRequest true "Department"
// @Success 201 {object} dto.InlineDepartmentResponse
// @Failure 400 {object} dto.ErrorResponse "Name or code missing"
// @Failure 409 {object} dto.ErrorResponse "Department code already exists"
// @Security BearerAuth
// @Router /api/v1/forms/employees/departments [post]
func (h *formHandler) createInlineDepartment(c *gin.Context) {
	var req dto.InlineDepartmentRequest
	if !bindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()

	dialog := forms.NewEmployeeDialog(nil, nil, h.services.Department.CreateDepartment, notify.ContextNotifier{})
	id, err := dialog.CreateDepartmentInline(ctx, req.Name, req.Code)
	if err != nil {
		respondError(c, err, "Failed to create department")
		return
	}
	c.JSON(http.StatusCreated, dto.InlineDepartmentResponse{DepartmentID: id, Notifications: middleware.GetNotifications(c)})
}
