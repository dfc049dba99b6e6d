package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/bizdesk/internal/core/domain"
	portssvc "github.com/SscSPs/bizdesk/internal/core/ports/services"
	"github.com/SscSPs/bizdesk/internal/dto"
	"github.com/SscSPs/bizdesk/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{
		userService: us,
	}
}

// registerUserRoutes registers all user-related routes. Every route needs users permissions.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users", middleware.ReadWrite("users"))
	{
		users.GET("", h.listUsers)
		users.POST("", h.createUser)
		users.PATCH("/:id", h.updateUser)
		users.PUT("/:id/role", h.updateUserRole)
		users.DELETE("/:id", h.deleteUser)
		users.POST("/bulk-delete", h.bulkDeleteUsers)
		users.POST("/bulk-status", h.bulkUpdateUserStatus)
	}
}

// listUsers godoc
// @Summary List users
// @Description Returns profiles joined with their role; users without a role assignment show as viewer
// @Tags users
// @Produce  json
// @Success 200 {object} dto.ListUsersResponse
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Failed to list users"
// @Security BearerAuth
// @Router /api/v1/users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, dto.ToListUserResponse(users))
}

// createUser godoc
// @Summary Create a new user
// @Description Creates a new user (typically an admin action)
// @Tags users
// @Accept  json
// @Produce  json
// @Param   user body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.MutationResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 500 {object} dto.ErrorResponse "Failed to create user"
// @Security BearerAuth
// @Router /api/v1/users [post]
func (h *userHandler) createUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create user")
		return
	}

	logger.Info("User created successfully", slog.String("new_user_id", user.UserID))
	mutated(c, http.StatusCreated, dto.ToUserResponse(user))
}

// updateUser godoc
// @Summary Update a user profile
// @Tags users
// @Accept  json
// @Produce  json
// @Param   id path string true "User ID"
// @Param   user body dto.UpdateUserRequest true "Fields to change"
// @Success 200 {object} dto.MutationResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update user"
// @Security BearerAuth
// @Router /api/v1/users/{id} [patch]
func (h *userHandler) updateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.userService.UpdateUser(c.Request.Context(), c.Param("id"), req); err != nil {
		respondError(c, err, "Failed to update user")
		return
	}
	mutated(c, http.StatusOK, nil)
}

// updateUserRole godoc
// @Summary Assign a role
// @Description Inserts the role assignment when the user has none, otherwise replaces it
// @Tags users
// @Accept  json
// @Produce  json
// @Param   id path string true "User ID"
// @Param   role body dto.UpdateUserRoleRequest true "New role"
// @Success 200 {object} dto.MutationResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 422 {object} dto.ErrorResponse "Unknown role"
// @Security BearerAuth
// @Router /api/v1/users/{id}/role [put]
func (h *userHandler) updateUserRole(c *gin.Context) {
	var req dto.UpdateUserRoleRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.userService.UpdateUserRole(c.Request.Context(), c.Param("id"), req.Role); err != nil {
		respondError(c, err, "Failed to update user role")
		return
	}
	mutated(c, http.StatusOK, nil)
}

// deleteUser godoc
// @Summary Delete a user
// @Tags users
// @Produce  json
// @Param   id path string true "User ID"
// @Success 200 {object} dto.MutationResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /api/v1/users/{id} [delete]
func (h *userHandler) deleteUser(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete user")
		return
	}
	mutated(c, http.StatusOK, nil)
}

// bulkDeleteUsers godoc
// @Summary Delete several users
// @Tags users
// @Accept  json
// @Produce  json
// @Param   ids body dto.BulkIDsRequest true "User IDs"
// @Success 200 {object} dto.BulkResponse
// @Security BearerAuth
// @Router /api/v1/users/bulk-delete [post]
func (h *userHandler) bulkDeleteUsers(c *gin.Context) {
	var req dto.BulkIDsRequest
	if !bindJSON(c, &req) {
		return
	}
	n, err := h.userService.BulkDeleteUsers(c.Request.Context(), req.IDs)
	if err != nil {
		respondError(c, err, "Failed to delete users")
		return
	}
	bulkDone(c, n)
}

// bulkUpdateUserStatus godoc
// @Summary Set the status of several users
// @Tags users
// @Accept  json
// @Produce  json
// @Param   request body dto.BulkStatusRequest true "User IDs and the new status"
// @Success 200 {object} dto.BulkResponse
// @Security BearerAuth
// @Router /api/v1/users/bulk-status [post]
func (h *userHandler) bulkUpdateUserStatus(c *gin.Context) {
	var req dto.BulkStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	n, err := h.userService.BulkUpdateUserStatus(c.Request.Context(), req.IDs, domain.UserStatus(req.Status))
	if err != nil {
		respondError(c, err, "Failed to update users")
		return
	}
	bulkDone(c, n)
}
