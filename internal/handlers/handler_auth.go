package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/bizdesk/internal/core/ports/services"
	"github.com/SscSPs/bizdesk/internal/dto"
	"github.com/SscSPs/bizdesk/internal/middleware"
	"github.com/SscSPs/bizdesk/internal/platform/config"
	"github.com/SscSPs/bizdesk/internal/session"
	"github.com/SscSPs/bizdesk/internal/utils"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication related requests. Each login or signup opens a
// new client session whose id travels in the JWT.
type AuthHandler struct {
	authService portssvc.AuthSvcFacade
	storage     session.Storage
	roles       session.RoleResolver
	jwtSecret   string
	jwtDuration time.Duration
	jwtIssuer   string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as portssvc.AuthSvcFacade, storage session.Storage, roles session.RoleResolver, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: as,
		storage:     storage,
		roles:       roles,
		jwtSecret:   cfg.JWTSecret,
		jwtDuration: cfg.JWTExpiryDuration,
		jwtIssuer:   cfg.JWTIssuer,
	}
}

// registerAuthRoutes sets up the routes for authentication. limit guards the public routes.
func registerAuthRoutes(r *gin.Engine, h *AuthHandler, requireSession, limit gin.HandlerFunc) {
	public := r.Group("/auth")
	if limit != nil {
		public.Use(limit)
	}
	{
		public.POST("/login", h.Login)
		public.POST("/signup", h.Signup)
		public.POST("/reset-password", h.ResetPassword)
	}

	private := r.Group("/auth", requireSession)
	{
		private.POST("/logout", h.Logout)
		private.GET("/session", h.Session)
	}
}

// newClientStore opens an empty store under a fresh session id.
func (h *AuthHandler) newClientStore() (*session.Store, string, error) {
	sid, err := utils.NewSessionID()
	if err != nil {
		return nil, "", err
	}
	return session.NewStore(h.storage, session.KeyFor(sid), h.roles), sid, nil
}

// issue answers an authenticated store with a signed token.
func (h *AuthHandler) issue(c *gin.Context, status int, store *session.Store, sid string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sess, _ := store.Current()
	token, expiresAt, err := utils.GenerateJWT(sess.User.UserID, sid, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		// the session would be unreachable without a token
		_ = store.Clear(c.Request.Context())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to generate token"})
		return
	}
	c.JSON(status, dto.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		Session:     dto.ToSessionResponse(sess),
	})
}

// Login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT bound to a new session.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid email or password"
// @Failure 403 {object} dto.ErrorResponse "Account is inactive"
// @Failure 429 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	store, sid, err := h.newClientStore()
	if err != nil {
		respondError(c, err, "Failed to open session")
		return
	}
	if err := h.authService.Login(c.Request.Context(), store, req.Email, req.Password); err != nil {
		respondError(c, err, "Failed to log in")
		return
	}
	h.issue(c, http.StatusOK, store, sid)
}

// Signup godoc
// @Summary Register new user
// @Description Creates a user with the chosen role and logs them in.
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body dto.SignupRequest true "User Registration Info"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 422 {object} dto.ErrorResponse "Role does not exist"
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !bindJSON(c, &req) {
		return
	}
	store, sid, err := h.newClientStore()
	if err != nil {
		respondError(c, err, "Failed to open session")
		return
	}
	if err := h.authService.Signup(c.Request.Context(), store, req.Email, req.Password, req.Name, req.RoleID); err != nil {
		respondError(c, err, "Failed to sign up")
		return
	}
	h.issue(c, http.StatusCreated, store, sid)
}

// ResetPassword godoc
// @Summary Request a password reset
// @Description Always succeeds, whether or not the email is registered.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Email"
// @Success 202 {object} map[string]string
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.authService.ResetPassword(c.Request.Context(), req.Email); err != nil {
		respondError(c, err, "Failed to request password reset")
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "If the email is registered, reset instructions have been sent"})
}

// Logout godoc
// @Summary Log out
// @Description Ends the session; its token stops working immediately.
// @Tags auth
// @Success 204
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	store, ok := middleware.GetSessionStoreFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}
	if err := h.authService.Logout(c.Request.Context(), store); err != nil {
		respondError(c, err, "Failed to log out")
		return
	}
	c.Status(http.StatusNoContent)
}

// Session godoc
// @Summary Current session
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	sess, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(sess))
}
