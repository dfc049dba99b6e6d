package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/bizdesk/internal/apperrors"
	"github.com/SscSPs/bizdesk/internal/core/domain"
	"github.com/SscSPs/bizdesk/internal/middleware"
	"github.com/SscSPs/bizdesk/internal/notify"
	"github.com/SscSPs/bizdesk/internal/roles"
	"github.com/SscSPs/bizdesk/internal/session"
	"github.com/SscSPs/bizdesk/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testSecret = "test-secret-key-that-is-long-enough"

// userDirectory is an in-memory UserLookup.
type userDirectory map[string]domain.User

func (d userDirectory) FindUserByID(_ context.Context, userID string) (*domain.User, error) {
	u, ok := d[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &u, nil
}

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router  *gin.Engine
	storage *session.MemoryStorage
	roles   *roles.Directory
	users   userDirectory
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.storage = session.NewMemoryStorage()
	s.roles = roles.Default()
	s.users = userDirectory{}

	s.router = gin.New()
	api := s.router.Group("/api", middleware.AuthMiddleware(testSecret, s.storage, s.roles, s.users))
	api.GET("/me", func(c *gin.Context) {
		userID, _ := middleware.GetUserIDFromContext(c)
		c.String(http.StatusOK, userID)
	})
	api.POST("/accounts", middleware.ReadWrite("accounts"), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	api.GET("/accounts", middleware.ReadWrite("accounts"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
}

func (s *AuthMiddlewareTestSuite) login(sid string, role domain.RoleType) string {
	store := session.NewStore(s.storage, session.KeyFor(sid), s.roles)
	user := domain.User{UserID: "u-" + sid, Role: role, Status: domain.UserActive}
	s.users[user.UserID] = user
	s.Require().NoError(store.Save(context.Background(), user, s.roles.Resolve(role)))
	token, _, err := utils.GenerateJWT(user.UserID, sid, testSecret, time.Hour, "test")
	s.Require().NoError(err)
	return token
}

func (s *AuthMiddlewareTestSuite) do(method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AuthMiddlewareTestSuite) TestValidSession() {
	token := s.login("s1", domain.RoleAccountant)
	w := s.do(http.MethodGet, "/api/me", token)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("u-s1", w.Body.String())
}

func (s *AuthMiddlewareTestSuite) TestMissingHeader() {
	w := s.do(http.MethodGet, "/api/me", "")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuthMiddlewareTestSuite) TestLoggedOutSessionIsRejected() {
	token := s.login("s2", domain.RoleAdmin)
	s.Require().NoError(session.NewStore(s.storage, session.KeyFor("s2"), s.roles).Clear(context.Background()))

	w := s.do(http.MethodGet, "/api/me", token)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Contains(w.Body.String(), "Session has ended")
}

func (s *AuthMiddlewareTestSuite) TestWrongSecret() {
	token, _, err := utils.GenerateJWT("u-x", "sx", "another-secret", time.Hour, "test")
	s.Require().NoError(err)
	w := s.do(http.MethodGet, "/api/me", token)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuthMiddlewareTestSuite) TestPermissions() {
	viewer := s.login("s3", domain.RoleViewer)
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/accounts", viewer).Code)
	s.Equal(http.StatusForbidden, s.do(http.MethodPost, "/api/accounts", viewer).Code)

	accountant := s.login("s4", domain.RoleAccountant)
	s.Equal(http.StatusCreated, s.do(http.MethodPost, "/api/accounts", accountant).Code)
}

func (s *AuthMiddlewareTestSuite) TestDeactivatedUserLosesSession() {
	token := s.login("s5", domain.RoleAdmin)
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/me", token).Code)

	u := s.users["u-s5"]
	u.Status = domain.UserInactive
	s.users["u-s5"] = u

	w := s.do(http.MethodGet, "/api/me", token)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Contains(w.Body.String(), "no longer active")

	_, found, err := s.storage.Get(context.Background(), session.KeyFor("s5"))
	s.Require().NoError(err)
	s.False(found, "the session record is removed")

	// Reactivating does not revive the ended session.
	u.Status = domain.UserActive
	s.users["u-s5"] = u
	s.Equal(http.StatusUnauthorized, s.do(http.MethodGet, "/api/me", token).Code)
}

func (s *AuthMiddlewareTestSuite) TestDeletedUserLosesSession() {
	token := s.login("s6", domain.RoleAdmin)
	delete(s.users, "u-s6")

	w := s.do(http.MethodGet, "/api/me", token)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuthMiddlewareTestSuite) TestRoleChangeAppliesToExistingSession() {
	token := s.login("s7", domain.RoleAccountant)
	s.Equal(http.StatusCreated, s.do(http.MethodPost, "/api/accounts", token).Code)

	u := s.users["u-s7"]
	u.Role = domain.RoleViewer
	s.users["u-s7"] = u

	s.Equal(http.StatusForbidden, s.do(http.MethodPost, "/api/accounts", token).Code)
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/accounts", token).Code)

	restored := session.NewStore(s.storage, session.KeyFor("s7"), s.roles)
	ok, err := restored.Restore(context.Background())
	s.Require().NoError(err)
	s.Require().True(ok)
	sess, _ := restored.Current()
	s.Equal(domain.RoleViewer, sess.Role.Type)
}

func TestAuthMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim, err := middleware.NewMemoryLimiter("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.POST("/auth/login", middleware.RateLimit(lim), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 3)
	for i := range codes {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/login", nil))
		codes[i] = w.Code
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	_, err = middleware.NewMemoryLimiter("lots")
	assert.Error(t, err)
}

func TestNotificationRecorderIsPerRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.NotificationRecorder())
	r.GET("/n", func(c *gin.Context) {
		notify.ContextNotifier{}.Notify(c.Request.Context(), notify.Succeeded("done"))
		c.JSON(http.StatusOK, middleware.GetNotifications(c))
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/n", nil))
		assert.Equal(t, 1, strings.Count(w.Body.String(), `"title":"done"`))
	}
}

func TestLoggerFallsBackToDefault(t *testing.T) {
	assert.NotNil(t, middleware.GetLoggerFromCtx(context.Background()))
}
