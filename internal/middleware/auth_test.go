package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"careconnect_backend/internal/auth"
	"careconnect_backend/internal/models"
	"careconnect_backend/internal/repositories"
	"careconnect_backend/pkg/contextkeys"
)

func setupAuthTest(t *testing.T, allowHeaderIdentity bool) (*gin.Engine, repositories.UserRepository, *auth.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	userRepo := repositories.NewUserRepository(db)
	tokens := auth.NewTokenService("test-secret", 60)

	router := gin.New()
	router.GET("/whoami", AuthMiddleware(tokens, userRepo, allowHeaderIdentity), func(c *gin.Context) {
		userID, _ := c.Get(string(contextkeys.UserIDKey))
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return router, userRepo, tokens
}

func createUser(t *testing.T, userRepo repositories.UserRepository, email string) *models.User {
	t.Helper()
	user := &models.User{
		Email:        email,
		Username:     email,
		PasswordHash: "irrelevant",
		Role:         models.UserRoleUser,
	}
	require.NoError(t, userRepo.Create(user))
	return user
}

func TestAuthMiddleware_BearerToken(t *testing.T) {
	router, userRepo, tokens := setupAuthTest(t, false)
	user := createUser(t, userRepo, "alice@example.com")

	token, err := tokens.Generate(user.ID, user.Email, string(user.Role))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":1`)
}

func TestAuthMiddleware_MissingCredentials(t *testing.T) {
	router, _, _ := setupAuthTest(t, false)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
}

func TestAuthMiddleware_BadToken(t *testing.T) {
	router, _, _ := setupAuthTest(t, false)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer nonsense")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestAuthMiddleware_DeletedAccountRejected(t *testing.T) {
	router, userRepo, tokens := setupAuthTest(t, false)
	user := createUser(t, userRepo, "alice@example.com")

	token, err := tokens.Generate(user.ID, user.Email, string(user.Role))
	require.NoError(t, err)
	require.NoError(t, userRepo.SoftDelete(user.ID))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_HeaderIdentityMode(t *testing.T) {
	router, userRepo, _ := setupAuthTest(t, true)
	createUser(t, userRepo, "alice@example.com")

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-User-Email", "alice@example.com")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Unknown identity resolves to 404, not 401: the assertion reached us
	// but names nobody.
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-User-Email", "ghost@example.com")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAuthMiddleware_HeaderIgnoredWhenDisabled(t *testing.T) {
	router, userRepo, _ := setupAuthTest(t, false)
	createUser(t, userRepo, "alice@example.com")

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-User-Email", "alice@example.com")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
