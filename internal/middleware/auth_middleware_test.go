package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumnihub/portal-api/internal/app/models"
	"github.com/alumnihub/portal-api/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testJWTService(accessExp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "test",
	})
}

func protectedRouter(jwtService *auth.JWTService, roles ...models.AppRole) *gin.Engine {
	m := NewAuthMiddleware(jwtService)
	router := gin.New()

	group := router.Group("/protected", m.JWTAuth())
	if len(roles) > 0 {
		group.Use(m.RoleRequired(roles...))
	}
	group.GET("", func(c *gin.Context) {
		userID, _ := CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"userId": userID, "isAdmin": IsAdmin(c)})
	})

	return router
}

func getProtected(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthRejectsMissingAndMalformedHeaders(t *testing.T) {
	router := protectedRouter(testJWTService(time.Hour))

	assert.Equal(t, http.StatusUnauthorized, getProtected(router, "").Code)
	assert.Equal(t, http.StatusUnauthorized, getProtected(router, "Basic abc").Code)
	assert.Equal(t, http.StatusUnauthorized, getProtected(router, "Bearer not-a-jwt").Code)
}

func TestJWTAuthRejectsExpiredToken(t *testing.T) {
	expired := testJWTService(-time.Minute)
	accessToken, _, _, _, err := expired.GenerateTokenPair(&models.User{ID: 1, Email: "a@b.c"}, models.RoleUser)
	require.NoError(t, err)

	router := protectedRouter(testJWTService(time.Hour))
	rec := getProtected(router, "Bearer "+accessToken)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "expired")
}

func TestJWTAuthSetsIdentity(t *testing.T) {
	jwtService := testJWTService(time.Hour)
	accessToken, _, _, _, err := jwtService.GenerateTokenPair(&models.User{ID: 7, Email: "a@b.c"}, models.RoleAdmin)
	require.NoError(t, err)

	rec := getProtected(protectedRouter(jwtService), "Bearer "+accessToken)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"userId":7`)
	assert.Contains(t, rec.Body.String(), `"isAdmin":true`)
}

func TestRoleRequiredEnforcesRole(t *testing.T) {
	jwtService := testJWTService(time.Hour)

	studentToken, _, _, _, err := jwtService.GenerateTokenPair(&models.User{ID: 1, Email: "s@b.c"}, models.RoleStudent)
	require.NoError(t, err)
	alumniToken, _, _, _, err := jwtService.GenerateTokenPair(&models.User{ID: 2, Email: "a@b.c"}, models.RoleAlumni)
	require.NoError(t, err)
	adminToken, _, _, _, err := jwtService.GenerateTokenPair(&models.User{ID: 3, Email: "r@b.c"}, models.RoleAdmin)
	require.NoError(t, err)

	router := protectedRouter(jwtService, models.RoleAlumni, models.RoleAdmin)

	assert.Equal(t, http.StatusForbidden, getProtected(router, "Bearer "+studentToken).Code)
	assert.Equal(t, http.StatusOK, getProtected(router, "Bearer "+alumniToken).Code)
	assert.Equal(t, http.StatusOK, getProtected(router, "Bearer "+adminToken).Code)
}

func TestServiceKeyRequired(t *testing.T) {
	router := gin.New()
	router.DELETE("/internal/users/:userId", ServiceKeyRequired("right-key"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	call := func(key string) int {
		req := httptest.NewRequest(http.MethodDelete, "/internal/users/1", nil)
		if key != "" {
			req.Header.Set("X-Service-Key", key)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusForbidden, call(""))
	assert.Equal(t, http.StatusForbidden, call("wrong-key"))
	assert.Equal(t, http.StatusOK, call("right-key"))
}
