package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/azharul-dev/islamichub-api/internal/models"
	"github.com/azharul-dev/islamichub-api/internal/service"
)

const testCookieName = "islamichub_token"

type fakeAuthRepo struct {
	users map[string]models.User
}

func (f *fakeAuthRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeAuthRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return &u, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeAuthRepo) EmailExists(ctx context.Context, email string, excludeID string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAuthRepo) Insert(ctx context.Context, u *models.User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	if f.users == nil {
		f.users = make(map[string]models.User)
	}
	f.users[u.ID.Hex()] = *u
	return nil
}

func (f *fakeAuthRepo) TouchLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	return nil
}

func sessionToken(t *testing.T, svc *service.AuthService) string {
	t.Helper()
	resp, err := svc.Register(context.Background(), models.RegisterRequest{
		Name:     "Azharul Islam",
		Email:    "azhar@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	return resp.Token
}

func protectedRouter(svc *service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", JWT(svc, testCookieName), func(c *gin.Context) {
		claims := c.MustGet(ContextUserKey).(*models.JWTClaims)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID})
	})
	return router
}

func TestJWTMiddlewareRequiresToken(t *testing.T) {
	svc := service.NewAuthService(&fakeAuthRepo{}, validator.New(), zap.NewNop(), service.AuthConfig{Secret: "test", Expiration: time.Hour})
	router := protectedRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTMiddlewareAcceptsCookie(t *testing.T) {
	svc := service.NewAuthService(&fakeAuthRepo{}, validator.New(), zap.NewNop(), service.AuthConfig{Secret: "test", Expiration: time.Hour})
	router := protectedRouter(svc)
	token := sessionToken(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTMiddlewareAcceptsBearerHeader(t *testing.T) {
	svc := service.NewAuthService(&fakeAuthRepo{}, validator.New(), zap.NewNop(), service.AuthConfig{Secret: "test", Expiration: time.Hour})
	router := protectedRouter(svc)
	token := sessionToken(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTMiddlewareRejectsInvalidToken(t *testing.T) {
	svc := service.NewAuthService(&fakeAuthRepo{}, validator.New(), zap.NewNop(), service.AuthConfig{Secret: "test", Expiration: time.Hour})
	router := protectedRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRBACAllowsRoleAndSelf(t *testing.T) {
	gin.SetMode(gin.TestMode)
	selfID := primitive.NewObjectID().Hex()

	router := gin.New()
	router.GET("/users/:id", func(c *gin.Context) {
		c.Set(ContextUserKey, &models.JWTClaims{UserID: selfID, Role: models.RoleUser})
	}, RBAC(string(models.RoleAdmin), "SELF"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/"+selfID, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/"+primitive.NewObjectID().Hex(), nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRolesBlocksMissingClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin", RequireRoles(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	router2 := gin.New()
	router2.GET("/admin", func(c *gin.Context) {
		c.Set(ContextUserKey, &models.JWTClaims{Role: models.RoleAdmin})
	}, RequireRoles(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	rec = httptest.NewRecorder()
	router2.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
