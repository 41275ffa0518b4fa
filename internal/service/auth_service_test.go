package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/azharul-dev/islamichub-api/internal/models"
	appErrors "github.com/azharul-dev/islamichub-api/pkg/errors"
)

type mockAuthUserRepo struct {
	usersByEmail map[string]models.User
	usersByID    map[string]models.User
	touched      []primitive.ObjectID
}

func (m *mockAuthUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := m.usersByEmail[email]; ok {
		return &u, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockAuthUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := m.usersByID[id]; ok {
		return &u, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockAuthUserRepo) EmailExists(ctx context.Context, email string, excludeID string) (bool, error) {
	_, ok := m.usersByEmail[email]
	return ok, nil
}

func (m *mockAuthUserRepo) Insert(ctx context.Context, u *models.User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	if m.usersByEmail == nil {
		m.usersByEmail = make(map[string]models.User)
	}
	if m.usersByID == nil {
		m.usersByID = make(map[string]models.User)
	}
	m.usersByEmail[u.Email] = *u
	m.usersByID[u.ID.Hex()] = *u
	return nil
}

func (m *mockAuthUserRepo) TouchLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	m.touched = append(m.touched, id)
	return nil
}

func testAuthConfig() AuthConfig {
	return AuthConfig{Secret: "test-secret", Expiration: time.Hour}
}

func seededAuthRepo(t *testing.T, email, password string, active bool) *mockAuthUserRepo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		ID:           primitive.NewObjectID(),
		Name:         "Azharul Islam",
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		Active:       active,
	}
	return &mockAuthUserRepo{
		usersByEmail: map[string]models.User{email: user},
		usersByID:    map[string]models.User{user.ID.Hex(): user},
	}
}

func TestAuthServiceRegister(t *testing.T) {
	repo := &mockAuthUserRepo{}
	svc := NewAuthService(repo, validator.New(), zap.NewNop(), testAuthConfig())

	resp, err := svc.Register(context.Background(), models.RegisterRequest{
		Name:     "Azharul Islam",
		Email:    "azhar@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Equal(t, models.RoleUser, resp.User.Role)

	stored := repo.usersByEmail["azhar@example.com"]
	assert.True(t, stored.Active)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
}

func TestAuthServiceRegisterDuplicateEmail(t *testing.T) {
	repo := seededAuthRepo(t, "azhar@example.com", "secret123", true)
	svc := NewAuthService(repo, validator.New(), zap.NewNop(), testAuthConfig())

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Name:     "Someone Else",
		Email:    "azhar@example.com",
		Password: "secret123",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrAlreadyExists.Code, appErr.Code)
	assert.Equal(t, "email already registered", appErr.Message)
}

func TestAuthServiceRegisterValidation(t *testing.T) {
	svc := NewAuthService(&mockAuthUserRepo{}, validator.New(), zap.NewNop(), testAuthConfig())

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Name:     "Azharul Islam",
		Email:    "not-an-email",
		Password: "short",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLogin(t *testing.T) {
	repo := seededAuthRepo(t, "azhar@example.com", "secret123", true)
	svc := NewAuthService(repo, validator.New(), zap.NewNop(), testAuthConfig())

	resp, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "azhar@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	require.Len(t, repo.touched, 1)

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, models.RoleUser, claims.Role)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	repo := seededAuthRepo(t, "azhar@example.com", "secret123", true)
	svc := NewAuthService(repo, validator.New(), zap.NewNop(), testAuthConfig())

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "azhar@example.com",
		Password: "wrong-password",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
	assert.Empty(t, repo.touched)
}

func TestAuthServiceLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(&mockAuthUserRepo{}, validator.New(), zap.NewNop(), testAuthConfig())

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLoginDisabledAccount(t *testing.T) {
	repo := seededAuthRepo(t, "azhar@example.com", "secret123", false)
	svc := NewAuthService(repo, validator.New(), zap.NewNop(), testAuthConfig())

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "azhar@example.com",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceValidateTokenRejectsTampering(t *testing.T) {
	repo := seededAuthRepo(t, "azhar@example.com", "secret123", true)
	svc := NewAuthService(repo, validator.New(), zap.NewNop(), testAuthConfig())

	resp, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "azhar@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.ValidateToken(resp.Token + "x")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)

	other := NewAuthService(repo, validator.New(), zap.NewNop(), AuthConfig{Secret: "different", Expiration: time.Hour})
	_, err = other.ValidateToken(resp.Token)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceValidateTokenExpired(t *testing.T) {
	repo := seededAuthRepo(t, "azhar@example.com", "secret123", true)
	issuing := NewAuthService(repo, validator.New(), zap.NewNop(), AuthConfig{Secret: "test-secret", Expiration: -time.Minute})

	resp, err := issuing.Login(context.Background(), models.LoginRequest{
		Email:    "azhar@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = issuing.ValidateToken(resp.Token)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceMe(t *testing.T) {
	repo := seededAuthRepo(t, "azhar@example.com", "secret123", true)
	svc := NewAuthService(repo, validator.New(), zap.NewNop(), testAuthConfig())

	var id string
	for k := range repo.usersByID {
		id = k
	}
	user, err := svc.Me(context.Background(), &models.JWTClaims{UserID: id})
	require.NoError(t, err)
	assert.Equal(t, "azhar@example.com", user.Email)

	_, err = svc.Me(context.Background(), &models.JWTClaims{UserID: primitive.NewObjectID().Hex()})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}
