package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leoskitchen/backend/internal/models"
	"github.com/leoskitchen/backend/internal/testhelpers"
	"github.com/leoskitchen/backend/internal/types"
)

func registrationBody(username, email string) types.RegisterRequest {
	return types.RegisterRequest{
		Username:        username,
		Email:           email,
		Password:        "password123",
		ConfirmPassword: "password123",
		AcceptedTerms:   true,
	}
}

func TestRegisterEndpoint(t *testing.T) {
	db, engine := setupRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/register", "", registrationBody("chef1", "chef1@example.com"))
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "chef1", body["username"])
	assert.NotEmpty(t, body["token"])
	assert.NotEmpty(t, body["user_id"])

	var user models.User
	require.NoError(t, db.First(&user, "username = ?", "chef1").Error)
	assert.Equal(t, "chef1@example.com", user.Email)
}

func TestRegisterEndpointErrors(t *testing.T) {
	_, engine := setupRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/register", "", registrationBody("chef1", "chef1@example.com"))
	require.Equal(t, http.StatusCreated, w.Code)

	tests := []struct {
		name   string
		mutate func(*types.RegisterRequest)
		status int
	}{
		{
			name:   "duplicate username",
			mutate: func(r *types.RegisterRequest) { r.Email = "other@example.com" },
			status: http.StatusConflict,
		},
		{
			name: "duplicate email",
			mutate: func(r *types.RegisterRequest) {
				r.Username = "chef2"
				r.Email = "chef1@example.com"
			},
			status: http.StatusConflict,
		},
		{
			name: "bad email",
			mutate: func(r *types.RegisterRequest) {
				r.Username = "chef2"
				r.Email = "not-an-email"
			},
			status: http.StatusBadRequest,
		},
		{
			name: "password mismatch",
			mutate: func(r *types.RegisterRequest) {
				r.Username = "chef2"
				r.Email = "chef2@example.com"
				r.ConfirmPassword = "different"
			},
			status: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := registrationBody("chef1", "chef1@example.com")
			tc.mutate(&req)
			w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/register", "", req)
			assert.Equal(t, tc.status, w.Code)
			assert.NotEmpty(t, decodeBody(t, w)["error"])
		})
	}
}

func TestLoginEndpoint(t *testing.T) {
	db, engine := setupRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/register", "", registrationBody("chef1", "chef1@example.com"))
	require.Equal(t, http.StatusCreated, w.Code)

	// Login works with either identifier.
	for _, identifier := range []string{"chef1", "chef1@example.com"} {
		w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/login", "", types.LoginRequest{
			UsernameOrEmail: identifier,
			Password:        "password123",
		})
		require.Equal(t, http.StatusOK, w.Code, "identifier %q", identifier)
		assert.NotEmpty(t, decodeBody(t, w)["token"])
	}

	w = doJSON(t, engine, http.MethodPost, "/api/v1/auth/login", "", types.LoginRequest{
		UsernameOrEmail: "chef1",
		Password:        "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, engine, http.MethodPost, "/api/v1/auth/login", "", types.LoginRequest{
		UsernameOrEmail: "ghost",
		Password:        "password123",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Sanity: only the one account exists.
	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestLogoutEndpoint(t *testing.T) {
	db, engine := setupRouter(t)
	_, token := testhelpers.CreateTestUserAndToken(t, db, "chef1")

	w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/logout", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodPost, "/api/v1/auth/logout", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
