package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/afribrok/marketplace-bff/model"
	authrepo "github.com/afribrok/marketplace-bff/repository/auth"
	"github.com/afribrok/marketplace-bff/thirdparty/marketapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T, handler http.HandlerFunc) authrepo.AuthRepository {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return authrepo.NewAuthRepository(marketapi.New(nil, srv.URL, 0))
}

func TestLogin(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/auth/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "abebe@example.com", body["email"])
		_, _ = w.Write([]byte(`{
			"accessToken": "tok-1",
			"user": {"fullName": "Abebe Kebede", "role": "broker", "tenant_id": "t-1"}
		}`))
	})

	res, err := repo.Login(context.Background(), &model.LoginRequest{Email: "abebe@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "tok-1", res.Token)
	assert.Equal(t, "t-1", res.TenantID)
	assert.Equal(t, model.AuthUser{
		Name:     "Abebe Kebede",
		Email:    "abebe@example.com",
		Role:     "BROKER",
		Status:   "ACTIVE",
		TenantID: "t-1",
	}, res.User)
}

func TestLogin_Unauthorized(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "Invalid credentials"}`))
	})

	_, err := repo.Login(context.Background(), &model.LoginRequest{Email: "a@b.co", Password: "x"})
	require.Error(t, err)
	assert.True(t, marketapi.IsAuth(err))
}

func TestRegister_FallsBackToRequestName(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/auth/register", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"token": "tok-2", "tenantId": "t-2", "user": {"role": "BUYER", "status": "PENDING"}}`))
	})

	res, err := repo.Register(context.Background(), &model.RegisterRequest{Name: "Sara", Email: "sara@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "Sara", res.User.Name)
	assert.Equal(t, "PENDING", res.User.Status)
	assert.Equal(t, "t-2", res.User.TenantID)
}

func TestLogout(t *testing.T) {
	called := false
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, "/v1/auth/logout", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, repo.Logout(context.Background()))
	assert.True(t, called)
}
