package marketapi_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/afribrok/marketplace-bff/constant"
	"github.com/afribrok/marketplace-bff/model"
	"github.com/afribrok/marketplace-bff/thirdparty/marketapi"
	utilsContext "github.com/afribrok/marketplace-bff/utils/context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetForwardsSession(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := marketapi.New(nil, srv.URL+"/", 0)
	ctx := utilsContext.WithSession(context.Background(), model.Session{Token: "tok", TenantID: "t-1", Role: constant.RoleBroker})
	ctx = utilsContext.WithRequestID(ctx, "req-1")

	var out struct {
		OK bool `json:"ok"`
	}
	err := client.Get(ctx, "/v1/listings/search", url.Values{"q": {"bole"}}, &out)
	require.NoError(t, err)
	assert.True(t, out.OK)

	require.NotNil(t, got)
	assert.Equal(t, "/v1/listings/search", got.URL.Path)
	assert.Equal(t, "bole", got.URL.Query().Get("q"))
	assert.Equal(t, "Bearer tok", got.Header.Get("Authorization"))
	assert.Equal(t, "t-1", got.Header.Get("X-Tenant"))
	assert.Equal(t, "t-1", got.Header.Get("x-tenant-id"))
	assert.Equal(t, "req-1", got.Header.Get("X-Request-ID"))
}

func TestClient_SuperAdminIsNotTenantScoped(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := marketapi.New(nil, srv.URL, 0)
	ctx := utilsContext.WithSession(context.Background(), model.Session{Token: "tok", TenantID: "t-1", Role: constant.RoleSuperAdmin})

	require.NoError(t, client.Put(ctx, "/v1/super/platform-settings", map[string]string{"a": "b"}, nil))
	assert.Equal(t, "Bearer tok", got.Header.Get("Authorization"))
	assert.Empty(t, got.Header.Get("X-Tenant"))
	assert.Empty(t, got.Header.Get("x-tenant-id"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.NotEmpty(t, got.Header.Get("X-Request-ID"))
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantAuth    bool
	}{
		{name: "string message", status: http.StatusBadRequest, body: `{"message":"price must be positive"}`, wantMessage: "price must be positive"},
		{name: "list message", status: http.StatusUnprocessableEntity, body: `{"message":["a","b"]}`, wantMessage: "a; b"},
		{name: "error field", status: http.StatusInternalServerError, body: `{"error":"db down"}`, wantMessage: "db down"},
		{name: "no body", status: http.StatusServiceUnavailable, body: ``, wantMessage: "Service Unavailable"},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"message":"jwt expired"}`, wantMessage: "jwt expired", wantAuth: true},
		{name: "forbidden", status: http.StatusForbidden, body: `not json`, wantMessage: "Forbidden", wantAuth: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := marketapi.New(nil, srv.URL, 0).Get(context.Background(), "/v1/x", nil, nil)
			apiErr, ok := marketapi.AsAPIError(err)
			require.True(t, ok)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, srv.URL+"/v1/x", apiErr.URL)
			assert.Equal(t, tt.wantAuth, marketapi.IsAuth(err))
			assert.False(t, apiErr.IsNetwork())
		})
	}
}

func TestClient_ResponseSizeLimit(t *testing.T) {
	restore := marketapi.SetMaxResponseBytes(32)
	defer restore()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/small" {
			_, _ = w.Write([]byte(`{"ok":true}`))
			return
		}
		_, _ = w.Write([]byte(`{"listings":[{"id":"a"},{"id":"b"},{"id":"c"}]}`))
	}))
	defer srv.Close()

	client := marketapi.New(nil, srv.URL, 0)

	var small struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, client.Get(context.Background(), "/v1/small", nil, &small))
	assert.True(t, small.OK)

	var big map[string]interface{}
	err := client.Get(context.Background(), "/v1/big", nil, &big)
	apiErr, ok := marketapi.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "response too large", apiErr.Message)
	assert.Equal(t, http.StatusOK, apiErr.Status)
	assert.Nil(t, big)
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	err := marketapi.New(nil, base, 0).Get(context.Background(), "/v1/x", nil, nil)
	apiErr, ok := marketapi.AsAPIError(err)
	require.True(t, ok)
	assert.True(t, apiErr.IsNetwork())
	assert.Equal(t, 0, apiErr.Status)
}

func TestClient_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := marketapi.New(nil, srv.URL, 0).Get(ctx, "/v1/x", nil, nil)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestClient_Upload(t *testing.T) {
	var method, contentType, acl, body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		contentType = r.Header.Get("Content-Type")
		acl = r.Header.Get("x-amz-acl")
		buf, _ := io.ReadAll(r.Body)
		body = string(buf)
		assert.Empty(t, r.Header.Get("Authorization"))
	}))
	defer srv.Close()

	ctx := utilsContext.WithSession(context.Background(), model.Session{Token: "tok"})
	err := marketapi.New(nil, "http://unused", 0).Upload(ctx, "", srv.URL+"/bucket/key", map[string]string{"x-amz-acl": "public-read"}, "image/png", []byte("png"))
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, "public-read", acl)
	assert.Equal(t, "png", body)
}
