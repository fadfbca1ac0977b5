package settings_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/afribrok/marketplace-bff/model"
	settingsrepo "github.com/afribrok/marketplace-bff/repository/settings"
	"github.com/afribrok/marketplace-bff/thirdparty/marketapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T, handler http.HandlerFunc) settingsrepo.SettingsRepository {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return settingsrepo.NewSettingsRepository(marketapi.New(nil, srv.URL, 0))
}

func TestGet_WrappedDocument(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/super/platform-settings", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"settings": {"branding": {"siteName": "AfriBrok"}, "payments": {"provider": "telebirr"}},
			"version": 3,
			"updatedAt": "2026-01-02T03:04:05Z",
			"updatedBy": "root@afribrok.com"
		}`))
	})

	doc, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "AfriBrok", doc.Settings.Branding.SiteName)
	assert.Equal(t, "telebirr", doc.Settings.Payments.Provider)
	assert.Equal(t, 3, doc.Version)
	assert.Equal(t, "root@afribrok.com", doc.UpdatedBy)
	require.NotNil(t, doc.UpdatedAt)
}

func TestGet_BareSettings(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"branding": {"siteName": "Bare"}, "security": {"maxLoginAttempts": 4}}`))
	})

	doc, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bare", doc.Settings.Branding.SiteName)
	assert.Equal(t, 4, doc.Settings.Security.MaxLoginAttempts)
	assert.Equal(t, 0, doc.Version)
}

func TestGet_NotFound(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := repo.Get(context.Background())
	assert.True(t, marketapi.IsNotFound(err))
}

func TestPut_SendsWholeObject(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		var body model.UpdateSettingsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 2, body.Version)
		assert.Equal(t, "New", body.Settings.Branding.SiteName)
		w.WriteHeader(http.StatusNoContent)
	})

	req := &model.UpdateSettingsRequest{Version: 2}
	req.Settings.Branding.SiteName = "New"
	doc, err := repo.Put(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, req.Settings, doc.Settings)
	assert.Equal(t, 2, doc.Version)
}
