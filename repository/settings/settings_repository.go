package settings

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/afribrok/marketplace-bff/model"
	"github.com/afribrok/marketplace-bff/thirdparty/marketapi"
)

type API struct {
	client *marketapi.Client
}

type SettingsRepository interface {
	Get(ctx context.Context) (*model.PlatformSettingsDocument, error)
	Put(ctx context.Context, req *model.UpdateSettingsRequest) (*model.PlatformSettingsDocument, error)
}

func NewSettingsRepository(client *marketapi.Client) SettingsRepository {
	return &API{client: client}
}

const platformSettingsPath = "/v1/super/platform-settings"

// documentDTO accepts both the wrapped {settings, version} shape and a bare
// settings object.
type documentDTO struct {
	Settings  json.RawMessage `json:"settings"`
	Version   *int            `json:"version"`
	UpdatedAt *time.Time      `json:"updatedAt"`
	UpdatedBy *string         `json:"updatedBy"`
}

func (a *API) Get(ctx context.Context) (*model.PlatformSettingsDocument, error) {
	var raw json.RawMessage
	if err := a.client.Get(ctx, platformSettingsPath, nil, &raw); err != nil {
		return nil, err
	}
	return toDocument(raw, nil)
}

// Put replaces the whole settings object. An empty response body is treated
// as an echo of what was sent.
func (a *API) Put(ctx context.Context, req *model.UpdateSettingsRequest) (*model.PlatformSettingsDocument, error) {
	var raw json.RawMessage
	if err := a.client.Put(ctx, platformSettingsPath, req, &raw); err != nil {
		return nil, err
	}
	return toDocument(raw, req)
}

func toDocument(raw json.RawMessage, sent *model.UpdateSettingsRequest) (*model.PlatformSettingsDocument, error) {
	doc := &model.PlatformSettingsDocument{}
	if sent != nil {
		doc.Settings = sent.Settings
		doc.Version = sent.Version
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return doc, nil
	}

	var d documentDTO
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	body := raw
	if len(d.Settings) > 0 {
		body = d.Settings
	}
	var settings model.PlatformSettings
	if err := json.Unmarshal(body, &settings); err != nil {
		return nil, err
	}
	doc.Settings = settings
	if d.Version != nil {
		doc.Version = *d.Version
	}
	doc.UpdatedAt = d.UpdatedAt
	if d.UpdatedBy != nil {
		doc.UpdatedBy = *d.UpdatedBy
	}
	return doc, nil
}
