package context

import (
	"context"

	"github.com/afribrok/marketplace-bff/constant"
	"github.com/afribrok/marketplace-bff/model"
)

func WithSession(ctx context.Context, s model.Session) context.Context {
	return context.WithValue(ctx, constant.SessionKey, s)
}

func GetSession(ctx context.Context) (model.Session, bool) {
	v := ctx.Value(constant.SessionKey)
	if v == nil {
		return model.Session{}, false
	}
	s, ok := v.(model.Session)
	return s, ok
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, constant.RequestIDKey, id)
}

func GetRequestID(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.RequestIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
