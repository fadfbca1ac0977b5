package errors

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/afribrok/marketplace-bff/constant"
	"github.com/afribrok/marketplace-bff/thirdparty/marketapi"
)

// FromAPIError converts a marketplace API failure into the error shown to the user.
func FromAPIError(err error) CustomError {
	if err == nil {
		return SetCustomError(constant.Successful)
	}
	var ce CustomError
	if stderrors.As(err, &ce) {
		return ce
	}
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return SetCustomError(constant.ErrNetwork)
	}

	apiErr, ok := marketapi.AsAPIError(err)
	if !ok {
		return SetCustomError(constant.ErrInternal)
	}
	switch {
	case apiErr.IsAuth():
		return SetCustomError(constant.ErrAuthRequired)
	case apiErr.IsNetwork():
		return SetCustomError(constant.ErrNetwork)
	case apiErr.Status == http.StatusNotFound:
		return SetCustomError(constant.ErrNotFound)
	case apiErr.Status == http.StatusBadRequest || apiErr.Status == http.StatusUnprocessableEntity:
		return SetCustomErrorMessage(constant.ErrInvalidRequest, apiErr.Message)
	}
	return SetCustomErrorMessage(constant.ErrUpstream, apiErr.Message)
}
