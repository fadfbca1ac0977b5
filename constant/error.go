package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrForbidden
	ErrAuthRequired
	ErrUpstream
	ErrNetwork
	ErrNotModified
	ErrTooManyRequests
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:         "success",
	ErrInternal:        "error internal",
	ErrNotFound:        "data not found",
	ErrInvalidRequest:  "invalid request",
	ErrUnauthorize:     "unauthorize request",
	ErrForbidden:       "you do not have access to this page",
	ErrAuthRequired:    "please sign in to continue",
	ErrUpstream:        "request to marketplace api failed",
	ErrNetwork:         "unable to reach marketplace api",
	ErrNotModified:     "no changes to save",
	ErrTooManyRequests: "too many attempts, try again later",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:         http.StatusOK,
	ErrInternal:        http.StatusInternalServerError,
	ErrNotFound:        http.StatusNotFound,
	ErrInvalidRequest:  http.StatusBadRequest,
	ErrUnauthorize:     http.StatusUnauthorized,
	ErrForbidden:       http.StatusForbidden,
	ErrAuthRequired:    http.StatusUnauthorized,
	ErrUpstream:        http.StatusBadGateway,
	ErrNetwork:         http.StatusBadGateway,
	ErrNotModified:     http.StatusConflict,
	ErrTooManyRequests: http.StatusTooManyRequests,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:         "0000",
	ErrInternal:        "0001",
	ErrNotFound:        "0002",
	ErrInvalidRequest:  "0003",
	ErrUnauthorize:     "0004",
	ErrForbidden:       "0005",
	ErrAuthRequired:    "0006",
	ErrUpstream:        "0007",
	ErrNetwork:         "0008",
	ErrNotModified:     "0009",
	ErrTooManyRequests: "0010",
}
