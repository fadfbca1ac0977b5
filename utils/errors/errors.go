package errors

import (
	"github.com/afribrok/marketplace-bff/constant"
)

type CustomError struct {
	errType constant.ErrorType
	message string
	fields  map[string]string
}

func (c CustomError) Error() string {
	if c.message != "" {
		return c.message
	}
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

// Fields returns per-field validation messages, keyed by JSON path.
func (c CustomError) Fields() map[string]string {
	return c.fields
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetCustomErrorMessage keeps the error type but overrides the message shown to the user.
func SetCustomErrorMessage(errorType constant.ErrorType, message string) CustomError {
	return CustomError{
		errType: errorType,
		message: message,
	}
}

func SetValidationError(fields map[string]string) CustomError {
	return CustomError{
		errType: constant.ErrInvalidRequest,
		fields:  fields,
	}
}
