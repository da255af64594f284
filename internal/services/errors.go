package services

import (
	"github.com/samber/oops"
)

// Error codes carried by service errors. The HTTP layer maps them to status codes.
const (
	CodeInvalidInput       = "INVALID_INPUT"
	CodeInvalidDate        = "INVALID_DATE"
	CodeDuplicateEmail     = "DUPLICATE_EMAIL"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeAuthMissing        = "AUTH_MISSING"
	CodeTokenInvalid       = "TOKEN_INVALID"
	CodeTokenExpired       = "TOKEN_EXPIRED"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodeTokenSigning       = "TOKEN_SIGNING_FAILED"
)

// HasCode reports whether err carries the given error code.
func HasCode(err error, code string) bool {
	if err == nil {
		return false
	}
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return false
	}
	return oopsErr.Code() == code
}

func invalidInput(format string, args ...any) error {
	return oops.Code(CodeInvalidInput).Errorf(format, args...)
}
