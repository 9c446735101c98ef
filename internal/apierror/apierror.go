// Package apierror translates service errors into transport responses.
package apierror

import (
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/authgate-server/internal/model"
)

const (
	msgUnauthenticated = "authentication credentials were not provided."
	msgUnavailable     = "service temporarily unavailable, please retry."
	msgInternal        = "internal server error"
	msgNotFound        = "not found."
)

// APIError is an error ready to be written to a client.
type APIError struct {
	HTTPStatus int
	GRPCCode   codes.Code
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// GRPCStatus lets status.FromError and status.Code understand APIError.
func (e *APIError) GRPCStatus() *status.Status {
	return status.New(e.GRPCCode, e.Message)
}

func New(httpStatus int, code codes.Code, msg string) *APIError {
	return &APIError{HTTPStatus: httpStatus, GRPCCode: code, Message: msg}
}

// kinds maps each error kind to its transport codes. The first match wins.
var kinds = []struct {
	kind       error
	httpStatus int
	code       codes.Code
}{
	{model.ErrUnavailable, http.StatusServiceUnavailable, codes.Unavailable},
	{model.ErrValidation, http.StatusBadRequest, codes.InvalidArgument},
	{model.ErrEmailTaken, http.StatusBadRequest, codes.AlreadyExists},
	{model.ErrOwnershipViolation, http.StatusForbidden, codes.PermissionDenied},
	{model.ErrExpiredToken, http.StatusUnauthorized, codes.Unauthenticated},
	{model.ErrMalformedToken, http.StatusUnauthorized, codes.Unauthenticated},
	{model.ErrUserNotFound, http.StatusUnauthorized, codes.Unauthenticated},
	{model.ErrUserDeactivated, http.StatusUnauthorized, codes.Unauthenticated},
	{model.ErrSessionConflict, http.StatusUnauthorized, codes.Unauthenticated},
	{model.ErrOTPMismatch, http.StatusUnauthorized, codes.Unauthenticated},
	{model.ErrInvalidCredentials, http.StatusUnauthorized, codes.Unauthenticated},
	{model.ErrUnauthenticated, http.StatusUnauthorized, codes.Unauthenticated},
	{model.ErrNotFound, http.StatusNotFound, codes.NotFound},
}

// FromError classifies err. Rejections keep their reason as the message;
// unknown errors become a generic internal error so no detail leaks.
func FromError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	for _, k := range kinds {
		if !errors.Is(err, k.kind) {
			continue
		}
		return New(k.httpStatus, k.code, message(err, k.kind))
	}

	return New(http.StatusInternalServerError, codes.Internal, msgInternal)
}

func message(err, kind error) string {
	var rej *model.Rejection
	if errors.As(err, &rej) && rej.Reason != "" {
		return rej.Reason
	}

	switch kind {
	case model.ErrUnavailable:
		return msgUnavailable
	case model.ErrUnauthenticated:
		return msgUnauthenticated
	case model.ErrNotFound:
		return msgNotFound
	default:
		return kind.Error()
	}
}

// Unauthenticated is returned when an endpoint requires credentials the
// request did not carry.
func Unauthenticated() *APIError {
	return New(http.StatusUnauthorized, codes.Unauthenticated, msgUnauthenticated)
}

// GRPC converts err into a gRPC status error.
func GRPC(err error) error {
	if err == nil {
		return nil
	}
	return FromError(err).GRPCStatus().Err()
}
