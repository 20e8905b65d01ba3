package infra

import (
	"errors"

	"thejulge/internal/pkg/errs"
)

type GatewayErrorKind string

// The core only distinguishes "no response reached" from "the remote answered
// with a structured message". Not-found gets its own kind because handlers map
// it to a different status.
const (
	KindUnreachable GatewayErrorKind = "UNREACHABLE"
	KindRejected    GatewayErrorKind = "REJECTED"
	KindNotFound    GatewayErrorKind = "NOT_FOUND"
)

// GatewayError tags a failure talking to the remote job-board API with a kind
// and, for rejections, the server-supplied message to surface verbatim.
type GatewayError struct {
	Kind    GatewayErrorKind
	Message string
	err     error
}

func (e GatewayError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.Message + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.Message
}

func (e GatewayError) Unwrap() error {
	return e.err
}

func WrapGatewayErr(kind GatewayErrorKind, msg string, err error) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return GatewayError{Kind: kind, Message: msg, err: err}
}

func IsKind(err error, kind GatewayErrorKind) bool {
	var e GatewayError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// RemoteMessage extracts the server-supplied message from a rejection, or ""
// when err is not a GatewayError.
func RemoteMessage(err error) string {
	var e GatewayError
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}
