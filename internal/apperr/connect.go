package apperr

import (
	"errors"

	"connectrpc.com/connect"
)

const (
	// MetaCode and MetaKind carry the domain code and kind on connect errors.
	MetaCode = "Tal3a-Error-Code"
	MetaKind = "Tal3a-Error-Kind"
)

// ConnectCode maps a domain code to a connect status code.
func (c Code) ConnectCode() connect.Code {
	switch c {
	case CodeAlreadyParticipant, CodeAlreadyReviewed, CodeAlreadyMarked, CodeAlreadyReported:
		return connect.CodeAlreadyExists
	case CodeUnauthenticated:
		return connect.CodeUnauthenticated
	}
	switch c.Kind() {
	case KindValidation:
		return connect.CodeInvalidArgument
	case KindState:
		return connect.CodeFailedPrecondition
	case KindAuthorization:
		return connect.CodePermissionDenied
	case KindNotFound:
		return connect.CodeNotFound
	default:
		return connect.CodeInternal
	}
}

// ToConnect converts domain errors to connect errors for client responses.
// Unknown errors become Internal with a generic message so storage details
// never leak to callers.
func ToConnect(err error) error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if !errors.As(err, &appErr) || appErr.Kind == KindInternal {
		cerr := connect.NewError(connect.CodeInternal, errors.New("an unexpected error occurred"))
		cerr.Meta().Set(MetaCode, string(CodeInternal))
		cerr.Meta().Set(MetaKind, string(KindInternal))
		return cerr
	}

	cerr := connect.NewError(appErr.Code.ConnectCode(), errors.New(appErr.Message))
	cerr.Meta().Set(MetaCode, string(appErr.Code))
	cerr.Meta().Set(MetaKind, string(appErr.Kind))
	return cerr
}

// FromConnect recovers the domain code from a connect error produced by ToConnect.
func FromConnect(err error) Code {
	var cerr *connect.Error
	if !errors.As(err, &cerr) {
		return CodeUnknown
	}
	if code := cerr.Meta().Get(MetaCode); code != "" {
		return Code(code)
	}
	return CodeUnknown
}
