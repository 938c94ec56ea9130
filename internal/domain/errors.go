package domain

import "errors"

// ErrorKind classifies failures so the HTTP layer can map them to status
// codes without inspecting message text.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindValidation: missing/malformed/out-of-range input.
	KindValidation
	// KindUnauthorized: missing or expired credentials.
	KindUnauthorized
	// KindForbidden: identity known but not allowed (e.g. unverified).
	KindForbidden
	KindNotFound
	// KindIntegrity: signature or amount/order mismatch; proof of an
	// invalid transaction, local state flips to failed.
	KindIntegrity
	// KindNotCompleted: gateway reports a pending payment; retryable,
	// local state untouched.
	KindNotCompleted
	// KindUpstream: gateway/geocoder/mail relay unreachable or erroring.
	KindUpstream
	// KindNotReady: underlying schema not migrated yet.
	KindNotReady
)

type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func E(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf walks the chain for a classified error; unclassified errors
// (persistence failures and the like) report KindUnknown and surface as
// server errors.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}

var (
	ErrDonationNotFound     = E(KindNotFound, "donation order not found")
	ErrTrackingNotFound     = E(KindNotFound, "tracking record not found")
	ErrUserNotFound         = E(KindNotFound, "user not found")
	ErrVerifiedUserNotFound = E(KindNotFound, "verified user not found")
	ErrNothingToUpdate      = E(KindValidation, "no fields provided to update")
	ErrInvalidSession       = E(KindUnauthorized, "invalid or expired session")
)
