package validation

import (
	"errors"
	"fmt"
)

// ErrorKind identifies the consensus rule a header violated.
type ErrorKind string

// These constants identify the kinds of RuleError.
const (
	// ErrFutureTimestamp indicates the header timestamp is beyond now + the future time limit.
	ErrFutureTimestamp = ErrorKind("ErrFutureTimestamp")

	// ErrTimestampTooLow indicates the header timestamp is not after the median
	// of its ancestors, or no ancestors were available.
	ErrTimestampTooLow = ErrorKind("ErrTimestampTooLow")

	// ErrInvalidPowData indicates the pow payload is malformed for its algorithm.
	ErrInvalidPowData = ErrorKind("ErrInvalidPowData")

	// ErrDifficultyTooLow indicates the achieved difficulty is below target.
	ErrDifficultyTooLow = ErrorKind("ErrDifficultyTooLow")

	// ErrPowVerificationFailed indicates the proof of work could not be computed.
	ErrPowVerificationFailed = ErrorKind("ErrPowVerificationFailed")

	// ErrStorageUnavailable indicates chain storage could not serve a read.
	ErrStorageUnavailable = ErrorKind("ErrStorageUnavailable")

	// ErrArithmeticOverflow indicates accumulated difficulty would overflow.
	ErrArithmeticOverflow = ErrorKind("ErrArithmeticOverflow")

	// ErrInvalidChainLink indicates the header does not extend the supplied previous header.
	ErrInvalidChainLink = ErrorKind("ErrInvalidChainLink")
)

func (e ErrorKind) Error() string {
	return string(e)
}

// RuleError is returned when a header fails validation. It matches both its
// Kind and its underlying cause with errors.Is.
type RuleError struct {
	Kind        ErrorKind
	Description string
	Err         error
}

func (e RuleError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Description, e.Err)
	}
	return e.Description
}

func (e RuleError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func ruleError(kind ErrorKind, format string, args ...any) RuleError {
	return RuleError{Kind: kind, Description: fmt.Sprintf(format, args...)}
}

func wrapRuleError(kind ErrorKind, err error, format string, args ...any) RuleError {
	return RuleError{Kind: kind, Description: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind of the RuleError in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var re RuleError
	if errors.As(err, &re) {
		return re.Kind, true
	}
	return "", false
}

// IsStorageError reports whether err is a transient storage failure rather
// than a verdict on the header.
func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorageUnavailable)
}
