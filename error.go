package saleorauth

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoToken is returned when a login response carries neither a token nor
// any field-level errors.
var ErrNoToken = errors.New("login response contained no token")

// AccountError is a field-level error reported by the tokenCreate mutation.
type AccountError struct {
	Code    string
	Field   string
	Message string
}

func (e AccountError) String() string {
	if e.Field != "" {
		return fmt.Sprintf("%s (%s): %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoginError is returned when the API refuses to issue a token and reports
// field-level errors instead.
type LoginError struct {
	Errors []AccountError
}

func (err *LoginError) Error() string {
	msgs := make([]string, len(err.Errors))
	for i, e := range err.Errors {
		msgs[i] = e.String()
	}
	return fmt.Sprintf("login rejected: %s", strings.Join(msgs, "; "))
}

func (err *LoginError) Rejected() bool {
	return true
}

// IsRejected returns true if err means the API refused to issue a token for
// the supplied credentials. It is equivalent to finding the first error in
// err's chain that implements
//
//	type rejected interface {
//	    Rejected() bool
//	}
//
// and then calling the Rejected() method.
func IsRejected(err error) bool {
	var r interface {
		Rejected() bool
	}
	return errors.As(err, &r) && r.Rejected()
}
