package account

import (
	"errors"

	"github.com/tinoosan/consolebank/internal/errs"
	"github.com/tinoosan/consolebank/internal/ledger"
)

// OpError wraps a ledger failure with the operation, the owner key and,
// when an account was resolved, its kind.
type OpError struct {
	Op    string
	Owner string
	Kind  ledger.AccountKind
	Err   error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := e.Op + " " + e.Owner
	if e.Kind != "" {
		base += " (" + string(e.Kind) + ")"
	}
	if e.Err != nil {
		base += ": " + e.Err.Error()
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// KindOf returns the account kind recorded on err, if any.
func KindOf(err error) (ledger.AccountKind, bool) {
	var oe *OpError
	if errors.As(err, &oe) && oe.Kind != "" {
		return oe.Kind, true
	}
	return "", false
}

// outcome maps an error to the metrics label.
func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, errs.ErrNotFound):
		return "not_found"
	case errors.Is(err, errs.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, errs.ErrInvalid):
		return "invalid_amount"
	default:
		return "error"
	}
}
