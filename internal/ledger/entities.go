package ledger

import (
	"math"

	"github.com/google/uuid"
	"github.com/tinoosan/consolebank/internal/errs"
)

// AccountKind enumerates the account variants. Kinds differ only in withdrawal policy.
type AccountKind string

const (
	// AccountKindSavings refuses withdrawals larger than the balance.
	AccountKindSavings AccountKind = "savings"
	// AccountKindChecking allows unlimited overdraft.
	AccountKindChecking AccountKind = "checking"
)

// WithdrawPolicy validates a withdrawal against the current balance.
type WithdrawPolicy func(balance, amount float64) error

// StrictPolicy succeeds only when 0 < amount <= balance.
func StrictPolicy(balance, amount float64) error {
	if !(amount > 0) {
		return errs.ErrInvalid
	}
	if amount > balance {
		return errs.ErrInsufficientFunds
	}
	return nil
}

// OverdraftPolicy succeeds whenever amount > 0; the balance may go negative.
func OverdraftPolicy(_, amount float64) error {
	if !(amount > 0) {
		return errs.ErrInvalid
	}
	return nil
}

// Policy returns the withdrawal policy for the kind. Unknown kinds get StrictPolicy.
func (k AccountKind) Policy() WithdrawPolicy {
	if k == AccountKindChecking {
		return OverdraftPolicy
	}
	return StrictPolicy
}

// Valid reports whether k is a known kind.
func (k AccountKind) Valid() bool {
	switch k {
	case AccountKindSavings, AccountKindChecking:
		return true
	}
	return false
}

// Account is a single ledger entry owned by a name.
// Owner is the lookup key and is not unique.
type Account struct {
	ID      uuid.UUID
	Owner   string
	Kind    AccountKind
	Balance float64
}

// NewAccount returns an account with a fresh ID.
func NewAccount(kind AccountKind, owner string, initial float64) Account {
	return Account{ID: uuid.New(), Owner: owner, Kind: kind, Balance: initial}
}

// Deposit adds amount to the balance. Non-positive amounts, and amounts that would
// overflow the balance, are rejected and leave it unchanged.
func (a *Account) Deposit(amount float64) error {
	if !(amount > 0) || math.IsInf(amount, 0) {
		return errs.ErrInvalid
	}
	next := a.Balance + amount
	if math.IsInf(next, 0) {
		return errs.ErrInvalid
	}
	a.Balance = next
	return nil
}

// Withdraw subtracts amount when the kind's policy allows it and the result stays finite.
func (a *Account) Withdraw(amount float64) error {
	if math.IsInf(amount, 0) {
		return errs.ErrInvalid
	}
	if err := a.Kind.Policy()(a.Balance, amount); err != nil {
		return err
	}
	next := a.Balance - amount
	if math.IsInf(next, 0) {
		return errs.ErrInvalid
	}
	a.Balance = next
	return nil
}
