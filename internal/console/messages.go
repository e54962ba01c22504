package console

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/tinoosan/consolebank/internal/dictionary"
	"github.com/tinoosan/consolebank/internal/errs"
	"github.com/tinoosan/consolebank/internal/ledger"
	"github.com/tinoosan/consolebank/internal/service/account"
)

const (
	promptChoice     = "Enter choice: "
	promptOwner      = "Enter owner's name: "
	promptInitial    = "Enter initial balance: "
	promptDeposit    = "Enter deposit amount: "
	promptWithdrawal = "Enter withdrawal amount: "

	msgInvalidChoice   = "Invalid choice. Try again."
	msgInvalidInitial  = "Invalid initial balance."
	msgInvalidDeposit  = "Invalid deposit amount."
	msgInvalidWithdraw = "Invalid withdrawal amount."
	msgInvalidStrict   = "Invalid withdrawal amount or insufficient funds."
)

// formatAmount prints v with six significant digits, trailing zeros dropped.
// Infinities print as "inf" and "-inf".
func formatAmount(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func createdMsg(a ledger.Account) string {
	return fmt.Sprintf("Created %s account for %s with initial balance $%s", dictionary.Label(a.Kind), a.Owner, formatAmount(a.Balance))
}

func depositedMsg(owner string, amount float64) string {
	return fmt.Sprintf("Deposited $%s to %s's account.", formatAmount(amount), owner)
}

func withdrewMsg(a ledger.Account, amount float64) string {
	return fmt.Sprintf("Withdrew $%s from %s's %s account.", formatAmount(amount), a.Owner, dictionary.Label(a.Kind))
}

func balanceMsg(a ledger.Account) string {
	return fmt.Sprintf("%s's account balance: $%s", a.Owner, formatAmount(a.Balance))
}

func notFoundMsg(owner string) string {
	return fmt.Sprintf("Account for %s not found.", owner)
}

func depositFailure(owner string, err error) string {
	if errors.Is(err, errs.ErrNotFound) {
		return notFoundMsg(owner)
	}
	return msgInvalidDeposit
}

// withdrawFailure picks the text for the refusing account's kind. Checking
// accounts only ever refuse on amount, so their text omits funds.
func withdrawFailure(owner string, err error) string {
	if errors.Is(err, errs.ErrNotFound) {
		return notFoundMsg(owner)
	}
	if kind, ok := account.KindOf(err); ok && kind == ledger.AccountKindChecking {
		return msgInvalidWithdraw
	}
	return msgInvalidStrict
}
