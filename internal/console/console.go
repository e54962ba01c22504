// Package console runs the interactive menu over a reader and writer.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/tinoosan/consolebank/internal/dictionary"
	"github.com/tinoosan/consolebank/internal/service/account"
)

// Menu choices. Create choices follow dictionary.Kinds order.
const (
	choiceCreateSavings  = 1
	choiceCreateChecking = 2
	choiceDeposit        = 3
	choiceWithdraw       = 4
	choiceBalance        = 5
	choiceExit           = 6
)

// Console owns one menu session. It is not safe for concurrent use.
type Console struct {
	svc    account.Service
	in     *tokenReader
	out    io.Writer
	logger *slog.Logger
}

func New(svc account.Service, in io.Reader, out io.Writer, logger *slog.Logger) *Console {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Console{svc: svc, in: newTokenReader(in), out: out, logger: logger}
}

// Run loops until the user picks Exit, input ends, or ctx is cancelled.
// Business failures are printed and never end the loop.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.printMenu()
		tok, err := c.prompt(ctx, promptChoice)
		if err != nil {
			return endOfInput(err)
		}
		choice := parseChoice(tok)
		if choice == choiceExit {
			c.logger.Debug("exit requested")
			return nil
		}
		if err := c.dispatch(ctx, choice); err != nil {
			return endOfInput(err)
		}
	}
}

func (c *Console) printMenu() {
	n := 1
	for _, k := range dictionary.Kinds() {
		fmt.Fprintf(c.out, "%d. %s\n", n, k.MenuLabel)
		n++
	}
	fmt.Fprintf(c.out, "%d. Deposit\n", choiceDeposit)
	fmt.Fprintf(c.out, "%d. Withdraw\n", choiceWithdraw)
	fmt.Fprintf(c.out, "%d. Check Balance\n", choiceBalance)
	fmt.Fprintf(c.out, "%d. Exit\n", choiceExit)
}

// dispatch runs one menu action. It only returns input errors.
func (c *Console) dispatch(ctx context.Context, choice int) error {
	switch choice {
	case choiceCreateSavings, choiceCreateChecking:
		owner, amount, err := c.ownerAndAmount(ctx, promptInitial)
		if err != nil {
			return err
		}
		kind := dictionary.Kinds()[choice-choiceCreateSavings].Kind
		acc, err := c.svc.Create(ctx, kind, owner, amount)
		if err != nil {
			c.println(msgInvalidInitial)
			return nil
		}
		c.println(createdMsg(acc))
	case choiceDeposit:
		owner, amount, err := c.ownerAndAmount(ctx, promptDeposit)
		if err != nil {
			return err
		}
		if _, err := c.svc.Deposit(ctx, owner, amount); err != nil {
			c.println(depositFailure(owner, err))
			return nil
		}
		c.println(depositedMsg(owner, amount))
	case choiceWithdraw:
		owner, amount, err := c.ownerAndAmount(ctx, promptWithdrawal)
		if err != nil {
			return err
		}
		acc, err := c.svc.Withdraw(ctx, owner, amount)
		if err != nil {
			c.println(withdrawFailure(owner, err))
			return nil
		}
		c.println(withdrewMsg(acc, amount))
	case choiceBalance:
		owner, err := c.prompt(ctx, promptOwner)
		if err != nil {
			return err
		}
		acc, err := c.svc.Balance(ctx, owner)
		if err != nil {
			c.println(notFoundMsg(owner))
			return nil
		}
		c.println(balanceMsg(acc))
	default:
		c.println(msgInvalidChoice)
	}
	return nil
}

func (c *Console) ownerAndAmount(ctx context.Context, amountPrompt string) (string, float64, error) {
	owner, err := c.prompt(ctx, promptOwner)
	if err != nil {
		return "", 0, err
	}
	tok, err := c.prompt(ctx, amountPrompt)
	if err != nil {
		return "", 0, err
	}
	return owner, parseAmount(tok), nil
}

func (c *Console) prompt(ctx context.Context, text string) (string, error) {
	fmt.Fprint(c.out, text)
	return c.in.next(ctx)
}

func (c *Console) println(msg string) {
	fmt.Fprintln(c.out, msg)
}

// endOfInput treats exhausted input as a normal exit.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
