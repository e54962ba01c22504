// Package account implements the ledger rules: kind-specific withdrawals,
// owner-keyed lookup with first-match-wins, and duplicate owners allowed.
package account

import (
	"context"
	"io"
	"log/slog"
	"math"

	"github.com/tinoosan/consolebank/internal/errs"
	"github.com/tinoosan/consolebank/internal/ledger"
)

type Repo interface {
	ListAccounts(ctx context.Context) ([]ledger.Account, error)
	AccountByOwner(ctx context.Context, owner string) (ledger.Account, error)
}

type Writer interface {
	CreateAccount(ctx context.Context, a ledger.Account) (ledger.Account, error)
	UpdateAccount(ctx context.Context, a ledger.Account) (ledger.Account, error)
}

type Service interface {
	Create(ctx context.Context, kind ledger.AccountKind, owner string, initial float64) (ledger.Account, error)
	CreateSavings(ctx context.Context, owner string, initial float64) (ledger.Account, error)
	CreateChecking(ctx context.Context, owner string, initial float64) (ledger.Account, error)
	Deposit(ctx context.Context, owner string, amount float64) (ledger.Account, error)
	Withdraw(ctx context.Context, owner string, amount float64) (ledger.Account, error)
	Balance(ctx context.Context, owner string) (ledger.Account, error)
	List(ctx context.Context) ([]ledger.Account, error)
}

// Operation names used in errors, logs and metrics.
const (
	OpCreate   = "create"
	OpDeposit  = "deposit"
	OpWithdraw = "withdraw"
	OpBalance  = "balance"
)

type service struct {
	repo    Repo
	writer  Writer
	logger  *slog.Logger
	metrics *Metrics
}

// Option configures the service.
type Option func(*service)

func WithLogger(l *slog.Logger) Option { return func(s *service) { s.logger = l } }

func WithMetrics(m *Metrics) Option { return func(s *service) { s.metrics = m } }

func New(repo Repo, writer Writer, opts ...Option) Service {
	s := &service{repo: repo, writer: writer}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

func (s *service) CreateSavings(ctx context.Context, owner string, initial float64) (ledger.Account, error) {
	return s.Create(ctx, ledger.AccountKindSavings, owner, initial)
}

func (s *service) CreateChecking(ctx context.Context, owner string, initial float64) (ledger.Account, error) {
	return s.Create(ctx, ledger.AccountKindChecking, owner, initial)
}

// Create appends a new account. The initial balance is not range-checked, so a
// negative opening balance is accepted. A second account for an existing owner
// is created but can never be reached by owner lookup.
func (s *service) Create(ctx context.Context, kind ledger.AccountKind, owner string, initial float64) (ledger.Account, error) {
	acc, err := s.create(ctx, kind, owner, initial)
	s.metrics.observe(OpCreate, err)
	return acc, err
}

func (s *service) create(ctx context.Context, kind ledger.AccountKind, owner string, initial float64) (ledger.Account, error) {
	if !kind.Valid() || owner == "" || math.IsNaN(initial) || math.IsInf(initial, 0) {
		return ledger.Account{}, &OpError{Op: OpCreate, Owner: owner, Kind: kind, Err: errs.ErrInvalid}
	}
	if existing, err := s.repo.AccountByOwner(ctx, owner); err == nil {
		s.logger.Warn("duplicate owner; new account is unreachable by owner lookup",
			"owner", owner, "reachable_account_id", existing.ID.String())
	}
	created, err := s.writer.CreateAccount(ctx, ledger.NewAccount(kind, owner, initial))
	if err != nil {
		return ledger.Account{}, &OpError{Op: OpCreate, Owner: owner, Kind: kind, Err: err}
	}
	s.logger.Debug("account created", "op", OpCreate, "owner", owner, "kind", string(kind), "account_id", created.ID.String())
	return created, nil
}

// Deposit adds amount to the first account owned by owner.
func (s *service) Deposit(ctx context.Context, owner string, amount float64) (ledger.Account, error) {
	acc, err := s.apply(ctx, OpDeposit, owner, func(a *ledger.Account) error { return a.Deposit(amount) })
	s.metrics.observe(OpDeposit, err)
	return acc, err
}

// Withdraw removes amount from the first account owned by owner, subject to its kind's policy.
func (s *service) Withdraw(ctx context.Context, owner string, amount float64) (ledger.Account, error) {
	acc, err := s.apply(ctx, OpWithdraw, owner, func(a *ledger.Account) error { return a.Withdraw(amount) })
	s.metrics.observe(OpWithdraw, err)
	return acc, err
}

// Balance returns the first account owned by owner without changing it.
func (s *service) Balance(ctx context.Context, owner string) (ledger.Account, error) {
	acc, err := s.repo.AccountByOwner(ctx, owner)
	if err != nil {
		err = &OpError{Op: OpBalance, Owner: owner, Err: err}
		s.logger.Info("balance lookup failed", "op", OpBalance, "owner", owner, "err", err)
	}
	s.metrics.observe(OpBalance, err)
	return acc, err
}

func (s *service) List(ctx context.Context) ([]ledger.Account, error) {
	return s.repo.ListAccounts(ctx)
}

// apply resolves the owner, runs mutate on a copy and persists it only on success.
func (s *service) apply(ctx context.Context, op, owner string, mutate func(*ledger.Account) error) (ledger.Account, error) {
	acc, err := s.repo.AccountByOwner(ctx, owner)
	if err != nil {
		s.logger.Info("account lookup failed", "op", op, "owner", owner, "err", err)
		return ledger.Account{}, &OpError{Op: op, Owner: owner, Err: err}
	}
	if err := mutate(&acc); err != nil {
		s.logger.Info("operation rejected", "op", op, "owner", owner, "account_id", acc.ID.String(), "err", err)
		return ledger.Account{}, &OpError{Op: op, Owner: owner, Kind: acc.Kind, Err: err}
	}
	updated, err := s.writer.UpdateAccount(ctx, acc)
	if err != nil {
		return ledger.Account{}, &OpError{Op: op, Owner: owner, Kind: acc.Kind, Err: err}
	}
	s.logger.Debug("account updated", "op", op, "owner", owner, "account_id", updated.ID.String(), "balance", updated.Balance)
	return updated, nil
}
