package memory

// Package memory keeps the ledger's accounts for the lifetime of the process.
// Access is single-threaded, so the store holds no locks.
import (
	"context"

	"github.com/google/uuid"
	"github.com/tinoosan/consolebank/internal/errs"
	"github.com/tinoosan/consolebank/internal/ledger"
)

// Store is an insertion-ordered account store. Accounts are never removed.
type Store struct {
	accounts []ledger.Account
	// byID maps an account ID to its position in accounts
	byID map[uuid.UUID]int
}

// New constructs an empty in-memory store.
func New() *Store {
	return &Store{byID: make(map[uuid.UUID]int)}
}

// SeedAccount appends an account directly, bypassing the service. Used by tests.
func (s *Store) SeedAccount(a ledger.Account) {
	s.byID[a.ID] = len(s.accounts)
	s.accounts = append(s.accounts, a)
}

// Len returns the number of stored accounts.
func (s *Store) Len() int { return len(s.accounts) }

// CreateAccount appends a to the store. Owners may repeat; IDs may not.
func (s *Store) CreateAccount(_ context.Context, a ledger.Account) (ledger.Account, error) {
	if a.ID == uuid.Nil {
		return ledger.Account{}, errs.ErrInvalid
	}
	if _, ok := s.byID[a.ID]; ok {
		return ledger.Account{}, errs.ErrInvalid
	}
	s.SeedAccount(a)
	return a, nil
}

// UpdateAccount replaces the stored account with the same ID.
func (s *Store) UpdateAccount(_ context.Context, a ledger.Account) (ledger.Account, error) {
	i, ok := s.byID[a.ID]
	if !ok {
		return ledger.Account{}, errs.ErrNotFound
	}
	s.accounts[i] = a
	return a, nil
}

// ListAccounts returns a copy of all accounts in creation order.
func (s *Store) ListAccounts(_ context.Context) ([]ledger.Account, error) {
	out := make([]ledger.Account, len(s.accounts))
	copy(out, s.accounts)
	return out, nil
}

// AccountByOwner returns the first-created account whose owner equals owner exactly.
func (s *Store) AccountByOwner(_ context.Context, owner string) (ledger.Account, error) {
	for _, a := range s.accounts {
		if a.Owner == owner {
			return a, nil
		}
	}
	return ledger.Account{}, errs.ErrNotFound
}
