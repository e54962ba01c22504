package dictionary

import (
	"testing"

	"github.com/tinoosan/consolebank/internal/ledger"
)

func TestKindsOrderAndLabels(t *testing.T) {
	kinds := Kinds()
	if len(kinds) != 2 {
		t.Fatalf("expected 2 kinds, got %d", len(kinds))
	}
	if kinds[0].Kind != ledger.AccountKindSavings || kinds[1].Kind != ledger.AccountKindChecking {
		t.Fatalf("unexpected order: %+v", kinds)
	}
	if Label(ledger.AccountKindChecking) != "checking" {
		t.Fatalf("checking label: %q", Label(ledger.AccountKindChecking))
	}
	if Label("brokerage") != "brokerage" {
		t.Fatalf("fallback label: %q", Label("brokerage"))
	}
}

func TestKindsReturnsCopy(t *testing.T) {
	kinds := Kinds()
	kinds[0].Label = "changed"
	if Label(ledger.AccountKindSavings) != "savings" {
		t.Fatalf("curated catalog was mutated")
	}
}
