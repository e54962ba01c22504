package dictionary

import "github.com/tinoosan/consolebank/internal/ledger"

type KindDef struct {
	Kind      ledger.AccountKind
	Label     string
	MenuLabel string
}

var curated = []KindDef{
	{Kind: ledger.AccountKindSavings, Label: "savings", MenuLabel: "Create Savings Account"},
	{Kind: ledger.AccountKindChecking, Label: "checking", MenuLabel: "Create Checking Account"},
}

// Kinds returns the curated kinds in menu order.
func Kinds() []KindDef {
	out := make([]KindDef, len(curated))
	copy(out, curated)
	return out
}

// Label returns the lowercase label used in messages, e.g. "savings".
// Unknown kinds fall back to the raw kind string.
func Label(k ledger.AccountKind) string {
	for _, d := range curated {
		if d.Kind == k {
			return d.Label
		}
	}
	return string(k)
}
