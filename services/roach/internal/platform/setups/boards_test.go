package setups

import (
	"testing"

	"roach-go/types"
)

func TestBoardsValidate(t *testing.T) {
	for _, m := range []types.PinMap{UnoR2, UnoAlt, PicoRoach} {
		if err := m.Validate(); err != nil {
			t.Fatalf("%s: %v", m.Name, err)
		}
	}
}

func TestHostSelectsUnoR2(t *testing.T) {
	if got := Selected(); got.Name != UnoR2.Name {
		t.Fatalf("Selected()=%q want %q", got.Name, UnoR2.Name)
	}
}
