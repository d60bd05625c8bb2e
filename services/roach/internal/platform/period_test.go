package platform

import "testing"

func TestPeriodFromHz(t *testing.T) {
	cases := map[uint64]uint64{
		0:       0,
		490:     2_040_816,
		1000:    1_000_000,
		500_000: 2_000,
	}
	for hz, want := range cases {
		if got := periodFromHz(hz); got != want {
			t.Fatalf("periodFromHz(%d)=%d want %d", hz, got, want)
		}
	}
}
