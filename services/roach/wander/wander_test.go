//go:build !arduino && !rp2040

package wander

import (
	"testing"

	"roach-go/services/roach"
	"roach-go/services/roach/internal/platform"
	"roach-go/services/roach/internal/platform/setups"
	"roach-go/types"
)

func TestCruise(t *testing.T) {
	cases := map[types.LightLevel]types.MotorSpeed{0: 30, 1023: 100, 511: 64}
	for l, want := range cases {
		if got := Cruise(l); got != want {
			t.Fatalf("Cruise(%d)=%d want %d", l, got, want)
		}
	}
}

func TestSpeeds(t *testing.T) {
	cases := []struct {
		name        string
		b           types.Bumpers
		left, right types.MotorSpeed
	}{
		{"idle dark", types.BumpersIdle, CruiseMin, CruiseMin},
		{"left front", 0xE0, BackSlow, BackFast},
		{"right front", 0xD0, BackFast, BackSlow},
		{"both front", 0xC0, BackSlow, BackFast},
		{"left rear", 0x70, CruiseMax, CruiseMax},
		{"right rear", 0xB0, CruiseMax, CruiseMax},
	}
	for _, c := range cases {
		l, r := Speeds(c.b, 0)
		if l != c.left || r != c.right {
			t.Fatalf("%s: got (%d,%d) want (%d,%d)", c.name, l, r, c.left, c.right)
		}
		if !l.Valid() || !r.Valid() {
			t.Fatalf("%s: produced an invalid speed", c.name)
		}
	}
}

func TestSenseActThroughShared(t *testing.T) {
	hw := platform.NewUnoHost()
	r, err := roach.New(hw, setups.UnoR2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r.Init()
	for _, n := range setups.UnoR2.Bumpers {
		p, _ := hw.FakePin(n)
		p.Drive(true)
	}
	adc, _ := hw.FakeADC(0)
	adc.SetLevel10(1023)

	snap := roach.NewSnapshot(r)
	sh := r.Shared()
	if err := Sense(snap, sh); err != nil {
		t.Fatalf("Sense: %v", err)
	}
	if sh.Byte() != uint8(types.BumpersIdle) || sh.Word() != 1023 {
		t.Fatalf("handoff byte=%#x word=%d", sh.Byte(), sh.Word())
	}
	if err := Act(r, sh); err != nil {
		t.Fatalf("Act: %v", err)
	}
	if r.Left().Speed() != CruiseMax || r.Right().Speed() != CruiseMax {
		t.Fatalf("cruise speeds (%d,%d)", r.Left().Speed(), r.Right().Speed())
	}

	rf, _ := hw.FakePin(setups.UnoR2.Bumpers[types.BumperRF])
	rf.Drive(false)
	_ = Sense(snap, sh)
	_ = Act(r, sh)
	if r.Left().Speed() != BackFast || r.Right().Speed() != BackSlow {
		t.Fatalf("bump speeds (%d,%d)", r.Left().Speed(), r.Right().Speed())
	}
	if en, _ := hw.FakePWM(setups.UnoR2.Left.En); en.Level() != 150 {
		t.Fatalf("left duty %d want 150", en.Level())
	}
}
