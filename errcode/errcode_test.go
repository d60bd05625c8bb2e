package errcode

import (
	"errors"
	"testing"
)

func TestCodesAreStableStrings(t *testing.T) {
	cases := map[string]Code{
		"ok":             OK,
		"bad_speed":      BadSpeed,
		"invalid_params": InvalidParams,
		"unknown_pin":    UnknownPin,
		"pin_in_use":     PinInUse,
		"unsupported":    Unsupported,
		"error":          Error,
	}
	for want, c := range cases {
		if c.Error() != want {
			t.Fatalf("code %q mismatch: got %q", want, c.Error())
		}
	}
}

func TestOf(t *testing.T) {
	if Of(nil) != OK {
		t.Fatalf("Of(nil) != OK")
	}
	if Of(BadSpeed) != BadSpeed {
		t.Fatalf("Of(BadSpeed) mismatch")
	}
	if Of(Wrap(PinInUse, "roach.New", "pin 9")) != PinInUse {
		t.Fatalf("Of(*E) mismatch")
	}
	if Of(errors.New("boom")) != Error {
		t.Fatalf("Of(foreign) should be Error")
	}
}

func TestWrapMatchesCode(t *testing.T) {
	err := error(Wrap(UnknownPin, "roach.New", "left.dir=99"))
	if !errors.Is(err, UnknownPin) {
		t.Fatalf("errors.Is did not match wrapped code")
	}
	if errors.Is(err, PinInUse) {
		t.Fatalf("errors.Is matched the wrong code")
	}
	if got := err.Error(); got != "roach.New: unknown_pin: left.dir=99" {
		t.Fatalf("Error()=%q", got)
	}
}
