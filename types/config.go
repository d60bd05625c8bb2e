package types

import "roach-go/errcode"

// Pull selects the input bias used on the bumper lines.
type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

// MotorPins binds one H-bridge channel.
type MotorPins struct {
	Dir int // digital output: high = forward
	En  int // PWM-capable output: duty = power
}

// PinMap is the board wiring consumed by the roach service.
// Pin numbers use the platform's numbering (Arduino Dn, Pico GPn).
type PinMap struct {
	Name string

	Light      int             // ADC channel index (0 => A0 / ADC0)
	Bumpers    [NumBumpers]int // indexed by Bumper (LF, RF, RR, LR)
	BumperPull Pull            // bias for bumper inputs
	Left       MotorPins
	Right      MotorPins
	PWMFreqHz  uint64 // 0 => DefaultPWMFreqHz
}

const DefaultPWMFreqHz uint64 = 490 // analogWrite rate on the Uno's timer pins

// Freq returns the configured PWM frequency or the default.
func (m PinMap) Freq() uint64 {
	if m.PWMFreqHz == 0 {
		return DefaultPWMFreqHz
	}
	return m.PWMFreqHz
}

// Validate checks the map for structural problems. It does not know which
// pins exist on a board; the platform reports that when pins are resolved.
func (m PinMap) Validate() error {
	if m.Light < 0 {
		return errcode.Wrap(errcode.InvalidParams, "pinmap", "light channel < 0")
	}
	seen := make(map[int]string, NumBumpers+4)
	claim := func(pin int, role string) error {
		if pin < 0 {
			return errcode.Wrap(errcode.UnknownPin, "pinmap", role)
		}
		if other, dup := seen[pin]; dup {
			return errcode.Wrap(errcode.PinInUse, "pinmap", role+" shares a pin with "+other)
		}
		seen[pin] = role
		return nil
	}
	for i, p := range m.Bumpers {
		if err := claim(p, "bumper "+Bumper(i).String()); err != nil {
			return err
		}
	}
	for _, x := range []struct {
		pin  int
		role string
	}{
		{m.Left.Dir, "left.dir"},
		{m.Left.En, "left.en"},
		{m.Right.Dir, "right.dir"},
		{m.Right.En, "right.en"},
	} {
		if err := claim(x.pin, x.role); err != nil {
			return err
		}
	}
	return nil
}
