package roach

import (
	"roach-go/errcode"
	"roach-go/types"
	"roach-go/x/mathx"
)

// dutyTop is the logical PWM resolution the enable lines are configured with.
const dutyTop = uint16(types.MaxDuty)

// Duty maps |s| in [0,100] onto the 0..255 PWM scale: round(2.5*|s|).
// Out-of-range speeds are clamped; callers validate first.
func Duty(s types.MotorSpeed) uint8 {
	mag := uint(mathx.Abs(int(s)))
	mag = mathx.Min(mag, uint(types.MaxSpeed))
	return uint8(mathx.RoundDiv(5*mag, 2))
}

// DirectionOf returns Reverse for negative speeds and Forward otherwise.
func DirectionOf(s types.MotorSpeed) types.Direction {
	if s < 0 {
		return types.Reverse
	}
	return types.Forward
}

// Motor is one H-bridge channel: a direction line and a PWM enable line.
type Motor struct {
	name  string
	dir   GPIOPin
	en    PWMChannel
	speed types.MotorSpeed
}

func (m *Motor) Name() string { return m.name }

// Speed is the last accepted command (0 after Init).
func (m *Motor) Speed() types.MotorSpeed { return m.speed }

func (m *Motor) init(freqHz uint64) {
	if err := m.dir.ConfigureOutput(types.Reverse.Level()); err != nil {
		panic("roach: " + m.name + " dir: " + err.Error())
	}
	if err := m.en.Configure(freqHz, dutyTop); err != nil {
		panic("roach: " + m.name + " en: " + err.Error())
	}
	m.en.Set(0)
	m.speed = 0
}

// SetSpeed validates s and, if accepted, drives the direction line and the
// duty cycle. A rejected command leaves both lines untouched.
func (m *Motor) SetSpeed(s types.MotorSpeed) error {
	if !s.Valid() {
		return errcode.BadSpeed
	}
	m.dir.Set(DirectionOf(s).Level())
	m.en.Set(uint16(Duty(s)))
	m.speed = s
	return nil
}
