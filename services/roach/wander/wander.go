// Package wander is a bench demo of the roach API, not robot behaviour. Each
// tick maps the current bumpers and light straight onto motor speeds; nothing
// is remembered between ticks.
//
// Sense and Act are decoupled; the only thing passed between them is the
// roach.Shared handoff (bumper byte, light word).
package wander

import (
	"tinygo.org/x/drivers"

	"roach-go/services/roach"
	"roach-go/types"
	"roach-go/x/mathx"
)

const (
	CruiseMin types.MotorSpeed = 30 // in the dark
	CruiseMax types.MotorSpeed = 100

	BackFast types.MotorSpeed = -60
	BackSlow types.MotorSpeed = -30
)

// Sense samples the sensors and leaves the result in sh.
func Sense(s *roach.Snapshot, sh *roach.Shared) error {
	if err := s.Update(drivers.AllMeasurements); err != nil {
		return err
	}
	sh.SetByte(uint8(s.Bumpers()))
	sh.SetWord(uint16(s.Light()))
	return nil
}

// Cruise maps a light level onto [CruiseMin, CruiseMax].
func Cruise(l types.LightLevel) types.MotorSpeed {
	v := mathx.MapU16(uint16(l), 0, uint16(types.MaxLightLevel), uint16(CruiseMin), uint16(CruiseMax))
	return types.MotorSpeed(v)
}

// Speeds decides the left/right command from one sensed state. A front hit
// backs away turning from the touched side; a rear hit drives forward.
func Speeds(b types.Bumpers, l types.LightLevel) (left, right types.MotorSpeed) {
	if !b.AnyHit() {
		c := Cruise(l)
		return c, c
	}
	switch {
	case b.Hit(types.BumperLF):
		return BackSlow, BackFast
	case b.Hit(types.BumperRF):
		return BackFast, BackSlow
	default: // rear
		return CruiseMax, CruiseMax
	}
}

// Act reads the handoff left by Sense and commands the motors.
func Act(r *roach.Roach, sh *roach.Shared) error {
	left, right := Speeds(types.Bumpers(sh.Byte()), types.LightLevel(sh.Word()))
	if err := r.SetLeftMotorSpeed(left); err != nil {
		return err
	}
	return r.SetRightMotorSpeed(right)
}
