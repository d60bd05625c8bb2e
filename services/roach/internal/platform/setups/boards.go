package setups

import "roach-go/types"

// UnoR2 is the documented cockroach wiring on an Arduino Uno R2:
// light sensor on A0, bumpers on D4..D7 (LF, RF, RR, LR), left motor
// DIR/EN on D8/D9, right motor DIR/EN on D10/D11.
var UnoR2 = types.PinMap{
	Name:       "uno_r2",
	Light:      0,
	Bumpers:    [types.NumBumpers]int{4, 5, 6, 7},
	BumperPull: types.PullNone,
	Left:       types.MotorPins{Dir: 8, En: 9},
	Right:      types.MotorPins{Dir: 10, En: 11},
}

// UnoAlt is the earlier harness with the motor connector reversed. D8 has no
// timer on an Uno, so the right motor's enable is driven on/off there.
var UnoAlt = types.PinMap{
	Name:       "uno_alt",
	Light:      0,
	Bumpers:    [types.NumBumpers]int{4, 5, 6, 7},
	BumperPull: types.PullNone,
	Left:       types.MotorPins{Dir: 11, En: 10},
	Right:      types.MotorPins{Dir: 9, En: 8},
}

// PicoRoach wires the same harness to a Raspberry Pi Pico. The bumpers get
// the internal pull-ups since the Pico board has no external ones.
var PicoRoach = types.PinMap{
	Name:       "pico_roach",
	Light:      0, // ADC0 = GP26
	Bumpers:    [types.NumBumpers]int{2, 3, 4, 5},
	BumperPull: types.PullUp,
	Left:       types.MotorPins{Dir: 6, En: 7},
	Right:      types.MotorPins{Dir: 8, En: 9},
	PWMFreqHz:  1000,
}
