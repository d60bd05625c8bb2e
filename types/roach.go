package types

import "roach-go/x/mathx"

// ------------------------
// Motors
// ------------------------

// MotorSpeed is a signed percentage: negative reverses, 0 stops.
type MotorSpeed int8

const (
	MinSpeed MotorSpeed = -100
	MaxSpeed MotorSpeed = 100
)

// Valid reports whether s is inside [MinSpeed, MaxSpeed].
func (s MotorSpeed) Valid() bool { return mathx.Between(s, MinSpeed, MaxSpeed) }

// Direction is the level driven on a motor's direction line.
type Direction uint8

const (
	Reverse Direction = iota // line low
	Forward                  // line high
)

func (d Direction) Level() bool { return d == Forward }

func (d Direction) String() string {
	if d == Forward {
		return "forward"
	}
	return "reverse"
}

// MaxDuty is the top of the logical PWM scale the motors are driven on.
const MaxDuty uint8 = 255

// ------------------------
// Light sensor
// ------------------------

// LightLevel is a 10-bit ADC reading. Higher means brighter.
type LightLevel uint16

const MaxLightLevel LightLevel = 1023

// ------------------------
// Bumpers
// ------------------------

// Bumper names one of the four bumper switches.
type Bumper uint8

const (
	BumperLF Bumper = iota // left front
	BumperRF               // right front
	BumperRR               // right rear
	BumperLR               // left rear

	NumBumpers = 4
)

// Bit is the mask of b inside a Bumpers byte (upper nibble).
func (b Bumper) Bit() uint8 { return 1 << (4 + uint8(b)) }

func (b Bumper) String() string {
	switch b {
	case BumperLF:
		return "LF"
	case BumperRF:
		return "RF"
	case BumperRR:
		return "RR"
	case BumperLR:
		return "LR"
	default:
		return "?"
	}
}

// Bumpers is the packed switch state. The upper nibble holds one bit per
// bumper, active-low (0 = displaced, 1 = resting). The lower nibble is 0.
type Bumpers uint8

// BumpersIdle is the reading with no switch displaced.
const BumpersIdle Bumpers = 0xF0

// Hit reports whether bumper b is displaced.
func (s Bumpers) Hit(b Bumper) bool { return uint8(s)&b.Bit() == 0 }

// AnyHit reports whether at least one bumper is displaced.
func (s Bumpers) AnyHit() bool { return s&BumpersIdle != BumpersIdle }
