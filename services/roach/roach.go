// Package roach is the hardware interface of the two-motor cockroach robot:
// motor speed and direction, the light sensor, the four bumper switches,
// and a pair of scalar handoff cells.
//
// Every operation is a synchronous pin or register access. There is one
// runtime error, errcode.BadSpeed; everything else is total once New has
// resolved the wiring.
package roach

import (
	"roach-go/errcode"
	"roach-go/types"
)

// Roach owns the robot's pins for the lifetime of the program.
type Roach struct {
	pins types.PinMap

	left, right Motor
	light       ADCChannel
	bumpers     [types.NumBumpers]GPIOPin

	shared Shared
}

// New resolves every binding in pins against hw. It does not touch the
// hardware; call Init before anything else.
func New(hw Hardware, pins types.PinMap) (*Roach, error) {
	const op = "roach.New"
	if err := pins.Validate(); err != nil {
		return nil, err
	}
	r := &Roach{pins: pins}

	var ok bool
	if r.light, ok = hw.ADC(pins.Light); !ok {
		return nil, errcode.Wrap(errcode.UnknownPin, op, "light adc channel")
	}
	for i, n := range pins.Bumpers {
		if r.bumpers[i], ok = hw.Pin(n); !ok {
			return nil, errcode.Wrap(errcode.UnknownPin, op, "bumper "+types.Bumper(i).String())
		}
	}

	var err error
	if r.left, err = newMotor(hw, "left", pins.Left); err != nil {
		return nil, err
	}
	if r.right, err = newMotor(hw, "right", pins.Right); err != nil {
		return nil, err
	}
	return r, nil
}

func newMotor(hw Hardware, name string, mp types.MotorPins) (Motor, error) {
	const op = "roach.New"
	dir, ok := hw.Pin(mp.Dir)
	if !ok {
		return Motor{}, errcode.Wrap(errcode.UnknownPin, op, name+".dir")
	}
	en, err := hw.PWM(mp.En)
	if errcode.Of(err) == errcode.Unsupported {
		// No timer on this pin: fall back to an on/off enable line.
		if pin, ok := hw.Pin(mp.En); ok {
			en, err = &digitalEnable{pin: pin}, nil
		}
	}
	if err != nil {
		return Motor{}, &errcode.E{C: errcode.Of(err), Op: op, Msg: name + ".en", Err: err}
	}
	return Motor{name: name, dir: dir, en: en}, nil
}

// Init configures the motor lines (direction low, duty 0), the ADC channel
// and the bumper inputs. It must run once before any other call. A platform
// that refuses the configuration is unrecoverable and Init panics.
func (r *Roach) Init() {
	r.left.init(r.pins.Freq())
	r.right.init(r.pins.Freq())

	if err := r.light.Configure(); err != nil {
		panic("roach: light: " + err.Error())
	}
	for i, p := range r.bumpers {
		if err := p.ConfigureInput(r.pins.BumperPull); err != nil {
			panic("roach: bumper " + types.Bumper(i).String() + ": " + err.Error())
		}
	}
}

// PinMap returns the wiring the Roach was built with.
func (r *Roach) PinMap() types.PinMap { return r.pins }

// Left and Right expose the motor channels.
func (r *Roach) Left() *Motor  { return &r.left }
func (r *Roach) Right() *Motor { return &r.right }

// SetLeftMotorSpeed sets the left motor. It returns errcode.BadSpeed, and
// leaves the motor as it was, when s is outside [-100, 100].
func (r *Roach) SetLeftMotorSpeed(s types.MotorSpeed) error { return r.left.SetSpeed(s) }

// SetRightMotorSpeed is SetLeftMotorSpeed for the right motor.
func (r *Roach) SetRightMotorSpeed(s types.MotorSpeed) error { return r.right.SetSpeed(s) }

// Stop commands both motors to zero.
func (r *Roach) Stop() {
	_ = r.left.SetSpeed(0)
	_ = r.right.SetSpeed(0)
}

// Shared returns the handoff cells owned by this Roach.
func (r *Roach) Shared() *Shared { return &r.shared }
