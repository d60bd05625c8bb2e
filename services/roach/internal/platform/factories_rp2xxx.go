// services/roach/internal/platform/factories_rp2xxx.go
//go:build rp2040

package platform

import (
	"machine"

	"roach-go/errcode"
	"roach-go/services/roach/internal/core"
)

// -----------------------------------------------------------------------------
// Raspberry Pi Pico (RP2040). Numbers map directly to GPn.
// -----------------------------------------------------------------------------

var rp2ADC = [...]machine.Pin{machine.ADC0, machine.ADC1, machine.ADC2, machine.ADC3}

// Local interface to avoid depending on an unexported concrete type in machine.
type pwmCtrl interface {
	Configure(cfg machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

// Select controller handle for a given slice number (0..7).
func pwmGroupBySlice(slice uint8) pwmCtrl {
	switch slice {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	default:
		return machine.PWM7
	}
}

// DefaultHardware returns the RP2040 resource factory.
func DefaultHardware() core.Hardware {
	machine.InitADC()
	return rp2Hardware{}
}

type rp2Hardware struct{}

// GP0..GP28 are bonded out on the Pico; GP26..GP28 double as ADC0..ADC2.
func inRange(n int) bool { return n >= 0 && n <= 28 }

func (rp2Hardware) Pin(n int) (core.GPIOPin, bool) {
	if !inRange(n) {
		return nil, false
	}
	return rp2Pin{machine.Pin(n)}, true
}

func (rp2Hardware) PWM(n int) (core.PWMChannel, error) {
	if !inRange(n) {
		return nil, errcode.UnknownPin
	}
	slice, err := machine.PWMPeripheral(machine.Pin(n))
	if err != nil {
		return nil, errcode.Unsupported
	}
	return &rp2PWM{pin: machine.Pin(n), ctrl: pwmGroupBySlice(slice)}, nil
}

func (rp2Hardware) ADC(ch int) (core.ADCChannel, bool) {
	if ch < 0 || ch >= len(rp2ADC) {
		return nil, false
	}
	return rp2ADCChan{machine.ADC{Pin: rp2ADC[ch]}}, true
}

// ---- GPIO ----

// Input modes for the bumper switches, indexed by core.Pull. The Pico has
// no external pull resistors on the harness, so pico_roach asks for PullUp.
var rp2InputModes = [...]machine.PinMode{
	core.PullNone: machine.PinInput,
	core.PullUp:   machine.PinInputPullup,
	core.PullDown: machine.PinInputPulldown,
}

// rp2Pin is a bumper input or a motor direction output.
type rp2Pin struct{ p machine.Pin }

func (r rp2Pin) ConfigureInput(pull core.Pull) error {
	if int(pull) >= len(rp2InputModes) {
		return errcode.InvalidParams
	}
	r.p.Configure(machine.PinConfig{Mode: rp2InputModes[pull]})
	return nil
}

// ConfigureOutput switches a direction line to output at the given level;
// Init passes low, which the H-bridge reads as reverse with duty 0.
func (r rp2Pin) ConfigureOutput(initial bool) error {
	r.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	r.p.Set(initial)
	return nil
}

func (r rp2Pin) Set(level bool) { r.p.Set(level) }
func (r rp2Pin) Get() bool      { return r.p.Get() }

// ---- PWM ----

// Both motor channels sit on different slices in the default wiring, so
// each handle configures its own slice period.
type rp2PWM struct {
	pin  machine.Pin
	ctrl pwmCtrl
	ch   uint8

	reqTop uint16
	hwTop  uint32
}

func (p *rp2PWM) Configure(freqHz uint64, top uint16) error {
	if top == 0 || freqHz == 0 {
		return errcode.InvalidParams
	}
	if err := p.ctrl.Configure(machine.PWMConfig{Period: periodFromHz(freqHz)}); err != nil {
		return err
	}
	ch, err := p.ctrl.Channel(p.pin)
	if err != nil {
		return errcode.Unsupported
	}
	p.ch = ch
	p.reqTop = top
	p.hwTop = p.ctrl.Top()
	return nil
}

func (p *rp2PWM) Set(level uint16) {
	if p.reqTop == 0 {
		return
	}
	if level > p.reqTop {
		level = p.reqTop
	}
	// Scale from logical [0..reqTop] to hardware [0..hwTop].
	p.ctrl.Set(p.ch, uint32(level)*p.hwTop/uint32(p.reqTop))
}

// ---- ADC ----

type rp2ADCChan struct{ a machine.ADC }

func (a rp2ADCChan) Configure() error {
	a.a.Configure(machine.ADCConfig{})
	return nil
}

func (a rp2ADCChan) Get() uint16 { return a.a.Get() }
