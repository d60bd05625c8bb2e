// services/roach/internal/platform/factories_arduino.go
//go:build arduino

package platform

import (
	"machine"

	"roach-go/errcode"
	"roach-go/services/roach/internal/core"
)

// -----------------------------------------------------------------------------
// Arduino Uno (ATmega328P). Numbers are the board's Dn labels; A0..A5 are
// also digital pins 14..19.
// -----------------------------------------------------------------------------

var unoPins = [...]machine.Pin{
	machine.D0, machine.D1, machine.D2, machine.D3, machine.D4,
	machine.D5, machine.D6, machine.D7, machine.D8, machine.D9,
	machine.D10, machine.D11, machine.D12, machine.D13,
	machine.ADC0, machine.ADC1, machine.ADC2, machine.ADC3, machine.ADC4, machine.ADC5,
}

var unoADC = [...]machine.Pin{
	machine.ADC0, machine.ADC1, machine.ADC2, machine.ADC3, machine.ADC4, machine.ADC5,
}

// Local interface to avoid depending on the concrete timer type in machine.
type pwmCtrl interface {
	Configure(cfg machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

// Timer owning each PWM-capable Dn pin.
func timerFor(n int) (pwmCtrl, bool) {
	switch n {
	case 5, 6:
		return machine.Timer0, true
	case 9, 10:
		return machine.Timer1, true
	case 3, 11:
		return machine.Timer2, true
	default:
		return nil, false
	}
}

// DefaultHardware returns the Uno resource factory. The ADC is powered up
// here so channel handles only need to select their pin.
func DefaultHardware() core.Hardware {
	machine.InitADC()
	return unoHardware{}
}

type unoHardware struct{}

func (unoHardware) Pin(n int) (core.GPIOPin, bool) {
	if n < 0 || n >= len(unoPins) {
		return nil, false
	}
	return avrPin{unoPins[n]}, true
}

func (unoHardware) PWM(n int) (core.PWMChannel, error) {
	if n < 0 || n >= len(unoPins) {
		return nil, errcode.UnknownPin
	}
	ctrl, ok := timerFor(n)
	if !ok {
		return nil, errcode.Unsupported
	}
	return &avrPWM{pin: unoPins[n], ctrl: ctrl}, nil
}

func (unoHardware) ADC(ch int) (core.ADCChannel, bool) {
	if ch < 0 || ch >= len(unoADC) {
		return nil, false
	}
	return avrADC{machine.ADC{Pin: unoADC[ch]}}, true
}

// ---- GPIO ----

// avrPin is a Dn line. Bumpers use it as an input, direction lines (and an
// enable line without a timer) as an output.
type avrPin struct{ p machine.Pin }

func (r avrPin) ConfigureInput(pull core.Pull) error {
	mode := machine.PinInput
	switch pull {
	case core.PullUp:
		mode = machine.PinInputPullup
	case core.PullDown:
		// The ATmega328P has no pull-down; leave the line floating.
		return errcode.Unsupported
	}
	r.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (r avrPin) ConfigureOutput(initial bool) error {
	r.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	r.p.Set(initial)
	return nil
}

func (r avrPin) Set(level bool) { r.p.Set(level) }
func (r avrPin) Get() bool      { return r.p.Get() }

// ---- PWM ----

type avrPWM struct {
	pin  machine.Pin
	ctrl pwmCtrl
	ch   uint8

	reqTop uint16 // logical resolution
	hwTop  uint32 // timer TOP after Configure
}

func (p *avrPWM) Configure(freqHz uint64, top uint16) error {
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

func (p *avrPWM) Set(level uint16) {
	if p.reqTop == 0 {
		return
	}
	if level > p.reqTop {
		level = p.reqTop
	}
	p.ctrl.Set(p.ch, uint32(level)*p.hwTop/uint32(p.reqTop))
}

// ---- ADC ----

type avrADC struct{ a machine.ADC }

func (a avrADC) Configure() error {
	a.a.Configure(machine.ADCConfig{})
	return nil
}

func (a avrADC) Get() uint16 { return a.a.Get() }
