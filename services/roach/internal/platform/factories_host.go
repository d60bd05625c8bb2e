// services/roach/internal/platform/factories_host.go
//go:build !arduino && !rp2040

package platform

import (
	"roach-go/errcode"
	"roach-go/services/roach/internal/core"
)

// Host fakes record every level, duty and conversion so tests can assert on
// pin state. Single execution context; not safe for concurrent use.

// ----------------------------- GPIO (host) -----------------------------------

// FakePin implements core.GPIOPin.
type FakePin struct {
	level   bool
	modeOut bool
	pull    core.Pull
	writes  int
}

func (p *FakePin) ConfigureInput(pull core.Pull) error {
	p.modeOut = false
	p.pull = pull
	// Biased inputs float to the pull level until something drives them.
	switch pull {
	case core.PullUp:
		p.level = true
	case core.PullDown:
		p.level = false
	}
	return nil
}

func (p *FakePin) ConfigureOutput(initial bool) error {
	p.modeOut = true
	p.level = initial
	p.writes++
	return nil
}

func (p *FakePin) Set(level bool) {
	p.level = level
	if p.modeOut {
		p.writes++
	}
}

func (p *FakePin) Get() bool { return p.level }

// Drive forces the level seen by Get, as an external switch would.
func (p *FakePin) Drive(level bool) { p.level = level }

func (p *FakePin) IsOutput() bool  { return p.modeOut }
func (p *FakePin) Pull() core.Pull { return p.pull }

// Writes counts output writes (ConfigureOutput and Set while an output).
func (p *FakePin) Writes() int { return p.writes }

// ----------------------------- PWM (host) ------------------------------------

// FakePWM implements core.PWMChannel and keeps the logical level.
type FakePWM struct {
	freqHz     uint64
	top        uint16
	level      uint16
	configured bool
	writes     int
}

func (p *FakePWM) Configure(freqHz uint64, top uint16) error {
	if top == 0 || freqHz == 0 {
		return errcode.InvalidParams
	}
	p.freqHz, p.top, p.configured = freqHz, top, true
	return nil
}

func (p *FakePWM) Set(level uint16) {
	if level > p.top {
		level = p.top
	}
	p.level = level
	p.writes++
}

func (p *FakePWM) Level() uint16    { return p.level }
func (p *FakePWM) Top() uint16      { return p.top }
func (p *FakePWM) FreqHz() uint64   { return p.freqHz }
func (p *FakePWM) Configured() bool { return p.configured }
func (p *FakePWM) Writes() int      { return p.writes }

// ----------------------------- ADC (host) ------------------------------------

// FakeADC implements core.ADCChannel. Readings are 16-bit left-aligned like
// machine.ADC.Get.
type FakeADC struct {
	raw         uint16
	configured  bool
	conversions int
}

func (a *FakeADC) Configure() error {
	a.configured = true
	return nil
}

func (a *FakeADC) Get() uint16 {
	a.conversions++
	return a.raw
}

// SetRaw sets the 16-bit sample returned by the next conversions.
func (a *FakeADC) SetRaw(v uint16) { a.raw = v }

// SetLevel10 sets the sample from a 10-bit value, as a 10-bit converter
// left-aligned into 16 bits would report it.
func (a *FakeADC) SetLevel10(v uint16) { a.raw = (v & 0x3FF) << 6 }

func (a *FakeADC) Configured() bool { return a.configured }
func (a *FakeADC) Conversions() int { return a.conversions }

// ----------------------------- Hardware (host) -------------------------------

// HostHardware is a board model: a digital pin range, the subset of pins
// with a PWM timer, and a number of ADC channels. Handles are stable per
// number so tests can inspect what the service did.
type HostHardware struct {
	maxPin int
	pwmOK  map[int]bool
	adcN   int

	pins map[int]*FakePin
	pwms map[int]*FakePWM
	adcs map[int]*FakeADC
}

// NewHostHardware builds a host board with pins 0..maxPin, PWM on pwmPins and
// adcChannels analog inputs.
func NewHostHardware(maxPin int, pwmPins []int, adcChannels int) *HostHardware {
	h := &HostHardware{
		maxPin: maxPin,
		pwmOK:  make(map[int]bool, len(pwmPins)),
		adcN:   adcChannels,
		pins:   make(map[int]*FakePin),
		pwms:   make(map[int]*FakePWM),
		adcs:   make(map[int]*FakeADC),
	}
	for _, n := range pwmPins {
		h.pwmOK[n] = true
	}
	return h
}

// DefaultHardware models an Arduino Uno: D0..D19 (A0..A5 as D14..D19),
// PWM on D3 D5 D6 D9 D10 D11, six ADC channels.
func DefaultHardware() core.Hardware { return NewUnoHost() }

// NewUnoHost is DefaultHardware with the concrete type, for tests.
func NewUnoHost() *HostHardware {
	return NewHostHardware(19, []int{3, 5, 6, 9, 10, 11}, 6)
}

func (h *HostHardware) Pin(n int) (core.GPIOPin, bool) {
	p, ok := h.FakePin(n)
	if !ok {
		return nil, false
	}
	return p, true
}

func (h *HostHardware) PWM(n int) (core.PWMChannel, error) {
	if n < 0 || n > h.maxPin {
		return nil, errcode.UnknownPin
	}
	if !h.pwmOK[n] {
		return nil, errcode.Unsupported
	}
	p, ok := h.pwms[n]
	if !ok {
		p = &FakePWM{}
		h.pwms[n] = p
	}
	return p, nil
}

func (h *HostHardware) ADC(ch int) (core.ADCChannel, bool) {
	a, ok := h.FakeADC(ch)
	if !ok {
		return nil, false
	}
	return a, true
}

// FakePin returns the stable *FakePin for n, creating it on first use.
func (h *HostHardware) FakePin(n int) (*FakePin, bool) {
	if n < 0 || n > h.maxPin {
		return nil, false
	}
	p, ok := h.pins[n]
	if !ok {
		p = &FakePin{}
		h.pins[n] = p
	}
	return p, true
}

// FakePWM returns the PWM handle for n if the service claimed one.
func (h *HostHardware) FakePWM(n int) (*FakePWM, bool) {
	p, ok := h.pwms[n]
	return p, ok
}

// FakeADC returns the stable *FakeADC for channel ch.
func (h *HostHardware) FakeADC(ch int) (*FakeADC, bool) {
	if ch < 0 || ch >= h.adcN {
		return nil, false
	}
	a, ok := h.adcs[ch]
	if !ok {
		a = &FakeADC{}
		h.adcs[ch] = a
	}
	return a, true
}
