// services/roach/internal/core/types.go
package core

import "roach-go/types"

// ---- GPIO ----

type Pull = types.Pull

const (
	PullNone = types.PullNone
	PullUp   = types.PullUp
	PullDown = types.PullDown
)

type GPIOPin interface {
	ConfigureInput(pull Pull) error
	ConfigureOutput(initial bool) error
	Set(level bool)
	Get() bool
}

// ---- PWM ----

// PWMChannel drives one PWM-capable pin on a logical scale 0..top.
// The platform maps the logical level onto its hardware counter.
type PWMChannel interface {
	Configure(freqHz uint64, top uint16) error
	Set(level uint16)
}

// ---- ADC ----

// ADCChannel performs one blocking conversion per Get. The result is
// left-aligned to 16 bits whatever the converter's native resolution.
type ADCChannel interface {
	Configure() error
	Get() uint16
}

// ---- Platform ----

// Hardware resolves board resources by number. Lookups must not touch the
// hardware; configuration happens through the returned handles.
type Hardware interface {
	Pin(n int) (GPIOPin, bool)
	PWM(n int) (PWMChannel, error)
	ADC(ch int) (ADCChannel, bool)
}
