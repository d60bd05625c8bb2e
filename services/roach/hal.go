// services/roach/hal.go
package roach

import (
	"roach-go/services/roach/internal/core"
	"roach-go/services/roach/internal/platform"
	"roach-go/services/roach/internal/platform/setups"
	"roach-go/types"
)

// Hardware-access capabilities. Implementations live in the platform
// package (TinyGo machine on the MCU, recording fakes on the host).
type (
	Hardware   = core.Hardware
	GPIOPin    = core.GPIOPin
	PWMChannel = core.PWMChannel
	ADCChannel = core.ADCChannel
)

// DefaultHardware returns the platform's resource factory.
func DefaultHardware() Hardware { return platform.DefaultHardware() }

// SelectedPinMap returns the wiring chosen by build tags.
func SelectedPinMap() types.PinMap { return setups.Selected() }

// Default builds a Roach from the platform hardware and the selected
// wiring. A wiring that does not resolve is a fatal configuration error.
func Default() *Roach {
	r, err := New(DefaultHardware(), SelectedPinMap())
	if err != nil {
		panic("roach: " + err.Error())
	}
	return r
}
