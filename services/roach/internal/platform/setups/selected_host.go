//go:build !arduino && !rp2040

package setups

import "roach-go/types"

// Selected is the wiring used by host builds and tests.
func Selected() types.PinMap { return UnoR2 }
