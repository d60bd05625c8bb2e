//go:build rp2040

package setups

import "roach-go/types"

func Selected() types.PinMap { return PicoRoach }
