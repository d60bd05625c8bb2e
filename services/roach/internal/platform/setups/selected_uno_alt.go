//go:build arduino && uno_alt

package setups

import "roach-go/types"

func Selected() types.PinMap { return UnoAlt }
