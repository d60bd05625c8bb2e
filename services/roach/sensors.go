package roach

import "roach-go/types"

// LightLevel runs one conversion on the light channel and returns it at
// 10-bit resolution. Higher values mean more light on the photocells.
func (r *Roach) LightLevel() types.LightLevel {
	return types.LightLevel(r.light.Get() >> 6)
}

// ReadBumpers samples the four bumper lines. Bumper i lands on bit 4+i;
// a displaced switch reads 0. The low nibble is always 0.
func (r *Roach) ReadBumpers() types.Bumpers {
	var b uint8
	for i, p := range r.bumpers {
		if p.Get() {
			b |= types.Bumper(i).Bit()
		}
	}
	return types.Bumpers(b)
}
