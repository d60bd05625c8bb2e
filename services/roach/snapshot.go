package roach

import (
	"tinygo.org/x/drivers"

	"roach-go/types"
)

var _ drivers.Sensor = (*Snapshot)(nil)

// Snapshot batches the robot's sensors behind the drivers.Sensor interface.
// Update samples the hardware; the accessors return what the last Update
// saw. Roach.LightLevel and Roach.ReadBumpers remain the uncached path.
type Snapshot struct {
	r *Roach

	light   types.LightLevel
	bumpers types.Bumpers
}

// NewSnapshot returns a Snapshot over r. Bumpers read idle until the first
// Update that samples them.
func NewSnapshot(r *Roach) *Snapshot {
	return &Snapshot{r: r, bumpers: types.BumpersIdle}
}

// Update samples the light sensor when which includes drivers.Luminosity.
// The bumpers have no measurement kind of their own and are sampled only
// for drivers.AllMeasurements.
func (s *Snapshot) Update(which drivers.Measurement) error {
	if which&drivers.Luminosity != 0 {
		s.light = s.r.LightLevel()
	}
	if which == drivers.AllMeasurements {
		s.bumpers = s.r.ReadBumpers()
	}
	return nil
}

func (s *Snapshot) Light() types.LightLevel { return s.light }
func (s *Snapshot) Bumpers() types.Bumpers  { return s.bumpers }
