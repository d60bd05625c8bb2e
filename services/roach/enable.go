package roach

// digitalEnable stands in for a PWM channel on an enable line with no timer
// behind it. Like analogWrite on such a pin, the line is driven high from
// half scale up and low below, so the motor runs at full power or not at all.
type digitalEnable struct {
	pin GPIOPin
	top uint16
}

func (d *digitalEnable) Configure(_ uint64, top uint16) error {
	d.top = top
	return d.pin.ConfigureOutput(false)
}

func (d *digitalEnable) Set(level uint16) {
	d.pin.Set(uint32(level) >= (uint32(d.top)+1)/2)
}
