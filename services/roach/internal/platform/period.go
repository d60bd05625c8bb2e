package platform

// periodFromHz converts a PWM frequency to the period in nanoseconds that
// machine.PWMConfig expects.
func periodFromHz(hz uint64) uint64 {
	if hz == 0 {
		return 0
	}
	return 1_000_000_000 / hz
}
