// Command roach is a bench demo of the cockroach hardware interface: bring
// it up and exercise every call (motors, light, bumpers, shared cells) on a
// fixed tick. It holds no state between ticks.
//
// Build/flash (TinyGo):
//
//	tinygo flash -target arduino .
//	tinygo flash -target arduino -tags uno_alt .
//	tinygo flash -target pico .
package main

import (
	"time"

	"roach-go/services/roach"
	"roach-go/services/roach/wander"
	"roach-go/x/conv"
)

const (
	period   = 50 * time.Millisecond
	logEvery = 20 // ticks between status lines
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	r := roach.Default()
	r.Init()
	println("roach: wiring", r.PinMap().Name)

	snap := roach.NewSnapshot(r)
	sh := r.Shared()

	for tick := 0; ; tick++ {
		if err := wander.Sense(snap, sh); err != nil {
			println("sense:", err.Error())
		}
		if err := wander.Act(r, sh); err != nil {
			println("act:", err.Error())
		}
		if tick%logEvery == 0 {
			status(r, sh)
		}
		time.Sleep(period)
	}
}

func status(r *roach.Roach, sh *roach.Shared) {
	var a, b, c [20]byte
	var h [2]byte
	println("light", string(conv.Utoa(a[:], uint64(sh.Word()))),
		"bump", string(conv.U8Hex(h[:], sh.Byte())),
		"L", string(conv.Itoa(b[:], int64(r.Left().Speed()))),
		"R", string(conv.Itoa(c[:], int64(r.Right().Speed()))))
}
