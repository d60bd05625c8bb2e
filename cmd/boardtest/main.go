// cmd/boardtest/main.go
//
// Bench bring-up for a freshly wired roach: walks both motors through a
// fixed speed sequence and prints the sensors at every step, so each H-bridge
// channel, bumper and the photocell can be checked by eye.
package main

import (
	"time"

	"roach-go/services/roach"
	"roach-go/types"
	"roach-go/x/conv"
)

// ---------- Configuration ----------

const (
	stepDelay = 300 * time.Millisecond
	dwell     = 2 * time.Second

	// Cycles: 0 = loop forever
	cyclesToRun = 0
)

type step struct {
	name        string
	left, right types.MotorSpeed
}

// One channel at a time, then both, then a deliberately bad command that
// must be rejected without moving anything.
var sequence = []step{
	{"left fwd", 50, 0},
	{"left rev", -50, 0},
	{"right fwd", 0, 50},
	{"right rev", 0, -50},
	{"both full", 100, 100},
	{"spin", 60, -60},
	{"bad speed", 101, -101},
	{"stop", 0, 0},
}

func main() {
	time.Sleep(2 * time.Second)
	println("boardtest: boot")

	r := roach.Default()
	r.Init()
	println("boardtest: wiring", r.PinMap().Name)

	for cycle := 1; cyclesToRun == 0 || cycle <= cyclesToRun; cycle++ {
		for _, s := range sequence {
			run(r, s)
			time.Sleep(dwell)
			r.Stop()
			time.Sleep(stepDelay)
		}
	}
	println("boardtest: done")
}

func run(r *roach.Roach, s step) {
	println(s.name)
	report(r.Left(), r.SetLeftMotorSpeed(s.left))
	report(r.Right(), r.SetRightMotorSpeed(s.right))

	var c [20]byte
	var h [2]byte
	println("  light", string(conv.Utoa(c[:], uint64(r.LightLevel()))),
		"bump", string(conv.U8Hex(h[:], uint8(r.ReadBumpers()))))
}

// report prints the motor's commanded state after a set attempt; a rejected
// command shows the previous speed with the error.
func report(m *roach.Motor, err error) {
	res := "ok"
	if err != nil {
		res = err.Error()
	}
	var a, d [20]byte
	sp := m.Speed()
	println(" ", m.Name(), string(conv.Itoa(a[:], int64(sp))),
		roach.DirectionOf(sp).String(),
		"duty", string(conv.Utoa(d[:], uint64(roach.Duty(sp)))), res)
}
