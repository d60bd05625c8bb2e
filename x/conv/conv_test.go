package conv

import "testing"

func TestUtoaItoa(t *testing.T) {
	var buf [20]byte
	cases := map[uint64]string{0: "0", 7: "7", 1023: "1023", 18446744073709551615: "18446744073709551615"}
	for n, want := range cases {
		if got := string(Utoa(buf[:], n)); got != want {
			t.Fatalf("Utoa(%d)=%q", n, got)
		}
	}
	for n, want := range map[int64]string{0: "0", -1: "-1", 100: "100", -100: "-100"} {
		if got := string(Itoa(buf[:], n)); got != want {
			t.Fatalf("Itoa(%d)=%q", n, got)
		}
	}
	var tiny [2]byte
	if got := string(Itoa(tiny[:], -50)); got != "50" {
		t.Fatalf("Itoa without room for sign=%q", got)
	}
	if got := Utoa(nil, 5); len(got) != 0 {
		t.Fatalf("Utoa(nil) should be empty")
	}
}

func TestU8Hex(t *testing.T) {
	var buf [4]byte
	cases := map[uint8]string{0x00: "00", 0x0A: "0A", 0xD0: "D0", 0xF0: "F0", 0xFF: "FF"}
	for n, want := range cases {
		if got := string(U8Hex(buf[:], n)); got != want {
			t.Fatalf("U8Hex(%#x)=%q want %q", n, got, want)
		}
	}
	if got := U8Hex(buf[:1], 1); len(got) != 0 {
		t.Fatalf("short buffer should yield empty slice")
	}
}
