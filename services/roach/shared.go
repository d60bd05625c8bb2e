package roach

// Shared holds one byte and one word for handoff between callers that do not
// otherwise know about each other. Each cell keeps only the last write; a
// read before any write returns zero. There is no locking: the robot runs
// in a single execution context and callers sequence writes before reads.
type Shared struct {
	b uint8
	w uint16
}

func (s *Shared) SetByte(v uint8) { s.b = v }
func (s *Shared) Byte() uint8     { return s.b }

func (s *Shared) SetWord(v uint16) { s.w = v }
func (s *Shared) Word() uint16     { return s.w }
