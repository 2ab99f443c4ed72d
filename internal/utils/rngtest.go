package utils

// ScriptedRNG replays fixed values; used by tests across packages.
// IntN results are taken modulo n so scripts stay in range.
type ScriptedRNG struct {
	Ints   []int
	Floats []float64
}

// IntN pops the next scripted integer
func (s *ScriptedRNG) IntN(n int) int {
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	return ((v % n) + n) % n
}

// Float64 pops the next scripted float
func (s *ScriptedRNG) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0.99
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}
