package rng

// Script is a Generator that replays predetermined values.
// Intended for tests that need deterministic rolls. Each source wraps
// around once exhausted so short scripts can drive long scenarios.
type Script struct {
	Ints   []int
	Floats []float64

	intIndex   int
	floatIndex int
}

// Intn returns the next scripted integer, modulo n
func (s *Script) Intn(n int) int {
	if len(s.Ints) == 0 {
		return 0
	}

	val := s.Ints[s.intIndex%len(s.Ints)]
	s.intIndex++
	return val % n
}

// Float64 returns the next scripted float
func (s *Script) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}

	val := s.Floats[s.floatIndex%len(s.Floats)]
	s.floatIndex++
	return val
}
