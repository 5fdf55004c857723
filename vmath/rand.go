package vmath

import "time"

// FastRand is a xorshift64 (13, 17, 5) generator
// Not safe for concurrent use; one instance per owner
type FastRand struct {
	state uint64
}

// NewFastRand uses seed as raw xorshift state, zero is remapped to 1
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// NewSeededRand scrambles seed through one splitmix64 round before use
// Small seeds (42, 1, 2...) otherwise yield near-zero first outputs from xorshift
func NewSeededRand(seed uint64) *FastRand {
	return NewFastRand(splitMix64(seed))
}

// WallClockSeed returns a non-deterministic seed, entry point use only
func WallClockSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

func splitMix64(x uint64) uint64 {
	z := x + 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a uniform value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}
