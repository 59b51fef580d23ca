package layout

import "math/rand/v2"

// Seed salts keep the independent jitter streams (radial offset,
// angular offset, score perturbation, relaxation noise, pair
// tie-breaks) from correlating with each other.
const (
	saltRadial uint64 = iota + 1
	saltAngular
	saltScore
	saltRelax
	saltPair
)

// Jitter maps a sequence of seed components to a reproducible value in
// [0,1). Same components, same output — every source of randomness in
// the layout flows through here, keyed by stable identifiers (item id,
// iteration index, blip index), so layouts are bit-for-bit reproducible
// across renders.
func Jitter(parts ...uint64) float64 {
	seed := mix(parts...)
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef)).Float64()
}

// signedJitter maps seed components to a value in [-1,1).
func signedJitter(parts ...uint64) float64 {
	return Jitter(parts...)*2 - 1
}

// mix folds seed components into a single value with FNV-1a.
func mix(parts ...uint64) uint64 {
	const (
		offset64 uint64 = 14695981039346656037
		prime64  uint64 = 1099511628211
	)
	h := offset64
	for _, p := range parts {
		for k := 0; k < 8; k++ {
			h ^= (p >> (8 * k)) & 0xff
			h *= prime64
		}
	}
	return h
}
