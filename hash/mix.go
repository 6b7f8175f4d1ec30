// Package hash implements the avalanche mixers used to spread a
// primitive key's bits before masking them down to a table slot.
package hash

import "math"

// Mixing constants from Austin Appleby's MurmurHash3 finalizer and
// David Stafford's variant 9 of the 64-bit mix function (same MH3
// finalization shape, different shifts and multipliers).
const (
	mul1_32 uint32 = 0x85ebca6b
	mul2_32 uint32 = 0xc2b2ae35

	mul1_64 uint64 = 0x4cd6944c5cc20b6d
	mul2_64 uint64 = 0xfc12c5b19d3259e9
)

// HASH_0 and HASH_1 pin down Mix32 at the two smallest inputs; they
// double as a regression fence against a mistyped constant or shift.
const (
	HASH_0 uint32 = 0
	HASH_1 uint32 = 1364076727
)

// Mix32 applies the MurmurHash3 finalizer to k.
func Mix32(k uint32) uint32 {
	k = (k ^ (k >> 16)) * mul1_32
	k = (k ^ (k >> 13)) * mul2_32
	return k ^ (k >> 16)
}

// Mix64 applies David Stafford's variant 9 mixer to z.
func Mix64(z uint64) uint64 {
	z = (z ^ (z >> 32)) * mul1_64
	z = (z ^ (z >> 29)) * mul2_64
	return z ^ (z >> 32)
}

// Mix32Seed mixes k perturbed by seed.
func Mix32Seed(k, seed uint32) uint32 {
	return Mix32(k ^ seed)
}

// Mix64Seed mixes z perturbed by seed and truncates the 64-bit result
// to its low 32 bits, the way the original's seeded long/double
// overloads do.
func Mix64Seed(z uint64, seed uint32) uint32 {
	return uint32(Mix64(z ^ uint64(seed)))
}

// Mix32FromFloat32 reinterprets x as its raw bit pattern before mixing,
// so +0.0 and -0.0 hash differently — a documented quirk carried over
// from the source, not a bug (see DESIGN.md).
func Mix32FromFloat32(x float32, seed uint32) uint32 {
	return Mix32Seed(math.Float32bits(x), seed)
}

// Mix32FromFloat64 is the 64-bit analogue of Mix32FromFloat32.
func Mix32FromFloat64(x float64, seed uint32) uint32 {
	return Mix64Seed(math.Float64bits(x), seed)
}
