package scene

// hash.go provides the 32-bit mixing functions that turn text into seeds.
// The constants are fixed forever: changing any of them silently changes
// every insignia ever generated.

// goldenGamma decorrelates the character index from the character code.
const goldenGamma uint32 = 0x9E3779B1

// Hash32 avalanches a 32-bit value into a well-distributed 32-bit output
// (murmur-finalizer style). Adjacent inputs produce uncorrelated outputs.
func Hash32(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7FEB352D
	x ^= x >> 15
	x *= 0x846CA68B
	x ^= x >> 16
	return x
}

// StepHash folds one character event into a running hash. It is a pure
// function of its three inputs and always yields a value usable directly
// as an RNG seed. The live session advances its hash through StepHash once
// per character processed since the last full rebuild.
func StepHash(h uint32, r rune, index int) uint32 {
	h ^= uint32(r) + uint32(index)*goldenGamma
	return Hash32(h)
}
