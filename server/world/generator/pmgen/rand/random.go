package rand

// Seeds of the XorShift128 state. The values match the PocketMine-MP random so
// that worlds generated by pm-gen line up with their PHP counterparts.
const (
	seedX = 123456789
	seedY = 362436069
	seedZ = 521288629
	seedW = 88675123
)

// Random is a XorShift128 based pseudo random number generator. It is not safe for
// concurrent use: every generator routine should own its Random.
type Random struct {
	seed       int64
	x, y, z, w int64
}

// NewRandom returns a Random seeded with the seed passed.
func NewRandom(seed int64) *Random {
	r := &Random{}
	r.SetSeed(seed)
	return r
}

// SetSeed resets the state of the Random using the seed passed. Draws after a call
// to SetSeed repeat the sequence of a Random newly created with the same seed.
func (r *Random) SetSeed(seed int64) {
	r.seed = seed
	r.x = seedX ^ seed
	r.y = seedY ^ (seed << 17) | ((seed >> 15) & 0x7fffffff)
	r.z = seedZ ^ (seed << 31) | ((seed >> 3) & 0x7fffffff)
	r.w = seedW ^ (seed << 18) | ((seed >> 14) & 0x7fffffff)
}

// Seed returns the seed the Random was last seeded with.
func (r *Random) Seed() int64 {
	return r.seed
}

// signed returns the next 32 bits of the sequence as a signed integer.
func (r *Random) signed() int32 {
	t := (r.x ^ (r.x << 11)) & 0xffffffff
	r.x, r.y, r.z = r.y, r.z, r.w
	r.w = (r.w ^ ((r.w >> 19) & 0x7fffffff) ^ (t ^ ((t >> 8) & 0x7fffffff))) & 0xffffffff
	return int32(uint32(r.w))
}

// Int31 returns a non-negative pseudo random 31-bit integer.
func (r *Random) Int31() int32 {
	return r.signed() & 0x7fffffff
}

// Int31n returns a non-negative pseudo random integer in [0, n). It panics if n <= 0.
func (r *Random) Int31n(n int32) int32 {
	if n <= 0 {
		panic("rand: invalid argument to Int31n")
	}
	return r.Int31() % n
}

// Range returns a pseudo random integer in [start, end].
func (r *Random) Range(start, end int32) int32 {
	return start + r.Int31()%(end+1-start)
}

// Float64 returns a pseudo random number in [0.0, 1.0].
func (r *Random) Float64() float64 {
	return float64(r.Int31()) / 0x7fffffff
}

// Bool returns a pseudo random boolean.
func (r *Random) Bool() bool {
	return r.signed()&1 == 0
}

// Uint64 returns a pseudo random 64-bit integer built from two draws.
func (r *Random) Uint64() uint64 {
	hi := uint64(uint32(r.signed()))
	return hi<<32 | uint64(uint32(r.signed()))
}
