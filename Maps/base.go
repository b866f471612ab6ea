/*
Package Maps defines the shared surface of the single-threaded maps under this directory, and the hashing and resizing
rules used by the two hash based ones.

# Variants
  - UnsortedMap: a slice scanned linearly. It's the bucket type of ChainMap.
  - SortedMap: a slice kept sorted by key with binary search, plus ordered queries.
  - ChainMap: separate chaining over lazily created UnsortedMap buckets.
  - ProbeMap: open addressing with linear probing and tombstones.

# Hashing
A key is hashed to 64 bits by tablemaps.HashAny unless WithHasher is given, then compressed into a table of length n as
(hash*Scale + Shift) mod Prime mod n. The product is computed in 128 bits so no precision is lost. Scale and Shift are
drawn once per map from math/rand/v2, which spreads adversarial key sets differently across maps. This isn't a
cryptographic defence.

# Resizing
Both hash maps grow after an insertion leaves more than half of the table in use. The new length is 2n-1, repeated until
the load is at most one half again. Growth rebuilds the table from scratch and drops the old one.
*/
package Maps

import (
	"math/bits"
	"math/rand/v2"

	"github.com/g-m-twostay/tablemaps"
	"go.uber.org/zap"
)

const (
	DefaultCapacity        = 11
	MinCapacity            = 2
	DefaultPrime    uint64 = 109345121
)

// seedSource seeds the per map random source when WithSeed isn't given.
var seedSource = rand.Uint64

// HashParams are the constants of the hash compression step.
// Scale must be in [1, Prime) and Shift in [0, Prime).
type HashParams struct {
	Prime, Scale, Shift uint64
}

// RandomHashParams draws Scale and Shift for prime from r.
func RandomHashParams(prime uint64, r *rand.Rand) HashParams {
	return HashParams{Prime: prime, Scale: 1 + r.Uint64N(prime-1), Shift: r.Uint64N(prime)}
}

func (p HashParams) valid() bool {
	return p.Prime > 1 && p.Scale > 0 && p.Scale < p.Prime && p.Shift < p.Prime
}

// Compress maps hash to [0,n) as (hash*Scale + Shift) mod Prime mod n.
func (p HashParams) Compress(hash uint64, n int) int {
	hi, lo := bits.Mul64(hash, p.Scale)
	lo, carry := bits.Add64(lo, p.Shift, 0)
	// hi < Scale < Prime, so hi+carry can't overflow.
	return int(bits.Rem64(hi+carry, lo, p.Prime) % uint64(n))
}

// Config is assembled from Options by the constructors of the hash based maps.
type Config struct {
	Capacity int
	Params   HashParams
	Logger   *zap.Logger
	prime    uint64
	seed     *uint64
	hasher   any
}

type Option func(*Config)

// WithCapacity sets the initial table length. Values below MinCapacity are raised to it.
func WithCapacity(n int) Option {
	return func(c *Config) {
		c.Capacity = n
	}
}

// WithPrime sets the modulus used for compression. Scale and Shift are still random.
func WithPrime(p uint64) Option {
	return func(c *Config) {
		c.prime = p
	}
}

// WithSeed makes the random Scale and Shift reproducible.
func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.seed = &seed
	}
}

// WithHashParams fixes the compression constants, overriding WithPrime and WithSeed.
func WithHashParams(p HashParams) Option {
	return func(c *Config) {
		c.Params = p
	}
}

// WithHasher replaces tablemaps.HashAny for keys of type K. Using it with a map of another key type panics.
func WithHasher[K comparable](h func(K) uint64) Option {
	return func(c *Config) {
		c.hasher = h
	}
}

// WithLogger receives debug events about resizing. The default logger discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

// NewConfig applies opts over the defaults and resolves the hash parameters. Invalid parameters panic.
func NewConfig(opts ...Option) *Config {
	c := &Config{Capacity: DefaultCapacity, prime: DefaultPrime}
	for _, o := range opts {
		o(c)
	}
	c.Capacity = max(c.Capacity, MinCapacity)
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	if c.Params == (HashParams{}) {
		if c.prime < 2 {
			panic("Maps: prime must be at least 2")
		}
		var r *rand.Rand
		if c.seed != nil {
			r = rand.New(rand.NewPCG(*c.seed, ^*c.seed))
		} else {
			r = rand.New(rand.NewPCG(seedSource(), seedSource()))
		}
		c.Params = RandomHashParams(c.prime, r)
	} else if !c.Params.valid() {
		panic("Maps: invalid hash parameters")
	}
	return c
}

// HashBase is the hashing state owned by each ChainMap and ProbeMap.
type HashBase[K comparable] struct {
	Params HashParams
	hash   func(K) uint64
	log    *zap.Logger
}

func NewHashBase[K comparable](c *Config) HashBase[K] {
	h := func(k K) uint64 {
		return tablemaps.HashAny(k)
	}
	if c.hasher != nil {
		h = c.hasher.(func(K) uint64)
	}
	return HashBase[K]{Params: c.Params, hash: h, log: c.Logger}
}

// Index of key in a table of length n.
func (u *HashBase[K]) Index(key K, n int) int {
	return u.Params.Compress(u.hash(key), n)
}

// LogResize records a rebuild of kind's table from length from to length to holding count entries.
func (u *HashBase[K]) LogResize(kind string, from, to, count int) {
	if ce := u.log.Check(zap.DebugLevel, "table rebuilt"); ce != nil {
		ce.Write(zap.String("map", kind), zap.Int("from", from), zap.Int("to", to), zap.Int("count", count))
	}
}

// Overloaded reports whether count entries exceed half of a table of length n.
func Overloaded(count, n int) bool {
	return count > n/2
}

// Grow returns the length a table of length n must be rebuilt to so that count entries fit under the load limit.
func Grow(count, n int) int {
	for n = 2*n - 1; Overloaded(count, n); n = 2*n - 1 {
	}
	return n
}
