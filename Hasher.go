package tablemaps

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Hashable is implemented by keys that supply their own hash. Keys that are == must return the same value.
type Hashable interface {
	Hash() uint64
}

// HashString hashes s with xxhash64.
func HashString(s string) uint64 {
	return xxhash.Sum64String(s)
}

// HashBytes hashes b with xxhash64.
func HashBytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// HashUint64 hashes the 8 byte little-endian encoding of v, so the result doesn't depend on the platform.
func HashUint64(v uint64) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return xxhash.Sum64(b[:])
}

// HashInteger hashes any integer as its 64 bit two's complement value.
func HashInteger[T constraints.Integer](v T) uint64 {
	return HashUint64(uint64(v))
}

// HashFloat hashes the IEEE bits of v. 0 and -0 compare equal, so they hash alike.
func HashFloat[T constraints.Float](v T) uint64 {
	f := float64(v)
	if f == 0 {
		f = 0
	}
	return HashUint64(math.Float64bits(f))
}

// HashAny hashes a comparable value so that keys which are == hash alike.
// Hashable values use their own Hash. Strings, numbers and booleans (including named types over them) are hashed
// by value. Pointers and channels are hashed by address. Structs and arrays mix the hashes of their fields or
// elements, so a nested -0 still hashes like 0. Interfaces hash their dynamic value.
func HashAny(v any) uint64 {
	switch k := v.(type) {
	case Hashable:
		return k.Hash()
	case string:
		return HashString(k)
	case int:
		return HashInteger(k)
	case int64:
		return HashInteger(k)
	case uint64:
		return HashUint64(k)
	case uint:
		return HashInteger(k)
	case int32:
		return HashInteger(k)
	case uint32:
		return HashInteger(k)
	case uintptr:
		return HashInteger(k)
	}
	return hashValue(reflect.ValueOf(v))
}

var hashableType = reflect.TypeFor[Hashable]()

func hashValue(rv reflect.Value) uint64 {
	if rv.Kind() != reflect.Interface && rv.Type().Implements(hashableType) && rv.CanInterface() {
		return rv.Interface().(Hashable).Hash()
	}
	switch rv.Kind() {
	case reflect.Invalid:
		return 0
	case reflect.String:
		return HashString(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return HashInteger(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return HashUint64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return HashFloat(rv.Float())
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		return mix(HashFloat(real(c)), HashFloat(imag(c)))
	case reflect.Bool:
		if rv.Bool() {
			return HashUint64(1)
		}
		return HashUint64(0)
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan:
		return HashUint64(uint64(rv.Pointer()))
	case reflect.Interface:
		if rv.IsNil() {
			return 0
		}
		return hashValue(rv.Elem())
	case reflect.Struct:
		d := xxhash.New()
		for i := range rv.NumField() {
			if rv.Type().Field(i).Name == "_" {
				continue
			}
			writeHash(d, hashValue(rv.Field(i)))
		}
		return d.Sum64()
	case reflect.Array:
		d := xxhash.New()
		for i := range rv.Len() {
			writeHash(d, hashValue(rv.Index(i)))
		}
		return d.Sum64()
	}
	// maps, slices and funcs are not comparable, so no valid key gets here.
	panic(fmt.Sprintf("tablemaps: cannot hash %s", rv.Type()))
}

func writeHash(d *xxhash.Digest, h uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], h)
	d.Write(b[:])
}

func mix(a, b uint64) uint64 {
	d := xxhash.New()
	writeHash(d, a)
	writeHash(d, b)
	return d.Sum64()
}
