package Maps

import "github.com/pkg/errors"

var (
	// ErrKeyNotFound is returned by Get and Delete on an absent key.
	ErrKeyNotFound = errors.New("key not found")
	// ErrIndexOutOfRange is returned by positional access outside [0, Len()).
	ErrIndexOutOfRange = errors.New("index out of range")
)

// KeyNotFound wraps ErrKeyNotFound with the missing key.
func KeyNotFound[K any](key K) error {
	return errors.Wrapf(ErrKeyNotFound, "key %#v", key)
}

// IndexOutOfRange wraps ErrIndexOutOfRange with the index and length.
func IndexOutOfRange(i, n int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", i, n)
}
