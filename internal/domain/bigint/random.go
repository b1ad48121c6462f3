package bigint

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// ErrEmptyRange is returned when a random draw is requested from an empty interval.
var ErrEmptyRange = errors.New("empty random range")

// RandomRange returns a uniformly distributed integer in [min, max] read from random.
func RandomRange(random io.Reader, min, max Int) (Int, error) {
	if min.Cmp(max) > 0 {
		return Int{}, fmt.Errorf("%w: [%s, %s]", ErrEmptyRange, min, max)
	}
	span := new(big.Int).Sub(max.ref(), min.ref())
	span.Add(span, big.NewInt(1))

	r, err := rand.Int(random, span)
	if err != nil {
		return Int{}, fmt.Errorf("failed to read random integer: %w", err)
	}
	return Int{v: r.Add(r, min.ref())}, nil
}

// RandomBits returns a uniformly distributed integer in [0, 2^bits).
func RandomBits(random io.Reader, bits int) (Int, error) {
	if bits <= 0 {
		return Int{}, fmt.Errorf("%w: %d bits", ErrEmptyRange, bits)
	}
	buf := make([]byte, (bits+7)/8)
	if _, err := io.ReadFull(random, buf); err != nil {
		return Int{}, fmt.Errorf("failed to read random bits: %w", err)
	}
	// clear the excess high bits of the leading byte
	if excess := uint(len(buf)*8 - bits); excess > 0 {
		buf[0] &= byte(0xff >> excess)
	}
	return FromBytes(buf), nil
}
