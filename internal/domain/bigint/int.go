package bigint

import (
	"fmt"
	"math/big"
	"strings"
)

var bigZero = new(big.Int)

// Int is an immutable arbitrary-precision signed integer.
// The wrapped *big.Int is never mutated after construction.
type Int struct {
	v *big.Int
}

// Common constants.
var (
	Zero = New(0)
	One  = New(1)
	Two  = New(2)
)

// New returns an Int holding x.
func New(x int64) Int {
	return Int{v: big.NewInt(x)}
}

// FromBig returns an Int holding a copy of x. A nil x yields zero.
func FromBig(x *big.Int) Int {
	if x == nil {
		return Int{}
	}
	return Int{v: new(big.Int).Set(x)}
}

// FromBytes interprets buf as a big-endian unsigned integer.
func FromBytes(buf []byte) Int {
	return Int{v: new(big.Int).SetBytes(buf)}
}

// Parse parses a decimal integer with an optional leading sign.
func Parse(s string) (Int, error) {
	return ParseBase(s, 10)
}

// ParseBase parses s in the given base (2..62). Surrounding whitespace,
// empty input and digits outside the base are rejected with ErrInvalidFormat.
func ParseBase(s string, base int) (Int, error) {
	if base < 2 || base > big.MaxBase {
		return Int{}, fmt.Errorf("%w: unsupported base %d", ErrInvalidFormat, base)
	}
	if s == "" || strings.TrimSpace(s) != s {
		return Int{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	v, ok := new(big.Int).SetString(s, base)
	if !ok {
		return Int{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return Int{v: v}, nil
}

// MustParse is like Parse but panics on malformed input. Intended for constants and tests.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

func (x Int) ref() *big.Int {
	if x.v == nil {
		return bigZero
	}
	return x.v
}

// Big returns a copy of x as a *big.Int that the caller may mutate.
func (x Int) Big() *big.Int {
	return new(big.Int).Set(x.ref())
}

// Add returns x + y.
func (x Int) Add(y Int) Int {
	return Int{v: new(big.Int).Add(x.ref(), y.ref())}
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	return Int{v: new(big.Int).Sub(x.ref(), y.ref())}
}

// Mul returns x * y.
func (x Int) Mul(y Int) Int {
	return Int{v: new(big.Int).Mul(x.ref(), y.ref())}
}

// Neg returns -x.
func (x Int) Neg() Int {
	return Int{v: new(big.Int).Neg(x.ref())}
}

// Abs returns |x|.
func (x Int) Abs() Int {
	return Int{v: new(big.Int).Abs(x.ref())}
}

// QuoRem returns the truncated quotient and remainder of x / y, so that
// x = q*y + r and r has the sign of x.
func (x Int) QuoRem(y Int) (Int, Int, error) {
	if y.IsZero() {
		return Int{}, Int{}, ErrDivisionByZero
	}
	q, r := new(big.Int).QuoRem(x.ref(), y.ref(), new(big.Int))
	return Int{v: q}, Int{v: r}, nil
}

// Quo returns x / y truncated toward zero.
func (x Int) Quo(y Int) (Int, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns the truncated remainder of x / y.
func (x Int) Rem(y Int) (Int, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// Mod returns the Euclidean modulus of x by m, always in [0, |m|).
func (x Int) Mod(m Int) (Int, error) {
	if m.IsZero() {
		return Int{}, ErrDivisionByZero
	}
	return Int{v: new(big.Int).Mod(x.ref(), m.ref())}, nil
}

// Pow returns x**e.
func (x Int) Pow(e uint) Int {
	result := big.NewInt(1)
	base := new(big.Int).Set(x.ref())
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			result.Mul(result, base)
		}
		if e > 1 {
			base.Mul(base, base)
		}
	}
	return Int{v: result}
}

// GCD returns the non-negative greatest common divisor of x and y.
// GCD(0, 0) is 0.
func (x Int) GCD(y Int) Int {
	a := new(big.Int).Abs(x.ref())
	b := new(big.Int).Abs(y.ref())
	return Int{v: new(big.Int).GCD(nil, nil, a, b)}
}

// Lsh returns x << n.
func (x Int) Lsh(n uint) Int {
	return Int{v: new(big.Int).Lsh(x.ref(), n)}
}

// Rsh returns x >> n (arithmetic shift).
func (x Int) Rsh(n uint) Int {
	return Int{v: new(big.Int).Rsh(x.ref(), n)}
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Int) Cmp(y Int) int {
	return x.ref().Cmp(y.ref())
}

// Equal reports whether x == y.
func (x Int) Equal(y Int) bool {
	return x.Cmp(y) == 0
}

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x Int) Sign() int {
	return x.ref().Sign()
}

// IsZero reports whether x == 0.
func (x Int) IsZero() bool {
	return x.Sign() == 0
}

// IsOne reports whether x == 1.
func (x Int) IsOne() bool {
	return x.ref().IsInt64() && x.ref().Int64() == 1
}

// IsEven reports whether x is divisible by two.
func (x Int) IsEven() bool {
	return x.ref().Bit(0) == 0
}

// BitLen returns the bit length of |x|. The bit length of 0 is 0.
func (x Int) BitLen() int {
	return x.ref().BitLen()
}

// Bit returns bit i of |x|.
func (x Int) Bit(i int) uint {
	return new(big.Int).Abs(x.ref()).Bit(i)
}

// TrailingZeroBits returns the number of consecutive least significant zero bits of |x|.
func (x Int) TrailingZeroBits() uint {
	return x.ref().TrailingZeroBits()
}

// Int64 returns x as an int64 and whether the conversion was exact.
func (x Int) Int64() (int64, bool) {
	if !x.ref().IsInt64() {
		return 0, false
	}
	return x.ref().Int64(), true
}

// Bytes returns the big-endian magnitude of x.
func (x Int) Bytes() []byte {
	return x.ref().Bytes()
}

// String returns the decimal representation of x.
func (x Int) String() string {
	return x.ref().String()
}

// Text returns the representation of x in the given base.
func (x Int) Text(base int) string {
	return x.ref().Text(base)
}
