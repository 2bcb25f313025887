// Package ecc implements the group law of short-Weierstrass elliptic curves
// y² = x³ + ax + b over a prime field, on top of math/big.
//
// The arithmetic is variable time. It is meant for experimenting with small
// parameters and for cross-checking other implementations, not for handling
// secrets on cryptographically sized curves.
package ecc

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-weierstrass/internal/crypto/polynomial"
)

// maxEnumerationBits bounds the modulus size accepted by Points.
const maxEnumerationBits = 20

// Curve is a non-singular curve y² = x³ + ax + b over a Field. A Curve is
// immutable and safe for concurrent use.
type Curve struct {
	field *Field
	a, b  *big.Int

	rhs   *polynomial.Polynomial // x³ + ax + b
	slope *polynomial.Polynomial // 3x² + a, the tangent numerator
}

// New returns the curve y² = x³ + ax + b over field. The coefficients are
// reduced into the field. It fails with ErrSingularCurve when
// 4a³ + 27b² ≡ 0 (mod p).
func New(a, b *big.Int, field *Field) (*Curve, error) {
	if field == nil {
		return nil, errors.Wrap(ErrInvalidModulus, "ecc: nil field")
	}
	if a == nil || b == nil {
		return nil, errors.New("ecc: nil curve coefficient")
	}

	c := &Curve{
		field: field,
		a:     field.Reduce(a),
		b:     field.Reduce(b),
	}
	if c.Discriminant().Sign() == 0 {
		return nil, errors.Wrapf(ErrSingularCurve, "ecc: a=%v b=%v p=%v", c.a, c.b, field.p)
	}

	c.rhs = polynomial.New(field.p, c.b, c.a, zero, one)
	c.slope = c.rhs.Derivative()
	return c, nil
}

// Field returns the underlying field.
func (c *Curve) Field() *Field {
	return c.field
}

// A returns a copy of the linear coefficient.
func (c *Curve) A() *big.Int {
	return new(big.Int).Set(c.a)
}

// B returns a copy of the constant coefficient.
func (c *Curve) B() *big.Int {
	return new(big.Int).Set(c.b)
}

// Discriminant returns 4a³ + 27b² mod p.
func (c *Curve) Discriminant() *big.Int {
	f := c.field
	a3 := f.Mul(f.Square(c.a), c.a)
	b2 := f.Square(c.b)
	return f.Add(f.Mul(big.NewInt(4), a3), f.Mul(big.NewInt(27), b2))
}

// Equal reports whether both curves have the same coefficients over the same
// field.
func (c *Curve) Equal(other *Curve) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c == other {
		return true
	}
	return c.field.Equal(other.field) && c.a.Cmp(other.a) == 0 && c.b.Cmp(other.b) == 0
}

// Identity returns the point at infinity bound to c.
func (c *Curve) Identity() Point {
	return Point{curve: c}
}

// NewPoint returns the affine point (x, y) after reducing both coordinates
// into the field. It fails with ErrPointNotOnCurve if the reduced pair does
// not satisfy the curve equation.
func (c *Curve) NewPoint(x, y *big.Int) (Point, error) {
	if x == nil || y == nil {
		return Point{}, errors.Wrap(ErrPointNotOnCurve, "ecc: nil coordinate")
	}
	p := Point{curve: c, x: c.field.Reduce(x), y: c.field.Reduce(y)}
	if !c.onCurve(p.x, p.y) {
		return Point{}, errors.Wrapf(ErrPointNotOnCurve, "ecc: %v", p)
	}
	return p, nil
}

// Contains reports whether p lies on c. The identity lies on every curve;
// an affine point bound to a different curve never does.
func (c *Curve) Contains(p Point) bool {
	if p.IsIdentity() {
		return true
	}
	if !c.Equal(p.curve) {
		return false
	}
	return c.onCurve(p.x, p.y)
}

// Validate returns ErrMismatchedCurve if p is bound to another curve and
// ErrPointNotOnCurve if it does not satisfy the curve equation.
func (c *Curve) Validate(p Point) error {
	if err := c.bound(p); err != nil {
		return err
	}
	if !c.Contains(p) {
		return errors.Wrapf(ErrPointNotOnCurve, "ecc: %v", p)
	}
	return nil
}

// Points enumerates every affine point of c, ordered by x then y. It is only
// meant for small fields and fails with ErrFieldTooLarge when p has more
// than 20 bits. The modulus does not need to be prime.
func (c *Curve) Points() ([]Point, error) {
	if c.field.p.BitLen() > maxEnumerationBits {
		return nil, errors.Wrapf(ErrFieldTooLarge, "ecc: modulus has %d bits", c.field.p.BitLen())
	}
	n := c.field.p.Int64()

	roots := make(map[int64][]int64, n)
	for y := int64(0); y < n; y++ {
		sq := (y * y) % n
		roots[sq] = append(roots[sq], y)
	}

	var points []Point
	x := new(big.Int)
	for i := int64(0); i < n; i++ {
		x.SetInt64(i)
		for _, y := range roots[c.rhs.Evaluate(x).Int64()] {
			points = append(points, Point{curve: c, x: big.NewInt(i), y: big.NewInt(y)})
		}
	}
	return points, nil
}

// Order returns #E(F_p), the number of points of c including the identity.
// It has the same size limit as Points.
func (c *Curve) Order() (*big.Int, error) {
	points, err := c.Points()
	if err != nil {
		return nil, err
	}
	return big.NewInt(int64(len(points) + 1)), nil
}

func (c *Curve) onCurve(x, y *big.Int) bool {
	return c.field.Square(y).Cmp(c.rhs.Evaluate(x)) == 0
}

// bound checks that p is an identity or an affine point of a curve equal
// to c.
func (c *Curve) bound(p Point) error {
	if p.IsIdentity() || c.Equal(p.curve) {
		return nil
	}
	return errors.Wrapf(ErrMismatchedCurve, "ecc: %v is bound to a different curve", p)
}
