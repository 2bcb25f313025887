package ecc

import (
	"math/big"

	"github.com/pkg/errors"
)

// Add returns P + Q.
func (c *Curve) Add(p, q Point) (Point, error) {
	if err := c.bound(p); err != nil {
		return Point{}, opError("add", err)
	}
	if err := c.bound(q); err != nil {
		return Point{}, opError("add", err)
	}
	r, err := c.add(p, q)
	return r, opError("add", err)
}

// Double returns 2P.
func (c *Curve) Double(p Point) (Point, error) {
	if err := c.bound(p); err != nil {
		return Point{}, opError("double", err)
	}
	r, err := c.double(p)
	return r, opError("double", err)
}

// Negate returns -P, the reflection of P across the x-axis.
func (c *Curve) Negate(p Point) (Point, error) {
	if err := c.bound(p); err != nil {
		return Point{}, opError("negate", err)
	}
	if p.IsIdentity() {
		return c.Identity(), nil
	}
	return Point{curve: c, x: new(big.Int).Set(p.x), y: c.field.Neg(p.y)}, nil
}

// ScalarMultiply returns nP using double-and-add over the bits of n, least
// significant first. Negative scalars are rejected with ErrInvalidScalar;
// compute (-n)P as ScalarMultiply(Negate(P), n).
func (c *Curve) ScalarMultiply(p Point, n *big.Int) (Point, error) {
	if n == nil {
		return Point{}, opError("scalar multiply", errors.Wrap(ErrInvalidScalar, "ecc: nil scalar"))
	}
	if n.Sign() < 0 {
		return Point{}, opError("scalar multiply", errors.Wrapf(ErrInvalidScalar, "ecc: negative scalar %v", n))
	}
	if err := c.bound(p); err != nil {
		return Point{}, opError("scalar multiply", err)
	}

	acc := c.Identity()
	addend := p
	for i := 0; i < n.BitLen(); i++ {
		var err error
		if n.Bit(i) == 1 {
			if acc, err = c.add(acc, addend); err != nil {
				return Point{}, opError("scalar multiply", err)
			}
		}
		// The final doubling would be discarded.
		if i == n.BitLen()-1 {
			break
		}
		if addend, err = c.double(addend); err != nil {
			return Point{}, opError("scalar multiply", err)
		}
	}
	return acc, nil
}

func (c *Curve) add(p, q Point) (Point, error) {
	if p.IsIdentity() {
		return c.rebind(q), nil
	}
	if q.IsIdentity() {
		return c.rebind(p), nil
	}

	if p.x.Cmp(q.x) == 0 {
		if p.y.Cmp(q.y) == 0 {
			return c.double(p)
		}
		// Q = -P: the chord is vertical.
		return c.Identity(), nil
	}

	f := c.field
	lambda, err := f.Div(f.Sub(q.y, p.y), f.Sub(q.x, p.x))
	if err != nil {
		// Only reachable with a composite modulus.
		return Point{}, err
	}
	return c.chord(lambda, p, q.x), nil
}

func (c *Curve) double(p Point) (Point, error) {
	if p.IsIdentity() {
		return c.Identity(), nil
	}

	f := c.field
	denom := f.Add(p.y, p.y)
	if denom.Sign() == 0 {
		// 2-torsion point: the tangent is vertical.
		return c.Identity(), nil
	}

	lambda, err := f.Div(c.slope.Evaluate(p.x), denom)
	if err != nil {
		return Point{}, err
	}
	return c.chord(lambda, p, p.x), nil
}

// chord returns the third intersection of the line through p with slope
// lambda, reflected: x3 = λ² - x1 - x2, y3 = λ(x1 - x3) - y1.
func (c *Curve) chord(lambda *big.Int, p Point, x2 *big.Int) Point {
	f := c.field
	x3 := f.Sub(f.Sub(f.Square(lambda), p.x), x2)
	y3 := f.Sub(f.Mul(lambda, f.Sub(p.x, x3)), p.y)
	return Point{curve: c, x: x3, y: y3}
}

// rebind returns p bound to c. It is used for unbound identities and for
// affine points bound to an equal curve instance.
func (c *Curve) rebind(p Point) Point {
	if p.IsIdentity() {
		return c.Identity()
	}
	return Point{curve: c, x: p.x, y: p.y}
}
