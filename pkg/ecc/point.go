package ecc

import (
	"fmt"
	"math/big"
)

// Point is an element of the group of a Curve: either the identity (the
// point at infinity) or an affine pair (x, y) satisfying the curve equation.
//
// Points are values; none of the methods mutate the receiver. The zero
// Point is an identity that is not bound to any curve and is accepted by
// every Curve.
type Point struct {
	curve *Curve
	x, y  *big.Int // nil for the identity
}

// IsIdentity reports whether p is the point at infinity.
func (p Point) IsIdentity() bool {
	return p.x == nil
}

// X returns a copy of the affine x-coordinate, or nil for the identity.
func (p Point) X() *big.Int {
	if p.IsIdentity() {
		return nil
	}
	return new(big.Int).Set(p.x)
}

// Y returns a copy of the affine y-coordinate, or nil for the identity.
func (p Point) Y() *big.Int {
	if p.IsIdentity() {
		return nil
	}
	return new(big.Int).Set(p.y)
}

// Curve returns the curve p is bound to, nil for the zero Point.
func (p Point) Curve() *Curve {
	return p.curve
}

// Equal reports whether p and q are the same group element. Identities are
// equal regardless of binding; affine points also need matching curves.
func (p Point) Equal(q Point) bool {
	if p.IsIdentity() || q.IsIdentity() {
		return p.IsIdentity() && q.IsIdentity()
	}
	return p.curve.Equal(q.curve) && p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

func (p Point) String() string {
	if p.IsIdentity() {
		return "Identity"
	}
	return fmt.Sprintf("(%s, %s)", p.x, p.y)
}
