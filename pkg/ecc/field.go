package ecc

import (
	"math/big"

	"github.com/pkg/errors"
)

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
)

// Field implements arithmetic in Z/pZ. The modulus is expected to be prime,
// but primality is not checked; a composite modulus surfaces as
// ErrNotInvertible when an inverse does not exist.
//
// A Field is immutable and safe for concurrent use.
type Field struct {
	p *big.Int
}

// NewField returns the field of integers modulo p.
func NewField(p *big.Int) (*Field, error) {
	if p == nil || p.Cmp(one) <= 0 {
		return nil, errors.Wrapf(ErrInvalidModulus, "ecc: modulus %v", p)
	}
	return &Field{p: new(big.Int).Set(p)}, nil
}

// Modulus returns a copy of p.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.p)
}

// Equal reports whether both fields share the same modulus.
func (f *Field) Equal(other *Field) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.p.Cmp(other.p) == 0
}

// Contains reports whether v is a canonical element, i.e. 0 <= v < p.
func (f *Field) Contains(v *big.Int) bool {
	return v != nil && v.Sign() >= 0 && v.Cmp(f.p) < 0
}

// Reduce returns v mod p in [0, p).
func (f *Field) Reduce(v *big.Int) *big.Int {
	// big.Int.Mod is Euclidean, so negative inputs land in [0, p) as well.
	return new(big.Int).Mod(v, f.p)
}

func (f *Field) Add(x, y *big.Int) *big.Int {
	r := new(big.Int).Add(x, y)
	return r.Mod(r, f.p)
}

func (f *Field) Sub(x, y *big.Int) *big.Int {
	r := new(big.Int).Sub(x, y)
	return r.Mod(r, f.p)
}

func (f *Field) Mul(x, y *big.Int) *big.Int {
	r := new(big.Int).Mul(x, y)
	return r.Mod(r, f.p)
}

func (f *Field) Square(x *big.Int) *big.Int {
	return f.Mul(x, x)
}

// Neg returns -x mod p.
func (f *Field) Neg(x *big.Int) *big.Int {
	r := new(big.Int).Neg(x)
	return r.Mod(r, f.p)
}

// Inverse returns x⁻¹ mod p using the extended Euclidean algorithm. It fails
// with ErrNotInvertible when gcd(x, p) != 1, which includes x ≡ 0.
func (f *Field) Inverse(x *big.Int) (*big.Int, error) {
	a := f.Reduce(x)
	if a.Sign() == 0 {
		return nil, errors.Wrap(ErrNotInvertible, "ecc: inverse of zero")
	}

	// Invariant: oldS*a ≡ oldR and s*a ≡ r (mod p).
	oldR, r := a, new(big.Int).Set(f.p)
	oldS, s := big.NewInt(1), big.NewInt(0)
	q, tmp := new(big.Int), new(big.Int)
	for r.Sign() != 0 {
		q.Quo(oldR, r)

		tmp.Mul(q, r)
		oldR, r = r, new(big.Int).Sub(oldR, tmp)

		tmp.Mul(q, s)
		oldS, s = s, new(big.Int).Sub(oldS, tmp)
	}

	if oldR.Cmp(one) != 0 {
		return nil, errors.Wrapf(ErrNotInvertible, "ecc: gcd(%v, %v) = %v", a, f.p, oldR)
	}
	return oldS.Mod(oldS, f.p), nil
}

// Div returns x · y⁻¹ mod p.
func (f *Field) Div(x, y *big.Int) (*big.Int, error) {
	inv, err := f.Inverse(y)
	if err != nil {
		return nil, err
	}
	return f.Mul(x, inv), nil
}
