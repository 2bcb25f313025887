package curves

import (
	"math/big"

	"filippo.io/edwards25519"
	"github.com/pkg/errors"

	"github.com/smallyu/go-weierstrass/pkg/ecc"
)

// Curve25519 in short-Weierstrass form (Wei25519). The Montgomery curve
// v² = u³ + Au² + u maps to y² = x³ + ax + b through x = u + A/3, y = v,
// with a = (3 - A²)/3 and b = (2A³ - 9A)/27.
var (
	p25519 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19))

	// l = 2^252 + 27742317777372353535851937790883648493
	l25519, _ = new(big.Int).SetString("7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)

	montgomeryA = big.NewInt(486662)
)

type wei25519Map struct {
	field *ecc.Field
	shift *big.Int // A/3
}

func newWei25519Map() (*wei25519Map, error) {
	field, err := ecc.NewField(p25519)
	if err != nil {
		return nil, err
	}
	shift, err := field.Div(montgomeryA, big.NewInt(3))
	if err != nil {
		return nil, err
	}
	return &wei25519Map{field: field, shift: shift}, nil
}

// coefficients returns (a, b) of the Weierstrass form.
func (m *wei25519Map) coefficients() (*big.Int, *big.Int, error) {
	f := m.field
	a2 := f.Square(montgomeryA)
	a, err := f.Div(f.Sub(big.NewInt(3), a2), big.NewInt(3))
	if err != nil {
		return nil, nil, err
	}
	a3 := f.Mul(a2, montgomeryA)
	num := f.Sub(f.Mul(big.NewInt(2), a3), f.Mul(big.NewInt(9), montgomeryA))
	b, err := f.Div(num, big.NewInt(27))
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// x returns the Weierstrass x-coordinate of an Edwards point.
func (m *wei25519Map) x(p *edwards25519.Point) *big.Int {
	return m.field.Add(montgomeryU(p), m.shift)
}

func newWei25519() (*Preset, error) {
	m, err := newWei25519Map()
	if err != nil {
		return nil, errors.Wrap(err, "curves: wei25519")
	}
	a, b, err := m.coefficients()
	if err != nil {
		return nil, errors.Wrap(err, "curves: wei25519")
	}

	// The Ed25519 base point maps to u = 9; either square root gives a
	// generator of the same subgroup.
	gx := m.x(edwards25519.NewGeneratorPoint())
	f := m.field
	rhs := f.Add(f.Add(f.Mul(f.Square(gx), gx), f.Mul(a, gx)), b)
	gy := new(big.Int).ModSqrt(rhs, p25519)
	if gy == nil {
		return nil, errors.New("curves: wei25519 generator has no y-coordinate")
	}
	return newPreset(CurveWei25519, a, b, p25519, gx, gy, l25519)
}

// Wei25519Reference computes multiples of the wei25519 generator with
// edwards25519. Only x-coordinates are available, which identifies k*G up
// to sign.
type Wei25519Reference struct {
	m *wei25519Map
}

func NewWei25519Reference() (*Wei25519Reference, error) {
	m, err := newWei25519Map()
	if err != nil {
		return nil, err
	}
	return &Wei25519Reference{m: m}, nil
}

// BaseMultX returns the x-coordinate of k*G. k must not be a multiple of
// the group order, since the identity has no coordinates.
func (r *Wei25519Reference) BaseMultX(k *big.Int) (*big.Int, error) {
	reduced := new(big.Int).Mod(k, l25519)
	if reduced.Sign() == 0 {
		return nil, errors.Wrap(ecc.ErrInvalidScalar, "curves: scalar is a multiple of the group order")
	}
	s, err := scalarFromBigInt(reduced)
	if err != nil {
		return nil, err
	}
	return r.m.x(edwards25519.NewIdentityPoint().ScalarBaseMult(s)), nil
}

// scalarFromBigInt converts n < l into an edwards25519 scalar.
func scalarFromBigInt(n *big.Int) (*edwards25519.Scalar, error) {
	// edwards25519 uses little-endian, big.Int.Bytes() is big-endian.
	var buf [32]byte
	bytes := n.Bytes()
	for i := 0; i < len(bytes); i++ {
		buf[len(bytes)-1-i] = bytes[i]
	}
	return edwards25519.NewScalar().SetCanonicalBytes(buf[:])
}

// montgomeryU returns the birationally equivalent Curve25519 u-coordinate.
func montgomeryU(p *edwards25519.Point) *big.Int {
	b := p.BytesMontgomery()
	be := make([]byte, len(b))
	for i := range b {
		be[len(b)-1-i] = b[i]
	}
	return new(big.Int).SetBytes(be)
}
