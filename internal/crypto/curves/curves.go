package curves

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-weierstrass/pkg/ecc"
)

// Names of the supported presets.
const (
	CurveToy97     = "toy97"
	CurveSecp256k1 = "secp256k1"
	CurveP256      = "p256"
	CurveWei25519  = "wei25519"
)

// Preset is a named curve together with a base point of known order.
type Preset struct {
	Name      string
	Curve     *ecc.Curve
	Generator ecc.Point
	N         *big.Int // order of Generator
}

// Names returns the names accepted by New.
func Names() []string {
	return []string{CurveToy97, CurveSecp256k1, CurveP256, CurveWei25519}
}

// New builds the preset registered under name.
func New(name string) (*Preset, error) {
	switch name {
	case CurveToy97:
		return newToy97()
	case CurveSecp256k1:
		return newSecp256k1()
	case CurveP256:
		return newP256()
	case CurveWei25519:
		return newWei25519()
	default:
		return nil, errors.Errorf("curves: unsupported curve %q", name)
	}
}

// newToy97 is y² = x³ + 2x + 3 over F_97 with G = (3, 6) of order 5.
func newToy97() (*Preset, error) {
	return newPreset(CurveToy97,
		big.NewInt(2), big.NewInt(3), big.NewInt(97),
		big.NewInt(3), big.NewInt(6), big.NewInt(5))
}

func newPreset(name string, a, b, p, gx, gy, n *big.Int) (*Preset, error) {
	field, err := ecc.NewField(p)
	if err != nil {
		return nil, errors.Wrapf(err, "curves: %s", name)
	}
	curve, err := ecc.New(a, b, field)
	if err != nil {
		return nil, errors.Wrapf(err, "curves: %s", name)
	}
	g, err := curve.NewPoint(gx, gy)
	if err != nil {
		return nil, errors.Wrapf(err, "curves: %s generator", name)
	}
	return &Preset{
		Name:      name,
		Curve:     curve,
		Generator: g,
		N:         new(big.Int).Set(n),
	}, nil
}

// ScalarBaseMult computes k * G on the engine curve.
func (p *Preset) ScalarBaseMult(k *big.Int) (ecc.Point, error) {
	return p.Curve.ScalarMultiply(p.Generator, k)
}
