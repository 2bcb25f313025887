package curves

import (
	"crypto/elliptic"
	"crypto/rand"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"
)

// Reference is an independent, production implementation of a preset's
// group law. The engine is cross-checked against it.
type Reference interface {
	// Params returns the curve parameters (Order, etc.)
	Params() *elliptic.CurveParams

	// NewScalar generates a random scalar in [1, N)
	NewScalar() (*big.Int, error)

	// ScalarBaseMult computes k * G (base point multiplication)
	ScalarBaseMult(k *big.Int) (*big.Int, *big.Int)

	// ScalarMult computes k * P
	ScalarMult(Px, Py, k *big.Int) (*big.Int, *big.Int)

	// Add combines two points
	Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int)
}

// NewReference returns the reference implementation for a preset name.
// The toy curve has none, and wei25519 is covered by Wei25519Reference.
func NewReference(name string) (Reference, error) {
	switch name {
	case CurveSecp256k1:
		return &Secp256k1Reference{}, nil
	case CurveP256:
		return &P256Reference{}, nil
	default:
		return nil, errors.Errorf("curves: no reference implementation for %q", name)
	}
}

// Secp256k1Reference wraps the decred secp256k1 implementation.
type Secp256k1Reference struct{}

func (c *Secp256k1Reference) Params() *elliptic.CurveParams {
	return secp256k1.S256().Params()
}

func (c *Secp256k1Reference) NewScalar() (*big.Int, error) {
	return randScalar(c.Params().N)
}

func (c *Secp256k1Reference) ScalarBaseMult(k *big.Int) (*big.Int, *big.Int) {
	return secp256k1.S256().ScalarBaseMult(k.Bytes())
}

func (c *Secp256k1Reference) ScalarMult(Px, Py, k *big.Int) (*big.Int, *big.Int) {
	return secp256k1.S256().ScalarMult(Px, Py, k.Bytes())
}

func (c *Secp256k1Reference) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	return secp256k1.S256().Add(x1, y1, x2, y2)
}

// P256Reference wraps the standard library's NIST P-256.
type P256Reference struct{}

func (c *P256Reference) Params() *elliptic.CurveParams {
	return elliptic.P256().Params()
}

func (c *P256Reference) NewScalar() (*big.Int, error) {
	return randScalar(c.Params().N)
}

func (c *P256Reference) ScalarBaseMult(k *big.Int) (*big.Int, *big.Int) {
	return elliptic.P256().ScalarBaseMult(k.Bytes())
}

func (c *P256Reference) ScalarMult(Px, Py, k *big.Int) (*big.Int, *big.Int) {
	return elliptic.P256().ScalarMult(Px, Py, k.Bytes())
}

func (c *P256Reference) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	return elliptic.P256().Add(x1, y1, x2, y2)
}

// randScalar returns a uniform integer in [1, n).
func randScalar(n *big.Int) (*big.Int, error) {
	k, err := rand.Int(rand.Reader, new(big.Int).Sub(n, big.NewInt(1)))
	if err != nil {
		return nil, err
	}
	return k.Add(k, big.NewInt(1)), nil
}
