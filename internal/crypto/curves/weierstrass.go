package curves

import (
	"crypto/elliptic"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"
)

// newSecp256k1 takes its parameters from the decred implementation: a = 0,
// b = 7.
func newSecp256k1() (*Preset, error) {
	params := secp256k1.S256().Params()
	return newPreset(CurveSecp256k1,
		big.NewInt(0), params.B, params.P,
		params.Gx, params.Gy, params.N)
}

// newP256 takes its parameters from crypto/elliptic. The linear coefficient
// of every NIST prime curve is -3.
func newP256() (*Preset, error) {
	params := elliptic.P256().Params()
	return newPreset(CurveP256,
		big.NewInt(-3), params.B, params.P,
		params.Gx, params.Gy, params.N)
}

// FromParams converts stdlib-style curve parameters, which always have
// a = -3, into a preset.
func FromParams(params *elliptic.CurveParams) (*Preset, error) {
	if params == nil {
		return nil, errors.New("curves: nil params")
	}
	return newPreset(params.Name,
		big.NewInt(-3), params.B, params.P,
		params.Gx, params.Gy, params.N)
}
