package polynomial

import (
	"math/big"
)

// Polynomial represents a polynomial f(x) = a_0 + a_1*x + ... + a_t*x^t
// over the integers modulo Modulus.
type Polynomial struct {
	Coefficients []*big.Int
	Modulus      *big.Int
}

// New builds a polynomial from its coefficients, lowest degree first.
// Coefficients are copied and reduced mod modulus; trailing zero
// coefficients are dropped so that Degree is exact.
func New(modulus *big.Int, coeffs ...*big.Int) *Polynomial {
	m := new(big.Int).Set(modulus)
	reduced := make([]*big.Int, len(coeffs))
	for i, c := range coeffs {
		reduced[i] = new(big.Int).Mod(c, m)
	}

	for len(reduced) > 1 && reduced[len(reduced)-1].Sign() == 0 {
		reduced = reduced[:len(reduced)-1]
	}
	if len(reduced) == 0 {
		reduced = []*big.Int{new(big.Int)}
	}

	return &Polynomial{
		Coefficients: reduced,
		Modulus:      m,
	}
}

// Degree returns the degree of the polynomial. The zero polynomial has
// degree 0.
func (p *Polynomial) Degree() int {
	return len(p.Coefficients) - 1
}

// Evaluate calculates f(x) mod Modulus
func (p *Polynomial) Evaluate(x *big.Int) *big.Int {
	// Horner's method
	// result = a_t
	// for i = t-1 down to 0:
	//   result = result * x + a_i

	degree := len(p.Coefficients) - 1
	result := new(big.Int).Set(p.Coefficients[degree])

	for i := degree - 1; i >= 0; i-- {
		result.Mul(result, x)
		result.Add(result, p.Coefficients[i])
		result.Mod(result, p.Modulus)
	}

	return result.Mod(result, p.Modulus)
}

// EvaluateMulti calculates f(x) for multiple x values
func (p *Polynomial) EvaluateMulti(xs []*big.Int) []*big.Int {
	results := make([]*big.Int, len(xs))
	for i, x := range xs {
		results[i] = p.Evaluate(x)
	}
	return results
}

// Derivative returns the formal derivative f'(x).
func (p *Polynomial) Derivative() *Polynomial {
	if len(p.Coefficients) == 1 {
		return New(p.Modulus, big.NewInt(0))
	}

	coeffs := make([]*big.Int, len(p.Coefficients)-1)
	for i := 1; i < len(p.Coefficients); i++ {
		coeffs[i-1] = new(big.Int).Mul(p.Coefficients[i], big.NewInt(int64(i)))
	}
	return New(p.Modulus, coeffs...)
}
