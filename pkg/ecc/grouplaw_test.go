package ecc

import (
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allPoints returns every point of c, identity first.
func allPoints(t testing.TB, c *Curve) []Point {
	t.Helper()
	points, err := c.Points()
	require.NoError(t, err)
	return append([]Point{c.Identity()}, points...)
}

func mustAdd(t testing.TB, c *Curve, p, q Point) Point {
	t.Helper()
	r, err := c.Add(p, q)
	require.NoError(t, err)
	return r
}

func mustMul(t testing.TB, c *Curve, p Point, n int64) Point {
	t.Helper()
	r, err := c.ScalarMultiply(p, big.NewInt(n))
	require.NoError(t, err)
	return r
}

func TestReferenceScenario(t *testing.T) {
	c, g := toyCurve(t)
	require.True(t, c.Contains(g))

	// Multiples of G = (3, 6); G has order 5.
	expected := []Point{
		c.Identity(),
		g,
		mustPoint(t, c, 80, 10),
		mustPoint(t, c, 80, 87),
		mustPoint(t, c, 3, 91),
		c.Identity(),
	}

	sum := c.Identity()
	for k := int64(0); k <= 5; k++ {
		got := mustMul(t, c, g, k)
		assert.True(t, got.Equal(sum), "%d*G: double-and-add %v, repeated addition %v", k, got, sum)
		assert.True(t, got.Equal(expected[k]), "%d*G = %v, want %v", k, got, expected[k])
		assert.True(t, c.Contains(got))
		sum = mustAdd(t, c, sum, g)
	}
}

func TestAddIdentityLaws(t *testing.T) {
	c, _ := toyCurve(t)
	for _, p := range allPoints(t, c) {
		assert.True(t, mustAdd(t, c, p, c.Identity()).Equal(p), "%v + O", p)
		assert.True(t, mustAdd(t, c, c.Identity(), p).Equal(p), "O + %v", p)
		assert.True(t, mustAdd(t, c, p, Point{}).Equal(p), "%v + unbound O", p)
	}
}

func TestAddClosureAndCommutativity(t *testing.T) {
	c, _ := toyCurve(t)
	points := allPoints(t, c)
	for _, p := range points {
		for _, q := range points {
			pq := mustAdd(t, c, p, q)
			qp := mustAdd(t, c, q, p)
			if !c.Contains(pq) {
				t.Fatalf("%v + %v = %v is not on the curve", p, q, pq)
			}
			if !pq.Equal(qp) {
				t.Fatalf("%v + %v = %v but %v + %v = %v", p, q, pq, q, p, qp)
			}
		}
	}
}

func TestAddAssociativity(t *testing.T) {
	c, _ := toyCurve(t)
	points := allPoints(t, c)
	// Every 7th point keeps this under a second while still mixing
	// doublings, inverses and generic chords.
	for i := 0; i < len(points); i += 7 {
		for j := 0; j < len(points); j += 3 {
			for k := 0; k < len(points); k += 11 {
				p, q, r := points[i], points[j], points[k]
				left := mustAdd(t, c, mustAdd(t, c, p, q), r)
				right := mustAdd(t, c, p, mustAdd(t, c, q, r))
				require.True(t, left.Equal(right), "(%v+%v)+%v != %v+(%v+%v)", p, q, r, p, q, r)
			}
		}
	}
}

func TestInverseLaw(t *testing.T) {
	c, _ := toyCurve(t)
	for _, p := range allPoints(t, c) {
		neg, err := c.Negate(p)
		require.NoError(t, err)
		assert.True(t, c.Contains(neg))
		assert.True(t, mustAdd(t, c, p, neg).IsIdentity(), "%v + %v", p, neg)

		if !p.IsIdentity() {
			mirrored := mustPoint(t, c, p.X().Int64(), -p.Y().Int64())
			assert.True(t, mustAdd(t, c, p, mirrored).IsIdentity())
		}
	}
}

func TestDouble(t *testing.T) {
	c, g := toyCurve(t)

	t.Run("consistent with add", func(t *testing.T) {
		for _, p := range allPoints(t, c) {
			d, err := c.Double(p)
			require.NoError(t, err)
			assert.True(t, c.Contains(d))
			assert.True(t, d.Equal(mustAdd(t, c, p, p)), "2*%v", p)
		}
	})

	t.Run("identity", func(t *testing.T) {
		d, err := c.Double(c.Identity())
		require.NoError(t, err)
		assert.True(t, d.IsIdentity())
	})

	t.Run("known value", func(t *testing.T) {
		d, err := c.Double(g)
		require.NoError(t, err)
		assert.True(t, d.Equal(mustPoint(t, c, 80, 10)))
	})

	t.Run("two-torsion point", func(t *testing.T) {
		// y² = x³ - x over F_97 has (0, 0), (1, 0) and (96, 0).
		tc, err := New(big.NewInt(-1), big.NewInt(0), mustField(t, 97))
		require.NoError(t, err)
		for _, x := range []int64{0, 1, 96} {
			p := mustPoint(t, tc, x, 0)
			d, err := tc.Double(p)
			require.NoError(t, err)
			assert.True(t, d.IsIdentity(), "2*%v", p)
			assert.True(t, mustAdd(t, tc, p, p).IsIdentity())
		}
	})
}

func TestScalarMultiply(t *testing.T) {
	c, g := toyCurve(t)
	points := allPoints(t, c)

	t.Run("zero and one", func(t *testing.T) {
		for _, p := range points {
			assert.True(t, mustMul(t, c, p, 0).IsIdentity())
			assert.True(t, mustMul(t, c, p, 1).Equal(p))
		}
	})

	t.Run("distributive over scalar addition", func(t *testing.T) {
		for i := 0; i < len(points); i += 9 {
			p := points[i]
			for m := int64(0); m < 12; m++ {
				for n := int64(0); n < 12; n++ {
					left := mustMul(t, c, p, m+n)
					right := mustAdd(t, c, mustMul(t, c, p, m), mustMul(t, c, p, n))
					require.True(t, left.Equal(right), "(%d+%d)*%v", m, n, p)
				}
			}
		}
	})

	t.Run("group order annihilates", func(t *testing.T) {
		order, err := c.Order()
		require.NoError(t, err)
		for _, p := range points {
			r, err := c.ScalarMultiply(p, order)
			require.NoError(t, err)
			assert.True(t, r.IsIdentity(), "#E * %v", p)
		}
	})

	t.Run("large scalar", func(t *testing.T) {
		n := new(big.Int).Lsh(big.NewInt(1), 200)
		n.Add(n, big.NewInt(3)) // 2^200 + 3 ≡ 1 + 3 = 4 (mod 5)
		r, err := c.ScalarMultiply(g, n)
		require.NoError(t, err)
		assert.True(t, r.Equal(mustMul(t, c, g, 4)))
	})

	t.Run("negative scalar", func(t *testing.T) {
		_, err := c.ScalarMultiply(g, big.NewInt(-2))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidScalar))
		assert.True(t, IsCallerError(err))

		var opErr *OpError
		require.True(t, errors.As(err, &opErr))
		assert.Equal(t, "scalar multiply", opErr.Op)

		// (-2)G through Negate
		neg, err := c.Negate(g)
		require.NoError(t, err)
		assert.True(t, mustMul(t, c, neg, 2).Equal(mustMul(t, c, g, 3)))
	})

	t.Run("nil scalar", func(t *testing.T) {
		_, err := c.ScalarMultiply(g, nil)
		assert.True(t, errors.Is(err, ErrInvalidScalar))
	})

	t.Run("does not mutate scalar", func(t *testing.T) {
		n := big.NewInt(7)
		_, err := c.ScalarMultiply(g, n)
		require.NoError(t, err)
		assert.Equal(t, big.NewInt(7), n)
	})
}

func TestMismatchedCurve(t *testing.T) {
	c, g := toyCurve(t)
	other, err := New(big.NewInt(1), big.NewInt(1), mustField(t, 97))
	require.NoError(t, err)
	h := mustPoint(t, other, 0, 1)

	_, err = c.Add(g, h)
	assert.True(t, errors.Is(err, ErrMismatchedCurve))
	_, err = c.Add(h, g)
	assert.True(t, errors.Is(err, ErrMismatchedCurve))
	_, err = c.Double(h)
	assert.True(t, errors.Is(err, ErrMismatchedCurve))
	_, err = c.Negate(h)
	assert.True(t, errors.Is(err, ErrMismatchedCurve))
	_, err = c.ScalarMultiply(h, big.NewInt(2))
	assert.True(t, errors.Is(err, ErrMismatchedCurve))
	assert.True(t, IsCallerError(err))

	// Identities carry no coordinates and mix freely.
	r, err := c.Add(g, other.Identity())
	require.NoError(t, err)
	assert.True(t, r.Equal(g))
}

func TestCompositeModulusNotInvertible(t *testing.T) {
	// y² = x³ + x + 1 over Z/15Z: the chord through (0, 1) and (3, 1) needs
	// the inverse of 3, which does not exist.
	c, err := New(big.NewInt(1), big.NewInt(1), mustField(t, 15))
	require.NoError(t, err)
	p := mustPoint(t, c, 0, 1)
	q := mustPoint(t, c, 3, 1)

	_, err = c.Add(p, q)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotInvertible))
	assert.True(t, IsParameterError(err))

	var opErr *OpError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "add", opErr.Op)
	assert.Contains(t, err.Error(), "ecc: add:")
}
