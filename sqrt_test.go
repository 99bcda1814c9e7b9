package meganum

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

var sqrtTests = []struct {
	x, want string
}{
	{"0", "0"},
	{"1", "1"},
	{"2", "1"},
	{"3", "1"},
	{"4", "2"},
	{"8", "2"},
	{"9", "3"},
	{"15", "3"},
	{"16", "4"},
	{"1000000", "1000"},
	{"999999", "999"},
	{"99980001", "9999"},
	{"340282366920938463463374607431768211456", "18446744073709551616"}, // 2**128
}

func TestSqrt(t *testing.T) {
	for _, c := range testConfigs(t) {
		for _, tt := range sqrtTests {
			x := mustParse(t, c, tt.x)
			z, err := x.Sqrt()
			require.NoError(t, err)
			require.Equal(t, tt.want, z.String(), "width %d: sqrt(%s)", c.width, tt.x)
		}
	}
}

func TestSqrtNegative(t *testing.T) {
	for _, c := range testConfigs(t) {
		x := mustParse(t, c, "-4")
		_, err := x.Sqrt()
		require.ErrorIs(t, err, ErrDomain)
	}
}

// For all non-negative n: s**2 <= n < (s+1)**2 where s = sqrt(n).
func TestSqrtInvariant(t *testing.T) {
	for _, c := range testConfigs(t) {
		c := c
		properties := gopter.NewProperties(nil)

		properties.Property("s*s <= n < (s+1)*(s+1)", prop.ForAll(
			func(a string) bool {
				n := mustParse(t, c, a)
				s, err := n.Sqrt()
				if err != nil {
					return false
				}
				sq, _ := s.Mul(s)
				if cmp, err := sq.Cmp(n); err != nil || cmp > 0 {
					return false
				}
				s1, _ := s.Add(c.FromUint64(1))
				sq1, _ := s1.Mul(s1)
				cmp, err := sq1.Cmp(n)
				return err == nil && cmp > 0
			},
			genDigits(),
		))

		properties.TestingRun(t)
	}
}

func TestFloatSqrt(t *testing.T) {
	c := testConfigs(t)[3] // width 64

	// even exponent: sqrt(16 * 2^-4) == 4 * 2^-2 (== 1)
	x := newNumber(c, Float, c.setUint64(16), c.setUint64(4), false, true)
	z, err := x.Sqrt()
	require.NoError(t, err)
	require.Equal(t, "4 * 2^-2", z.String())

	// odd positive exponent folds into the mantissa:
	// sqrt(2 * 2^1) == sqrt(4) == 2
	x = newNumber(c, Float, c.setUint64(2), c.setUint64(1), false, false)
	z, err = x.Sqrt()
	require.NoError(t, err)
	require.Equal(t, "2", z.String())
	require.Equal(t, Float, z.Kind())

	// odd negative exponent halves the mantissa before the root:
	// sqrt(8 * 2^-3) == sqrt(4 * 2^-2) == 2 * 2^-1 (== 1)
	x = newNumber(c, Float, c.setUint64(8), c.setUint64(3), false, true)
	z, err = x.Sqrt()
	require.NoError(t, err)
	require.Equal(t, "2 * 2^-1", z.String())

	// float zero stays zero
	z, err = c.Zero(Float).Sqrt()
	require.NoError(t, err)
	require.True(t, z.IsZero())
}
