package meganum

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, c *Config, s string) *Number {
	t.Helper()
	x, err := c.Parse(s)
	require.NoError(t, err, "parse %q", s)
	return x
}

var addSubTests = []struct {
	x, y, sum, diff string
}{
	{"0", "0", "0", "0"},
	{"1", "0", "1", "1"},
	{"0", "1", "1", "-1"},
	{"123", "456", "579", "-333"},
	{"456", "123", "579", "333"},
	{"-123", "-456", "-579", "333"},
	{"-123", "456", "333", "-579"},
	{"123", "-456", "-333", "579"},
	{"999999999999999999999999", "1", "1000000000000000000000000", "999999999999999999999998"},
	{"123", "123", "246", "0"},
	{"-123", "123", "0", "-246"},
}

func TestAddSub(t *testing.T) {
	for _, c := range testConfigs(t) {
		for _, tt := range addSubTests {
			x := mustParse(t, c, tt.x)
			y := mustParse(t, c, tt.y)

			z, err := x.Add(y)
			require.NoError(t, err)
			require.Equal(t, tt.sum, z.String(), "width %d: %s + %s", c.width, tt.x, tt.y)

			z, err = x.Sub(y)
			require.NoError(t, err)
			require.Equal(t, tt.diff, z.String(), "width %d: %s - %s", c.width, tt.x, tt.y)
		}
	}
}

// Limb width 8 (base 256): 255 + 1 carries into a second limb.
func TestAddCarryWidth8(t *testing.T) {
	c, err := New(8)
	require.NoError(t, err)
	x := c.FromUint64(255)
	one := c.FromUint64(1)
	z, err := x.Add(one)
	require.NoError(t, err)
	require.Equal(t, limbs{0, 1}, z.mant, spew.Sdump(z))
}

func TestCanonicalZero(t *testing.T) {
	for _, c := range testConfigs(t) {
		x := mustParse(t, c, "123")
		z, err := x.Sub(x)
		require.NoError(t, err)
		require.True(t, z.IsZero())
		require.Equal(t, 0, z.Sign())
		require.False(t, z.neg)
		require.Equal(t, limbs{0}, z.exp)
		require.False(t, z.expNeg)
		require.Equal(t, "0", z.String())

		// negating zero keeps it canonical
		require.Equal(t, 0, z.Neg().Sign())
		require.False(t, z.Neg().neg)

		// float zero is canonical too: equal magnitudes cancel
		f := newNumber(c, Float, c.setUint64(40), c.setUint64(3), false, true)
		z, err = f.Sub(f)
		require.NoError(t, err)
		require.True(t, z.IsZero())
		require.Equal(t, limbs{0}, z.exp)
		require.False(t, z.expNeg)
	}
}

func TestSignNegAbs(t *testing.T) {
	for _, c := range testConfigs(t) {
		x := mustParse(t, c, "-42")
		require.Equal(t, -1, x.Sign())
		require.Equal(t, 1, x.Neg().Sign())
		require.Equal(t, 1, x.Abs().Sign())
		require.Equal(t, "42", x.Abs().String())
		require.Equal(t, 1, mustParse(t, c, "42").Sign())
		require.Equal(t, 0, c.Zero(Integer).Sign())
	}
}

var cmpNumberTests = []struct {
	x, y string
	want int
}{
	{"0", "0", 0},
	{"0", "1", -1},
	{"-1", "0", -1},
	{"-1", "1", -1},
	{"1", "-1", 1},
	{"-2", "-1", -1},
	{"-1", "-2", 1},
	{"123456789123456789", "123456789123456788", 1},
}

func TestCmp(t *testing.T) {
	for _, c := range testConfigs(t) {
		for _, tt := range cmpNumberTests {
			x := mustParse(t, c, tt.x)
			y := mustParse(t, c, tt.y)
			got, err := x.Cmp(y)
			require.NoError(t, err)
			require.Equal(t, tt.want, got, "width %d: cmp(%s, %s)", c.width, tt.x, tt.y)
		}
	}
}

func TestStrictKindMixing(t *testing.T) {
	for _, c := range testConfigs(t) {
		i := c.FromUint64(2)
		f, err := c.Parse("1.5")
		require.NoError(t, err)
		require.Equal(t, Float, f.Kind())

		_, err = i.Add(f)
		require.ErrorIs(t, err, ErrUnsupported)
		_, err = f.Add(i)
		require.ErrorIs(t, err, ErrUnsupported)
		_, err = i.Mul(f)
		require.ErrorIs(t, err, ErrUnsupported)
		_, err = f.Div(i)
		require.ErrorIs(t, err, ErrUnsupported)
		_, err = i.Cmp(f)
		require.ErrorIs(t, err, ErrUnsupported)
	}
}

func TestIntegerBinaryViewMix(t *testing.T) {
	c := testConfigs(t)[0]
	i := c.FromUint64(10)
	b, err := c.ParseBits("0b101")
	require.NoError(t, err)
	require.Equal(t, BinaryView, b.Kind())

	z, err := i.Add(b)
	require.NoError(t, err)
	require.Equal(t, Integer, z.Kind())
	require.Equal(t, "15", z.String())

	z, err = b.Mul(b)
	require.NoError(t, err)
	require.Equal(t, BinaryView, z.Kind())
	require.Equal(t, "25", z.String())
}

var powTests = []struct {
	x, y, want string
}{
	{"2", "0", "1"},
	{"0", "0", "1"},
	{"0", "5", "0"},
	{"2", "10", "1024"},
	{"3", "7", "2187"},
	{"-2", "3", "-8"},
	{"-2", "4", "16"},
	{"10", "30", "1000000000000000000000000000000"},
}

func TestPow(t *testing.T) {
	for _, c := range testConfigs(t) {
		for _, tt := range powTests {
			x := mustParse(t, c, tt.x)
			y := mustParse(t, c, tt.y)
			z, err := x.Pow(y)
			require.NoError(t, err)
			require.Equal(t, tt.want, z.String(), "width %d: %s ** %s", c.width, tt.x, tt.y)
		}
	}
}

func TestPowRejects(t *testing.T) {
	c := testConfigs(t)[0]
	x := c.FromUint64(2)

	_, err := x.Pow(c.FromInt64(-1))
	require.ErrorIs(t, err, ErrUnsupported)

	f, err := c.Parse("1.5")
	require.NoError(t, err)
	_, err = x.Pow(f)
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestFromInt64(t *testing.T) {
	for _, c := range testConfigs(t) {
		require.Equal(t, "-9223372036854775808", c.FromInt64(-9223372036854775808).String())
		require.Equal(t, "-1", c.FromInt64(-1).String())
		require.Equal(t, "0", c.FromInt64(0).String())
		require.Equal(t, "9223372036854775807", c.FromInt64(9223372036854775807).String())
	}
}

func TestNumberUint64(t *testing.T) {
	for _, c := range testConfigs(t) {
		v, err := c.FromUint64(123456789).Uint64()
		require.NoError(t, err)
		require.Equal(t, uint64(123456789), v)

		// too large
		big := mustParse(t, c, "18446744073709551616") // 2**64
		_, err = big.Uint64()
		require.ErrorIs(t, err, ErrOverflow)

		// negative
		_, err = c.FromInt64(-1).Uint64()
		require.ErrorIs(t, err, ErrOverflow)

		// float
		f, err := c.Parse("0.5")
		require.NoError(t, err)
		_, err = f.Uint64()
		require.ErrorIs(t, err, ErrUnsupported)
	}
}

func TestAddProperties(t *testing.T) {
	for _, c := range testConfigs(t) {
		c := c
		properties := gopter.NewProperties(nil)

		properties.Property("addition commutes", prop.ForAll(
			func(a, b string, negA, negB bool) bool {
				x := mustParse(t, c, a)
				y := mustParse(t, c, b)
				if negA {
					x = x.Neg()
				}
				if negB {
					y = y.Neg()
				}
				l, err := x.Add(y)
				if err != nil {
					return false
				}
				r, err := y.Add(x)
				if err != nil {
					return false
				}
				cmp, err := l.Cmp(r)
				return err == nil && cmp == 0
			},
			genDigits(), genDigits(), gen.Bool(), gen.Bool(),
		))

		properties.Property("addition associates", prop.ForAll(
			func(a, b, d string) bool {
				x := mustParse(t, c, a)
				y := mustParse(t, c, b)
				z := mustParse(t, c, d)
				l, _ := x.Add(y)
				l, _ = l.Add(z)
				r, _ := y.Add(z)
				r, _ = x.Add(r)
				cmp, err := l.Cmp(r)
				return err == nil && cmp == 0
			},
			genDigits(), genDigits(), genDigits(),
		))

		properties.Property("x - x is canonical zero", prop.ForAll(
			func(a string, neg bool) bool {
				x := mustParse(t, c, a)
				if neg {
					x = x.Neg()
				}
				z, err := x.Sub(x)
				if err != nil {
					return false
				}
				return z.IsZero() && z.Sign() == 0 && !z.neg && z.exp.isZero() && !z.expNeg
			},
			genDigits(), gen.Bool(),
		))

		properties.TestingRun(t)
	}
}

func TestFloatArithmetic(t *testing.T) {
	c := testConfigs(t)[3] // width 64
	flt := func(mant uint64, exp uint64, expNeg bool) *Number {
		return newNumber(c, Float, c.setUint64(mant), c.setUint64(exp), false, expNeg)
	}

	// alignment: 8*2^-2 + 4*2^-1 == (8>>1 + 4)*2^-1 == 8*2^-1
	z, err := flt(8, 2, true).Add(flt(4, 1, true))
	require.NoError(t, err)
	require.Equal(t, "8 * 2^-1", z.String())

	// equal exponents add mantissas
	z, err = flt(3, 4, false).Add(flt(5, 4, false))
	require.NoError(t, err)
	require.Equal(t, "8 * 2^4", z.String())

	// multiplication sums exponents with independent signs
	z, err = flt(6, 3, false).Mul(flt(7, 1, true))
	require.NoError(t, err)
	require.Equal(t, "42 * 2^2", z.String())

	// division subtracts exponents
	z, err = flt(6, 3, false).Div(flt(3, 1, false))
	require.NoError(t, err)
	require.Equal(t, "2 * 2^2", z.String())

	// float division by zero
	_, err = flt(6, 3, false).Div(c.Zero(Float))
	require.ErrorIs(t, err, ErrDivisionByZero)

	// a distant tiny addend vanishes entirely
	z, err = flt(1, 5000, false).Add(flt(1, 5000, true))
	require.NoError(t, err)
	require.Equal(t, "1 * 2^5000", z.String())
}
