package meganum

import (
	"fmt"

	"github.com/calebcase/oops"
)

// Kind selects the capability set of a Number. It is a tagged variant, not
// a hierarchy: operations dispatch by matching the kind and fail with
// ErrUnsupported on a mismatch.
type Kind uint8

const (
	// Integer numbers carry no exponent; float-only operations fail.
	Integer Kind = iota
	// Float numbers attach a signed binary exponent to the mantissa.
	Float
	// BinaryView numbers have integer semantics plus bit-string and byte
	// conversions, recomputed from the limbs on demand.
	BinaryView
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "Integer"
	case Float:
		return "Float"
	case BinaryView:
		return "BinaryView"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// A Number is an immutable arbitrary-precision value: a limb-sequence
// mantissa with a sign, and, in float kind, a signed binary exponent held
// as a second limb sequence. Every operation returns a new, normalized
// Number; no Number is mutated after construction.
type Number struct {
	cfg    *Config
	kind   Kind
	mant   limbs
	exp    limbs
	neg    bool
	expNeg bool
}

// newNumber builds and normalizes a Number. All constructing operations
// funnel through here.
func newNumber(c *Config, kind Kind, mant, exp limbs, neg, expNeg bool) *Number {
	x := &Number{cfg: c, kind: kind, mant: mant, exp: exp, neg: neg, expNeg: expNeg}
	x.normalize()
	if debugMeganum {
		x.validate()
	}
	return x
}

// normalize trims trailing zero limbs from the mantissa (and the exponent,
// in float kind) and canonicalizes zero: a zero mantissa forces a
// non-negative sign and a zero exponent.
func (x *Number) normalize() {
	x.mant = x.mant.norm()
	if x.kind == Float {
		if x.exp == nil {
			x.exp = limbs{0}
		}
		x.exp = x.exp.norm()
	} else {
		x.exp = limbs{0}
		x.expNeg = false
	}
	if x.exp.isZero() {
		x.expNeg = false
	}
	if x.mant.isZero() {
		x.neg = false
		x.exp = limbs{0}
		x.expNeg = false
	}
}

func (x *Number) validate() {
	if !debugMeganum {
		panic("validate called but debugMeganum is not set")
	}
	if x.cfg == nil {
		panic("meganum: Number without Config")
	}
	if len(x.mant) == 0 {
		panic("meganum: empty mantissa")
	}
	if len(x.mant) > 1 && x.mant[len(x.mant)-1] == 0 {
		panic("meganum: denormalized mantissa")
	}
	for _, w := range x.mant {
		if w > x.cfg.mask {
			panic(fmt.Sprintf("meganum: limb %#x exceeds width %d", w, x.cfg.width))
		}
	}
	if x.mant.isZero() && (x.neg || !x.exp.isZero() || x.expNeg) {
		panic("meganum: non-canonical zero")
	}
	if x.kind != Float && (!x.exp.isZero() || x.expNeg) {
		panic("meganum: integer with exponent")
	}
	if x.exp.isZero() && x.expNeg {
		panic("meganum: negative zero exponent")
	}
}

// Zero returns the canonical zero of the given kind.
func (c *Config) Zero(kind Kind) *Number {
	return newNumber(c, kind, limbs{0}, limbs{0}, false, false)
}

// FromUint64 returns an integer Number with the value of v, converting by
// repeated masking and shifting with the configured width.
func (c *Config) FromUint64(v uint64) *Number {
	return newNumber(c, Integer, c.setUint64(v), limbs{0}, false, false)
}

// FromInt64 returns an integer Number with the value of v.
func (c *Config) FromInt64(v int64) *Number {
	neg := v < 0
	u := uint64(v)
	if neg {
		u = -u
	}
	return newNumber(c, Integer, c.setUint64(u), limbs{0}, neg, false)
}

// Uint64 converts x back into a machine word. It fails with ErrUnsupported
// for float numbers and ErrOverflow when the value does not fit.
func (x *Number) Uint64() (uint64, error) {
	if x.kind == Float {
		return 0, oops.Trace(ErrUnsupported)
	}
	if x.neg {
		return 0, oops.Trace(ErrOverflow)
	}
	v, ok := x.cfg.uint64(x.mant)
	if !ok {
		return 0, oops.Trace(ErrOverflow)
	}
	return v, nil
}

// Kind returns the variant tag of x.
func (x *Number) Kind() Kind { return x.kind }

// Config returns the Config that created x.
func (x *Number) Config() *Config { return x.cfg }

// IsZero reports whether x is zero.
func (x *Number) IsZero() bool { return x.mant.isZero() }

// Sign returns -1, 0 or +1 according to the sign of x.
func (x *Number) Sign() int {
	switch {
	case x.mant.isZero():
		return 0
	case x.neg:
		return -1
	}
	return 1
}

// Neg returns -x. Negating zero yields zero.
func (x *Number) Neg() *Number {
	return newNumber(x.cfg, x.kind, x.mant, x.exp, !x.neg, x.expNeg)
}

// Abs returns |x|.
func (x *Number) Abs() *Number {
	return newNumber(x.cfg, x.kind, x.mant, x.exp, false, x.expNeg)
}

// CmpAbs compares the magnitudes of x and y, ignoring signs. Both operands
// must be integer-kind.
func (x *Number) CmpAbs(y *Number) (int, error) {
	if x.kind == Float || y.kind == Float {
		return 0, oops.Trace(ErrUnsupported)
	}
	return x.mant.cmp(y.mant), nil
}

// Cmp compares x and y, returning -1, 0 or +1. Both operands must be
// integer-kind; float comparison requires alignment and is not provided.
func (x *Number) Cmp(y *Number) (int, error) {
	if x.kind == Float || y.kind == Float {
		return 0, oops.Trace(ErrUnsupported)
	}
	xs, ys := x.Sign(), y.Sign()
	switch {
	case xs < ys:
		return -1, nil
	case xs > ys:
		return 1, nil
	case xs == 0:
		return 0, nil
	}
	r := x.mant.cmp(y.mant)
	if xs < 0 {
		r = -r
	}
	return r, nil
}

// mixKind returns the kind of the result of combining a and b. Matching
// kinds propagate; Integer and BinaryView combine to Integer.
func mixKind(a, b Kind) Kind {
	if a == b {
		return a
	}
	return Integer
}

// checkOperands rejects integer/float kind mixes and, in debug builds,
// operands from different Configs.
func (x *Number) checkOperands(y *Number) error {
	if debugMeganum && x.cfg != y.cfg {
		panic("meganum: operands from different Configs")
	}
	if (x.kind == Float) != (y.kind == Float) {
		return oops.Trace(ErrUnsupported)
	}
	return nil
}
