package meganum

import "github.com/calebcase/oops"

// Signed-magnitude helpers shared by mantissa arithmetic and, in float
// kind, by exponent arithmetic (exponents are themselves limb sequences
// with an independent sign).

// signedAdd adds two signed magnitudes. Same signs add magnitudes and keep
// the sign; differing signs subtract the smaller magnitude from the larger
// and take the sign of the larger. Equal magnitudes of opposite sign yield
// a non-negative zero.
func (c *Config) signedAdd(xm limbs, xneg bool, ym limbs, yneg bool) (limbs, bool) {
	if xneg == yneg {
		return c.add(xm, ym), xneg
	}
	switch xm.cmp(ym) {
	case 0:
		return limbs{0}, false
	case 1:
		return c.sub(xm, ym), xneg
	default:
		return c.sub(ym, xm), yneg
	}
}

// cmpSigned compares two signed magnitudes, returning -1, 0 or +1.
func cmpSigned(xm limbs, xneg bool, ym limbs, yneg bool) int {
	xz, yz := xm.isZero(), ym.isZero()
	if xz && yz {
		return 0
	}
	xs, ys := 1, 1
	if xz {
		xs = 0
	} else if xneg {
		xs = -1
	}
	if yz {
		ys = 0
	} else if yneg {
		ys = -1
	}
	switch {
	case xs < ys:
		return -1
	case xs > ys:
		return 1
	}
	r := xm.cmp(ym)
	if xs < 0 {
		r = -r
	}
	return r
}

// shrBig shifts x right by a limb-sequence bit count. Shift distances past
// the end of x (including any too large for a machine word) collapse to
// zero.
func (c *Config) shrBig(x limbs, s limbs) limbs {
	n, ok := c.uint64(s)
	if !ok || n >= uint64(len(x))*uint64(c.width) {
		return limbs{0}
	}
	return c.shr(x, uint(n))
}

// Add returns x+y. Same-sign operands add magnitudes; differing signs
// subtract the smaller magnitude from the larger and take its sign. Float
// operands are exponent-aligned first: the mantissa under the smaller
// exponent is shifted right by the difference and the result carries the
// larger exponent. Mixing integer and float kinds fails with
// ErrUnsupported.
func (x *Number) Add(y *Number) (*Number, error) {
	if err := x.checkOperands(y); err != nil {
		return nil, err
	}
	c := x.cfg
	if x.kind != Float {
		m, neg := c.signedAdd(x.mant, x.neg, y.mant, y.neg)
		return newNumber(c, mixKind(x.kind, y.kind), m, nil, neg, false), nil
	}

	mx, my := x.mant, y.mant
	re, ren := x.exp, x.expNeg
	switch cmpSigned(x.exp, x.expNeg, y.exp, y.expNeg) {
	case 1:
		diff, _ := c.signedAdd(x.exp, x.expNeg, y.exp, !y.expNeg)
		my = c.shrBig(my, diff)
	case -1:
		diff, _ := c.signedAdd(y.exp, y.expNeg, x.exp, !x.expNeg)
		mx = c.shrBig(mx, diff)
		re, ren = y.exp, y.expNeg
	}
	m, neg := c.signedAdd(mx, x.neg, my, y.neg)
	return newNumber(c, Float, m, re, neg, ren), nil
}

// Sub returns x-y, as x + (-y).
func (x *Number) Sub(y *Number) (*Number, error) {
	return x.Add(y.Neg())
}

// Mul returns x*y. The magnitude is the product of magnitudes and the sign
// is the XOR of the operand signs. Float exponents are summed, respecting
// their independent signs.
func (x *Number) Mul(y *Number) (*Number, error) {
	if err := x.checkOperands(y); err != nil {
		return nil, err
	}
	c := x.cfg
	m := c.mul(x.mant, y.mant)
	neg := x.neg != y.neg
	if x.kind != Float {
		return newNumber(c, mixKind(x.kind, y.kind), m, nil, neg, false), nil
	}
	e, en := c.signedAdd(x.exp, x.expNeg, y.exp, y.expNeg)
	return newNumber(c, Float, m, e, neg, en), nil
}

// Div returns x/y. Integer division truncates toward zero, discarding the
// remainder (use DivMod to keep it). Float division divides the mantissas
// and subtracts the exponents. A zero divisor fails with ErrDivisionByZero.
func (x *Number) Div(y *Number) (*Number, error) {
	if err := x.checkOperands(y); err != nil {
		return nil, err
	}
	c := x.cfg
	q, _, err := c.div(x.mant, y.mant)
	if err != nil {
		return nil, err
	}
	neg := x.neg != y.neg
	if x.kind != Float {
		return newNumber(c, mixKind(x.kind, y.kind), q, nil, neg, false), nil
	}
	e, en := c.signedAdd(x.exp, x.expNeg, y.exp, !y.expNeg)
	return newNumber(c, Float, q, e, neg, en), nil
}

// DivMod returns the truncating quotient and the remainder of x/y. The
// remainder takes the sign of the dividend, so x == y*q + r with
// 0 <= |r| < |y|. Both operands must be integer-kind.
func (x *Number) DivMod(y *Number) (q, r *Number, err error) {
	if x.kind == Float || y.kind == Float {
		return nil, nil, oops.Trace(ErrUnsupported)
	}
	if err := x.checkOperands(y); err != nil {
		return nil, nil, err
	}
	c := x.cfg
	qm, rm, err := c.div(x.mant, y.mant)
	if err != nil {
		return nil, nil, err
	}
	kind := mixKind(x.kind, y.kind)
	q = newNumber(c, kind, qm, nil, x.neg != y.neg, false)
	r = newNumber(c, kind, rm, nil, x.neg, false)
	return q, r, nil
}

// Sqrt returns the square root of x: the exact integer square root in
// integer kind, and a mantissa square root with a halved exponent in float
// kind (the exponent's parity is first folded into the mantissa so the
// halving is exact). Negative x fails with ErrDomain.
func (x *Number) Sqrt() (*Number, error) {
	if x.neg {
		return nil, oops.Trace(ErrDomain)
	}
	c := x.cfg
	if x.IsZero() {
		return c.Zero(x.kind), nil
	}
	if x.kind != Float {
		return newNumber(c, x.kind, c.sqrtLimbs(x.mant), nil, false, false), nil
	}

	mant, exp := x.mant, x.exp
	if exp[0]&1 == 1 {
		// make the exponent even: mant*2**e == (2*mant)*2**(e-1) and
		// approximately (mant/2)*2**(e+1); either way |e| drops by one
		if x.expNeg {
			mant = c.shr(mant, 1)
		} else {
			mant = c.shl(mant, 1)
		}
		exp = c.sub(exp, limbs{1})
	}
	return newNumber(c, Float, c.sqrtLimbs(mant), c.half(exp), false, x.expNeg), nil
}

// Pow returns x**y by repeated squaring, testing the exponent's low bit and
// halving it each round. The exponent must be a non-negative integer-kind
// Number; anything else fails with ErrUnsupported. x**0 is 1.
func (x *Number) Pow(y *Number) (*Number, error) {
	if y.kind == Float || y.neg {
		return nil, oops.Trace(ErrUnsupported)
	}
	if debugMeganum && x.cfg != y.cfg {
		panic("meganum: operands from different Configs")
	}
	c := x.cfg
	result := newNumber(c, x.kind, limbs{1}, nil, false, false)
	base := x
	for e := y.mant; !e.isZero(); e = c.shr(e, 1) {
		var err error
		if e[0]&1 == 1 {
			if result, err = result.Mul(base); err != nil {
				return nil, err
			}
		}
		if base, err = base.Mul(base); err != nil {
			return nil, err
		}
	}
	return result, nil
}
