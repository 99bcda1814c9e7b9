package meganum

import (
	"math/bits"

	"github.com/calebcase/oops"
)

// div returns the quotient and remainder of u/v. The divisor must be
// nonzero. Quotient limbs are found by binary search over the digit range
// [0, B-1]: no wide-division primitive is assumed, so each candidate digit
// is checked with a multiply and a magnitude compare.
func (c *Config) div(u, v limbs) (q, r limbs, err error) {
	if v.isZero() {
		return nil, nil, oops.Trace(ErrDivisionByZero)
	}
	switch u.cmp(v) {
	case -1:
		return limbs{0}, u, nil
	case 0:
		return limbs{1}, limbs{0}, nil
	}

	q = make(limbs, len(u))
	r = limbs{0}
	for i := len(u) - 1; i >= 0; i-- {
		// prepend the next dividend limb to the running remainder
		r = c.add(shlLimbs(r, 1), limbs{u[i]})

		// largest d in [0, B-1] with v*d <= r
		lo, hi := Word(0), c.mask
		var d Word
		for lo <= hi {
			mid := lo + (hi-lo)/2
			if c.mul(v, limbs{mid}).cmp(r) <= 0 {
				d = mid
				if mid == c.mask {
					break // lo would wrap past the digit range
				}
				lo = mid + 1
			} else {
				// mid >= 1 here: v*0 <= r always holds, so hi cannot wrap
				hi = mid - 1
			}
		}

		if d != 0 {
			r = c.sub(r, c.mul(v, limbs{d}))
		}
		q[i] = d
	}
	return q.norm(), r, nil
}

// divModW returns the quotient and remainder of x divided by a single
// nonzero word d. It carries the remainder into the next limb from the most
// significant end down. The decimal codec divides by 10 through this; it is
// not a general substitute for div.
func (c *Config) divModW(x limbs, d Word) (q limbs, r Word) {
	if debugMeganum && (d == 0 || d > c.mask) {
		panic("meganum: divModW divisor out of range")
	}
	q = make(limbs, len(x))
	for i := len(x) - 1; i >= 0; i-- {
		if c.width == 64 {
			// r < d always, so the double-word divide cannot trap
			qd, rd := bits.Div64(uint64(r), uint64(x[i]), uint64(d))
			q[i], r = Word(qd), Word(rd)
		} else {
			cur := uint64(r)<<c.width | uint64(x[i])
			q[i], r = Word(cur/uint64(d)), Word(cur%uint64(d))
		}
	}
	return q.norm(), r
}
