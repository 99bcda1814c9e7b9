package meganum

import "math/bits"

// limbs is an unsigned multi-precision integer x of the form
//
//	x = x[n-1]*B**(n-1) + x[n-2]*B**(n-2) + ... + x[1]*B + x[0]
//
// with B = 2**width and 0 <= x[i] < B, stored little-endian in a slice of
// length n. A limbs value is normalized when its most significant limb is
// nonzero; the canonical representation of zero is the one-limb slice {0}.
// Kernels never write to their operands: every operation allocates its
// result, so subslices of existing values may be passed in freely.
type limbs []Word

// norm truncates most-significant zero limbs, keeping at least one limb so
// that zero stays {0}.
func (x limbs) norm() limbs {
	i := len(x)
	for i > 1 && x[i-1] == 0 {
		i--
	}
	return x[:i]
}

// isZero reports whether x is the canonical zero. x must be normalized.
func (x limbs) isZero() bool {
	return len(x) == 1 && x[0] == 0
}

func (x limbs) clone() limbs {
	z := make(limbs, len(x))
	copy(z, x)
	return z
}

// cmp compares magnitudes: shorter (normalized) sequences are smaller, and
// equal-length sequences compare from the most significant limb down.
func (x limbs) cmp(y limbs) int {
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// bitLen returns the length of x in bits. The result is 0 for x == {0}.
func (c *Config) bitLen(x limbs) uint {
	top := x[len(x)-1]
	if top == 0 {
		return 0
	}
	return uint(len(x)-1)*c.width + uint(bits.Len64(uint64(top)))
}

// bit returns bit i of x (little-endian bit order), or 0 when i is past the
// end of x.
func (c *Config) bit(x limbs, i uint) Word {
	w := i / c.width
	if w >= uint(len(x)) {
		return 0
	}
	return x[w] >> (i % c.width) & 1
}

// addWWW returns the width-masked sum x+y+cin and its carry (0 or 1).
func (c *Config) addWWW(x, y, cin Word) (s, cout Word) {
	if c.width == 64 {
		s64, c64 := bits.Add64(uint64(x), uint64(y), uint64(cin))
		return Word(s64), Word(c64)
	}
	t := x + y + cin
	return t & c.mask, t >> c.width
}

// subWWW returns the width-masked difference x-y-bin and its borrow (0 or 1).
func (c *Config) subWWW(x, y, bin Word) (d, bout Word) {
	if c.width == 64 {
		d64, b64 := bits.Sub64(uint64(x), uint64(y), uint64(bin))
		return Word(d64), Word(b64)
	}
	t := x - y - bin
	if t > c.mask {
		return t & c.mask, 1
	}
	return t, 0
}

// mulAddWWW returns x*y + acc + cin as a double-width (hi, lo) limb pair.
func (c *Config) mulAddWWW(x, y, acc, cin Word) (hi, lo Word) {
	if c.width == 64 {
		h, l := bits.Mul64(uint64(x), uint64(y))
		l, cc := bits.Add64(l, uint64(acc), 0)
		h += cc
		l, cc = bits.Add64(l, uint64(cin), 0)
		h += cc
		return Word(h), Word(l)
	}
	t := uint64(x)*uint64(y) + uint64(acc) + uint64(cin)
	return Word(t >> c.width), Word(t) & c.mask
}

// add returns x+y. The result grows by one limb when the final carry is
// nonzero, so addition cannot overflow.
func (c *Config) add(x, y limbs) limbs {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	z := make(limbs, n, n+1)
	var carry Word
	for i := 0; i < n; i++ {
		var xi, yi Word
		if i < len(x) {
			xi = x[i]
		}
		if i < len(y) {
			yi = y[i]
		}
		z[i], carry = c.addWWW(xi, yi, carry)
	}
	if carry != 0 {
		z = append(z, carry)
	}
	return z.norm()
}

// sub returns x-y. It requires x >= y in magnitude; the caller resolves
// sign and operand order first. In debug builds a violated precondition
// panics via the final borrow check.
func (c *Config) sub(x, y limbs) limbs {
	z := make(limbs, len(x))
	var borrow Word
	for i := 0; i < len(x); i++ {
		var yi Word
		if i < len(y) {
			yi = y[i]
		}
		z[i], borrow = c.subWWW(x[i], yi, borrow)
	}
	if debugMeganum && borrow != 0 {
		panic("meganum: sub underflow")
	}
	return z.norm()
}

// shlLimbs returns x*B**k by prepending k zero limbs.
func shlLimbs(x limbs, k int) limbs {
	if x.isZero() || k == 0 {
		return x
	}
	z := make(limbs, len(x)+k)
	copy(z[k:], x)
	return z
}

// shl returns x << s.
func (c *Config) shl(x limbs, s uint) limbs {
	if x.isZero() || s == 0 {
		return x
	}
	nw, sb := s/c.width, s%c.width
	z := make(limbs, len(x)+int(nw)+1)
	if sb == 0 {
		copy(z[nw:], x)
	} else {
		for i, xi := range x {
			z[int(nw)+i] |= xi << sb & c.mask
			z[int(nw)+i+1] = xi >> (c.width - sb)
		}
	}
	return z.norm()
}

// shr returns x >> s, dropping the shifted-out bits.
func (c *Config) shr(x limbs, s uint) limbs {
	if x.isZero() || s == 0 {
		return x
	}
	nw, sb := s/c.width, s%c.width
	if nw >= uint(len(x)) {
		return limbs{0}
	}
	x = x[nw:]
	z := make(limbs, len(x))
	if sb == 0 {
		copy(z, x)
	} else {
		for i := 0; i < len(x); i++ {
			z[i] = x[i] >> sb
			if i+1 < len(x) {
				z[i] |= x[i+1] << (c.width - sb) & c.mask
			}
		}
	}
	return z.norm()
}

// half returns x >> 1. Square-root bisection halves its bound interval with
// this instead of a full division.
func (c *Config) half(x limbs) limbs {
	return c.shr(x, 1)
}

// setUint64 converts a machine word to limbs by repeated masking and
// shifting with the configured width.
func (c *Config) setUint64(v uint64) limbs {
	if v == 0 {
		return limbs{0}
	}
	var z limbs
	for v > 0 {
		z = append(z, Word(v)&c.mask)
		if c.width == 64 {
			v = 0
		} else {
			v >>= c.width
		}
	}
	return z
}

// uint64 converts x back to a machine word. ok is false when x does not
// fit in 64 bits.
func (c *Config) uint64(x limbs) (v uint64, ok bool) {
	if c.bitLen(x) > 64 {
		return 0, false
	}
	for i := len(x) - 1; i >= 0; i-- {
		v = v<<c.width | uint64(x[i])
	}
	return v, true
}
