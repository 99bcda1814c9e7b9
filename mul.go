package meganum

// Multiplication of limb sequences. Operands below karatsubaThreshold limbs
// are multiplied with the schoolbook algorithm; larger operands split
// recursively per Karatsuba, falling back to schoolbook once the recursion
// depth cap is reached.

const (
	// karatsubaThreshold is the operand length, in limbs, at which mul
	// switches from schoolbook to Karatsuba multiplication.
	karatsubaThreshold = 32

	// karatsubaMaxDepth bounds the Karatsuba recursion. Operand length
	// halves per level, so 64 levels cover any slice addressable on a
	// 64-bit host; the cap exists to keep stack usage bounded for
	// pathological inputs rather than to be reached in practice.
	karatsubaMaxDepth = 64
)

// mul returns x*y, selecting the algorithm by operand size.
func (c *Config) mul(x, y limbs) limbs {
	if x.isZero() || y.isZero() {
		return limbs{0}
	}
	return c.karatsuba(x, y, karatsubaMaxDepth)
}

// mulSchoolbook returns x*y by accumulating cross products into a buffer of
// len(x)+len(y) limbs, folding the carry into the next limb at each step.
func (c *Config) mulSchoolbook(x, y limbs) limbs {
	z := make(limbs, len(x)+len(y))
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		var carry Word
		for j, yj := range y {
			carry, z[i+j] = c.mulAddWWW(xi, yj, z[i+j], carry)
		}
		for k := i + len(y); carry != 0; k++ {
			z[k], carry = c.addWWW(z[k], carry, 0)
		}
	}
	return z.norm()
}

// karatsuba returns x*y. For operand length n = max(len(x), len(y)) at or
// above karatsubaThreshold it splits both operands at m = n/2 into low and
// high halves and combines three recursive half-size products:
//
//	z0 = x0*y0
//	z2 = x1*y1
//	z1 = (x0+x1)*(y0+y1) - z0 - z2
//	x*y = z2*B**(2m) + z1*B**m + z0
//
// Recombination shifts z1 and z2 by whole limbs, so the partial products
// realign exactly at limb granularity.
func (c *Config) karatsuba(x, y limbs, depth int) limbs {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	if n < karatsubaThreshold || depth <= 0 {
		return c.mulSchoolbook(x, y)
	}

	m := n / 2
	x0, x1 := splitAt(x, m)
	y0, y1 := splitAt(y, m)

	z0 := c.karatsuba(x0, y0, depth-1)
	z2 := c.karatsuba(x1, y1, depth-1)
	z1 := c.karatsuba(c.add(x0, x1), c.add(y0, y1), depth-1)
	// (x0+x1)(y0+y1) >= x0*y0 + x1*y1, so both subtractions stay in range.
	z1 = c.sub(z1, z0)
	z1 = c.sub(z1, z2)

	z := c.add(z0, shlLimbs(z1, m))
	return c.add(z, shlLimbs(z2, 2*m))
}

// splitAt splits x into its low m limbs and the remaining high limbs, both
// normalized. The halves alias x; kernels never write their operands.
func splitAt(x limbs, m int) (lo, hi limbs) {
	if len(x) <= m {
		return x, limbs{0}
	}
	return x[:m].norm(), x[m:].norm()
}
