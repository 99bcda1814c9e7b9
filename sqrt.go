package meganum

// sqrtLimbs returns the integer square root of n by bisection on the
// magnitude: mid = (low+high)/2 via an add and a one-bit right shift, with
// mid**2 compared against n to pick the half interval. The interval
// strictly shrinks each step, so the loop terminates. The result s
// satisfies s**2 <= n < (s+1)**2.
func (c *Config) sqrtLimbs(n limbs) limbs {
	if n.isZero() {
		return limbs{0}
	}
	low, high := limbs{0}, n
	for {
		mid := c.half(c.add(low, high))
		if mid.cmp(low) == 0 || mid.cmp(high) == 0 {
			// interval exhausted; low**2 <= n throughout, but high
			// may still be the root (e.g. n == 1)
			if c.mul(high, high).cmp(n) <= 0 {
				return high
			}
			return low
		}
		switch c.mul(mid, mid).cmp(n) {
		case 0:
			return mid
		case -1:
			low = mid
		default:
			high = mid
		}
	}
}
