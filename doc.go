/*
Package meganum implements arbitrary-precision integer and binary
floating-point arithmetic on sequences of fixed-width limbs ("chunks"),
without relying on a host big-integer type.

Numbers are built through a Config, which fixes the limb width for every
value it creates:

	cfg, err := meganum.New(64)
	if err != nil {
		...
	}
	x, _ := cfg.Parse("999999")
	y, _ := cfg.Parse("1001")
	p, _ := x.Mul(y) // 1000998999

The limb width is one of 8, 16, 32 or 64 bits; limbs are stored
little-endian, each holding an unsigned value below 2**width. A Config is
immutable, and several Configs with different widths may coexist. Mixing
Numbers created by different Configs in one expression is a programmer
error and is not detected outside of debug builds.

A Number is an immutable value: every operation constructs, normalizes and
returns a new Number. Because no Number is ever mutated after construction,
values can be shared freely between goroutines without locking.

Numbers come in three kinds. Integer numbers carry no exponent and support
exact arithmetic, including truncating division. Float numbers attach a
signed binary exponent to the mantissa; addition aligns exponents by
shifting the mantissa under the smaller exponent, multiplication and division add
and subtract exponents. BinaryView numbers are integers that additionally
convert to and from big-endian bit strings and byte slices; the views are
recomputed from the limbs on every call, never cached.

Mixing integer and float kinds in one operation does not promote; it fails
with ErrUnsupported.

Decimal conversion is exact for integer numbers in both directions. Parsing
a fractional decimal such as "123.456" produces a Float whose binary
exponent only approximates the decimal fraction; converting such a value
back to a string renders the mantissa and exponent explicitly, as in
"123456 * 2^-10". Callers that need exact decimal fractions should stay in
integer mode and track scale themselves.
*/
package meganum
