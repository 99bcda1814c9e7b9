package meganum

import (
	"fmt"
	"math"
	"strings"

	"github.com/calebcase/oops"
)

// log2_10 converts a count of decimal fraction digits into a binary shift.
const log2_10 = math.Ln10 / math.Ln2

// Parse converts a decimal string into a Number. The accepted format is an
// optional leading '-', a run of digits, and optionally a single '.'
// followed by more digits; exponent notation is not accepted. A purely
// integral string yields an integer Number. A fractional string yields a
// Float whose binary exponent ceil(fracDigits*log2(10)) only approximates
// the decimal fraction; the conversion is lossy.
func (c *Config) Parse(s string) (*Number, error) {
	mant, fracLen, neg, err := c.scanDecimal(s, true)
	if err != nil {
		return nil, err
	}
	if fracLen == 0 {
		return newNumber(c, Integer, mant, nil, neg, false), nil
	}
	shift := uint64(math.Ceil(float64(fracLen) * log2_10))
	return newNumber(c, Float, mant, c.setUint64(shift), neg, true), nil
}

// ParseInt converts a decimal string into an integer Number, truncating any
// fractional part. The fraction digits are still validated.
func (c *Config) ParseInt(s string) (*Number, error) {
	mant, _, neg, err := c.scanDecimal(s, false)
	if err != nil {
		return nil, err
	}
	return newNumber(c, Integer, mant, nil, neg, false), nil
}

// scanDecimal folds a decimal digit string into a mantissa by repeated
// multiply-by-10 and add-digit. When foldFrac is false, digits after the
// separator are validated but not folded.
func (c *Config) scanDecimal(s string, foldFrac bool) (mant limbs, fracLen int, neg bool, err error) {
	t := s
	if strings.HasPrefix(t, "-") {
		neg = true
		t = t[1:]
	}

	mant = limbs{0}
	ten := limbs{10}
	sep := false
	intLen := 0
	for i := 0; i < len(t); i++ {
		switch ch := t[i]; {
		case ch == '.':
			if sep {
				return nil, 0, false, oops.Trace(fmt.Errorf("%w: multiple separators in %q", ErrParse, s))
			}
			sep = true
		case '0' <= ch && ch <= '9':
			if sep {
				fracLen++
				if !foldFrac {
					continue
				}
			} else {
				intLen++
			}
			mant = c.add(c.mul(mant, ten), limbs{Word(ch - '0')})
		default:
			return nil, 0, false, oops.Trace(fmt.Errorf("%w: invalid character %q in %q", ErrParse, ch, s))
		}
	}
	if intLen == 0 || (sep && fracLen == 0) {
		return nil, 0, false, oops.Trace(fmt.Errorf("%w: empty digit run in %q", ErrParse, s))
	}
	return mant, fracLen, neg, nil
}

// String renders x in decimal. Integer numbers convert exactly; float
// numbers with a nonzero exponent render mantissa and exponent explicitly
// as "mant * 2^exp", since the underlying binary exponent has no exact
// decimal expansion here.
func (x *Number) String() string {
	return x.text(0)
}

// Text is like String but keeps only the last maxDigits digits of the
// mantissa, prefixed with "..." when truncation occurred. maxDigits <= 0
// means no limit.
func (x *Number) Text(maxDigits int) string {
	return x.text(maxDigits)
}

func (x *Number) text(maxDigits int) string {
	if x.mant.isZero() {
		return "0"
	}
	ds := x.cfg.decString(x.mant)
	if maxDigits > 0 && maxDigits < len(ds) {
		ds = "..." + ds[len(ds)-maxDigits:]
	}
	var sb strings.Builder
	if x.neg {
		sb.WriteByte('-')
	}
	sb.WriteString(ds)
	if x.kind == Float && !x.exp.isZero() {
		sb.WriteString(" * 2^")
		if x.expNeg {
			sb.WriteByte('-')
		}
		sb.WriteString(x.cfg.decString(x.exp))
	}
	return sb.String()
}

// decString converts a magnitude to decimal digits by repeated divmod by
// 10, collecting remainders least significant first.
func (c *Config) decString(x limbs) string {
	if x.isZero() {
		return "0"
	}
	buf := make([]byte, 0, len(x)*int(c.width)*30103/100000+1)
	for t := x; !t.isZero(); {
		var r Word
		t, r = c.divModW(t, 10)
		buf = append(buf, byte('0'+r))
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// ParseBits converts a big-endian bit string, with an optional "0b" or "0B"
// prefix, into a BinaryView Number.
func (c *Config) ParseBits(s string) (*Number, error) {
	t := strings.TrimPrefix(strings.TrimPrefix(s, "0b"), "0B")
	if len(t) == 0 {
		return nil, oops.Trace(fmt.Errorf("%w: empty digit run in %q", ErrParse, s))
	}
	mant := limbs{0}
	for i := 0; i < len(t); i++ {
		ch := t[i]
		if ch != '0' && ch != '1' {
			return nil, oops.Trace(fmt.Errorf("%w: invalid character %q in %q", ErrParse, ch, s))
		}
		mant = c.add(c.shl(mant, 1), limbs{Word(ch - '0')})
	}
	return newNumber(c, BinaryView, mant, nil, false, false), nil
}

// FromBytes converts big-endian bytes (most significant byte first, most
// significant bit first within a byte) into a BinaryView Number.
func (c *Config) FromBytes(b []byte) *Number {
	mant := limbs{0}
	for _, v := range b {
		mant = c.add(c.shl(mant, 8), limbs{Word(v)})
	}
	return newNumber(c, BinaryView, mant, nil, false, false)
}

// Bits renders |x| as a big-endian bit string with no leading zeros ("0"
// for zero). The view is rebuilt from the limbs on every call. Float
// numbers have no canonical bit string and fail with ErrUnsupported.
func (x *Number) Bits() (string, error) {
	if x.kind == Float {
		return "", oops.Trace(ErrUnsupported)
	}
	if x.mant.isZero() {
		return "0", nil
	}
	c := x.cfg
	n := c.bitLen(x.mant)
	buf := make([]byte, n)
	for i := uint(0); i < n; i++ {
		buf[n-1-i] = byte('0' + c.bit(x.mant, i))
	}
	return string(buf), nil
}

// Bytes renders |x| as big-endian bytes, zero-padding the most significant
// end to a byte boundary. Zero is the single byte 0x00. Float numbers fail
// with ErrUnsupported.
func (x *Number) Bytes() ([]byte, error) {
	if x.kind == Float {
		return nil, oops.Trace(ErrUnsupported)
	}
	c := x.cfg
	n := c.bitLen(x.mant)
	if n == 0 {
		return []byte{0}, nil
	}
	out := make([]byte, (n+7)/8)
	for i := uint(0); i < n; i++ {
		if c.bit(x.mant, i) != 0 {
			out[len(out)-1-int(i/8)] |= 1 << (i % 8)
		}
	}
	return out, nil
}
