package meganum

import (
	"github.com/calebcase/oops"
)

const debugMeganum = true

// A Word is the storage slot for a single limb. Only the low width bits of
// a Word are significant; the rest are kept zero by the arithmetic kernels.
type Word uint64

// A Config fixes the limb width used by every Number it creates. Configs
// are immutable; create one per desired width and keep it for the life of
// the process. Numbers built by different Configs must not be mixed in one
// expression.
type Config struct {
	width uint // limb width in bits: 8, 16, 32 or 64
	mask  Word // 2**width - 1
}

// New returns a Config for the given limb width. The width must be one of
// 8, 16, 32 or 64 bits.
func New(width uint) (*Config, error) {
	switch width {
	case 8, 16, 32, 64:
	default:
		return nil, oops.Trace(Error.New("unsupported limb width %d", width))
	}
	return &Config{
		width: width,
		mask:  ^Word(0) >> (64 - width),
	}, nil
}

// Width returns the configured limb width in bits.
func (c *Config) Width() uint { return c.width }
