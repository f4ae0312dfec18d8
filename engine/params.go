package engine

import (
	"encoding/binary"
	"errors"
	"fmt"
	"slices"

	"github.com/lixenwraith/vi-life/rule"
)

// ParamsWords is the number of u32 words in the uniform encoding:
// width, height, lifetime, alive[0..8], dead[0..8]
const ParamsWords = 3 + 2*rule.Size

// ParamsSize is the encoded size in bytes
const ParamsSize = 4 * ParamsWords

// ErrInvalidParamsEncoding is returned by DecodeParams for buffers of the wrong size
var ErrInvalidParamsEncoding = errors.New("invalid params encoding")

// Params is the immutable configuration of one engine instance
// Changing any field requires a new Engine
type Params struct {
	Width    int
	Height   int
	Lifetime uint32   // Age cap for visualization, 0 disables aging
	Alive    []uint32 // Survival flags indexed by neighbor count
	Dead     []uint32 // Birth flags indexed by neighbor count
}

// NewParams builds Params from a rule table
func NewParams(width, height int, lifetime uint32, table rule.Table) Params {
	return Params{
		Width:    width,
		Height:   height,
		Lifetime: lifetime,
		Alive:    table.AliveFlags(),
		Dead:     table.DeadFlags(),
	}
}

// Rule decodes the flag arrays into a table
func (p Params) Rule() (rule.Table, error) {
	return rule.New(p.Alive, p.Dead)
}

// clone detaches the flag slices from the caller
func (p Params) clone() Params {
	p.Alive = slices.Clone(p.Alive)
	p.Dead = slices.Clone(p.Dead)
	return p
}

// Encode packs the params into the little-endian u32 uniform layout used by
// GPU-style dispatch collaborators
func (p Params) Encode() ([]byte, error) {
	if len(p.Alive) != rule.Size || len(p.Dead) != rule.Size {
		return nil, fmt.Errorf("%w: alive=%d dead=%d", rule.ErrInvalidRuleTableSize, len(p.Alive), len(p.Dead))
	}
	if p.Width <= 0 || p.Height <= 0 || uint64(p.Width) > 0xffffffff || uint64(p.Height) > 0xffffffff {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGridSize, p.Width, p.Height)
	}

	buf := make([]byte, 0, ParamsSize)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(p.Width))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(p.Height))
	buf = binary.LittleEndian.AppendUint32(buf, p.Lifetime)
	for _, v := range p.Alive {
		buf = binary.LittleEndian.AppendUint32(buf, flag(v))
	}
	for _, v := range p.Dead {
		buf = binary.LittleEndian.AppendUint32(buf, flag(v))
	}
	return buf, nil
}

// DecodeParams unpacks the uniform layout produced by Encode
func DecodeParams(b []byte) (Params, error) {
	if len(b) != ParamsSize {
		return Params{}, fmt.Errorf("%w: %d bytes, want %d", ErrInvalidParamsEncoding, len(b), ParamsSize)
	}

	word := func(i int) uint32 {
		return binary.LittleEndian.Uint32(b[4*i:])
	}

	p := Params{
		Width:    int(word(0)),
		Height:   int(word(1)),
		Lifetime: word(2),
		Alive:    make([]uint32, rule.Size),
		Dead:     make([]uint32, rule.Size),
	}
	for i := 0; i < rule.Size; i++ {
		p.Alive[i] = word(3 + i)
		p.Dead[i] = word(3 + rule.Size + i)
	}
	return p, nil
}

func flag(v uint32) uint32 {
	if v != 0 {
		return 1
	}
	return 0
}
