package biquad

import (
	"fmt"

	"github.com/cwbudde/algo-lfilter/dsp/conv"
	"github.com/cwbudde/algo-lfilter/dsp/core"
)

// Chain is an ordered cascade of biquad sections processed in series.
// It is used for higher-order filters where each second-order section feeds
// into the next.
type Chain struct {
	sections []Section
	gain     float64
}

// chainConfig holds options for NewChain.
type chainConfig struct {
	gain float64
}

// ChainOption configures a Chain.
type ChainOption func(*chainConfig)

// WithGain sets an overall gain applied to the input before cascading.
// Default is 1.0 (unity gain).
func WithGain(g float64) ChainOption {
	return func(cfg *chainConfig) { cfg.gain = g }
}

// NewChain creates a cascade from one or more coefficient sets.
// Each Coefficients value becomes one Section in the cascade.
func NewChain(coeffs []Coefficients, opts ...ChainOption) *Chain {
	cfg := chainConfig{gain: 1}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	c := &Chain{
		sections: make([]Section, len(coeffs)),
		gain:     cfg.gain,
	}
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}

	return c
}

// NewChainFromTransfer builds a cascade from per-section (b, a) pairs, each
// normalized with FromTransfer. bs and as must have the same length.
func NewChainFromTransfer(bs, as [][]float64, opts ...ChainOption) (*Chain, error) {
	if len(bs) != len(as) {
		return nil, fmt.Errorf("biquad: %w: %d numerators, %d denominators",
			core.ErrLengthMismatch, len(bs), len(as))
	}
	coeffs := make([]Coefficients, len(bs))
	for i := range bs {
		c, err := FromTransfer(bs[i], as[i])
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", i, err)
		}
		coeffs[i] = c
	}
	return NewChain(coeffs, opts...), nil
}

// ProcessSample cascades input through all sections in order.
// If gain != 1, the input is scaled before the first section.
func (c *Chain) ProcessSample(x float64) float64 {
	x *= c.gain
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}

	return x
}

// ProcessBlock filters a block in-place through the full cascade.
func (c *Chain) ProcessBlock(buf []float64) {
	if c.gain != 1 {
		for i, x := range buf {
			buf[i] = x * c.gain
		}
	}

	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// Reset clears all section states.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// Order returns the order of the expanded transfer function, counting one
// for each first-order section and two for every other section.
func (c *Chain) Order() int {
	order := 0
	for i := range c.sections {
		if c.sections[i].B2 == 0 && c.sections[i].A2 == 0 {
			order++
			continue
		}
		order += 2
	}
	return order
}

// NumSections returns the number of biquad sections.
func (c *Chain) NumSections() int {
	return len(c.sections)
}

// Gain returns the input gain applied before cascading.
func (c *Chain) Gain() float64 { return c.gain }

// Section returns a pointer to the i-th section for inspection or modification.
func (c *Chain) Section(i int) *Section {
	return &c.sections[i]
}

// State returns a snapshot of all section delay-line states.
func (c *Chain) State() [][2]float64 {
	states := make([][2]float64, len(c.sections))
	for i := range c.sections {
		states[i] = c.sections[i].State()
	}

	return states
}

// SetState restores previously saved section states. It returns an error
// wrapping core.ErrLengthMismatch unless len(states) == NumSections().
func (c *Chain) SetState(states [][2]float64) error {
	if len(states) != len(c.sections) {
		return fmt.Errorf("biquad: %w: %d states for %d sections",
			core.ErrLengthMismatch, len(states), len(c.sections))
	}
	for i := range c.sections {
		c.sections[i].SetState(states[i])
	}
	return nil
}

// TransferFunction expands the cascade into a single numerator and
// denominator by multiplying the section polynomials. The gain is folded
// into b and a[0] is 1. Both slices have 2*NumSections()+1 terms; first-order
// sections leave trailing zeros.
func (c *Chain) TransferFunction() (b, a []float64) {
	b = []float64{c.gain}
	a = []float64{1}
	for i := range c.sections {
		sb, sa := c.sections[i].Transfer()
		b = polyMul(b, sb)
		a = polyMul(a, sa)
	}
	return b, a
}

// polyMul returns the product of two polynomials. Section transfers always
// have three terms and the running products start from one term, so an error
// from conv is a broken invariant.
func polyMul(p, q []float64) []float64 {
	out, err := conv.Direct(p, q)
	if err != nil {
		panic("biquad: polynomial product: " + err.Error())
	}
	return out
}
