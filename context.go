package blockpack

import (
	"fmt"

	"github.com/arloliu/blockpack/engine"
	"github.com/arloliu/blockpack/errs"
	"github.com/arloliu/blockpack/format"
)

// CapabilityProber answers whether an algorithm is available in the
// linked engine. It is the only engine interaction a Context performs,
// which keeps context construction testable against a fake engine.
type CapabilityProber interface {
	// ComplibInfo reports support for the canonical algorithm name,
	// returning the backing library name and version when available.
	ComplibInfo(compname string) (library string, version string, err error)
}

// engineProber probes the in-process engine capability table.
type engineProber struct{}

func (engineProber) ComplibInfo(compname string) (string, string, error) {
	return engine.ComplibInfo(compname)
}

// Context holds the settings for repeated compress operations. It is an
// immutable value: every With* step returns a new Context and never
// mutates the receiver, so one context can be copied and reused freely
// across goroutines.
type Context struct {
	blockSize int
	level     format.Level
	algorithm format.Algorithm
	shuffle   format.Shuffle
	typeSize  int
	prober    CapabilityProber
}

// NewContext returns the default context: automatic block size, level 2,
// the engine's fast default algorithm, no shuffle, and element size
// derived from the compressed type. It performs no engine call.
func NewContext() Context {
	return NewContextWithProber(engineProber{})
}

// NewContextWithProber returns the default context wired to a custom
// capability prober. Intended for tests that exercise algorithm selection
// against a fake engine.
func NewContextWithProber(p CapabilityProber) Context {
	return Context{
		level:     format.Level2,
		algorithm: format.AlgoBloscLZ,
		shuffle:   format.ShuffleNone,
		prober:    p,
	}
}

// WithBlockSize replaces the automatic block size with a hint. Values
// of zero or less restore the automatic choice; the engine clamps the
// hint internally.
func (c Context) WithBlockSize(hint int) Context {
	if hint < 0 {
		hint = 0
	}
	c.blockSize = hint

	return c
}

// WithLevel replaces the compression level.
func (c Context) WithLevel(level format.Level) Context {
	c.level = level
	return c
}

// WithShuffle replaces the shuffle mode.
func (c Context) WithShuffle(mode format.Shuffle) Context {
	c.shuffle = mode
	return c
}

// WithTypeSize replaces the element size used by the shuffle filter.
// Values of zero or less restore the default, the compile-time size of
// the compressed element type. Set it explicitly when compressing
// pre-serialized byte buffers whose logical element width is wider than
// one byte.
func (c Context) WithTypeSize(size int) Context {
	if size < 0 {
		size = 0
	}
	c.typeSize = size

	return c
}

// WithAlgorithm replaces the algorithm selector after probing the engine
// for support. This is the only fallible builder step and the only one
// that touches the engine before a compress call. When the probe fails
// the returned context is the receiver, unchanged, together with an
// error wrapping errs.ErrUnsupportedAlgorithm; there is no silent
// fallback to another algorithm.
func (c Context) WithAlgorithm(algorithm format.Algorithm) (Context, error) {
	if _, _, err := c.prober.ComplibInfo(algorithm.CompName()); err != nil {
		return c, fmt.Errorf("%w: %s", errs.ErrUnsupportedAlgorithm, algorithm)
	}
	c.algorithm = algorithm

	return c, nil
}

// BlockSize returns the block size hint; 0 means the engine chooses.
func (c Context) BlockSize() int { return c.blockSize }

// Level returns the compression level.
func (c Context) Level() format.Level { return c.level }

// Algorithm returns the selected algorithm.
func (c Context) Algorithm() format.Algorithm { return c.algorithm }

// Shuffle returns the shuffle mode.
func (c Context) Shuffle() format.Shuffle { return c.shuffle }

// TypeSize returns the element size override; 0 means the size is derived
// from the compressed element type.
func (c Context) TypeSize() int { return c.typeSize }
