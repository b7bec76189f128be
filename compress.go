package blockpack

import (
	"fmt"

	"github.com/arloliu/blockpack/engine"
)

// Compress compresses a typed slice into a newly allocated Buffer using
// the context's settings.
//
// The shuffle filter's element width is the context's type size override
// when set, otherwise the compile-time size of T. The destination is
// pre-sized to the worst case, len(src) bytes plus engine.MaxOverhead,
// which the engine contract guarantees is always sufficient for inputs up
// to engine.MaxBufferSize bytes: within that bound the call cannot fail.
// An engine error here means that contract was violated, either by an
// oversized input or an internal bug, and is treated as a programming
// error rather than a recoverable condition, so Compress panics instead
// of returning it.
func Compress[T Element](ctx Context, src []T) Buffer[T] {
	typeSize := ctx.typeSize
	if typeSize <= 0 {
		typeSize = elemSize[T]()
	}

	srcBytes := sliceBytes(src)
	dst := make([]byte, len(srcBytes)+engine.MaxOverhead)

	n, err := engine.Compress(dst, srcBytes, engine.Params{
		TypeSize:   typeSize,
		Level:      int(ctx.level),
		Shuffle:    ctx.shuffle,
		Algorithm:  ctx.algorithm.CompName(),
		BlockSize:  ctx.blockSize,
		NumThreads: 1,
	})
	if err != nil {
		panic(fmt.Sprintf(
			"blockpack: engine compress failed with algorithm=%s level=%d typesize=%d nbytes=%d destsize=%d: %v",
			ctx.algorithm, ctx.level, typeSize, len(srcBytes), len(dst), err))
	}

	return Buffer[T]{data: dst[:n:n]}
}
