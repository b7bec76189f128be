// Package format defines the enumeration types shared by the blockpack
// typed layer and the block engine: compression level, algorithm selector
// and shuffle mode.
package format

type (
	Level     uint8
	Algorithm uint8
	Shuffle   uint8
)

const (
	LevelNone Level = 0 // LevelNone disables compression; blocks are stored verbatim.
	Level1    Level = 1
	Level2    Level = 2
	Level3    Level = 3
	Level4    Level = 4
	Level5    Level = 5
	Level6    Level = 6
	Level7    Level = 7
	Level8    Level = 8
	Level9    Level = 9 // Level9 is the slowest, highest-ratio setting.
)

const (
	AlgoBloscLZ Algorithm = 0x1 // AlgoBloscLZ is the fast default algorithm.
	AlgoLZ4     Algorithm = 0x2 // AlgoLZ4 is LZ4 block compression.
	AlgoLZ4HC   Algorithm = 0x3 // AlgoLZ4HC is the high-compression LZ4 variant.
	AlgoSnappy  Algorithm = 0x4 // AlgoSnappy is Google's Snappy.
	AlgoZlib    Algorithm = 0x5 // AlgoZlib is zlib/deflate.
	AlgoZstd    Algorithm = 0x6 // AlgoZstd is Zstandard.

	// AlgoInvalid is reserved for negative-path testing. It maps to a name
	// no engine capability table recognizes, so selecting it always fails.
	AlgoInvalid Algorithm = 0xFF
)

const (
	ShuffleNone Shuffle = 0x0 // ShuffleNone applies no pre-filter.
	ShuffleByte Shuffle = 0x1 // ShuffleByte groups bytes by position within elements.
	ShuffleBit  Shuffle = 0x2 // ShuffleBit transposes at bit granularity.
)

// IsValid reports whether the level is within the 0-9 range the engine accepts.
func (l Level) IsValid() bool {
	return l <= Level9
}

func (l Level) String() string {
	if !l.IsValid() {
		return "Invalid"
	}
	if l == LevelNone {
		return "None"
	}

	return "L" + string(rune('0'+l))
}

func (a Algorithm) String() string {
	switch a {
	case AlgoBloscLZ:
		return "BloscLZ"
	case AlgoLZ4:
		return "LZ4"
	case AlgoLZ4HC:
		return "LZ4HC"
	case AlgoSnappy:
		return "Snappy"
	case AlgoZlib:
		return "Zlib"
	case AlgoZstd:
		return "Zstd"
	case AlgoInvalid:
		return "Invalid"
	default:
		return "Unknown"
	}
}

// CompName returns the canonical name string the engine capability table
// keys on. The name for AlgoInvalid is deliberately absent from every
// capability table.
func (a Algorithm) CompName() string {
	switch a {
	case AlgoBloscLZ:
		return "blosclz"
	case AlgoLZ4:
		return "lz4"
	case AlgoLZ4HC:
		return "lz4hc"
	case AlgoSnappy:
		return "snappy"
	case AlgoZlib:
		return "zlib"
	case AlgoZstd:
		return "zstd"
	default:
		return "invalid"
	}
}

func (s Shuffle) String() string {
	switch s {
	case ShuffleNone:
		return "None"
	case ShuffleByte:
		return "Byte"
	case ShuffleBit:
		return "Bit"
	default:
		return "Unknown"
	}
}

// Algorithms lists every algorithm the engine can be asked about, excluding
// the invalid sentinel.
func Algorithms() []Algorithm {
	return []Algorithm{AlgoBloscLZ, AlgoLZ4, AlgoLZ4HC, AlgoSnappy, AlgoZlib, AlgoZstd}
}
