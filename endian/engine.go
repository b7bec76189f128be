// Package endian provides byte order utilities for blockpack's binary
// headers and typed byte views.
//
// Block headers are always little-endian, independent of the host.
// Typed element views, by contrast, follow the host byte order; Native()
// returns the matching engine so callers can serialize elements exactly
// as they are laid out in memory.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface. binary.LittleEndian and binary.BigEndian both
// satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Native returns the engine matching the host byte order.
func Native() EndianEngine {
	// For a little-endian host the LSB of 0x0100 is stored first.
	var probe uint16 = 0x0100
	if (*[2]byte)(unsafe.Pointer(&probe))[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return Native() == EndianEngine(binary.LittleEndian)
}

// GetLittleEndianEngine returns the little-endian engine used for all
// on-wire block headers.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
