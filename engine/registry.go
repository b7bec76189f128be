package engine

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/arloliu/blockpack/errs"
)

// moduleVersion resolves the version of a backing module from the build
// info embedded in the binary, so capability probes report the version
// actually linked rather than a string that can drift from go.mod. The
// fallback covers builds without module info, such as test binaries run
// outside module mode.
func moduleVersion(path, fallback string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return fallback
	}
	for _, dep := range info.Deps {
		if dep.Path == path {
			return strings.TrimPrefix(dep.Version, "v")
		}
	}

	return fallback
}

// codec is the one-shot contract every algorithm implements. Compress may
// return an empty slice to signal the input is incompressible; the engine
// then stores the block verbatim. Decompress receives the exact output
// size recorded in the block header.
type codec interface {
	Compress(data []byte, level int) ([]byte, error)
	Decompress(data []byte, dstSize int) ([]byte, error)
}

// complib is one entry of the capability table: the canonical algorithm
// name, the on-wire codec id, and the backing library identity reported
// by capability probes.
type complib struct {
	id      byte
	name    string
	library string
	version string
	codec   codec
}

// complibs is the engine capability table. The id values are part of the
// block format and must never be reassigned.
var complibs = []complib{
	{id: 0, name: "blosclz", library: bloscLZLibrary, version: bloscLZVersion, codec: bloscLZCodec{}},
	{id: 1, name: "lz4", library: lz4Library, version: lz4Version, codec: lz4Codec{}},
	{id: 2, name: "lz4hc", library: lz4Library, version: lz4Version, codec: lz4Codec{hc: true}},
	{id: 3, name: "snappy", library: snappyLibrary, version: snappyVersion, codec: snappyCodec{}},
	{id: 4, name: "zlib", library: zlibLibrary, version: zlibVersion, codec: zlibCodec{}},
	{id: 5, name: "zstd", library: zstdLibrary, version: zstdVersion, codec: zstdCodec{}},
}

func lookupName(name string) (complib, bool) {
	for _, lib := range complibs {
		if lib.name == name {
			return lib, true
		}
	}

	return complib{}, false
}

func lookupID(id byte) (complib, bool) {
	for _, lib := range complibs {
		if lib.id == id {
			return lib, true
		}
	}

	return complib{}, false
}

// ComplibInfo reports whether the named algorithm is available in this
// engine build, returning the backing library name and version on success.
// The lookup is a pure read of the capability table and is safe for
// concurrent use.
func ComplibInfo(compname string) (library string, version string, err error) {
	lib, ok := lookupName(compname)
	if !ok {
		return "", "", fmt.Errorf("%w: %q", errs.ErrUnknownCodec, compname)
	}

	return lib.library, lib.version, nil
}
