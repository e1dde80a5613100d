// Package endian provides the byte order engine used when a digest has to be
// read as a fixed-width integer.
//
// The estimator reads the first eight bytes of its item digest through
// GetLittleEndianEngine. The choice is fixed so that the register index and
// rho derived for a given item are identical on every host, which keeps
// test vectors reproducible across platforms and implementations.
//
//	engine := endian.GetLittleEndianEngine()
//	x := engine.Uint64(digest[:8])
//
// # Thread Safety
//
// The returned EndianEngine is immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
