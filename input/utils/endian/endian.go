// Package endian reports the byte order of the host. Snapshot files are
// written in native order, so both the writer and the readers go through here.
package endian

import (
	"encoding/binary"
	"unsafe"
)

var native binary.ByteOrder = detect()

func detect() binary.ByteOrder {
	if IsLE() {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// IsLE returns true if the host architecture is little-endian.
func IsLE() bool {
	x := uint16(1)
	return *(*byte)(unsafe.Pointer(&x)) == 1
}

// Order returns the host byte order.
func Order() binary.ByteOrder {
	return native
}
