package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestOrderMatchesHost(t *testing.T) {
	var buf [4]byte
	Order().PutUint32(buf[:], 0x01020304)

	got := *(*uint32)(unsafe.Pointer(&buf[0]))
	assert.Equal(t, uint32(0x01020304), got)
}

func TestOrderAgreesWithIsLE(t *testing.T) {
	if IsLE() {
		assert.Equal(t, binary.LittleEndian, Order())
	} else {
		assert.Equal(t, binary.BigEndian, Order())
	}
}
