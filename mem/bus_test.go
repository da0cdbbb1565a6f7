package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadWrite(t *testing.T) {
	b := &Bus{}
	b.Write(0x1234, 0xAB)
	assert.Equal(t, byte(0xAB), b.Read(0x1234))
}

func TestReadWrite16(t *testing.T) {
	b := &Bus{}
	b.Write16(0x2000, 0xBEEF)
	assert.Equal(t, byte(0xEF), b.Read(0x2000))
	assert.Equal(t, byte(0xBE), b.Read(0x2001))
	assert.Equal(t, uint16(0xBEEF), b.Read16(0x2000))
}

func TestRead16WrapsAtTopOfAddressSpace(t *testing.T) {
	b := &Bus{}
	b.Write(0xFFFF, 0x34)
	b.Write(0x0000, 0x12)
	assert.Equal(t, uint16(0x1234), b.Read16(0xFFFF))
}

func TestLoad(t *testing.T) {
	b := &Bus{}
	b.Load(0x8000, []byte{0xA9, 0x42, 0x00})
	assert.Equal(t, byte(0xA9), b.Read(0x8000))
	assert.Equal(t, byte(0x42), b.Read(0x8001))
	assert.Equal(t, byte(0x00), b.Read(0x8002))
}

func TestLoadWrapsModulo65536(t *testing.T) {
	b := &Bus{}
	b.Load(0xFFFE, []byte{0x11, 0x22, 0x33})
	assert.Equal(t, byte(0x11), b.Read(0xFFFE))
	assert.Equal(t, byte(0x22), b.Read(0xFFFF))
	assert.Equal(t, byte(0x33), b.Read(0x0000))
}
