package rom

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nesgo/cpu"
	"nesgo/mem"
)

func header(prg, chr, flags6, flags7 byte) []byte {
	h := make([]byte, headerSize)
	copy(h[:4], magic[:])
	h[4] = prg
	h[5] = chr
	h[6] = flags6
	h[7] = flags7
	return h
}

func TestParseFlagsBadMagicButDoesNotReject(t *testing.T) {
	data := make([]byte, headerSize)
	copy(data, []byte("NOPE"))

	f, err := Parse(data)
	assert.NoError(t, err)
	assert.False(t, f.Header.ValidMagic)
}

func TestParseSetsValidMagicTrueForGoodSignature(t *testing.T) {
	f, err := Parse(header(0, 0, 0x00, 0x00))
	assert.NoError(t, err)
	assert.True(t, f.Header.ValidMagic)
}

func TestParseRejectsTruncated(t *testing.T) {
	_, err := Parse([]byte{'N', 'E', 'S', 0x1A})
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestParseNROM(t *testing.T) {
	data := header(1, 1, 0x00, 0x00)
	prg := make([]byte, prgUnit)
	prg[0] = 0xA9
	chr := make([]byte, chrUnit)
	data = append(data, prg...)
	data = append(data, chr...)

	f, err := Parse(data)
	assert.NoError(t, err)
	assert.Equal(t, byte(0), f.Header.Mapper())
	assert.False(t, f.Header.Trainer())
	assert.Len(t, f.PRG, prgUnit)
	assert.Equal(t, byte(0xA9), f.PRG[0])
}

func TestParseCarriesTrainer(t *testing.T) {
	data := header(1, 0, 0x04, 0x00) // bit 2 of flags6 set
	trainer := make([]byte, trainerSize)
	trainer[0] = 0x99
	prg := make([]byte, prgUnit)
	prg[0] = 0x4C
	data = append(data, trainer...)
	data = append(data, prg...)

	f, err := Parse(data)
	assert.NoError(t, err)
	assert.True(t, f.Header.Trainer())
	assert.Len(t, f.Trainer, trainerSize)
	assert.Equal(t, byte(0x99), f.Trainer[0])
	assert.Equal(t, byte(0x4C), f.PRG[0])
}

func TestParseCarriesTitleTrailer(t *testing.T) {
	data := header(1, 0, 0x00, 0x00)
	prg := make([]byte, prgUnit)
	data = append(data, prg...)
	data = append(data, []byte("MY GAME")...)

	f, err := Parse(data)
	assert.NoError(t, err)
	assert.Equal(t, []byte("MY GAME"), f.Title)
}

func TestParseNoTitleTrailerLeavesNilTitle(t *testing.T) {
	data := header(1, 0, 0x00, 0x00)
	prg := make([]byte, prgUnit)
	data = append(data, prg...)

	f, err := Parse(data)
	assert.NoError(t, err)
	assert.Nil(t, f.Title)
}

func TestMapperNumberCombinesBothNibbles(t *testing.T) {
	h := Header{Flags6: 0x10, Flags7: 0x20} // low nibble 1, high nibble 2 -> mapper 0x21
	assert.Equal(t, byte(0x21), h.Mapper())
}

func TestLoadMirrorsSingleBankAcrossPRGWindow(t *testing.T) {
	data := header(1, 0, 0x00, 0x00)
	prg := make([]byte, prgUnit)
	prg[0] = 0xEA
	data = append(data, prg...)

	f, err := Parse(data)
	assert.NoError(t, err)

	c := &cpu.Cpu{Bus: &mem.Bus{}}
	err = Load(f, c)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xEA), c.Read(PRGBase))
	assert.Equal(t, byte(0xEA), c.Read(PRGBase+prgUnit))
	assert.Equal(t, uint16(PRGBase), c.PC)
}

func TestLoadRejectsUnsupportedMapper(t *testing.T) {
	data := header(1, 0, 0x10, 0x00) // mapper 1
	prg := make([]byte, prgUnit)
	data = append(data, prg...)

	f, err := Parse(data)
	assert.NoError(t, err)

	c := &cpu.Cpu{Bus: &mem.Bus{}}
	err = Load(f, c)
	assert.ErrorIs(t, err, ErrUnsupportedMapper)
}
