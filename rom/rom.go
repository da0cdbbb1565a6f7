// Package rom parses iNES-format cartridge images and loads an NROM image's
// PRG bank onto a Cpu's bus.
package rom

import (
	"bytes"
	"errors"
	"fmt"

	"nesgo/cpu"
	"nesgo/mask"
	"nesgo/mem"
)

const (
	headerSize  = 16
	trainerSize = 512
	prgUnit     = 16 * 1024
	chrUnit     = 8 * 1024

	// PRGBase is where NROM maps its single (or mirrored double) PRG bank:
	// the CPU address space from 0x8000 to 0xffff.
	PRGBase = 0x8000
)

var magic = [4]byte{'N', 'E', 'S', 0x1A}

// ErrTruncated is returned by Parse when the file is shorter than its
// header declares. A bad magic signature is not an error: it is recorded on
// Header.ValidMagic and left for the caller to act on.
var ErrTruncated = errors.New("rom: file truncated")

// Header is the 16-byte iNES header, unpacked field by field. Flag bytes 6
// and 7 are kept raw; their bits are exposed through accessor methods so
// callers never need to know the layout.
type Header struct {
	ValidMagic bool  // false if the first 4 bytes aren't "NES\x1a"
	PRGBanks   uint8 // 16 KiB units
	CHRBanks   uint8 // 8 KiB units, 0 means CHR RAM
	Flags6     byte
	Flags7     byte
	PRGRAM     uint8
}

// Trainer reports whether a 512-byte trainer precedes the PRG data.
func (h Header) Trainer() bool { return mask.IsSet(h.Flags6, mask.I6) }

// FourScreen reports whether the cartridge wires four-screen VRAM instead of
// following Mirroring.
func (h Header) FourScreen() bool { return mask.IsSet(h.Flags6, mask.I5) }

// Battery reports whether the cartridge has battery-backed PRG RAM.
func (h Header) Battery() bool { return mask.IsSet(h.Flags6, mask.I7) }

// Mirroring reports nametable mirroring: false is horizontal, true vertical.
func (h Header) Mirroring() bool { return mask.IsSet(h.Flags6, mask.I8) }

// Mapper returns the iNES mapper number: the low nibble from Flags6's top
// bits, the high nibble from Flags7's top bits.
func (h Header) Mapper() byte {
	return mask.First(h.Flags6, 4) | mask.First(h.Flags7, 4)<<4
}

func (h Header) String() string {
	return fmt.Sprintf(
		"mapper=%d prg=%dx16KiB chr=%dx8KiB trainer=%v mirroring=%v",
		h.Mapper(), h.PRGBanks, h.CHRBanks, h.Trainer(), h.Mirroring(),
	)
}

// File is a parsed iNES cartridge image: its header, the optional 512-byte
// trainer, the PRG and CHR banks, and whatever optional title bytes trail
// the CHR data.
type File struct {
	Header  Header
	Trainer []byte // nil if Header.Trainer() is false
	PRG     []byte
	CHR     []byte
	Title   []byte // nil if nothing trails the CHR data
}

// Parse decodes an iNES image. A bad magic signature is never rejected: it
// is recorded on Header.ValidMagic, and parsing continues best-effort so the
// caller can inspect what's there and decide for itself. Only a file too
// short to hold what its own header declares is a hard error. Only mapper 0
// (NROM) is supported for loading; other mappers parse successfully
// (Header.Mapper reports the real number) but Load refuses to run them.
func Parse(data []byte) (*File, error) {
	if len(data) < headerSize {
		return nil, ErrTruncated
	}

	h := Header{
		ValidMagic: bytes.Equal(data[:4], magic[:]),
		PRGBanks:   data[4],
		CHRBanks:   data[5],
		Flags6:     data[6],
		Flags7:     data[7],
		PRGRAM:     data[8],
	}

	offset := headerSize

	var trainer []byte
	if h.Trainer() {
		if len(data) < offset+trainerSize {
			return nil, ErrTruncated
		}
		trainer = make([]byte, trainerSize)
		copy(trainer, data[offset:offset+trainerSize])
		offset += trainerSize
	}

	prgLen := int(h.PRGBanks) * prgUnit
	chrLen := int(h.CHRBanks) * chrUnit
	if len(data) < offset+prgLen+chrLen {
		return nil, ErrTruncated
	}

	prg := make([]byte, prgLen)
	copy(prg, data[offset:offset+prgLen])
	offset += prgLen

	chr := make([]byte, chrLen)
	copy(chr, data[offset:offset+chrLen])
	offset += chrLen

	var title []byte
	if offset < len(data) {
		title = make([]byte, len(data)-offset)
		copy(title, data[offset:])
	}

	return &File{Header: h, Trainer: trainer, PRG: prg, CHR: chr, Title: title}, nil
}

// ErrUnsupportedMapper is returned by Load when the image declares a mapper
// other than 0 (NROM), the only one this loader understands.
var ErrUnsupportedMapper = errors.New("rom: unsupported mapper")

// Load maps f's PRG bank into c's bus at PRGBase and points the reset vector
// at it, mirroring a single 16 KiB bank across both halves of the CPU's
// 0x8000-0xffff window the way NROM-128 boards wire their PRG lines.
func Load(f *File, c *cpu.Cpu) error {
	if f.Header.Mapper() != 0 {
		return ErrUnsupportedMapper
	}

	c.Load(f.PRG, PRGBase)
	if len(f.PRG) == prgUnit {
		c.Load(f.PRG, PRGBase+prgUnit)
	}

	c.Bus.Write16(0xFFFC, PRGBase)
	c.Reset()
	return nil
}

// Ram is a convenience constructor: build a Cpu wired to a fresh Bus and
// load f's PRG bank into it, per Load.
func Ram(f *File) (*cpu.Cpu, error) {
	c := &cpu.Cpu{Bus: &mem.Bus{}}
	if err := Load(f, c); err != nil {
		return nil, err
	}
	return c, nil
}
