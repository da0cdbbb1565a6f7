package mem

// A Bus is the central (global) object that connects multiple 'hardware'
// components together, enabling communication between them. Each Bus has an
// independent memory layout that begins at 0x0000.
//
// In the NES, there are 2 Buses. One has 64 kB, responsible for CPU, memory,
// audio and cartridge (0x0000-0xffff). The other has 8 (?) kB, responsible for
// graphics (0x2000-0x3fff?).
//
// One or more components (structs) can be connected to a Bus by means of a
// pointer; e.g. Cpu.Bus = &Bus{}.
type Bus struct {
	// no divisions/mirroring of memory yet, beyond what rom.Load mirrors in
	Ram [64 * 1024]byte // 64 kB (0xffff), zeroed on init
}

// CPU     MEM     APU     CART
//  |       |       |       |
//  |       |0000   |4000   |4020
//  |       |07ff   |4017   |ffff
//  |------------------------------------ BUS 1
//  |
// PPU     GFX     VRAM    PALETTE
//  |       |       |       |
//  |       |       |       |
//  |       |       |       |
//  |------------------------------------ BUS 2

// Write stores data at addr. Pointer receiver: a value receiver here would
// write through a copy of the 64 kB array and silently drop every write.
func (b *Bus) Write(
	addr uint16, // addresses are 2 bytes wide
	data byte,
) {
	b.Ram[addr] = data
}

// Read returns the byte at addr.
func (b *Bus) Read(addr uint16) byte { return b.Ram[addr] }

// Read16 reads a little-endian word starting at addr. The high byte comes
// from addr+1, which wraps to 0x0000 when addr is 0xffff.
func (b *Bus) Read16(addr uint16) uint16 {
	lo := uint16(b.Read(addr))
	hi := uint16(b.Read(addr + 1))
	return lo | hi<<8
}

// Write16 stores data as a little-endian word starting at addr.
func (b *Bus) Write16(addr uint16, data uint16) {
	b.Write(addr, byte(data))
	b.Write(addr+1, byte(data>>8))
}

// Load copies data into the bus starting at offset, wrapping addresses
// modulo 2^16.
func (b *Bus) Load(offset uint16, data []byte) {
	for i, v := range data {
		b.Ram[offset+uint16(i)] = v
	}
}
