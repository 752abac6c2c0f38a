// This file is part of Famicore.
//
// Famicore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Famicore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Famicore.  If not, see <https://www.gnu.org/licenses/>.

package mapper

import (
	"fmt"

	"github.com/famicore/famicore/curated"
)

// UnsupportedMapper is returned by NewMapper() when the ID is not one that
// can be emulated.
const UnsupportedMapper = "mapper: unsupported mapper (%03d)"

// ID is the iNES number of a mapper.
type ID uint8

// List of supported mappers.
const (
	NROM  ID = 0
	MMC1  ID = 1
	UxROM ID = 2
	CNROM ID = 3
	AxROM ID = 7
	GxROM ID = 66
)

var names = map[ID]string{
	NROM:  "NROM",
	MMC1:  "MMC1",
	UxROM: "UxROM",
	CNROM: "CNROM",
	AxROM: "AxROM",
	GxROM: "GxROM",
}

func (id ID) String() string {
	if n, ok := names[id]; ok {
		return fmt.Sprintf("%03d %s", uint8(id), n)
	}
	return fmt.Sprintf("%03d unsupported", uint8(id))
}

// IsSupported returns true if the mapper ID can be emulated.
func IsSupported(id ID) bool {
	_, ok := names[id]
	return ok
}

// Size of banks in bytes.
const (
	PRGBankSize = 0x4000
	CHRBankSize = 0x2000

	// the size of the PRG RAM for those mappers that support it
	PRGRAMSize = 0x2000
)

// Mapper translates CPU and PPU bus addresses into offsets in the cartridge
// memory regions. The only mutable state are the bank select registers.
type Mapper struct {
	ID ID

	// the number of 16KB PRG banks and 8KB CHR banks. a cartridge with no
	// CHR banks has 8KB of CHR RAM instead
	prgBanks int
	chrBanks int
	chrRAM   bool

	// bank select registers used by the discrete logic mappers. prgBank is
	// the index of a 16KB bank for UxROM and of a 32KB bank for AxROM and
	// GxROM. chrBank is always the index of an 8KB bank
	prgBank int
	chrBank int

	// AxROM selects one of the two single screen mirroring modes
	oneScreen Mirroring

	// MMC1 registers
	mmc1 mmc1
}

// NewMapper is the preferred method of initialisation for the Mapper type.
func NewMapper(id ID, prgBanks int, chrBanks int) (*Mapper, error) {
	if !IsSupported(id) {
		return nil, curated.Errorf(UnsupportedMapper, uint8(id))
	}

	m := &Mapper{
		ID:       id,
		prgBanks: prgBanks,
		chrBanks: chrBanks,
		chrRAM:   chrBanks == 0,
	}

	// a cartridge with no PRG banks is not valid but the mapper should never
	// divide by zero
	if m.prgBanks < 1 {
		m.prgBanks = 1
	}

	// CHR RAM is always one bank
	if m.chrRAM {
		m.chrBanks = 1
	}

	m.Reset()

	return m, nil
}

func (m *Mapper) String() string {
	switch m.ID {
	case MMC1:
		return fmt.Sprintf("%s %s", m.ID, m.mmc1)
	case UxROM:
		return fmt.Sprintf("%s PRG=%d", m.ID, m.prgBank)
	case CNROM:
		return fmt.Sprintf("%s CHR=%d", m.ID, m.chrBank)
	case AxROM:
		return fmt.Sprintf("%s PRG=%d %s", m.ID, m.prgBank, m.oneScreen)
	case GxROM:
		return fmt.Sprintf("%s PRG=%d CHR=%d", m.ID, m.prgBank, m.chrBank)
	}
	return m.ID.String()
}

// Reset bank select registers to their power-on values.
func (m *Mapper) Reset() {
	m.prgBank = 0
	m.chrBank = 0
	m.oneScreen = OneScreenLo
	m.mmc1.reset()
}

// Snapshot creates a copy of the mapper in its current state.
func (m *Mapper) Snapshot() *Mapper {
	n := *m
	return &n
}

// Mirroring returns the nametable mirroring selected by the mapper. The
// boolean return value is false if the mapper does not control mirroring, in
// which case the mirroring hardwired in the cartridge applies.
func (m *Mapper) Mirroring() (Mirroring, bool) {
	switch m.ID {
	case MMC1:
		return m.mmc1.mirroring(), true
	case AxROM:
		return m.oneScreen, true
	}
	return Hardwired, false
}

// CPUMapRead translates a read from the CPU bus.
func (m *Mapper) CPUMapRead(address uint16) (Mapping, bool) {
	switch m.ID {
	case NROM, CNROM:
		if address >= 0x8000 {
			return Mapping{Region: PRGROM, Offset: m.nromOffset(address)}, true
		}

	case MMC1:
		if address >= 0x6000 && address <= 0x7fff {
			return Mapping{Region: PRGRAM, Offset: uint32(address & 0x1fff)}, true
		}
		if address >= 0x8000 {
			return Mapping{Region: PRGROM, Offset: m.mmc1PRG(address)}, true
		}

	case UxROM:
		if address >= 0xc000 {
			return Mapping{Region: PRGROM, Offset: m.bank16(m.prgBanks-1, address)}, true
		}
		if address >= 0x8000 {
			return Mapping{Region: PRGROM, Offset: m.bank16(m.prgBank, address)}, true
		}

	case AxROM, GxROM:
		if address >= 0x8000 {
			return Mapping{Region: PRGROM, Offset: m.bank32(m.prgBank, address)}, true
		}
	}

	return Mapping{}, false
}

// CPUMapWrite translates a write to the CPU bus. Writes to the bank select
// registers of a mapper are consumed and reported as a mapping to the
// Internal region.
func (m *Mapper) CPUMapWrite(address uint16, data uint8) (Mapping, bool) {
	switch m.ID {
	case NROM:
		// the ROM can't be changed but the cartridge still owns the address
		if address >= 0x8000 {
			return Mapping{Region: PRGROM, Offset: m.nromOffset(address)}, true
		}

	case MMC1:
		if address >= 0x6000 && address <= 0x7fff {
			return Mapping{Region: PRGRAM, Offset: uint32(address & 0x1fff)}, true
		}
		if address >= 0x8000 {
			m.mmc1.write(address, data)
			return Mapping{Region: Internal}, true
		}

	case UxROM:
		if address >= 0x8000 {
			m.prgBank = int(data&0x0f) % m.prgBanks
			return Mapping{Region: Internal}, true
		}

	case CNROM:
		if address >= 0x8000 {
			m.chrBank = int(data&0x03) % m.chrBanks
			return Mapping{Region: Internal}, true
		}

	case AxROM:
		if address >= 0x8000 {
			m.prgBank = int(data&0x07) % m.prg32Banks()
			if data&0x10 == 0x10 {
				m.oneScreen = OneScreenHi
			} else {
				m.oneScreen = OneScreenLo
			}
			return Mapping{Region: Internal}, true
		}

	case GxROM:
		if address >= 0x8000 {
			m.prgBank = int((data>>4)&0x03) % m.prg32Banks()
			m.chrBank = int(data&0x03) % m.chrBanks
			return Mapping{Region: Internal}, true
		}
	}

	return Mapping{}, false
}

// PPUMapRead translates a read from the PPU bus. Only the pattern tables in
// the range 0x0000 to 0x1fff are ever claimed.
func (m *Mapper) PPUMapRead(address uint16) (Mapping, bool) {
	if address > 0x1fff {
		return Mapping{}, false
	}

	switch m.ID {
	case MMC1:
		return Mapping{Region: CHR, Offset: m.mmc1CHR(address)}, true
	case CNROM, GxROM:
		return Mapping{Region: CHR, Offset: uint32(m.chrBank)*CHRBankSize + uint32(address)}, true
	}

	return Mapping{Region: CHR, Offset: uint32(address)}, true
}

// PPUMapWrite translates a write to the PPU bus. Writes are only claimed if
// the cartridge has CHR RAM. NROM cartridges never claim PPU writes.
func (m *Mapper) PPUMapWrite(address uint16) (Mapping, bool) {
	if m.ID == NROM || !m.chrRAM {
		return Mapping{}, false
	}
	return m.PPUMapRead(address)
}

// a single 16KB bank is mirrored across the whole of the 32KB window
func (m *Mapper) nromOffset(address uint16) uint32 {
	if m.prgBanks > 1 {
		return uint32(address & 0x7fff)
	}
	return uint32(address & 0x3fff)
}

func (m *Mapper) bank16(bank int, address uint16) uint32 {
	return uint32(bank)*PRGBankSize + uint32(address&0x3fff)
}

func (m *Mapper) bank32(bank int, address uint16) uint32 {
	if m.prgBanks < 2 {
		return uint32(address & 0x3fff)
	}
	return uint32(bank)*PRGBankSize*2 + uint32(address&0x7fff)
}

// the number of 32KB PRG banks. never less than one
func (m *Mapper) prg32Banks() int {
	if m.prgBanks < 2 {
		return 1
	}
	return m.prgBanks / 2
}
