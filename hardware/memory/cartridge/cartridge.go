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

package cartridge

import (
	"fmt"

	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/environment"
	"github.com/famicore/famicore/hardware/memory/cartridge/mapper"
	"github.com/famicore/famicore/logger"
)

// LoadError is returned by NewCartridge() when the Image can not be used to
// create a cartridge.
const LoadError = "cartridge: load error: %v"

// Cartridge implements the memory of the cartridge inserted into the NES.
type Cartridge struct {
	env *environment.Environment

	img    Image
	mapper *mapper.Mapper

	prg    []uint8
	chr    []uint8
	prgRAM []uint8

	// cartridge has CHR RAM rather than CHR ROM
	chrRAM bool

	// Valid is true once the cartridge has been successfully created
	Valid bool
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The env argument can be nil.
//
// The returned error will be a curated LoadError. The error will also
// contain the mapper.UnsupportedMapper pattern if that is the reason for
// failure.
func NewCartridge(env *environment.Environment, img Image) (*Cartridge, error) {
	if err := img.validate(); err != nil {
		return nil, curated.Errorf(LoadError, err)
	}

	m, err := mapper.NewMapper(img.MapperID, img.PRGBanks, img.CHRBanks)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}

	cart := &Cartridge{
		env:    env,
		img:    img,
		mapper: m,
		prg:    make([]uint8, len(img.PRG)),
		prgRAM: make([]uint8, mapper.PRGRAMSize),
	}
	copy(cart.prg, img.PRG)

	if img.CHRBanks == 0 {
		cart.chrRAM = true
		cart.chr = make([]uint8, mapper.CHRBankSize)
	} else {
		cart.chr = make([]uint8, len(img.CHR))
		copy(cart.chr, img.CHR)
	}

	cart.Valid = true

	var perm logger.Permission = logger.Allow
	if env != nil {
		perm = env
	}
	logger.Log(perm, "cartridge", cart)

	return cart, nil
}

func (cart *Cartridge) String() string {
	return fmt.Sprintf("%s [%s]", cart.img, cart.Mirroring())
}

// Snapshot creates a copy of the cartridge in its current state. ROM is
// shared between the original and the copy because it never changes.
func (cart *Cartridge) Snapshot() *Cartridge {
	n := *cart
	n.mapper = cart.mapper.Snapshot()
	n.prgRAM = make([]uint8, len(cart.prgRAM))
	copy(n.prgRAM, cart.prgRAM)
	if cart.chrRAM {
		n.chr = make([]uint8, len(cart.chr))
		copy(n.chr, cart.chr)
	}
	return &n
}

// Plumb a new environment into the cartridge.
func (cart *Cartridge) Plumb(env *environment.Environment) {
	cart.env = env
}

// Reset the mapper registers. The contents of PRG RAM and CHR RAM are
// unchanged.
func (cart *Cartridge) Reset() {
	cart.mapper.Reset()
}

// Mapper returns the mapper ID of the cartridge.
func (cart *Cartridge) Mapper() mapper.ID {
	return cart.mapper.ID
}

// MapperState returns a description of the current state of the mapper
// registers.
func (cart *Cartridge) MapperState() string {
	return cart.mapper.String()
}

// Mirroring returns the current nametable mirroring. The mirroring selected
// by the mapper takes precedence over the mirroring hardwired in the
// cartridge.
func (cart *Cartridge) Mirroring() mapper.Mirroring {
	if m, ok := cart.mapper.Mirroring(); ok {
		return m
	}
	return cart.img.Mirroring
}

// CPURead reads from the cartridge on behalf of the CPU. Returns false if the
// cartridge does not claim the address.
func (cart *Cartridge) CPURead(address uint16) (uint8, bool) {
	mp, ok := cart.mapper.CPUMapRead(address)
	if !ok {
		return 0, false
	}
	switch mp.Region {
	case mapper.PRGROM:
		return cart.prg[mp.Offset], true
	case mapper.PRGRAM:
		return cart.prgRAM[mp.Offset], true
	}
	return 0, true
}

// CPUWrite writes to the cartridge on behalf of the CPU. Returns false if the
// cartridge does not claim the address.
func (cart *Cartridge) CPUWrite(address uint16, data uint8) bool {
	mp, ok := cart.mapper.CPUMapWrite(address, data)
	if !ok {
		return false
	}
	if mp.Region == mapper.PRGRAM {
		cart.prgRAM[mp.Offset] = data
	}
	return true
}

// PPURead reads from the cartridge on behalf of the PPU. Returns false if the
// cartridge does not claim the address.
func (cart *Cartridge) PPURead(address uint16) (uint8, bool) {
	mp, ok := cart.mapper.PPUMapRead(address)
	if !ok {
		return 0, false
	}
	return cart.chr[mp.Offset], true
}

// PPUWrite writes to the cartridge on behalf of the PPU. Returns false if the
// cartridge does not claim the address.
func (cart *Cartridge) PPUWrite(address uint16, data uint8) bool {
	mp, ok := cart.mapper.PPUMapWrite(address)
	if !ok {
		return false
	}
	cart.chr[mp.Offset] = data
	return true
}
