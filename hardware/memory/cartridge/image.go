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
	"github.com/famicore/famicore/hardware/memory/cartridge/mapper"
)

// Image is the parsed content of a ROM file.
type Image struct {
	// optional name of the image. used for logging only
	Name string

	PRG []uint8
	CHR []uint8

	MapperID mapper.ID

	// the number of 16KB PRG banks and the number of 8KB CHR banks. zero CHR
	// banks indicates that the cartridge has CHR RAM
	PRGBanks int
	CHRBanks int

	// the nametable mirroring hardwired by the cartridge. some mappers can
	// override this
	Mirroring mapper.Mirroring
}

func (img Image) String() string {
	s := fmt.Sprintf("mapper %s PRG=%dx16K", img.MapperID, img.PRGBanks)
	if img.CHRBanks == 0 {
		s = fmt.Sprintf("%s CHR=RAM", s)
	} else {
		s = fmt.Sprintf("%s CHR=%dx8K", s, img.CHRBanks)
	}
	if img.Name != "" {
		s = fmt.Sprintf("%s: %s", img.Name, s)
	}
	return s
}

// check that the bank counts agree with the data
func (img Image) validate() error {
	if img.PRGBanks == 0 {
		return curated.Errorf("no PRG banks")
	}
	if len(img.PRG) != img.PRGBanks*mapper.PRGBankSize {
		return curated.Errorf("PRG data is %d bytes but should be %d bytes", len(img.PRG), img.PRGBanks*mapper.PRGBankSize)
	}
	if len(img.CHR) != img.CHRBanks*mapper.CHRBankSize {
		return curated.Errorf("CHR data is %d bytes but should be %d bytes", len(img.CHR), img.CHRBanks*mapper.CHRBankSize)
	}
	return nil
}
