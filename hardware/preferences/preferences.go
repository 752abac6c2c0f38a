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

// Package preferences contains the preference values that affect the
// emulated hardware.
package preferences

import (
	"github.com/famicore/famicore/prefs"
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	// initialise RAM to an unknown state on power-on
	RandomState prefs.Bool

	// the value returned by a CPU read that no part of the memory map claims
	UnmappedValue prefs.Int

	// create a log entry when an illegal opcode is executed
	LogIllegalOpcodes prefs.Bool
}

// Keys used when setting preferences from the command line stack.
const (
	KeyRandomState       = "hardware.randomState"
	KeyUnmappedValue     = "hardware.unmappedValue"
	KeyLogIllegalOpcodes = "hardware.logIllegalOpcodes"
)

func (p *Preferences) String() string {
	return "randomState=" + p.RandomState.String() +
		" unmappedValue=" + p.UnmappedValue.String() +
		" logIllegalOpcodes=" + p.LogIllegalOpcodes.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Default values are overridden by any values found in the
// top group of the command line stack.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	// unmapped reads put a single byte onto the data bus
	p.UnmappedValue.SetHookPre(func(v prefs.Value) error {
		if n := v.(int); n < 0 || n > 0xff {
			return prefs.ErrOutOfRange
		}
		return nil
	})

	for key, v := range map[string]prefs.Pref{
		KeyRandomState:       &p.RandomState,
		KeyUnmappedValue:     &p.UnmappedValue,
		KeyLogIllegalOpcodes: &p.LogIllegalOpcodes,
	} {
		if _, err := prefs.Apply(key, v); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.RandomState.Set(false)
	_ = p.UnmappedValue.Set(0)
	_ = p.LogIllegalOpcodes.Set(true)
}

// Unmapped returns the UnmappedValue preference as a byte.
func (p *Preferences) Unmapped() uint8 {
	return uint8(p.UnmappedValue.Get().(int))
}
