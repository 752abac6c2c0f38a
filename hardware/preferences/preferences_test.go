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

package preferences_test

import (
	"testing"

	"github.com/famicore/famicore/hardware/preferences"
	"github.com/famicore/famicore/prefs"
	"github.com/famicore/famicore/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.RandomState.Get().(bool), false)
	test.ExpectEquality(t, p.Unmapped(), uint8(0))
	test.ExpectEquality(t, p.LogIllegalOpcodes.Get().(bool), true)
}

func TestCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("hardware.randomState::true; hardware.unmappedValue::64; other::1")
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.RandomState.Get().(bool), true)
	test.ExpectEquality(t, p.Unmapped(), uint8(64))

	// keys not used by the preferences are left on the stack
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "other::1")

	p.SetDefaults()
	test.ExpectEquality(t, p.RandomState.Get().(bool), false)
	test.ExpectEquality(t, p.Unmapped(), uint8(0))
}

func TestUnmappedRange(t *testing.T) {
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, p.UnmappedValue.Set(256))
	test.ExpectFailure(t, p.UnmappedValue.Set(-1))
	test.ExpectSuccess(t, p.UnmappedValue.Set(0xff))
	test.ExpectEquality(t, p.Unmapped(), uint8(0xff))

	prefs.PushCommandLineStack("hardware.unmappedValue::300")
	_, err = preferences.NewPreferences()
	test.ExpectFailure(t, err)
	prefs.PopCommandLineStack()
}
