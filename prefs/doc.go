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

// Package prefs implements typed preference values. Each type (Bool, Int,
// Float, String) can be set from a value of its own type or from a string,
// which makes it possible to set any preference from the command line.
//
// Values are stored atomically and can be read from a goroutine other than
// the one that set them.
//
// A command line "stack" allows preferences to be overridden for the
// lifetime of an emulation. A group of key/value pairs is pushed onto the
// stack with PushCommandLineStack() using the form:
//
//	"hardware.randomState::true; hardware.unmappedValue::255"
//
// A key is consumed when it is retrieved with GetCommandLinePref(). Any
// unconsumed keys are returned by PopCommandLineStack().
package prefs
