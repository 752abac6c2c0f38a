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

// Package curated wraps the plain Go error type with a pattern that can be
// tested for later on. Curated errors are the errors we expect to happen: a
// cartridge that can't be loaded, a reset with nothing attached to the CPU,
// and so on. Any other error is "uncurated" and is probably a bug.
//
// Curated errors are created with Errorf(), which has the same signature as
// the fmt.Errorf() function. The first argument is called the pattern and it
// is the pattern that is checked by the Is() function:
//
//	e := curated.Errorf("cartridge: %v", "no PRG data")
//
//	if curated.Is(e, "cartridge: %v") {
//		fmt.Println("true")
//	}
//
// The Has() function checks whether the pattern appears anywhere in the chain
// of errors. The chain is formed by using a curated error as one of the
// values given to Errorf():
//
//	e := curated.Errorf("unsupported mapper (%03d)", 5)
//	f := curated.Errorf("cartridge: %v", e)
//
//	curated.Has(f, "unsupported mapper (%03d)") // true
//	curated.Is(f, "unsupported mapper (%03d)")  // false
//
// IsAny() returns true if the error was created by Errorf() at all.
//
// The string returned by Error() is normalised so that duplicate adjacent
// parts are removed. For the purposes of this package a message is made of
// parts separated by the sub-string ": ". The following:
//
//	curated.Errorf("cpu: %v", curated.Errorf("cpu: reset with no bus"))
//
// produces the message "cpu: reset with no bus" and not "cpu: cpu: reset
// with no bus". This means that a function can wrap the errors returned by
// the functions it calls without worrying about the prefix being repeated.
//
// Curated errors implement Unwrap() so the errors.Is() and errors.As()
// functions in the standard library also work through the chain.
package curated
