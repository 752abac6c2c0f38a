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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a test error but allow the test to continue.
// The Demand*() functions stop the test immediately. Use a Demand*() function
// when the value being tested is required by later parts of the test. For
// example, checking that an error is nil before using the value returned with
// it.
//
// ExpectSuccess() and ExpectFailure() test for success and failure under
// generic conditions. The documentation for those functions describe the
// currently supported types. The nil value is considered a success because
// that's how errors usually work.
//
// CompareWriter, RingWriter and CappedWriter implement the io.Writer interface
// and can be used to capture output.
package test
