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

package test

// CompareWriter is an io.Writer that keeps everything written to it so that
// it can be compared against an expected string.
type CompareWriter struct {
	output []byte
}

// Write implements the io.Writer interface. It never fails.
func (w *CompareWriter) Write(p []byte) (int, error) {
	w.output = append(w.output, p...)
	return len(p), nil
}

// Clear forgets everything written so far.
func (w *CompareWriter) Clear() {
	w.output = w.output[:0]
}

// Compare returns true if the output so far is exactly the expected string.
func (w *CompareWriter) Compare(expected string) bool {
	return string(w.output) == expected
}

func (w *CompareWriter) String() string {
	return string(w.output)
}
