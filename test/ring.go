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

import (
	"fmt"
)

// RingWriter is an io.Writer that keeps only the most recent bytes written
// to it. Useful for checking the tail of a long stream of output, such as an
// echoed log.
type RingWriter struct {
	buffer []byte
	next   int
	full   bool
}

// NewRingWriter creates a RingWriter that remembers the last size bytes.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("ring writer: size must be positive (%d)", size)
	}
	return &RingWriter{buffer: make([]byte, size)}, nil
}

// String returns the remembered bytes, oldest first.
func (r *RingWriter) String() string {
	if !r.full {
		return string(r.buffer[:r.next])
	}
	return string(r.buffer[r.next:]) + string(r.buffer[:r.next])
}

// Reset forgets everything written so far.
func (r *RingWriter) Reset() {
	r.next = 0
	r.full = false
}

// Write implements the io.Writer interface. It never fails.
func (r *RingWriter) Write(p []byte) (int, error) {
	n := len(p)

	// only the tail of an oversized write can survive
	if n >= len(r.buffer) {
		copy(r.buffer, p[n-len(r.buffer):])
		r.next = 0
		r.full = true
		return n, nil
	}

	c := copy(r.buffer[r.next:], p)
	if c < n {
		copy(r.buffer, p[c:])
		r.full = true
	}
	r.next += n
	if r.next >= len(r.buffer) {
		r.next -= len(r.buffer)
		r.full = true
	}

	return n, nil
}
