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

// CappedWriter is an io.Writer that accepts bytes until a limit is reached
// and silently drops everything after that. Useful for output that is
// potentially very large but only the start of which is interesting.
type CappedWriter struct {
	buffer []byte
	limit  int
}

// NewCappedWriter creates a CappedWriter that accepts at most limit bytes.
func NewCappedWriter(limit int) (*CappedWriter, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("capped writer: limit must be positive (%d)", limit)
	}
	return &CappedWriter{
		buffer: make([]byte, 0, limit),
		limit:  limit,
	}, nil
}

func (c *CappedWriter) String() string {
	return string(c.buffer)
}

// Capped returns true if the limit has been reached.
func (c *CappedWriter) Capped() bool {
	return len(c.buffer) >= c.limit
}

// Reset empties the buffer.
func (c *CappedWriter) Reset() {
	c.buffer = c.buffer[:0]
}

// Write implements the io.Writer interface. Dropped bytes are still counted
// as written so that callers do not see a short write error.
func (c *CappedWriter) Write(p []byte) (int, error) {
	n := min(len(p), c.limit-len(c.buffer))
	c.buffer = append(c.buffer, p[:n]...)
	return len(p), nil
}
