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

package test_test

import (
	"fmt"
	"testing"

	"github.com/famicore/famicore/test"
)

func TestCappedWriter(t *testing.T) {
	_, err := test.NewCappedWriter(0)
	test.ExpectFailure(t, err)

	c, err := test.NewCappedWriter(8)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c.String(), "")
	test.ExpectFailure(t, c.Capped())

	fmt.Fprint(c, "abc")
	test.ExpectEquality(t, c.String(), "abc")

	n, err := fmt.Fprint(c, "defghijk")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 8)
	test.ExpectEquality(t, c.String(), "abcdefgh")
	test.ExpectSuccess(t, c.Capped())

	// nothing more is accepted
	fmt.Fprint(c, "xyz")
	test.ExpectEquality(t, c.String(), "abcdefgh")

	c.Reset()
	test.ExpectEquality(t, c.String(), "")
	fmt.Fprint(c, "xyz")
	test.ExpectEquality(t, c.String(), "xyz")
}
