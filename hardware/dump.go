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

package hardware

import (
	"io"

	"github.com/bradleyjkemp/memviz"
)

// Dump writes a graphviz representation of the NES and every component it
// owns to the io.Writer. References between components are shown as edges
// back to the owned instance.
func (nes *NES) Dump(w io.Writer) {
	memviz.Map(w, nes)
}
