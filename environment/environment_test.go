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

package environment_test

import (
	"testing"

	"github.com/famicore/famicore/environment"
	"github.com/famicore/famicore/logger"
	"github.com/famicore/famicore/test"
)

func TestEnvironment(t *testing.T) {
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, env.IsMainEmulation())
	test.ExpectSuccess(t, env.AllowLogging())
	test.DemandImplements[logger.Permission](t, env)

	cmp, err := environment.NewEnvironment("comparison", env.Prefs)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, cmp.IsMainEmulation())
	test.ExpectFailure(t, cmp.AllowLogging())

	// preferences are shared
	test.ExpectSuccess(t, env.Prefs.UnmappedValue.Set(0x40))
	test.ExpectEquality(t, cmp.Prefs.UnmappedValue.Get().(int), 0x40)

	cmp.Normalise()
	test.ExpectEquality(t, env.Prefs.UnmappedValue.Get().(int), 0)
	test.ExpectSuccess(t, cmp.Random.ZeroSeed)
}

func TestLoggingPermission(t *testing.T) {
	log := logger.NewLogger(10)
	w := &test.CompareWriter{}

	main, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	other, err := environment.NewEnvironment("other", nil)
	test.DemandSuccess(t, err)

	log.Log(other, "tag", "from other")
	log.Log(main, "tag", "from main")
	log.Write(w)
	test.ExpectSuccess(t, w.Compare("tag: from main\n"))
}
