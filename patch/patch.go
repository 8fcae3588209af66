// This file is part of Drift.
//
// Drift is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Drift is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Drift.  If not, see <https://www.gnu.org/licenses/>.

// Package patch runs small Lua scripts that change the synth preferences. A
// patch is useful for setting up a sound that would otherwise need a long
// list of preferences on the command line:
//
//	set("synth.preset", "glide")
//	set("synth.voices", 6)
//	if get("synth.amplitude") > 0.2 then
//		set("synth.amplitude", 0.2)
//	end
//
// The following functions are available to a patch:
//
//	set(key, value)    change a preference
//	get(key)           the current value of a preference
//	keys()             a table of all preference keys
//	presets()          a table of all preset names
//	log(message)       add a message to the log
//
// Only the base, string, math and table Lua libraries are opened. A patch
// cannot access files or the operating system.
package patch

import (
	"context"

	"github.com/jetsetilly/drift/curated"
	"github.com/jetsetilly/drift/logger"
	"github.com/jetsetilly/drift/prefs"
	"github.com/jetsetilly/drift/synth/preferences"
	lua "github.com/yuin/gopher-lua"
)

// ScriptError is returned by Run() when the script could not be compiled or
// raised an error while running.
const ScriptError = "patch: %v"

// Run the patch script against the preferences. The script can be cancelled
// with the context.
func Run(ctx context.Context, p *preferences.Preferences, script string) error {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
		{lua.TabLibName, lua.OpenTable},
	} {
		if err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name)); err != nil {
			return curated.Errorf(ScriptError, err)
		}
	}

	// the base library includes functions that reach the filesystem
	for _, name := range []string{"dofile", "loadfile", "require"} {
		L.SetGlobal(name, lua.LNil)
	}

	bind(L, p)

	L.SetContext(ctx)
	if err := L.DoString(script); err != nil {
		return curated.Errorf(ScriptError, err)
	}

	return nil
}

func bind(L *lua.LState, p *preferences.Preferences) {
	L.SetGlobal("set", L.NewFunction(func(L *lua.LState) int {
		key := L.CheckString(1)
		v := fromLua(L.CheckAny(2))
		if err := p.Set(key, v); err != nil {
			L.RaiseError("%v", err)
		}
		return 0
	}))

	L.SetGlobal("get", L.NewFunction(func(L *lua.LState) int {
		key := L.CheckString(1)
		v, err := p.Get(key)
		if err != nil {
			L.RaiseError("%v", err)
		}
		L.Push(toLua(v))
		return 1
	}))

	L.SetGlobal("keys", L.NewFunction(func(L *lua.LState) int {
		L.Push(stringTable(L, p.Keys()))
		return 1
	}))

	L.SetGlobal("presets", L.NewFunction(func(L *lua.LState) int {
		L.Push(stringTable(L, preferences.PresetNames()))
		return 1
	}))

	L.SetGlobal("log", L.NewFunction(func(L *lua.LState) int {
		logger.Log(logger.Allow, "patch", L.CheckString(1))
		return 0
	}))
}

func stringTable(L *lua.LState, s []string) *lua.LTable {
	t := L.NewTable()
	for _, v := range s {
		t.Append(lua.LString(v))
	}
	return t
}

// fromLua converts a Lua value to a value that can be given to a preference
func fromLua(v lua.LValue) prefs.Value {
	switch v := v.(type) {
	case lua.LBool:
		return bool(v)
	case lua.LNumber:
		return float64(v)
	case lua.LString:
		return string(v)
	}
	return v.String()
}

// toLua converts a preference value to a Lua value
func toLua(v prefs.Value) lua.LValue {
	switch v := v.(type) {
	case bool:
		return lua.LBool(v)
	case int:
		return lua.LNumber(v)
	case int64:
		return lua.LNumber(v)
	case float64:
		return lua.LNumber(v)
	case string:
		return lua.LString(v)
	}
	return lua.LNil
}
