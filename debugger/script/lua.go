// This file is part of Gophercores.
//
// Gophercores is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophercores is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophercores.  If not, see <https://www.gnu.org/licenses/>.

package script

import (
	"os"

	"github.com/jetsetilly/gophercores/curated"
	"github.com/jetsetilly/gophercores/hardware/cpu/execution"
	"github.com/jetsetilly/gophercores/logger"
	lua "github.com/yuin/gopher-lua"
)

// Error patterns returned by the package.
const (
	NoSuchFile = "script: no such file: %s"
	LuaError   = "script: %v"
)

// Machine is the view of the CPU core given to a script.
type Machine interface {
	Registers() map[string]uint32
	CycleCount() uint64
}

// Memory is the view of the memory given to a script. Addresses are masked
// by the implementation.
type Memory interface {
	Peek(address uint32) uint8
	Poke(address uint32, data uint8)
}

// names of the global functions that the host calls, if they have been
// defined by the script.
const (
	hookStep = "on_step"
	hookEnd  = "on_end"
)

// Script is a loaded Lua script. The script is run once on loading, which
// is when it should define its hook functions.
//
// The following functions are available to the script:
//
//	reg(name)           value of the named register
//	peek(address)       read a byte from memory
//	poke(address, v)    write a byte to memory
//	cycles()            cycles consumed since the last reset
//	stop([reason])      stop the run after the current step
//	log(message)        write to the central log
//
// The on_step(address, instruction) hook is called after every step with
// the address and disassembly of the instruction just executed. The
// on_end(steps) hook is called once at the end of the run.
type Script struct {
	L   *lua.LState
	mc  Machine
	mem Memory

	stopped bool
	reason  string
}

// Load creates a Script from a file.
func Load(filename string, mc Machine, mem Memory) (*Script, error) {
	if _, err := os.Stat(filename); err != nil {
		if os.IsNotExist(err) {
			return nil, curated.Errorf(NoSuchFile, filename)
		}
		return nil, curated.Errorf(LuaError, err)
	}

	scr := newScript(mc, mem)
	if err := scr.L.DoFile(filename); err != nil {
		scr.Close()
		return nil, curated.Errorf(LuaError, err)
	}
	return scr, nil
}

// LoadString creates a Script from source code.
func LoadString(source string, mc Machine, mem Memory) (*Script, error) {
	scr := newScript(mc, mem)
	if err := scr.L.DoString(source); err != nil {
		scr.Close()
		return nil, curated.Errorf(LuaError, err)
	}
	return scr, nil
}

func newScript(mc Machine, mem Memory) *Script {
	scr := &Script{
		L:   lua.NewState(),
		mc:  mc,
		mem: mem,
	}

	scr.L.SetGlobal("reg", scr.L.NewFunction(scr.reg))
	scr.L.SetGlobal("peek", scr.L.NewFunction(scr.peek))
	scr.L.SetGlobal("poke", scr.L.NewFunction(scr.poke))
	scr.L.SetGlobal("cycles", scr.L.NewFunction(scr.cycles))
	scr.L.SetGlobal("stop", scr.L.NewFunction(scr.stop))
	scr.L.SetGlobal("log", scr.L.NewFunction(scr.log))

	return scr
}

// Close releases the Lua state.
func (scr *Script) Close() {
	scr.L.Close()
}

// Stopped returns true if the script has called stop(), along with the reason
// given by the script.
func (scr *Script) Stopped() (bool, string) {
	return scr.stopped, scr.reason
}

// Step calls the on_step hook with the result of the most recent step. The
// return value is true if the script has asked for the run to stop.
func (scr *Script) Step(r execution.Result) (bool, error) {
	err := scr.call(hookStep, lua.LNumber(r.Address), lua.LString(r.Disassemble()))
	return scr.stopped, err
}

// End calls the on_end hook with the number of steps in the run.
func (scr *Script) End(steps int) error {
	return scr.call(hookEnd, lua.LNumber(steps))
}

func (scr *Script) call(hook string, args ...lua.LValue) error {
	fn := scr.L.GetGlobal(hook)
	if fn.Type() != lua.LTFunction {
		return nil
	}

	err := scr.L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, args...)
	if err != nil {
		return curated.Errorf(LuaError, err)
	}
	return nil
}

func (scr *Script) reg(L *lua.LState) int {
	name := L.CheckString(1)
	v, ok := scr.mc.Registers()[name]
	if !ok {
		L.ArgError(1, "unknown register")
		return 0
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) peek(L *lua.LState) int {
	address := uint32(L.CheckInt64(1))
	L.Push(lua.LNumber(scr.mem.Peek(address)))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	address := uint32(L.CheckInt64(1))
	data := uint8(L.CheckInt(2))
	scr.mem.Poke(address, data)
	return 0
}

func (scr *Script) cycles(L *lua.LState) int {
	L.Push(lua.LNumber(scr.mc.CycleCount()))
	return 1
}

func (scr *Script) stop(L *lua.LState) int {
	scr.stopped = true
	scr.reason = L.OptString(1, "")
	return 0
}

func (scr *Script) log(L *lua.LState) int {
	logger.Log(logger.Allow, "script", L.CheckString(1))
	return 0
}
