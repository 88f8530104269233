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

package w65c816_test

import (
	"testing"

	"github.com/jetsetilly/gophercores/diagnostics"
	"github.com/jetsetilly/gophercores/hardware/cpu/registers"
	"github.com/jetsetilly/gophercores/hardware/cpu/w65c816"
	"github.com/jetsetilly/gophercores/hardware/memory/cpubus"
	"github.com/jetsetilly/gophercores/hardware/memory/ram"
	"github.com/jetsetilly/gophercores/test"
)

// the address of the first instruction of every test program.
const origin = 0x8000

type mockMem struct {
	*ram.Long
}

func (mem mockMem) putInstructions(address uint32, bytes ...uint8) uint32 {
	mem.Load(address, bytes)
	return address + uint32(len(bytes))
}

func (mem mockMem) putVector(vector uint16, address uint16) {
	mem.Load(uint32(vector), []uint8{uint8(address), uint8(address >> 8)})
}

func (mem mockMem) assert(t *testing.T, address uint32, value uint8) {
	t.Helper()
	if d := mem.ReadLong(address); d != value {
		t.Errorf("memory assertion failed (%02x - wanted %02x at address %06x)", d, value, address)
	}
}

// newCPU creates a CPU with the program at the origin and resets it.
func newCPU(program ...uint8) (*w65c816.CPU, mockMem) {
	mem := mockMem{Long: ram.NewLong()}
	mem.putVector(cpubus.Reset, origin)
	mem.putInstructions(origin, program...)
	mc := w65c816.NewCPU(mem)
	mc.Reset()
	return mc, mem
}

func step(t *testing.T, mc *w65c816.CPU) int {
	t.Helper()
	cycles := mc.Step()
	if err := mc.LastResult.IsValid(); err != nil {
		t.Fatal(err)
	}
	return cycles
}

func TestReset(t *testing.T) {
	mem := mockMem{Long: ram.NewLong()}
	mem.putVector(cpubus.Reset, 0x1234)

	mc := w65c816.NewCPU(mem)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0))
	test.ExpectSuccess(t, mc.Emulation)

	mc.Reset()
	test.ExpectEquality(t, mc.ProgramCounter(), uint32(0x001234))
	test.ExpectEquality(t, mc.S.Address(), uint16(0x01ff))
	test.ExpectSuccess(t, mc.S.Pinned())
	test.ExpectEquality(t, mc.Status.Value(), uint8(0x34))
	test.ExpectEquality(t, mc.AccumulatorWidth(), registers.Bits8)
	test.ExpectEquality(t, mc.IndexWidth(), registers.Bits8)
	test.ExpectEquality(t, mc.CycleCount(), uint64(0))

	// reset is idempotent
	mc.SetEmulation(false)
	mc.DBR = 0x7e
	mc.Reset()
	before := mc.Registers()
	mc.Reset()
	test.ExpectEquality(t, len(mc.Registers()), len(before))
	for k, v := range before {
		test.ExpectEquality(t, mc.Registers()[k], v)
	}
	test.ExpectSuccess(t, mc.Emulation)
	test.ExpectEquality(t, mc.DBR, uint8(0))

	// snapshots are independent of the CPU
	snap := mc.Snapshot()
	mc.D = 0x2000
	test.ExpectEquality(t, snap.D, uint16(0))
}

func TestLoadImmediate(t *testing.T) {
	mc, _ := newCPU(0xa9, 0x42)
	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectEquality(t, mc.Accumulator(), uint16(0x42))
	test.ExpectEquality(t, mc.LastResult.ByteCount, 2)
	test.ExpectEquality(t, mc.LastResult.Disassemble(), "LDA #$42")
	test.ExpectEquality(t, mc.ProgramCounter(), uint32(0x008002))
	test.ExpectEquality(t, mc.CycleCount(), uint64(2))
	test.ExpectFailure(t, mc.Status.Zero)
	test.ExpectFailure(t, mc.Status.Sign)
}

func TestAddWithCarry(t *testing.T) {
	mc, _ := newCPU(
		0x18,       // CLC
		0xa9, 0xff, // LDA #$ff
		0x69, 0x02, // ADC #$02
		0x69, 0x7f, // ADC #$7f
	)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectEquality(t, mc.Accumulator(), uint16(0x01))
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectFailure(t, mc.Status.Overflow)
	test.ExpectFailure(t, mc.Status.Zero)

	// 0x01 + 0x7f + carry is signed overflow
	step(t, mc)
	test.ExpectEquality(t, mc.Accumulator(), uint16(0x81))
	test.ExpectFailure(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Overflow)
	test.ExpectSuccess(t, mc.Status.Sign)
}

func TestSubtract(t *testing.T) {
	mc, _ := newCPU(
		0x38,       // SEC
		0xa9, 0x10, // LDA #$10
		0xe9, 0x11, // SBC #$11
		0xc9, 0xff, // CMP #$ff
	)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.Accumulator(), uint16(0xff))
	test.ExpectFailure(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Sign)

	step(t, mc)
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Zero)
}

func TestDecimalMode(t *testing.T) {
	mc, _ := newCPU(
		0xf8,       // SED
		0x18,       // CLC
		0xa9, 0x19, // LDA #$19
		0x69, 0x28, // ADC #$28
		0xa9, 0x99, // LDA #$99
		0x69, 0x01, // ADC #$01
		0x38,       // SEC
		0xa9, 0x10, // LDA #$10
		0xe9, 0x01, // SBC #$01
	)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.Accumulator(), uint16(0x47))
	test.ExpectFailure(t, mc.Status.Carry)

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.Accumulator(), uint16(0x00))
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Zero)

	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.Accumulator(), uint16(0x09))
	test.ExpectSuccess(t, mc.Status.Carry)
}

func TestModeSwitching(t *testing.T) {
	mc, _ := newCPU(
		0x18,             // CLC
		0xfb,             // XCE
		0xc2, 0x30,       // REP #$30
		0xa9, 0x34, 0x12, // LDA #$1234
		0xa2, 0xff, 0xff, // LDX #$ffff
		0xe2, 0x10,       // SEP #$10
		0x38,             // SEC
		0xfb,             // XCE
	)

	step(t, mc)
	step(t, mc)
	test.ExpectFailure(t, mc.Emulation)
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectFailure(t, mc.S.Pinned())

	test.ExpectEquality(t, step(t, mc), 3)
	test.ExpectEquality(t, mc.AccumulatorWidth(), registers.Bits16)
	test.ExpectEquality(t, mc.IndexWidth(), registers.Bits16)

	// sixteen bit immediate values are one byte longer and one cycle slower
	test.ExpectEquality(t, step(t, mc), 3)
	test.ExpectEquality(t, mc.LastResult.ByteCount, 3)
	test.ExpectEquality(t, mc.Accumulator(), uint16(0x1234))
	test.ExpectEquality(t, mc.LastResult.Disassemble(), "LDA #$1234")

	step(t, mc)
	test.ExpectEquality(t, mc.IndexX(), uint16(0xffff))
	test.ExpectSuccess(t, mc.Status.Sign)

	// setting the X flag clears the high byte of the index registers
	step(t, mc)
	test.ExpectEquality(t, mc.IndexWidth(), registers.Bits8)
	test.ExpectEquality(t, mc.X.Full(), uint16(0x00ff))

	step(t, mc)
	step(t, mc)
	test.ExpectSuccess(t, mc.Emulation)
	test.ExpectFailure(t, mc.Status.Carry)
	test.ExpectEquality(t, mc.AccumulatorWidth(), registers.Bits8)
	test.ExpectSuccess(t, mc.S.Pinned())
	test.ExpectEquality(t, mc.S.Address(), uint16(0x01ff))

	// the hidden B accumulator survives the switch to emulation mode
	test.ExpectEquality(t, mc.Accumulator(), uint16(0x34))
	test.ExpectEquality(t, mc.C.Full(), uint16(0x1234))

	// the M and X flags cannot be cleared in emulation mode
	mc.SetStatus(0x00)
	test.ExpectSuccess(t, mc.Status.MemorySelect)
	test.ExpectSuccess(t, mc.Status.IndexSelect)
}

func TestStackWidth(t *testing.T) {
	mc, mem := newCPU(
		0x18,             // CLC
		0xfb,             // XCE
		0xc2, 0x20,       // REP #$20
		0xa9, 0xef, 0xbe, // LDA #$beef
		0x48,             // PHA
		0xe2, 0x20,       // SEP #$20
		0x68,             // PLA
		0x68,             // PLA
	)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	step(t, mc)

	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.S.Address(), uint16(0x01fd))
	mem.assert(t, 0x01ff, 0xbe)
	mem.assert(t, 0x01fe, 0xef)

	// pulling at eight bits takes one byte and leaves B alone
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.S.Address(), uint16(0x01fe))
	test.ExpectEquality(t, mc.C.Full(), uint16(0xbeef))

	step(t, mc)
	test.ExpectEquality(t, mc.C.Full(), uint16(0xbebe))
	test.ExpectEquality(t, mc.S.Address(), uint16(0x01ff))
	test.ExpectSuccess(t, mc.Status.Sign)

	// push and pull helpers
	mc.Push16(0xcafe)
	mc.Push8(0x01)
	test.ExpectEquality(t, mc.Pull8(), uint8(0x01))
	test.ExpectEquality(t, mc.Pull16(), uint16(0xcafe))
	test.ExpectEquality(t, mc.S.Address(), uint16(0x01ff))
}

func TestStackRoundTrip(t *testing.T) {
	mc, _ := newCPU(
		0x18, // CLC
		0xfb, // XCE
	)

	roundTrip := func() {
		t.Helper()
		s := mc.S.Address()
		for v := 0; v < 0x10000; v++ {
			mc.Push16(uint16(v))
			if p := mc.Pull16(); p != uint16(v) || mc.S.Address() != s {
				t.Fatalf("16 bit round trip failed for %04x (pulled %04x, S=%04x)", v, p, mc.S.Address())
			}
		}
		for v := 0; v < 0x100; v++ {
			mc.Push8(uint8(v))
			if p := mc.Pull8(); p != uint8(v) || mc.S.Address() != s {
				t.Fatalf("8 bit round trip failed for %02x (pulled %02x, S=%04x)", v, p, mc.S.Address())
			}
		}
	}

	// emulation mode with the stack pinned to page one
	roundTrip()

	// native mode
	step(t, mc)
	step(t, mc)
	test.DemandFailure(t, mc.Emulation)
	roundTrip()
}

func TestPinnedStack(t *testing.T) {
	mc, mem := newCPU()

	// in emulation mode the stack wraps within page one
	mc.S.Load(0x0100)
	mc.Push8(0xaa)
	test.ExpectEquality(t, mc.S.Address(), uint16(0x01ff))
	mem.assert(t, 0x0100, 0xaa)
	test.ExpectEquality(t, mc.Pull8(), uint8(0xaa))
	test.ExpectEquality(t, mc.S.Address(), uint16(0x0100))
}

func TestSubroutines(t *testing.T) {
	mc, mem := newCPU(
		0x20, 0x10, 0x80,       // JSR $8010
		0x22, 0x00, 0x80, 0x01, // JSL $018000
		0xea,                   // NOP
	)
	mem.putInstructions(0x008010, 0x60) // RTS
	mem.putInstructions(0x018000, 0x6b) // RTL

	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8010))
	test.ExpectEquality(t, mc.S.Address(), uint16(0x01fd))
	mem.assert(t, 0x01ff, 0x80)
	mem.assert(t, 0x01fe, 0x02)

	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8003))
	test.ExpectEquality(t, mc.S.Address(), uint16(0x01ff))

	test.ExpectEquality(t, step(t, mc), 8)
	test.ExpectEquality(t, mc.ProgramCounter(), uint32(0x018000))
	mem.assert(t, 0x01ff, 0x00)
	mem.assert(t, 0x01fe, 0x80)
	mem.assert(t, 0x01fd, 0x06)

	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.ProgramCounter(), uint32(0x008007))
	test.ExpectEquality(t, mc.S.Address(), uint16(0x01ff))

	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Defn.Operator, w65c816.NOP)
}

func TestBranches(t *testing.T) {
	mc, mem := newCPU(
		0xa9, 0x01, // LDA #$01
		0xd0, 0x02, // BNE $8006
		0x00, 0x00,
		0xf0, 0x10, // BEQ (not taken)
		0x80, 0xf0, // BRA $7ffa
	)
	mem.putInstructions(0x7ffa, 0x82, 0x06, 0x00) // BRL $8003

	step(t, mc)

	test.ExpectEquality(t, step(t, mc), 3)
	test.ExpectSuccess(t, mc.LastResult.BranchSuccess)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8006))
	test.ExpectEquality(t, mc.LastResult.Disassemble(), "BNE $8006")

	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectFailure(t, mc.LastResult.BranchSuccess)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8008))

	// BRA is always taken. crossing a page costs a cycle in emulation mode
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x7ffa))

	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8003))
}

func TestAddressingCycles(t *testing.T) {
	mc, mem := newCPU(
		0xa5, 0x10,       // LDA $10
		0xa5, 0x10,       // LDA $10
		0xa2, 0xff,       // LDX #$ff
		0xbd, 0x00, 0x10, // LDA $1000,X
		0xbd, 0xf0, 0x10, // LDA $10f0,X
		0x9d, 0xf0, 0x10, // STA $10f0,X
	)
	mem.putInstructions(0x0010, 0x11, 0x22)
	mem.putInstructions(0x10ff, 0x33)
	mem.putInstructions(0x11ef, 0x44)

	test.ExpectEquality(t, step(t, mc), 3)
	test.ExpectEquality(t, mc.Accumulator(), uint16(0x11))

	// a direct page that is not page aligned costs a cycle
	mc.D = 0x0001
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.Accumulator(), uint16(0x22))

	step(t, mc)

	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.Accumulator(), uint16(0x33))

	// crossing a page costs a cycle for reads
	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectEquality(t, mc.Accumulator(), uint16(0x44))

	// but stores always take the extra cycle
	mc.SetAccumulator(0x55)
	test.ExpectEquality(t, step(t, mc), 5)
	mem.assert(t, 0x11ef, 0x55)
}

func TestDirectPageWrap(t *testing.T) {
	mc, mem := newCPU(
		0xb5, 0x80, // LDA $80,X
	)
	mem.putInstructions(0x0000, 0x12)
	mem.putInstructions(0x0100, 0x34)

	// in emulation mode with an aligned direct page the index wraps within
	// the page
	mc.SetIndexX(0x80)
	step(t, mc)
	test.ExpectEquality(t, mc.Accumulator(), uint16(0x12))

	// but not in native mode
	mc.SetEmulation(false)
	mc.PC.Load(origin)
	step(t, mc)
	test.ExpectEquality(t, mc.Accumulator(), uint16(0x34))
}

func TestIndirectLong(t *testing.T) {
	mc, mem := newCPU(
		0xa7, 0x20,             // LDA [$20]
		0x8f, 0x00, 0x00, 0x7f, // STA $7f0000
		0xa0, 0x02,             // LDY #$02
		0xb7, 0x20,             // LDA [$20],Y
	)
	mem.putInstructions(0x0020, 0x00, 0x40, 0x05)
	mem.putInstructions(0x054000, 0x99, 0x00, 0x77)

	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.Accumulator(), uint16(0x99))
	test.ExpectEquality(t, mc.LastResult.Disassemble(), "LDA [$20]")

	test.ExpectEquality(t, step(t, mc), 5)
	mem.assert(t, 0x7f0000, 0x99)

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.Accumulator(), uint16(0x77))
}

func TestReadModifyWrite(t *testing.T) {
	mc, mem := newCPU(
		0x0e, 0x00, 0x20, // ASL $2000
		0xee, 0x01, 0x20, // INC $2001
		0xa9, 0x0f,       // LDA #$0f
		0x1c, 0x02, 0x20, // TRB $2002
		0x3a,             // DEC A
	)
	mem.putInstructions(0x2000, 0x81, 0xff, 0x3c)

	test.ExpectEquality(t, step(t, mc), 6)
	mem.assert(t, 0x2000, 0x02)
	test.ExpectSuccess(t, mc.Status.Carry)

	step(t, mc)
	mem.assert(t, 0x2001, 0x00)
	test.ExpectSuccess(t, mc.Status.Zero)

	step(t, mc)
	step(t, mc)
	mem.assert(t, 0x2002, 0x30)
	test.ExpectFailure(t, mc.Status.Zero)

	step(t, mc)
	test.ExpectEquality(t, mc.Accumulator(), uint16(0x0e))
}

func TestTransfers(t *testing.T) {
	mc, _ := newCPU(
		0x18,             // CLC
		0xfb,             // XCE
		0xc2, 0x20,       // REP #$20
		0xa9, 0x00, 0x20, // LDA #$2000
		0x5b,             // TCD
		0xaa,             // TAX
		0xeb,             // XBA
		0x1b,             // TCS
	)
	for i := 0; i < 5; i++ {
		step(t, mc)
	}
	test.ExpectEquality(t, mc.D, uint16(0x2000))

	// the index registers are still eight bits
	step(t, mc)
	test.ExpectEquality(t, mc.IndexX(), uint16(0x00))
	test.ExpectSuccess(t, mc.Status.Zero)

	test.ExpectEquality(t, step(t, mc), 3)
	test.ExpectEquality(t, mc.C.Full(), uint16(0x0020))
	test.ExpectFailure(t, mc.Status.Zero)

	step(t, mc)
	test.ExpectEquality(t, mc.S.Address(), uint16(0x0020))
}

func TestBlockMove(t *testing.T) {
	mc, mem := newCPU(
		0x18,             // CLC
		0xfb,             // XCE
		0xc2, 0x30,       // REP #$30
		0xa2, 0x00, 0x10, // LDX #$1000
		0xa0, 0x00, 0x20, // LDY #$2000
		0xa9, 0x02, 0x00, // LDA #$0002
		0x54, 0x01, 0x02, // MVN $02,$01
	)
	mem.putInstructions(0x021000, 0x11, 0x22, 0x33)

	for i := 0; i < 6; i++ {
		step(t, mc)
	}

	test.ExpectEquality(t, step(t, mc), 7)
	test.ExpectEquality(t, mc.LastResult.Disassemble(), "MVN $02,$01")
	test.ExpectSuccess(t, mc.LastResult.BranchSuccess)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x800d))
	test.ExpectEquality(t, mc.DBR, uint8(0x01))

	step(t, mc)
	step(t, mc)
	test.ExpectFailure(t, mc.LastResult.BranchSuccess)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8010))
	test.ExpectEquality(t, mc.C.Full(), uint16(0xffff))
	test.ExpectEquality(t, mc.IndexX(), uint16(0x1003))
	test.ExpectEquality(t, mc.IndexY(), uint16(0x2003))

	mem.assert(t, 0x012000, 0x11)
	mem.assert(t, 0x012001, 0x22)
	mem.assert(t, 0x012002, 0x33)
}

func TestUnknownOpcode(t *testing.T) {
	mc, _ := newCPU(
		0x42, 0xea, // WDM
	)
	counter := diagnostics.NewCounter(nil)
	mc.SetDiagnostics(counter)

	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectSuccess(t, mc.LastResult.Defn.Unknown)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8002))
	test.ExpectEquality(t, counter.Count(diagnostics.UnknownOpcode), 1)

	d, ok := counter.Last()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, d.Core, "65c816")
	test.ExpectEquality(t, d.Address, uint32(0x008000))
	test.ExpectEquality(t, len(d.Opcode), 2)
	test.ExpectEquality(t, d.Opcode[1], uint8(0xea))

	// a nil sink is the same as discarding
	mc.SetDiagnostics(nil)
	mc.PC.Load(origin)
	step(t, mc)
	test.ExpectEquality(t, counter.Total(), 1)
}
