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

package modalflag_test

import (
	"testing"

	"github.com/jetsetilly/gophercores/curated"
	"github.com/jetsetilly/gophercores/modalflag"
	"github.com/jetsetilly/gophercores/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
	test.ExpectSuccess(t, md.Parsed())
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")
	test.ExpectFailure(t, *testFlag)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectSuccess(t, *testFlag)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(1), "2")
	test.ExpectEquality(t, md.GetArg(2), "")
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"step", "-arch", "8080", "prog.bin"})
	md.AddSubModes("RUN", "STEP", "VERSION")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "STEP")

	md.NewMode()
	test.ExpectFailure(t, md.Parsed())
	arch := md.AddString("arch", "z80", "cpu architecture")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *arch, "8080")
	test.ExpectEquality(t, md.GetArg(0), "prog.bin")
	test.ExpectEquality(t, md.Path(), "STEP")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"prog.bin"})
	md.AddSubModes("RUN", "STEP")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")

	// the argument was not a mode and is still available
	test.ExpectEquality(t, md.GetArg(0), "prog.bin")
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-nosuchflag"})
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("No help available\n"))
}

func TestHelpFlags(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    	test flag (default true)\n"
	test.ExpectSuccess(t, tw.Compare(expectedHelp))
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddSubModes("run", "step")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    	test flag (default true)\n" +
		"\n" +
		"  available sub-modes: RUN, STEP\n" +
		"    default: RUN\n"
	test.ExpectSuccess(t, tw.Compare(expectedHelp))
}

func TestParseAddress(t *testing.T) {
	for _, s := range []string{"0x8000", "$8000", "8000h", "32768"} {
		a, err := modalflag.ParseAddress(s)
		test.ExpectSuccess(t, err, s)
		test.ExpectEquality(t, a, uint32(0x8000), s)
	}

	a, err := modalflag.ParseAddress("$7e2000")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, uint32(0x7e2000))

	for _, s := range []string{"", "$1000000", "0xzz", "-1"} {
		_, err := modalflag.ParseAddress(s)
		test.ExpectSuccess(t, curated.Is(err, modalflag.InvalidAddress), s)
	}
}

func TestAddressFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-origin", "$c000"})
	origin := md.AddAddress("origin", 0x100, "load address")
	entry := md.AddAddress("entry", 0x100, "entry point")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *origin, uint32(0xc000))
	test.ExpectEquality(t, *entry, uint32(0x100))

	md.NewArgs([]string{"-origin", "nowhere"})
	md.AddAddress("origin", 0, "load address")
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestOptionalBool(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-diag=false"})
	diag := md.AddOptionalBool("diag", "diagnostics")
	trace := md.AddOptionalBool("trace", "trace")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)

	v, set := diag.Get()
	test.ExpectSuccess(t, set)
	test.ExpectFailure(t, v)

	_, set = trace.Get()
	test.ExpectFailure(t, set)

	md.NewArgs([]string{"-trace"})
	trace = md.AddOptionalBool("trace", "trace")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	v, set = trace.Get()
	test.ExpectSuccess(t, set)
	test.ExpectSuccess(t, v)
}
