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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/gophercores/curated"
	"github.com/jetsetilly/gophercores/debugger"
	"github.com/jetsetilly/gophercores/debugger/terminal/easyterm"
	"github.com/jetsetilly/gophercores/hardware/cpu"
	"github.com/jetsetilly/gophercores/logger"
	"github.com/jetsetilly/gophercores/modalflag"
	"github.com/jetsetilly/gophercores/statsview"
	"github.com/jetsetilly/gophercores/version"
	"golang.org/x/term"
)

// exit values
const (
	exitOK        = 0
	exitArgs      = 10
	exitMode      = 20
	exitInterrupt = 30
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	// #ctrlc the first interrupt cancels the run and the summary is printed as
	// normal. a second interrupt ends the program immediately
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	go func() {
		<-intChan
		cancel()
		<-intChan
		fmt.Print("\r")
		os.Exit(exitInterrupt)
	}()

	exitVal := launch(ctx, os.Stdout, os.Args[1:])
	cancel()
	os.Exit(exitVal)
}

// launch parses the arguments and runs the selected mode. returns the value
// to use with os.Exit().
func launch(ctx context.Context, output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "STEP", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArgs
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md, output, false)

	case "STEP":
		err = run(ctx, md, output, true)

	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitMode
	}

	return exitOK
}

func run(ctx context.Context, md *modalflag.Modes, output io.Writer, interactive bool) error {
	md.NewMode()
	md.AdditionalHelp("the binary image is the only argument")

	arch := md.AddString("arch", "z80", fmt.Sprintf("cpu architecture: %v", cpu.Architectures))
	origin := md.AddAddress("origin", 0x0000, "load address of the image")
	entry := md.AddAddress("entry", 0x0000, "address of the first instruction (default origin)")
	reset := md.AddBool("reset", false, "start from the reset vector")
	steps := md.AddInt("steps", debugger.DefaultSteps, "step limit. negative for no limit")
	trace := md.AddBool("trace", false, "print every instruction")
	diag := md.AddOptionalBool("diag", fmt.Sprintf("log diagnostics (default from %s)", debugger.DiagnosticsEnv))
	useLogrus := md.AddBool("logrus", false, "log diagnostics with logrus")
	log := md.AddBool("log", false, "echo the central log")
	logTail := md.AddInt("logtail", 0, "number of central log entries to print after the summary")
	script := md.AddString("script", "", "lua script to run alongside the cpu")
	state := md.AddString("state", "", "write final state as JSON to file (- for stdout)")
	memviz := md.AddString("memviz", "", "write final state as graphviz dot to file (- for stdout)")
	stats := md.AddBool("statsview", false, "run the runtime statistics server")
	breaks := md.AddString("break", "", "breakpoints separated by semi-colons. eg. \"PC=$0100 & HL=0; $0200\"")
	trapList := md.AddString("trap", "", "registers to trap separated by commas")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf("binary image required for %s mode", md)
	}

	cfg := debugger.Config{
		Filename: md.GetArg(0),
		Origin:   *origin,
		Reset:    *reset,
		Steps:    *steps,
		Trace:    *trace,
		Logrus:   *useLogrus,
		Script:   *script,
		Output:   output,
	}

	cfg.Arch, err = cpu.ParseArch(*arch)
	if err != nil {
		return err
	}

	md.Visit(func(flag string) {
		if flag == "entry" {
			cfg.Entry = entry
		}
	})

	if *breaks != "" {
		cfg.Breakpoints = strings.Split(*breaks, ";")
	}
	if *trapList != "" {
		cfg.Traps = strings.Split(*trapList, ",")
	}

	if v, ok := diag.Get(); ok {
		cfg.Diagnostics = &v
	}

	if *log {
		logger.SetEcho(colorize(output), true)
		defer logger.SetEcho(nil, false)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(output)
		} else {
			fmt.Fprintf(output, "* statsview not available in this build\n")
		}
	}

	dbg, err := debugger.NewDebugger(cfg)
	if err != nil {
		return err
	}
	defer dbg.CleanUp()

	var summary debugger.Summary
	if interactive {
		var t easyterm.Terminal
		if err := t.Initialise(os.Stdin, os.Stdout); err != nil {
			return err
		}
		defer t.CleanUp()

		if !t.Interactive() {
			return curated.Errorf("%s mode requires a terminal", md)
		}

		summary, err = dbg.Interactive(ctx, &t)
	} else {
		summary, err = dbg.Run(ctx)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s\n", summary)

	if *logTail > 0 {
		logger.Tail(colorize(output), *logTail)
	}

	if *state != "" {
		err = writeTo(*state, output, dbg.WriteState)
		if err != nil {
			return err
		}
	}

	if *memviz != "" {
		err = writeTo(*memviz, output, func(w io.Writer) error {
			dbg.WriteMemviz(w)
			return nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// writeTo calls the write function with either a newly created file or with
// output if the filename is "-".
func writeTo(filename string, output io.Writer, write func(io.Writer) error) error {
	if filename == "-" {
		return write(output)
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	err = write(f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}

// colorize wraps output in a logger.Colorizer if output is a terminal.
func colorize(output io.Writer) io.Writer {
	if f, ok := output.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return logger.NewColorizer(output)
	}
	return output
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *revision {
		_, r, _ := version.Version()
		fmt.Fprintln(output, r)
		return nil
	}

	fmt.Fprintln(output, version.String())
	return nil
}
