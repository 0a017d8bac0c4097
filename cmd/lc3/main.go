// Package main provides the entry point for the LC-3 instruction set
// simulator.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sarchlab/lc3sim/emu"
	"github.com/sarchlab/lc3sim/loader"
	"github.com/sarchlab/lc3sim/terminal"
)

// startAddress is the conventional LC-3 program entry point.
const startAddress = 0x3000

var verbose = flag.Bool("v", false, "verbose startup and shutdown diagnostics")

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprint(os.Stderr, "lc3 [image-file1] ...\n")
		os.Exit(2)
	}

	session, err := terminal.Enter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lc3: failed to configure terminal: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = session.Restore() }()

	// A single StdinKeyboard owns os.Stdin: KBSR polling and the blocking
	// GETC/IN traps both draw from its channel, so no keystroke is ever
	// read twice.
	keyboard := terminal.NewStdinKeyboard(os.Stdin)
	emulator := emu.NewEmulator(
		emu.WithKeyboardSource(keyboard),
		emu.WithStdin(keyboard),
	)

	for _, path := range flag.Args() {
		img, err := loader.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load image: %s\n", path)
			_ = session.Restore()
			os.Exit(1)
		}

		if err := emulator.LoadImage(img.Origin, img.Words); err != nil {
			fmt.Fprintf(os.Stderr, "failed to load image: %s\n", path)
			_ = session.Restore()
			os.Exit(1)
		}

		if *verbose {
			fmt.Printf("loaded %s at 0x%04X (%d words)\n", path, img.Origin, len(img.Words))
		}
	}

	emulator.SetPC(startAddress)

	exitCode := emulator.Run()

	if *verbose {
		fmt.Printf("instructions executed: %d\n", emulator.InstructionCount())
	}

	_ = session.Restore()
	os.Exit(exitCode)
}
