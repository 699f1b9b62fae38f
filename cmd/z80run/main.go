// Command z80run is a thin embedder exercising the z80 package end to
// end: it loads a raw binary image into memory, then either steps the
// CPU headlessly or drops into an interactive register/memory monitor.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dariovilla/gozed/internal/ioport"
	"github.com/dariovilla/gozed/z80"
)

var logger = log.New(os.Stderr, "z80run: ", log.LstdFlags)

func main() {
	var (
		loadPath string
		loadAddr uint
		startPC  int
		steps    uint
		monitor  bool
	)

	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&loadPath, "load", "", "path to a raw binary to load into memory")
	flagSet.UintVar(&loadAddr, "addr", 0, "load address")
	flagSet.IntVar(&startPC, "pc", -1, "starting PC (default: equal to -addr)")
	flagSet.UintVar(&steps, "steps", 0, "number of instructions to run (0 = run until HALT)")
	flagSet.BoolVar(&monitor, "monitor", false, "drop into the interactive register/memory monitor")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: z80run -load <file> [-addr 0x0000] [-pc 0x0000] [-steps N] [-monitor]")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	cpu, err := z80.New(65536)
	if err != nil {
		logger.Fatalf("constructing CPU: %v", err)
	}

	if loadPath != "" {
		data, err := os.ReadFile(loadPath)
		if err != nil {
			logger.Fatalf("reading %s: %v", loadPath, err)
		}
		cpu.Memory.Load(uint16(loadAddr), data)
		logger.Printf("loaded %d bytes from %s at 0x%04X", len(data), loadPath, loadAddr)
	}

	if startPC < 0 {
		cpu.PC = uint16(loadAddr)
	} else {
		cpu.PC = uint16(startPC)
	}

	latch := ioport.NewLatchDevice("monitor-latch")
	if err := cpu.Ports.RegisterDevice(0xFE, latch); err != nil {
		logger.Fatalf("registering example device: %v", err)
	}

	if monitor {
		runMonitor(cpu)
		return
	}

	runHeadless(cpu, steps)
}

// runHeadless steps the CPU either n times or, if n is zero, until it
// halts, then reports the final register file and cycle count.
func runHeadless(cpu *z80.CPU, n uint) {
	executed := uint(0)
	for {
		if n != 0 && executed >= n {
			break
		}
		cpu.Step()
		executed++
		if cpu.Halted && n == 0 {
			break
		}
	}

	logger.Printf("ran %d instructions, %d T-states", executed, cpu.Cycles())
	logger.Printf("AF=%04X BC=%04X DE=%04X HL=%04X IX=%04X IY=%04X SP=%04X PC=%04X",
		cpu.AF(), cpu.BC(), cpu.DE(), cpu.HL(), cpu.IX, cpu.IY, cpu.SP, cpu.PC)
	if n := cpu.UndefinedCount(); n > 0 {
		logger.Printf("warning: executed %d undefined opcodes", n)
	}
}
