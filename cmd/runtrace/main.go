// runtrace loads an iNES (.nes) or raw PRG-ROM file, runs it on the 6502
// core, and writes one trace line per instruction to stdout (or the file
// named by -out). With -start_pc it overrides the reset vector, which is
// how nestest itself is driven (automation mode starts at $C000 rather
// than at the address in the ROM's reset vector at $FFFC).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/crumhollow/nes6502/cartridge"
	"github.com/crumhollow/nes6502/cartridge/ines"
	"github.com/crumhollow/nes6502/cpu6502"
	"github.com/crumhollow/nes6502/membus"
	"github.com/crumhollow/nes6502/trace"
)

var (
	startPC = flag.Int("start_pc", -1, "PC value to start execution at, overriding the reset vector. -1 uses the reset vector.")
	out     = flag.String("out", "", "file to write the trace to; empty means stdout")
	maxStep = flag.Int("max_instructions", 0, "stop after this many instructions; 0 means run until halted or faulted")
)

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("usage: %s [-start_pc <pc>] [-out <file>] <rom>", os.Args[0])
	}
	fn := flag.Args()[0]

	data, err := ioutil.ReadFile(fn)
	if err != nil {
		log.Fatalf("can't open %s: %v", fn, err)
	}

	var cart *cartridge.Cartridge
	if len(data) >= 4 && data[0] == 'N' && data[1] == 'E' && data[2] == 'S' && data[3] == 0x1A {
		cart, err = ines.Parse(data)
	} else {
		cart, err = cartridge.NewNROM(data, nil, cartridge.Horizontal)
	}
	if err != nil {
		log.Fatalf("can't load cartridge: %v", err)
	}

	bus := membus.New(cart)
	bus.PowerOn()
	c := cpu6502.New(bus)
	c.Reset()
	if *startPC >= 0 {
		c.PC = uint16(*startPC)
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("can't create %s: %v", *out, err)
		}
		defer f.Close()
		w = f
	}
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	count := 0
	err = c.RunWithCallback(func(c *cpu6502.CPU) {
		fmt.Fprintln(bw, trace.Line(c))
		count++
		if *maxStep > 0 && count >= *maxStep {
			c.Halted = true
		}
	})
	if err != nil {
		bw.Flush()
		if halt, ok := err.(cpu6502.ErrHalted); ok {
			log.Printf("halted: %v", halt)
			return
		}
		log.Fatalf("run stopped: %v", err)
	}
}
