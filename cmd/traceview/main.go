// traceview runs a ROM exactly like runtrace but additionally opens a
// small SDL window rendering the eight status-register bits as a strip
// of colored cells, live, so a human can watch flag activity without
// reading trace lines. It's a debugging aid, not a PPU; this core has no
// picture processing unit to render (see the Non-goals in the spec this
// module is built from).
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io/ioutil"
	"log"
	"os"

	"golang.org/x/image/colornames"

	"github.com/crumhollow/nes6502/cartridge"
	"github.com/crumhollow/nes6502/cartridge/ines"
	"github.com/crumhollow/nes6502/cpu6502"
	"github.com/crumhollow/nes6502/membus"
	"github.com/crumhollow/nes6502/trace"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	cartPath = flag.String("cart", "", "Path to the .nes (or raw PRG) file to run")
	scale    = flag.Int("scale", 24, "Pixel size of each of the 8 flag cells")
	startPC  = flag.Int("start_pc", -1, "PC value to start execution at, overriding the reset vector")
)

// bitColors lists each status bit's mask and name (drawFlags picks the
// set/clear color per cell), ordered N V U B D I Z C (bit 7 down to
// bit 0), matching how the flags appear left-to-right in the window.
var bitColors = []struct {
	mask uint8
	name string
}{
	{cpu6502.P_NEGATIVE, "N"},
	{cpu6502.P_OVERFLOW, "V"},
	{cpu6502.P_UNUSED, "U"},
	{cpu6502.P_BREAK, "B"},
	{cpu6502.P_DECIMAL, "D"},
	{cpu6502.P_INTERRUPT, "I"},
	{cpu6502.P_ZERO, "Z"},
	{cpu6502.P_CARRY, "C"},
}

func main() {
	flag.Parse()
	if *cartPath == "" {
		log.Fatalf("usage: %s -cart <rom> [-scale <n>] [-start_pc <pc>]", os.Args[0])
	}

	data, err := ioutil.ReadFile(*cartPath)
	if err != nil {
		log.Fatalf("can't open %s: %v", *cartPath, err)
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

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		log.Fatalf("can't init SDL: %v", err)
	}
	defer sdl.Quit()

	w := int32(len(bitColors) * *scale)
	h := int32(*scale)
	window, err := sdl.CreateWindow("flags", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, w, h, sdl.WINDOW_SHOWN)
	if err != nil {
		log.Fatalf("can't create window: %v", err)
	}
	defer window.Destroy()

	running := true
	err = c.RunWithCallback(func(c *cpu6502.CPU) {
		fmt.Println(trace.Line(c))
		if !running {
			c.Halted = true
			return
		}
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if _, ok := event.(*sdl.QuitEvent); ok {
				running = false
				c.Halted = true
				return
			}
		}
		drawFlags(window, c.P, *scale)
	})
	if err != nil && running {
		if halt, ok := err.(cpu6502.ErrHalted); ok {
			log.Printf("halted: %v", halt)
		} else {
			log.Fatalf("run stopped: %v", err)
		}
	}
}

func drawFlags(window *sdl.Window, p uint8, scale int) {
	surface, err := window.GetSurface()
	if err != nil {
		return
	}
	for i, bc := range bitColors {
		set := p&bc.mask != 0
		col := colornames.Firebrick
		if set {
			col = colornames.Limegreen
		}
		rect := sdl.Rect{X: int32(i * scale), Y: 0, W: int32(scale), H: int32(scale)}
		surface.FillRect(&rect, colorToUint32(surface.Format, col))
	}
	window.UpdateSurface()
}

func colorToUint32(format *sdl.PixelFormat, c color.RGBA) uint32 {
	return sdl.MapRGBA(format, c.R, c.G, c.B, c.A)
}
