package main

import (
	"fmt"

	"github.com/gdamore/tcell"

	"github.com/dariovilla/gozed/z80"
)

// registerInfo mirrors the teacher's RegisterInfo grouping
// (general/flags/shadow/index/status) so the panel reads the same way
// a disassembler-adjacent debug view would.
type registerInfo struct {
	name  string
	value uint16
	width int
	group string
}

func registerSnapshot(cpu *z80.CPU) []registerInfo {
	return []registerInfo{
		{"A", uint16(cpu.A), 8, "general"},
		{"F", uint16(cpu.F), 8, "flags"},
		{"BC", cpu.BC(), 16, "general"},
		{"DE", cpu.DE(), 16, "general"},
		{"HL", cpu.HL(), 16, "general"},
		{"A'", uint16(cpu.A2), 8, "shadow"},
		{"F'", uint16(cpu.F2), 8, "shadow"},
		{"BC'", cpu.BC2(), 16, "shadow"},
		{"DE'", cpu.DE2(), 16, "shadow"},
		{"HL'", cpu.HL2(), 16, "shadow"},
		{"IX", cpu.IX, 16, "index"},
		{"IY", cpu.IY, 16, "index"},
		{"SP", cpu.SP, 16, "general"},
		{"PC", cpu.PC, 16, "general"},
		{"I", uint16(cpu.I), 8, "status"},
		{"R", uint16(cpu.R), 8, "status"},
		{"IM", uint16(cpu.IM), 8, "status"},
	}
}

// runMonitor drives a full-screen tcell view split into a register
// panel and a memory hex-dump panel whose first row is the 16-byte
// aligned address at or below PC, single-stepping
// the CPU on each keypress. Modeled on bartgrantham-fpemu's
// cpuBox/ramBox split-panel layout.
func runMonitor(cpu *z80.CPU) {
	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		logger.Fatalf("initializing screen: %v", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault)
	draw(screen, cpu)

	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return
			case tcell.KeyRune:
				if ev.Rune() == 'q' {
					return
				}
			}
			cpu.Step()
			draw(screen, cpu)
		case *tcell.EventResize:
			screen.Sync()
			draw(screen, cpu)
		}
	}
}

func draw(screen tcell.Screen, cpu *z80.CPU) {
	screen.Clear()
	drawBox(screen, 0, 0, 40, 20, "registers")
	drawRegisters(screen, 2, 1, cpu)
	drawBox(screen, 41, 0, 40, 20, "memory @ PC")
	drawMemory(screen, 43, 1, cpu)
	drawString(screen, 0, 21, "step: any key   quit: q/esc")
	screen.Show()
}

func drawRegisters(screen tcell.Screen, x, y int, cpu *z80.CPU) {
	row := y
	for _, r := range registerSnapshot(cpu) {
		format := "%-4s %02X     (%s)"
		if r.width == 16 {
			format = "%-4s %04X   (%s)"
		}
		drawString(screen, x, row, fmt.Sprintf(format, r.name, r.value, r.group))
		row++
	}
	drawString(screen, x, row+1, fmt.Sprintf("cycles: %d", cpu.Cycles()))
	if n := cpu.UndefinedCount(); n > 0 {
		drawString(screen, x, row+2, fmt.Sprintf("undefined ops: %d", n))
	}
}

func drawMemory(screen tcell.Screen, x, y int, cpu *z80.CPU) {
	base := cpu.PC &^ 0x0F
	for row := 0; row < 16; row++ {
		addr := base + uint16(row*8)
		line := fmt.Sprintf("%04X:", addr)
		for col := 0; col < 8; col++ {
			line += fmt.Sprintf(" %02X", cpu.Memory.Peek(addr+uint16(col)))
		}
		drawString(screen, x, y+row, line)
	}
}

func drawString(screen tcell.Screen, x, y int, s string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, r := range s {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func drawBox(screen tcell.Screen, x, y, w, h int, label string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	screen.SetContent(x, y, tcell.RuneULCorner, nil, style)
	screen.SetContent(x+w, y, tcell.RuneURCorner, nil, style)
	screen.SetContent(x, y+h, tcell.RuneLLCorner, nil, style)
	screen.SetContent(x+w, y+h, tcell.RuneLRCorner, nil, style)
	for col := x + 1; col < x+w; col++ {
		screen.SetContent(col, y, tcell.RuneHLine, nil, style)
		screen.SetContent(col, y+h, tcell.RuneHLine, nil, style)
	}
	for row := y + 1; row < y+h; row++ {
		screen.SetContent(x, row, tcell.RuneVLine, nil, style)
		screen.SetContent(x+w, row, tcell.RuneVLine, nil, style)
	}
	if label != "" {
		drawString(screen, x+2, y, " "+label+" ")
	}
}
