package z80

import "testing"

func TestPushPopRoundTrips(t *testing.T) {
	cpu := newTestCPU(t)
	cpu.SP = 0x8000
	cpu.SetBC(0xCAFE)
	originalSP := cpu.SP

	cpu.pushWord(cpu.BC())
	cpu.SetBC(0x0000)
	cpu.SetBC(cpu.popWord())

	requireEqualU16(t, "BC", cpu.BC(), 0xCAFE)
	requireEqualU16(t, "SP", cpu.SP, originalSP)
}

func TestJRSignedDisplacement(t *testing.T) {
	// §8 invariant 8: JR 0xFE from address X+2 lands at X.
	cpu := newTestCPU(t)
	load(cpu, 0x0100, 0x18, 0xFE) // JR -2

	cpu.Step()

	requireEqualU16(t, "PC", cpu.PC, 0x0100)
}

// TestJPConditions exercises one JP cc,nn opcode per condition code,
// once taken and once not, covering §4.4's eight condition codes.
func TestJPConditions(t *testing.T) {
	cases := []struct {
		name    string
		opcode  byte
		setup   func(*CPU)
		taken   bool
	}{
		{"NZ taken", 0xC2, func(c *CPU) { c.SetFlag(FlagZ, false) }, true},
		{"NZ not taken", 0xC2, func(c *CPU) { c.SetFlag(FlagZ, true) }, false},
		{"Z taken", 0xCA, func(c *CPU) { c.SetFlag(FlagZ, true) }, true},
		{"Z not taken", 0xCA, func(c *CPU) { c.SetFlag(FlagZ, false) }, false},
		{"NC taken", 0xD2, func(c *CPU) { c.SetFlag(FlagC, false) }, true},
		{"NC not taken", 0xD2, func(c *CPU) { c.SetFlag(FlagC, true) }, false},
		{"C taken", 0xDA, func(c *CPU) { c.SetFlag(FlagC, true) }, true},
		{"C not taken", 0xDA, func(c *CPU) { c.SetFlag(FlagC, false) }, false},
		{"PO taken", 0xE2, func(c *CPU) { c.SetFlag(FlagPV, false) }, true},
		{"PO not taken", 0xE2, func(c *CPU) { c.SetFlag(FlagPV, true) }, false},
		{"PE taken", 0xEA, func(c *CPU) { c.SetFlag(FlagPV, true) }, true},
		{"PE not taken", 0xEA, func(c *CPU) { c.SetFlag(FlagPV, false) }, false},
		{"P taken", 0xF2, func(c *CPU) { c.SetFlag(FlagS, false) }, true},
		{"P not taken", 0xF2, func(c *CPU) { c.SetFlag(FlagS, true) }, false},
		{"M taken", 0xFA, func(c *CPU) { c.SetFlag(FlagS, true) }, true},
		{"M not taken", 0xFA, func(c *CPU) { c.SetFlag(FlagS, false) }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cpu := newTestCPU(t)
			tc.setup(cpu)
			load(cpu, 0x0000, tc.opcode, 0x34, 0x12)

			cycles := cpu.Step()

			if tc.taken {
				requireEqualU16(t, "PC", cpu.PC, 0x1234)
			} else {
				requireEqualU16(t, "PC", cpu.PC, 0x0003)
			}
			if cycles != 10 {
				t.Fatalf("cycles = %d, want 10", cycles)
			}
		})
	}
}

func TestCallConditions(t *testing.T) {
	cases := []struct {
		opcode byte
		setup  func(*CPU)
		taken  bool
	}{
		{0xC4, func(c *CPU) { c.SetFlag(FlagZ, false) }, true},
		{0xCC, func(c *CPU) { c.SetFlag(FlagZ, false) }, false},
		{0xD4, func(c *CPU) { c.SetFlag(FlagC, false) }, true},
		{0xDC, func(c *CPU) { c.SetFlag(FlagC, false) }, false},
	}
	for _, tc := range cases {
		cpu := newTestCPU(t)
		cpu.SP = 0x8000
		tc.setup(cpu)
		load(cpu, 0x0000, tc.opcode, 0x34, 0x12)

		cycles := cpu.Step()

		if tc.taken {
			requireEqualU16(t, "PC", cpu.PC, 0x1234)
			requireEqualU16(t, "SP", cpu.SP, 0x7FFE)
			requireEqualU16(t, "return addr", cpu.Memory.Read16(0x7FFE), 0x0003)
			if cycles != 17 {
				t.Fatalf("cycles = %d, want 17", cycles)
			}
		} else {
			requireEqualU16(t, "PC", cpu.PC, 0x0003)
			requireEqualU16(t, "SP", cpu.SP, 0x8000)
			if cycles != 10 {
				t.Fatalf("cycles = %d, want 10", cycles)
			}
		}
	}
}

func TestRetConditions(t *testing.T) {
	cases := []struct {
		opcode byte
		setup  func(*CPU)
		taken  bool
	}{
		{0xC0, func(c *CPU) { c.SetFlag(FlagZ, false) }, true},
		{0xC8, func(c *CPU) { c.SetFlag(FlagZ, false) }, false},
		{0xE0, func(c *CPU) { c.SetFlag(FlagPV, false) }, true},
		{0xE8, func(c *CPU) { c.SetFlag(FlagPV, false) }, false},
	}
	for _, tc := range cases {
		cpu := newTestCPU(t)
		cpu.SP = 0x8000
		cpu.Memory.Write16(0x8000, 0x1234)
		tc.setup(cpu)
		load(cpu, 0x0000, tc.opcode)

		cycles := cpu.Step()

		if tc.taken {
			requireEqualU16(t, "PC", cpu.PC, 0x1234)
			requireEqualU16(t, "SP", cpu.SP, 0x8002)
			if cycles != 11 {
				t.Fatalf("cycles = %d, want 11", cycles)
			}
		} else {
			requireEqualU16(t, "PC", cpu.PC, 0x0001)
			requireEqualU16(t, "SP", cpu.SP, 0x8000)
			if cycles != 5 {
				t.Fatalf("cycles = %d, want 5", cycles)
			}
		}
	}
}

func TestDJNZ(t *testing.T) {
	cpu := newTestCPU(t)
	cpu.B = 0x02
	load(cpu, 0x0000, 0x10, 0xFE) // DJNZ -2 (loop on self)

	cycles := cpu.Step()
	requireEqualU8(t, "B", cpu.B, 0x01)
	requireEqualU16(t, "PC", cpu.PC, 0x0000)
	if cycles != 13 {
		t.Fatalf("cycles = %d, want 13", cycles)
	}

	cycles = cpu.Step()
	requireEqualU8(t, "B", cpu.B, 0x00)
	requireEqualU16(t, "PC", cpu.PC, 0x0002)
	if cycles != 8 {
		t.Fatalf("cycles = %d, want 8", cycles)
	}
}

func TestExAFTwiceIsIdentity(t *testing.T) {
	cpu := newTestCPU(t)
	cpu.SetAF(0x1234)
	cpu.SetAF2(0x5678)

	cpu.ExAF()
	cpu.ExAF()

	requireEqualU16(t, "AF", cpu.AF(), 0x1234)
	requireEqualU16(t, "AF'", cpu.AF2(), 0x5678)
}

func TestExxTwiceIsIdentity(t *testing.T) {
	cpu := newTestCPU(t)
	cpu.SetBC(0x1111)
	cpu.SetDE(0x2222)
	cpu.SetHL(0x3333)
	cpu.SetBC2(0x4444)
	cpu.SetDE2(0x5555)
	cpu.SetHL2(0x6666)

	cpu.Exx()
	cpu.Exx()

	requireEqualU16(t, "BC", cpu.BC(), 0x1111)
	requireEqualU16(t, "DE", cpu.DE(), 0x2222)
	requireEqualU16(t, "HL", cpu.HL(), 0x3333)
}
