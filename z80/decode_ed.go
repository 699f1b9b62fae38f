package z80

// initEDOps populates the ED-prefixed page: the IN/OUT (C) and 16-bit
// ADC/SBC/LD groups for each register pair, the single-purpose
// instructions (NEG, RETN/RETI, IM, RRD/RLD, LD I,A/LD R,A/LD A,I/LD
// A,R) and the sixteen block-transfer/search/IO instructions. Anything
// not assigned here keeps the opUnimplemented default that this
// function seeds into every entry before filling in the defined ones.
func (c *CPU) initEDOps() {
	ops := &c.edOps
	for i := range ops {
		ops[i] = opUnimplemented
	}

	type pair struct {
		get func(*CPU) uint16
		set func(*CPU, uint16)
	}
	pairs := [4]pair{
		{getBC, setBC},
		{getDE, setDE},
		{getHL, setHL},
		{getSP, setSP},
	}

	for i, p := range pairs {
		p := p
		base := byte(0x40 + i<<4)
		ops[base+0x02] = func(c *CPU) { // SBC HL,rr
			c.SetHL(c.sbc16(c.HL(), p.get(c)))
			c.tick(15)
		}
		ops[base+0x0A] = func(c *CPU) { // ADC HL,rr
			c.SetHL(c.adc16(c.HL(), p.get(c)))
			c.tick(15)
		}
		ops[base+0x03] = func(c *CPU) { // LD (nn),rr
			addr := c.fetchWord()
			c.Memory.Write16(addr, p.get(c))
			c.tick(20)
		}
		ops[base+0x0B] = func(c *CPU) { // LD rr,(nn)
			addr := c.fetchWord()
			p.set(c, c.Memory.Read16(addr))
			c.tick(20)
		}
	}

	regCodes := []byte{0, 1, 2, 3, 4, 5, 7} // skip (HL)'s slot 6; unused on this page
	for _, code := range regCodes {
		code := code
		opcode := byte(0x40 + code<<3)
		ops[opcode] = func(c *CPU) { // IN r,(C)
			port := uint16(c.B)<<8 | uint16(c.C)
			value := c.in(port)
			c.writeReg8(code, value)
			c.updateInFlags(value)
			c.tick(12)
		}
		ops[opcode+1] = func(c *CPU) { // OUT (C),r
			port := uint16(c.B)<<8 | uint16(c.C)
			c.out(port, c.readReg8(code))
			c.tick(12)
		}
	}
	ops[0x70] = func(c *CPU) { // undocumented IN (C): flags only
		port := uint16(c.B)<<8 | uint16(c.C)
		c.updateInFlags(c.in(port))
		c.tick(12)
	}
	ops[0x71] = func(c *CPU) { // undocumented OUT (C),0
		port := uint16(c.B)<<8 | uint16(c.C)
		c.out(port, 0)
		c.tick(12)
	}

	for _, opcode := range []byte{0x44, 0x4C, 0x54, 0x5C, 0x64, 0x6C, 0x74, 0x7C} {
		ops[opcode] = func(c *CPU) { c.A = c.neg(); c.tick(8) }
	}
	for _, opcode := range []byte{0x45, 0x4D, 0x55, 0x5D, 0x65, 0x6D, 0x75, 0x7D} {
		ops[opcode] = func(c *CPU) {
			c.PC = c.popWord()
			c.IFF1 = c.IFF2
			c.tick(14)
		}
	}
	imTable := map[byte]byte{
		0x46: 0, 0x4E: 0, 0x66: 0, 0x6E: 0,
		0x56: 1, 0x76: 1,
		0x5E: 2, 0x7E: 2,
	}
	for opcode, mode := range imTable {
		mode := mode
		ops[opcode] = func(c *CPU) { c.IM = mode; c.tick(8) }
	}

	ops[0x47] = func(c *CPU) { c.I = c.A; c.tick(9) }
	ops[0x4F] = func(c *CPU) { c.R = c.A; c.tick(9) }
	ops[0x57] = func(c *CPU) { c.A = c.I; c.updateLDAIRFlags(); c.tick(9) }
	ops[0x5F] = func(c *CPU) { c.A = c.R; c.updateLDAIRFlags(); c.tick(9) }

	ops[0x67] = func(c *CPU) { // RRD
		addr := c.HL()
		mem := c.read(addr)
		newMem := (c.A << 4) | (mem >> 4)
		newA := (c.A & 0xF0) | (mem & 0x0F)
		c.write(addr, newMem)
		c.A = newA
		c.updateAParityFlagsPreserveCarry()
		c.tick(18)
	}
	ops[0x6F] = func(c *CPU) { // RLD
		addr := c.HL()
		mem := c.read(addr)
		newMem := (mem << 4) | (c.A & 0x0F)
		newA := (c.A & 0xF0) | (mem >> 4)
		c.write(addr, newMem)
		c.A = newA
		c.updateAParityFlagsPreserveCarry()
		c.tick(18)
	}

	ops[0xA0] = func(c *CPU) { c.blockLD(1) }
	ops[0xA8] = func(c *CPU) { c.blockLD(-1) }
	ops[0xB0] = func(c *CPU) { c.blockLDRepeat(1) }
	ops[0xB8] = func(c *CPU) { c.blockLDRepeat(-1) }

	ops[0xA1] = func(c *CPU) { c.blockCP(1) }
	ops[0xA9] = func(c *CPU) { c.blockCP(-1) }
	ops[0xB1] = func(c *CPU) { c.blockCPRepeat(1) }
	ops[0xB9] = func(c *CPU) { c.blockCPRepeat(-1) }

	ops[0xA2] = func(c *CPU) { c.blockIN(1) }
	ops[0xAA] = func(c *CPU) { c.blockIN(-1) }
	ops[0xB2] = func(c *CPU) { c.blockINRepeat(1) }
	ops[0xBA] = func(c *CPU) { c.blockINRepeat(-1) }

	ops[0xA3] = func(c *CPU) { c.blockOUT(1) }
	ops[0xAB] = func(c *CPU) { c.blockOUT(-1) }
	ops[0xB3] = func(c *CPU) { c.blockOUTRepeat(1) }
	ops[0xBB] = func(c *CPU) { c.blockOUTRepeat(-1) }
}

func (c *CPU) blockLD(step int) {
	hl, de, bc := c.HL(), c.DE(), c.BC()
	value := c.read(hl)
	c.write(de, value)
	c.SetHL(uint16(int32(hl) + int32(step)))
	c.SetDE(uint16(int32(de) + int32(step)))
	bc--
	c.SetBC(bc)
	c.updateLDIFlags(value, bc)
	c.tick(16)
}

func (c *CPU) blockLDRepeat(step int) {
	c.blockLD(step)
	if c.BC() != 0 {
		c.PC -= 2
		c.tick(5)
	}
}

func (c *CPU) blockCP(step int) {
	hl := c.HL()
	value := c.read(hl)
	a := c.A
	c.subA(value, 0, false)
	c.SetHL(uint16(int32(hl) + int32(step)))
	bc := c.BC() - 1
	c.SetBC(bc)
	half := a - value
	if c.Flag(FlagH) {
		half--
	}
	c.F &^= FlagX | FlagY
	c.F |= half & FlagY
	if half&0x02 != 0 {
		c.F |= FlagX
	}
	c.F &^= FlagPV
	if bc != 0 {
		c.F |= FlagPV
	}
	c.tick(16)
}

func (c *CPU) blockCPRepeat(step int) {
	c.blockCP(step)
	if c.BC() != 0 && !c.Flag(FlagZ) {
		c.PC -= 2
		c.tick(5)
	}
}

func (c *CPU) blockIN(step int) {
	port := uint16(c.B)<<8 | uint16(c.C)
	value := c.in(port)
	c.write(c.HL(), value)
	c.SetHL(uint16(int32(c.HL()) + int32(step)))
	c.B--
	c.updateBlockIOFlags()
	c.tick(16)
}

func (c *CPU) blockINRepeat(step int) {
	c.blockIN(step)
	if c.B != 0 {
		c.PC -= 2
		c.tick(5)
	}
}

func (c *CPU) blockOUT(step int) {
	port := uint16(c.B)<<8 | uint16(c.C)
	value := c.read(c.HL())
	c.out(port, value)
	c.SetHL(uint16(int32(c.HL()) + int32(step)))
	c.B--
	c.updateBlockIOFlags()
	c.tick(16)
}

func (c *CPU) blockOUTRepeat(step int) {
	c.blockOUT(step)
	if c.B != 0 {
		c.PC -= 2
		c.tick(5)
	}
}
