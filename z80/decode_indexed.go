package z80

// initIndexedOps populates idxOps, the one table shared by both the DD
// and FD prefixes. Only opcodes whose base-page behavior references HL
// directly (rather than through readReg8/writeReg8, which already
// redirect H/L-coded operands to the live index register's halves) or
// whose operand is the (HL) memory slot need an entry here: the (HL)
// slot becomes (IX+d)/(IY+d), fetching a displacement byte immediately
// after the opcode. Every other opcode is left nil and falls back to
// the unprefixed handler plus 4 T-states, in enterIndexPrefix.
func (c *CPU) initIndexedOps() {
	ops := &c.idxOps

	ops[0x09] = func(c *CPU) { c.addIndexRR(getBC); c.tick(15) }
	ops[0x19] = func(c *CPU) { c.addIndexRR(getDE); c.tick(15) }
	ops[0x29] = func(c *CPU) { c.addIndexRR(func(c *CPU) uint16 { return *c.indexRegister() }); c.tick(15) }
	ops[0x39] = func(c *CPU) { c.addIndexRR(getSP); c.tick(15) }

	ops[0x21] = func(c *CPU) { *c.indexRegister() = c.fetchWord(); c.tick(14) }
	ops[0x22] = func(c *CPU) {
		addr := c.fetchWord()
		c.Memory.Write16(addr, *c.indexRegister())
		c.tick(20)
	}
	ops[0x23] = func(c *CPU) { *c.indexRegister()++; c.tick(10) }
	ops[0x2A] = func(c *CPU) {
		addr := c.fetchWord()
		*c.indexRegister() = c.Memory.Read16(addr)
		c.tick(20)
	}
	ops[0x2B] = func(c *CPU) { *c.indexRegister()--; c.tick(10) }

	ops[0x34] = func(c *CPU) {
		addr := c.indexedAddr()
		c.write(addr, c.inc8(c.read(addr)))
		c.tick(23)
	}
	ops[0x35] = func(c *CPU) {
		addr := c.indexedAddr()
		c.write(addr, c.dec8(c.read(addr)))
		c.tick(23)
	}
	ops[0x36] = func(c *CPU) {
		addr := c.indexedAddr()
		value := c.fetchByte()
		c.write(addr, value)
		c.tick(19)
	}

	ops[0xE1] = func(c *CPU) { *c.indexRegister() = c.popWord(); c.tick(14) }
	ops[0xE5] = func(c *CPU) { c.pushWord(*c.indexRegister()); c.tick(15) }
	ops[0xE3] = func(c *CPU) {
		addr := c.SP
		reg := c.indexRegister()
		low, high := c.read(addr), c.read(addr+1)
		spWord := uint16(high)<<8 | uint16(low)
		c.write(addr, byte(*reg))
		c.write(addr+1, byte(*reg>>8))
		*reg = spWord
		c.tick(23)
	}
	ops[0xE9] = func(c *CPU) { c.PC = *c.indexRegister(); c.tick(8) }
	ops[0xF9] = func(c *CPU) { c.SP = *c.indexRegister(); c.tick(10) }

	// LD r,(IX+d) / LD (IX+d),r for the seven plain-register slots, and
	// LD (IX+d),(IX+d) (opcode 0x76) which is simply HALT on real
	// hardware, left to the fallback path.
	for _, code := range []byte{0, 1, 2, 3, 4, 5, 7} {
		code := code
		ops[0x46+code<<3] = func(c *CPU) {
			addr := c.indexedAddr()
			c.writeReg8Plain(code, c.read(addr))
			c.tick(19)
		}
		ops[0x70+code] = func(c *CPU) {
			addr := c.indexedAddr()
			c.write(addr, c.readReg8Plain(code))
			c.tick(19)
		}
	}

	// ALU A,(IX+d).
	for op := byte(0); op < 8; op++ {
		op := aluOp(op)
		ops[0x86+byte(op)<<3] = func(c *CPU) {
			addr := c.indexedAddr()
			c.performALU(op, c.read(addr))
			c.tick(19)
		}
	}
}

// indexedAddr fetches the signed displacement byte following an
// indexed opcode and returns the effective address IX+d or IY+d.
func (c *CPU) indexedAddr() uint16 {
	disp := int8(c.fetchByte())
	return uint16(int32(*c.indexRegister()) + int32(disp))
}

func (c *CPU) addIndexRR(get func(*CPU) uint16) {
	reg := c.indexRegister()
	*reg = c.add16(*reg, get(c))
}

// enterIndexPrefix handles the DD/FD opcode byte: it activates the
// corresponding index register for the instruction that follows, then
// either dispatches to the DD CB/FD CB page, an idxOps override, or
// falls back to the unprefixed handler with an extra 4 T-states for
// opcodes the index pages do not redefine (the common case: most
// opcodes not touching HL run identically to their unprefixed form).
// A doubled prefix (DD DD, DD FD, ...) simply hands off to the second
// prefix's handling, matching the real CPU's one-prefix-wins behavior
// closely enough for this core's purposes.
func (c *CPU) enterIndexPrefix(mode prefixMode) {
	c.prefixMode = mode
	opcode := c.fetchOpcode()

	switch opcode {
	case 0xDD:
		c.tick(4)
		c.enterIndexPrefix(prefixDD)
		return
	case 0xFD:
		c.tick(4)
		c.enterIndexPrefix(prefixFD)
		return
	case 0xCB:
		c.indexedCB()
		c.prefixMode = prefixNone
		return
	}

	if handler := c.idxOps[opcode]; handler != nil {
		handler(c)
	} else {
		c.baseOps[opcode](c)
		c.tick(4)
	}
	c.prefixMode = prefixNone
}
