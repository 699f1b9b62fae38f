package z80

// initBaseOps populates the unprefixed opcode table. Register-coded
// blocks (LD r,r', the ALU A,r block, INC/DEC r, PUSH/POP rr, RST) are
// built with loops over the 3-bit encodings rather than 64+8+... literal
// entries, matching the size of the real opcode map without repeating
// the same closure body by hand.
func (c *CPU) initBaseOps() {
	ops := &c.baseOps

	for i := range ops {
		ops[i] = opUnimplemented
	}

	ops[0x00] = func(c *CPU) { c.tick(4) }
	ops[0x01] = ldRR16Imm(setBC)
	ops[0x02] = func(c *CPU) { c.write(c.BC(), c.A); c.tick(7) }
	ops[0x03] = incRR16(getBC, setBC)
	ops[0x07] = func(c *CPU) {
		res, carry := rotateLeftCircular(c.A)
		c.A = res
		c.updateRotateFlags(carry)
		c.tick(4)
	}
	ops[0x08] = func(c *CPU) { c.ExAF(); c.tick(4) }
	ops[0x09] = addHLRR(getBC)
	ops[0x0A] = func(c *CPU) { c.A = c.read(c.BC()); c.tick(7) }
	ops[0x0B] = decRR16(getBC, setBC)
	ops[0x0F] = func(c *CPU) {
		res, carry := rotateRightCircular(c.A)
		c.A = res
		c.updateRotateFlags(carry)
		c.tick(4)
	}

	ops[0x10] = func(c *CPU) {
		c.B--
		disp := int8(c.fetchByte())
		c.tick(8)
		if c.B != 0 {
			c.PC = uint16(int32(c.PC) + int32(disp))
			c.tick(5)
		}
	}
	ops[0x11] = ldRR16Imm(setDE)
	ops[0x12] = func(c *CPU) { c.write(c.DE(), c.A); c.tick(7) }
	ops[0x13] = incRR16(getDE, setDE)
	ops[0x17] = func(c *CPU) {
		res, carry := c.rotateLeft(c.A, c.Flag(FlagC))
		c.A = res
		c.updateRotateFlags(carry)
		c.tick(4)
	}
	ops[0x18] = func(c *CPU) {
		disp := int8(c.fetchByte())
		c.PC = uint16(int32(c.PC) + int32(disp))
		c.tick(12)
	}
	ops[0x19] = addHLRR(getDE)
	ops[0x1A] = func(c *CPU) { c.A = c.read(c.DE()); c.tick(7) }
	ops[0x1B] = decRR16(getDE, setDE)
	ops[0x1F] = func(c *CPU) {
		res, carry := c.rotateRight(c.A, c.Flag(FlagC))
		c.A = res
		c.updateRotateFlags(carry)
		c.tick(4)
	}

	ops[0x20] = func(c *CPU) { c.jrCond(!c.Flag(FlagZ)) }
	ops[0x21] = ldRR16Imm(setHL)
	ops[0x22] = func(c *CPU) {
		addr := c.fetchWord()
		c.Memory.Write16(addr, c.HL())
		c.tick(16)
	}
	ops[0x23] = incRR16(getHL, setHL)
	ops[0x27] = func(c *CPU) { c.daa(); c.tick(4) }
	ops[0x28] = func(c *CPU) { c.jrCond(c.Flag(FlagZ)) }
	ops[0x29] = addHLRR(getHL)
	ops[0x2A] = func(c *CPU) {
		addr := c.fetchWord()
		c.SetHL(c.Memory.Read16(addr))
		c.tick(16)
	}
	ops[0x2B] = decRR16(getHL, setHL)
	ops[0x2F] = func(c *CPU) {
		c.A = ^c.A
		c.F |= FlagH | FlagN
		c.F = (c.F &^ (FlagX | FlagY)) | (c.A & (FlagX | FlagY))
		c.tick(4)
	}

	ops[0x30] = func(c *CPU) { c.jrCond(!c.Flag(FlagC)) }
	ops[0x31] = ldRR16Imm(setSP)
	ops[0x32] = func(c *CPU) {
		addr := c.fetchWord()
		c.write(addr, c.A)
		c.tick(13)
	}
	ops[0x33] = incRR16(getSP, setSP)
	ops[0x34] = func(c *CPU) {
		addr := c.HL()
		c.write(addr, c.inc8(c.read(addr)))
		c.tick(11)
	}
	ops[0x35] = func(c *CPU) {
		addr := c.HL()
		c.write(addr, c.dec8(c.read(addr)))
		c.tick(11)
	}
	ops[0x36] = func(c *CPU) {
		value := c.fetchByte()
		c.write(c.HL(), value)
		c.tick(10)
	}
	ops[0x37] = func(c *CPU) {
		c.F = (c.F & (FlagS | FlagZ | FlagPV)) | FlagC | (c.A & (FlagX | FlagY))
		c.tick(4)
	}
	ops[0x38] = func(c *CPU) { c.jrCond(c.Flag(FlagC)) }
	ops[0x39] = addHLRR(getSP)
	ops[0x3A] = func(c *CPU) {
		addr := c.fetchWord()
		c.A = c.read(addr)
		c.tick(13)
	}
	ops[0x3B] = decRR16(getSP, setSP)
	ops[0x3F] = func(c *CPU) {
		carry := c.Flag(FlagC)
		c.F = c.F & (FlagS | FlagZ | FlagPV)
		if carry {
			c.F |= FlagH
		} else {
			c.F |= FlagC
		}
		c.F |= c.A & (FlagX | FlagY)
		c.tick(4)
	}

	// INC r / DEC r / LD r,n for the seven plain registers (code 6 is
	// (HL), handled above individually; code 4/5 go through readReg8/
	// writeReg8 so they redirect under a live index prefix).
	for _, code := range []byte{0, 1, 2, 3, 4, 5, 7} {
		code := code
		ops[0x04+code<<3] = func(c *CPU) {
			c.writeReg8(code, c.inc8(c.readReg8(code)))
			c.tick(4)
		}
		ops[0x05+code<<3] = func(c *CPU) {
			c.writeReg8(code, c.dec8(c.readReg8(code)))
			c.tick(4)
		}
		ops[0x06+code<<3] = func(c *CPU) {
			c.writeReg8(code, c.fetchByte())
			c.tick(7)
		}
	}

	// LD r,r' block, 0x40-0x7F; 0x76 is HALT.
	for dst := byte(0); dst < 8; dst++ {
		for src := byte(0); src < 8; src++ {
			dst, src := dst, src
			opcode := 0x40 + dst<<3 + src
			if opcode == 0x76 {
				ops[opcode] = func(c *CPU) { c.Halted = true; c.tick(4) }
				continue
			}
			cycles := 4
			if dst == 6 || src == 6 {
				cycles = 7
			}
			ops[opcode] = func(c *CPU) {
				c.writeReg8(dst, c.readReg8(src))
				c.tick(cycles)
			}
		}
	}

	// ALU A,r block, 0x80-0xBF.
	for op := byte(0); op < 8; op++ {
		for src := byte(0); src < 8; src++ {
			op, src := aluOp(op), src
			opcode := 0x80 + byte(op)<<3 + src
			cycles := 4
			if src == 6 {
				cycles = 7
			}
			ops[opcode] = func(c *CPU) {
				c.performALU(op, c.readReg8(src))
				c.tick(cycles)
			}
		}
	}

	ops[0xC0] = func(c *CPU) { c.retCond(!c.Flag(FlagZ)) }
	ops[0xC1] = popRR16(setBC)
	ops[0xC2] = func(c *CPU) { c.jpCond(!c.Flag(FlagZ)) }
	ops[0xC3] = func(c *CPU) { c.jpCond(true) }
	ops[0xC4] = func(c *CPU) { c.callCond(!c.Flag(FlagZ)) }
	ops[0xC5] = pushRR16(getBC)
	ops[0xC6] = func(c *CPU) { c.performALU(aluAdd, c.fetchByte()); c.tick(7) }
	ops[0xC7] = func(c *CPU) { c.rst(0x00); c.tick(11) }
	ops[0xC8] = func(c *CPU) { c.retCond(c.Flag(FlagZ)) }
	ops[0xC9] = func(c *CPU) { c.PC = c.popWord(); c.tick(10) }
	ops[0xCA] = func(c *CPU) { c.jpCond(c.Flag(FlagZ)) }
	ops[0xCB] = func(c *CPU) {
		opcode := c.fetchOpcode()
		c.cbOps[opcode](c)
	}
	ops[0xCC] = func(c *CPU) { c.callCond(c.Flag(FlagZ)) }
	ops[0xCD] = func(c *CPU) {
		target := c.fetchWord()
		c.pushWord(c.PC)
		c.PC = target
		c.tick(17)
	}
	ops[0xCE] = func(c *CPU) { c.performALU(aluAdc, c.fetchByte()); c.tick(7) }
	ops[0xCF] = func(c *CPU) { c.rst(0x08); c.tick(11) }

	ops[0xD0] = func(c *CPU) { c.retCond(!c.Flag(FlagC)) }
	ops[0xD1] = popRR16(setDE)
	ops[0xD2] = func(c *CPU) { c.jpCond(!c.Flag(FlagC)) }
	ops[0xD3] = func(c *CPU) {
		port := uint16(c.fetchByte()) | uint16(c.A)<<8
		c.out(port, c.A)
		c.tick(11)
	}
	ops[0xD4] = func(c *CPU) { c.callCond(!c.Flag(FlagC)) }
	ops[0xD5] = pushRR16(getDE)
	ops[0xD6] = func(c *CPU) { c.performALU(aluSub, c.fetchByte()); c.tick(7) }
	ops[0xD7] = func(c *CPU) { c.rst(0x10); c.tick(11) }
	ops[0xD8] = func(c *CPU) { c.retCond(c.Flag(FlagC)) }
	ops[0xD9] = func(c *CPU) { c.Exx(); c.tick(4) }
	ops[0xDA] = func(c *CPU) { c.jpCond(c.Flag(FlagC)) }
	ops[0xDB] = func(c *CPU) {
		port := uint16(c.fetchByte()) | uint16(c.A)<<8
		c.A = c.in(port)
		c.tick(11)
	}
	ops[0xDC] = func(c *CPU) { c.callCond(c.Flag(FlagC)) }
	ops[0xDD] = func(c *CPU) { c.enterIndexPrefix(prefixDD) }
	ops[0xDE] = func(c *CPU) { c.performALU(aluSbc, c.fetchByte()); c.tick(7) }
	ops[0xDF] = func(c *CPU) { c.rst(0x18); c.tick(11) }

	ops[0xE0] = func(c *CPU) { c.retCond(!c.Flag(FlagPV)) }
	ops[0xE1] = popRR16(setHL)
	ops[0xE2] = func(c *CPU) { c.jpCond(!c.Flag(FlagPV)) }
	ops[0xE3] = func(c *CPU) {
		addr := c.SP
		low, high := c.read(addr), c.read(addr+1)
		spWord := uint16(high)<<8 | uint16(low)
		hl := c.HL()
		c.write(addr, byte(hl))
		c.write(addr+1, byte(hl>>8))
		c.SetHL(spWord)
		c.tick(19)
	}
	ops[0xE4] = func(c *CPU) { c.callCond(!c.Flag(FlagPV)) }
	ops[0xE5] = pushRR16(getHL)
	ops[0xE6] = func(c *CPU) { c.performALU(aluAnd, c.fetchByte()); c.tick(7) }
	ops[0xE7] = func(c *CPU) { c.rst(0x20); c.tick(11) }
	ops[0xE8] = func(c *CPU) { c.retCond(c.Flag(FlagPV)) }
	ops[0xE9] = func(c *CPU) { c.PC = c.HL(); c.tick(4) }
	ops[0xEA] = func(c *CPU) { c.jpCond(c.Flag(FlagPV)) }
	ops[0xEB] = func(c *CPU) {
		c.H, c.D = c.D, c.H
		c.L, c.E = c.E, c.L
		c.tick(4)
	}
	ops[0xEC] = func(c *CPU) { c.callCond(c.Flag(FlagPV)) }
	ops[0xED] = func(c *CPU) {
		opcode := c.fetchOpcode()
		c.edOps[opcode](c)
	}
	ops[0xEE] = func(c *CPU) { c.performALU(aluXor, c.fetchByte()); c.tick(7) }
	ops[0xEF] = func(c *CPU) { c.rst(0x28); c.tick(11) }

	ops[0xF0] = func(c *CPU) { c.retCond(!c.Flag(FlagS)) }
	ops[0xF1] = popRR16(setAF)
	ops[0xF2] = func(c *CPU) { c.jpCond(!c.Flag(FlagS)) }
	ops[0xF3] = func(c *CPU) { c.IFF1, c.IFF2 = false, false; c.tick(4) }
	ops[0xF4] = func(c *CPU) { c.callCond(!c.Flag(FlagS)) }
	ops[0xF5] = pushRR16(getAF)
	ops[0xF6] = func(c *CPU) { c.performALU(aluOr, c.fetchByte()); c.tick(7) }
	ops[0xF7] = func(c *CPU) { c.rst(0x30); c.tick(11) }
	ops[0xF8] = func(c *CPU) { c.retCond(c.Flag(FlagS)) }
	ops[0xF9] = func(c *CPU) { c.SP = c.HL(); c.tick(6) }
	ops[0xFA] = func(c *CPU) { c.jpCond(c.Flag(FlagS)) }
	ops[0xFB] = func(c *CPU) { c.IFF1, c.IFF2 = true, true; c.tick(4) }
	ops[0xFC] = func(c *CPU) { c.callCond(c.Flag(FlagS)) }
	ops[0xFD] = func(c *CPU) { c.enterIndexPrefix(prefixFD) }
	ops[0xFE] = func(c *CPU) { c.performALU(aluCp, c.fetchByte()); c.tick(7) }
	ops[0xFF] = func(c *CPU) { c.rst(0x38); c.tick(11) }
}

func opUnimplemented(c *CPU) {
	c.undefinedCount++
	c.tick(4)
}

// The following getter/setter pairs let incRR16/decRR16/addHLRR/
// pushRR16/popRR16/ldRR16Imm be written once and reused for each of the
// four 16-bit register-pair encodings instead of by hand four times
// over.
func getBC(c *CPU) uint16 { return c.BC() }
func setBC(c *CPU, v uint16) { c.SetBC(v) }
func getDE(c *CPU) uint16 { return c.DE() }
func setDE(c *CPU, v uint16) { c.SetDE(v) }
func getHL(c *CPU) uint16 { return c.HL() }
func setHL(c *CPU, v uint16) { c.SetHL(v) }
func getSP(c *CPU) uint16 { return c.SP }
func setSP(c *CPU, v uint16) { c.SP = v }
func getAF(c *CPU) uint16 { return c.AF() }
func setAF(c *CPU, v uint16) { c.SetAF(v) }

func ldRR16Imm(set func(*CPU, uint16)) func(*CPU) {
	return func(c *CPU) {
		set(c, c.fetchWord())
		c.tick(10)
	}
}

func incRR16(get func(*CPU) uint16, set func(*CPU, uint16)) func(*CPU) {
	return func(c *CPU) {
		set(c, get(c)+1)
		c.tick(6)
	}
}

func decRR16(get func(*CPU) uint16, set func(*CPU, uint16)) func(*CPU) {
	return func(c *CPU) {
		set(c, get(c)-1)
		c.tick(6)
	}
}

func addHLRR(get func(*CPU) uint16) func(*CPU) {
	return func(c *CPU) {
		c.SetHL(c.add16(c.HL(), get(c)))
		c.tick(11)
	}
}

func pushRR16(get func(*CPU) uint16) func(*CPU) {
	return func(c *CPU) {
		c.pushWord(get(c))
		c.tick(11)
	}
}

func popRR16(set func(*CPU, uint16)) func(*CPU) {
	return func(c *CPU) {
		set(c, c.popWord())
		c.tick(10)
	}
}
