package z80

// indexedCB executes the DD CB / FD CB page: a displacement byte
// followed by a CB-style opcode that always operates on (IX+d) or
// (IY+d), regardless of the z field. When z names a plain register
// (anything but the (HL) slot, 6), RES/SET/rotate additionally copy
// their result into that register — an undocumented but well-attested
// side effect of how the real decoder reuses the CB page's wiring.
// BIT never writes back and so ignores z entirely beyond flags.
func (c *CPU) indexedCB() {
	disp := int8(c.fetchByte())
	opcode := c.fetchOpcode()
	addr := uint16(int32(*c.indexRegister()) + int32(disp))

	group := opcode >> 6
	y := (opcode >> 3) & 0x07
	z := opcode & 0x07

	value := c.read(addr)

	switch group {
	case 0:
		res := c.rotateShift(y, value)
		c.write(addr, res)
		if z != 6 {
			c.writeReg8Plain(z, res)
		}
		c.tick(23)
	case 1:
		c.testBit(y, value)
		c.tick(20)
	case 2:
		res := value &^ (1 << y)
		c.write(addr, res)
		if z != 6 {
			c.writeReg8Plain(z, res)
		}
		c.tick(23)
	default:
		res := value | (1 << y)
		c.write(addr, res)
		if z != 6 {
			c.writeReg8Plain(z, res)
		}
		c.tick(23)
	}
}
