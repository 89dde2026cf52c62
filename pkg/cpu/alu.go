package cpu

// The ALU primitives are pure with respect to their operands and incoming
// carry: each returns the 8 (or 16) bit result and the flag set that
// result implies. Handlers in exec.go are responsible for writing the
// result back into a register or memory and merging the returned flags
// into state.F.

// Add computes reg + val + cyIn (cyIn is 0 or 1) and the Z/S/P/CY/AC flags
// for that result.
func Add(reg, val uint8, cyIn uint8) (result uint8, f Flags) {
	wide := uint16(reg) + uint16(val) + uint16(cyIn)
	result = uint8(wide)
	f.SetCY(wide >= 0x100)
	f.SetAC((reg&0xF)+(val&0xF)+cyIn >= 0x10)
	f.SetZSP(result)
	return result, f
}

// Sub computes reg - val - cyIn via add(reg, ~val, 1-cyIn) with the carry
// bit inverted afterward, reproducing the 8080's borrow-as-carry
// semantics: SUB clears CY when there is no borrow, SBB treats the
// incoming CY as a borrow-in.
func Sub(reg, val uint8, cyIn uint8) (result uint8, f Flags) {
	result, f = Add(reg, ^val, 1-cyIn)
	f.SetCY(!f.CY())
	return result, f
}

// Inr computes reg+1. CY is not part of the returned flags; callers must
// preserve the caller's existing CY. AC is set when the low nibble
// overflowed to zero.
func Inr(reg uint8) (result uint8, f Flags) {
	result = reg + 1
	f.SetAC(result&0x0F == 0x00)
	f.SetZSP(result)
	return result, f
}

// Dcr computes reg-1. CY is not part of the returned flags. AC follows the
// rigorous "no borrow from bit 4" rule: AC is set unless the low nibble of
// reg was already zero before the decrement.
func Dcr(reg uint8) (result uint8, f Flags) {
	result = reg - 1
	f.SetAC(reg&0x0F != 0x00)
	f.SetZSP(result)
	return result, f
}

// And computes a & val. CY is always cleared. AC is set per the Intel
// manual's documented behavior for both ANA and ANI: the OR of bit 3 of
// the two operands before masking.
func And(a, val uint8) (result uint8, f Flags) {
	result = a & val
	f.SetAC((a|val)&0x08 != 0)
	f.SetZSP(result)
	return result, f
}

// Xor computes a ^ val. CY and AC are always cleared.
func Xor(a, val uint8) (result uint8, f Flags) {
	result = a ^ val
	f.SetZSP(result)
	return result, f
}

// Or computes a | val. CY and AC are always cleared.
func Or(a, val uint8) (result uint8, f Flags) {
	result = a | val
	f.SetZSP(result)
	return result, f
}

// Cmp compares a against val without modifying a. CY is set when a < val
// (unsigned); AC is always cleared, matching the widely cited behavior
// that distinguishes CMP from SUB on this implementation.
func Cmp(a, val uint8) Flags {
	result := a - val
	var f Flags
	f.SetCY(a < val)
	f.SetZSP(result)
	return f
}

// Dad adds pair into hl (both as 16-bit values) and returns the sum and
// the carry-out of bit 15. Z, S, P and AC are left untouched by DAD and so
// are not part of the returned Flags; callers merge only CY.
func Dad(hl, pair uint16) (result uint16, carryOut bool) {
	wide := uint32(hl) + uint32(pair)
	return uint16(wide), wide >= 0x10000
}

// Rlc rotates a left by one bit. The new CY is the old bit 7, which also
// becomes the new bit 0.
func Rlc(a uint8) (result uint8, cy bool) {
	cy = a&0x80 != 0
	result = a<<1 | a>>7
	return result, cy
}

// Rrc rotates a right by one bit. The new CY is the old bit 0, which also
// becomes the new bit 7.
func Rrc(a uint8) (result uint8, cy bool) {
	cy = a&0x01 != 0
	result = a>>1 | a<<7
	return result, cy
}

// Ral rotates a left through CY: the new bit 0 is the old CY, the new CY
// is the old bit 7.
func Ral(a uint8, cyIn bool) (result uint8, cyOut bool) {
	cyOut = a&0x80 != 0
	result = a << 1
	if cyIn {
		result |= 0x01
	}
	return result, cyOut
}

// Rar rotates a right through CY: the new bit 7 is the old CY, the new CY
// is the old bit 0.
func Rar(a uint8, cyIn bool) (result uint8, cyOut bool) {
	cyOut = a&0x01 != 0
	result = a >> 1
	if cyIn {
		result |= 0x80
	}
	return result, cyOut
}

// Daa applies the decimal-adjust algorithm to a given the incoming CY/AC,
// returning the adjusted value and the full flag set (Z, S, P reflect the
// final value; CY and AC reflect the two correction steps).
func Daa(a uint8, cyIn, acIn bool) (result uint8, f Flags) {
	result = a
	cy := cyIn
	ac := acIn

	if result&0x0F > 9 || ac {
		ac = (result&0x0F)+6 >= 0x10
		result += 6
	}
	if result>>4 > 9 || cy {
		cy = cy || uint16(result)+0x60 >= 0x100
		result += 0x60
	}

	f.SetCY(cy)
	f.SetAC(ac)
	f.SetZSP(result)
	return result, f
}
