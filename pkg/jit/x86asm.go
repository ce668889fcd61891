package jit

// x86-64 register encoding
type Reg byte

const (
	RAX Reg = 0
	RCX Reg = 1
	RDX Reg = 2
	RBX Reg = 3
	RSP Reg = 4
	RBP Reg = 5
	RSI Reg = 6
	RDI Reg = 7
	R8  Reg = 8
	R9  Reg = 9
	R10 Reg = 10
	R11 Reg = 11
	R12 Reg = 12
	R13 Reg = 13
	R14 Reg = 14
	R15 Reg = 15
)

// Assembler emits x86-64 machine code into a growable buffer.
type Assembler struct {
	buf []byte
}

// NewAssembler creates an empty assembler.
func NewAssembler() *Assembler {
	return &Assembler{}
}

// Offset returns the current write position.
func (a *Assembler) Offset() int {
	return len(a.buf)
}

// Bytes returns the assembled code.
func (a *Assembler) Bytes() []byte {
	return a.buf
}

// emit appends bytes to the buffer
func (a *Assembler) emit(bytes ...byte) {
	a.buf = append(a.buf, bytes...)
}

// rex builds REX prefix: 0100WRXB
// W=1 for 64-bit operand size
// R=1 if reg field uses R8-R15
// X=1 if SIB index uses R8-R15
// B=1 if rm field uses R8-R15
func rex(w, r, x, b bool) byte {
	var prefix byte = 0x40
	if w {
		prefix |= 0x08
	}
	if r {
		prefix |= 0x04
	}
	if x {
		prefix |= 0x02
	}
	if b {
		prefix |= 0x01
	}
	return prefix
}

// rexW returns REX.W prefix for 64-bit operations
func rexW(reg, rm Reg) byte {
	return rex(true, reg >= 8, false, rm >= 8)
}

// modRM builds ModR/M byte: [mod:2][reg:3][rm:3]
// mod should be pre-shifted: 0xC0=register direct
func modRM(mod byte, reg, rm Reg) byte {
	return mod | ((byte(reg) & 7) << 3) | (byte(rm) & 7)
}

// MovRegReg: mov dst, src (64-bit)
func (a *Assembler) MovRegReg(dst, src Reg) {
	a.emit(rexW(src, dst), 0x89, modRM(0xC0, src, dst))
}

// MovRegImm32SignExt: mov reg, imm32 (sign-extended to 64-bit)
func (a *Assembler) MovRegImm32SignExt(reg Reg, imm int32) {
	// REX.W + C7 /0 + imm32
	a.emit(rex(true, false, false, reg >= 8), 0xC7, modRM(0xC0, 0, reg))
	a.emit(byte(imm), byte(imm>>8), byte(imm>>16), byte(imm>>24))
}

// XorRegReg: xor dst, src (64-bit)
func (a *Assembler) XorRegReg(dst, src Reg) {
	a.emit(rexW(src, dst), 0x31, modRM(0xC0, src, dst))
}

// IncReg: inc reg (64-bit)
func (a *Assembler) IncReg(reg Reg) {
	// REX.W + FF /0
	a.emit(rex(true, false, false, reg >= 8), 0xFF, modRM(0xC0, 0, reg))
}

// DecReg: dec reg (64-bit)
func (a *Assembler) DecReg(reg Reg) {
	// REX.W + FF /1
	a.emit(rex(true, false, false, reg >= 8), 0xFF, modRM(0xC0, 1, reg))
}

// IMulRegRegImm8: imul dst, src, imm8 (64-bit, sign-extended imm)
func (a *Assembler) IMulRegRegImm8(dst, src Reg, imm int8) {
	// REX.W + 6B /r ib
	a.emit(rexW(dst, src), 0x6B, modRM(0xC0, dst, src), byte(imm))
}

// Cqo: sign-extend RAX into RDX:RAX
func (a *Assembler) Cqo() {
	a.emit(0x48, 0x99)
}

// IDiv: signed divide RDX:RAX by reg, quotient to RAX, remainder to RDX
func (a *Assembler) IDiv(reg Reg) {
	// REX.W + F7 /7
	a.emit(rex(true, false, false, reg >= 8), 0xF7, modRM(0xC0, 7, reg))
}

// Ret: return to caller
func (a *Assembler) Ret() {
	a.emit(0xC3)
}
