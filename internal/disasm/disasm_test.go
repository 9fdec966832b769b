package disasm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		word     uint16
		expected *chip8.Instruction
	}{
		{"CLS", 0x00E0, chip8.ClsInst},
		{"RET", 0x00EE, chip8.RetInst},
		{"JP addr", 0x1234, chip8.JpInst},
		{"CALL addr", 0x2345, chip8.CallInst},
		{"SE Vx, byte", 0x3142, chip8.SeInst},
		{"LD Vx, byte", 0x6234, chip8.LdInst},
		{"ADD Vx, byte", 0x7234, chip8.AddInst},
		{"ADD Vx, Vy", 0x8234, chip8.AddInst},
		{"LD I, addr", 0xA234, chip8.LdInst},
		{"JP V0, addr", 0xB234, chip8.JpInst},
		{"DRW", 0xD235, chip8.DrwInst},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins, ok := Decode(tt.word)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, ins)
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		word     uint16
		expected string
	}{
		{0x00E0, "cls"},
		{0x00EE, "ret"},
		{0x1234, "jp $234"},
		{0xB234, "jp V0, $234"},
		{0x2345, "call $345"},
		{0x6234, "ld V2, $34"},
		{0x8230, "ld V2, V3"},
		{0xA234, "ld I, $234"},
		{0x7234, "add V2, $34"},
		{0x8234, "add V2, V3"},
		{0xD235, "drw V2, V3, $5"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.word))
		})
	}
}

func TestControlFlow(t *testing.T) {
	assert.True(t, IsCall(0x2345))
	assert.False(t, IsCall(0x1345))

	assert.True(t, IsJump(0x1345))
	assert.False(t, IsJump(0xB345))
	assert.False(t, IsJump(0x2345))

	assert.True(t, IsReturn(0x00EE))
	assert.False(t, IsReturn(0x00E0))

	assert.True(t, IsSkip(0x3142))
	assert.False(t, IsSkip(0x6142))

	target, ok := BranchTarget(0x2345)
	assert.True(t, ok)
	assert.Equal(t, uint16(0x345), target)

	_, ok = BranchTarget(0x6345)
	assert.False(t, ok)
}

func TestWriteListing(t *testing.T) {
	rom := []byte{
		0x00, 0xE0, // cls
		0x22, 0x06, // call 0x206
		0x12, 0x02, // jp 0x202
		0x60, 0x01, // ld V0, $01
		0x00, 0xEE, // ret
		0xFF, // trailing byte
	}

	var buf bytes.Buffer
	assert.NoError(t, WriteListing(&buf, rom, 0x200))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 7)
	assert.Contains(t, lines[0], "instruction")
	assert.Contains(t, lines[1], "Start")
	assert.Contains(t, lines[1], "cls")
	assert.Contains(t, lines[2], "_label_0202")
	assert.Contains(t, lines[2], "call _sub_0206")
	assert.Contains(t, lines[3], "jp _label_0202")
	assert.Contains(t, lines[4], "_sub_0206")
	assert.Contains(t, lines[4], "ld V0, $01")
	assert.Contains(t, lines[5], "ret")
	assert.Contains(t, lines[6], ".byte $FF")
}

func TestWriteListingTargetOutsideROM(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WriteListing(&buf, []byte{0x13, 0x00}, 0x200))
	assert.Contains(t, buf.String(), "jp $300")
}

func TestWriteListingOddTarget(t *testing.T) {
	rom := []byte{
		0x12, 0x03, // jp 0x203
		0x60, 0x01, // ld V0, $01
	}

	var buf bytes.Buffer
	assert.NoError(t, WriteListing(&buf, rom, 0x200))
	assert.Contains(t, buf.String(), "jp $203")
	assert.False(t, strings.Contains(buf.String(), "_label_"))
}
