package disasm

import (
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/log"
)

var _ vm.Tracer = (*Tracer)(nil)

// Tracer logs every executed instruction at debug level.
type Tracer struct {
	logger *log.Logger
}

// NewTracer returns a tracer that logs to the given logger.
func NewTracer(logger *log.Logger) *Tracer {
	return &Tracer{
		logger: logger,
	}
}

// Trace logs the instruction at the given address. The logged mnemonic is
// the instruction the interpreter executes for the word, which differs from
// the strict encoding for words it routes on partial bits.
func (t *Tracer) Trace(pc uint16, op vm.Opcode) {
	t.logger.Debug("Executing",
		log.Hex("pc", pc),
		log.Hex("opcode", uint16(op)),
		log.String("instruction", Format(executedWord(op))))
}

// executedWord maps an instruction word to the canonical encoding of the
// instruction the interpreter executes for it. Family 0 and E select on the
// low nibble only, 5xyn and 9xyn ignore the low nibble.
func executedWord(op vm.Opcode) uint16 {
	word := uint16(op)

	switch op.Family() {
	case 0x0:
		switch op.N() {
		case 0x0:
			return 0x00E0
		case 0xE:
			return 0x00EE
		}
	case 0x5, 0x9:
		return word &^ 0x000F
	case 0xE:
		switch op.N() {
		case 0xE:
			return word&0xFF00 | 0x009E
		case 0x1:
			return word&0xFF00 | 0x00A1
		}
	}
	return word
}
