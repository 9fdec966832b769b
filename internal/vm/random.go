package vm

import (
	"math/rand"
	"time"
)

// RandomSource produces the bytes consumed by the RND instruction.
type RandomSource interface {
	Byte() uint8
}

type mathRandSource struct {
	rnd *rand.Rand
}

// NewRandomSource returns a uniformly distributed random source.
// A seed of 0 seeds the generator from the current time.
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &mathRandSource{
		rnd: rand.New(rand.NewSource(seed)), //nolint:gosec // not used for security
	}
}

func (s *mathRandSource) Byte() uint8 {
	return uint8(s.rnd.Intn(256))
}

// ScriptedSource returns a fixed sequence of bytes, starting over once the
// sequence is exhausted. It returns 0 if the sequence is empty.
type ScriptedSource struct {
	values []uint8
	next   int
}

// NewScriptedSource returns a random source that replays the given values.
func NewScriptedSource(values ...uint8) *ScriptedSource {
	return &ScriptedSource{values: values}
}

// Byte returns the next scripted value.
func (s *ScriptedSource) Byte() uint8 {
	if len(s.values) == 0 {
		return 0
	}
	value := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return value
}
