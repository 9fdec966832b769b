package cli

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"prog", "-cycles", "100", "game.ch8"}

	opts, err := ParseFlags()
	assert.NoError(t, err)
	assert.Equal(t, "game.ch8", opts.Input)
	assert.Equal(t, uint64(100), opts.Cycles)
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "default flags",
			args: []string{"test.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "test.ch8"},
				Flags:      options.Flags{CycleDelay: options.DefaultCycleDelay},
			},
		},
		{
			name: "input flag",
			args: []string{"-i", "test.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "test.ch8"},
				Flags:      options.Flags{CycleDelay: options.DefaultCycleDelay},
			},
		},
		{
			name: "run flags",
			args: []string{"-delay", "16ms", "-cycles", "500", "-seed", "42", "-headless", "test.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "test.ch8"},
				Flags: options.Flags{
					CycleDelay: 16 * time.Millisecond,
					Cycles:     500,
					Seed:       42,
					Headless:   true,
				},
			},
		},
		{
			name: "trace implies debug",
			args: []string{"-trace", "-s", "chip8", "test.rom"},
			want: options.Program{
				Parameters: options.Parameters{Input: "test.rom", System: "chip8"},
				Flags: options.Flags{
					CycleDelay: options.DefaultCycleDelay,
					Trace:      true,
					Debug:      true,
				},
			},
		},
		{
			name: "disasm",
			args: []string{"-disasm", "-q", "test.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "test.ch8"},
				Flags: options.Flags{
					CycleDelay: options.DefaultCycleDelay,
					Disasm:     true,
					Quiet:      true,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgs("prog", tt.args)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseArgsErrors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		usage bool
	}{
		{"no ROM file", []string{}, true},
		{"unknown flag", []string{"-unknown", "test.ch8"}, true},
		{"flag after ROM file", []string{"test.ch8", "-headless"}, true},
		{"negative delay", []string{"-delay", "-1ms", "test.ch8"}, false},
		{"debug and quiet", []string{"-debug", "-q", "test.ch8"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseArgs("prog", tt.args)
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.usage, errors.As(err, &usageErr))
		})
	}
}
