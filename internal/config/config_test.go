package config

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestCreateLogger(t *testing.T) {
	tests := []struct {
		name  string
		debug bool
		quiet bool
	}{
		{"default", false, false},
		{"debug", true, false},
		{"quiet", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, CreateLogger(tt.debug, tt.quiet))
		})
	}
}

func TestCreateRandomSource(t *testing.T) {
	opts := options.Program{Flags: options.Flags{Seed: 42}}

	first := CreateRandomSource(opts)
	second := CreateRandomSource(opts)
	for range 16 {
		assert.Equal(t, first.Byte(), second.Byte())
	}
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "dev", VersionString("dev", ""))
	assert.Equal(t, "1.0.0 (abc1234)", VersionString("1.0.0", "abc1234"))
	assert.Equal(t, "1.0.0 (abc1234)", VersionString("1.0.0", "abc1234def5678"))
}

func TestPrintBanner(t *testing.T) {
	logger := log.NewTestLogger(t)
	PrintBanner(logger, options.Program{}, "1.0.0", "abc1234def", "2026-01-01")
	PrintBanner(logger, options.Program{Flags: options.Flags{Quiet: true}}, "1.0.0", "", "")
}
