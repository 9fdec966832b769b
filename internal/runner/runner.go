// Package runner orchestrates loading a ROM and driving the virtual machine.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/terminal"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/log"
)

// Renderer draws the framebuffer.
type Renderer interface {
	Render(screen *vm.Framebuffer) error
}

// KeySource returns the current keypad state and whether the user asked to quit.
type KeySource interface {
	Poll() (vm.Keypad, bool)
}

// Frontend is an interactive display with keyboard input.
type Frontend interface {
	Renderer
	KeySource
	Close() error
}

// FrontendConstructor creates the frontend for interactive runs.
type FrontendConstructor func(out io.Writer) (Frontend, error)

// Runner orchestrates the complete emulation workflow.
type Runner struct {
	logger      *log.Logger
	detector    *detector.Detector
	loader      *loader.Loader
	newFrontend FrontendConstructor
}

// New creates a new runner that uses the terminal frontend for interactive runs.
func New(logger *log.Logger) *Runner {
	return &Runner{
		logger:      logger,
		detector:    detector.New(logger),
		loader:      loader.New(),
		newFrontend: openTerminal,
	}
}

// WithFrontend replaces the frontend constructor used for interactive runs.
func (r *Runner) WithFrontend(constructor FrontendConstructor) *Runner {
	r.newFrontend = constructor
	return r
}

func openTerminal(out io.Writer) (Frontend, error) {
	t, err := terminal.Open(os.Stdin, out)
	if err != nil {
		return nil, fmt.Errorf("opening terminal: %w", err)
	}
	return t, nil
}

// Execute detects the system, loads the ROM and either prints a listing of
// it or runs it, depending on the options.
func (r *Runner) Execute(ctx context.Context, opts options.Program, out io.Writer) error {
	if _, err := r.detector.Detect(opts); err != nil {
		return fmt.Errorf("detecting system: %w", err)
	}

	rom, err := r.loader.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	return r.ExecuteWithROM(ctx, rom, opts, out)
}

// ExecuteWithROM runs the workflow with a ROM that is already in memory.
func (r *Runner) ExecuteWithROM(ctx context.Context, rom []byte, opts options.Program, out io.Writer) error {
	if opts.Disasm {
		if err := disasm.WriteListing(out, rom, vm.ProgramStart); err != nil {
			return fmt.Errorf("writing listing: %w", err)
		}
		return nil
	}

	machine, err := r.createMachine(rom, opts)
	if err != nil {
		return err
	}

	r.printInfo(opts, len(rom))

	if opts.Headless {
		return r.runHeadless(ctx, machine, opts, out)
	}
	return r.runInteractive(ctx, machine, opts, out)
}

// createMachine creates the virtual machine and loads the ROM into it.
func (r *Runner) createMachine(rom []byte, opts options.Program) (*vm.VM, error) {
	vmOpts := []vm.Option{
		vm.WithRandomSource(config.CreateRandomSource(opts)),
	}
	if opts.Trace {
		vmOpts = append(vmOpts, vm.WithTracer(disasm.NewTracer(r.logger)))
	}

	machine := vm.New(vmOpts...)
	if err := machine.LoadROM(rom); err != nil {
		return nil, fmt.Errorf("loading ROM into memory: %w", err)
	}
	return machine, nil
}

// runHeadless runs the machine without pacing and prints the final screen.
// A cancelled context still prints the screen reached so far.
func (r *Runner) runHeadless(ctx context.Context, machine *vm.VM, opts options.Program, out io.Writer) error {
	executed, err := machine.Run(ctx, opts.Cycles)
	r.logger.Debug("Execution stopped",
		log.Int("cycles", int(executed)),
		log.String("state", machine.String()))

	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("running ROM: %w", err)
	}

	if _, werr := io.WriteString(out, machine.Framebuffer().String()); werr != nil {
		return fmt.Errorf("writing screen: %w", werr)
	}
	return err
}

// runInteractive runs the machine paced by the cycle delay on the frontend.
func (r *Runner) runInteractive(ctx context.Context, machine *vm.VM, opts options.Program, out io.Writer) error {
	frontend, err := r.newFrontend(out)
	if err != nil {
		return err
	}
	defer func() {
		if err := frontend.Close(); err != nil {
			r.logger.Error("Closing frontend failed", log.Err(err))
		}
	}()

	if err := frontend.Render(machine.Framebuffer()); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	executed, err := r.loop(ctx, machine, opts, frontend)
	r.logger.Debug("Execution stopped",
		log.Int("cycles", int(executed)),
		log.String("state", machine.String()))
	return err
}

// loop executes cycles until the cycle limit is reached, the user quits, the
// context is done or the machine faults. The frontend is redrawn whenever the
// display changed.
func (r *Runner) loop(ctx context.Context, machine *vm.VM, opts options.Program, frontend Frontend) (uint64, error) {
	var tick <-chan time.Time
	if opts.CycleDelay > 0 {
		ticker := time.NewTicker(opts.CycleDelay)
		defer ticker.Stop()
		tick = ticker.C
	}

	var executed uint64
	for opts.Cycles == 0 || executed < opts.Cycles {
		keys, quit := frontend.Poll()
		if quit {
			return executed, nil
		}
		machine.SetKeys(keys)

		if err := machine.Cycle(); err != nil {
			return executed, fmt.Errorf("running ROM: %w", err)
		}
		executed++

		if machine.TakeDirty() {
			if err := frontend.Render(machine.Framebuffer()); err != nil {
				return executed, fmt.Errorf("rendering: %w", err)
			}
		}

		if err := wait(ctx, tick); err != nil {
			return executed, err
		}
	}
	return executed, nil
}

// wait blocks until the next tick. Without a ticker it only checks the context.
func wait(ctx context.Context, tick <-chan time.Time) error {
	if tick == nil {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("running ROM: %w", err)
		}
		return nil
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("running ROM: %w", ctx.Err())
	case <-tick:
		return nil
	}
}

// printInfo prints information about the ROM being processed.
func (r *Runner) printInfo(opts options.Program, size int) {
	if opts.Quiet {
		return
	}

	r.logger.Info("Running Chip-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", size),
		log.Int("cycles", int(opts.Cycles)),
		log.Stringer("delay", opts.CycleDelay),
	)
}
