package launcher

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/library-catalog/internal/config"
)

type fakeFrontend struct {
	name  string
	err   error
	panic any
	runs  int
}

func (f *fakeFrontend) Name() string { return f.name }

func (f *fakeFrontend) Run() error {
	f.runs++
	if f.panic != nil {
		panic(f.panic)
	}
	return f.err
}

func display(present bool) func() bool {
	return func() bool { return present }
}

func TestLaunchAutoPrefersGUI(t *testing.T) {
	gui := &fakeFrontend{name: "gui"}
	cli := &fakeFrontend{name: "cli"}
	var notice bytes.Buffer

	err := New(gui, cli, display(true), &notice, "fallback").Launch(config.ModeAuto)

	assert.NoError(t, err)
	assert.Equal(t, 1, gui.runs)
	assert.Equal(t, 0, cli.runs)
	assert.Empty(t, notice.String())
}

func TestLaunchAutoWithoutDisplay(t *testing.T) {
	gui := &fakeFrontend{name: "gui"}
	cli := &fakeFrontend{name: "cli"}
	var notice bytes.Buffer

	err := New(gui, cli, display(false), &notice, "fallback").Launch(config.ModeAuto)

	assert.NoError(t, err)
	assert.Equal(t, 0, gui.runs)
	assert.Equal(t, 1, cli.runs)
	assert.Equal(t, "fallback\n", notice.String())
}

func TestLaunchAutoFallsBackWhenGUIUnavailable(t *testing.T) {
	tests := []struct {
		name string
		gui  *fakeFrontend
	}{
		{"error", &fakeFrontend{name: "gui", err: fmt.Errorf("%w: no driver", ErrGUIUnavailable)}},
		{"panic", &fakeFrontend{name: "gui", panic: "glfw init failed"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli := &fakeFrontend{name: "cli"}
			var notice bytes.Buffer

			err := New(tt.gui, cli, display(true), &notice, "fallback").Launch(config.ModeAuto)

			assert.NoError(t, err)
			assert.Equal(t, 1, tt.gui.runs)
			assert.Equal(t, 1, cli.runs)
			assert.Contains(t, notice.String(), "fallback")
		})
	}
}

func TestLaunchAutoKeepsOtherGUIErrors(t *testing.T) {
	boom := errors.New("boom")
	gui := &fakeFrontend{name: "gui", err: boom}
	cli := &fakeFrontend{name: "cli"}

	err := New(gui, cli, display(true), &bytes.Buffer{}, "fallback").Launch(config.ModeAuto)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, cli.runs)
}

func TestLaunchForcedModes(t *testing.T) {
	gui := &fakeFrontend{name: "gui"}
	cli := &fakeFrontend{name: "cli"}
	l := New(gui, cli, display(false), &bytes.Buffer{}, "fallback")

	assert.NoError(t, l.Launch(config.ModeCLI))
	assert.Equal(t, 0, gui.runs)
	assert.Equal(t, 1, cli.runs)

	// Forced GUI mode ignores display detection and never falls back
	gui.panic = "no display"
	err := l.Launch(config.ModeGUI)
	assert.ErrorIs(t, err, ErrGUIUnavailable)
	assert.Equal(t, 1, gui.runs)
	assert.Equal(t, 1, cli.runs)
}

func TestLaunchInvalidMode(t *testing.T) {
	l := New(&fakeFrontend{}, &fakeFrontend{}, display(true), &bytes.Buffer{}, "")

	assert.ErrorIs(t, l.Launch(config.Mode("tui")), config.ErrInvalidMode)
}

type loggingFrontend struct{}

func (loggingFrontend) Name() string { return "logging" }

func (loggingFrontend) Run() error {
	log.Printf("inside run")
	return nil
}

func TestWithLogOutput(t *testing.T) {
	previous := log.Writer()
	var captured bytes.Buffer

	f := WithLogOutput(loggingFrontend{}, &captured)

	assert.Equal(t, "logging", f.Name())
	assert.NoError(t, f.Run())
	assert.Contains(t, captured.String(), "inside run")
	assert.Equal(t, previous, log.Writer())
}
