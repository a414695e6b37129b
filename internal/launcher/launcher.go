// Package launcher selects the frontend that drives the catalog. The GUI is
// preferred when a display is available; the CLI is the fallback.
package launcher

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/ytget/library-catalog/internal/config"
)

// ErrGUIUnavailable is returned by a GUI frontend that cannot start
var ErrGUIUnavailable = errors.New("GUI not available")

// Frontend is a presentation layer over the catalog
type Frontend interface {
	Name() string
	Run() error
}

// Launcher runs one of two frontends
type Launcher struct {
	gui        Frontend
	cli        Frontend
	hasDisplay func() bool
	notice     io.Writer
	noticeText string
}

// New creates a launcher. noticeText is written to notice when auto mode
// falls back to the CLI.
func New(gui, cli Frontend, hasDisplay func() bool, notice io.Writer, noticeText string) *Launcher {
	return &Launcher{
		gui:        gui,
		cli:        cli,
		hasDisplay: hasDisplay,
		notice:     notice,
		noticeText: noticeText,
	}
}

// Launch runs the frontend for mode and blocks until it exits
func (l *Launcher) Launch(mode config.Mode) error {
	switch mode {
	case config.ModeGUI:
		return runSafely(l.gui)
	case config.ModeCLI:
		return l.cli.Run()
	case config.ModeAuto:
		return l.launchAuto()
	default:
		return fmt.Errorf("%w: %q", config.ErrInvalidMode, mode)
	}
}

func (l *Launcher) launchAuto() error {
	if !l.hasDisplay() {
		log.Printf("No display detected, skipping %s frontend", l.gui.Name())
		return l.fallback()
	}

	err := runSafely(l.gui)
	if errors.Is(err, ErrGUIUnavailable) {
		log.Printf("Frontend %s failed to start: %v", l.gui.Name(), err)
		return l.fallback()
	}
	return err
}

func (l *Launcher) fallback() error {
	fmt.Fprintln(l.notice, l.noticeText)
	log.Printf("Running %s frontend", l.cli.Name())
	return l.cli.Run()
}

// runSafely turns a panic during toolkit start-up into ErrGUIUnavailable
func runSafely(f Frontend) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s panicked: %v", ErrGUIUnavailable, f.Name(), r)
		}
	}()
	return f.Run()
}

// WithLogOutput wraps f so that the standard logger writes to w while f runs
func WithLogOutput(f Frontend, w io.Writer) Frontend {
	return &logOutputFrontend{Frontend: f, w: w}
}

type logOutputFrontend struct {
	Frontend
	w io.Writer
}

func (l *logOutputFrontend) Run() error {
	previous := log.Writer()
	log.SetOutput(l.w)
	defer log.SetOutput(previous)
	return l.Frontend.Run()
}
