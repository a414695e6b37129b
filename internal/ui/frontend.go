package ui

import (
	"fmt"
	"log"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/library-catalog/internal/catalog"
	"github.com/ytget/library-catalog/internal/config"
	"github.com/ytget/library-catalog/internal/launcher"
)

// Frontend runs the catalog form as a desktop application
type Frontend struct {
	catalog  catalog.Cataloger
	language string
	version  string
}

// NewFrontend creates the desktop frontend. An empty language uses the
// saved preference.
func NewFrontend(c catalog.Cataloger, language, version string) *Frontend {
	return &Frontend{
		catalog:  c,
		language: language,
		version:  version,
	}
}

// Name identifies the frontend in logs
func (f *Frontend) Name() string {
	return "gui"
}

// Run opens the main window and blocks until it is closed. It returns
// launcher.ErrGUIUnavailable when the window toolkit never started.
func (f *Frontend) Run() error {
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(NewCompactTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	NewRootUI(myWindow, f.catalog, config.NewSettings(myApp), f.language)

	log.Printf("%s v%s window ready", AppName, f.version)
	return runWindow(myApp, myWindow)
}

// runWindow shows the window and blocks in the event loop. The driver
// returns without running the loop when it fails to initialise, so a loop
// that never reported start means no GUI.
func runWindow(a fyne.App, w fyne.Window) error {
	var started atomic.Bool
	a.Lifecycle().SetOnStarted(func() {
		started.Store(true)
		log.Printf("Event loop started")
	})

	w.ShowAndRun()

	if !started.Load() {
		return fmt.Errorf("%w: window toolkit did not start", launcher.ErrGUIUnavailable)
	}
	return nil
}
