package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ytget/library-catalog/internal/catalog"
	"github.com/ytget/library-catalog/internal/cli"
	"github.com/ytget/library-catalog/internal/config"
	"github.com/ytget/library-catalog/internal/launcher"
	"github.com/ytget/library-catalog/internal/locale"
	"github.com/ytget/library-catalog/internal/platform"
	"github.com/ytget/library-catalog/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	opts, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "library-catalog: %v\n", err)
		os.Exit(2)
	}

	log.Printf("Library Catalog v%s starting (mode=%s)", version, opts.Mode)

	// Initialize the catalog
	store := catalog.NewService()
	if opts.Seed {
		if err := catalog.Seed(store, catalog.DemoBooks()); err != nil {
			log.Fatalf("failed to seed catalog: %v", err)
		}
	}

	localization := locale.NewLocalization()
	localization.SetLanguage(opts.Language)

	// Diagnostics would interleave with the menu on the terminal
	var cliFrontend launcher.Frontend = cli.NewRunner(store, os.Stdin, os.Stdout, localization)
	if !opts.Verbose {
		cliFrontend = launcher.WithLogOutput(cliFrontend, io.Discard)
	}

	l := launcher.New(
		ui.NewFrontend(store, opts.Language, version),
		cliFrontend,
		platform.HasDisplay,
		os.Stdout,
		localization.GetText(locale.KeyGUIUnavailable),
	)

	if err := l.Launch(opts.Mode); err != nil {
		log.Fatalf("library-catalog: %v", err)
	}
}
