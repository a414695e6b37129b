// Command catalog-cli runs the catalog menu without the desktop UI, so it
// builds without cgo or OpenGL.
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
	"github.com/ytget/library-catalog/internal/locale"
)

func main() {
	opts, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "catalog-cli: %v\n", err)
		os.Exit(2)
	}

	if !opts.Verbose {
		log.SetOutput(io.Discard)
	}

	store := catalog.NewService()
	if opts.Seed {
		if err := catalog.Seed(store, catalog.DemoBooks()); err != nil {
			fmt.Fprintf(os.Stderr, "catalog-cli: %v\n", err)
			os.Exit(1)
		}
	}

	localization := locale.NewLocalization()
	localization.SetLanguage(opts.Language)

	if err := cli.NewRunner(store, os.Stdin, os.Stdout, localization).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "catalog-cli: %v\n", err)
		os.Exit(1)
	}
}
