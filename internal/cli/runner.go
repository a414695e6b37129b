// Package cli implements the numbered text menu over the catalog.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/ytget/library-catalog/internal/catalog"
	"github.com/ytget/library-catalog/internal/locale"
	"github.com/ytget/library-catalog/internal/model"
)

// errEndOfInput stops the menu when input ends in the middle of an option
var errEndOfInput = errors.New("end of input")

// Menu options
const (
	OptionList     = "1"
	OptionAdd      = "2"
	OptionSearch   = "3"
	OptionCheckout = "4"
	OptionReturn   = "5"
	OptionExit     = "6"
)

// Runner reads menu choices and prints results
type Runner struct {
	catalog      catalog.Cataloger
	in           *bufio.Reader
	readErr      error
	out          io.Writer
	localization *locale.Localization
}

// NewRunner creates a CLI frontend reading from in and writing to out
func NewRunner(c catalog.Cataloger, in io.Reader, out io.Writer, localization *locale.Localization) *Runner {
	return &Runner{
		catalog:      c,
		in:           bufio.NewReader(in),
		out:          out,
		localization: localization,
	}
}

// Name identifies the frontend in logs
func (r *Runner) Name() string {
	return "cli"
}

// Run shows the menu until the user exits or input ends. Catalog errors are
// printed and never stop the loop.
func (r *Runner) Run() error {
	for {
		r.printMenu()

		choice, ok := r.prompt(locale.KeyChooseOption)
		if !ok {
			fmt.Fprintln(r.out)
			return r.readErr
		}

		choice = strings.TrimSpace(choice)
		if choice == OptionExit {
			return nil
		}

		err := r.handle(choice)
		if errors.Is(err, errEndOfInput) {
			fmt.Fprintln(r.out)
			return r.readErr
		}
		if err != nil {
			log.Printf("CLI option %s failed: %v", choice, err)
			fmt.Fprintf(r.out, "%s: %v\n", r.text(locale.KeyError), err)
		}
	}
}

func (r *Runner) printMenu() {
	fmt.Fprintln(r.out)
	for _, key := range []string{
		locale.KeyMenuHeader,
		locale.KeyMenuList,
		locale.KeyMenuAdd,
		locale.KeyMenuSearch,
		locale.KeyMenuCheckout,
		locale.KeyMenuReturn,
		locale.KeyMenuExit,
	} {
		fmt.Fprintln(r.out, r.text(key))
	}
}

// handle executes a single menu option
func (r *Runner) handle(choice string) error {
	switch choice {
	case OptionList:
		r.printBooks(r.catalog.List())

	case OptionAdd:
		id, err := r.promptID(locale.KeyPromptID)
		if err != nil {
			return err
		}
		title, author, err := r.promptPair(locale.KeyPromptTitle, locale.KeyPromptAuthor)
		if err != nil {
			return err
		}
		if err := r.catalog.Add(model.NewBook(id, title, author)); err != nil {
			return err
		}
		fmt.Fprintln(r.out, r.text(locale.KeyBookAdded))

	case OptionSearch:
		title, author, err := r.promptPair(locale.KeyPromptTitleOpt, locale.KeyPromptAuthorOpt)
		if err != nil {
			return err
		}
		r.printBooks(r.catalog.Search(title, author))

	case OptionCheckout:
		id, err := r.promptID(locale.KeyPromptBookID)
		if err != nil {
			return err
		}
		if err := r.catalog.Checkout(id); err != nil {
			return err
		}
		fmt.Fprintln(r.out, r.text(locale.KeyCheckedOut))

	case OptionReturn:
		id, err := r.promptID(locale.KeyPromptBookID)
		if err != nil {
			return err
		}
		if err := r.catalog.Return(id); err != nil {
			return err
		}
		fmt.Fprintln(r.out, r.text(locale.KeyReturned))

	default:
		fmt.Fprintln(r.out, r.text(locale.KeyUnknownOption))
	}

	return nil
}

func (r *Runner) printBooks(books []model.Book) {
	for _, book := range books {
		fmt.Fprintln(r.out, book)
	}
}

// prompt prints the localized prompt and reads one line of any length.
// ok is false at end of input; a read error other than EOF is kept for Run.
func (r *Runner) prompt(key string) (string, bool) {
	fmt.Fprint(r.out, r.text(key))

	line, err := r.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			r.readErr = err
		}
		if line == "" || r.readErr != nil {
			return "", false
		}
	}
	return strings.TrimRight(line, "\r\n"), true
}

func (r *Runner) promptPair(first, second string) (string, string, error) {
	a, ok := r.prompt(first)
	if !ok {
		return "", "", errEndOfInput
	}
	b, ok := r.prompt(second)
	if !ok {
		return "", "", errEndOfInput
	}
	return a, b, nil
}

func (r *Runner) promptID(key string) (int, error) {
	raw, ok := r.prompt(key)
	if !ok {
		return 0, errEndOfInput
	}
	return r.localization.ParseID(raw)
}

func (r *Runner) text(key string) string {
	return r.localization.GetText(key)
}
