// Package translate renders user visible text through a locale aware printer.
package translate

import (
	"fmt"
	"io"
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("regmach: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Fprintln writes a translated line to w.
// A nil writer discards the line.
func Fprintln(w io.Writer, key message.Reference, args ...any) (err error) {
	if w == nil {
		return
	}

	_, err = fmt.Fprintln(w, printer.Sprintf(key, args...))
	return
}
