// Modul: prompt.go
// Beschreibung: Controller und öffentliche API des Auswahl-Menüs.
// Orchestriert den Lesen-Dekodieren-Anwenden-Zeichnen-Loop und liefert
// das Session-Ergebnis.

package selector

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/daslaller/flutter-packagemanager-setup/envconfig"
)

// Run zeigt das Menü und blockiert bis zu einem Endzustand. Eine leere
// Optionsliste liefert sofort ein leeres, nicht abgebrochenes Ergebnis,
// ohne das Terminal anzufassen. Abbruch (q, Ctrl+C, EOF) ist kein Fehler
// sondern Result{Cancelled: true}.
func Run(prompt string, opts []Option, mode Mode) (Result, error) {
	if len(opts) == 0 {
		return Result{}, nil
	}

	ts, err := enterRawMode()
	if err != nil {
		return Result{}, err
	}
	defer ts.restore()

	// Interrupt muss das Terminal wiederherstellen bevor der Prozess endet
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer func() {
		signal.Stop(sigChan)
		close(sigChan)
	}()
	go func() {
		if _, ok := <-sigChan; ok {
			ts.restore()
			os.Exit(130)
		}
	}()

	kr := &keyReader{
		r:         os.Stdin,
		lookahead: func(buf []byte) int { return escLookahead(os.Stdin, buf) },
	}

	size, width := displayArea(ts.fd, len(opts))
	res := runLoop(kr, os.Stderr, prompt, opts, mode, size, width)
	return res, nil
}

// runLoop ist der eigentliche Zustandsautomat: zeichnen, Kommando lesen,
// anwenden, Fenster nachführen, bis ein Endzustand erreicht ist. EOF auf
// dem Input wird wie Quit behandelt.
func runLoop(kr *keyReader, w io.Writer, prompt string, opts []Option, mode Mode, size, width int) Result {
	st := newState(len(opts), mode)
	start := 0
	var lastLineCount int

	for {
		clearLines(w, lastLineCount)
		lastLineCount = render(w, prompt, opts, st, start, size, width)

		cmd, err := kr.next()
		if err != nil {
			cmd = cmdQuit
		}

		if st.apply(cmd) {
			break
		}
		start = scrollTo(st.cursor, start, size, len(opts))
	}

	clearLines(w, lastLineCount)
	return st.result()
}

// displayArea leitet die Fenstergröße aus der Terminal-Höhe ab, gedeckelt
// durch FLUTTER_PM_MENU_HEIGHT (Default 10), mindestens 3 Zeilen.
func displayArea(fd, n int) (size, width int) {
	size = int(envconfig.MenuHeight())
	w, h, err := term.GetSize(fd)
	if err == nil {
		width = w
		// Kopfzeile, Indikatoren, Zusammenfassung und Hinweis brauchen Platz
		if avail := h - 6; avail > 0 && avail < size {
			size = avail
		}
	}
	if size < 3 {
		size = 3
	}
	if size > n {
		size = n
	}
	return size, width
}

// Select zeigt eine Einzelauswahl und gibt den gewählten Index zurück.
// Abbruch wird als ErrCancelled gemeldet.
func Select(prompt string, opts []Option) (int, error) {
	if len(opts) == 0 {
		return 0, fmt.Errorf("no items to select from")
	}

	res, err := Run(prompt, opts, Single)
	if err != nil {
		return 0, err
	}
	if res.Cancelled || len(res.Indices) == 0 {
		return 0, ErrCancelled
	}
	return res.Indices[0], nil
}

// MultiSelect zeigt eine Mehrfachauswahl und gibt die gewählten Indizes
// aufsteigend zurück. Bestätigen ohne Auswahl liefert eine leere Liste,
// Abbruch ErrCancelled.
func MultiSelect(prompt string, opts []Option) ([]int, error) {
	if len(opts) == 0 {
		return nil, fmt.Errorf("no items to select from")
	}

	res, err := Run(prompt, opts, Multi)
	if err != nil {
		return nil, err
	}
	if res.Cancelled {
		return nil, ErrCancelled
	}
	return res.Indices, nil
}
