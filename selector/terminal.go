// Modul: terminal.go
// Beschreibung: Terminal-Handling für das Auswahl-Menü.
// Raw-Mode-Erwerb mit garantierter Wiederherstellung und Zeilen-Löschung.

package selector

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// terminalState hält den ursprünglichen Terminal-Modus. Er gehört exklusiv
// der laufenden Auswahl-Session und wird genau einmal wiederhergestellt.
type terminalState struct {
	fd       int
	oldState *term.State
}

// enterRawMode schaltet stdin in den ungepufferten Raw-Mode und versteckt
// den Cursor. Ohne interaktives Terminal schlägt der Erwerb mit
// ErrNotATerminal fehl.
func enterRawMode() (*terminalState, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotATerminal
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	fmt.Fprint(os.Stderr, ansiHideCursor)
	return &terminalState{fd: fd, oldState: oldState}, nil
}

func (t *terminalState) restore() {
	fmt.Fprint(os.Stderr, ansiShowCursor)
	term.Restore(t.fd, t.oldState)
}

// clearLines löscht die zuletzt gezeichneten n Zeilen vor dem Neuzeichnen.
func clearLines(w io.Writer, n int) {
	if n > 0 {
		fmt.Fprintf(w, "\033[%dA", n)
		fmt.Fprint(w, ansiClearDown)
	}
}
