// Modul: types.go
// Beschreibung: Typen, Konstanten und Basisstrukturen für das Auswahl-Menü.
// Enthält ANSI-Escape-Sequenzen, Kommando-Typen, Option und Result.

package selector

import "errors"

// ANSI escape sequences for terminal formatting.
const (
	ansiHideCursor = "\033[?25l"
	ansiShowCursor = "\033[?25h"
	ansiBold       = "\033[1m"
	ansiReset      = "\033[0m"
	ansiGray       = "\033[37m"
	ansiClearDown  = "\033[J"
)

// ErrNotATerminal wird zurückgegeben wenn stdin kein interaktives Terminal ist.
// Ohne Raw-Mode-Kontrolle kann das Menü nicht laufen.
var ErrNotATerminal = errors.New("stdin is not a terminal")

// ErrCancelled wird von den Convenience-Wrappern zurückgegeben wenn der
// Benutzer die Auswahl abbricht (q oder Ctrl+C).
var ErrCancelled = errors.New("cancelled")

// errInputClosed: Input-Stream wurde geschlossen (EOF). Der Controller
// behandelt das wie ein Quit, nicht als Fehler.
var errInputClosed = errors.New("input closed")

// Mode bestimmt das Auswahl-Verhalten des Menüs.
type Mode int

const (
	// Single: Space oder Enter wählt genau ein Element und beendet die Session.
	Single Mode = iota
	// Multi: Space toggelt, nur Enter bestätigt.
	Multi
)

// Option ist ein anzeigbarer Listeneintrag. Optionen haben keine Identität
// über ihren Index hinaus; Duplikate sind erlaubt.
type Option struct {
	Label       string
	Description string
}

// Result ist das einzige Ergebnis einer Auswahl-Session. Indices sind
// aufsteigend sortiert und eindeutig.
type Result struct {
	Indices   []int
	Cancelled bool
}

// command ist ein dekodiertes, plattformunabhängiges Eingabe-Kommando.
type command int

const (
	cmdNone command = iota
	cmdUp
	cmdDown
	cmdToggle
	cmdConfirm
	cmdQuit
)
