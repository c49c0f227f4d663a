// Modul: state.go
// Beschreibung: Auswahl-Zustand des Menüs.
// Verwaltet Cursor, Selektion und Modus; wendet Kommandos an und meldet
// ob die Session beendet ist.

package selector

import "slices"

type state struct {
	count     int
	mode      Mode
	cursor    int
	selected  map[int]bool
	cancelled bool
}

func newState(count int, mode Mode) *state {
	return &state{
		count:    count,
		mode:     mode,
		selected: make(map[int]bool),
	}
}

// apply wendet ein Kommando auf den Zustand an. done meldet den Übergang
// in einen Endzustand. Cursor-Bewegungen werden auf [0, count-1] geklemmt,
// kein Wraparound.
func (s *state) apply(cmd command) (done bool) {
	switch cmd {
	case cmdUp:
		if s.cursor > 0 {
			s.cursor--
		}
	case cmdDown:
		if s.cursor < s.count-1 {
			s.cursor++
		}
	case cmdToggle:
		// Im Single-Modus wählt Space und bestätigt zugleich
		if s.mode == Single {
			clear(s.selected)
			s.selected[s.cursor] = true
			return true
		}
		if s.selected[s.cursor] {
			delete(s.selected, s.cursor)
		} else {
			s.selected[s.cursor] = true
		}
	case cmdConfirm:
		// Enter im Single-Modus entspricht der Wahl des markierten Eintrags
		if s.mode == Single {
			clear(s.selected)
			s.selected[s.cursor] = true
		}
		return true
	case cmdQuit:
		clear(s.selected)
		s.cancelled = true
		return true
	}

	return false
}

// result baut das Session-Ergebnis: Indizes aufsteigend, eindeutig.
func (s *state) result() Result {
	r := Result{Cancelled: s.cancelled}
	for idx := range s.selected {
		r.Indices = append(r.Indices, idx)
	}
	slices.Sort(r.Indices)
	return r
}
