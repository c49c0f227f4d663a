// Modul: window.go
// Beschreibung: Sichtfenster-Berechnung für lange Listen.
// Hält den Cursor im sichtbaren Ausschnitt der Optionsliste.

package selector

// scrollTo berechnet den neuen Fenster-Anfang so dass
// start <= cursor < start+size gilt. Reine Funktion, idempotent;
// das Ergebnis ist auf [0, max(0, n-size)] geklemmt.
func scrollTo(cursor, start, size, n int) int {
	if size <= 0 {
		return 0
	}

	if cursor < start {
		start = cursor
	} else if cursor >= start+size {
		start = cursor - size + 1
	}

	maxStart := n - size
	if maxStart < 0 {
		maxStart = 0
	}
	if start > maxStart {
		start = maxStart
	}
	if start < 0 {
		start = 0
	}

	return start
}
