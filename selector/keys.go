// Modul: keys.go
// Beschreibung: Key-Dekodierung für das Auswahl-Menü.
// Übersetzt rohe Terminal-Bytes (inkl. Escape-Sequenzen) in Kommandos.

package selector

import "io"

// keyReader dekodiert rohe Eingabe-Bytes zu logischen Kommandos.
// lookahead liest nach einem einzelnen ESC mit kurzem Timeout nach,
// um eine nackte Escape-Taste von einer zerteilten Sequenz zu unterscheiden.
type keyReader struct {
	r         io.Reader
	lookahead func(buf []byte) int
}

// next liest ein logisches Kommando. Im Raw-Mode liefert das Terminal
// Pfeiltasten-Sequenzen (ESC [ A / ESC [ B) normalerweise in einem Read.
// Unbekannte Bytes sind inert und ergeben cmdNone, niemals einen Fehler.
func (k *keyReader) next() (command, error) {
	buf := make([]byte, 3)
	n, err := k.r.Read(buf)
	if err != nil || n == 0 {
		return cmdNone, errInputClosed
	}

	if buf[0] == 27 {
		seq := buf[1:n]
		if len(seq) == 0 && k.lookahead != nil {
			ext := make([]byte, 2)
			if en := k.lookahead(ext); en > 0 {
				seq = ext[:en]
			}
		}
		return decodeEscape(seq), nil
	}

	switch buf[0] {
	case 13, 10:
		return cmdConfirm, nil
	case ' ':
		return cmdToggle, nil
	case 'q', 'Q', 3:
		return cmdQuit, nil
	// vi-Fallback für Terminals, die Escape-Sequenzen verstümmeln
	case 'j':
		return cmdDown, nil
	case 'k':
		return cmdUp, nil
	}

	return cmdNone, nil
}

// decodeEscape ordnet den Sequenz-Rest nach einem ESC einem Kommando zu.
// Eine leere Sequenz ist eine nackte Escape-Taste: das Menü hat keine
// eigenständige Escape-Aktion, also cmdNone.
func decodeEscape(seq []byte) command {
	if len(seq) >= 2 && seq[0] == '[' {
		switch seq[1] {
		case 'A':
			return cmdUp
		case 'B':
			return cmdDown
		}
	}
	return cmdNone
}
