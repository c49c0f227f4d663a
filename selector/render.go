// Modul: render.go
// Beschreibung: Rendering des Auswahl-Menüs.
// Zeichnet jeden Frame komplett neu (kein partielles Update) und gibt die
// Zeilenzahl für das anschließende Löschen zurück.

package selector

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
)

// render schreibt einen vollständigen Frame. Reine Funktion über
// (options, state, window); width > 0 kürzt lange Labels auf die
// Terminal-Breite.
func render(w io.Writer, prompt string, opts []Option, st *state, start, size, width int) int {
	fmt.Fprintf(w, "%s%s%s\r\n", ansiBold, prompt, ansiReset)
	lineCount := 1

	if start > 0 {
		fmt.Fprintf(w, "  %s... %d more above%s\r\n", ansiGray, start, ansiReset)
		lineCount++
	}

	end := start + size
	if end > len(opts) {
		end = len(opts)
	}

	for i := start; i < end; i++ {
		opt := opts[i]

		checkbox := "[ ]"
		if st.selected[i] {
			checkbox = "[x]"
		}

		label := opt.Label
		if width > 0 {
			label = runewidth.Truncate(label, width-8, "...")
		}

		if i == st.cursor {
			fmt.Fprintf(w, "  %s> %s %s%s", ansiBold, checkbox, label, ansiReset)
		} else {
			fmt.Fprintf(w, "    %s %s", checkbox, label)
		}
		if opt.Description != "" {
			desc := opt.Description
			if width > 0 {
				used := runewidth.StringWidth(label) + 8
				if avail := width - used - 3; avail > 3 {
					desc = runewidth.Truncate(desc, avail, "...")
				}
			}
			fmt.Fprintf(w, " %s- %s%s", ansiGray, desc, ansiReset)
		}
		fmt.Fprintf(w, "\r\n")
		lineCount++
	}

	if remaining := len(opts) - end; remaining > 0 {
		fmt.Fprintf(w, "  %s... %d more below%s\r\n", ansiGray, remaining, ansiReset)
		lineCount++
	}

	fmt.Fprintf(w, "\r\n")
	lineCount++

	if st.mode == Single {
		fmt.Fprintf(w, "  %s%s\r\n", currentLabel(opts, st.cursor), ansiReset)
		fmt.Fprintf(w, "  %s↑↓ navigate  Enter select  q cancel%s\r\n", ansiGray, ansiReset)
	} else {
		fmt.Fprintf(w, "  %s%d selected%s\r\n", ansiBold, len(st.selected), ansiReset)
		fmt.Fprintf(w, "  %s↑↓ navigate  Space toggle  Enter confirm  q cancel%s\r\n", ansiGray, ansiReset)
	}
	lineCount += 2

	return lineCount
}

func currentLabel(opts []Option, cursor int) string {
	if cursor < 0 || cursor >= len(opts) {
		return ""
	}
	return opts[cursor].Label
}
