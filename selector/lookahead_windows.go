// Modul: lookahead_windows.go
// Beschreibung: Escape-Sequenz-Lookahead für Windows.
// Die Console liefert VT-Sequenzen in einem Read; j/k deckt den Rest ab.

//go:build windows

package selector

import "os"

func escLookahead(_ *os.File, _ []byte) int {
	return 0
}
