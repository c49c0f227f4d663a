// Modul: confirm.go
// Beschreibung: Einfache y/n-Bestätigung im Raw-Mode.

package selector

import (
	"fmt"
	"os"
)

// Confirm stellt eine y/n-Frage. Enter zählt als Ja, Escape und Ctrl+C
// als Nein.
func Confirm(prompt string) (bool, error) {
	ts, err := enterRawMode()
	if err != nil {
		return false, err
	}
	defer ts.restore()

	fmt.Fprintf(os.Stderr, "%s (%sy%s/n) ", prompt, ansiBold, ansiReset)

	buf := make([]byte, 1)
	for {
		if _, err := os.Stdin.Read(buf); err != nil {
			return false, err
		}

		switch buf[0] {
		case 'Y', 'y', 13:
			fmt.Fprintf(os.Stderr, "yes\r\n")
			return true, nil
		case 'N', 'n', 27, 3:
			fmt.Fprintf(os.Stderr, "no\r\n")
			return false, nil
		}
	}
}
