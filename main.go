// main.go - Einstiegspunkt fuer flutter-pm
// Mappt Fehlerklassen auf Exit-Codes (2: nichts gewaehlt, 3: kein Terminal)
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/daslaller/flutter-packagemanager-setup/cmd"
	"github.com/daslaller/flutter-packagemanager-setup/selector"
)

func main() {
	err := cmd.NewCLI().ExecuteContext(context.Background())
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, "Error:", err)
	switch {
	case errors.Is(err, cmd.ErrNothingSelected):
		os.Exit(2)
	case errors.Is(err, selector.ErrNotATerminal):
		os.Exit(3)
	default:
		os.Exit(1)
	}
}
