// Modul: lookahead_unix.go
// Beschreibung: Escape-Sequenz-Lookahead für Unix-Systeme.
// Prüft per poll(2) mit kurzem Timeout ob nach einem ESC weitere Bytes anliegen.

//go:build unix

package selector

import (
	"os"

	"golang.org/x/sys/unix"
)

// escTimeoutMs begrenzt das Warten auf den Rest einer Escape-Sequenz.
const escTimeoutMs = 50

func escLookahead(f *os.File, buf []byte) int {
	fds := []unix.PollFd{{Fd: int32(f.Fd()), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, escTimeoutMs)
	if err != nil || n == 0 {
		return 0
	}
	rn, err := f.Read(buf)
	if err != nil {
		return 0
	}
	return rn
}
