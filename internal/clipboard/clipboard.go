// Package clipboard copies text to the system clipboard via shell commands.
package clipboard

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"
)

// ErrClipboardUnavailable is returned when no clipboard command is found.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// candidates lists clipboard writers per OS, in preference order.
var candidates = map[string][][]string{
	"darwin":  {{"pbcopy"}},
	"linux":   {{"wl-copy"}, {"xclip", "-selection", "clipboard"}, {"xsel", "--clipboard", "--input"}},
	"windows": {{"clip"}},
}

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// command returns the argv of the first available clipboard writer for goos.
func command(goos string) ([]string, error) {
	for _, argv := range candidates[goos] {
		if _, err := lookPath(argv[0]); err == nil {
			return argv, nil
		}
	}
	return nil, ErrClipboardUnavailable
}

// IsAvailable reports whether a clipboard writer exists on this system.
func IsAvailable() bool {
	_, err := command(runtime.GOOS)
	return err == nil
}

// Copy writes text to the system clipboard.
// Returns ErrClipboardUnavailable if no clipboard command is installed.
func Copy(text string) error {
	argv, err := command(runtime.GOOS)
	if err != nil {
		return err
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}
