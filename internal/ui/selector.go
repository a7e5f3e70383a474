// Package ui holds the two interactive collaborators of the viewer: a fuzzy
// selector for picking catalog entries and a pager for the composed
// transcript. Both are narrow interfaces with an external-process
// implementation and a built-in bubbletea fallback.
package ui

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Selector presents candidate lines and returns the chosen one. An empty
// result means the user aborted the selection; that is a normal
// cancellation, not an error.
type Selector interface {
	Select(options []string, prompt string) (string, error)
}

// HaveFzf reports whether the external fzf binary is on PATH.
func HaveFzf() bool {
	_, err := exec.LookPath("fzf")
	return err == nil
}

// FzfHint returns per-platform install guidance for fzf.
func FzfHint() string {
	switch runtime.GOOS {
	case "linux":
		return "Install fzf using:\n" +
			"   sudo apt install fzf     # Ubuntu/Debian\n" +
			"   sudo dnf install fzf     # Fedora\n" +
			"   sudo pacman -S fzf       # Arch"
	case "darwin":
		return "Install fzf using:\n   brew install fzf"
	case "windows":
		return "Install fzf using:\n   choco install fzf\nor use Winget:\n   winget install fzf"
	default:
		return "Please install fzf manually from:\n   https://github.com/junegunn/fzf"
	}
}

// FzfSelector drives an external fzf process: candidates piped to stdin, the
// selected line read back from stdout. fzf draws its own UI on the tty.
type FzfSelector struct{}

func (FzfSelector) Select(options []string, prompt string) (string, error) {
	cmd := exec.Command("fzf", "--prompt", prompt)
	cmd.Stdin = strings.NewReader(strings.Join(options, "\n"))
	cmd.Stderr = os.Stderr

	out, err := cmd.Output()
	if err != nil {
		// fzf exits 1 on no match and 130 on ctrl-c/esc; both are aborts
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", nil
		}
		return "", fmt.Errorf("run fzf: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// NewSelector returns the fzf-backed selector when available, otherwise the
// built-in one.
func NewSelector() Selector {
	if HaveFzf() {
		return FzfSelector{}
	}
	return BuiltinSelector{}
}
