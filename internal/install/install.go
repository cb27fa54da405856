package install

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Manager is a supported package manager.
type Manager string

const (
	NPM  Manager = "npm"
	PNPM Manager = "pnpm"
	Yarn Manager = "yarn"
)

// ErrUnknownManager is returned for a package manager name that is not supported.
var ErrUnknownManager = errors.New("unknown package manager")

// Managers returns the supported managers in prompt order.
func Managers() []Manager {
	return []Manager{NPM, PNPM, Yarn}
}

// ParseManager maps a name to a Manager, ignoring case and surrounding space.
func ParseManager(s string) (Manager, error) {
	name := Manager(strings.ToLower(strings.TrimSpace(s)))
	for _, m := range Managers() {
		if name == m {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w %q (want npm, pnpm or yarn)", ErrUnknownManager, s)
}

// Args returns the full command line that installs pkgs as dev dependencies.
func Args(m Manager, pkgs []string) []string {
	var args []string
	switch m {
	case Yarn:
		args = []string{string(m), "add", "-D"}
	default:
		args = []string{string(m), "install", "-D"}
	}
	return append(args, pkgs...)
}

// Run installs pkgs with m in dir, streaming the manager's output.
// The process is killed if ctx is cancelled.
func Run(ctx context.Context, dir string, m Manager, pkgs []string, stdout, stderr io.Writer) error {
	if _, err := ParseManager(string(m)); err != nil {
		return err
	}
	if len(pkgs) == 0 {
		return nil
	}
	args := Args(m, pkgs)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", m, err)
	}
	return nil
}
