package acceptance_test

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/creack/pty"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// terminal runs the binary on a pseudo-terminal and collects everything it prints.
type terminal struct {
	ptmx *os.File
	cmd  *exec.Cmd

	mu  sync.Mutex
	buf bytes.Buffer
}

func startTerminal(dir string, env []string, args ...string) *terminal {
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), env...)

	ptmx, err := pty.Start(cmd)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	_ = pty.Setsize(ptmx, &pty.Winsize{Rows: 40, Cols: 120})

	t := &terminal{ptmx: ptmx, cmd: cmd}
	go func() {
		chunk := make([]byte, 4096)
		for {
			n, err := ptmx.Read(chunk)
			if n > 0 {
				t.mu.Lock()
				t.buf.Write(chunk[:n])
				t.mu.Unlock()
			}
			if err != nil {
				return
			}
		}
	}()
	DeferCleanup(func() {
		ptmx.Close()
		if cmd.ProcessState == nil && cmd.Process != nil {
			_ = cmd.Process.Kill()
		}
	})
	return t
}

func (t *terminal) output() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.buf.String()
}

// answer waits for prompt to appear and then types line.
func (t *terminal) answer(prompt, line string) {
	EventuallyWithOffset(1, t.output, 10*time.Second, 50*time.Millisecond).Should(ContainSubstring(prompt))
	_, err := io.WriteString(t.ptmx, line+"\n")
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
}

func (t *terminal) wait() error {
	done := make(chan error, 1)
	go func() { done <- t.cmd.Wait() }()
	select {
	case err := <-done:
		return err
	case <-time.After(30 * time.Second):
		_ = t.cmd.Process.Kill()
		return <-done
	}
}

func projectDir() string {
	dir, err := os.MkdirTemp("", "tsr-acceptance-*")
	Expect(err).NotTo(HaveOccurred())
	DeferCleanup(func() { os.RemoveAll(dir) })
	return dir
}

// fakeManagerPath returns a PATH entry holding an executable named name that
// records its arguments in ./installed.
func fakeManagerPath(name string) string {
	bin := projectDir()
	script := "#!/bin/sh\necho \"" + name + " $*\" > installed\n"
	Expect(os.WriteFile(filepath.Join(bin, name), []byte(script), 0o755)).To(Succeed())
	return "PATH=" + bin + string(os.PathListSeparator) + os.Getenv("PATH")
}

var _ = Describe("interactive install", func() {
	var dir string

	BeforeEach(func() {
		dir = projectDir()
		Expect(os.WriteFile(filepath.Join(dir, ".eslintrc.js"),
			[]byte("module.exports = { ignorePatterns: ['dist'] }\n"), 0o644)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(dir, "tsr.yaml"),
			[]byte("packages:\n  - eslint\n  - prettier\n"), 0o644)).To(Succeed())
	})

	It("asks before installing and then for the package manager", func() {
		term := startTerminal(dir, []string{fakeManagerPath("yarn")}, "--init", "--no-color")

		term.answer("Do you want to install the required packages now? [y/N]: ", "y")
		term.answer("Choice [1-3]: ", "3")

		Expect(term.wait()).To(Succeed(), term.output())
		out := term.output()
		Expect(out).To(ContainSubstring("Choose a package manager to install dependencies:"))
		Expect(out).To(ContainSubstring("1) npm"))
		Expect(out).To(ContainSubstring("3) yarn"))
		Expect(out).To(ContainSubstring("run    yarn add -D eslint prettier"))

		installed, err := os.ReadFile(filepath.Join(dir, "installed"))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(installed)).To(Equal("yarn add -D eslint prettier\n"))
	})

	It("re-asks after an invalid choice", func() {
		term := startTerminal(dir, []string{fakeManagerPath("pnpm")}, "--init", "--no-color")

		term.answer("[y/N]: ", "yes")
		term.answer("Choice [1-3]: ", "bun")
		term.answer("please enter a number between 1 and 3", "pnpm")

		Expect(term.wait()).To(Succeed(), term.output())
		installed, err := os.ReadFile(filepath.Join(dir, "installed"))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(installed)).To(Equal("pnpm install -D eslint prettier\n"))
	})

	It("installs nothing when the answer is no", func() {
		term := startTerminal(dir, nil, "--init", "--no-color")

		term.answer("[y/N]: ", "")

		Expect(term.wait()).To(Succeed(), term.output())
		Expect(term.output()).NotTo(ContainSubstring("Choose a package manager"))
		_, err := os.Stat(filepath.Join(dir, "installed"))
		Expect(os.IsNotExist(err)).To(BeTrue())
		_, err = os.Stat(filepath.Join(dir, ".eslintrc.json"))
		Expect(err).NotTo(HaveOccurred())
	})

	It("skips the questions when the manager is configured and --yes is given", func() {
		term := startTerminal(dir, []string{fakeManagerPath("npm")}, "--init", "--no-color", "--yes", "--manager", "npm")

		Expect(term.wait()).To(Succeed(), term.output())
		Expect(term.output()).NotTo(ContainSubstring("[y/N]"))
		installed, err := os.ReadFile(filepath.Join(dir, "installed"))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(installed)).To(Equal("npm install -D eslint prettier\n"))
	})
})
