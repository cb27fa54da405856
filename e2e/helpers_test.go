package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// tempDir creates a project directory that is removed after the test.
func tempDir() string {
	dir, err := os.MkdirTemp("", "tsr-test-*")
	Expect(err).NotTo(HaveOccurred())
	DeferCleanup(func() { os.RemoveAll(dir) })
	return dir
}

// tsrEnv runs the binary in dir with extra environment and returns stdout+stderr.
// Stdin is never a terminal here, so the install step is skipped unless --yes
// is given.
func tsrEnv(dir string, env []string, args ...string) (string, error) {
	cmd := exec.Command(binaryPath, append(args, "--no-color")...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), env...)
	out, err := cmd.CombinedOutput()
	return strings.TrimSpace(string(out)), err
}

// tsr runs the binary in dir and returns stdout+stderr.
func tsr(dir string, args ...string) (string, error) {
	return tsrEnv(dir, nil, args...)
}

// tsrOK runs the binary and expects success.
func tsrOK(dir string, args ...string) string {
	out, err := tsr(dir, args...)
	ExpectWithOffset(1, err).NotTo(HaveOccurred(), "eslint-config-tsr %s failed: %s", strings.Join(args, " "), out)
	return out
}

// writeFile creates a file with the given content, creating parent dirs as needed.
func writeFile(dir, name, content string) {
	p := filepath.Join(dir, name)
	err := os.MkdirAll(filepath.Dir(p), 0o755)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	err = os.WriteFile(p, []byte(content), 0o644)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
}

// readFile reads a file and returns its content.
func readFile(dir, name string) string {
	data, err := os.ReadFile(filepath.Join(dir, name))
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	return string(data)
}

// fileExists checks if a file exists in the given directory.
func fileExists(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}

// listDir returns the sorted names in dir.
func listDir(dir string) []string {
	entries, err := os.ReadDir(dir)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// fakeManager writes an executable named name into a fresh bin directory that
// records its arguments in ./installed, and returns a PATH entry for it.
func fakeManager(name string) string {
	bin := tempDir()
	script := "#!/bin/sh\necho \"" + name + " $*\" > installed\necho \"fake " + name + " done\"\n"
	err := os.WriteFile(filepath.Join(bin, name), []byte(script), 0o755)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	return pathWith(bin)
}

// formatterTemplate is the exact .prettierrc.json the binary writes.
const formatterTemplate = `{
  "arrowParens": "always",
  "endOfLine": "lf",
  "htmlWhitespaceSensitivity": "ignore",
  "jsxSingleQuote": false,
  "plugins": ["prettier-plugin-sort-json", "prettier-plugin-tailwindcss"],
  "printWidth": 120,
  "quoteProps": "consistent",
  "semi": false,
  "singleAttributePerLine": true,
  "singleQuote": true,
  "trailingComma": "all"
}`

// chmodExec marks dir/name executable.
func chmodExec(dir, name string) error {
	return os.Chmod(filepath.Join(dir, name), 0o755)
}

// pathWith returns a PATH assignment with bin first.
func pathWith(bin string) string {
	return "PATH=" + bin + string(os.PathListSeparator) + os.Getenv("PATH")
}
