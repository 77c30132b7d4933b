package aapt

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// DumpBadging finds `aapt2` beside the executable or on the PATH and
// runs DumpBadging against it. See Command.DumpBadging.
func DumpBadging(ctx context.Context, name string) (string, error) {
	c, err := Find()
	if err != nil {
		return "", err
	}

	return c.DumpBadging(ctx, name)
}

// Command represents the path to an `aapt2` executable.
type Command string

func (c Command) String() string {
	return string(c)
}

// Find locates an `aapt2` executable, preferring one sitting beside
// the running executable over one found on the PATH.
func Find() (Command, error) {
	if exe, err := os.Executable(); err == nil {
		candidates := []string{filepath.Join(filepath.Dir(exe), "aapt2")}
		if runtime.GOOS == "windows" {
			candidates = append(candidates, filepath.Join(filepath.Dir(exe), "aapt2.exe"))
		}

		for _, candidate := range candidates {
			if fi, err := os.Stat(candidate); err == nil && !fi.IsDir() {
				return Command(candidate), nil
			}
		}
	}

	path, err := exec.LookPath("aapt2")
	if err != nil {
		return "", fmt.Errorf("aapt2 not found beside the executable or on the PATH: %w", err)
	}

	return Command(path), nil
}

// DumpBadging executes `aapt2 dump badging` against the .apk at name
// and returns its stdout. aapt2 exits non-zero on manifests it only
// partially understands while still printing usable badging, so output
// is returned whenever there is any, and the error otherwise.
func (c Command) DumpBadging(ctx context.Context, name string) (string, error) {
	var (
		stdout = new(bytes.Buffer)
		stderr = new(bytes.Buffer)
		//nolint:gosec
		cmd = exec.CommandContext(ctx, c.String(), "dump", "badging", name)
	)

	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	if stdout.Len() > 0 {
		return stdout.String(), nil
	}

	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("aapt2 dump badging: %w: %s", err, msg)
		}

		return "", fmt.Errorf("aapt2 dump badging: %w", err)
	}

	return "", fmt.Errorf("aapt2 dump badging: no output")
}
