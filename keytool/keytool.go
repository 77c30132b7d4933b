package keytool

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// SHA256CertFingerprints finds `keytool` on the PATH and runs
// SHA256CertFingerprints against it. See Command.SHA256CertFingerprints.
func SHA256CertFingerprints(ctx context.Context, name string) (string, error) {
	path, err := exec.LookPath("keytool")
	if err != nil {
		return "", fmt.Errorf("keytool not found on the PATH: %w", err)
	}

	return Command(path).SHA256CertFingerprints(ctx, name)
}

// Command represents the path to a `keytool` executable.
type Command string

func (c Command) String() string {
	return string(c)
}

// SHA256CertFingerprints runs `keytool -printcert -jarfile` against
// the .apk at name and scrapes the SHA256 fingerprint of its signing
// certificate out of the output.
func (c Command) SHA256CertFingerprints(ctx context.Context, name string) (string, error) {
	var (
		buf = new(bytes.Buffer)
		//nolint:gosec
		cmd = exec.CommandContext(ctx, c.String(), "-printcert", "-jarfile", name)
	)

	cmd.Stdout = buf

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("keytool -printcert: %w", err)
	}

	scanner := bufio.NewScanner(buf)
	for scanner.Scan() {
		if line := scanner.Text(); strings.Contains(line, "SHA256: ") {
			if fields := strings.Fields(line); len(fields) >= 2 {
				return fields[1], nil
			}
		}
	}

	return "", fmt.Errorf("sha256 cert fingerprints not found")
}
