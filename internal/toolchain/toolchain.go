// Package toolchain drives an external C compiler over generated source and
// runs the resulting binary.
package toolchain

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"
)

const DefaultCC = "cc"

// Build writes src to a file next to out and compiles it with cc.
func Build(ctx context.Context, cc, src, out string) error {
	if cc == "" {
		cc = DefaultCC
	}

	srcPath := out + ".c"
	if err := os.WriteFile(srcPath, []byte(src), 0o644); err != nil {
		return errors.Wrap(err, "write generated source")
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, cc, srcPath, "-o", out)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "%s: %s", cc, bytes.TrimSpace(stderr.Bytes()))
	}

	return nil
}

// Run executes bin and returns what it wrote to stdout.
func Run(ctx context.Context, bin string) (string, error) {
	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, bin)
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		return stdout.String(), errors.Wrapf(err, "run %s", bin)
	}

	return stdout.String(), nil
}

// CompileAndRun builds src in a scratch directory, runs it and cleans up.
func CompileAndRun(ctx context.Context, cc, src string) (string, error) {
	dir, err := os.MkdirTemp("", "ssc")
	if err != nil {
		return "", errors.Wrap(err, "create build directory")
	}
	defer os.RemoveAll(dir)

	bin := filepath.Join(dir, "program")
	if err := Build(ctx, cc, src, bin); err != nil {
		return "", err
	}

	return Run(ctx, bin)
}
