//go:build darwin

package wakelock

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/bnema/waketrace/internal/domain/entity"
)

// caffeinateInhibitor runs one caffeinate process per hold. The process is
// tied to ours with -w so it exits if we die without releasing.
type caffeinateInhibitor struct {
	path string
}

func newCaffeinateInhibitor(_ context.Context) (*caffeinateInhibitor, error) {
	path, err := exec.LookPath("caffeinate")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrBackendUnavailable, err)
	}
	return &caffeinateInhibitor{path: path}, nil
}

func (c *caffeinateInhibitor) inhibit(req inhibitRequest) (func() error, error) {
	args := []string{"-i", "-s"}
	if req.Flags.KeepsScreenOn() {
		args = append(args, "-d")
	}
	args = append(args, "-w", strconv.Itoa(os.Getpid()))

	cmd := exec.Command(c.path, args...)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start caffeinate: %w", err)
	}

	return func() error {
		if err := cmd.Process.Kill(); err != nil {
			return fmt.Errorf("stop caffeinate: %w", err)
		}
		_ = cmd.Wait()
		return nil
	}, nil
}

func (c *caffeinateInhibitor) close() error {
	return nil
}
