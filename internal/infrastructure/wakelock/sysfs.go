package wakelock

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/bnema/waketrace/internal/domain/entity"
)

const (
	sysfsWakeLockPath   = "/sys/power/wake_lock"
	sysfsWakeUnlockPath = "/sys/power/wake_unlock"
)

// sysfsInhibitor uses the kernel wakelock interface (CONFIG_PM_WAKELOCKS),
// available on Android kernels and some embedded Linux systems. It only
// blocks autosleep; the display is not affected.
type sysfsInhibitor struct {
	fs afero.Fs
}

func newSysfsInhibitor(fs afero.Fs) (*sysfsInhibitor, error) {
	for _, path := range []string{sysfsWakeLockPath, sysfsWakeUnlockPath} {
		if _, err := fs.Stat(path); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", entity.ErrBackendUnavailable, path, err)
		}
	}
	return &sysfsInhibitor{fs: fs}, nil
}

func (s *sysfsInhibitor) inhibit(req inhibitRequest) (func() error, error) {
	if err := s.write(sysfsWakeLockPath, req.Name); err != nil {
		return nil, err
	}
	return func() error {
		return s.write(sysfsWakeUnlockPath, req.Name)
	}, nil
}

func (s *sysfsInhibitor) write(path, name string) error {
	f, err := s.fs.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := f.Write([]byte(name)); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func (s *sysfsInhibitor) close() error {
	return nil
}
