package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// ErrLocked is returned when another process holds the data file lock.
var ErrLocked = errors.New("data file is locked by another process")

// Lock is an exclusive advisory lock on a data file.
type Lock struct {
	file *os.File
}

// AcquireLock locks path without blocking. The lock lives in a separate
// path+".lock" file so the data file itself can be replaced atomically.
func AcquireLock(path string) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), dirPerms); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	file, err := os.OpenFile(path+".lock", os.O_CREATE|os.O_RDWR, filePerms) //nolint:gosec // path comes from config
	if err != nil {
		return nil, fmt.Errorf("opening lock file: %w", err)
	}

	err = unix.Flock(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB)
	if errors.Is(err, unix.EWOULDBLOCK) {
		_ = file.Close()

		return nil, ErrLocked
	}

	if err != nil {
		_ = file.Close()

		return nil, fmt.Errorf("locking data file: %w", err)
	}

	return &Lock{file: file}, nil
}

// Release drops the lock. It is safe to call more than once.
func (l *Lock) Release() {
	if l == nil || l.file == nil {
		return
	}

	_ = unix.Flock(int(l.file.Fd()), unix.LOCK_UN)
	_ = l.file.Close()
	l.file = nil
}
