package inifile

import (
	"fmt"
	"os"
	"syscall"
)

// fileLock holds an exclusive lock on a file's sibling .lock file. The lock
// file stays on disk; every saver locks the same inode.
type fileLock struct {
	file *os.File
}

// lock blocks until it holds the lock for path. Saves from other processes
// wait for release instead of interleaving their renames.
func lock(path string) (*fileLock, error) {
	lockPath := path + ".lock"
	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening lock file: %w", err)
	}
	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		f.Close()
		return nil, fmt.Errorf("locking %s: %w", path, err)
	}
	return &fileLock{file: f}, nil
}

// release unlocks and closes the lock file.
func (l *fileLock) release() {
	syscall.Flock(int(l.file.Fd()), syscall.LOCK_UN)
	l.file.Close()
}
