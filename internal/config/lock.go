package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/footprint-tools/twig/internal/log"
	"github.com/footprint-tools/twig/internal/paths"
)

// ErrLockTimeout is returned when another twig process holds the config
// lock for longer than the wait allows.
var ErrLockTimeout = errors.New("config: lock timeout")

// fileLock serializes read-modify-write cycles of the config file between
// processes. The lock is a sibling file created with O_EXCL that holds
// the owner's pid.
type fileLock struct {
	path  string
	wait  time.Duration
	stale time.Duration
	poll  time.Duration
}

var configLock = func() (*fileLock, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}
	return &fileLock{
		path:  configPath + ".lock",
		wait:  5 * time.Second,
		stale: 30 * time.Second,
		poll:  50 * time.Millisecond,
	}, nil
}

// WithLock runs fn while holding the config lock.
func WithLock(fn func() error) error {
	l, err := configLock()
	if err != nil {
		return err
	}
	return l.run(fn)
}

func (l *fileLock) run(fn func() error) error {
	f, err := l.acquire()
	if err != nil {
		return err
	}
	defer l.release(f)
	return fn()
}

// acquire polls until the lock file can be created. A lock older than
// stale is assumed abandoned by a crashed process and removed.
func (l *fileLock) acquire() (*os.File, error) {
	deadline := time.Now().Add(l.wait)
	for {
		if info, err := os.Stat(l.path); err == nil && time.Since(info.ModTime()) > l.stale {
			log.Warn("config: removing stale lock %s", l.path)
			_ = os.Remove(l.path)
		}

		f, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
		switch {
		case err == nil:
			_, _ = f.WriteString(strconv.Itoa(os.Getpid()))
			return f, nil
		case !errors.Is(err, os.ErrExist):
			return nil, fmt.Errorf("config: create lock: %w", err)
		case time.Now().After(deadline):
			return nil, ErrLockTimeout
		}
		time.Sleep(l.poll)
	}
}

func (l *fileLock) release(f *os.File) {
	_ = f.Close()
	if err := os.Remove(l.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn("config: release lock: %v", err)
	}
}
