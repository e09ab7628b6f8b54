package cart

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	carterrors "github.com/provide-io/sharecart/pkg/cart/errors"
)

const (
	lockPollInterval = 100 * time.Millisecond
	// A lock without a readable PID is only stale once it is this old; a
	// holder may still be writing its PID.
	lockWriteGrace = time.Second
)

// processLock is a PID lock file guarding a cart against other processes.
type processLock struct {
	path    string
	timeout time.Duration
	logger  hclog.Logger
}

// removeStale deletes the lock file when its owner is gone. It reports
// whether the lock is still held by a live process.
func (l *processLock) removeStale() bool {
	info, err := os.Stat(l.path)
	if err != nil {
		return false
	}
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false
		}
		if time.Since(info.ModTime()) < lockWriteGrace {
			return true
		}
		l.logger.Info("🧹 Removing unreadable cart lock", "path", l.path)
		l.removeIfUnchanged(info, nil)
		return false
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		if time.Since(info.ModTime()) < lockWriteGrace {
			return true
		}
		l.logger.Info("🧹 Removing invalid cart lock (couldn't parse PID)", "path", l.path)
		l.removeIfUnchanged(info, data)
		return false
	}
	if !IsProcessRunning(pid) {
		l.logger.Info("🧹 Removing stale cart lock from dead process", "pid", pid)
		l.removeIfUnchanged(info, data)
		return false
	}
	l.logger.Trace("🔒 Cart lock held by active process", "pid", pid)
	return true
}

// removeIfUnchanged deletes the lock only if it is still the file that was
// judged stale. Another waiter may have cleaned it up and taken a fresh lock
// in between. A nil data skips the content comparison.
func (l *processLock) removeIfUnchanged(seen os.FileInfo, data []byte) bool {
	current, err := os.Stat(l.path)
	if err != nil || !os.SameFile(seen, current) {
		l.logger.Debug("🔒 Cart lock replaced before cleanup", "path", l.path)
		return false
	}
	if data != nil {
		again, err := os.ReadFile(l.path)
		if err != nil || !bytes.Equal(again, data) {
			l.logger.Debug("🔒 Cart lock rewritten before cleanup", "path", l.path)
			return false
		}
	}
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		l.logger.Debug("⚠️ Failed to remove stale cart lock", "error", err)
		return false
	}
	return true
}

// tryAcquire makes a single attempt at creating the lock file.
func (l *processLock) tryAcquire() (bool, error) {
	if l.removeStale() {
		return false, nil
	}

	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return false, nil
		}
		return false, err
	}
	defer file.Close()

	if _, err := fmt.Fprintf(file, "%d\n", os.Getpid()); err != nil {
		_ = os.Remove(l.path)
		return false, err
	}
	return true, nil
}

// acquire polls until the lock is taken or the timeout elapses.
func (l *processLock) acquire() error {
	deadline := time.Now().Add(l.timeout)
	for attempt := 0; ; attempt++ {
		ok, err := l.tryAcquire()
		if err != nil {
			return fmt.Errorf("acquire cart lock: %w", err)
		}
		if ok {
			l.logger.Debug("🔒 Acquired cart lock", "pid", os.Getpid())
			return nil
		}
		if !time.Now().Before(deadline) {
			return fmt.Errorf("%w: %s after %s", carterrors.ErrLockTimeout, l.path, l.timeout)
		}
		if attempt%10 == 0 {
			l.logger.Debug("⏳ Waiting for cart lock...", "path", l.path)
		}
		time.Sleep(lockPollInterval)
	}
}

func (l *processLock) release() {
	if err := os.Remove(l.path); err != nil {
		l.logger.Debug("⚠️ Failed to remove cart lock", "error", err)
		return
	}
	l.logger.Debug("🔓 Released cart lock")
}
