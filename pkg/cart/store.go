// Package cart implements the ShareCart save store: a fixed-schema record kept
// in the [Main] section of a small INI file that every accessor re-reads and
// rewrites in full.
//
// The store creates the file and its directory on first use and rewrites the
// default record whenever the Main section has gone missing. Keys that are
// present but malformed are reported as integrity errors and left alone;
// ResetToDefaults is the recovery path for those.
package cart

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
	"gopkg.in/ini.v1"
)

// DefaultLockTimeout bounds the wait for the cross-process lock.
const DefaultLockTimeout = 5 * time.Second

// Store provides validated access to a single cart file.
//
// Operations on one Store are serialized. Other processes writing the same
// file race with it (last writer wins) unless every participant enables
// WithProcessLock.
type Store struct {
	paths    Paths
	fileMode os.FileMode
	dirMode  os.FileMode
	logger   hclog.Logger

	useLock     bool
	lockTimeout time.Duration
	lock        *processLock

	mu sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store logger.
func WithLogger(logger hclog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithFileMode sets the permissions used when the cart file is written.
func WithFileMode(mode os.FileMode) Option {
	return func(s *Store) {
		if mode != 0 {
			s.fileMode = mode
		}
	}
}

// WithDirMode sets the permissions used when the cart directory is created.
func WithDirMode(mode os.FileMode) Option {
	return func(s *Store) {
		if mode != 0 {
			s.dirMode = mode
		}
	}
}

// WithProcessLock guards every operation with a PID lock file next to the
// cart. A non-positive timeout selects DefaultLockTimeout.
func WithProcessLock(timeout time.Duration) Option {
	return func(s *Store) {
		if timeout <= 0 {
			timeout = DefaultLockTimeout
		}
		s.useLock = true
		s.lockTimeout = timeout
	}
}

// New opens the cart at path, creating it with defaults if needed.
func New(path string, opts ...Option) (*Store, error) {
	return Open(PathsFromFile(path), opts...)
}

// Open opens the cart described by paths, creating the directory and a
// default record if they do not exist yet.
func Open(paths Paths, opts ...Option) (*Store, error) {
	s := &Store{
		paths:    paths,
		fileMode: DefaultFileMode,
		dirMode:  DefaultDirMode,
		logger:   hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("cart", paths.File())
	if s.useLock {
		s.lock = &processLock{
			path:    paths.LockFile(),
			timeout: s.lockTimeout,
			logger:  s.logger,
		}
	}

	if err := s.bootstrap(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the cart file path.
func (s *Store) Path() string {
	return s.paths.File()
}

// Paths returns the cart locations.
func (s *Store) Paths() Paths {
	return s.paths
}

func (s *Store) bootstrap() error {
	if err := os.MkdirAll(s.paths.Dir(), s.dirMode); err != nil {
		return fmt.Errorf("failed to create cart directory: %w", err)
	}
	return s.locked(func() error {
		if s.paths.Exists() {
			return nil
		}
		s.logger.Info("📝 Creating cart with default record")
		return s.writeDefaults()
	})
}

// ResetToDefaults overwrites the cart with the default record regardless of
// its current contents.
func (s *Store) ResetToDefaults() error {
	return s.locked(func() error {
		s.logger.Info("♻️ Resetting cart to defaults")
		return s.writeDefaults()
	})
}

// Load reads every field in one pass. The first malformed key aborts it.
func (s *Store) Load() (Record, error) {
	var r Record
	err := s.view(func(sec *ini.Section) (err error) {
		r, err = readRecord(sec)
		return err
	})
	return r, err
}

// Save validates r and writes all of its fields in one pass.
func (s *Store) Save(r Record) error {
	if err := s.reject(r.Validate()); err != nil {
		return err
	}
	return s.update(func(sec *ini.Section) error {
		r.apply(sec)
		return nil
	})
}

// Verify checks every key and returns all integrity failures joined, or nil.
func (s *Store) Verify() error {
	var errs []error
	err := s.view(func(sec *ini.Section) error {
		for _, key := range Keys() {
			f, _ := lookupField(key)
			if _, err := f.read(sec); err != nil {
				errs = append(errs, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return errors.Join(errs...)
}

// =================================
// Document round trips
// =================================

// locked runs fn under the store mutex and, when enabled, the process lock.
func (s *Store) locked(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lock != nil {
		if err := s.lock.acquire(); err != nil {
			return err
		}
		defer s.lock.release()
	}
	return fn()
}

// view hands fn the Main section of a fresh read.
func (s *Store) view(fn func(sec *ini.Section) error) error {
	return s.locked(func() error {
		_, sec, err := s.readMain()
		if err != nil {
			return err
		}
		return fn(sec)
	})
}

// update hands fn the Main section of a fresh read and writes the document
// back if fn succeeds.
func (s *Store) update(fn func(sec *ini.Section) error) error {
	return s.locked(func() error {
		doc, sec, err := s.readMain()
		if err != nil {
			return err
		}
		if err := fn(sec); err != nil {
			return err
		}
		return s.write(doc)
	})
}

// readMain reads the cart and returns its Main section. A missing section
// (or file) is healed once by writing the default record and reading again.
func (s *Store) readMain() (*ini.File, *ini.Section, error) {
	doc, err := s.read()
	if err != nil {
		return nil, nil, err
	}
	if sec, err := doc.GetSection(SectionMain); err == nil {
		return doc, sec, nil
	}

	s.logger.Info("🩹 Section missing, restoring default record", "section", SectionMain)
	if err := s.writeDefaults(); err != nil {
		return nil, nil, err
	}
	doc, err = s.read()
	if err != nil {
		return nil, nil, err
	}
	sec, err := doc.GetSection(SectionMain)
	if err != nil {
		return nil, nil, fmt.Errorf("section %s still missing after restoring defaults: %w", SectionMain, err)
	}
	return doc, sec, nil
}

func (s *Store) read() (*ini.File, error) {
	doc, err := readDocument(s.paths.File())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("📭 Cart file missing")
			return ini.Empty(loadOptions), nil
		}
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}
	s.logger.Trace("📖 Read cart")
	return doc, nil
}

func (s *Store) write(doc *ini.File) error {
	if err := writeDocumentAtomic(s.paths.File(), doc, s.fileMode); err != nil {
		return fmt.Errorf("failed to write cart: %w", err)
	}
	s.logger.Debug("💾 Wrote cart")
	return nil
}

func (s *Store) writeDefaults() error {
	if err := os.MkdirAll(s.paths.Dir(), s.dirMode); err != nil {
		return fmt.Errorf("failed to create cart directory: %w", err)
	}
	return s.write(defaultDocument())
}

// reject logs and returns a non-nil argument error.
func (s *Store) reject(err error) error {
	if err != nil {
		s.logger.Warn("⚠️ Rejected cart argument", "error", err)
	}
	return err
}
