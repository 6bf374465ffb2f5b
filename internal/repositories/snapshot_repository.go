package repositories

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"fxledger/internal/ledger"

	"golang.org/x/sys/unix"
)

var (
	// ErrSnapshotNotFound is returned by Load before the first Save
	ErrSnapshotNotFound = errors.New("ledger snapshot not found")
	// ErrSnapshotEncoding is returned by Save when the ledger cannot be
	// encoded. Nothing was written.
	ErrSnapshotEncoding = errors.New("ledger snapshot encoding failed")
)

// SnapshotRepository stores the ledger as a single binary file. Writers take
// an exclusive flock on a sidecar lock file and readers a shared one, so
// other processes (ledgerd inspect) never observe a partially written file.
type SnapshotRepository struct {
	path     string
	lockPath string
	syncDir  func(dir string) error
	logger   *slog.Logger
}

// NewSnapshotRepository creates a repository writing to path, locking lockPath
func NewSnapshotRepository(path, lockPath string) (SnapshotRepositoryInterface, error) {
	if path == "" {
		return nil, errors.New("snapshot path cannot be empty")
	}
	if lockPath == "" {
		lockPath = path + ".lock"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	return &SnapshotRepository{
		path:     path,
		lockPath: lockPath,
		syncDir:  syncDir,
		logger:   slog.Default(),
	}, nil
}

// Path returns the snapshot file location
func (r *SnapshotRepository) Path() string {
	return r.path
}

// Load reads and decodes the snapshot under a shared lock
func (r *SnapshotRepository) Load() (*ledger.Ledger, error) {
	unlock, err := r.lock(unix.LOCK_SH)
	if err != nil {
		return nil, err
	}
	defer unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	l, err := ledger.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", r.path, err)
	}
	return l, nil
}

// Save encodes l and swaps it into place: write to a temp file in the same
// directory, fsync, rename over the old snapshot, fsync the directory.
// Once the rename succeeds the snapshot is committed and Save returns nil.
func (r *SnapshotRepository) Save(l *ledger.Ledger) error {
	data, err := l.MarshalBinary()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSnapshotEncoding, err)
	}

	unlock, err := r.lock(unix.LOCK_EX)
	if err != nil {
		return err
	}
	defer unlock()

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write temp snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp snapshot: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	committed = true

	if err := r.syncDir(dir); err != nil {
		r.logger.Warn("snapshot replaced but directory sync failed",
			slog.String("path", r.path),
			slog.String("error", err.Error()),
		)
	}
	return nil
}

func (r *SnapshotRepository) lock(how int) (func(), error) {
	f, err := os.OpenFile(r.lockPath, os.O_CREATE|os.O_RDWR, 0o640)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}
	for {
		err = unix.Flock(int(f.Fd()), how)
		if !errors.Is(err, unix.EINTR) {
			break
		}
	}
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to lock %s: %w", r.lockPath, err)
	}
	return func() {
		_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
		_ = f.Close()
	}, nil
}

func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("failed to open snapshot directory: %w", err)
	}
	defer d.Close()
	if err := d.Sync(); err != nil {
		return fmt.Errorf("failed to sync snapshot directory: %w", err)
	}
	return nil
}
