package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

const (
	usersFile    = "users.json"
	productsFile = "products.json"
	invoicesFile = "invoices.json"
)

// DB is a flat-file JSON database. Each collection is one pretty-printed
// file holding the full set of records of its entity type. Every mutation
// is a load-entire-file, mutate-in-memory, save-entire-file sequence run
// under the collection's mutex, so writers on the same collection never
// interleave within the process.
type DB struct {
	dir    string
	logger *slog.Logger
	locks  map[string]*sync.Mutex
}

// Open prepares the data directory and returns a DB handle over it.
func Open(dir string, logger *slog.Logger) (*DB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DB{
		dir:    dir,
		logger: logger,
		locks: map[string]*sync.Mutex{
			usersFile:    {},
			productsFile: {},
			invoicesFile: {},
		},
	}, nil
}

func (db *DB) lock(name string) *sync.Mutex {
	return db.locks[name]
}

// loadCollection reads the named collection in full. A missing file yields
// an empty collection; an unparsable file is logged as a diagnostic and
// likewise yields an empty collection. It never returns an error.
func loadCollection[T any](db *DB, name string) []T {
	data, err := os.ReadFile(filepath.Join(db.dir, name))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			db.logger.Warn("failed to read collection", "file", name, "error", err)
		}
		return nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		db.logger.Warn("failed to parse collection", "file", name, "error", err)
		return nil
	}
	return items
}

// saveCollection serializes the entire collection and overwrites the
// backing file. Failures are logged and returned so callers can surface
// them instead of reporting success.
func saveCollection[T any](db *DB, name string, items []T) error {
	if items == nil {
		items = []T{}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		db.logger.Error("failed to encode collection", "file", name, "error", err)
		return err
	}
	if err := os.WriteFile(filepath.Join(db.dir, name), data, 0o644); err != nil {
		db.logger.Error("failed to write collection", "file", name, "error", err)
		return err
	}
	return nil
}
