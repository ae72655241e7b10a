// internal/store/store.go
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
)

// Store owns one directory of JSON records, one file per record. It is the
// only component that touches the files; services mutate records exclusively
// through Read/Write/Create.
type Store struct {
	dir string
}

// Entry is one record returned from a pattern lookup.
type Entry struct {
	Key     string
	ModTime time.Time
	Raw     json.RawMessage
}

// New binds a store to a base directory, creating it if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the base directory the store is bound to.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Exists reports whether a record file is present for the key.
func (s *Store) Exists(key string) bool {
	_, err := os.Stat(s.path(key))
	return err == nil
}

// Read unmarshals the record for key into v. Returns ErrNotFound when the
// file is absent; a malformed file is a real error here, unlike listings.
func (s *Store) Read(key string, v interface{}) error {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("read record %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode record %s: %w", key, err)
	}
	return nil
}

// ModTime returns the record file's modification time.
func (s *Store) ModTime(key string) (time.Time, error) {
	info, err := os.Stat(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return time.Time{}, ErrNotFound
		}
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// Write replaces the whole record for key. The marshaled document goes to a
// temp file first and is renamed into place, so concurrent readers never see
// a partial record.
func (s *Store) Write(key string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode record %s: %w", key, err)
	}

	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("temp file for %s: %w", key, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write record %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close record %s: %w", key, err)
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename record %s: %w", key, err)
	}
	return nil
}

// Create writes a new record for key, failing with ErrAlreadyExists when a
// file is already present. The exclusive-create flag makes the guard hold
// even for two near-simultaneous creates of the same key.
func (s *Store) Create(key string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode record %s: %w", key, err)
	}

	f, err := os.OpenFile(s.path(key), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("create record %s: %w", key, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write record %s: %w", key, err)
	}
	return f.Close()
}

// Find returns all records whose key matches the glob-like pattern, ordered
// by file modification time descending. Files that are unreadable or not
// valid JSON are skipped, matching the tolerance the conversational flow
// needs for hand-edited data directories.
func (s *Store) Find(pattern string) ([]Entry, error) {
	paths, err := filepath.Glob(filepath.Join(s.dir, pattern+".json"))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}

	entries := make([]Entry, 0, len(paths))
	for _, p := range paths {
		base := filepath.Base(p)
		if strings.HasPrefix(base, ".") {
			continue
		}
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		raw, err := os.ReadFile(p)
		if err != nil || !json.Valid(raw) {
			continue
		}
		entries = append(entries, Entry{
			Key:     strings.TrimSuffix(base, ".json"),
			ModTime: info.ModTime(),
			Raw:     raw,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ModTime.After(entries[j].ModTime)
	})
	return entries, nil
}
