package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// ErrNotFound is returned when a record id does not exist in its set.
var ErrNotFound = errors.New("record not found")

// Store persists each named record set as one pretty-printed JSON document
// inside its data directory. Mutations rewrite the whole document: the new
// content is written to a temp file and renamed over the old one, so an
// interrupted write leaves the previous state intact. Access to a set is
// serialized on a per-set mutex.
type Store struct {
	dir   string
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir, locks: make(map[string]*sync.Mutex)}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) lockFor(set string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[set]
	if !ok {
		l = &sync.Mutex{}
		s.locks[set] = l
	}
	return l
}

func (s *Store) path(set string) string {
	return filepath.Join(s.dir, set+".json")
}

func (s *Store) loadLocked(set string, out any) (bool, error) {
	data, err := os.ReadFile(s.path(set))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) saveLocked(set string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, set+"-*.json.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path(set))
}

// Load reads a set's document into out. It reports false, with out left
// untouched, when the document does not exist yet.
func (s *Store) Load(set string, out any) (bool, error) {
	l := s.lockFor(set)
	l.Lock()
	defer l.Unlock()
	return s.loadLocked(set, out)
}

// Save replaces a set's persisted content.
func (s *Store) Save(set string, v any) error {
	l := s.lockFor(set)
	l.Lock()
	defer l.Unlock()
	return s.saveLocked(set, v)
}

// Read returns every record in a set, or an empty slice if the set has not
// been written yet.
func Read[T any](s *Store, set string) ([]T, error) {
	l := s.lockFor(set)
	l.Lock()
	defer l.Unlock()
	records := []T{}
	if _, err := s.loadLocked(set, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Mutate applies fn to a set's records and persists the result, all under
// the set's lock. When fn returns an error nothing is written and the error
// is returned unchanged, so handlers can propagate ErrNotFound.
func Mutate[T any](s *Store, set string, fn func([]T) ([]T, error)) ([]T, error) {
	l := s.lockFor(set)
	l.Lock()
	defer l.Unlock()
	records := []T{}
	if _, err := s.loadLocked(set, &records); err != nil {
		return nil, err
	}
	updated, err := fn(records)
	if err != nil {
		return nil, err
	}
	if err := s.saveLocked(set, updated); err != nil {
		return nil, err
	}
	return updated, nil
}
