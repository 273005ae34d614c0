package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/locauto/locauto-go/internal/model"
)

// FileStore persists vehicles as a single pretty-printed JSON array at a
// fixed path, rewritten wholesale on every mutation. A mutex serializes
// read-modify-write sequences within the process and every write goes
// through a temp file + rename so a crash mid-write cannot leave a
// half-written document behind.
type FileStore struct {
	mu     sync.Mutex
	path   string
	nextID int64
}

// NewFileStore opens (or prepares to create) the JSON document at path.
// A missing file is treated as an empty store; the id counter is seeded
// from the highest id already present so deleted ids are never reused.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, nextID: 1}

	vehicles, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, v := range vehicles {
		if v.ID >= s.nextID {
			s.nextID = v.ID + 1
		}
	}

	return s, nil
}

func (s *FileStore) List(ctx context.Context) ([]model.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vehicles, err := s.load()
	if err != nil {
		return nil, err
	}

	// Most recent first, matching the relational store's ORDER BY id DESC.
	for i, j := 0, len(vehicles)-1; i < j; i, j = i+1, j-1 {
		vehicles[i], vehicles[j] = vehicles[j], vehicles[i]
	}

	return vehicles, nil
}

func (s *FileStore) Get(ctx context.Context, id int64) (*model.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vehicles, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range vehicles {
		if vehicles[i].ID == id {
			return &vehicles[i], nil
		}
	}

	return nil, ErrVehicleNotFound
}

func (s *FileStore) Create(ctx context.Context, v *model.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	vehicles, err := s.load()
	if err != nil {
		return err
	}

	v.ID = s.nextID
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}
	vehicles = append(vehicles, *v)

	if err := s.save(vehicles); err != nil {
		return err
	}

	s.nextID++
	return nil
}

func (s *FileStore) Update(ctx context.Context, v *model.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	vehicles, err := s.load()
	if err != nil {
		return err
	}

	for i := range vehicles {
		if vehicles[i].ID == v.ID {
			vehicles[i] = *v
			return s.save(vehicles)
		}
	}

	return ErrVehicleNotFound
}

func (s *FileStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	vehicles, err := s.load()
	if err != nil {
		return err
	}

	kept := vehicles[:0]
	for _, v := range vehicles {
		if v.ID != id {
			kept = append(kept, v)
		}
	}

	return s.save(kept)
}

// load reads and parses the whole document. A missing file reads as an
// empty store; a file that exists but fails to parse is reported as
// corrupt on every read until repaired by hand.
func (s *FileStore) load() ([]model.Vehicle, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.Vehicle{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	var vehicles []model.Vehicle
	if err := json.Unmarshal(data, &vehicles); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreCorrupt, err)
	}

	return vehicles, nil
}

// save rewrites the whole document atomically: marshal, write to a temp
// file in the same directory, then rename over the old document.
func (s *FileStore) save(vehicles []model.Vehicle) error {
	data, err := json.MarshalIndent(vehicles, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}

	tmp, err := os.CreateTemp(dir, "veiculos-*.json")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}

	return nil
}
