// Package localstore is a single-file JSON document store. Every operation
// reads the whole document, mutates it in memory, and writes it back, which
// is the contract the repository adapters are built around. A Store is an
// explicit handle opened once at process start and threaded through the
// constructors; there is no package-level state.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Document is the serialized root of the store: three arrays, mirroring the
// relational tables.
type Document struct {
	Accounts  []AccountRecord  `json:"accounts"`
	Employees []EmployeeRecord `json:"employees"`
	Tasks     []TaskRecord     `json:"tasks"`
}

type AccountRecord struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type EmployeeRecord struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Department string    `json:"department"`
	AccountID  *string   `json:"account_id,omitempty"`
	JoinDate   time.Time `json:"join_date"`
	CreatedBy  string    `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type TaskRecord struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Name       string    `json:"task_name"`
	Status     string    `json:"status"`
	Rank       int       `json:"rank"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Store struct {
	path string
	mu   sync.Mutex
}

// Open prepares a store at path, creating an empty document if none exists.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.save(&Document{}); err != nil {
			return nil, fmt.Errorf("localstore: initialize %s: %w", path, err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("localstore: stat %s: %w", path, err)
	}

	return s, nil
}

// View runs fn against a freshly loaded snapshot of the document.
func (s *Store) View(fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	return fn(doc)
}

// Mutate loads the document, applies fn, and writes the whole document back.
// The write is atomic (temp file plus rename); fn returning an error leaves
// the file untouched.
func (s *Store) Mutate(fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.save(doc)
}

// Ping verifies the document file is readable and well-formed.
func (s *Store) Ping() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.load()
	return err
}

func (s *Store) load() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("localstore: read %s: %w", s.path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("localstore: decode %s: %w", s.path, err)
	}
	return &doc, nil
}

func (s *Store) save(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("localstore: encode: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".localstore-*")
	if err != nil {
		return fmt.Errorf("localstore: temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("localstore: write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("localstore: close %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("localstore: replace %s: %w", s.path, err)
	}
	return nil
}
