package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/johnquangdev/mom-ai/internal/domain/entities"
)

// DBFileName is the single JSON snapshot holding all application state.
const DBFileName = "mom-db.json"

// Database is the serialized shape of the whole application state.
type Database struct {
	Meetings  []*entities.Meeting   `json:"meetings"`
	Users     []*entities.User      `json:"users"`
	Jobs      []*entities.EmailJob  `json:"jobs"`
	AuditLogs []entities.AuditEvent `json:"auditLogs"`
	Analytics entities.Analytics    `json:"analytics"`
}

func emptyDatabase() *Database {
	return &Database{
		Meetings:  []*entities.Meeting{},
		Users:     []*entities.User{},
		Jobs:      []*entities.EmailJob{},
		AuditLogs: []entities.AuditEvent{},
	}
}

// FileStore keeps the database in memory and rewrites the snapshot file
// after every mutation. All access goes through View/Mutate under one lock;
// finer per-meeting serialization is layered on by the meeting repository.
type FileStore struct {
	mu   sync.Mutex
	path string
	db   *Database
}

// NewFileStore loads (or initializes) the snapshot under dataDir.
func NewFileStore(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	fs := &FileStore{
		path: filepath.Join(dataDir, DBFileName),
		db:   emptyDatabase(),
	}

	raw, err := os.ReadFile(fs.path)
	if os.IsNotExist(err) {
		if err := fs.persist(); err != nil {
			return nil, err
		}
		return fs, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read database file: %w", err)
	}

	if err := json.Unmarshal(raw, fs.db); err != nil {
		return nil, fmt.Errorf("failed to parse database file: %w", err)
	}
	fs.normalize()
	return fs, nil
}

// normalize guards against hand-edited snapshots with null collections.
func (f *FileStore) normalize() {
	if f.db.Meetings == nil {
		f.db.Meetings = []*entities.Meeting{}
	}
	if f.db.Users == nil {
		f.db.Users = []*entities.User{}
	}
	if f.db.Jobs == nil {
		f.db.Jobs = []*entities.EmailJob{}
	}
	if f.db.AuditLogs == nil {
		f.db.AuditLogs = []entities.AuditEvent{}
	}
	for _, m := range f.db.Meetings {
		if m.AttendanceMap == nil {
			m.AttendanceMap = map[string]*entities.Attendee{}
		}
		if m.Notes == nil {
			m.Notes = []entities.Note{}
		}
	}
}

// View runs fn with read access to the database.
func (f *FileStore) View(fn func(db *Database)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f.db)
}

// Mutate applies fn and, on success, rewrites the snapshot file. fn must
// leave db untouched when it returns an error, or memory and disk diverge;
// the repositories guarantee this by mutating clones published on success.
func (f *FileStore) Mutate(fn func(db *Database) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := fn(f.db); err != nil {
		return err
	}
	return f.persist()
}

func (f *FileStore) persist() error {
	raw, err := json.MarshalIndent(f.db, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize database: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write database file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace database file: %w", err)
	}
	return nil
}
