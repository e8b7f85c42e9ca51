package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/toutdo/pkg/core"
)

// DefaultFileName is the name of the notes document inside the data directory.
const DefaultFileName = "notes.json"

// Repository implements core.Repository with a single document on the filesystem.
type Repository struct {
	// Path is the absolute location of the notes document.
	Path string

	config     Config
	serializer Serializer

	mu            sync.RWMutex
	watcherActive bool
	lastSave      *time.Time
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Dir          string      // data directory holding the document
	FileName     string      // defaults to DefaultFileName
	ReadOnly     bool        // Save returns core.ErrReadOnly, Initialize creates nothing
	Perm         os.FileMode // defaults to 0644
	Logger       *slog.Logger
	ErrorHandler func(error) // receives watcher failures in addition to the logger
}

// NewRepository creates a new filesystem-backed repository.
// The document format follows the file extension (JSON by default).
func NewRepository(config Config) *Repository {
	if config.FileName == "" {
		config.FileName = DefaultFileName
	}
	if config.Perm == 0 {
		config.Perm = 0644
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	serializer, err := SerializerFor(config.FileName)
	if err != nil {
		serializer = NewJSONSerializer(true)
	}

	return &Repository{
		Path:       filepath.Join(config.Dir, config.FileName),
		config:     config,
		serializer: serializer,
	}
}

// Initialize makes sure the data directory exists and removes scratch files
// left behind by interrupted writes.
func (r *Repository) Initialize(ctx context.Context) error {
	if r.config.ReadOnly {
		return nil
	}

	if err := os.MkdirAll(r.config.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	removed, err := sweepTempFiles(r.config.Dir)
	if err != nil {
		return fmt.Errorf("failed to sweep temp files: %w", err)
	}
	if len(removed) > 0 {
		r.config.Logger.Info("removed stale temp files", "dir", r.config.Dir, "count", len(removed))
	}
	return nil
}

// Load reads the whole collection. A missing document yields (nil, nil).
func (r *Repository) Load(ctx context.Context) ([]core.Note, error) {
	f, err := os.Open(r.Path)
	if errors.Is(err, os.ErrNotExist) {
		r.config.Logger.Debug("notes file not found", "path", r.Path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", r.Path, err)
	}
	defer f.Close()

	notes, err := r.serializer.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", r.Path, err)
	}
	return notes, nil
}

// Save replaces the document with notes.
func (r *Repository) Save(ctx context.Context, notes []core.Note) error {
	if r.config.ReadOnly {
		return core.ErrReadOnly
	}

	if err := os.MkdirAll(filepath.Dir(r.Path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	err := writeFileAtomic(r.Path, r.config.Perm, func(w io.Writer) error {
		return r.serializer.Encode(w, notes)
	})
	if err != nil {
		return err
	}

	r.config.Logger.Debug("notes written", "path", r.Path, "count", len(notes))
	r.recordSave()
	return nil
}

func (r *Repository) recordSave() {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	r.lastSave = &now
}

var (
	_ core.Repository = (*Repository)(nil)
	_ core.Watchable  = (*Repository)(nil)
)
