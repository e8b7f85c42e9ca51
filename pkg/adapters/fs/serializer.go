package fs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/toutdo/pkg/core"
)

// Serializer defines how a note collection is encoded in a specific file format.
type Serializer interface {
	// Encode writes the whole collection to w.
	Encode(w io.Writer, notes []core.Note) error
	// Decode reads a whole collection from r.
	Decode(r io.Reader) ([]core.Note, error)
}

// DefaultSerializers returns the standard set of serializers keyed by extension.
func DefaultSerializers() map[string]Serializer {
	return map[string]Serializer{
		".json": NewJSONSerializer(true),
		".yaml": NewYAMLSerializer(),
		".yml":  NewYAMLSerializer(),
	}
}

// SerializerFor picks the serializer matching the extension of path.
func SerializerFor(path string) (Serializer, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if s, ok := DefaultSerializers()[ext]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("no serializer for extension %q", ext)
}

// --- JSON Serializer ---

// JSONSerializer encodes the collection as a JSON array of notes.
type JSONSerializer struct {
	Indent bool
}

// NewJSONSerializer creates a new JSON serializer.
func NewJSONSerializer(indent bool) *JSONSerializer {
	return &JSONSerializer{Indent: indent}
}

func (s *JSONSerializer) Encode(w io.Writer, notes []core.Note) error {
	enc := json.NewEncoder(w)
	if s.Indent {
		enc.SetIndent("", "  ")
	}
	// Clone turns nil into [] so an empty store is never written as null
	return enc.Encode(core.Clone(notes))
}

// Decode accepts exactly one JSON array of complete {id, content, pinned}
// records. Missing fields, a null document and trailing data are errors.
func (s *JSONSerializer) Decode(r io.Reader) ([]core.Note, error) {
	dec := json.NewDecoder(r)

	var records *[]noteRecord
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	if records == nil {
		return nil, errors.New("invalid json: document is null, want an array of notes")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("invalid json: unexpected data after the notes array")
	}
	return toNotes(*records)
}

// noteRecord mirrors core.Note with every field required.
type noteRecord struct {
	ID      *uint32 `json:"id" yaml:"id"`
	Content *string `json:"content" yaml:"content"`
	Pinned  *bool   `json:"pinned" yaml:"pinned"`
}

func toNotes(records []noteRecord) ([]core.Note, error) {
	notes := make([]core.Note, 0, len(records))
	for i, rec := range records {
		var missing []string
		if rec.ID == nil {
			missing = append(missing, "id")
		}
		if rec.Content == nil {
			missing = append(missing, "content")
		}
		if rec.Pinned == nil {
			missing = append(missing, "pinned")
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("note %d: missing %s", i, strings.Join(missing, ", "))
		}
		notes = append(notes, core.Note{ID: *rec.ID, Content: *rec.Content, Pinned: *rec.Pinned})
	}
	return notes, nil
}

// --- YAML Serializer ---

// YAMLSerializer encodes the collection as a YAML sequence.
type YAMLSerializer struct{}

// NewYAMLSerializer creates a new YAML serializer.
func NewYAMLSerializer() *YAMLSerializer {
	return &YAMLSerializer{}
}

func (s *YAMLSerializer) Encode(w io.Writer, notes []core.Note) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(core.Clone(notes)); err != nil {
		return err
	}
	return enc.Close()
}

// Decode treats an empty document as an empty collection.
func (s *YAMLSerializer) Decode(r io.Reader) ([]core.Note, error) {
	var records []noteRecord
	if err := yaml.NewDecoder(r).Decode(&records); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	notes, err := toNotes(records)
	if err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	return notes, nil
}
