package fs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/toutdo/pkg/core"
)

func TestSerializerFor(t *testing.T) {
	cases := map[string]string{
		"notes.json": "*fs.JSONSerializer",
		"NOTES.JSON": "*fs.JSONSerializer",
		"notes.yaml": "*fs.YAMLSerializer",
		"notes.yml":  "*fs.YAMLSerializer",
	}
	for path, want := range cases {
		s, err := SerializerFor(path)
		if err != nil {
			t.Fatalf("SerializerFor(%q) failed: %v", path, err)
		}
		if got := typeName(s); got != want {
			t.Errorf("SerializerFor(%q): expected %s, got %s", path, want, got)
		}
	}

	if _, err := SerializerFor("notes.csv"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestYAMLSerializer_Shape(t *testing.T) {
	var buf bytes.Buffer
	notes := []core.Note{{ID: 2, Content: "hi", Pinned: true}}
	if err := NewYAMLSerializer().Encode(&buf, notes); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"id: 2", "content: hi", "pinned: true"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}

	// Empty document decodes to an empty collection
	got, err := NewYAMLSerializer().Decode(strings.NewReader(""))
	if err != nil {
		t.Fatalf("decode empty yaml: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no notes, got %d", len(got))
	}
}

func TestJSONSerializer_Compact(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONSerializer(false).Encode(&buf, []core.Note{{ID: 1, Content: "x"}}); err != nil {
		t.Fatal(err)
	}
	want := `[{"id":1,"content":"x","pinned":false}]` + "\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestJSONSerializer_DecodeStrict(t *testing.T) {
	got, err := NewJSONSerializer(true).Decode(strings.NewReader("[\n  {\"id\": 7, \"content\": \"\", \"pinned\": true}\n]\n\n"))
	if err != nil {
		t.Fatalf("decode valid document: %v", err)
	}
	if len(got) != 1 || got[0] != (core.Note{ID: 7, Pinned: true}) {
		t.Errorf("unexpected notes %+v", got)
	}

	_, err = NewJSONSerializer(true).Decode(strings.NewReader(`[{"id": 3, "pinned": false}]`))
	if err == nil || !strings.Contains(err.Error(), "missing content") {
		t.Errorf("expected missing content error, got %v", err)
	}
}

func TestYAMLSerializer_RejectsIncompleteRecords(t *testing.T) {
	if _, err := NewYAMLSerializer().Decode(strings.NewReader("- id: 1\n")); err == nil {
		t.Error("expected error for record without content and pinned")
	}
}

func typeName(v any) string {
	switch v.(type) {
	case *JSONSerializer:
		return "*fs.JSONSerializer"
	case *YAMLSerializer:
		return "*fs.YAMLSerializer"
	default:
		return "unknown"
	}
}
