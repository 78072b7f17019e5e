package knowledge

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewStoreRejectsBadPassages(t *testing.T) {
	_, err := NewStore([]Passage{{Text: "no vector"}})
	if err == nil {
		t.Error("expected error for passage without embedding")
	}

	_, err = NewStore([]Passage{
		{Text: "a", Embedding: []float32{1, 2}},
		{Text: "b", Embedding: []float32{1, 2, 3}},
	})
	if err == nil {
		t.Error("expected error for mismatched dimensions")
	}
}

func TestLoadFileJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb.jsonl")
	payload := `{"text": "fees info", "embedding": [0.1, 0.2], "url": "https://example.org/fees"}

{"text": "boarding info", "embedding": [0.3, 0.4], "url": ""}
`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	store, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if store.Len() != 2 {
		t.Fatalf("Len = %d, want 2 (blank lines skipped)", store.Len())
	}
	if store.Dim() != 2 {
		t.Errorf("Dim = %d, want 2", store.Dim())
	}
	if store.Passage(0).URL != "https://example.org/fees" {
		t.Errorf("passage 0 = %+v", store.Passage(0))
	}
}

func TestLoadFileBadLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb.jsonl")
	if err := os.WriteFile(path, []byte("{not json}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected parse error")
	}
}
