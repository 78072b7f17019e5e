package knowledge

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// Passage is one chunk of crawled source text with its precomputed
// embedding. The store is read-only after load, so passages are shared
// freely across requests without locking.
type Passage struct {
	Text      string    `json:"text"`
	Embedding []float32 `json:"embedding"`
	URL       string    `json:"url"`
	Title     string    `json:"title,omitempty"`
}

// Store holds the in-process knowledge base. All passages share the same
// embedding dimensionality, fixed at load time.
type Store struct {
	passages []Passage
	dim      int
}

// NewStore builds a store from pre-embedded passages. Passages without an
// embedding, or whose dimensionality disagrees with the first passage,
// are rejected.
func NewStore(passages []Passage) (*Store, error) {
	s := &Store{}
	for i, p := range passages {
		if len(p.Embedding) == 0 {
			return nil, fmt.Errorf("passage %d has no embedding", i)
		}
		if s.dim == 0 {
			s.dim = len(p.Embedding)
		}
		if len(p.Embedding) != s.dim {
			return nil, fmt.Errorf("passage %d has dimension %d, store has %d", i, len(p.Embedding), s.dim)
		}
		s.passages = append(s.passages, p)
	}
	return s, nil
}

// LoadFile reads a JSONL chunk file (one passage object per line), the
// format the offline crawler emits.
func LoadFile(path string) (*Store, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open knowledge base: %w", err)
	}
	defer file.Close()

	var passages []Passage
	scanner := bufio.NewScanner(file)
	// Chunks with 1536-d embeddings serialize well past the default buffer.
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 4*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var p Passage
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("parse knowledge base line %d: %w", line, err)
		}
		passages = append(passages, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read knowledge base: %w", err)
	}

	return NewStore(passages)
}

// Len returns the number of passages.
func (s *Store) Len() int {
	return len(s.passages)
}

// Dim returns the embedding dimensionality, 0 for an empty store.
func (s *Store) Dim() int {
	return s.dim
}

// Passage returns the passage at index i.
func (s *Store) Passage(i int) Passage {
	return s.passages[i]
}
