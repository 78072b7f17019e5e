package embedding

// Response carries a single embedding vector.
type Response struct {
	Values []float32 `json:"values"`
}

// EmbeddingResponse wraps the vector, keeping the shape providers return
// stable regardless of backend.
type EmbeddingResponse struct {
	Embedding Response `json:"embedding"`
}

// EmbeddingProvider defines the interface for generating text embeddings.
// taskType is a hint ("RETRIEVAL_QUERY", "RETRIEVAL_DOCUMENT") that some
// backends use and others ignore.
type EmbeddingProvider interface {
	Generate(text string, taskType string) (*EmbeddingResponse, error)
}
