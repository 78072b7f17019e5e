package knowledge

import (
	"container/heap"
	"log"
	"math"
	"sort"

	"penai-be/pkg/embedding"
)

const normEpsilon = 1e-10

// Retriever runs semantic search over the knowledge store. Failures to
// embed the query and dimensionality mismatches degrade to an empty
// result set so the caller can fall through to its next answer source.
type Retriever struct {
	store             *Store
	embeddingProvider embedding.EmbeddingProvider
	logger            *log.Logger
}

// NewRetriever creates a retriever over the given store.
func NewRetriever(store *Store, embeddingProvider embedding.EmbeddingProvider, logger *log.Logger) *Retriever {
	return &Retriever{
		store:             store,
		embeddingProvider: embeddingProvider,
		logger:            logger,
	}
}

// Search embeds the query and returns the indices of the top-k most
// similar passages with their cosine similarities, best first. An empty
// store, an embedding failure or a dimensionality mismatch all return
// empty slices, never an error.
func (r *Retriever) Search(query string, k int) ([]float64, []int) {
	if r.store == nil || r.store.Len() == 0 {
		return nil, nil
	}

	res, err := r.embeddingProvider.Generate(query, "RETRIEVAL_QUERY")
	if err != nil {
		r.logger.Printf("[WARN] Query embedding failed, skipping vector search: %v", err)
		return nil, nil
	}
	qvec := res.Embedding.Values

	if len(qvec) != r.store.Dim() {
		r.logger.Printf("[WARN] Skipping vector search due to dim mismatch (KB:%d vs query:%d)",
			r.store.Dim(), len(qvec))
		return nil, nil
	}

	sims := make([]float64, r.store.Len())
	qnorm := norm(qvec) + normEpsilon
	for i := 0; i < r.store.Len(); i++ {
		p := r.store.Passage(i)
		sims[i] = dot(qvec, p.Embedding) / ((norm(p.Embedding) + normEpsilon) * qnorm)
	}

	idxs := topK(sims, k)

	ranked := make([]float64, len(idxs))
	for i, idx := range idxs {
		ranked[i] = sims[idx]
	}
	return ranked, idxs
}

func dot(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

func norm(v []float32) float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}

// topK returns indices of the k largest similarities in descending
// order. When k covers the whole corpus we sort everything; otherwise a
// bounded min-heap keeps the selection partial.
func topK(sims []float64, k int) []int {
	n := len(sims)
	if k >= n {
		idxs := make([]int, n)
		for i := range idxs {
			idxs[i] = i
		}
		sort.SliceStable(idxs, func(a, b int) bool { return sims[idxs[a]] > sims[idxs[b]] })
		return idxs
	}

	h := &simHeap{sims: sims}
	for i := 0; i < n; i++ {
		if h.Len() < k {
			heap.Push(h, i)
		} else if sims[i] > sims[h.idxs[0]] {
			h.idxs[0] = i
			heap.Fix(h, 0)
		}
	}

	idxs := h.idxs
	sort.SliceStable(idxs, func(a, b int) bool { return sims[idxs[a]] > sims[idxs[b]] })
	return idxs
}

type simHeap struct {
	sims []float64
	idxs []int
}

func (h *simHeap) Len() int           { return len(h.idxs) }
func (h *simHeap) Less(a, b int) bool { return h.sims[h.idxs[a]] < h.sims[h.idxs[b]] }
func (h *simHeap) Swap(a, b int)      { h.idxs[a], h.idxs[b] = h.idxs[b], h.idxs[a] }
func (h *simHeap) Push(x interface{}) { h.idxs = append(h.idxs, x.(int)) }
func (h *simHeap) Pop() interface{} {
	last := h.idxs[len(h.idxs)-1]
	h.idxs = h.idxs[:len(h.idxs)-1]
	return last
}
