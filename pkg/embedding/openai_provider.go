package embedding

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// OpenAIProvider implements EmbeddingProvider against the OpenAI
// embeddings API. The knowledge base is built with text-embedding-3-small
// (1536-d), so queries must use the same model or retrieval short-circuits
// on the dimensionality guard.
type OpenAIProvider struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client
}

func NewOpenAIProvider(apiKey string, model string) EmbeddingProvider {
	if model == "" {
		model = "text-embedding-3-small"
	}
	return &OpenAIProvider{
		BaseURL: "https://api.openai.com/v1",
		APIKey:  apiKey,
		Model:   model,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type openAIEmbeddingRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type openAIEmbeddingResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
}

func (p *OpenAIProvider) Generate(text string, taskType string) (*EmbeddingResponse, error) {
	// taskType is kept for interface compatibility; OpenAI has no such knob.

	reqBody := openAIEmbeddingRequest{
		Model: p.Model,
		Input: strings.TrimSpace(text),
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, p.BaseURL+"/embeddings", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.APIKey)

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openai embedding error: %s", string(bodyBytes))
	}

	var apiResp openAIEmbeddingResponse
	if err := json.Unmarshal(bodyBytes, &apiResp); err != nil {
		return nil, err
	}
	if len(apiResp.Data) == 0 {
		return nil, fmt.Errorf("openai embedding response contained no vectors")
	}

	return &EmbeddingResponse{
		Embedding: Response{
			Values: apiResp.Data[0].Embedding,
		},
	}, nil
}
