package factory

import (
	"fmt"

	"penai-be/pkg/llm"
	"penai-be/pkg/llm/ollama"
	"penai-be/pkg/llm/openai"
)

func NewLLMProvider(providerType, modelName, ollamaBaseURL, openAIKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "openai":
		if openAIKey == "" {
			return nil, fmt.Errorf("openai provider requires OPENAI_API_KEY")
		}
		return openai.NewOpenAIProvider(openAIKey, modelName), nil
	case "ollama":
		return ollama.NewOllamaProvider(ollamaBaseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
