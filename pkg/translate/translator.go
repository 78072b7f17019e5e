package translate

import (
	"context"
	"fmt"
	"strings"

	"penai-be/pkg/llm"
)

// Translator converts text between languages. Implementations are
// best-effort: callers must treat a failure as "keep the original text",
// never as a fatal condition.
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}

// languageNames maps the short codes the widget sends to names the model
// translates reliably. Unknown codes are passed through as-is.
var languageNames = map[string]string{
	"en": "English",
	"fr": "French",
	"de": "German",
	"es": "Spanish",
	"it": "Italian",
	"pt": "Portuguese",
	"ru": "Russian",
	"zh": "Chinese",
	"ja": "Japanese",
	"ko": "Korean",
	"ar": "Arabic",
}

// LLMTranslator implements Translator on top of the chat provider with a
// deterministic (temperature 0) translation prompt.
type LLMTranslator struct {
	llmProvider llm.LLMProvider
}

func NewLLMTranslator(llmProvider llm.LLMProvider) *LLMTranslator {
	return &LLMTranslator{llmProvider: llmProvider}
}

func (t *LLMTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	target := languageNames[strings.ToLower(targetLanguage)]
	if target == "" {
		target = targetLanguage
	}

	prompt := fmt.Sprintf(
		"Translate the following text into %s. Keep names, URLs, dates and amounts unchanged. "+
			"Reply with ONLY the translated text.\n\n%s",
		target, text,
	)

	out, err := t.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.0))
	if err != nil {
		return "", fmt.Errorf("translate to %s: %w", targetLanguage, err)
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return "", fmt.Errorf("translate to %s: empty response", targetLanguage)
	}
	return out, nil
}
