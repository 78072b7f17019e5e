package translate

import (
	"context"
	"strings"
	"testing"

	"penai-be/pkg/llm"
)

type fakeLLM struct {
	lastPrompt string
	reply      string
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	for _, m := range history {
		if m.Role == "user" {
			f.lastPrompt = m.Content
		}
	}
	return f.reply, nil
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func TestTranslateUsesLanguageName(t *testing.T) {
	fake := &fakeLLM{reply: "Bonjour"}
	tr := NewLLMTranslator(fake)

	got, err := tr.Translate(context.Background(), "Hello", "fr")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "Bonjour" {
		t.Errorf("got %q", got)
	}
	if !strings.Contains(fake.lastPrompt, "French") {
		t.Errorf("prompt should name the language, got %q", fake.lastPrompt)
	}
	if !strings.Contains(fake.lastPrompt, "Hello") {
		t.Errorf("prompt should carry the text, got %q", fake.lastPrompt)
	}
}

func TestTranslateUnknownCodeFallsBackToCode(t *testing.T) {
	fake := &fakeLLM{reply: "ok"}
	tr := NewLLMTranslator(fake)

	if _, err := tr.Translate(context.Background(), "Hello", "xx"); err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if !strings.Contains(fake.lastPrompt, "xx") {
		t.Errorf("unknown code should pass through, got %q", fake.lastPrompt)
	}
}
