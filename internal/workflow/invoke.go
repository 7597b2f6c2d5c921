package workflow

import (
	"context"
	"fmt"
	"log"

	"calendar-assistant/internal/llm"
)

// ParseFunc turns a raw completion into an artifact. Implementations must
// always return a value: a malformed completion degrades, it never aborts.
type ParseFunc func(content string) *Output

// Invoke sends the full ordered history to the model, appends the
// completion as an assistant turn and parses it. History only grows; the
// attempt ceiling is what bounds it in practice.
func Invoke(ctx context.Context, s *State, client llm.Client, parse ParseFunc) error {
	resp, err := client.Generate(ctx, s.Messages)
	if err != nil {
		return fmt.Errorf("llm generate: %w", err)
	}
	log.Printf("LLM response [model=%s, tokens: prompt=%d, completion=%d, total=%d]",
		resp.Model, resp.PromptTokens, resp.CompletionTokens, resp.TotalTokens)

	s.AppendAssistant(resp.Content)
	s.FinalOutput = parse(resp.Content)
	return nil
}
