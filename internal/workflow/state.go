package workflow

import (
	"calendar-assistant/internal/llm"
)

// Output is the parsed artifact of one completion.
type Output struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// State is one request's conversation, threaded by value through the
// pipeline stages. Messages are append-only; nothing reorders or drops
// them. FinalOutput and Feedback are mutually exclusive at rest: folding
// feedback clears the previous output, a completed invocation clears
// nothing because the feedback was consumed by the fold.
type State struct {
	Messages    []llm.Message
	FinalOutput *Output
	Feedback    string
}

func (s *State) Initialized() bool { return len(s.Messages) > 0 }

func (s *State) AppendUser(content string) {
	s.Messages = append(s.Messages, llm.Message{Role: "user", Content: content})
}

func (s *State) AppendAssistant(content string) {
	s.Messages = append(s.Messages, llm.Message{Role: "assistant", Content: content})
}

// Initialize seeds the conversation with the system prompt and the user's
// free-text intent. No-op on feedback rounds: the system prompt (and the
// enrichment snapshot baked into it) is fixed for the conversation's
// lifetime.
func Initialize(s *State, systemPrompt, userPrompt string) {
	if s.Initialized() {
		return
	}
	s.Messages = append(s.Messages,
		llm.Message{Role: "system", Content: systemPrompt},
		llm.Message{Role: "user", Content: userPrompt},
	)
}

// FoldFeedback appends one user turn built from the pending feedback and
// clears both the feedback and the stale output. No-op when there is no
// pending feedback.
func FoldFeedback(s *State, instruction func(feedback string) string) {
	if s.Feedback == "" {
		return
	}
	s.AppendUser(instruction(s.Feedback))
	s.FinalOutput = nil
	s.Feedback = ""
}
