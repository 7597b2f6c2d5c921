package llm

import "context"

// Message is one turn of a conversation. Role is one of
// "system", "user" or "assistant". JSON tags match the job-file contract.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Response struct {
	Content          string
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

type Client interface {
	Generate(ctx context.Context, messages []Message) (Response, error)
}
