package workflow

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"calendar-assistant/internal/llm"
)

func TestInitializeSeedsOnce(t *testing.T) {
	var st State
	Initialize(&st, "system prompt", "user intent")
	if len(st.Messages) != 2 {
		t.Fatalf("want 2 messages, got %d", len(st.Messages))
	}
	if st.Messages[0].Role != "system" || st.Messages[0].Content != "system prompt" {
		t.Fatalf("unexpected seed[0]: %+v", st.Messages[0])
	}
	if st.Messages[1].Role != "user" || st.Messages[1].Content != "user intent" {
		t.Fatalf("unexpected seed[1]: %+v", st.Messages[1])
	}

	// Round 2: the system prompt is fixed for the conversation's lifetime.
	Initialize(&st, "different prompt", "different intent")
	if len(st.Messages) != 2 || st.Messages[0].Content != "system prompt" {
		t.Fatalf("re-initialization must be a no-op: %+v", st.Messages)
	}
}

func TestFoldFeedback(t *testing.T) {
	instruction := func(fb string) string { return "фидбек: " + fb }

	st := State{
		Messages: []llm.Message{
			{Role: "system", Content: "s"},
			{Role: "user", Content: "u"},
			{Role: "assistant", Content: "a"},
		},
		FinalOutput: &Output{Title: "old", Description: "stale"},
		Feedback:    "shorter please",
	}

	FoldFeedback(&st, instruction)
	if len(st.Messages) != 4 {
		t.Fatalf("fold must append exactly one message, got %d", len(st.Messages))
	}
	last := st.Messages[3]
	if last.Role != "user" || last.Content != "фидбек: shorter please" {
		t.Fatalf("unexpected folded message: %+v", last)
	}
	if st.FinalOutput != nil {
		t.Fatalf("stale output must be cleared")
	}
	if st.Feedback != "" {
		t.Fatalf("feedback must be consumed")
	}

	// Second fold without an intervening generation is a no-op.
	FoldFeedback(&st, instruction)
	if len(st.Messages) != 4 || st.FinalOutput != nil || st.Feedback != "" {
		t.Fatalf("second fold must be a no-op: %+v", st)
	}
}

func TestFoldFeedbackNoopWithoutFeedback(t *testing.T) {
	st := State{FinalOutput: &Output{Title: "keep"}}
	FoldFeedback(&st, func(string) string { return "never" })
	if st.FinalOutput == nil || st.FinalOutput.Title != "keep" {
		t.Fatalf("no feedback must not clear output")
	}
	if len(st.Messages) != 0 {
		t.Fatalf("no feedback must not append messages")
	}
}

type fakeClient struct {
	reply string
	err   error
	seen  [][]llm.Message
}

func (f *fakeClient) Generate(_ context.Context, messages []llm.Message) (llm.Response, error) {
	cp := make([]llm.Message, len(messages))
	copy(cp, messages)
	f.seen = append(f.seen, cp)
	if f.err != nil {
		return llm.Response{}, f.err
	}
	return llm.Response{Content: f.reply, Model: "fake"}, nil
}

func TestInvokeAppendsAndParses(t *testing.T) {
	client := &fakeClient{reply: "[NAME] T\n[DESCRIPTION] D"}
	st := State{Messages: []llm.Message{{Role: "system", Content: "s"}, {Role: "user", Content: "u"}}}

	parse := func(content string) *Output {
		out, ok := ParseTagged(content)
		if !ok {
			return &Output{Title: "fail", Description: content}
		}
		return &out
	}

	if err := Invoke(context.Background(), &st, client, parse); err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if len(st.Messages) != 3 || st.Messages[2].Role != "assistant" {
		t.Fatalf("completion must be appended as assistant turn: %+v", st.Messages)
	}
	if st.FinalOutput == nil || st.FinalOutput.Title != "T" || st.FinalOutput.Description != "D" {
		t.Fatalf("unexpected output: %+v", st.FinalOutput)
	}
	if len(client.seen) != 1 || len(client.seen[0]) != 2 {
		t.Fatalf("model must receive the pre-invoke history")
	}
}

func TestInvokeError(t *testing.T) {
	client := &fakeClient{err: errors.New("boom")}
	st := State{Messages: []llm.Message{{Role: "user", Content: "u"}}}
	err := Invoke(context.Background(), &st, client, func(string) *Output { return nil })
	if err == nil {
		t.Fatalf("expected error")
	}
	if len(st.Messages) != 1 {
		t.Fatalf("failed invocation must not append messages")
	}
}

func TestPipelineRunsStagesInOrder(t *testing.T) {
	var order []string
	mk := func(name string) Stage {
		return Stage{Name: name, Run: func(context.Context, *State) error {
			order = append(order, name)
			return nil
		}}
	}
	p := NewPipeline(mk("enrich"), mk("init"), mk("feedback"), mk("invoke"))
	if err := p.Run(context.Background(), &State{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := []string{"enrich", "init", "feedback", "invoke"}
	if fmt.Sprint(order) != fmt.Sprint(want) {
		t.Fatalf("order %v want %v", order, want)
	}
}

func TestPipelineStopsOnError(t *testing.T) {
	ran := false
	p := NewPipeline(
		Stage{Name: "first", Run: func(context.Context, *State) error { return errors.New("boom") }},
		Stage{Name: "second", Run: func(context.Context, *State) error { ran = true; return nil }},
	)
	err := p.Run(context.Background(), &State{})
	if err == nil || ran {
		t.Fatalf("pipeline must stop at the failing stage (err=%v ran=%v)", err, ran)
	}
}

func TestSessionCeiling(t *testing.T) {
	s := NewSession(2)
	for i := 0; i < 2; i++ {
		if err := s.Begin(); err != nil {
			t.Fatalf("round %d should be allowed: %v", i+1, err)
		}
		s.Complete()
	}
	if s.Attempts() != 2 || !s.Exhausted() {
		t.Fatalf("unexpected session state: attempts=%d", s.Attempts())
	}
	if err := s.Begin(); !errors.Is(err, ErrAttemptsExhausted) {
		t.Fatalf("want ErrAttemptsExhausted, got %v", err)
	}
	// The counter never exceeds the ceiling even on a stray Complete.
	s.Complete()
	if s.Attempts() != 2 {
		t.Fatalf("attempts exceeded ceiling: %d", s.Attempts())
	}
}

func TestResumeSessionCountsAssistantTurns(t *testing.T) {
	msgs := []llm.Message{
		{Role: "system", Content: "s"},
		{Role: "user", Content: "u"},
		{Role: "assistant", Content: "a1"},
		{Role: "user", Content: "fb"},
		{Role: "assistant", Content: "a2"},
	}
	s := ResumeSession(5, msgs)
	if s.Attempts() != 2 {
		t.Fatalf("want 2 resumed attempts, got %d", s.Attempts())
	}
	if err := s.Begin(); err != nil {
		t.Fatalf("round 3 of 5 should be allowed: %v", err)
	}

	s = ResumeSession(2, msgs)
	if !s.Exhausted() {
		t.Fatalf("two assistant turns must exhaust a 2-attempt session")
	}
	if err := s.Begin(); !errors.Is(err, ErrAttemptsExhausted) {
		t.Fatalf("want ErrAttemptsExhausted, got %v", err)
	}
}
