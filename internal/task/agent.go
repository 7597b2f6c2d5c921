package task

import (
	"context"
	"fmt"
	"log"

	"calendar-assistant/internal/llm"
	"calendar-assistant/internal/workflow"
)

const parseFailedTitle = "Не удалось сгенерировать название задачи"

// Agent runs the task generation pipeline. Tasks carry no external
// enrichment, so the pipeline is init → fold feedback → call model.
type Agent struct {
	llm llm.Client
}

func NewAgent(llmClient llm.Client) *Agent {
	return &Agent{llm: llmClient}
}

func (a *Agent) ProcessRequest(ctx context.Context, p *Payload) (*Payload, error) {
	out := *p
	st := workflow.State{
		Messages:    out.Messages,
		FinalOutput: out.FinalOutput,
		Feedback:    out.UserFeedback,
	}

	pipe := workflow.NewPipeline(
		workflow.Stage{Name: "init_conversation", Run: func(_ context.Context, s *workflow.State) error {
			workflow.Initialize(s, buildSystemPrompt(out.TaskData), out.TaskData.Prompt)
			return nil
		}},
		workflow.Stage{Name: "process_feedback", Run: func(_ context.Context, s *workflow.State) error {
			workflow.FoldFeedback(s, feedbackInstruction)
			return nil
		}},
		workflow.Stage{Name: "call_agent", Run: func(ctx context.Context, s *workflow.State) error {
			return workflow.Invoke(ctx, s, a.llm, parseOutput)
		}},
	)

	if err := pipe.Run(ctx, &st); err != nil {
		return nil, fmt.Errorf("task workflow: %w", err)
	}

	out.Messages = st.Messages
	out.FinalOutput = st.FinalOutput
	out.UserFeedback = ""
	return &out, nil
}

func parseOutput(content string) *workflow.Output {
	if out, ok := workflow.ParseTagged(content); ok {
		return &out
	}
	log.Printf("failed to parse model response, returning raw completion")
	return &workflow.Output{Title: parseFailedTitle, Description: content}
}
