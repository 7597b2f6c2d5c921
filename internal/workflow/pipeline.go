package workflow

import (
	"context"
	"encoding/json"
	"fmt"
)

// Stage is one step of the generation pipeline. Stages run in the order
// they were registered; the first error aborts the run and no partial
// state is surfaced to the caller.
type Stage struct {
	Name string
	Run  func(ctx context.Context, s *State) error
}

type Pipeline struct {
	stages []Stage
}

func NewPipeline(stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

func (p *Pipeline) Run(ctx context.Context, s *State) error {
	for _, st := range p.stages {
		if err := st.Run(ctx, s); err != nil {
			return fmt.Errorf("stage %s: %w", st.Name, err)
		}
	}
	return nil
}

// ErrorPayload is what gets written back when the pipeline fails: the
// error plus the untouched input, so the caller can restart from it.
type ErrorPayload struct {
	Error     string          `json:"error"`
	InputData json.RawMessage `json:"input_data,omitempty"`
}
