package event

import (
	"context"
	"fmt"
	"log"

	"calendar-assistant/internal/llm"
	"calendar-assistant/internal/search"
	"calendar-assistant/internal/workflow"
)

const parseFailedTitle = "Не удалось сгенерировать название"

// Agent runs the event generation pipeline:
// weather → init conversation → fold feedback → call model.
type Agent struct {
	llm    llm.Client
	search search.Client
}

func NewAgent(llmClient llm.Client, searchClient search.Client) *Agent {
	return &Agent{llm: llmClient, search: searchClient}
}

// ProcessRequest runs one generation round over the payload and returns
// the updated payload. On error no partial state is returned.
func (a *Agent) ProcessRequest(ctx context.Context, p *Payload) (*Payload, error) {
	out := *p
	st := workflow.State{
		Messages:    out.Messages,
		FinalOutput: out.FinalOutput,
		Feedback:    out.UserFeedback,
	}

	pipe := workflow.NewPipeline(
		workflow.Stage{Name: "get_weather", Run: func(ctx context.Context, _ *workflow.State) error {
			a.fetchWeather(ctx, &out)
			return nil
		}},
		workflow.Stage{Name: "init_conversation", Run: func(_ context.Context, s *workflow.State) error {
			weather := ""
			if out.Weather != nil {
				weather = *out.Weather
			}
			workflow.Initialize(s, buildSystemPrompt(out.EventData, weather), out.EventData.Prompt)
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
		return nil, fmt.Errorf("event workflow: %w", err)
	}

	out.Messages = st.Messages
	out.FinalOutput = st.FinalOutput
	out.UserFeedback = ""
	return &out, nil
}

// fetchWeather is best-effort: a search failure becomes a readable
// placeholder instead of aborting the pipeline. Once present the forecast
// is reused for every later round.
func (a *Agent) fetchWeather(ctx context.Context, p *Payload) {
	if p.EventData.Address == AddressOnline {
		return
	}
	if p.Weather != nil && *p.Weather != "" {
		return
	}
	log.Printf("fetching weather forecast for %q", p.EventData.Address)
	query := fmt.Sprintf("%s, %s, %s прогноз погоды", p.EventData.Date, p.EventData.Time, p.EventData.Address)
	results, err := a.search.Search(ctx, query)
	if err != nil {
		log.Printf("weather lookup failed: %v", err)
		placeholder := fmt.Sprintf("Не удалось получить прогноз погоды: %v", err)
		p.Weather = &placeholder
		return
	}
	summary := search.Summarize(results, 0)
	p.Weather = &summary
}

func parseOutput(content string) *workflow.Output {
	if out, ok := workflow.ParseTagged(content); ok {
		return &out
	}
	log.Printf("failed to parse model response, returning raw completion")
	return &workflow.Output{Title: parseFailedTitle, Description: content}
}
