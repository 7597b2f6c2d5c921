package task

import (
	"context"
	"strings"
	"testing"

	"calendar-assistant/internal/llm"
	"calendar-assistant/internal/workflow"
)

type fakeLLM struct {
	reply string
	calls [][]llm.Message
}

func (f *fakeLLM) Generate(_ context.Context, messages []llm.Message) (llm.Response, error) {
	cp := make([]llm.Message, len(messages))
	copy(cp, messages)
	f.calls = append(f.calls, cp)
	return llm.Response{Content: f.reply, Model: "fake"}, nil
}

func testData(allDay bool) Data {
	return Data{
		StartDate:      "2024-04-01",
		StartTime:      "09:00",
		EndDate:        "2024-04-02",
		EndTime:        "18:00",
		AllDay:         allDay,
		AdditionalInfo: "ответственный: Ирина",
		Prompt:         "подготовить квартальный отчет",
		Style:          workflow.Style{Brief: false, Formal: true},
	}
}

func TestFirstRound(t *testing.T) {
	model := &fakeLLM{reply: "[NAME] Подготовить отчет\n[DESCRIPTION] Собрать цифры за квартал."}
	agent := NewAgent(model)

	out, err := agent.ProcessRequest(context.Background(), &Payload{TaskData: testData(false)})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(out.Messages) != 3 {
		t.Fatalf("want system+user+assistant, got %d", len(out.Messages))
	}
	sys := out.Messages[0].Content
	if !strings.Contains(sys, "Начало: 2024-04-01 09:00") || !strings.Contains(sys, "Окончание: 2024-04-02 18:00") {
		t.Fatalf("time block missing from prompt:\n%s", sys)
	}
	if out.FinalOutput == nil || out.FinalOutput.Title != "Подготовить отчет" {
		t.Fatalf("unexpected output: %+v", out.FinalOutput)
	}
}

func TestAllDayTimeBlock(t *testing.T) {
	model := &fakeLLM{reply: "[NAME] T\n[DESCRIPTION] D"}
	out, err := NewAgent(model).ProcessRequest(context.Background(), &Payload{TaskData: testData(true)})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	sys := out.Messages[0].Content
	if !strings.Contains(sys, "Весь день: 2024-04-01") {
		t.Fatalf("all-day time block missing:\n%s", sys)
	}
	if strings.Contains(sys, "Окончание") {
		t.Fatalf("all-day prompt must not carry an end timestamp")
	}
}

func TestStyleDescriptionMatrix(t *testing.T) {
	tests := []struct {
		style workflow.Style
		want  string
	}{
		{workflow.Style{Brief: true, Formal: true}, "Краткое и официальное описание"},
		{workflow.Style{Brief: true, Formal: false}, "Краткое и неформальное (но профессиональное) описание"},
		{workflow.Style{Brief: false, Formal: true}, "Подробное и официальное описание"},
		{workflow.Style{Brief: false, Formal: false}, "Подробное и неформальное (но профессиональное) описание"},
	}
	for _, tt := range tests {
		if got := styleDescription(tt.style); got != tt.want {
			t.Errorf("style %+v: got %q want %q", tt.style, got, tt.want)
		}
	}
}

func TestFeedbackRound(t *testing.T) {
	model := &fakeLLM{reply: "[NAME] Новое\n[DESCRIPTION] Исправлено."}
	agent := NewAgent(model)

	p := &Payload{
		TaskData: testData(false),
		Messages: []llm.Message{
			{Role: "system", Content: "s"},
			{Role: "user", Content: "u"},
			{Role: "assistant", Content: "прошлый ответ"},
		},
		FinalOutput:  &workflow.Output{Title: "Старое"},
		UserFeedback: "добавь сроки",
	}
	out, err := agent.ProcessRequest(context.Background(), p)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(model.calls[0]) != 4 {
		t.Fatalf("model saw %d messages, want 4", len(model.calls[0]))
	}
	if !strings.Contains(model.calls[0][3].Content, "добавь сроки") {
		t.Fatalf("folded feedback missing")
	}
	if out.FinalOutput.Title != "Новое" || out.UserFeedback != "" {
		t.Fatalf("unexpected state after feedback round: %+v", out)
	}
}

func TestMalformedCompletionDegrades(t *testing.T) {
	model := &fakeLLM{reply: "нет тегов"}
	out, err := NewAgent(model).ProcessRequest(context.Background(), &Payload{TaskData: testData(false)})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if out.FinalOutput.Title != parseFailedTitle || out.FinalOutput.Description != "нет тегов" {
		t.Fatalf("unexpected degraded output: %+v", out.FinalOutput)
	}
}
