package event

import (
	"fmt"
	"strings"

	"calendar-assistant/internal/llm"
	"calendar-assistant/internal/workflow"
)

// AddressOnline marks an event without a physical venue; weather
// enrichment is skipped for it.
const AddressOnline = "online"

// Data is the form data of one event generation job.
type Data struct {
	Date           string         `json:"date"`
	Time           string         `json:"time"`
	Address        string         `json:"address"`
	AdditionalInfo string         `json:"additional_info"`
	Prompt         string         `json:"prompt"`
	Style          workflow.Style `json:"style"`
}

// Payload is the job-file contract of the event helper. The same shape is
// read and written back; messages only grow between the two.
type Payload struct {
	EventData    Data             `json:"event_data"`
	Weather      *string          `json:"weather"`
	Messages     []llm.Message    `json:"messages"`
	FinalOutput  *workflow.Output `json:"final_output"`
	UserFeedback string           `json:"user_feedback,omitempty"`
}

// Summary renders the form data for logs, mirroring what the front-end
// shows the user before generation.
func (d Data) Summary() string {
	kind := "Офлайн"
	if d.Address == AddressOnline {
		kind = "Онлайн"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Дата: %s, Время: %s, Тип: %s, Стиль: %s", d.Date, d.Time, kind, workflow.StyleLabel(d.Style))
	if d.Address != AddressOnline && d.Address != "" {
		fmt.Fprintf(&b, ", Адрес: %s", d.Address)
	}
	return b.String()
}
