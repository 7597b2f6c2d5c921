package task

import (
	"calendar-assistant/internal/llm"
	"calendar-assistant/internal/workflow"
)

// Data is the form data of one task generation job.
type Data struct {
	StartDate      string         `json:"start_date"`
	StartTime      string         `json:"start_time"`
	EndDate        string         `json:"end_date"`
	EndTime        string         `json:"end_time"`
	AllDay         bool           `json:"all_day"`
	AdditionalInfo string         `json:"additional_info"`
	Prompt         string         `json:"prompt"`
	Style          workflow.Style `json:"style"`
}

// Payload is the job-file contract of the task master.
type Payload struct {
	TaskData     Data             `json:"task_data"`
	Messages     []llm.Message    `json:"messages"`
	FinalOutput  *workflow.Output `json:"final_output"`
	UserFeedback string           `json:"user_feedback,omitempty"`
}
