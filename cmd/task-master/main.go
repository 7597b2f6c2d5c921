package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"calendar-assistant/internal/config"
	"calendar-assistant/internal/llm"
	"calendar-assistant/internal/storage"
	"calendar-assistant/internal/task"
	"calendar-assistant/internal/workflow"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}
	if len(os.Args) != 2 {
		log.Fatalf("usage: task-master <input.json>")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if !run(os.Args[1], cfg) {
		os.Exit(1)
	}
}

func run(inputFile string, cfg *config.Config) bool {
	log.Printf("processing job file: %s", inputFile)
	data, err := os.ReadFile(inputFile)
	if err != nil {
		log.Printf("job file not found: %v", err)
		return false
	}
	var payload task.Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		log.Printf("malformed JSON in %s: %v", inputFile, err)
		return false
	}
	if payload.TaskData.StartDate == "" || payload.TaskData.Prompt == "" {
		log.Printf("missing required task fields (start_date, prompt)")
		return false
	}

	sess := workflow.ResumeSession(cfg.MaxAttempts, payload.Messages)
	if err := sess.Begin(); err != nil {
		log.Printf("refusing feedback round: %v", err)
		return writeJSON(inputFile, workflow.ErrorPayload{
			Error:     "Достигнуто максимальное количество попыток",
			InputData: data,
		})
	}

	factory := &llm.Factory{
		APIKey:           cfg.GeminiAPIKey,
		BaseURL:          cfg.LLMBaseURL,
		YandexOAuthToken: cfg.YandexOAuthToken,
		YandexFolderID:   cfg.YandexFolderID,
	}
	client, err := factory.CreateClient(cfg.LLMProvider, cfg.LLMModel, cfg.GenTemperature)
	if err != nil {
		log.Printf("failed to create llm client: %v", err)
		return false
	}

	agent := task.NewAgent(client)
	result, err := agent.ProcessRequest(context.Background(), &payload)
	if err != nil {
		log.Printf("workflow failed: %v", err)
		return writeJSON(inputFile, workflow.ErrorPayload{
			Error:     fmt.Sprintf("Ошибка обработки запроса задачи: %v", err),
			InputData: data,
		})
	}
	sess.Complete()
	record(cfg, result)

	log.Printf("task generated (attempt %d/%d)", sess.Attempts(), cfg.MaxAttempts)
	return writeJSON(inputFile, result)
}

func record(cfg *config.Config, p *task.Payload) {
	if cfg.LogFilePath == "" || p.FinalOutput == nil {
		return
	}
	rec, err := storage.NewFileRecorder(cfg.LogFilePath)
	if err != nil {
		log.Printf("failed to init file recorder: %v", err)
		return
	}
	err = rec.AppendGeneration(storage.Record{
		Timestamp:   time.Now().UTC(),
		Service:     "task",
		UserPrompt:  p.TaskData.Prompt,
		Title:       p.FinalOutput.Title,
		Description: p.FinalOutput.Description,
	})
	if err != nil {
		log.Printf("failed to record generation: %v", err)
	}
}

func writeJSON(path string, v any) bool {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Printf("failed to marshal result: %v", err)
		return false
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		log.Printf("failed to write result: %v", err)
		return false
	}
	log.Printf("result saved to %s", path)
	return true
}
