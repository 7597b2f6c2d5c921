package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"calendar-assistant/internal/config"
	"calendar-assistant/internal/greeting"
	"calendar-assistant/internal/llm"
	"calendar-assistant/internal/search"
	"calendar-assistant/internal/storage"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}
	if len(os.Args) != 2 {
		log.Fatalf("usage: greeting-service <input.json>")
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
	var payload greeting.Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		log.Printf("malformed JSON in %s: %v", inputFile, err)
		return false
	}
	if payload.Date == "" || payload.Time == "" {
		log.Printf("missing required fields: date, time")
		return false
	}

	factory := &llm.Factory{
		APIKey:           cfg.GeminiAPIKey,
		BaseURL:          cfg.LLMBaseURL,
		YandexOAuthToken: cfg.YandexOAuthToken,
		YandexFolderID:   cfg.YandexFolderID,
	}
	client, err := factory.CreateClient(cfg.LLMProvider, cfg.LLMModel, cfg.GreetingTemperature)
	if err != nil {
		log.Printf("failed to create llm client: %v", err)
		return false
	}

	gen := greeting.NewGenerator(client, search.NewTavily(cfg.TavilyAPIKey, cfg.SearchMaxResults))
	text, err := gen.Generate(context.Background(), payload.Date, payload.Time)
	if err != nil {
		log.Printf("greeting generation failed: %v", err)
		return false
	}
	payload.Greeting = text
	record(cfg, text)

	log.Printf("greeting generated: %s", text)
	return writeJSON(inputFile, payload)
}

func record(cfg *config.Config, text string) {
	if cfg.LogFilePath == "" {
		return
	}
	rec, err := storage.NewFileRecorder(cfg.LogFilePath)
	if err != nil {
		log.Printf("failed to init file recorder: %v", err)
		return
	}
	err = rec.AppendGeneration(storage.Record{
		Timestamp:   time.Now().UTC(),
		Service:     "greeting",
		Description: text,
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
