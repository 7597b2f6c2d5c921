package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"calendar-assistant/internal/config"
	"calendar-assistant/internal/greeting"
	"calendar-assistant/internal/llm"
	"calendar-assistant/internal/scheduler"
	"calendar-assistant/internal/search"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	factory := &llm.Factory{
		APIKey:           cfg.GeminiAPIKey,
		BaseURL:          cfg.LLMBaseURL,
		YandexOAuthToken: cfg.YandexOAuthToken,
		YandexFolderID:   cfg.YandexFolderID,
	}
	client, err := factory.CreateClient(cfg.LLMProvider, cfg.LLMModel, cfg.GreetingTemperature)
	if err != nil {
		log.Fatalf("failed to create llm client: %v", err)
	}

	gen := greeting.NewGenerator(client, search.NewTavily(cfg.TavilyAPIKey, cfg.SearchMaxResults))

	sched := scheduler.New(cfg.GreetingCron)
	sched.SetGreetingFunction(func(ctx context.Context) error {
		return writeGreeting(ctx, gen, cfg.GreetingOutputPath)
	})
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	sched.Stop()
}

// writeGreeting generates the greeting for the current moment and writes
// it atomically to the output path.
func writeGreeting(ctx context.Context, gen *greeting.Generator, path string) error {
	now := time.Now().UTC()
	payload := greeting.Payload{
		Date: now.Format("2006-01-02"),
		Time: now.Format("15:04"),
	}
	text, err := gen.Generate(ctx, payload.Date, payload.Time)
	if err != nil {
		return err
	}
	payload.Greeting = text

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal greeting: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure output dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write greeting: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("publish greeting: %w", err)
	}
	log.Printf("greeting written to %s", path)
	return nil
}
