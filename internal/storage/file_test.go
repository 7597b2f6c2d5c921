package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileRecorder_AppendAndLoad(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "generations.jsonl")
	rec, err := NewFileRecorder(p)
	if err != nil {
		t.Fatalf("init recorder: %v", err)
	}

	r1 := Record{Timestamp: time.Unix(1, 0).UTC(), Service: "event", UserPrompt: "встреча", Title: "T1", Description: "D1"}
	r2 := Record{Timestamp: time.Unix(2, 0).UTC(), Service: "greeting", Description: "Доброе утро!"}
	if err := rec.AppendGeneration(r1); err != nil {
		t.Fatalf("append1: %v", err)
	}
	if err := rec.AppendGeneration(r2); err != nil {
		t.Fatalf("append2: %v", err)
	}

	records, err := rec.LoadGenerations()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("want 2, got %d", len(records))
	}
	if records[0].Service != "event" || records[1].Service != "greeting" {
		t.Fatalf("order mismatch: %+v", records)
	}
	if records[0].Title != "T1" || records[1].Description != "Доброе утро!" {
		t.Fatalf("fields lost: %+v", records)
	}

	// ensure file exists and non-empty
	st, err := os.Stat(p)
	if err != nil || st.Size() == 0 {
		t.Fatalf("file not written")
	}
}

func TestFileRecorder_SkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "generations.jsonl")
	data := "{\"service\":\"event\",\"description\":\"ok\"}\nnot json\n\n{\"service\":\"task\",\"description\":\"ok2\"}\n"
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	rec, err := NewFileRecorder(p)
	if err != nil {
		t.Fatalf("init recorder: %v", err)
	}
	records, err := rec.LoadGenerations()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("malformed lines must be skipped, got %d records", len(records))
	}
}
