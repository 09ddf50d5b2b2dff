// Package export builds the downloadable backup document covering tasks,
// reminders and notes.
package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"todopro/internal/model"
)

const (
	version    = "1.0.0"
	exportedBy = "TodoPro Dashboard"
)

type Info struct {
	ExportDate string `json:"exportDate"`
	ExportedBy string `json:"exportedBy"`
	Version    string `json:"version"`
}

type Document struct {
	ExportInfo Info             `json:"exportInfo"`
	Tasks      []model.Task     `json:"tasks"`
	Reminders  []model.Reminder `json:"reminders"`
	Notes      []model.Note     `json:"notes"`
}

// Build assembles the export document. Tasks missing an id or title are
// dropped, matching what the views show.
func Build(tasks []model.Task, reminders []model.Reminder, notes []model.Note, now time.Time) Document {
	valid := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.IsValidRecord() {
			valid = append(valid, t)
		}
	}
	if reminders == nil {
		reminders = []model.Reminder{}
	}
	if notes == nil {
		notes = []model.Note{}
	}
	return Document{
		ExportInfo: Info{
			ExportDate: now.UTC().Format(time.RFC3339),
			ExportedBy: exportedBy,
			Version:    version,
		},
		Tasks:     valid,
		Reminders: reminders,
		Notes:     notes,
	}
}

// FileName names the export file after the prefix and the export day, e.g.
// "todopro-export-2024-03-01.json".
func FileName(prefix string, now time.Time) string {
	return prefix + "-export-" + now.UTC().Format("2006-01-02") + ".json"
}

// Write serializes the document into dir under its export file name and
// returns the written path.
func Write(dir, prefix string, doc Document, now time.Time) (string, error) {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName(prefix, now))
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
