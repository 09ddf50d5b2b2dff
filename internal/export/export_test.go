package export_test

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"todopro/internal/export"
	"todopro/internal/model"

	"github.com/stretchr/testify/assert"
)

var exportNow = time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC)

func TestBuild_DropsInvalidTasks(t *testing.T) {
	tasks := []model.Task{
		{ID: "1", Title: "kept"},
		{ID: "", Title: "no id"},
		{ID: "3", Title: ""},
	}

	doc := export.Build(tasks, nil, nil, exportNow)

	assert.Len(t, doc.Tasks, 1)
	assert.Equal(t, "kept", doc.Tasks[0].Title)
	assert.Equal(t, "2024-03-01T18:30:00Z", doc.ExportInfo.ExportDate)
	assert.Equal(t, "TodoPro Dashboard", doc.ExportInfo.ExportedBy)
	assert.Equal(t, "1.0.0", doc.ExportInfo.Version)
}

func TestBuild_NilSlicesSerializeAsEmptyArrays(t *testing.T) {
	doc := export.Build(nil, nil, nil, exportNow)

	raw, err := json.Marshal(doc)

	assert.NoError(t, err)
	assert.Contains(t, string(raw), `"tasks":[]`)
	assert.Contains(t, string(raw), `"reminders":[]`)
	assert.Contains(t, string(raw), `"notes":[]`)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "todopro-export-2024-03-01.json", export.FileName("todopro", exportNow))
}

func TestWrite_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	doc := export.Build(
		[]model.Task{{ID: "1", Title: "backup me"}},
		[]model.Reminder{{ID: "r1", Title: "remind"}},
		[]model.Note{{ID: "n1", Title: "note"}},
		exportNow,
	)

	path, err := export.Write(dir, "todopro", doc, exportNow)

	assert.NoError(t, err)
	assert.Contains(t, path, "todopro-export-2024-03-01.json")

	raw, err := os.ReadFile(path)
	assert.NoError(t, err)

	var got export.Document
	assert.NoError(t, json.Unmarshal(raw, &got))
	assert.Len(t, got.Tasks, 1)
	assert.Len(t, got.Reminders, 1)
	assert.Len(t, got.Notes, 1)
	assert.Equal(t, doc.ExportInfo, got.ExportInfo)
}
