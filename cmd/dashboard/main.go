// Command dashboard renders a console snapshot of the task collection: it
// loads tasks through the remote-or-local fallback gateway, derives the
// dashboard statistics and board layout, and lists locally stored notes and
// reminders. With -export it also writes the JSON backup document.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"todopro/internal/config"
	"todopro/internal/export"
	"todopro/internal/gateway"
	"todopro/internal/localstore"
	"todopro/internal/model"
	"todopro/internal/store"
	"todopro/internal/view"
)

func main() {
	doExport := flag.Bool("export", false, "write the backup document to the data directory")
	flag.Parse()

	cfg := config.Load()
	ctx := context.Background()
	now := time.Now()

	gw := gateway.NewFallback(gateway.NewRemote(cfg.APIBaseURL), gateway.NewLocal())
	taskStore := store.New(gw)
	if err := taskStore.Load(ctx); err != nil {
		log.Fatalf("❌ Failed to load tasks: %v", err)
	}
	tasks := taskStore.List()

	notesStore := localstore.NewNotesStore(cfg.DataDir)
	remindersStore := localstore.NewRemindersStore(cfg.DataDir)
	if err := notesStore.SeedIfEmpty(); err != nil {
		log.Printf("⚠️ Could not seed notes: %v", err)
	}
	if err := remindersStore.SeedIfEmpty(); err != nil {
		log.Printf("⚠️ Could not seed reminders: %v", err)
	}
	notes, _ := notesStore.LoadAll()
	reminders, _ := remindersStore.LoadAll()

	summary := view.Aggregate(tasks, now)
	board := view.GroupBoard(tasks, nil)

	fmt.Printf("TodoPro — %s\n\n", now.Format("Mon, 02 Jan 2006"))

	fmt.Printf("Tasks: %d total, %d completed, %d in progress, %d pending\n",
		len(tasks),
		summary.StatusCounts[model.StatusCompleted],
		summary.StatusCounts[model.StatusInProgress],
		summary.StatusCounts[model.StatusPending],
	)

	fmt.Println("\nBoard:")
	for _, status := range []model.Status{model.StatusPending, model.StatusInProgress, model.StatusCompleted} {
		fmt.Printf("  %-12s %d groups\n", status, len(board[status]))
	}

	fmt.Println("\nDeadlines:")
	for _, bucket := range summary.DeadlineBuckets {
		if bucket.Count == 0 {
			continue
		}
		fmt.Printf("  %-14s %d\n", bucket.Name, bucket.Count)
		for _, dt := range bucket.Tasks {
			fmt.Printf("    - %s (%s)\n", dt.Title, dt.Priority)
		}
	}

	if len(summary.Insights) > 0 {
		fmt.Println("\nInsights:")
		for _, msg := range summary.Insights {
			fmt.Printf("  %s\n", msg)
		}
	}

	fmt.Printf("\nReminders: %d   Notes: %d\n", len(reminders), len(notes))

	if *doExport {
		doc := export.Build(tasks, reminders, notes, now)
		path, err := export.Write(cfg.DataDir, "todopro", doc, now)
		if err != nil {
			log.Fatalf("❌ Export failed: %v", err)
		}
		log.Printf("✅ Exported to %s", path)
	}
}
