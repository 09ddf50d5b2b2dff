package view

import (
	"math"
	"sort"
	"time"

	"todopro/internal/model"
)

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// StartOfWeek returns the Sunday beginning the week containing t.
func StartOfWeek(t time.Time) time.Time {
	d := startOfDay(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// effectiveDay resolves the task's effective date. Tasks with unparsable
// dates report ok=false and are excluded from every date bucket.
func effectiveDay(t model.Task) (time.Time, bool) {
	d, err := t.EffectiveDate()
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

func sortByPriority(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].PriorityOrDefault().Weight() > tasks[j].PriorityOrDefault().Weight()
	})
}

// TasksForDay returns the tasks whose effective date falls on the given day,
// in input order.
func TasksForDay(tasks []model.Task, day time.Time) []model.Task {
	out := make([]model.Task, 0)
	for _, t := range tasks {
		d, ok := effectiveDay(t)
		if ok && sameDay(d, day) {
			out = append(out, t)
		}
	}
	return out
}

// WeekDay is one column of the week view.
type WeekDay struct {
	Date  time.Time
	Today bool
	Tasks []model.Task
}

// Week buckets tasks into the Sunday-start week containing ref, one entry per
// day, each day's tasks ordered by priority descending.
func Week(tasks []model.Task, ref, now time.Time) []WeekDay {
	start := StartOfWeek(ref)
	days := make([]WeekDay, 7)
	for i := range days {
		date := start.AddDate(0, 0, i)
		dayTasks := TasksForDay(tasks, date)
		sortByPriority(dayTasks)
		days[i] = WeekDay{
			Date:  date,
			Today: sameDay(date, now),
			Tasks: dayTasks,
		}
	}
	return days
}

// maxTasksPerCell caps how many tasks a month grid cell lists before
// collapsing the rest into an overflow count.
const maxTasksPerCell = 3

// MonthCell is one day of the month calendar grid.
type MonthCell struct {
	Date    time.Time
	InMonth bool
	Today   bool
	Tasks   []model.Task
	More    int
}

// MonthGrid lays out the calendar grid for the month containing ref: full
// covering weeks, so cells from adjacent months appear with InMonth false.
// Each cell lists at most three tasks by priority descending plus an overflow
// count. Today highlighting compares against the caller's now.
func MonthGrid(tasks []model.Task, ref, now time.Time) []MonthCell {
	monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)
	gridStart := StartOfWeek(monthStart)
	gridEnd := StartOfWeek(monthEnd).AddDate(0, 0, 6)

	var cells []MonthCell
	for date := gridStart; !date.After(gridEnd); date = date.AddDate(0, 0, 1) {
		dayTasks := TasksForDay(tasks, date)
		sortByPriority(dayTasks)

		more := 0
		if len(dayTasks) > maxTasksPerCell {
			more = len(dayTasks) - maxTasksPerCell
			dayTasks = dayTasks[:maxTasksPerCell]
		}
		cells = append(cells, MonthCell{
			Date:    date,
			InMonth: date.Month() == ref.Month() && date.Year() == ref.Year(),
			Today:   sameDay(date, now),
			Tasks:   dayTasks,
			More:    more,
		})
	}
	return cells
}

// MonthBucket summarizes one month of the year view.
type MonthBucket struct {
	Month          time.Month
	Label          string
	Total          int
	Completed      int
	InProgress     int
	Pending        int
	CompletionRate int
}

// YearByMonth buckets tasks into the 12 months of the given year by creation
// date (not effective date) and computes per-month status counts and a
// completion-rate percentage.
func YearByMonth(tasks []model.Task, year int) [12]MonthBucket {
	var months [12]MonthBucket
	for i := range months {
		m := time.Month(i + 1)
		months[i].Month = m
		months[i].Label = m.String()[:3]
	}
	for _, t := range tasks {
		created, err := model.ParseDate(t.CreatedAt)
		if err != nil || created.Year() != year {
			continue
		}
		b := &months[int(created.Month())-1]
		b.Total++
		switch t.Status {
		case model.StatusCompleted:
			b.Completed++
		case model.StatusInProgress:
			b.InProgress++
		case model.StatusPending:
			b.Pending++
		}
	}
	for i := range months {
		months[i].CompletionRate = ratePercent(months[i].Completed, months[i].Total)
	}
	return months
}

// IsOverdue reports whether the task has a due date strictly before the start
// of the reference day and is not completed. It is independent of whatever
// bucket the task is rendered in.
func IsOverdue(t model.Task, now time.Time) bool {
	if t.DueDate == "" || t.Status == model.StatusCompleted {
		return false
	}
	due, err := model.ParseDate(t.DueDate)
	if err != nil {
		return false
	}
	return due.Before(startOfDay(now))
}

// ratePercent is round-half-up of completed/total as a percentage, 0 when
// total is 0.
func ratePercent(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
