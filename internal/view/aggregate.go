package view

import (
	"fmt"
	"math"
	"sort"
	"time"

	"todopro/internal/model"
)

// TrendPoint is one day of the task-creation trend line.
type TrendPoint struct {
	Date  string
	Label string
	Count int
}

// HeatmapDay is one cell of the 35-day activity heatmap.
type HeatmapDay struct {
	Date      string
	Label     string
	Weekday   string
	Count     int
	Completed int
	Intensity float64
}

// CategoryPerformance ranks a category by completion rate.
type CategoryPerformance struct {
	Category  string
	Total     int
	Completed int
	Rate      int
	Remaining int
}

// DeadlineTask is one entry of a deadline bucket.
type DeadlineTask struct {
	Title    string
	Days     int
	Priority model.Priority
}

// DeadlineBucket groups open tasks by how close their due date is.
type DeadlineBucket struct {
	Name  string
	Count int
	Tasks []DeadlineTask
}

// Deadline bucket names, in fixed output order.
const (
	BucketOverdue     = "Overdue"
	BucketDueToday    = "Due Today"
	BucketDueSoon     = "Due Soon"
	BucketDueThisWeek = "Due This Week"
	BucketFuture      = "Future"
)

var deadlineBucketOrder = []string{
	BucketOverdue, BucketDueToday, BucketDueSoon, BucketDueThisWeek, BucketFuture,
}

// RadarMetric is one axis of the productivity radar, scored 0-100.
type RadarMetric struct {
	Metric string
	Value  int
}

// Summary is the complete dashboard payload derived from a task snapshot.
type Summary struct {
	StatusCounts        map[model.Status]int
	PriorityCounts      map[model.Priority]int
	CategoryCounts      map[string]int
	Trend               []TrendPoint
	Heatmap             []HeatmapDay
	CategoryPerformance []CategoryPerformance
	DeadlineBuckets     []DeadlineBucket
	Radar               []RadarMetric
	Insights            []string
}

const (
	trendDays   = 7
	heatmapDays = 35
	maxInsights = 3
)

// Aggregate computes every dashboard statistic from the task snapshot.
// It is pure: same tasks and now always yield identical output. Tasks
// missing an id or title are ignored throughout.
func Aggregate(tasks []model.Task, now time.Time) Summary {
	valid := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.IsValidRecord() {
			valid = append(valid, t)
		}
	}

	s := Summary{
		StatusCounts:   make(map[model.Status]int),
		PriorityCounts: make(map[model.Priority]int),
		CategoryCounts: make(map[string]int),
	}
	for _, t := range valid {
		s.StatusCounts[t.StatusOrDefault()]++
		s.PriorityCounts[t.PriorityOrDefault()]++
		s.CategoryCounts[t.CategoryOrDefault()]++
	}

	s.Trend = creationTrend(valid, now, trendDays)
	s.Heatmap = activityHeatmap(valid, now, heatmapDays)
	s.CategoryPerformance = categoryPerformance(valid, s.CategoryCounts)
	s.DeadlineBuckets = deadlineBuckets(valid, now)
	s.Radar = productivityRadar(valid, s, now)
	s.Insights = insights(valid, s, now)
	return s
}

// createdOn reports whether the task's creation date parses and falls on day.
func createdOn(t model.Task, day time.Time) bool {
	created, err := model.ParseDate(t.CreatedAt)
	return err == nil && sameDay(created, day)
}

func creationTrend(tasks []model.Task, now time.Time, days int) []TrendPoint {
	points := make([]TrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := startOfDay(now).AddDate(0, 0, -i)
		count := 0
		for _, t := range tasks {
			if createdOn(t, day) {
				count++
			}
		}
		points = append(points, TrendPoint{
			Date:  day.Format("2006-01-02"),
			Label: day.Format("Jan 02"),
			Count: count,
		})
	}
	return points
}

func activityHeatmap(tasks []model.Task, now time.Time, days int) []HeatmapDay {
	cells := make([]HeatmapDay, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := startOfDay(now).AddDate(0, 0, -i)
		count, completed := 0, 0
		for _, t := range tasks {
			if !createdOn(t, day) {
				continue
			}
			count++
			if t.Status == model.StatusCompleted {
				completed++
			}
		}
		cells = append(cells, HeatmapDay{
			Date:      day.Format("2006-01-02"),
			Label:     day.Format("Jan 02"),
			Weekday:   day.Format("Mon"),
			Count:     count,
			Completed: completed,
			Intensity: math.Min(float64(count)/3, 1),
		})
	}
	return cells
}

func categoryPerformance(tasks []model.Task, categoryCounts map[string]int) []CategoryPerformance {
	names := make([]string, 0, len(categoryCounts))
	for name := range categoryCounts {
		names = append(names, name)
	}
	sort.Strings(names)

	perf := make([]CategoryPerformance, 0, len(names))
	for _, name := range names {
		total := categoryCounts[name]
		completed := 0
		for _, t := range tasks {
			if t.CategoryOrDefault() == name && t.Status == model.StatusCompleted {
				completed++
			}
		}
		perf = append(perf, CategoryPerformance{
			Category:  name,
			Total:     total,
			Completed: completed,
			Rate:      ratePercent(completed, total),
			Remaining: total - completed,
		})
	}
	sort.SliceStable(perf, func(i, j int) bool { return perf[i].Rate > perf[j].Rate })
	return perf
}

// daysUntilDue is the ceiling of the time left until the due date in days;
// negative for overdue tasks.
func daysUntilDue(due, now time.Time) int {
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}

func deadlineBuckets(tasks []model.Task, now time.Time) []DeadlineBucket {
	byName := make(map[string]*DeadlineBucket, len(deadlineBucketOrder))
	buckets := make([]DeadlineBucket, len(deadlineBucketOrder))
	for i, name := range deadlineBucketOrder {
		buckets[i] = DeadlineBucket{Name: name, Tasks: []DeadlineTask{}}
		byName[name] = &buckets[i]
	}

	for _, t := range tasks {
		if t.DueDate == "" || t.Status == model.StatusCompleted {
			continue
		}
		due, err := model.ParseDate(t.DueDate)
		if err != nil {
			continue
		}
		days := daysUntilDue(due, now)

		name := BucketFuture
		switch {
		case days < 0:
			name = BucketOverdue
		case days == 0:
			name = BucketDueToday
		case days <= 3:
			name = BucketDueSoon
		case days <= 7:
			name = BucketDueThisWeek
		}
		b := byName[name]
		b.Count++
		b.Tasks = append(b.Tasks, DeadlineTask{Title: t.Title, Days: days, Priority: t.PriorityOrDefault()})
	}
	return buckets
}

func capScore(v int) int {
	if v > 100 {
		return 100
	}
	return v
}

func productivityRadar(tasks []model.Task, s Summary, now time.Time) []RadarMetric {
	completed := s.StatusCounts[model.StatusCompleted]

	overdue := 0
	for _, b := range s.DeadlineBuckets {
		if b.Name == BucketOverdue {
			overdue = b.Count
		}
	}

	weekAgo := now.AddDate(0, 0, -7)
	recent := 0
	for _, t := range tasks {
		created, err := model.ParseDate(t.CreatedAt)
		if err == nil && created.After(weekAgo) {
			recent++
		}
	}

	adherence := 100 - overdue*25
	if adherence < 0 {
		adherence = 0
	}

	return []RadarMetric{
		{Metric: "Task Creation", Value: capScore(len(tasks) * 10)},
		{Metric: "Completion Rate", Value: ratePercent(completed, len(tasks))},
		{Metric: "Priority Focus", Value: capScore(s.PriorityCounts[model.PriorityHigh] * 20)},
		{Metric: "Category Balance", Value: capScore(len(s.CategoryCounts) * 25)},
		{Metric: "Deadline Adherence", Value: adherence},
		{Metric: "Recent Activity", Value: capScore(recent * 15)},
	}
}

// Insight threshold rules, evaluated in fixed order; independent, capped at 3.
func insights(tasks []model.Task, s Summary, now time.Time) []string {
	var out []string
	add := func(msg string) {
		if len(out) < maxInsights {
			out = append(out, msg)
		}
	}

	completionRate := ratePercent(s.StatusCounts[model.StatusCompleted], len(tasks))
	if completionRate > 80 {
		add("🎉 Excellent! You have an 80%+ completion rate. Keep up the great work!")
	}
	if completionRate < 50 {
		add("⚡ Focus opportunity: Consider breaking down large tasks into smaller, manageable ones.")
	}

	if s.PriorityCounts[model.PriorityHigh] > 5 {
		add("🎯 You have many high-priority tasks. Consider tackling 2-3 at a time for better focus.")
	}

	threeDaysAgo := now.AddDate(0, 0, -3)
	recentlyCompleted := 0
	for _, t := range tasks {
		if t.Status != model.StatusCompleted || t.CompletedAt == "" {
			continue
		}
		done, err := model.ParseDate(t.CompletedAt)
		if err == nil && done.After(threeDaysAgo) {
			recentlyCompleted++
		}
	}
	if recentlyCompleted >= 4 {
		add("🚀 You're on fire! You've completed multiple tasks in the last 3 days.")
	}

	if len(s.CategoryCounts) > 1 {
		dominant, max := "", 0
		names := make([]string, 0, len(s.CategoryCounts))
		for name := range s.CategoryCounts {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if s.CategoryCounts[name] > max {
				dominant, max = name, s.CategoryCounts[name]
			}
		}
		if float64(max) > float64(len(tasks))*0.6 {
			add(fmt.Sprintf("📊 Most tasks are in %q. Consider diversifying your focus areas.", dominant))
		}
	}

	return out
}
