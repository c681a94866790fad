package ledger

import (
	"fmt"
	"slices"

	"habits/internal/core"
)

// DayView is one cell of the history grid.
type DayView struct {
	core.DayInfo
	Summary core.DaySummary
	Tracked bool // a summary was recorded for the day
	Status  core.DayStatus
	IsToday bool
}

// DayDetail is the drill-down of a single date.
type DayDetail struct {
	Date     string
	Summary  core.DaySummary
	Snapshot core.DaySnapshot
	HasData  bool
	Progress core.Progress
	Text     string
}

// RecordToday overwrites today's summary and snapshot with the current
// state of every habit.
func (l *Ledger) RecordToday() {
	today := l.cal.Today()
	snapshot := make(core.DaySnapshot, 0, len(l.habits))
	completed := 0
	for _, h := range l.habits {
		if h.Completed {
			completed++
		}
		snapshot = append(snapshot, core.SnapshotEntry{
			Name:      h.Name,
			Completed: h.Completed,
			Streak:    h.Streak,
		})
	}
	l.summaries[today] = core.DaySummary{Total: len(l.habits), Completed: completed}
	l.snapshots[today] = snapshot
}

// SummaryFor returns the summary recorded for date.
func (l *Ledger) SummaryFor(date string) (core.DaySummary, bool) {
	s, ok := l.summaries[date]
	return s, ok
}

// DetailFor returns a copy of the snapshot recorded for date.
func (l *Ledger) DetailFor(date string) (core.DaySnapshot, bool) {
	s, ok := l.snapshots[date]
	if !ok {
		return nil, false
	}
	return slices.Clone(s), true
}

// StatusFor classifies date from its recorded summary.
func (l *Ledger) StatusFor(date string) core.DayStatus {
	return core.Classify(l.SummaryFor(date))
}

// Week returns the last n days ending today with their status.
func (l *Ledger) Week(n int) []DayView {
	today := l.cal.Today()
	days := l.cal.LastNDays(n)
	views := make([]DayView, 0, len(days))
	for _, d := range days {
		s, ok := l.SummaryFor(d.Date)
		views = append(views, DayView{
			DayInfo: d,
			Summary: s,
			Tracked: ok,
			Status:  core.Classify(s, ok),
			IsToday: d.Date == today,
		})
	}
	return views
}

// Today returns the completion progress of the current habits.
func (l *Ledger) Today() core.Progress {
	return core.ProgressOf(l.habits)
}

// Detail builds the drill-down for date.
func (l *Ledger) Detail(date string) DayDetail {
	d := DayDetail{Date: date}
	summary, hasSummary := l.SummaryFor(date)
	snapshot, hasSnapshot := l.DetailFor(date)
	if !hasSummary || !hasSnapshot || len(snapshot) == 0 {
		d.Text = "No habits tracked on this day."
		return d
	}
	d.Summary = summary
	d.Snapshot = snapshot
	d.HasData = true
	d.Progress = core.NewProgress(summary.Completed, summary.Total)
	d.Text = fmt.Sprintf("%d out of %d habits completed", summary.Completed, summary.Total)
	return d
}
