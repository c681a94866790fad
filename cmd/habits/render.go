package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"habits/internal/core"
	"habits/internal/ledger"
)

const barWidth = 20

// renderToday prints the date header, every habit and today's progress.
func renderToday(w io.Writer, l *ledger.Ledger) {
	cal := l.Calendar()
	fmt.Fprintln(w, titleStyle.Render(cal.Now().Format("Monday, January 2, 2006")))
	fmt.Fprintln(w)

	habits := l.Habits()
	if len(habits) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No habits yet. Add your first healthy habit with `habits add <name>`! 🎯"))
	}
	for _, h := range habits {
		fmt.Fprintln(w, habitLine(h, cal))
	}

	p := l.Today()
	fmt.Fprintln(w)
	fmt.Fprintln(w, progressBar(p))
	fmt.Fprintln(w, core.Motivation(p))
}

// habitLine renders one habit: checkbox, name, streak, id and age.
func habitLine(h core.Habit, cal core.Calendar) string {
	box := "[ ]"
	name := h.Name
	if h.Completed {
		box = doneStyle.Render("[x]")
		name = doneStyle.Render(name)
	}
	streak := streakStyle.Render(fmt.Sprintf("🔥 %d day streak", h.Streak))
	meta := mutedStyle.Render(fmt.Sprintf("#%d · added %s", h.ID, addedAgo(h.CreatedDate, cal)))
	return fmt.Sprintf("%s %s  %s  %s", box, name, streak, meta)
}

// addedAgo describes how long ago a habit was created, in whole days.
func addedAgo(created string, cal core.Calendar) string {
	if created == "" {
		return "some time ago"
	}
	if created == cal.Today() {
		return "today"
	}
	then, err := cal.ParseDate(created)
	if err != nil {
		return created
	}
	today, err := cal.ParseDate(cal.Today())
	if err != nil {
		return created
	}
	return humanize.RelTime(then, today, "ago", "from now")
}

// progressBar draws p as a fixed-width bar followed by the percentage.
func progressBar(p core.Progress) string {
	filled := p.Percent * barWidth / 100
	bar := barStyle.Render(strings.Repeat("█", filled)) + mutedStyle.Render(strings.Repeat("░", barWidth-filled))
	return fmt.Sprintf("%s %3d%%", bar, p.Percent)
}

// renderWeek prints one box per day with its status glyph; today's box is
// highlighted.
func renderWeek(w io.Writer, days []ledger.DayView) {
	boxes := make([]string, 0, len(days))
	for _, d := range days {
		style := dayBoxStyle
		if d.IsToday {
			style = todayBoxStyle
		}
		boxes = append(boxes, style.Render(lipgloss.JoinVertical(lipgloss.Center, d.Weekday, d.Display, d.Status.Symbol())))
	}
	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	fmt.Fprintln(w, mutedStyle.Render("✅ all done  🟡 partial  ❌ missed  ⚪ not tracked"))
}

// renderDay prints the drill-down for one date.
func renderDay(w io.Writer, date time.Time, d ledger.DayDetail) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s, %d/%d", date.Format("Mon"), int(date.Month()), date.Day())))
	fmt.Fprintln(w, progressBar(d.Progress))
	fmt.Fprintln(w, d.Text)
	if !d.HasData {
		fmt.Fprintln(w, mutedStyle.Render("No habit data available for this day 📅"))
		return
	}
	fmt.Fprintln(w)
	for _, e := range d.Snapshot {
		icon := "❌"
		if e.Completed {
			icon = "✅"
		}
		fmt.Fprintf(w, "%s %s  %s\n", icon, e.Name, streakStyle.Render(fmt.Sprintf("🔥 %d", e.Streak)))
	}
}
