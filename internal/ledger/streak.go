package ledger

import (
	"context"
	"fmt"

	"habits/internal/core"
	applog "habits/internal/log"
)

// ToggleCompletion flips the completion flag of a habit. Completing a habit
// extends its streak when it was last completed yesterday, keeps it when it
// was already completed today and restarts it at 1 otherwise. Unchecking
// only clears the flag: it is a correction, not a missed day.
//
// An unknown id returns core.ErrHabitNotFound without touching the ledger.
func (l *Ledger) ToggleCompletion(ctx context.Context, id int64) (core.Habit, error) {
	i := l.indexOf(id)
	if i < 0 {
		return core.Habit{}, fmt.Errorf("toggle %d: %w", id, core.ErrHabitNotFound)
	}

	h := &l.habits[i]
	toggle(h, l.cal.Today(), l.cal.Yesterday())

	l.logger.WithComponent(applog.ComponentStreak).InfoContext(ctx, "Habit toggled",
		applog.NewFields().WithOperation(applog.OpToggle).WithHabit(h.ID, h.Name, h.Streak, h.Completed).ToSlice()...)

	return *h, l.commit(ctx)
}

func toggle(h *core.Habit, today, yesterday string) {
	h.Completed = !h.Completed
	if !h.Completed {
		return
	}
	switch h.LastCompletedDate {
	case yesterday:
		h.Streak++
	case today:
		// Completing stamps today, so this is only reached through data
		// written by another session on the same day.
	default:
		h.Streak = 1
	}
	h.LastCompletedDate = today
}

// RolloverDay clears completions that do not belong to today and resets
// streaks that were not extended yesterday. It runs once when a session
// starts; a session kept open past midnight is not rolled over again.
func (l *Ledger) RolloverDay(ctx context.Context) error {
	today, yesterday := l.cal.Today(), l.cal.Yesterday()

	cleared, broken := 0, 0
	for i := range l.habits {
		wasCompleted, hadStreak := l.habits[i].Completed, l.habits[i].Streak
		rollover(&l.habits[i], today, yesterday)
		if wasCompleted && !l.habits[i].Completed {
			cleared++
		}
		if hadStreak > 0 && l.habits[i].Streak == 0 {
			broken++
		}
	}

	l.logger.WithComponent(applog.ComponentStreak).InfoContext(ctx, "Day rolled over",
		applog.FieldOperation, applog.OpRollover,
		applog.FieldDate, today,
		"cleared", cleared,
		"streaks_reset", broken)

	return l.commit(ctx)
}

func rollover(h *core.Habit, today, yesterday string) {
	if h.LastCompletedDate == today {
		return
	}
	h.Completed = false
	if h.LastCompletedDate != yesterday {
		h.Streak = 0
	}
}
