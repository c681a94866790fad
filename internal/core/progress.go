package core

import "math"

// Progress is the completion ratio of a set of habits.
type Progress struct {
	Completed int
	Total     int
	Percent   int // rounded, 0-100
}

// NewProgress computes the rounded completion percentage.
func NewProgress(completed, total int) Progress {
	p := Progress{Completed: completed, Total: total}
	if total > 0 {
		p.Percent = int(math.Round(float64(completed) / float64(total) * 100))
	}
	return p
}

// ProgressOf computes progress over the given habits.
func ProgressOf(habits []Habit) Progress {
	done := 0
	for _, h := range habits {
		if h.Completed {
			done++
		}
	}
	return NewProgress(done, len(habits))
}

// Motivation returns the encouragement line shown under the progress bar.
func Motivation(p Progress) string {
	switch {
	case p.Total == 0:
		return "Start your journey today! 💪"
	case p.Percent == 0:
		return "Let's get started! You can do this! 💪"
	case p.Percent < 50:
		return "Good start! Keep going! 🌱"
	case p.Percent < 100:
		return "Almost there! You're doing great! 🌟"
	default:
		return "Perfect day! You're a superstar! 🎉"
	}
}
