package core

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MinNameLength is the minimum number of characters in a trimmed habit name.
const MinNameLength = 3

const (
	NoneTracked DayStatus = "none-tracked"
	Complete    DayStatus = "complete"
	Partial     DayStatus = "partial"
	Missed      DayStatus = "missed"
)

type (
	// DayStatus classifies a day by how many of its habits were completed.
	DayStatus string

	Habit struct {
		ID                int64  `json:"id"`
		Name              string `json:"name"`
		Completed         bool   `json:"completed"`
		Streak            int    `json:"streak"`
		LastCompletedDate string `json:"lastCompletedDate,omitempty"` // empty when never completed
		CreatedDate       string `json:"createdDate"`
	}

	// DaySummary is the completion count recorded for one date.
	DaySummary struct {
		Total     int `json:"total"`
		Completed int `json:"completed"`
	}

	// SnapshotEntry is one habit's state inside a DaySnapshot.
	SnapshotEntry struct {
		Name      string `json:"name"`
		Completed bool   `json:"completed"`
		Streak    int    `json:"streak"`
	}

	// DaySnapshot is the latest known state of every habit on a date.
	DaySnapshot []SnapshotEntry
)

// Validation reasons reported by ValidationError.
const (
	ReasonRequired = "required"
	ReasonTooShort = "too_short"
)

var (
	ErrNameRequired  = &ValidationError{Reason: ReasonRequired, Message: "Please enter a habit name"}
	ErrNameTooShort  = &ValidationError{Reason: ReasonTooShort, Message: fmt.Sprintf("Habit name must be at least %d characters", MinNameLength)}
	ErrHabitNotFound = errors.New("habit not found")
)

// ValidationError reports a habit name that cannot be accepted.
// Its Message is meant to be shown to the user as is.
type ValidationError struct {
	Reason  string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is matches validation errors by reason so callers can use errors.Is
// against ErrNameRequired and ErrNameTooShort.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Reason == e.Reason
}

// StorageError wraps a failure of the persistence backend.
type StorageError struct {
	Op  string // "load" or "save"
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NormalizeName trims the name and checks it against the naming rules.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNameRequired
	}
	if utf8.RuneCountInString(name) < MinNameLength {
		return "", ErrNameTooShort
	}
	return name, nil
}

// Validate checks that the summary counts are consistent.
func (s DaySummary) Validate() error {
	if s.Total < 0 || s.Completed < 0 {
		return errors.New("negative count")
	}
	if s.Completed > s.Total {
		return fmt.Errorf("completed %d exceeds total %d", s.Completed, s.Total)
	}
	return nil
}

// Classify returns the status of a day given its summary. ok reports
// whether a summary was recorded at all.
func Classify(s DaySummary, ok bool) DayStatus {
	switch {
	case !ok || s.Total == 0:
		return NoneTracked
	case s.Completed == s.Total:
		return Complete
	case s.Completed > 0:
		return Partial
	default:
		return Missed
	}
}

// Symbol returns the glyph used for the status in the weekly grid.
func (s DayStatus) Symbol() string {
	switch s {
	case Complete:
		return "✅"
	case Partial:
		return "🟡"
	case Missed:
		return "❌"
	default:
		return "⚪"
	}
}

// String implements fmt.Stringer
func (s DayStatus) String() string {
	return string(s)
}
