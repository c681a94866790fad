// Package ledger holds the habit collection together with its daily
// history and applies the streak rules to it.
//
// A Ledger is created once per session with a Calendar anchored at the
// session start, loaded from a storage.Store, and persisted after every
// mutation. It is not safe for concurrent use.
package ledger

import (
	"context"
	"encoding/json"
	"slices"
	"time"

	"habits/internal/core"
	applog "habits/internal/log"
	"habits/internal/storage"
)

type Ledger struct {
	store  storage.Store
	cal    core.Calendar
	logger *applog.Logger
	nextID func() int64

	habits    []core.Habit
	summaries map[string]core.DaySummary
	snapshots map[string]core.DaySnapshot
}

type Option func(*Ledger)

// WithLogger sets the logger used for ledger events.
func WithLogger(l *applog.Logger) Option {
	return func(lg *Ledger) {
		if l != nil {
			lg.logger = l.WithComponent(applog.ComponentLedger)
		}
	}
}

// WithIDSource overrides how new habit ids are generated. The default is
// the wall clock in milliseconds.
func WithIDSource(next func() int64) Option {
	return func(lg *Ledger) {
		if next != nil {
			lg.nextID = next
		}
	}
}

func New(store storage.Store, cal core.Calendar, opts ...Option) *Ledger {
	l := &Ledger{
		store:     store,
		cal:       cal,
		logger:    applog.Discard(),
		nextID:    func() int64 { return time.Now().UnixMilli() },
		habits:    []core.Habit{},
		summaries: map[string]core.DaySummary{},
		snapshots: map[string]core.DaySnapshot{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Calendar returns the session calendar.
func (l *Ledger) Calendar() core.Calendar {
	return l.cal
}

// Load replaces the in-memory state with the persisted one. Each blob is
// loaded on its own: a missing or undecodable blob leaves an empty default
// for that blob only. Failures of the store itself are returned.
func (l *Ledger) Load(ctx context.Context) error {
	habits := []core.Habit{}
	if err := l.loadBlob(ctx, storage.KeyHabits, &habits); err != nil {
		return err
	}
	if habits == nil {
		habits = []core.Habit{}
	}

	summaries := map[string]core.DaySummary{}
	if err := l.loadBlob(ctx, storage.KeyWeeklyData, &summaries); err != nil {
		return err
	}
	if summaries == nil {
		summaries = map[string]core.DaySummary{}
	}
	for date, s := range summaries {
		if err := s.Validate(); err != nil {
			l.logger.WarnContext(ctx, "Dropping inconsistent day summary",
				applog.NewFields().WithDate(date).WithError(err).ToSlice()...)
			delete(summaries, date)
		}
	}

	snapshots := map[string]core.DaySnapshot{}
	if err := l.loadBlob(ctx, storage.KeyDailyHabits, &snapshots); err != nil {
		return err
	}
	if snapshots == nil {
		snapshots = map[string]core.DaySnapshot{}
	}

	l.habits, l.summaries, l.snapshots = habits, summaries, snapshots

	l.logger.DebugContext(ctx, "Ledger loaded",
		applog.FieldOperation, applog.OpLoad,
		applog.FieldCount, len(habits),
		"days", len(summaries))
	return nil
}

func (l *Ledger) loadBlob(ctx context.Context, key string, dst any) error {
	data, ok, err := l.store.Get(ctx, key)
	if err != nil {
		return &core.StorageError{Op: applog.OpLoad, Key: key, Err: err}
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		l.logger.WarnContext(ctx, "Ignoring corrupt stored data",
			applog.NewFields().WithKey(key).WithOperation(applog.OpDecode).WithError(err).ToSlice()...)
		// Unmarshal may have filled part of dst before failing.
		switch v := dst.(type) {
		case *[]core.Habit:
			*v = []core.Habit{}
		case *map[string]core.DaySummary:
			*v = map[string]core.DaySummary{}
		case *map[string]core.DaySnapshot:
			*v = map[string]core.DaySnapshot{}
		}
	}
	return nil
}

// Save writes the three blobs, habits first. The first failure is
// returned and later blobs are not written.
func (l *Ledger) Save(ctx context.Context) error {
	blobs := []struct {
		key   string
		value any
	}{
		{storage.KeyHabits, l.habits},
		{storage.KeyWeeklyData, l.summaries},
		{storage.KeyDailyHabits, l.snapshots},
	}
	for _, b := range blobs {
		data, err := json.Marshal(b.value)
		if err != nil {
			return &core.StorageError{Op: applog.OpSave, Key: b.key, Err: err}
		}
		if err := l.store.Set(ctx, b.key, data); err != nil {
			return &core.StorageError{Op: applog.OpSave, Key: b.key, Err: err}
		}
	}
	return nil
}

// commit records today's history and persists everything.
func (l *Ledger) commit(ctx context.Context) error {
	l.RecordToday()
	return l.Save(ctx)
}

// AddHabit validates name and appends a new habit. Validation failures
// are *core.ValidationError and leave the ledger untouched.
func (l *Ledger) AddHabit(ctx context.Context, name string) (core.Habit, error) {
	name, err := core.NormalizeName(name)
	if err != nil {
		return core.Habit{}, err
	}

	h := core.Habit{
		ID:          l.newID(),
		Name:        name,
		CreatedDate: l.cal.Today(),
	}
	l.habits = append(l.habits, h)

	l.logger.InfoContext(ctx, "Habit created",
		applog.NewFields().WithOperation(applog.OpCreate).WithHabit(h.ID, h.Name, h.Streak, h.Completed).ToSlice()...)

	return h, l.commit(ctx)
}

// DeleteHabit removes the habit with the given id. Unknown ids are
// ignored and nothing is written.
func (l *Ledger) DeleteHabit(ctx context.Context, id int64) error {
	i := l.indexOf(id)
	if i < 0 {
		l.logger.DebugContext(ctx, "Delete of unknown habit ignored", applog.FieldHabitID, id)
		return nil
	}
	removed := l.habits[i]
	l.habits = slices.Delete(l.habits, i, i+1)

	l.logger.InfoContext(ctx, "Habit deleted",
		applog.NewFields().WithOperation(applog.OpDelete).WithHabit(removed.ID, removed.Name, removed.Streak, removed.Completed).ToSlice()...)

	return l.commit(ctx)
}

// Habits returns a copy of the habits in creation order.
func (l *Ledger) Habits() []core.Habit {
	return slices.Clone(l.habits)
}

// Habit returns the habit with the given id.
func (l *Ledger) Habit(id int64) (core.Habit, bool) {
	i := l.indexOf(id)
	if i < 0 {
		return core.Habit{}, false
	}
	return l.habits[i], true
}

func (l *Ledger) indexOf(id int64) int {
	return slices.IndexFunc(l.habits, func(h core.Habit) bool { return h.ID == id })
}

// newID returns the next id, moving past the current maximum when the
// source collides with an existing habit.
func (l *Ledger) newID() int64 {
	id := l.nextID()
	if l.indexOf(id) < 0 {
		return id
	}
	var maxID int64
	for _, h := range l.habits {
		maxID = max(maxID, h.ID)
	}
	return maxID + 1
}
