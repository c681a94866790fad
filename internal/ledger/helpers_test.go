package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"habits/internal/core"
	"habits/internal/storage"
	"habits/internal/storage/memory"
)

// dayD is a Monday.
var dayD = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

func onDay(offset int) core.Calendar {
	return core.NewCalendar(dayD.AddDate(0, 0, offset))
}

func sequentialIDs(start int64) func() int64 {
	next := start
	return func() int64 {
		id := next
		next++
		return id
	}
}

// openSession mimics a session start: load, then roll the day over.
func openSession(t *testing.T, store storage.Store, cal core.Calendar) *Ledger {
	t.Helper()
	ctx := context.Background()
	l := New(store, cal, WithIDSource(sequentialIDs(cal.Now().UnixMilli())))
	require.NoError(t, l.Load(ctx))
	require.NoError(t, l.RolloverDay(ctx))
	return l
}

// fresh returns an empty, loaded ledger that has not written anything yet.
func fresh(t *testing.T, cal core.Calendar) (*Ledger, *memory.Store) {
	t.Helper()
	store := memory.New()
	l := New(store, cal, WithIDSource(sequentialIDs(1000)))
	require.NoError(t, l.Load(context.Background()))
	return l, store
}

func mustAdd(t *testing.T, l *Ledger, name string) core.Habit {
	t.Helper()
	h, err := l.AddHabit(context.Background(), name)
	require.NoError(t, err)
	return h
}

func mustToggle(t *testing.T, l *Ledger, id int64) core.Habit {
	t.Helper()
	h, err := l.ToggleCompletion(context.Background(), id)
	require.NoError(t, err)
	return h
}

func blob(t *testing.T, s storage.Reader, key string) string {
	t.Helper()
	data, ok, err := s.Get(context.Background(), key)
	require.NoError(t, err)
	if !ok {
		return ""
	}
	return string(data)
}
