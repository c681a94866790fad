package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreGetSet(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, ok, err := s.Get(ctx, "habits")
	require.NoError(t, err)
	assert.False(t, ok)

	buf := []byte(`[]`)
	require.NoError(t, s.Set(ctx, "habits", buf))
	buf[0] = 'x' // caller mutation must not leak into the store

	got, ok, err := s.Get(ctx, "habits")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[]", string(got))
	assert.Equal(t, 1, s.Keys())
}

func TestNewSeededAndFailSet(t *testing.T) {
	ctx := context.Background()
	s := NewSeeded(map[string]string{"weeklyData": `{}`})
	got, ok, _ := s.Get(ctx, "weeklyData")
	require.True(t, ok)
	assert.Equal(t, "{}", string(got))

	boom := errors.New("quota exceeded")
	s.FailSet = map[string]error{"habits": boom}
	assert.ErrorIs(t, s.Set(ctx, "habits", []byte("[]")), boom)
	assert.NoError(t, s.Set(ctx, "dailyHabits", []byte("{}")))
}
