package backend

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habits/internal/config"
	"habits/internal/storage/file"
	"habits/internal/storage/memory"
	"habits/internal/storage/sqlite"
)

func TestCreateBackend(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	f := NewFactory(nil)

	cases := []struct {
		name   string
		config Config
		check  func(t *testing.T, r *BackendResult)
	}{
		{"memory", Config{Type: MemoryBackend}, func(t *testing.T, r *BackendResult) {
			assert.IsType(t, &memory.Store{}, r.Store)
			assert.Nil(t, r.Cleanup)
		}},
		{"file", Config{Type: FileBackend, DataDirectory: filepath.Join(dir, "files")}, func(t *testing.T, r *BackendResult) {
			assert.IsType(t, &file.Store{}, r.Store)
		}},
		{"sqlite", Config{Type: SQLiteBackend, SQLiteDBPath: filepath.Join(dir, "db", "habits.db")}, func(t *testing.T, r *BackendResult) {
			assert.IsType(t, &sqlite.Store{}, r.Store)
			assert.NotNil(t, r.Cleanup)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := f.CreateBackend(ctx, tc.config)
			require.NoError(t, err)
			defer r.Close()
			tc.check(t, r)

			require.NoError(t, r.Store.Set(ctx, "habits", []byte("[]")))
			got, ok, err := r.Store.Get(ctx, "habits")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "[]", string(got))
		})
	}
}

func TestCreateBackendRejectsInvalidConfig(t *testing.T) {
	f := NewFactory(nil)
	for _, cfg := range []Config{
		{Type: "sheets"},
		{Type: SQLiteBackend},
		{Type: FileBackend},
	} {
		_, err := f.CreateBackend(context.Background(), cfg)
		assert.Error(t, err, cfg.Type)
	}
}

func TestFromAppConfig(t *testing.T) {
	_, err := FromAppConfig(nil)
	assert.Error(t, err)

	_, err = FromAppConfig(&config.Config{DataBackend: "sheets"})
	assert.Error(t, err)

	got, err := FromAppConfig(&config.Config{DataBackend: "file", DataDirectory: "d", SQLiteDBPath: "p"})
	require.NoError(t, err)
	assert.Equal(t, Config{Type: FileBackend, DataDirectory: "d", SQLiteDBPath: "p"}, got)
}

func TestBackendResultCloseWithoutCleanup(t *testing.T) {
	var r *BackendResult
	assert.NoError(t, r.Close())
	assert.NoError(t, (&BackendResult{}).Close())
}
