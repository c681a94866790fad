package core

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr error
	}{
		{"Drink Water", "Drink Water", nil},
		{"  Run  ", "Run", nil},
		{"abc", "abc", nil},
		{"", "", ErrNameRequired},
		{"   \t ", "", ErrNameRequired},
		{"ab", "", ErrNameTooShort},
		{"  ab  ", "", ErrNameTooShort},
		{"日本", "", ErrNameTooShort},
		{"日本語", "日本語", nil},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := NormalizeName(tc.in)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValidationErrorMatching(t *testing.T) {
	err := error(&ValidationError{Reason: ReasonTooShort, Message: "x"})
	assert.True(t, errors.Is(err, ErrNameTooShort))
	assert.False(t, errors.Is(err, ErrNameRequired))

	var ve *ValidationError
	require.True(t, errors.As(ErrNameRequired, &ve))
	assert.Equal(t, "Please enter a habit name", ve.Error())
	assert.True(t, strings.Contains(ErrNameTooShort.Error(), "at least 3"))
}

func TestStorageErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := error(&StorageError{Op: "save", Key: "habits", Err: cause})
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), `"habits"`)
}

func TestDaySummaryValidate(t *testing.T) {
	assert.NoError(t, DaySummary{Total: 3, Completed: 3}.Validate())
	assert.NoError(t, DaySummary{}.Validate())
	assert.Error(t, DaySummary{Total: 1, Completed: 2}.Validate())
	assert.Error(t, DaySummary{Total: -1}.Validate())
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name    string
		summary DaySummary
		ok      bool
		want    DayStatus
	}{
		{"absent", DaySummary{}, false, NoneTracked},
		{"no habits", DaySummary{Total: 0}, true, NoneTracked},
		{"all done", DaySummary{Total: 2, Completed: 2}, true, Complete},
		{"some done", DaySummary{Total: 3, Completed: 1}, true, Partial},
		{"none done", DaySummary{Total: 3}, true, Missed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.summary, tc.ok))
		})
	}
}

func TestDayStatusSymbol(t *testing.T) {
	assert.Equal(t, "✅", Complete.Symbol())
	assert.Equal(t, "🟡", Partial.Symbol())
	assert.Equal(t, "❌", Missed.Symbol())
	assert.Equal(t, "⚪", NoneTracked.Symbol())
}
