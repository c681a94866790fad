package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"habits/internal/core"
	"habits/internal/ledger"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		p      core.Progress
		filled int
		label  string
	}{
		{core.NewProgress(0, 0), 0, "  0%"},
		{core.NewProgress(1, 2), 10, " 50%"},
		{core.NewProgress(3, 3), 20, "100%"},
		{core.NewProgress(1, 3), 6, " 33%"},
	}
	for _, tt := range tests {
		got := progressBar(tt.p)
		assert.Equal(t, tt.filled, strings.Count(got, "█"), got)
		assert.Equal(t, barWidth-tt.filled, strings.Count(got, "░"), got)
		assert.True(t, strings.HasSuffix(got, tt.label), got)
	}
}

func TestAddedAgo(t *testing.T) {
	cal := core.NewCalendar(time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC))
	assert.Equal(t, "today", addedAgo("2025-06-10", cal))
	assert.Equal(t, "1 day ago", addedAgo("2025-06-09", cal))
	assert.Equal(t, "3 days ago", addedAgo("2025-06-07", cal))
	assert.Equal(t, "some time ago", addedAgo("", cal))
	assert.Equal(t, "garbage", addedAgo("garbage", cal))
}

func TestRenderWeekLegend(t *testing.T) {
	var buf bytes.Buffer
	renderWeek(&buf, []ledger.DayView{
		{DayInfo: core.DayInfo{Date: "2025-06-01", Weekday: "Sun", Display: "6/1"}, Status: core.Missed},
		{DayInfo: core.DayInfo{Date: "2025-06-02", Weekday: "Mon", Display: "6/2"}, Status: core.Complete, IsToday: true},
	})
	out := buf.String()
	assert.Contains(t, out, "Sun")
	assert.Contains(t, out, "❌")
	assert.Contains(t, out, "✅")
	assert.Contains(t, out, "not tracked")
}

func TestRenderDayWithoutData(t *testing.T) {
	var buf bytes.Buffer
	renderDay(&buf, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), ledger.DayDetail{Text: "No habits tracked on this day."})
	assert.Contains(t, buf.String(), "Sun, 6/1")
	assert.Contains(t, buf.String(), "No habit data available for this day")
}
