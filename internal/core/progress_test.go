package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProgress(t *testing.T) {
	assert.Equal(t, 0, NewProgress(0, 0).Percent)
	assert.Equal(t, 33, NewProgress(1, 3).Percent)
	assert.Equal(t, 67, NewProgress(2, 3).Percent)
	assert.Equal(t, 50, NewProgress(1, 2).Percent)
	assert.Equal(t, 100, NewProgress(4, 4).Percent)
}

func TestProgressOf(t *testing.T) {
	habits := []Habit{
		{ID: 1, Name: "Read", Completed: true},
		{ID: 2, Name: "Run", Completed: false},
	}
	assert.Equal(t, Progress{Completed: 1, Total: 2, Percent: 50}, ProgressOf(habits))
	assert.Equal(t, Progress{}, ProgressOf(nil))
}

func TestMotivation(t *testing.T) {
	cases := []struct {
		p    Progress
		want string
	}{
		{NewProgress(0, 0), "Start your journey today!"},
		{NewProgress(0, 2), "Let's get started!"},
		{NewProgress(1, 3), "Good start!"},
		{NewProgress(1, 2), "Almost there!"},
		{NewProgress(2, 2), "Perfect day!"},
	}
	for _, tc := range cases {
		assert.Contains(t, Motivation(tc.p), tc.want)
	}
}
