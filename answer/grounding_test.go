package answer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUngroundedNames(t *testing.T) {
	known := []string{"Ana Petrov", "Marcus Webb", "Priya Sharma"}

	tests := []struct {
		name     string
		answer   string
		context  string
		expected []string
	}{
		{
			name:     "grounded mention",
			answer:   "**Ana Petrov** is the best fit for this project.",
			context:  "Employee Ana Petrov has expertise in Go.",
			expected: nil,
		},
		{
			name:     "ungrounded mention",
			answer:   "**Marcus Webb** would be ideal here.",
			context:  "Employee Ana Petrov has expertise in Go.",
			expected: []string{"Marcus Webb"},
		},
		{
			name:     "first name only still counts as mention",
			answer:   "I would suggest Priya for this.",
			context:  "Employee Ana Petrov has expertise in Go.",
			expected: []string{"Priya Sharma"},
		},
		{
			name:     "unmentioned names never flagged",
			answer:   "No one in the team fits this request.",
			context:  "Employee Ana Petrov has expertise in Go.",
			expected: nil,
		},
		{
			name:     "bold markers stripped before matching",
			answer:   "**Ana** and **Marcus** both fit.",
			context:  "Employee Ana Petrov has expertise in Go.\n\nEmployee Marcus Webb has expertise in SQL.",
			expected: nil,
		},
		{
			name:     "case insensitive",
			answer:   "ANA PETROV fits best.",
			context:  "Employee ana petrov has expertise in Go.",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ungroundedNames(tt.answer, tt.context, known)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTokenizeAndFilter(t *testing.T) {
	got := tokenizeAndFilter("The **Ana Petrov**, is (great)!")
	assert.Equal(t, []string{"ana", "petrov", "great"}, got)
}
