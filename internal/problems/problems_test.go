// Copyright 2025 Peter Van Percson
// Licensed under the EUPL-1.2

package problems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	all := All()
	require.Len(t, all, 10)

	for _, p := range all {
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.Track)
		assert.NotEmpty(t, p.Prompt)
		require.Len(t, p.Questions, 10)

		// Every question must be a budgeted answer field.
		for _, q := range p.Questions {
			_, ok := Limits[q.Name]
			assert.True(t, ok, "question %q has no limit entry", q.Name)
		}
	}
}

func TestByID(t *testing.T) {
	p, ok := ByID(1)
	require.True(t, ok)
	assert.Equal(t, "Backend/Full-Stack", p.Track)
	assert.Equal(t, "problem-1", p.PromptID())

	_, ok = ByID(99)
	assert.False(t, ok)
}

func TestDefault(t *testing.T) {
	assert.Equal(t, 1, Default().ID)
}

func TestLimits(t *testing.T) {
	expected := map[string]int{
		"first_action":        280,
		"why_first":           280,
		"second_action":       280,
		"why_second":          280,
		"third_action":        280,
		"signals_data_first":  280,
		"wont_do":             450,
		"biggest_risk":        350,
		"verify_and_rollback": 350,
		"with_more_time":      280,
	}
	assert.Equal(t, expected, Limits)
}

func TestRequired(t *testing.T) {
	require.Len(t, Required, 12)
	assert.Equal(t, "email", Required[0])
	assert.Equal(t, "attest_original", Required[len(Required)-1])

	for _, f := range AnswerFields {
		assert.Contains(t, Required, f)
	}
}
