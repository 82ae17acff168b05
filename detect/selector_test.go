package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectEventsMinDistance(t *testing.T) {
	candidates := []Candidate{
		{Time: 0, Type: CueIntro, Score: 1.0, Label: "Intro"},
		{Time: 5, Type: CueDrop, Score: 0.9, Label: "Drop"},
		{Time: 20, Type: CueOutro, Score: 0.8, Label: "Outro"},
	}

	events := SelectEvents(candidates, 8.0, 8)
	require.Len(t, events, 2, "the candidate 5s from a stronger one is dropped")
	assert.Equal(t, CueIntro, events[0].Type)
	assert.Equal(t, CueOutro, events[1].Type)
}

func TestSelectEventsMaxCount(t *testing.T) {
	candidates := []Candidate{
		{Time: 0, Score: 0.5},
		{Time: 20, Score: 0.9},
		{Time: 40, Score: 0.7},
	}

	events := SelectEvents(candidates, 8.0, 2)
	require.Len(t, events, 2)

	// The two best scores survive, returned chronologically
	assert.Equal(t, 20.0, events[0].Time)
	assert.Equal(t, 40.0, events[1].Time)
}

func TestSelectEventsUnbounded(t *testing.T) {
	candidates := []Candidate{
		{Time: 0, Score: 0.1},
		{Time: 20, Score: 0.2},
		{Time: 40, Score: 0.3},
	}

	events := SelectEvents(candidates, 8.0, 0)
	assert.Len(t, events, 3, "maxCount <= 0 means no cap")
}

func TestSelectEventsOrderingAndNumbering(t *testing.T) {
	candidates := []Candidate{
		{Time: 90, Type: CueOutro, Score: 0.8, Label: "Outro"},
		{Time: 10, Type: CueIntro, Score: 1.0, Label: "Intro"},
		{Time: 50, Type: CueDrop, Score: 0.9, Label: "Drop"},
	}

	events := SelectEvents(candidates, 8.0, 8)
	require.Len(t, events, 3)

	for i, ev := range events {
		assert.Equal(t, i+1, ev.Index, "numbering follows chronological order")
		if i > 0 {
			assert.Greater(t, ev.Time, events[i-1].Time)
			assert.GreaterOrEqual(t, ev.Time-events[i-1].Time, 8.0)
		}
	}
}

func TestSelectEventsTieKeepsGenerationOrder(t *testing.T) {
	candidates := []Candidate{
		{Time: 0, Type: CueDrop, Score: 0.5, Label: "Drop"},
		{Time: 3, Type: CueSection, Score: 0.5, Label: "Section"},
	}

	events := SelectEvents(candidates, 8.0, 8)
	require.Len(t, events, 1)
	assert.Equal(t, CueDrop, events[0].Type, "equal scores keep the earlier-generated candidate")
}

func TestSelectEventsIdempotent(t *testing.T) {
	candidates := []Candidate{
		{Time: 2, Type: CueIntro, Score: 1.0, Label: "Intro"},
		{Time: 7, Type: CueDrop, Score: 1.4, Label: "Drop"},
		{Time: 30, Type: CueBreakdown, Score: 0.6, Label: "Breakdown"},
		{Time: 55, Type: CueOutro, Score: 0.8, Label: "Outro"},
	}

	first := SelectEvents(candidates, 8.0, 8)
	second := SelectEvents(CandidatesFromEvents(first), 8.0, 8)
	assert.Equal(t, first, second)
}

func TestSelectEventsConfidenceClamped(t *testing.T) {
	events := SelectEvents([]Candidate{{Time: 0, Score: 1.4}}, 8.0, 8)
	require.Len(t, events, 1)
	assert.Equal(t, 1.0, events[0].Confidence)
}

func TestSelectEventsEmpty(t *testing.T) {
	events := SelectEvents(nil, 8.0, 8)
	assert.Empty(t, events)
}
