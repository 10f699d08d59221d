package emissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))

	s := Summarize([]Entry{
		{Timestamp: 1000, Value: 2},
		{Timestamp: 2000, Value: 4},
		{Timestamp: 3000, Value: 9},
	})
	assert.Equal(t, 3, s.Count)
	assert.InDelta(t, 15.0, s.Total, tolerance)
	assert.InDelta(t, 5.0, s.Mean, tolerance)
	assert.InDelta(t, 2.0, s.Min, tolerance)
	assert.InDelta(t, 9.0, s.Max, tolerance)
	assert.Equal(t, int64(1000), s.First)
	assert.Equal(t, int64(3000), s.Last)
}

func TestSummarizeCombined(t *testing.T) {
	assert.Equal(t, Summary{}, SummarizeCombined(nil))

	s := SummarizeCombined([]CombinedEntry{
		{Timestamp: 10, Coal: 1, Value: 1},
		{Timestamp: 20, Coal: 1, Gas: 2, Value: 3},
	})
	assert.Equal(t, 2, s.Count)
	assert.InDelta(t, 4.0, s.Total, tolerance)
	assert.Equal(t, int64(20), s.Last)
}
