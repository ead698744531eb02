package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openmed-ai/species-recognition/lib"
)

func TestBucket(t *testing.T) {
	thresholds := DefaultThresholds()

	tests := []struct {
		name  string
		score float64
		want  Bucket
	}{
		{name: "high", score: 0.97, want: BucketHigh},
		{name: "exactly high threshold", score: 0.90, want: BucketHigh},
		{name: "medium", score: 0.75, want: BucketMedium},
		{name: "exactly medium threshold", score: 0.70, want: BucketMedium},
		{name: "low", score: 0.42, want: BucketLow},
		{name: "zero", score: 0, want: BucketLow},
	}
	for _, tt := range tests {
		t.Log(tt.name)
		assert.Equal(t, tt.want, thresholds.Bucket(tt.score))
	}
}

func TestFilterByScore(t *testing.T) {
	predictions := []lib.Prediction{
		{Word: "Escherichia coli", Score: 0.99},
		{Word: "Candida albicans", Score: 0.65},
		{Word: "Staphylococcus aureus", Score: 0.80},
	}

	filtered := FilterByScore(predictions, 0.70)

	assert.Len(t, filtered, 2)
	assert.Equal(t, "Escherichia coli", filtered[0].Word)
	assert.Equal(t, "Staphylococcus aureus", filtered[1].Word)

	assert.Empty(t, FilterByScore(predictions, 1.0))
	assert.Len(t, FilterByScore(predictions, 0), 3)
}

func TestSummarize(t *testing.T) {
	results := []lib.RecordResult{
		{
			Index:      0,
			Status:     lib.StatusSuccess,
			TokenCount: 10,
			Entities: []lib.Prediction{
				{Word: "Escherichia coli", Score: 0.95},
				{Word: "Staphylococcus aureus", Score: 0.80},
			},
		},
		{
			Index:      1,
			Status:     lib.StatusSuccess,
			TokenCount: 7,
			Entities: []lib.Prediction{
				{Word: "Escherichia coli", Score: 0.99},
			},
		},
		{
			Index:      2,
			Status:     lib.StatusError,
			TokenCount: 3,
		},
		{
			Index:      3,
			Status:     lib.StatusSuccess,
			TokenCount: 5,
			Entities: []lib.Prediction{
				{Word: "Candida albicans", Score: 0.60},
			},
		},
	}

	report := Summarize(results, DefaultThresholds())

	assert.Equal(t, 4, report.Records)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 4, report.TotalEntities)
	// failed records don't contribute tokens
	assert.Equal(t, 22, report.TotalTokens)

	assert.Equal(t, 2, report.Buckets[BucketHigh])
	assert.Equal(t, 1, report.Buckets[BucketMedium])
	assert.Equal(t, 1, report.Buckets[BucketLow])

	assert.InDelta(t, 0.835, report.Scores.Mean, 1e-9)
	assert.Equal(t, 0.60, report.Scores.Min)
	assert.Equal(t, 0.99, report.Scores.Max)

	// most frequent first, ties alphabetical
	assert.Equal(t, "Escherichia coli", report.Species[0].Species)
	assert.Equal(t, 2, report.Species[0].Occurrences)
	assert.InDelta(t, 0.97, report.Species[0].MeanScore, 1e-9)
	assert.Equal(t, 0.95, report.Species[0].MinScore)
	assert.Equal(t, 0.99, report.Species[0].MaxScore)

	assert.Equal(t, "Candida albicans", report.Species[1].Species)
	assert.Equal(t, "Staphylococcus aureus", report.Species[2].Species)
}

func TestSummarizeEmpty(t *testing.T) {
	report := Summarize(nil, DefaultThresholds())

	assert.Equal(t, 0, report.Records)
	assert.Equal(t, 0, report.TotalEntities)
	assert.Equal(t, ScoreStats{}, report.Scores)
	assert.Empty(t, report.Species)
}

func TestTopSpecies(t *testing.T) {
	report := Report{
		Species: []SpeciesStats{
			{Species: "Escherichia coli", Occurrences: 5},
			{Species: "Candida albicans", Occurrences: 3},
			{Species: "Helicobacter pylori", Occurrences: 1},
		},
	}

	top := TopSpecies(report, 2)
	assert.Len(t, top, 2)
	assert.Equal(t, "Escherichia coli", top[0].Species)

	assert.Len(t, TopSpecies(report, 10), 3)
}
