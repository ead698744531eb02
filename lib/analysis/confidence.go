package analysis

import (
	"sort"

	"github.com/openmed-ai/species-recognition/lib"
)

// Bucket labels a prediction by confidence band.
type Bucket string

const (
	BucketHigh   Bucket = "high"
	BucketMedium Bucket = "medium"
	BucketLow    Bucket = "low"
)

type Thresholds struct {
	High   float64 `mapstructure:"high"`
	Medium float64 `mapstructure:"medium"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{High: 0.90, Medium: 0.70}
}

func (t Thresholds) Bucket(score float64) Bucket {
	switch {
	case score >= t.High:
		return BucketHigh
	case score >= t.Medium:
		return BucketMedium
	default:
		return BucketLow
	}
}

// FilterByScore drops predictions scoring below min.
func FilterByScore(predictions []lib.Prediction, min float64) []lib.Prediction {
	res := make([]lib.Prediction, 0, len(predictions))
	for _, p := range predictions {
		if p.Score >= min {
			res = append(res, p)
		}
	}
	return res
}

type ScoreStats struct {
	Mean float64 `json:"mean"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

type SpeciesStats struct {
	Species     string  `json:"species"`
	Occurrences int     `json:"occurrences"`
	MeanScore   float64 `json:"mean_score"`
	MinScore    float64 `json:"min_score"`
	MaxScore    float64 `json:"max_score"`
}

// Report summarises a batch run: how many records succeeded, what was
// found, and how confident the model was about it.
type Report struct {
	Records       int            `json:"records"`
	Failed        int            `json:"failed"`
	TotalEntities int            `json:"total_entities"`
	TotalTokens   int            `json:"total_tokens"`
	Scores        ScoreStats     `json:"scores"`
	Buckets       map[Bucket]int `json:"buckets"`
	Species       []SpeciesStats `json:"species"`
}

// Summarize aggregates per-record results into a Report. Species are
// grouped by predicted word, ordered by occurrences then name.
func Summarize(results []lib.RecordResult, t Thresholds) Report {
	report := Report{
		Records: len(results),
		Buckets: map[Bucket]int{BucketHigh: 0, BucketMedium: 0, BucketLow: 0},
	}

	type agg struct {
		count    int
		sum      float64
		min, max float64
	}
	bySpecies := make(map[string]*agg)

	var sum, min, max float64
	for _, result := range results {
		if result.Status != lib.StatusSuccess {
			report.Failed++
			continue
		}
		report.TotalTokens += result.TokenCount
		for _, entity := range result.Entities {
			report.TotalEntities++
			report.Buckets[t.Bucket(entity.Score)]++

			sum += entity.Score
			if report.TotalEntities == 1 || entity.Score < min {
				min = entity.Score
			}
			if entity.Score > max {
				max = entity.Score
			}

			a, ok := bySpecies[entity.Word]
			if !ok {
				a = &agg{min: entity.Score, max: entity.Score}
				bySpecies[entity.Word] = a
			}
			a.count++
			a.sum += entity.Score
			if entity.Score < a.min {
				a.min = entity.Score
			}
			if entity.Score > a.max {
				a.max = entity.Score
			}
		}
	}

	if report.TotalEntities > 0 {
		report.Scores = ScoreStats{
			Mean: sum / float64(report.TotalEntities),
			Min:  min,
			Max:  max,
		}
	}

	for species, a := range bySpecies {
		report.Species = append(report.Species, SpeciesStats{
			Species:     species,
			Occurrences: a.count,
			MeanScore:   a.sum / float64(a.count),
			MinScore:    a.min,
			MaxScore:    a.max,
		})
	}
	sort.Slice(report.Species, func(i, j int) bool {
		if report.Species[i].Occurrences != report.Species[j].Occurrences {
			return report.Species[i].Occurrences > report.Species[j].Occurrences
		}
		return report.Species[i].Species < report.Species[j].Species
	})

	return report
}

// TopSpecies returns the n most frequent species in the report.
func TopSpecies(report Report, n int) []SpeciesStats {
	if n > len(report.Species) {
		n = len(report.Species)
	}
	return report.Species[:n]
}
