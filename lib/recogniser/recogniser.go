package recogniser

import (
	"sync"

	"github.com/openmed-ai/species-recognition/lib"
	"github.com/openmed-ai/species-recognition/lib/record"
)

// Client recognises species entities in a stream of records. Recognise
// returns immediately and does its work in a goroutine; callers wait on
// the WaitGroup, then read Err and Result.
type Client interface {
	Recognise(<-chan record.Value, lib.RecogniserOptions, *sync.WaitGroup) error
	Err() error
	Result() []lib.RecordResult
}

// Entities flattens per-record results into a single prediction slice.
func Entities(results []lib.RecordResult) []lib.Prediction {
	var entities []lib.Prediction
	for _, result := range results {
		entities = append(entities, result.Entities...)
	}
	return entities
}
