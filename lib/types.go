package lib

import "net/http"

// Prediction is a single entity span as returned by the hosted
// species-detection model.
type Prediction struct {
	EntityGroup string  `json:"entity_group"`
	Score       float64 `json:"score"`
	Word        string  `json:"word"`
	Start       int     `json:"start"`
	End         int     `json:"end"`
}

// InferenceRequest is the wire format the hosted model accepts.
type InferenceRequest struct {
	Inputs string `json:"inputs"`
}

// Record is a single unit of input text, e.g. one row of a CSV file.
type Record struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// Statuses reported per record. A failed record does not abort the run.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// RecordResult is the outcome of recognising one record.
type RecordResult struct {
	Index        int          `json:"index"`
	Text         string       `json:"text"`
	Entities     []Prediction `json:"entities"`
	SpeciesCount int          `json:"species_count"`
	TokenCount   int          `json:"token_count"`
	Status       string       `json:"status"`
	Error        string       `json:"error,omitempty"`
}

func NewRecordResult(record *Record, entities []Prediction) RecordResult {
	return RecordResult{
		Index:        record.Index,
		Text:         record.Text,
		Entities:     entities,
		SpeciesCount: len(entities),
		Status:       StatusSuccess,
	}
}

func NewFailedRecordResult(record *Record, err error) RecordResult {
	return RecordResult{
		Index:    record.Index,
		Text:     record.Text,
		Entities: []Prediction{},
		Status:   StatusError,
		Error:    err.Error(),
	}
}

type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
}
