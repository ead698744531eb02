package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v7"
	"github.com/rs/zerolog/log"

	"github.com/openmed-ai/species-recognition/lib"
)

type ElasticsearchConfig struct {
	Host  string
	Port  int
	Index string
}

// Document is one predicted entity, flattened for search and
// aggregation downstream (e.g. most common species per corpus).
type Document struct {
	RunID       string    `json:"run_id"`
	RecordIndex int       `json:"record_index"`
	Species     string    `json:"species"`
	EntityGroup string    `json:"entity_group"`
	Score       float64   `json:"score"`
	Start       int       `json:"start"`
	End         int       `json:"end"`
	IndexedAt   time.Time `json:"indexed_at"`
}

func NewElasticsearchStore(conf ElasticsearchConfig) (*Store, error) {
	c, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{fmt.Sprintf("http://%s:%d", conf.Host, conf.Port)},
	})
	if err != nil {
		return nil, err
	}

	return &Store{client: c, index: conf.Index}, nil
}

type Store struct {
	client *elasticsearch.Client
	index  string
}

// Documents flattens batch results into indexable documents.
func Documents(runID string, results []lib.RecordResult) []Document {
	now := time.Now().UTC()
	var docs []Document
	for _, result := range results {
		for _, entity := range result.Entities {
			docs = append(docs, Document{
				RunID:       runID,
				RecordIndex: result.Index,
				Species:     entity.Word,
				EntityGroup: entity.EntityGroup,
				Score:       entity.Score,
				Start:       entity.Start,
				End:         entity.End,
				IndexedAt:   now,
			})
		}
	}
	return docs
}

// BulkIndex writes documents with a single bulk request.
func (s *Store) BulkIndex(ctx context.Context, docs []Document) error {
	if len(docs) == 0 {
		return nil
	}

	var buf bytes.Buffer
	for _, doc := range docs {
		buf.WriteString(`{"index":{}}` + "\n")
		b, err := json.Marshal(doc)
		if err != nil {
			return err
		}
		buf.Write(b)
		buf.WriteByte('\n')
	}

	res, err := s.client.Bulk(
		bytes.NewReader(buf.Bytes()),
		s.client.Bulk.WithIndex(s.index),
		s.client.Bulk.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("bulk index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("bulk index returned %s", res.Status())
	}

	var bulkResponse struct {
		Errors bool `json:"errors"`
	}
	if err := json.NewDecoder(res.Body).Decode(&bulkResponse); err != nil {
		return err
	}
	if bulkResponse.Errors {
		return fmt.Errorf("bulk index to %s had item failures", s.index)
	}

	log.Debug().Int("documents", len(docs)).Str("index", s.index).Msg("indexed predictions")
	return nil
}
