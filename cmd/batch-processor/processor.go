package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/openmed-ai/species-recognition/lib"
	"github.com/openmed-ai/species-recognition/lib/analysis"
	"github.com/openmed-ai/species-recognition/lib/cache"
	"github.com/openmed-ai/species-recognition/lib/cache/local"
	"github.com/openmed-ai/species-recognition/lib/cache/remote"
	"github.com/openmed-ai/species-recognition/lib/recogniser"
	"github.com/openmed-ai/species-recognition/lib/record"
	"github.com/openmed-ai/species-recognition/lib/store"
	"github.com/openmed-ai/species-recognition/lib/text"
)

type processor struct {
	reader      record.Reader
	client      recogniser.Client
	opts        lib.RecogniserOptions
	remoteCache remote.Client
	store       *store.Store
	minScore    float64
	thresholds  analysis.Thresholds
}

// Run reads records from in, recognises them and writes one result per
// line to out. Duplicate texts are recognised once: within a run via an
// in-process cache, across runs via redis when configured. Endpoint
// invocations are billed per request.
func (p processor) Run(ctx context.Context, in io.Reader, out io.Writer) (analysis.Report, error) {
	var records []*lib.Record
	err := p.reader.ReadRecordsWithCallback(in, func(r *lib.Record) error {
		records = append(records, &lib.Record{
			Index: len(records),
			Text:  text.NormalizeText(r.Text),
		})
		return nil
	})
	if err != nil {
		return analysis.Report{}, err
	}
	if len(records) == 0 {
		return analysis.Report{}, errors.New("no records in input")
	}

	known := local.New()
	p.fetchCached(records, known)

	misses := p.cacheMisses(records, known)
	failures := make(map[string]lib.RecordResult)
	if len(misses) > 0 {
		if err := p.recognise(misses, known, failures); err != nil {
			return analysis.Report{}, err
		}
	}

	results := make([]lib.RecordResult, len(records))
	for i, r := range records {
		key := cache.Key(r.Text)
		if lookup := known.Get(key); lookup != nil {
			result := lib.NewRecordResult(r, analysis.FilterByScore(lookup.Predictions, p.minScore))
			result.TokenCount = text.CountTokens(r.Text)
			results[i] = result
		} else if failed, ok := failures[key]; ok {
			failed.Index = r.Index
			failed.Text = r.Text
			results[i] = failed
		} else {
			results[i] = lib.NewFailedRecordResult(r, errors.New("recogniser returned no result"))
		}
	}

	enc := json.NewEncoder(out)
	for _, result := range results {
		if err := enc.Encode(result); err != nil {
			return analysis.Report{}, err
		}
	}

	if p.store != nil {
		runID := uuid.New().String()
		if err := p.store.BulkIndex(ctx, store.Documents(runID, results)); err != nil {
			return analysis.Report{}, err
		}
		log.Info().Str("run_id", runID).Msg("predictions indexed")
	}

	return analysis.Summarize(results, p.thresholds), nil
}

// fetchCached populates the in-process cache with predictions stored by
// previous runs. A broken cache downgrades to a warning.
func (p processor) fetchCached(records []*lib.Record, known local.Client) {
	if p.remoteCache == nil {
		return
	}
	if !p.remoteCache.Ready() {
		log.Warn().Msg("prediction cache is not ready, continuing without it")
		return
	}

	pipe := p.remoteCache.NewGetPipeline(len(records))
	queued := make(map[string]bool, len(records))
	for _, r := range records {
		key := cache.Key(r.Text)
		if !queued[key] {
			queued[key] = true
			pipe.Get(key)
		}
	}

	err := pipe.ExecGet(func(key string, lookup *cache.Lookup) error {
		if lookup != nil {
			known.Set(key, lookup)
		}
		return nil
	})
	if err != nil {
		log.Warn().Err(err).Msg("prediction cache lookup failed, continuing without it")
	}
}

// cacheMisses returns one record per unique text that still needs to be
// recognised.
func (p processor) cacheMisses(records []*lib.Record, known local.Client) []*lib.Record {
	seen := make(map[string]bool, len(records))
	var misses []*lib.Record
	for _, r := range records {
		key := cache.Key(r.Text)
		if known.Get(key) != nil || seen[key] {
			continue
		}
		seen[key] = true
		misses = append(misses, r)
	}
	return misses
}

func (p processor) recognise(misses []*lib.Record, known local.Client, failures map[string]lib.RecordResult) error {
	wg := &sync.WaitGroup{}
	if err := p.client.Recognise(recordChannel(misses), p.opts, wg); err != nil {
		return err
	}
	wg.Wait()
	if err := p.client.Err(); err != nil {
		return err
	}

	var setPipe remote.SetPipeline
	if p.remoteCache != nil && p.remoteCache.Ready() {
		setPipe = p.remoteCache.NewSetPipeline(len(misses))
	}

	for _, result := range p.client.Result() {
		key := cache.Key(result.Text)
		if result.Status != lib.StatusSuccess {
			failures[key] = result
			continue
		}

		lookup := &cache.Lookup{Recogniser: p.opts.Name, Predictions: result.Entities}
		known.Set(key, lookup)

		if setPipe != nil {
			b, err := json.Marshal(lookup)
			if err != nil {
				return err
			}
			setPipe.Set(key, b)
		}
	}

	if setPipe != nil && setPipe.Size() > 0 {
		if err := setPipe.ExecSet(); err != nil {
			log.Warn().Err(err).Msg("failed to write predictions to the cache")
		}
	}
	return nil
}

func recordChannel(records []*lib.Record) <-chan record.Value {
	values := make(chan record.Value, len(records)+1)
	for _, r := range records {
		values <- record.Value{Record: r}
	}
	values <- record.Value{Err: io.EOF}
	close(values)
	return values
}
