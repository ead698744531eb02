package http_recogniser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/openmed-ai/species-recognition/lib"
	"github.com/openmed-ai/species-recognition/lib/blocklist"
	"github.com/openmed-ai/species-recognition/lib/recogniser"
	"github.com/openmed-ai/species-recognition/lib/record"
	"github.com/openmed-ai/species-recognition/lib/text"
)

// NewHostedClient talks to an inference server exposing the hosted
// model's JSON contract directly over HTTP, e.g. a self-hosted copy of
// the species-detection model. Transient failures are retried.
func NewHostedClient(name, url string, blocklist blocklist.Blocklist) recogniser.Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.Logger = nil

	return &hosted{
		Name:       name,
		Url:        url,
		httpClient: rc.StandardClient(),
		blocklist:  blocklist,
	}
}

type hosted struct {
	Name       string
	Url        string
	httpClient lib.HttpClient
	blocklist  blocklist.Blocklist
	err        error
	results    []lib.RecordResult
}

func (h *hosted) reset() {
	h.err = nil
	h.results = nil
}

func (h *hosted) Err() error {
	return h.err
}

func (h *hosted) Result() []lib.RecordResult {
	return h.results
}

func (h *hosted) urlWithOpts(opts lib.RecogniserOptions) string {
	if len(opts.QueryParameters) == 0 {
		return h.Url
	}

	sep := func(key string) string {
		return fmt.Sprintf("&%s=", key)
	}

	paramStr := ""
	for key, values := range opts.QueryParameters {
		paramStr += sep(key) + strings.Join(values, sep(key))
	}

	return h.Url + "?" + paramStr[1:]
}

func (h *hosted) Recognise(vals <-chan record.Value, opts lib.RecogniserOptions, wg *sync.WaitGroup) error {
	h.reset()
	wg.Add(1)
	go h.recognise(vals, opts, wg)
	return nil
}

func (h *hosted) recognise(vals <-chan record.Value, opts lib.RecogniserOptions, wg *sync.WaitGroup) {
	defer wg.Done()

	var records []*lib.Record
	err := record.ReadChannelWithCallback(vals, func(r *lib.Record) error {
		records = append(records, r)
		return nil
	})
	if err != nil {
		h.err = err
		return
	}

	results := make([]lib.RecordResult, len(records))
	jobs := make(chan int)
	var workers sync.WaitGroup
	for w := 0; w < opts.Workers(); w++ {
		workers.Add(1)
		go func() {
			defer workers.Done()
			for i := range jobs {
				results[i] = h.recogniseRecord(records[i], opts)
			}
		}()
	}
	for i := range records {
		jobs <- i
	}
	close(jobs)
	workers.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	h.results = results
}

func (h *hosted) recogniseRecord(r *lib.Record, opts lib.RecogniserOptions) lib.RecordResult {
	if err := text.ValidateText(r.Text); err != nil {
		return lib.NewFailedRecordResult(r, err)
	}

	payload, err := json.Marshal(lib.InferenceRequest{Inputs: r.Text})
	if err != nil {
		return lib.NewFailedRecordResult(r, err)
	}

	req, err := http.NewRequest(http.MethodPost, h.urlWithOpts(opts), bytes.NewReader(payload))
	if err != nil {
		return lib.NewFailedRecordResult(r, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return lib.NewFailedRecordResult(r, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return lib.NewFailedRecordResult(r, fmt.Errorf("%s returned status %d", h.Name, resp.StatusCode))
	}

	b, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return lib.NewFailedRecordResult(r, err)
	}

	var predictions []lib.Prediction
	if err := json.Unmarshal(b, &predictions); err != nil {
		return lib.NewFailedRecordResult(r, fmt.Errorf("unmarshal response: %w", err))
	}

	res := make([]lib.Prediction, 0, len(predictions))
	for _, p := range predictions {
		if text.ValidSpan(r.Text, p) {
			res = append(res, p)
		}
	}

	result := lib.NewRecordResult(r, h.blocklist.FilterPredictions(res))
	result.TokenCount = text.CountTokens(r.Text)
	return result
}
