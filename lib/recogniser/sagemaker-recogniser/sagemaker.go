package sagemaker_recogniser

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sagemakerruntime"

	"github.com/openmed-ai/species-recognition/lib"
	"github.com/openmed-ai/species-recognition/lib/blocklist"
	"github.com/openmed-ai/species-recognition/lib/recogniser"
	"github.com/openmed-ai/species-recognition/lib/record"
	"github.com/openmed-ai/species-recognition/lib/text"
)

const contentTypeJSON = "application/json"

// Runtime is the slice of the SageMaker runtime API we use.
type Runtime interface {
	InvokeEndpoint(ctx context.Context, params *sagemakerruntime.InvokeEndpointInput, optFns ...func(*sagemakerruntime.Options)) (*sagemakerruntime.InvokeEndpointOutput, error)
}

func New(name, endpointName string, runtime Runtime, blocklist blocklist.Blocklist) recogniser.Client {
	return &client{
		Name:         name,
		endpointName: endpointName,
		runtime:      runtime,
		blocklist:    blocklist,
	}
}

type client struct {
	Name         string
	endpointName string
	runtime      Runtime
	blocklist    blocklist.Blocklist
	err          error
	results      []lib.RecordResult
}

func (c *client) reset() {
	c.err = nil
	c.results = nil
}

func (c *client) Err() error {
	return c.err
}

func (c *client) Result() []lib.RecordResult {
	return c.results
}

func (c *client) Recognise(vals <-chan record.Value, opts lib.RecogniserOptions, wg *sync.WaitGroup) error {
	c.reset()
	wg.Add(1)
	go c.recognise(vals, opts, wg)
	return nil
}

func (c *client) recognise(vals <-chan record.Value, opts lib.RecogniserOptions, wg *sync.WaitGroup) {
	defer wg.Done()

	var records []*lib.Record
	err := record.ReadChannelWithCallback(vals, func(r *lib.Record) error {
		records = append(records, r)
		return nil
	})
	if err != nil {
		c.err = err
		return
	}

	// Bounded fan-out. The endpoint scales with the instance count
	// behind it, not with us, so keep the worker count modest.
	results := make([]lib.RecordResult, len(records))
	jobs := make(chan int)
	var workers sync.WaitGroup
	for w := 0; w < opts.Workers(); w++ {
		workers.Add(1)
		go func() {
			defer workers.Done()
			for i := range jobs {
				results[i] = c.recogniseRecord(records[i])
			}
		}()
	}
	for i := range records {
		jobs <- i
	}
	close(jobs)
	workers.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	c.results = results
}

func (c *client) recogniseRecord(r *lib.Record) lib.RecordResult {
	if err := text.ValidateText(r.Text); err != nil {
		return lib.NewFailedRecordResult(r, err)
	}

	payload, err := json.Marshal(lib.InferenceRequest{Inputs: r.Text})
	if err != nil {
		return lib.NewFailedRecordResult(r, err)
	}

	out, err := c.runtime.InvokeEndpoint(context.Background(), &sagemakerruntime.InvokeEndpointInput{
		EndpointName: aws.String(c.endpointName),
		ContentType:  aws.String(contentTypeJSON),
		Accept:       aws.String(contentTypeJSON),
		Body:         payload,
	})
	if err != nil {
		return lib.NewFailedRecordResult(r, fmt.Errorf("invoke endpoint %s: %w", c.endpointName, err))
	}

	var predictions []lib.Prediction
	if err := json.Unmarshal(out.Body, &predictions); err != nil {
		return lib.NewFailedRecordResult(r, fmt.Errorf("unmarshal endpoint response: %w", err))
	}

	result := lib.NewRecordResult(r, filter(r.Text, predictions, c.blocklist))
	result.TokenCount = text.CountTokens(r.Text)
	return result
}

// filter drops predictions whose offsets don't agree with the text they
// claim to span, and anything on the blocklist.
func filter(recordText string, predictions []lib.Prediction, bl blocklist.Blocklist) []lib.Prediction {
	res := make([]lib.Prediction, 0, len(predictions))
	for _, p := range predictions {
		if text.ValidSpan(recordText, p) {
			res = append(res, p)
		}
	}
	return bl.FilterPredictions(res)
}
