package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"sort"
	"sync"

	"github.com/openmed-ai/species-recognition/lib"
	"github.com/openmed-ai/species-recognition/lib/deployment"
	"github.com/openmed-ai/species-recognition/lib/recogniser"
	"github.com/openmed-ai/species-recognition/lib/record"
	"github.com/openmed-ai/species-recognition/lib/text"
)

// clientFactory builds a recogniser client for one request. Clients
// carry per-run state, so they must not be shared between concurrent
// requests.
type clientFactory func() recogniser.Client

type controller struct {
	recognisers map[string]clientFactory
	deployer    *deployment.Deployer
}

func (c controller) ListRecognisers() []string {
	names := make([]string, 0, len(c.recognisers))
	for name := range c.recognisers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Recognize reads one text from the request body and runs every
// requested recogniser over it concurrently, merging the predictions.
func (c controller) Recognize(reader io.Reader, requested []lib.RecogniserOptions) ([]lib.Prediction, error) {
	body, err := ioutil.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	normalized := text.NormalizeText(string(body))
	if err := text.ValidateText(normalized); err != nil {
		return nil, NewHttpError(400, err)
	}

	clients := make([]recogniser.Client, len(requested))
	wg := &sync.WaitGroup{}
	for i, opts := range requested {
		factory, ok := c.recognisers[opts.Name]
		if !ok {
			return nil, NewHttpError(400, fmt.Errorf("no such recogniser '%s'", opts.Name))
		}
		clients[i] = factory()

		if err := clients[i].Recognise(recordChannel(&lib.Record{Text: normalized}), opts, wg); err != nil {
			return nil, err
		}
	}
	wg.Wait()

	entities := make([]lib.Prediction, 0)
	for _, client := range clients {
		if err := client.Err(); err != nil {
			return nil, err
		}
		entities = append(entities, recogniser.Entities(client.Result())...)
	}

	return entities, nil
}

// RecognizeBatch runs a list of texts through a single recogniser and
// returns per-record results in input order.
func (c controller) RecognizeBatch(texts []string, opts lib.RecogniserOptions) ([]lib.RecordResult, error) {
	factory, ok := c.recognisers[opts.Name]
	if !ok {
		return nil, NewHttpError(400, fmt.Errorf("no such recogniser '%s'", opts.Name))
	}
	client := factory()

	records := make([]*lib.Record, len(texts))
	for i, t := range texts {
		records[i] = &lib.Record{Index: i, Text: text.NormalizeText(t)}
	}

	wg := &sync.WaitGroup{}
	if err := client.Recognise(recordChannel(records...), opts, wg); err != nil {
		return nil, err
	}
	wg.Wait()

	if err := client.Err(); err != nil {
		return nil, err
	}
	return client.Result(), nil
}

func (c controller) Health(ctx context.Context) (deployment.Status, error) {
	if c.deployer == nil {
		return deployment.Status{}, NewHttpError(404, errors.New("no deployment configured"))
	}
	return c.deployer.Status(ctx)
}

func recordChannel(records ...*lib.Record) <-chan record.Value {
	values := make(chan record.Value, len(records)+1)
	for _, r := range records {
		values <- record.Value{Record: r}
	}
	values <- record.Value{Err: io.EOF}
	close(values)
	return values
}
