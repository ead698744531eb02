package lib

import (
	"net/url"
)

// DefaultMaxWorkers is the number of concurrent requests a recogniser
// makes against the model when the caller does not set a limit.
const DefaultMaxWorkers = 5

type RecogniserOptions struct {
	Name       string `json:"name"`
	MaxWorkers int    `json:"maxWorkers"`
	HttpOptions
}

// Workers returns the configured worker count, falling back to
// DefaultMaxWorkers when unset.
func (o RecogniserOptions) Workers() int {
	if o.MaxWorkers <= 0 {
		return DefaultMaxWorkers
	}
	return o.MaxWorkers
}

type HttpOptions struct {
	QueryParameters url.Values `json:"queryParameters"`
}
