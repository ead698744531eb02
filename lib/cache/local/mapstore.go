package local

import (
	"sync"

	"github.com/openmed-ai/species-recognition/lib/cache"
)

func New() Client {
	return &local{
		store: make(map[string]*cache.Lookup),
		mut:   &sync.RWMutex{},
	}
}

// Client is an in-process prediction cache for single runs.
type Client interface {
	Get(key string) *cache.Lookup
	Set(key string, lookup *cache.Lookup)
	Delete(key string)
}

type local struct {
	store map[string]*cache.Lookup
	mut   *sync.RWMutex
}

func (l *local) Get(key string) *cache.Lookup {
	l.mut.RLock()
	defer l.mut.RUnlock()

	lookup, ok := l.store[key]
	if !ok {
		return nil
	}

	return lookup
}

func (l *local) Set(key string, lookup *cache.Lookup) {
	l.mut.Lock()
	defer l.mut.Unlock()

	l.store[key] = lookup
}

func (l *local) Delete(key string) {
	l.mut.Lock()
	defer l.mut.Unlock()

	delete(l.store, key)
}
